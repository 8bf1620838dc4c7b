package intent

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/voicebite/voicebite-backend/internal/menu"
	"github.com/voicebite/voicebite-backend/pkg/db/models"
	pkgerrors "github.com/voicebite/voicebite-backend/pkg/errors"
	"github.com/voicebite/voicebite-backend/pkg/logger"
)

type stubSnapshots struct {
	snap menu.Snapshot
	err  error
}

func (s *stubSnapshots) Get(ctx context.Context) (menu.Snapshot, error) {
	if s.err != nil {
		return menu.Snapshot{}, s.err
	}
	return s.snap, nil
}

type stubOracle struct {
	response string
	err      error
	prompts  []Document
}

func (s *stubOracle) Invoke(ctx context.Context, doc Document) (string, error) {
	s.prompts = append(s.prompts, doc)
	if s.err != nil {
		return "", s.err
	}
	return StripFences(s.response), nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: zerolog.Disabled, Output: io.Discard})
}

func newTestService(t *testing.T, snapshots *stubSnapshots, oracle *stubOracle) *Service {
	t.Helper()
	svc, err := NewService(snapshots, oracle, testLogger(), nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func pipelineSnapshot() menu.Snapshot {
	return menu.Snapshot{
		Items: []models.MenuItem{
			{Name: "Pepperoni Blast", Description: "Loaded with pepperoni.", Category: "pizza"},
			{Name: "Classic Coke", Description: "Chilled can.", Category: "beverages"},
		},
		CapturedAt: time.Now(),
	}
}

func TestProcessRejectsEmptyTranscript(t *testing.T) {
	oracle := &stubOracle{}
	svc := newTestService(t, &stubSnapshots{snap: pipelineSnapshot()}, oracle)

	_, err := svc.Process(context.Background(), "   ")
	if !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(oracle.prompts) != 0 {
		t.Fatalf("oracle must not be invoked for empty transcripts")
	}
}

func TestProcessResolvesCategoryCommand(t *testing.T) {
	oracle := &stubOracle{response: "```json\n{\"action\":\"GET_CATEGORY\",\"payload\":{\"category\":\"beverages\"}}\n```"}
	svc := newTestService(t, &stubSnapshots{snap: pipelineSnapshot()}, oracle)

	cmd, err := svc.Process(context.Background(), "show me beverages")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Action != ActionGetCategory || cmd.Payload.Category != "beverages" {
		t.Fatalf("unexpected command %+v", cmd)
	}
	if len(oracle.prompts) != 1 {
		t.Fatalf("expected one oracle call, got %d", len(oracle.prompts))
	}
	if !strings.Contains(string(oracle.prompts[0]), "beverages") {
		t.Fatalf("prompt should carry the catalog's categories")
	}
}

func TestProcessAbsorbsUnparseableResponse(t *testing.T) {
	oracle := &stubOracle{response: "I don't understand"}
	svc := newTestService(t, &stubSnapshots{snap: pipelineSnapshot()}, oracle)

	cmd, err := svc.Process(context.Background(), "asdkjasd")
	if err != nil {
		t.Fatalf("unparseable oracle output must not error: %v", err)
	}
	if cmd.Action != ActionSearch || cmd.Payload.Query != "asdkjasd" {
		t.Fatalf("expected search fallback with verbatim transcript, got %+v", cmd)
	}
}

func TestProcessPropagatesSnapshotFailure(t *testing.T) {
	storeErr := pkgerrors.New(pkgerrors.CodeDependency, "fetching menu catalog")
	oracle := &stubOracle{}
	svc := newTestService(t, &stubSnapshots{err: storeErr}, oracle)

	_, err := svc.Process(context.Background(), "show me beverages")
	if !pkgerrors.IsCode(err, pkgerrors.CodeDependency) {
		t.Fatalf("expected dependency error, got %v", err)
	}
	if len(oracle.prompts) != 0 {
		t.Fatalf("oracle must not be invoked when the snapshot fetch fails")
	}
}

func TestProcessPropagatesOracleRateLimit(t *testing.T) {
	oracle := &stubOracle{err: pkgerrors.New(pkgerrors.CodeRateLimit, "oracle rate limited")}
	svc := newTestService(t, &stubSnapshots{snap: pipelineSnapshot()}, oracle)

	_, err := svc.Process(context.Background(), "add a coke")
	if !pkgerrors.IsCode(err, pkgerrors.CodeRateLimit) {
		t.Fatalf("expected rate limit error, got %v", err)
	}
}
