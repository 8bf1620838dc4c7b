package intent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/voicebite/voicebite-backend/internal/menu"
	pkgerrors "github.com/voicebite/voicebite-backend/pkg/errors"
	"github.com/voicebite/voicebite-backend/pkg/logger"
	"github.com/voicebite/voicebite-backend/pkg/metrics"
)

type snapshotSource interface {
	Get(ctx context.Context) (menu.Snapshot, error)
}

// Service runs the full intent resolution pipeline: snapshot, prompt,
// oracle, resolver. It is the only caller allowed to treat oracle output
// as anything other than opaque text.
type Service struct {
	snapshots snapshotSource
	oracle    Oracle
	logg      *logger.Logger
	metrics   *metrics.IntentMetrics
}

func NewService(snapshots snapshotSource, oracle Oracle, logg *logger.Logger, m *metrics.IntentMetrics) (*Service, error) {
	if snapshots == nil {
		return nil, fmt.Errorf("snapshot source required")
	}
	if oracle == nil {
		return nil, fmt.Errorf("oracle required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Service{snapshots: snapshots, oracle: oracle, logg: logg, metrics: m}, nil
}

// Process resolves a transcript into a command. A malformed oracle
// response is absorbed here via the search fallback and never surfaces as
// an error; snapshot and oracle transport failures do propagate.
func (s *Service) Process(ctx context.Context, transcript string) (Command, error) {
	if strings.TrimSpace(transcript) == "" {
		return Command{}, pkgerrors.New(pkgerrors.CodeValidation, "transcript is required")
	}

	snap, err := s.snapshots.Get(ctx)
	if err != nil {
		return Command{}, err
	}

	doc := Compile(transcript, snap)

	started := time.Now()
	raw, err := s.oracle.Invoke(ctx, doc)
	s.metrics.ObserveOracleDuration(time.Since(started))
	if err != nil {
		s.metrics.IncOracleError(string(pkgerrors.As(err).Code()))
		return Command{}, err
	}

	cmd, fellBack := Resolve(raw, transcript)
	if fellBack {
		s.metrics.IncFallback()
		s.logg.Warn(s.logg.WithAction(ctx, string(cmd.Action)), "oracle response unparseable, falling back to search")
	}
	s.metrics.IncCommand(string(cmd.Action))
	s.logg.Info(s.logg.WithAction(ctx, string(cmd.Action)), "transcript resolved")

	return cmd, nil
}
