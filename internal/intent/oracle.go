package intent

import (
	"context"
	stdErrors "errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	pkgerrors "github.com/voicebite/voicebite-backend/pkg/errors"
)

// Oracle is the single point of contact with the external generative
// model. Implementations return the model's raw text, trimmed and with
// code fences stripped; everything else about the content is the
// resolver's problem.
type Oracle interface {
	Invoke(ctx context.Context, doc Document) (string, error)
}

// GeminiOracle invokes a Gemini model through the genai client. It
// performs no retries; retry policy belongs to callers.
type GeminiOracle struct {
	client *genai.Client
	model  string
}

// NewGeminiOracle builds the oracle around an authenticated client.
func NewGeminiOracle(ctx context.Context, apiKey, model string) (*GeminiOracle, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key required")
	}
	if model == "" {
		return nil, fmt.Errorf("gemini model required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}
	return &GeminiOracle{client: client, model: model}, nil
}

func (o *GeminiOracle) Invoke(ctx context.Context, doc Document) (string, error) {
	resp, err := o.client.Models.GenerateContent(ctx, o.model, genai.Text(string(doc)), nil)
	if err != nil {
		return "", classifyOracleError(err)
	}
	return StripFences(resp.Text()), nil
}

func classifyOracleError(err error) error {
	var apiErr genai.APIError
	if stdErrors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests:
			return pkgerrors.Wrap(pkgerrors.CodeRateLimit, err, "oracle rate limited")
		case http.StatusUnauthorized, http.StatusForbidden:
			return pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "oracle rejected credentials")
		}
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "oracle request failed")
}

// StripFences trims surrounding whitespace and removes markdown code
// fence markers the model sometimes wraps its JSON in. Nothing else is
// touched; content validation happens in the resolver.
func StripFences(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}
