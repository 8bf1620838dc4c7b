package controllers

import (
	"context"
	"net/http"

	"github.com/voicebite/voicebite-backend/api/responses"
	"github.com/voicebite/voicebite-backend/api/validators"
	"github.com/voicebite/voicebite-backend/internal/intent"
	"github.com/voicebite/voicebite-backend/pkg/logger"
)

// IntentResolver is the pipeline surface the controller needs.
type IntentResolver interface {
	Process(ctx context.Context, transcript string) (intent.Command, error)
}

type processCommandRequest struct {
	Transcript string `json:"transcript" validate:"required"`
}

// ProcessCommand resolves a transcript into a structured {action,
// payload} pair without executing it. Rate-limit failures keep their
// specific status so clients can show a cooldown message.
func ProcessCommand(resolver IntentResolver, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload processCommandRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cmd, err := resolver.Process(r.Context(), payload.Transcript)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, cmd)
	}
}
