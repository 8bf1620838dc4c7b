package controllers

import (
	"net/http"

	"github.com/voicebite/voicebite-backend/api/middleware"
	"github.com/voicebite/voicebite-backend/api/responses"
	"github.com/voicebite/voicebite-backend/api/validators"
	"github.com/voicebite/voicebite-backend/internal/assistant"
	pkgerrors "github.com/voicebite/voicebite-backend/pkg/errors"
	"github.com/voicebite/voicebite-backend/pkg/logger"
)

type assistantCommandRequest struct {
	Transcript string `json:"transcript" validate:"required"`
}

// AssistantCommand runs the full pipeline for a session's transcript and
// executes the resulting effects server-side.
func AssistantCommand(engine *assistant.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := middleware.SessionIDFromContext(r.Context())
		if sessionID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "session id missing"))
			return
		}

		var payload assistantCommandRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := engine.HandleCommand(r.Context(), sessionID, payload.Transcript)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
