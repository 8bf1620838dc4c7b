package assistant

import (
	"github.com/voicebite/voicebite-backend/pkg/db/models"
)

// EffectKind tags the side effect a planned command asks for.
type EffectKind string

const (
	EffectNavigate      EffectKind = "navigate"
	EffectNotify        EffectKind = "notify"
	EffectCartAdd       EffectKind = "cart_add"
	EffectSettlePayment EffectKind = "settle_payment"
)

// NotifyLevel distinguishes informational, success, and error-style user
// messages.
type NotifyLevel string

const (
	NotifyInfo    NotifyLevel = "info"
	NotifySuccess NotifyLevel = "success"
	NotifyError   NotifyLevel = "error"
)

// Effect is one side-effect request produced by the planner. Only the
// fields relevant to its kind are set.
type Effect struct {
	Kind    EffectKind      `json:"kind"`
	Path    string          `json:"path,omitempty"`
	Message string          `json:"message,omitempty"`
	Level   NotifyLevel     `json:"level,omitempty"`
	Item    models.MenuItem `json:"item,omitempty"`
}

func navigateTo(path string) Effect {
	return Effect{Kind: EffectNavigate, Path: path}
}

func notify(level NotifyLevel, message string) Effect {
	return Effect{Kind: EffectNotify, Level: level, Message: message}
}
