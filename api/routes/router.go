package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/voicebite/voicebite-backend/api/controllers"
	"github.com/voicebite/voicebite-backend/api/middleware"
	"github.com/voicebite/voicebite-backend/internal/assistant"
	"github.com/voicebite/voicebite-backend/internal/menu"
	"github.com/voicebite/voicebite-backend/pkg/config"
	"github.com/voicebite/voicebite-backend/pkg/db"
	"github.com/voicebite/voicebite-backend/pkg/logger"
	"github.com/voicebite/voicebite-backend/pkg/redis"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Config        *config.Config
	Logger        *logger.Logger
	DB            db.Pinger
	Redis         *redis.Client
	MenuService   menu.Service
	SnapshotCache *menu.SnapshotCache
	Intent        controllers.IntentResolver
	Engine        *assistant.Engine
	Metrics       prometheus.Gatherer
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	voicePolicy := middleware.NewVoiceRateLimitPolicy(
		"voice",
		cfg.Assistant.VoiceRateWindow,
		cfg.Assistant.VoiceRateLimit,
	)
	voiceLimit := middleware.VoiceRateLimit(voicePolicy, nil, logg)
	if deps.Redis != nil {
		voiceLimit = middleware.VoiceRateLimit(voicePolicy, deps.Redis, logg)
	}

	var redisPinger redis.Pinger
	if deps.Redis != nil {
		redisPinger = deps.Redis
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, redisPinger))
	})

	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Metrics, promhttp.HandlerOpts{}))
	}

	r.Route("/api/menu", func(r chi.Router) {
		r.Get("/", controllers.MenuList(deps.MenuService, logg))
		r.Get("/offers", controllers.MenuOffers(deps.MenuService, logg))
		r.Get("/search", controllers.MenuSearch(deps.MenuService, logg))
		r.Get("/category/{category}", controllers.MenuByCategory(deps.MenuService, logg))
		r.Post("/", controllers.MenuCreate(deps.MenuService, deps.SnapshotCache, logg))
		r.Delete("/{id}", controllers.MenuDelete(deps.MenuService, deps.SnapshotCache, logg))
	})

	r.Route("/api/ai", func(r chi.Router) {
		r.Use(middleware.SessionID(logg))
		r.With(voiceLimit).Post("/process-command", controllers.ProcessCommand(deps.Intent, logg))
	})

	r.Route("/api/assistant", func(r chi.Router) {
		r.Use(middleware.SessionID(logg))
		r.With(voiceLimit).Post("/command", controllers.AssistantCommand(deps.Engine, logg))
	})

	r.Route("/api/cart", func(r chi.Router) {
		r.Use(middleware.SessionID(logg))
		r.Get("/", controllers.CartGet(deps.Engine, logg))
		r.Post("/items", controllers.CartAddItem(deps.Engine, logg))
		r.Delete("/items/{itemId}", controllers.CartRemoveItem(deps.Engine, logg))
		r.Delete("/", controllers.CartClear(deps.Engine, logg))
		r.Post("/checkout", controllers.CartCheckout(deps.Engine, logg))
	})

	return r
}
