package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mindhavenapp/mindhaven/backend/internal/emotion"
	"github.com/mindhavenapp/mindhaven/backend/internal/flow"
	chatHandler "github.com/mindhavenapp/mindhaven/backend/internal/handler/chat"
	classifyHandler "github.com/mindhavenapp/mindhaven/backend/internal/handler/classify"
	emotionHandler "github.com/mindhavenapp/mindhaven/backend/internal/handler/emotion"
	flowHandler "github.com/mindhavenapp/mindhaven/backend/internal/handler/flow"
	journalHandler "github.com/mindhavenapp/mindhaven/backend/internal/handler/journal"
	ventHandler "github.com/mindhavenapp/mindhaven/backend/internal/handler/vent"
	middlewarePkg "github.com/mindhavenapp/mindhaven/backend/internal/middleware"
	chatService "github.com/mindhavenapp/mindhaven/backend/internal/service/chat"
	classifyService "github.com/mindhavenapp/mindhaven/backend/internal/service/classify"
	journalService "github.com/mindhavenapp/mindhaven/backend/internal/service/journal"
	ventService "github.com/mindhavenapp/mindhaven/backend/internal/service/vent"
)

// Services bundles everything the router needs.
type Services struct {
	Chat     *chatService.Service
	Classify *classifyService.Service
	Journal  *journalService.Service
	Vent     *ventService.Service
	Sampler  *emotion.Sampler
	Flows    *flow.Registry
	Logger   *zap.Logger
}

// NewRouter wires HTTP routes to core services.
func NewRouter(s Services) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	// The classify facade lives at the root so existing clients keep
	// working unchanged.
	r.Post("/classify", classifyHandler.New(s.Classify, s.Logger).Handle)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(api chi.Router) {
		chatHandler.New(s.Chat).RegisterRoutes(api)
		journalHandler.New(s.Journal).RegisterRoutes(api)
		ventHandler.New(s.Vent).RegisterRoutes(api)
		emotionHandler.New(s.Sampler, s.Logger).RegisterRoutes(api)
		flowHandler.New(s.Flows, s.Logger).RegisterRoutes(api)
	})

	return r
}
