// Package rest wires the HTTP surface of the service.
package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	commandbus "cosylinks-backend/application/commands/bus"
	querybus "cosylinks-backend/application/queries/bus"
	"cosylinks-backend/infrastructure/config"
	"cosylinks-backend/infrastructure/dataset"
	"cosylinks-backend/interfaces/http/rest/handlers"
	"cosylinks-backend/interfaces/http/rest/middleware"
	"cosylinks-backend/pkg/observability"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg        *config.Config
	commandBus *commandbus.CommandBus
	queryBus   *querybus.QueryBus
	registry   *dataset.Registry
	metrics    *observability.Collector
	logger     *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	commandBus *commandbus.CommandBus,
	queryBus *querybus.QueryBus,
	registry *dataset.Registry,
	metrics *observability.Collector,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:        cfg,
		commandBus: commandBus,
		queryBus:   queryBus,
		registry:   registry,
		metrics:    metrics,
		logger:     logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	router.Use(middleware.Metrics(rt.metrics))

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID", "Content-Disposition"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	if rt.cfg.EnableMetrics {
		router.Handle("/metrics", rt.metrics.Handler())
	}

	datasetHandler := handlers.NewDatasetHandler(rt.registry, rt.cfg, rt.logger)
	treeHandler := handlers.NewTreeHandler(rt.queryBus, rt.registry, rt.logger)
	graphHandler := handlers.NewGraphHandler(rt.queryBus, rt.registry, rt.logger)
	procedureHandler := handlers.NewProcedureHandler(rt.queryBus, rt.commandBus, rt.registry, rt.logger)
	searchHandler := handlers.NewSearchHandler(rt.queryBus, rt.registry, rt.logger)

	authenticate := middleware.Authenticate(rt.cfg, rt.logger)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/datasets", datasetHandler.ListDatasets)

		r.Route("/datasets/{datasetID}/versions/{versionID}", func(r chi.Router) {
			r.Get("/tree", treeHandler.GetTree)
			r.Get("/graph", graphHandler.GetGraphData)
			r.Get("/keywords", treeHandler.ListKeywords)

			r.Route("/procedures", func(r chi.Router) {
				r.Get("/", procedureHandler.ListProcedures)
				r.Get("/search", searchHandler.SearchProcedures)
				r.Get("/export", procedureHandler.ExportCSV)

				// Mutations only pass through the auth gate.
				r.Group(func(r chi.Router) {
					r.Use(authenticate)
					r.Post("/", procedureHandler.AddProcedure)
					r.Put("/{code}/tag", procedureHandler.UpdateTag)
				})
			})
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck reports ready once the dataset registry has loaded.
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if len(rt.registry.List()) == 0 {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"status":"no datasets loaded"}`))
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
