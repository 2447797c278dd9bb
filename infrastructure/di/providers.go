package di

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"cosylinks-backend/application/commands"
	commandbus "cosylinks-backend/application/commands/bus"
	commandhandlers "cosylinks-backend/application/commands/handlers"
	"cosylinks-backend/application/ports"
	"cosylinks-backend/application/queries"
	querybus "cosylinks-backend/application/queries/bus"
	queryhandlers "cosylinks-backend/application/queries/handlers"
	"cosylinks-backend/infrastructure/config"
	"cosylinks-backend/infrastructure/csvstore"
	"cosylinks-backend/infrastructure/dataset"
	"cosylinks-backend/interfaces/http/rest"
	"cosylinks-backend/pkg/observability"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	if level, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}

	return zapCfg.Build()
}

// ProvideMetrics creates the metrics collector
func ProvideMetrics(cfg *config.Config) *observability.Collector {
	return observability.NewCollector("cosylinks")
}

// ProvideRegistry loads the dataset registry
func ProvideRegistry(cfg *config.Config, logger *zap.Logger) (*dataset.Registry, error) {
	return dataset.NewRegistry(cfg.DatasetsFile, logger)
}

// ProvideWatcher creates the registry file watcher
func ProvideWatcher(registry *dataset.Registry, logger *zap.Logger) (*dataset.Watcher, error) {
	return dataset.NewWatcher(registry, logger)
}

// ProvideProcedureStore creates the CSV-backed record store
func ProvideProcedureStore(metrics *observability.Collector, logger *zap.Logger) ports.ProcedureStore {
	return csvstore.NewProcedureStore(metrics, logger)
}

// ProvideOutlineSource creates the outline text reader
func ProvideOutlineSource(logger *zap.Logger) ports.OutlineSource {
	return csvstore.NewOutlineSource(logger)
}

// ProvideQueryBus creates the query bus with all handlers registered
func ProvideQueryBus(
	source ports.OutlineSource,
	store ports.ProcedureStore,
	metrics *observability.Collector,
	logger *zap.Logger,
) (*querybus.QueryBus, error) {
	qb := querybus.NewQueryBus()

	if err := qb.Register(queries.GetTreeQuery{},
		queryhandlers.NewGetTreeHandler(source, store, metrics, logger)); err != nil {
		return nil, err
	}
	if err := qb.Register(queries.GetGraphDataQuery{},
		queryhandlers.NewGetGraphDataHandler(source, logger)); err != nil {
		return nil, err
	}
	if err := qb.Register(queries.ListKeywordsQuery{},
		queryhandlers.NewListKeywordsHandler(source, logger)); err != nil {
		return nil, err
	}
	if err := qb.Register(queries.ListProceduresQuery{},
		queryhandlers.NewListProceduresHandler(store, logger)); err != nil {
		return nil, err
	}
	if err := qb.Register(queries.SearchProceduresQuery{},
		queryhandlers.NewSearchProceduresHandler(store, logger)); err != nil {
		return nil, err
	}

	return qb, nil
}

// ProvideCommandBus creates the command bus with all handlers registered
func ProvideCommandBus(
	store ports.ProcedureStore,
	metrics *observability.Collector,
	logger *zap.Logger,
) (*commandbus.CommandBus, error) {
	cb := commandbus.NewCommandBus()

	if err := cb.Register(commands.AddProcedureCommand{},
		commandhandlers.NewAddProcedureHandler(store, metrics, logger)); err != nil {
		return nil, err
	}
	if err := cb.Register(commands.UpdateProcedureTagCommand{},
		commandhandlers.NewUpdateProcedureTagHandler(store, metrics, logger)); err != nil {
		return nil, err
	}

	return cb, nil
}

// ProvideRouter creates the configured HTTP router
func ProvideRouter(
	cfg *config.Config,
	commandBus *commandbus.CommandBus,
	queryBus *querybus.QueryBus,
	registry *dataset.Registry,
	metrics *observability.Collector,
	logger *zap.Logger,
) *rest.Router {
	return rest.NewRouter(cfg, commandBus, queryBus, registry, metrics, logger)
}
