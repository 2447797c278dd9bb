//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	commandbus "cosylinks-backend/application/commands/bus"
	"cosylinks-backend/application/ports"
	querybus "cosylinks-backend/application/queries/bus"
	"cosylinks-backend/infrastructure/config"
	"cosylinks-backend/infrastructure/dataset"
	"cosylinks-backend/interfaces/http/rest"
	"cosylinks-backend/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config        *config.Config
	Logger        *zap.Logger
	Metrics       *observability.Collector
	Registry      *dataset.Registry
	Watcher       *dataset.Watcher
	Store         ports.ProcedureStore
	OutlineSource ports.OutlineSource
	CommandBus    *commandbus.CommandBus
	QueryBus      *querybus.QueryBus
	Router        *rest.Router
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideMetrics,
	ProvideRegistry,
	ProvideWatcher,
	ProvideProcedureStore,
	ProvideOutlineSource,
	ProvideQueryBus,
	ProvideCommandBus,
	ProvideRouter,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
