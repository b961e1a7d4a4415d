package fx

import (
	"rift-tracker/internal/config"
	"rift-tracker/internal/logger"
	"rift-tracker/internal/riot"
	"rift-tracker/internal/server"
	"rift-tracker/internal/service"
	"rift-tracker/internal/store"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(store.New),
	// api client
	fx.Provide(riot.NewClient),
	fx.Provide(func(c *riot.Client) service.RiotAPI { return c }),
	// svc
	fx.Provide(service.NewSyncService),
	// server
	fx.Provide(server.NewTrackerServer),
)
