//go:build wireinject
// +build wireinject

package main

import (
	"brainvault/config"
	"brainvault/dao"
	"brainvault/dao/cache"
	"brainvault/handler"
	"brainvault/pkg/client"
	"brainvault/pkg/database"
	"brainvault/pkg/server"
	"brainvault/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, func(), error) {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		server.NewGinEngine,
		cache.ProviderSet,
		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Content), "*"),
		wire.Struct(new(handler.SavedPost), "*"),
		wire.Struct(new(handler.Brain), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
	)
	return nil, nil, nil
}
