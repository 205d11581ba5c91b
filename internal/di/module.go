package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/wsgateway/internal/adapter/authsvc"
	"github.com/polkiloo/wsgateway/internal/app"
	"github.com/polkiloo/wsgateway/internal/config"
	"github.com/polkiloo/wsgateway/internal/logger"
	"github.com/polkiloo/wsgateway/internal/server/http/handlers"
	"github.com/polkiloo/wsgateway/internal/server/http/router"
	"github.com/polkiloo/wsgateway/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		authsvc.Module,
		fx.Provide(
			func(client authsvc.Client) usecase.AccesskeyIssuer { return client },
			func(client authsvc.Client) usecase.WithdrawalVerifier { return client },
		),
		usecase.Module,
		app.Module,
		fx.Provide(func(facade *app.GatewayFacade) handlers.GatewayFacade { return facade }),
		router.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
