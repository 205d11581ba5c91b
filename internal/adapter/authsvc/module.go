package authsvc

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/wsgateway/internal/config"
)

// Module exposes authorization client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	client, err := NewHTTPClient(p.Config.AuthEndpoint, p.Logger)
	if err != nil {
		return nil, err
	}
	return client, nil
}
