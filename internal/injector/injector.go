//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"GopherVR/internal/app"
	"GopherVR/internal/config"

	"github.com/google/wire"
)

func InitializeApp(cfg *config.Config) (*app.App, error) {
	wire.Build(ProviderSet)
	return nil, nil
}
