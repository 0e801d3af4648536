package di

import (
	"go.uber.org/fx"

	"github.com/mkarev/shopapi/internal/app"
	"github.com/mkarev/shopapi/internal/config"
	"github.com/mkarev/shopapi/internal/logger"
	"github.com/mkarev/shopapi/internal/pkg/auth"
	"github.com/mkarev/shopapi/internal/server/http/router"
	"github.com/mkarev/shopapi/internal/storage/postgres"
	"github.com/mkarev/shopapi/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
