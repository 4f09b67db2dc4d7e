//go:build wireinject

package router

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/traPtitech/traPin/repository"
	"github.com/traPtitech/traPin/router/auth"
	"github.com/traPtitech/traPin/router/session"
	v1 "github.com/traPtitech/traPin/router/v1"
)

func newRouter(repo repository.Repository, sessStore session.Store, logger *zap.Logger, config *Config) *Router {
	wire.Build(
		newEcho,
		auth.NewLocalAuthenticator,
		wire.Bind(new(auth.Authenticator), new(*auth.LocalAuthenticator)),
		wire.Struct(new(v1.Handlers), "*"),
		wire.Struct(new(Router), "*"),
	)
	return nil
}
