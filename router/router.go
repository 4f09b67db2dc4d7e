package router

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/traPtitech/traPin/repository"
	"github.com/traPtitech/traPin/router/consts"
	"github.com/traPtitech/traPin/router/extension"
	"github.com/traPtitech/traPin/router/middlewares"
	"github.com/traPtitech/traPin/router/session"
	v1 "github.com/traPtitech/traPin/router/v1"
)

type Router struct {
	e  *echo.Echo
	v1 *v1.Handlers
}

// Setup APIサーバーのルーティングを行ったechoを返します
func Setup(repo repository.Repository, sessStore session.Store, logger *zap.Logger, config *Config) *echo.Echo {
	r := newRouter(repo, sessStore, logger.Named("router"), config)

	api := r.e.Group("/api")
	api.GET("/metrics", echoprometheus.NewHandler())
	api.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, http.StatusText(http.StatusOK)) })
	api.GET("/version", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"version":  config.Version,
			"revision": config.Revision,
		})
	})
	r.v1.Setup(api)

	return r.e
}

func newEcho(logger *zap.Logger, config *Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = extension.ErrorHandler(logger)

	// ミドルウェア設定
	e.Use(middlewares.ServerVersion(config.Version))
	e.Use(middlewares.RequestID())
	if config.AccessLogging {
		e.Use(middlewares.AccessLogging(logger.Named("access_log"), config.Development))
	}
	e.Use(middlewares.Recovery(logger))
	if config.Gzipped {
		e.Use(middlewares.Gzip())
	}
	e.Use(extension.Wrap())
	e.Use(middlewares.RequestCounter())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     config.AllowOrigins,
		AllowCredentials: true,
		ExposeHeaders:    []string{consts.HeaderVersion, echo.HeaderXRequestID},
		AllowHeaders:     []string{echo.HeaderContentType},
		MaxAge:           3600,
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace: "pin",
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/api/metrics"
		},
	}))

	return e
}
