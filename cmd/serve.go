package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/leandro-lugaresi/hub"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/traPtitech/traPin/repository/gorm"
	"github.com/traPtitech/traPin/router"
	"github.com/traPtitech/traPin/router/session"
	"github.com/traPtitech/traPin/service"
	"github.com/traPtitech/traPin/utils/gormzap"
)

// serveCommand サーバー起動コマンド
func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve pin API",
		Run: func(cmd *cobra.Command, args []string) {
			// Logger
			logger := getLogger()
			defer logger.Sync()

			logger.Info(fmt.Sprintf("pin %s (revision %s)", Version, Revision))

			// Cloud Profiler
			if c.GCP.Profiler.Enabled {
				if err := initProfiler(&c); err != nil {
					logger.Fatal("failed to setup Cloud Profiler", zap.Error(err))
				}
				logger.Info("cloud profiler started")
			}

			// Message Hub
			hub := hub.New()

			// Database
			logger.Info("connecting database...")
			engine, err := c.getDatabase()
			if err != nil {
				logger.Fatal("failed to connect database", zap.Error(err))
			}
			engine.Logger = gormzap.New(logger.Named("gorm"))
			db, err := engine.DB()
			if err != nil {
				logger.Fatal("failed to get *sql.DB", zap.Error(err))
			}
			defer db.Close()
			logger.Info("database connection was established")

			// Repository
			logger.Info("setting up repository...")
			repo, init, err := gorm.NewGormRepository(engine, hub, logger, true)
			if err != nil {
				logger.Fatal("failed to initialize repository", zap.Error(err))
			}
			if init {
				logger.Info("database was initialized with master data")
			}
			logger.Info("repository was set up")

			// Services
			ss, err := service.NewServices(engine, hub, logger)
			if err != nil {
				logger.Fatal("failed to setup services", zap.Error(err))
			}

			// Session Store
			sessStore, err := c.getSessionStore(engine)
			if err != nil {
				logger.Fatal("failed to setup session store", zap.Error(err))
			}

			server := newServer(logger, ss, router.Setup(repo, sessStore, logger, provideRouterConfig(&c)), hub, sessStore)

			go func() {
				if err := server.Start(fmt.Sprintf(":%d", c.Port)); err != nil {
					logger.Info("shutting down the server")
				}
			}()

			logger.Info("pin started")
			waitSIGINT()
			logger.Info("pin shutting down...")

			ctx, cancel := context.WithTimeout(context.Background(), time.Duration(c.ShutdownTimeout)*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				logger.Warn("abnormal shutdown", zap.Error(err))
			}
			logger.Info("pin shutdown")
		},
	}
}

type Server struct {
	L         *zap.Logger
	SS        *service.Services
	Router    *echo.Echo
	Hub       *hub.Hub
	SessStore session.Store

	gcCtx  context.Context
	stopGC context.CancelFunc
}

func newServer(logger *zap.Logger, ss *service.Services, e *echo.Echo, hub *hub.Hub, sessStore session.Store) *Server {
	gcCtx, stopGC := context.WithCancel(context.Background())
	return &Server{
		L:         logger,
		SS:        ss,
		Router:    e,
		Hub:       hub,
		SessStore: sessStore,
		gcCtx:     gcCtx,
		stopGC:    stopGC,
	}
}

func (s *Server) Start(address string) error {
	go session.RunGC(s.gcCtx, s.SessStore, time.Duration(c.Session.GCInterval)*time.Second, s.L.Named("session"))
	return s.Router.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		err := s.Router.Shutdown(ctx)
		s.L.Info("Router shutdown")
		return err
	})
	eg.Go(func() error {
		s.stopGC()
		s.L.Info("Session GC shutdown")
		return nil
	})
	eg.Go(func() error {
		s.Hub.Close()
		s.L.Info("Hub shutdown")
		return nil
	})
	return eg.Wait()
}
