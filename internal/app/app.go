package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/rktclgh/fairplay-booth/internal/auth"
	"github.com/rktclgh/fairplay-booth/internal/broker"
	"github.com/rktclgh/fairplay-booth/internal/cache"
	"github.com/rktclgh/fairplay-booth/internal/clock"
	"github.com/rktclgh/fairplay-booth/internal/config"
	"github.com/rktclgh/fairplay-booth/internal/credential"
	"github.com/rktclgh/fairplay-booth/internal/handler"
	"github.com/rktclgh/fairplay-booth/internal/hub"
	"github.com/rktclgh/fairplay-booth/internal/middleware"
	"github.com/rktclgh/fairplay-booth/internal/notification"
	"github.com/rktclgh/fairplay-booth/internal/repository"
	"github.com/rktclgh/fairplay-booth/internal/repository/memory"
	"github.com/rktclgh/fairplay-booth/internal/router"
	"github.com/rktclgh/fairplay-booth/internal/scheduler"
	"github.com/rktclgh/fairplay-booth/internal/service"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
	closers    []namedCloser
}

type namedCloser struct {
	name  string
	close func() error
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"FairplayBooth",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	deps := service.Deps{
		Clock:       clock.Real(),
		Logger:      log,
		NoShowGrace: cfg.Scheduler.NoShowGrace,
	}

	if err = app.initStorage(&deps); err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	if err = app.initCache(&deps); err != nil {
		return nil, fmt.Errorf("init cache: %w", err)
	}

	h, err := app.initHub()
	if err != nil {
		return nil, fmt.Errorf("init hub: %w", err)
	}
	deps.Publisher = h

	if err = app.initServices(deps, h); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStorage(deps *service.Deps) error {
	if a.cfg.Storage.Driver == config.StorageMemory {
		store := memory.NewStore()
		deps.Tx = memory.NewTxManager(store)
		deps.Experiences = memory.NewExperienceRepo(store)
		deps.Reservations = memory.NewReservationRepo(store)
		deps.Credentials = memory.NewCredentialRepo(store)
		deps.CheckEvents = memory.NewCheckEventRepo(store)
		deps.Attendees = memory.NewAttendeeRepo(store)
		a.log.Warn("using in-memory storage, state is lost on restart")
		return nil
	}

	if err := a.runMigrations(); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	if err := a.initDB(); err != nil {
		return fmt.Errorf("init db: %w", err)
	}

	deps.Tx = repository.NewTxManager(a.db)
	deps.Experiences = repository.NewExperienceRepo(a.db)
	deps.Reservations = repository.NewReservationRepo(a.db)
	deps.Credentials = repository.NewCredentialRepo(a.db)
	deps.CheckEvents = repository.NewCheckEventRepo(a.db)
	deps.Attendees = repository.NewAttendeeRepo(a.db)
	return nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	a.db = db
	a.closers = append(a.closers, namedCloser{"database", db.Master.Close})
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initCache(deps *service.Deps) error {
	if !a.cfg.Redis.Enabled {
		deps.Cache = cache.NewMemoryStatusCache(a.cfg.Redis.TTL, deps.Clock)
		return nil
	}

	c, err := cache.NewRedisStatusCache(context.Background(), cache.RedisOptions{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
		TTL:      a.cfg.Redis.TTL,
	})
	if err != nil {
		return err
	}

	deps.Cache = c
	a.closers = append(a.closers, namedCloser{"redis", c.Close})
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
	)
	return nil
}

func (a *App) initHub() (*hub.Hub, error) {
	opts := []hub.Option{
		hub.WithBuffer(a.cfg.Hub.Buffer),
		hub.WithSinkTimeout(a.cfg.Hub.SinkTimeout),
		hub.WithSinkQueue(a.cfg.Hub.SinkQueue),
	}

	if a.cfg.RabbitMQ.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), a.cfg.RabbitMQ.DialTimeout)
		defer cancel()

		b, err := broker.NewBroker(ctx, a.cfg.RabbitMQ.URL, a.cfg.RabbitMQ.Exchange, a.cfg.RabbitMQ.DialTimeout, a.log)
		if err != nil {
			return nil, fmt.Errorf("init broker: %w", err)
		}
		opts = append(opts, hub.WithSink(b))
		a.closers = append(a.closers, namedCloser{"rabbitmq", b.Close})
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "rabbitmq sink enabled",
			logger.String("exchange", a.cfg.RabbitMQ.Exchange),
		)
	}

	h := hub.New(a.log, opts...)
	a.closers = append(a.closers, namedCloser{"hub", func() error {
		ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Hub.SinkTimeout)
		defer cancel()
		return h.Close(ctx)
	}})
	return h, nil
}

func (a *App) initServices(deps service.Deps, h *hub.Hub) error {
	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}
	deps.Notifier = n

	codec, err := credential.NewCodecFromHex(a.cfg.Credential.Key)
	if err != nil {
		return fmt.Errorf("init credential codec: %w", err)
	}

	tokens, err := auth.NewTokens([]byte(a.cfg.Auth.Secret), a.cfg.Auth.TokenTTL, deps.Clock)
	if err != nil {
		return fmt.Errorf("init tokens: %w", err)
	}

	experienceService := service.NewExperienceService(deps)
	reservationService := service.NewReservationService(deps)
	credentialService := service.NewCredentialService(deps, codec, a.cfg.Credential.TTL)
	checkpointGate := service.NewCheckpointGate(deps, credentialService, a.cfg.Gate.Timeout)
	attendeeService := service.NewAttendeeService(deps)

	a.scheduler = scheduler.New(
		reservationService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	hd := handler.NewHandler(handler.Services{
		Experiences:  experienceService,
		Reservations: reservationService,
		Credentials:  credentialService,
		Checkpoint:   checkpointGate,
		Attendees:    attendeeService,
		Tokens:       tokens,
		Subscriber:   h,
	})
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		hd,
		router.Auth{
			Required: middleware.Auth(tokens),
			Optional: middleware.OptionalAuth(tokens),
		},
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}
	a.httpServer.RegisterOnShutdown(hd.CloseStreams)

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", a.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", a.httpServer.Addr, err)
	}

	return a.serve(ctx, ln)
}

// serve runs the HTTP server and the scheduler on ln until ctx ends, then
// shuts everything down.
func (a *App) serve(ctx context.Context, ln net.Listener) error {
	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", ln.Addr().String()),
			logger.String("storage", a.cfg.Storage.Driver),
		)
		if err := a.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return errors.Join(err, a.shutdown())
	}

	return a.shutdown()
}

// shutdown stops the HTTP server and then runs every closer, even when the
// server did not stop cleanly.
func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.ShutdownTimeout,
	)
	defer cancel()

	var errs []error
	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("http server shutdown: %w", err))
	} else {
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")
	}

	for i := len(a.closers) - 1; i >= 0; i-- {
		c := a.closers[i]
		if err := c.close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", c.name, err))
			continue
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, c.name+" closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return errors.Join(errs...)
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
