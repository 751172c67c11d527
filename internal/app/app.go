package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/diegoclair/meeting-alarm-bot/internal/chat"
	"github.com/diegoclair/meeting-alarm-bot/internal/config"
	"github.com/diegoclair/meeting-alarm-bot/internal/domain/contract"
	"github.com/diegoclair/meeting-alarm-bot/internal/domain/service"
	"github.com/diegoclair/meeting-alarm-bot/internal/handlers"
	"github.com/diegoclair/meeting-alarm-bot/internal/persistence"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	cfg      config.Config
	log      *zap.Logger
	discord  *discordgo.Session
	services *service.Services
	httpSrv  *http.Server
	closeDB  func() error
}

func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	storage, closeDB, err := OpenStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	a := &App{cfg: cfg, log: log, closeDB: closeDB}

	var messenger contract.Messenger
	switch cfg.ChatPlatform {
	case config.PlatformDiscord:
		session, err := discordgo.New("Bot " + cfg.DiscordToken)
		if err != nil {
			closeDB()
			return nil, fmt.Errorf("failed to create discord session: %w", err)
		}
		session.Identify.Intents = discordgo.IntentsGuildMessages |
			discordgo.IntentsDirectMessages |
			discordgo.IntentMessageContent
		a.discord = session
		messenger = chat.NewDiscord(session)
	case config.PlatformSlack:
		messenger = chat.NewSlack(slack.New(cfg.SlackBotToken))
	}

	a.services = service.New(persistence.NewSnapshotter(storage, log), messenger, log, service.Options{
		TickInterval: cfg.TickInterval,
		SendTimeout:  cfg.SendTimeout,
		SaveTimeout:  cfg.SaveTimeout,
	})
	commands := handlers.NewCommandHandler(a.services.Schedule, a.services.Resolver, log)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	switch cfg.ChatPlatform {
	case config.PlatformDiscord:
		a.discord.AddHandler(handlers.NewDiscordHandler(commands, cfg.CommandPrefix, cfg.SendTimeout, log).OnMessageCreate)
	case config.PlatformSlack:
		r.Post("/slack/commands", handlers.NewSlackHandler(commands, cfg.SlackSigningSecret).HandleSlashCommand)
	}

	a.httpSrv = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}

	return a, nil
}

func (a *App) Run(ctx context.Context) error {
	a.log.Info("starting alarm bot",
		zap.String("platform", a.cfg.ChatPlatform),
		zap.String("storage", a.cfg.StorageDriver),
		zap.String("http", a.cfg.HTTPAddr),
	)
	defer a.closeStorage()

	if err := a.services.Schedule.Load(ctx); err != nil {
		return err
	}

	if a.discord != nil {
		if err := a.discord.Open(); err != nil {
			return fmt.Errorf("failed to open discord session: %w", err)
		}
		defer a.discord.Close()
	}

	if err := a.services.Scheduler.Start(); err != nil {
		return err
	}

	go func() {
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server error", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	a.log.Info("shutdown signal received")
	a.services.Scheduler.Stop()

	shCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.httpSrv.Shutdown(shCtx); err != nil {
		a.log.Warn("http server shutdown error", zap.Error(err))
	}
	if err := a.services.Schedule.Flush(shCtx); err != nil {
		a.log.Error("final save failed", zap.Error(err))
		return err
	}
	return nil
}

func (a *App) closeStorage() {
	if err := a.closeDB(); err != nil {
		a.log.Warn("storage close error", zap.Error(err))
	}
}
