package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	authservice "github.com/goserg/padelclub/auth/service"
	botsqlite "github.com/goserg/padelclub/bot/botstorage/sqlite"
	"github.com/goserg/padelclub/bot/tgbot"
	"github.com/goserg/padelclub/internal/config"
	"github.com/goserg/padelclub/internal/logger"
	"github.com/goserg/padelclub/internal/service"
	"github.com/goserg/padelclub/internal/storage/sqlite"
	"github.com/goserg/padelclub/internal/web"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.Debug)

	store, err := sqlite.New(log, cfg.Server)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.WithError(err).Error("close storage")
		}
	}()

	club := service.New(log, store, store, store, cfg.Schedule)

	authCfg, err := authservice.ReadConfig("configs/auth.toml")
	if err != nil {
		return err
	}
	auth, err := authservice.New(context.Background(), authCfg, store, log)
	if err != nil {
		return err
	}

	if cfg.Server.TgBotEnabled {
		botStore, err := botsqlite.New(log, cfg.TgBot)
		if err != nil {
			return err
		}
		bot, err := tgbot.New(club, botStore, cfg, log)
		if err != nil {
			return err
		}
		club.SetNotifier(bot)
		go bot.Run()
		defer bot.Stop()
	}

	server := web.New(club, cfg.Server, auth, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.WithField("signal", sig.String()).Info("shutting down")
		return server.Shutdown()
	}
}
