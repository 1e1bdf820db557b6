package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campuslife/CampusLife_Go/internal/announce"
	"github.com/campuslife/CampusLife_Go/internal/config"
	"github.com/campuslife/CampusLife_Go/internal/dailysong"
	"github.com/campuslife/CampusLife_Go/internal/database"
	"github.com/campuslife/CampusLife_Go/internal/database/postgres"
	"github.com/campuslife/CampusLife_Go/internal/memories"
	"github.com/campuslife/CampusLife_Go/internal/music"
	"github.com/campuslife/CampusLife_Go/internal/profile"
	"github.com/campuslife/CampusLife_Go/internal/rant"
	"github.com/campuslife/CampusLife_Go/internal/server"
	"github.com/campuslife/CampusLife_Go/internal/storage"
	"github.com/campuslife/CampusLife_Go/internal/user"
	"github.com/campuslife/CampusLife_Go/internal/wishlist"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	initLogger(cfg)
	slog.Info("Configuration loaded", "environment", cfg.Environment, "port", cfg.Port)

	// Run migrations before opening the pool
	if err := database.Migrate(cfg.GetDBConnString()); err != nil {
		return err
	}

	pool, err := database.NewPool(cfg.GetDBConnString())
	if err != nil {
		return err
	}
	defer pool.Close()

	// Repositories
	userRepo := postgres.NewUserRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	rantRepo := postgres.NewRantRepository(pool)
	memoryRepo := postgres.NewMemoryRepository(pool)
	wishlistRepo := postgres.NewWishlistRepository(pool)
	dailySongRepo := postgres.NewDailySongRepository(pool)

	// File storage
	files, err := storage.NewDiskStore(cfg.StorageDir)
	if err != nil {
		return err
	}

	// Winner announcements are optional
	var notifier dailysong.Notifier
	if cfg.AnnouncementsEnabled() {
		announcer, err := announce.NewDiscordAnnouncer(announce.Config{
			Token:     cfg.DiscordToken,
			ChannelID: cfg.DiscordChannelID,
		})
		if err != nil {
			return err
		}
		notifier = announcer
		slog.Info("Winner announcements enabled", "channel_id", cfg.DiscordChannelID)
	}

	// The config validated the timezone at load time
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return err
	}

	// Services
	tokens := user.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	services := server.Services{
		User:      user.NewService(userRepo, tokens),
		Profile:   profile.NewService(profileRepo, files),
		Rant:      rant.NewService(rantRepo),
		Memories:  memories.NewService(memoryRepo, files),
		Wishlist:  wishlist.NewService(wishlistRepo),
		DailySong: dailysong.NewService(dailySongRepo, dailysong.NewClock(location), notifier),
		Music:     music.NewClient(cfg.ITunesBaseURL),
	}

	srv := server.NewServer(cfg.Port, nil, cfg.MaxUploadBytes, pool, services)

	// Serve until interrupted, then drain connections
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Stop(ctx)
}
