package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arung-agamani/itunesdb/config"
	"github.com/arung-agamani/itunesdb/internal/api"
	"github.com/arung-agamani/itunesdb/internal/api/service"
	"github.com/arung-agamani/itunesdb/internal/auth"
	"github.com/arung-agamani/itunesdb/internal/device"
	"github.com/arung-agamani/itunesdb/internal/metadata"
	"github.com/arung-agamani/itunesdb/internal/model"
	"github.com/arung-agamani/itunesdb/internal/rng"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	slog.Info("starting iTunesDB device daemon",
		"addr", cfg.Addr,
		"mount_root", cfg.MountRoot,
		"database_path", cfg.DatabasePath,
	)

	if err := device.EnsureMusicFolders(cfg.MountRoot); err != nil {
		slog.Error("failed to prepare device music folders", "error", err)
		os.Exit(1)
	}

	src := rng.Default()
	store, err := device.NewStore(cfg.DatabasePath, src)
	if err != nil {
		slog.Error("failed to open iTunesDB store", "error", err)
		os.Exit(1)
	}

	var lib *model.Library
	if store.Exists() {
		lib, err = store.Load()
		if err != nil {
			slog.Error("failed to load existing iTunesDB", "error", err)
			os.Exit(1)
		}
		slog.Info("loaded existing library", "tracks", lib.TrackCount(), "playlists", lib.PlaylistCount())
	} else {
		lib = model.NewLibrary()
		slog.Info("no iTunesDB found, starting with an empty library")
	}

	provider := metadata.NewChain(metadata.NewTagProvider(), newFFProbeProvider(cfg))
	svc := service.NewLibraryService(lib, store, cfg.MountRoot, provider, src)

	a := auth.New(auth.Config{
		Username:           cfg.AuthUsername,
		Password:           cfg.AuthPassword,
		JWTSecret:          cfg.JWTSecret,
		TokenTTL:           time.Duration(cfg.TokenTTLHours) * time.Hour,
		MaxLoginAttempts:   cfg.MaxLoginAttempts,
		LoginWindowSeconds: cfg.LoginWindowSeconds,
	})

	server := api.NewServer(cfg.Addr, svc, a)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		slog.Info("shutdown signal received")
		cancel()
	}()

	if err := server.Start(ctx); err != nil {
		slog.Error("management API server error", "error", err)
		os.Exit(1)
	}

	slog.Info("saving library before exit")
	if err := svc.Save(); err != nil {
		slog.Error("failed to save library on shutdown", "error", err)
	}
	slog.Info("server stopped")
}

func newFFProbeProvider(cfg *config.Config) *metadata.FFProbeProvider {
	p := metadata.NewFFProbeProvider()
	if cfg.FFProbeBinary != "" {
		p.Binary = cfg.FFProbeBinary
	}
	if cfg.FFProbeTimeout > 0 {
		p.Timeout = cfg.FFProbeTimeout
	}
	return p
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
