package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/pedrodiniz00/sistema-obras/internal/config"
	"github.com/pedrodiniz00/sistema-obras/internal/infra"
	"github.com/pedrodiniz00/sistema-obras/internal/router"
)

var rootCmd = &cobra.Command{
	Use:          "sistema-obras",
	Short:        "Painel de acompanhamento de obras",
	RunE:         serve,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(
		&cobra.Command{Use: "serve", Short: "Inicia a API HTTP", RunE: serve},
		&cobra.Command{Use: "migrate", Short: "Aplica as migrações e sai", RunE: migrate},
		seedCmd,
	)
}

// @title                      Sistema de Obras API
// @version                    1.0
// @description                Painel de obras: cronograma, custos e documento do projeto.
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap loads config and sets up logging, Sentry and the database.
// The returned cleanup flushes Sentry and closes the pool.
func bootstrap() (*config.Config, *gorm.DB, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	if err := infra.SetupLogger(cfg); err != nil {
		return nil, nil, nil, fmt.Errorf("setup logger: %w", err)
	}
	flush, err := infra.SetupSentry(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("sentry desativado")
		flush = func() {}
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		flush()
		return nil, nil, nil, fmt.Errorf("connect database: %w", err)
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		flush()
	}
	return cfg, db, cleanup, nil
}

func serve(cmd *cobra.Command, args []string) error {
	cfg, db, cleanup, err := bootstrap()
	if err != nil {
		return err
	}
	defer cleanup()

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = infra.NewRedis(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer rdb.Close()
	} else {
		log.Info().Msg("REDIS_URL vazio: sessões em memória")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router.New(ctx, cfg, db, rdb),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Msgf("sistema-obras ouvindo em :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info().Msg("encerrando servidor…")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	log.Info().Msg("servidor encerrado")
	return nil
}

func migrate(cmd *cobra.Command, args []string) error {
	_, _, cleanup, err := bootstrap()
	if err != nil {
		return err
	}
	defer cleanup()
	log.Info().Msg("migrações aplicadas")
	return nil
}
