package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm/logger"

	httpadp "sacco-admin/internal/adapter/http"
	"sacco-admin/internal/adapter/repository/mysql"
	"sacco-admin/internal/config"
	"sacco-admin/internal/domain/errs"
	"sacco-admin/internal/infrastructure/cache"
	"sacco-admin/internal/infrastructure/db"
	applog "sacco-admin/internal/log"
	"sacco-admin/internal/shell"
	"sacco-admin/internal/usecase/dashboard"
	"sacco-admin/internal/usecase/loan"
	"sacco-admin/internal/usecase/member"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()
	log := applog.New(applog.Config{Level: cfg.SlogLevel(), Component: "sacco-admin"})
	applog.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormLevel := logger.Warn
	if cfg.LogLevel == "debug" {
		gormLevel = logger.Info
	}
	gdb, err := db.OpenGorm(cfg.DBDriver, cfg.DSN(), gormLevel)
	if err != nil {
		if errors.Is(err, errs.ErrConnection) {
			log.Error("cannot reach database", "driver", cfg.DBDriver, "error", err)
		} else {
			log.Error("database setup failed", "error", err)
		}
		os.Exit(1)
	}
	gw := mysql.NewGateway(gdb)
	defer func() { _ = gw.Close() }()

	if err := gw.EnsureSchema(ctx); err != nil {
		log.Error("schema setup failed", "error", err)
		os.Exit(1)
	}
	log.Info("database ready", "driver", cfg.DBDriver)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = cache.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			log.Error("cannot reach redis", "addr", cfg.RedisAddr, "error", err)
			os.Exit(1)
		}
		defer func() { _ = rdb.Close() }()
		log.Info("duplicate-submit guard enabled", "addr", cfg.RedisAddr, "ttl", cfg.IdempotencyTTL())
	}

	members := member.NewUsecase(gw.Members)
	loans := loan.NewUsecase(gw.Loans, gw.Tx)
	dash := dashboard.NewUsecase(gw)

	e, err := httpadp.NewServer(httpadp.Deps{
		Shell:     shell.New(dash, members, loans),
		Members:   members,
		Loans:     loans,
		Dashboard: dash,
		DB:        gw,
		Logger:    log.WithComponent("http").Logger,
		Redis:     rdb,
		IdempTTL:  cfg.IdempotencyTTL(),
	})
	if err != nil {
		log.Error("server setup failed", "error", err)
		os.Exit(1)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		addr := ":" + cfg.AppPort
		log.Info("listening", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
	log.Info("shutdown complete")
}
