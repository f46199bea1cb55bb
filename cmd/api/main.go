package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/academia-backoffice/internal/clock"
	"github.com/BruksfildServices01/academia-backoffice/internal/config"
	dbpkg "github.com/BruksfildServices01/academia-backoffice/internal/db"
	infraRepo "github.com/BruksfildServices01/academia-backoffice/internal/infra/repository"
	"github.com/BruksfildServices01/academia-backoffice/internal/jobs"
	"github.com/BruksfildServices01/academia-backoffice/internal/lock"
	"github.com/BruksfildServices01/academia-backoffice/internal/logger"
	"github.com/BruksfildServices01/academia-backoffice/internal/routes"
	"github.com/BruksfildServices01/academia-backoffice/internal/timezone"
	ucMensalidade "github.com/BruksfildServices01/academia-backoffice/internal/usecase/mensalidade"
)

func main() {

	cfg := config.Load()

	lg, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	loc := timezone.Location(cfg.Timezone)
	clk := clock.System(loc)

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		lg.Fatalw("database unavailable", "error", err)
	}

	repo := infraRepo.NewMensalidadeGormRepository(db)

	// ======================================================
	// VARREDURA DIÁRIA
	// ======================================================
	var locker lock.Locker = lock.Noop{}
	if cfg.RedisURL != "" {
		rdb, err := lock.NewRedisClient(cfg.RedisURL)
		if err != nil {
			lg.Fatalw("invalid REDIS_URL", "error", err)
		}
		defer rdb.Close()
		locker = lock.NewRedisLocker(rdb)
	}

	var sweep *jobs.MensalidadesJob
	if cfg.SweepEnabled {
		gen := ucMensalidade.NewGenerateUpcomingCharges(repo, clk, loc, cfg.SweepWindowDays, lg)
		sweep = jobs.NewMensalidadesJob(gen, locker, loc, lg)
		if err := sweep.Start(cfg.SweepSchedule); err != nil {
			lg.Fatalw("failed to schedule sweep", "error", err)
		}
	}

	// ======================================================
	// HTTP
	// ======================================================
	r := gin.Default()

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Repo:     repo,
		Clock:    clk,
		Location: loc,
		Log:      lg,

		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		lg.Infow("server running", "addr", cfg.Addr(), "timezone", loc.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatalw("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	lg.Infow("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		lg.Errorw("forced shutdown", "error", err)
	}
	if sweep != nil {
		sweep.Stop()
	}
}
