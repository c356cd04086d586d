package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"claudenews/internal/aggregator"
	"claudenews/internal/api"
	"claudenews/internal/collector"
	"claudenews/internal/config"
	"claudenews/internal/scheduler"
	"claudenews/internal/store"
)

// Persisted data older than this triggers a background refresh at startup.
const staleAfter = 6 * time.Hour

func main() {
	cfg := config.Load()

	st := store.New(cfg.DataFile, cfg.RedisAddr)
	loaded := st.Load()

	fetchers, err := collector.NewAll(config.Sources())
	if err != nil {
		log.Fatalf("init fetchers failed: %v", err)
	}

	agg := aggregator.New(fetchers, st)
	sched, err := scheduler.New(agg)
	if err != nil {
		log.Fatalf("init scheduler failed: %v", err)
	}

	// Startup refresh policy: missing or stale data kicks off a cycle in the
	// background; serving starts immediately either way.
	if !loaded {
		log.Println("no cached data found, fetching fresh news...")
		go runStartupCycle(sched)
	} else if age := time.Since(st.Snapshot().LastUpdated); age > staleAfter {
		log.Printf("data is %.1f hours old, refreshing...", age.Hours())
		go runStartupCycle(sched)
	}

	sched.Start()

	r := gin.Default()
	apiServer := api.NewServer(st, sched)
	apiServer.RegisterRoutes(r)

	// Optionally host the static frontend with SPA fallback.
	if cfg.WebRoot != "" {
		r.Static("/assets", filepath.Join(cfg.WebRoot, "assets"))
		indexFile := filepath.Join(cfg.WebRoot, "index.html")
		r.NoRoute(func(c *gin.Context) {
			if c.Request.Method != http.MethodGet {
				c.Status(http.StatusNotFound)
				return
			}
			c.File(indexFile)
		})
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("shutting down...")
		sched.Stop()
		os.Exit(0)
	}()

	addr := ":" + cfg.AppPort
	log.Printf("starting api server at %s ...", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exit: %v", err)
	}
}

func runStartupCycle(sched *scheduler.Scheduler) {
	if _, err := sched.RunCycle(context.Background()); err != nil {
		log.Printf("startup refresh skipped: %v", err)
	}
}
