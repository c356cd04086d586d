// Package api is the thin route layer mapping HTTP onto the core's query,
// stats and refresh operations.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"claudenews/internal/config"
	"claudenews/internal/scheduler"
	"claudenews/internal/store"
)

var startTime = time.Now()

type Server struct {
	store *store.Store
	sched *scheduler.Scheduler
}

func NewServer(st *store.Store, sched *scheduler.Scheduler) *Server {
	return &Server{store: st, sched: sched}
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", s.health)

	api := r.Group("/api")
	{
		api.GET("/news", s.listNews)
		api.GET("/news/featured", s.featuredNews)
		api.GET("/categories", s.listCategories)
		api.GET("/stats", s.stats)
		api.POST("/refresh", s.refresh)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"uptime":    time.Since(startTime).Seconds(),
		"timestamp": time.Now().UTC(),
	})
}

func (s *Server) listNews(c *gin.Context) {
	result := s.store.Query(store.QueryOptions{
		Category:     c.Query("category"),
		Search:       c.Query("search"),
		MinRelevance: intQuery(c, "minRelevance", 0),
		Page:         intQuery(c, "page", 1),
		Limit:        intQuery(c, "limit", 20),
	})

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"articles":    result.Articles,
		"total":       result.Total,
		"page":        result.Page,
		"totalPages":  result.TotalPages,
		"lastUpdated": s.store.Snapshot().LastUpdated,
	})
}

// featuredNews is a fixed-parameter query: the top 5 articles at relevance
// 30 or higher.
func (s *Server) featuredNews(c *gin.Context) {
	result := s.store.Query(store.QueryOptions{
		MinRelevance: 30,
		Page:         1,
		Limit:        5,
	})

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"articles": result.Articles,
	})
}

func (s *Server) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"categories": config.Categories(),
	})
}

func (s *Server) stats(c *gin.Context) {
	st := s.store.StatsReport()
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"totalArticles": st.TotalArticles,
		"lastUpdated":   st.LastUpdated,
		"categories":    st.Categories,
		"avgRelevance":  st.AvgRelevance,
		"scheduler":     s.sched.CurrentStatus(),
	})
}

func (s *Server) refresh(c *gin.Context) {
	// Deliberately not the request context: a client disconnect must not
	// cancel an ingestion cycle that is already running.
	result, err := s.sched.RunCycle(context.Background())
	if errors.Is(err, scheduler.ErrFetchInProgress) {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "Refresh already in progress",
		})
		return
	}

	msg := "No new articles found - check back later"
	if result.NewCount > 0 {
		msg = fmt.Sprintf("Found %d NEW articles!", result.NewCount)
	}
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       msg,
		"newCount":      result.NewCount,
		"totalArticles": result.TotalArticles,
	})
}

func intQuery(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.DefaultQuery(key, strconv.Itoa(def)))
	if err != nil || v < 0 {
		return def
	}
	return v
}
