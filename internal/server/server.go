package server

import (
	"embed"
	"io/fs"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/luispauloloureiro/unfdashboard/internal/hub"
	"github.com/luispauloloureiro/unfdashboard/internal/metrics"
	"github.com/luispauloloureiro/unfdashboard/internal/pager"
	"github.com/luispauloloureiro/unfdashboard/internal/store"
)

//go:embed all:web
var webFS embed.FS

// Server holds the Gin engine and dependencies for the dashboard API.
type Server struct {
	engine   *gin.Engine
	store    *store.Store
	hub      *hub.Hub
	pageSize int
	port     string
	now      func() time.Time
}

// New creates the dashboard web server.
func New(st *store.Store, h *hub.Hub, port string, pageSize int) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	// Disable automatic redirects that cause 301 issues.
	engine.RedirectTrailingSlash = false
	engine.RedirectFixedPath = false

	if pageSize < 1 {
		pageSize = pager.DefaultPageSize
	}

	s := &Server{
		engine:   engine,
		store:    st,
		hub:      h,
		pageSize: pageSize,
		port:     port,
		now:      time.Now,
	}

	s.setupRoutes()
	return s
}

// serveEmbedded reads a file from the embedded FS and writes it with the given content type.
func serveEmbedded(webContent fs.FS, name string, contentType string) gin.HandlerFunc {
	// Pre-read the file at startup so we don't read on every request.
	data, err := fs.ReadFile(webContent, name)
	return func(c *gin.Context) {
		if err != nil {
			c.String(http.StatusNotFound, "file not found: %s", name)
			return
		}
		c.Data(http.StatusOK, contentType, data)
	}
}

func (s *Server) setupRoutes() {
	// Extract the embedded web/ content.
	webContent, _ := fs.Sub(webFS, "web")

	// Dashboard — serve embedded files directly with correct content types.
	s.engine.GET("/", serveEmbedded(webContent, "index.html", "text/html; charset=utf-8"))
	s.engine.GET("/style.css", serveEmbedded(webContent, "style.css", "text/css; charset=utf-8"))
	s.engine.GET("/app.js", serveEmbedded(webContent, "app.js", "application/javascript; charset=utf-8"))

	// Health check.
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":        "ok",
			"total_records": len(s.store.Records()),
			"last_refresh":  s.store.LastRefresh(),
			"fallback":      s.store.UsingFallback(),
			"ws_dropped":    s.hub.Dropped(),
		})
	})

	// Pipeline API.
	s.engine.GET("/api/summary", s.handleSummary)
	s.engine.GET("/api/records", s.handleRecords)
	s.engine.GET("/api/ranking", s.handleRanking)
	s.engine.GET("/api/filters", s.handleFilters)
	s.engine.POST("/api/refresh", s.handleRefresh)

	// WebSocket.
	s.engine.GET("/ws", s.handleWebSocket)

	// Prometheus scrape endpoint.
	s.engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	// pprof profiling endpoints.
	s.engine.GET("/debug/pprof/", gin.WrapF(pprof.Index))
	s.engine.GET("/debug/pprof/cmdline", gin.WrapF(pprof.Cmdline))
	s.engine.GET("/debug/pprof/profile", gin.WrapF(pprof.Profile))
	s.engine.GET("/debug/pprof/symbol", gin.WrapF(pprof.Symbol))
	s.engine.GET("/debug/pprof/trace", gin.WrapF(pprof.Trace))
	s.engine.GET("/debug/pprof/allocs", gin.WrapH(pprof.Handler("allocs")))
	s.engine.GET("/debug/pprof/heap", gin.WrapH(pprof.Handler("heap")))
	s.engine.GET("/debug/pprof/goroutine", gin.WrapH(pprof.Handler("goroutine")))
}

// Handler exposes the engine as an http.Handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start runs the server. Blocks until the server is stopped.
func (s *Server) Start() error {
	return s.engine.Run(":" + s.port)
}
