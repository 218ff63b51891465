package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/agenthands/cinegraph/internal/core"
	"github.com/agenthands/cinegraph/internal/core/graph"
	"github.com/agenthands/cinegraph/internal/logging"
	"github.com/agenthands/cinegraph/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const requestIDHeader = "X-Request-ID"

type Server struct {
	Explorer *core.Explorer
}

func NewServer(ex *core.Explorer) *Server {
	return &Server{Explorer: ex}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), accessLog())

	r.GET("/healthz", s.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/path", s.ShortestPath)
	r.GET("/neighbors", s.Neighbors)
	r.GET("/overlap", s.Overlap)
	r.GET("/top", s.TopConnected)
	r.GET("/stats", s.Stats)

	return r
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logging.Info().
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type PathRequest struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

func (s *Server) ShortestPath(c *gin.Context) {
	var req PathRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to are required"})
		return
	}

	start := time.Now()
	path, err := graph.ShortestPath(s.Explorer.Graph, req.From, req.To)
	metrics.RecordQuery("path", outcome(err), time.Since(start))
	if err != nil {
		writeQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"path": path, "hops": len(path) - 1})
}

type NeighborsRequest struct {
	Key string `form:"key" binding:"required"`
}

func (s *Server) Neighbors(c *gin.Context) {
	var req NeighborsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key is required"})
		return
	}

	start := time.Now()
	neighbors, err := graph.Neighbors(s.Explorer.Graph, req.Key)
	metrics.RecordQuery("neighbors", outcome(err), time.Since(start))
	if err != nil {
		writeQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"key": req.Key, "neighbors": neighbors})
}

func (s *Server) Overlap(c *gin.Context) {
	start := time.Now()
	titles := graph.CrossSourceOverlap(s.Explorer.Graph)
	metrics.RecordQuery("overlap", "ok", time.Since(start))

	c.JSON(http.StatusOK, gin.H{
		"primary":   s.Explorer.PrimaryName,
		"secondary": s.Explorer.SecondaryName,
		"titles":    titles,
	})
}

func (s *Server) TopConnected(c *gin.Context) {
	limit := s.Explorer.TopLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		limit = n
	}

	start := time.Now()
	ranked := graph.TopConnected(s.Explorer.Graph, limit)
	metrics.RecordQuery("top", "ok", time.Since(start))

	c.JSON(http.StatusOK, gin.H{"limit": limit, "titles": ranked})
}

func (s *Server) Stats(c *gin.Context) {
	report := s.Explorer.Report
	c.JSON(http.StatusOK, gin.H{
		"summary":    s.Explorer.Summary,
		"strategy":   report.Strategy,
		"records":    report.Records,
		"duplicates": len(report.Duplicates),
		"build_ms":   report.Duration.Milliseconds(),
	})
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, graph.ErrNodeNotFound):
		return "not_found"
	case errors.Is(err, graph.ErrNoPathFound):
		return "no_path"
	default:
		return "error"
	}
}

func writeQueryError(c *gin.Context, err error) {
	var nf *graph.NodeNotFoundError
	switch {
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, gin.H{"error": "node_not_found", "missing": nf.Keys})
	case errors.Is(err, graph.ErrNoPathFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "no_path_found"})
	default:
		logging.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
	}
}
