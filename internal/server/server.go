// Package server exposes the consolidation and rendering engines over HTTP.
// Transport retries, authentication and persistence belong to the caller;
// every endpoint here is a pure computation over its request body.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rezonia/invoice-issuer/internal/consolidate"
	"github.com/rezonia/invoice-issuer/internal/export"
	"github.com/rezonia/invoice-issuer/internal/model"
	"github.com/rezonia/invoice-issuer/internal/refdata"
	"github.com/rezonia/invoice-issuer/internal/render"
)

// Config holds server configuration.
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

// Server represents the HTTP API server.
type Server struct {
	config *Config
	router *gin.Engine
	logger *zap.Logger
}

// NewServer creates a new API server.
func NewServer(config *Config, logger *zap.Logger) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if config.Debug {
		router.Use(gin.Logger())
	}

	s := &Server{
		config: config,
		router: router,
		logger: logger,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/consolidate", s.handleConsolidate)
		v1.POST("/invoices/render", s.handleRenderInvoice)
		v1.POST("/invoices/render-batch", s.handleRenderBatch)
		v1.POST("/summary/render", s.handleRenderSummary)
	}
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers and tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleConsolidate(c *gin.Context) {
	var req ConsolidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}
	if len(req.Lines) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no billing lines"})
		return
	}

	store := refdata.NewStore(req.Companies, req.Projects)

	merged, mergeWarns := consolidate.MergeBills(req.Lines)
	records, aggWarns := consolidate.Aggregate(merged, store, req.InvoiceDate)
	records = consolidate.Stamp(records, time.Now(), req.Reprint)

	warnings := make([]string, 0, len(mergeWarns)+len(aggWarns))
	for _, w := range append(mergeWarns, aggWarns...) {
		warnings = append(warnings, w.Error())
	}

	s.logger.Info("consolidated billing batch",
		zap.Int("lines", len(req.Lines)),
		zap.Int("invoices", len(records)),
		zap.Int("warnings", len(warnings)))

	c.JSON(http.StatusOK, ConsolidateResponse{Records: records, Warnings: warnings})
}

func (s *Server) handleRenderInvoice(c *gin.Context) {
	var rec model.InvoiceRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid invoice record", Details: err.Error()})
		return
	}

	doc, err := render.NewInvoiceBuilder().Build(rec)
	if err != nil {
		s.logger.Error("invoice render failed", zap.String("pbl_key", rec.PBLKey), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return
	}

	c.Data(http.StatusOK, "application/pdf", doc)
}

func (s *Server) handleRenderBatch(c *gin.Context) {
	var req RenderBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}
	if len(req.Records) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no records"})
		return
	}

	doc, err := render.BuildBatch(req.Records)
	if err != nil {
		s.logger.Error("batch render failed", zap.Int("records", len(req.Records)), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return
	}

	c.Data(http.StatusOK, "application/pdf", doc)
}

func (s *Server) handleRenderSummary(c *gin.Context) {
	var req RenderBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}
	if len(req.Records) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no records"})
		return
	}

	if c.Query("format") == "xlsx" {
		doc, err := export.SummaryWorkbook(req.Records)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
			return
		}
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", doc)
		return
	}

	doc, err := render.NewSummaryBuilder(req.Title).Build(req.Records)
	if err != nil {
		s.logger.Error("summary render failed", zap.Int("records", len(req.Records)), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return
	}

	c.Data(http.StatusOK, "application/pdf", doc)
}
