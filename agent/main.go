package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/kopibdg/barista-rag/catalog"
	"github.com/kopibdg/barista-rag/config"
	"github.com/kopibdg/barista-rag/models"
)

type Agent struct {
	config   *config.Config
	handler  *Handler
	upgrader websocket.Upgrader
	log      *zap.Logger
}

func main() {
	cfg := config.LoadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	store, err := NewStore(cfg.Agent.HistoryPath)
	if err != nil {
		logger.Fatal("failed to open history store", zap.Error(err))
	}
	defer store.Close()

	refs := loadCatalog(cfg, logger)
	llm := NewLLMProvider(cfg.Gemini.APIKey, cfg.Gemini.Model, store)
	handler := NewHandler(refs, llm, store, cfg.Gemini.Temperature, logger)

	agent := &Agent{
		config:   cfg,
		handler:  handler,
		upgrader: websocket.Upgrader{},
		log:      logger,
	}

	if err := agent.Run(); err != nil {
		logger.Fatal("failed to run the agent", zap.Error(err))
	}
}

// loadCatalog reads the reference catalog once at startup, preferring the
// configured database and falling back to the embedded seed.
func loadCatalog(cfg *config.Config, logger *zap.Logger) []models.CoffeeShopReference {
	if !cfg.Postgres.Enabled() {
		logger.Info("using embedded seed catalog")
		return catalog.Seed()
	}

	pg, err := NewCatalogPg(cfg.Postgres.ConnStr())
	if err != nil {
		logger.Fatal("failed to connect to catalog database", zap.Error(err))
	}

	refs, err := pg.LoadReferences(context.Background())
	if err != nil {
		logger.Fatal("failed to load catalog", zap.Error(err))
	}
	if len(refs) == 0 {
		logger.Warn("catalog database is empty, falling back to embedded seed")
		return catalog.Seed()
	}

	logger.Info("catalog loaded", zap.Int("references", len(refs)))
	return refs
}

func (a *Agent) Run() error {
	r := gin.Default()
	r.StaticFile("/", "web/index.html")
	a.registerRoutes(r)

	return r.Run(a.config.Server.Address())
}

func (a *Agent) registerRoutes(r *gin.Engine) {
	r.GET("/search", a.handleSearch)
	r.POST("/chat", a.handleChat)
	r.POST("/crawl", a.handleCrawl)
	r.GET("/shops", a.handleShops)
	r.GET("/hotspots", a.handleHotspots)
	r.GET("/kalcer/quiz", a.handleKalcerQuiz)
	r.POST("/kalcer/evaluate", a.handleKalcerEvaluate)
	r.GET("/history", a.handleHistory)
	r.DELETE("/history", a.handleClearHistory)
	r.PUT("/api-key", a.handleSetAPIKey)
	r.DELETE("/api-key", a.handleClearAPIKey)
}

func (a *Agent) handleSearch(ctx *gin.Context) {
	input, _ := ctx.GetQuery("input")

	c, err := a.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		a.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer c.Close()

	resultChan := a.handler.Chat(ctx.Request.Context(), input)
	for {
		select {
		case <-ctx.Request.Context().Done():
			return
		case result := <-resultChan:
			if result == nil {
				return
			}
			if result.Err != nil {
				if errors.Is(result.Err, io.EOF) {
					return
				}
				if writeErr := c.WriteJSON(WebSocketsMessage{Type: "error", Data: result.Err.Error()}); writeErr != nil {
					a.log.Error("failed to write error to ws connection", zap.Error(writeErr))
				}
				return
			}

			if err := c.WriteJSON(result.Msg); err != nil {
				a.log.Error("failed to write to ws connection", zap.Error(err))
				return
			}
		}
	}
}

func (a *Agent) handleChat(ctx *gin.Context) {
	var req ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Message == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	resp, err := a.handler.ChatStructured(ctx, req.Message)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

func (a *Agent) handleCrawl(ctx *gin.Context) {
	var req CrawlRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Query == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	parsed, err := a.handler.Crawl(ctx, req.Query)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, parsed)
}

func (a *Agent) handleShops(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, a.handler.refs)
}

func (a *Agent) handleHotspots(ctx *gin.Context) {
	limit := 8
	if raw, ok := ctx.GetQuery("limit"); ok {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	ctx.JSON(http.StatusOK, a.handler.Hotspots(limit))
}

func (a *Agent) handleKalcerQuiz(ctx *gin.Context) {
	questions, err := a.handler.GenerateKalcerQuiz(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

func (a *Agent) handleKalcerEvaluate(ctx *gin.Context) {
	var req KalcerEvaluateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := a.handler.EvaluateKalcer(ctx, req.Questions, req.Answers)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (a *Agent) handleHistory(ctx *gin.Context) {
	messages, err := a.handler.History(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if messages == nil {
		messages = []models.ChatMessage{}
	}
	ctx.JSON(http.StatusOK, messages)
}

func (a *Agent) handleClearHistory(ctx *gin.Context) {
	if err := a.handler.ClearHistory(ctx); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "history cleared"})
}

func (a *Agent) handleSetAPIKey(ctx *gin.Context) {
	var req APIKeyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := a.handler.SetAPIKey(ctx, req.Key); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "api key stored"})
}

func (a *Agent) handleClearAPIKey(ctx *gin.Context) {
	if err := a.handler.ClearAPIKey(ctx); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "api key removed"})
}
