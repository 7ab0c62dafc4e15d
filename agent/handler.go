package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"

	"github.com/kopibdg/barista-rag/barista"
	"github.com/kopibdg/barista-rag/models"
)

// Handler orchestrates one conversation turn: analyze the query, rank the
// catalog, compose the grounding prompt, call the model, parse the response
// and persist both sides of the exchange.
type Handler struct {
	refs        []models.CoffeeShopReference
	analyzer    *barista.Analyzer
	parser      *barista.Parser
	llm         *LLMProvider
	store       *Store
	temperature float64
	log         *zap.Logger
}

func NewHandler(refs []models.CoffeeShopReference, llm *LLMProvider, store *Store, temperature float64, log *zap.Logger) *Handler {
	return &Handler{
		refs:        refs,
		analyzer:    barista.NewAnalyzer(refs),
		parser:      barista.NewParser(log),
		llm:         llm,
		store:       store,
		temperature: temperature,
		log:         log,
	}
}

// Chat runs the free-text conversation turn, streaming intermediate frames:
// the query analysis (debug), then the route or shop cards, then the intro
// prose. The channel is closed after an io.EOF result.
func (h *Handler) Chat(ctx context.Context, input string) chan *ProcessingResult {
	resultChan := make(chan *ProcessingResult)

	go func() {
		defer close(resultChan)

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		// An abandoned consumer must not leave this goroutine blocked on
		// the unbuffered channel.
		send := func(result *ProcessingResult) bool {
			select {
			case resultChan <- result:
				return true
			case <-ctx.Done():
				return false
			}
		}

		analysis := h.analyzer.Analyze(input)
		if !send(&ProcessingResult{Msg: WebSocketsMessage{Type: "debug", Data: analysis}}) {
			return
		}

		parsed, raw, err := h.converse(ctx, barista.BaristaSysPrompt, analysis, input)
		if err != nil {
			send(&ProcessingResult{Err: err})
			return
		}

		switch {
		case parsed.Route != nil:
			if !send(&ProcessingResult{Msg: WebSocketsMessage{Type: "route", Data: parsed.Route}}) {
				return
			}
		case len(parsed.CoffeeShops) > 0:
			if !send(&ProcessingResult{Msg: WebSocketsMessage{Type: "shops", Data: parsed.CoffeeShops}}) {
				return
			}
		}

		if barista.MeaningfulIntro(parsed.Intro) {
			if !send(&ProcessingResult{Msg: WebSocketsMessage{Type: "chat", Data: parsed.Intro}}) {
				return
			}
		} else if parsed.Route == nil && len(parsed.CoffeeShops) == 0 {
			// Conversational turn with nothing extractable: show the prose.
			if !send(&ProcessingResult{Msg: WebSocketsMessage{Type: "chat", Data: raw}}) {
				return
			}
		}

		send(&ProcessingResult{Err: io.EOF})
	}()

	return resultChan
}

// Crawl runs the coffee-crawl variant synchronously.
func (h *Handler) Crawl(ctx context.Context, query string) (barista.ParsedResponse, error) {
	analysis := h.analyzer.Analyze(query)
	parsed, _, err := h.converse(ctx, barista.CrawlSysPrompt, analysis, query)
	return parsed, err
}

// converse is the shared free-text turn: persist the user message, call the
// model with history plus the grounding prompt, parse defensively, persist
// the AI message.
func (h *Handler) converse(ctx context.Context, sysPrompt string, analysis barista.Analysis, input string) (barista.ParsedResponse, string, error) {
	ranked := barista.Rank(h.refs, analysis)
	prompt := barista.ComposePrompt(analysis, ranked, input)

	history, err := h.store.Messages(ctx)
	if err != nil {
		h.log.Warn("failed to load chat history, continuing without context", zap.Error(err))
		history = nil
	}

	userMsg := models.ChatMessage{ID: newMessageID("user"), Sender: models.SenderUser, Text: input}
	if err := h.store.AppendMessage(ctx, userMsg); err != nil {
		h.log.Warn("failed to persist user message", zap.Error(err))
	}

	raw, err := h.generate(ctx, sysPrompt, history, prompt, false)
	if err != nil {
		return barista.ParsedResponse{}, "", err
	}

	parsed := h.parser.Parse(raw)

	aiMsg := models.ChatMessage{
		ID:               newMessageID("ai"),
		Sender:           models.SenderAI,
		Text:             parsed.Intro,
		CoffeeShops:      parsed.CoffeeShops,
		CoffeeCrawlRoute: parsed.Route,
		RawAIResponse:    raw,
	}
	if len(parsed.CoffeeShops) == 0 && parsed.Route == nil {
		aiMsg.Text = raw
	}
	if err := h.store.AppendMessage(ctx, aiMsg); err != nil {
		h.log.Warn("failed to persist ai message", zap.Error(err))
	}

	return parsed, raw, nil
}

// ChatStructured runs the schema-constrained variant. A JSON parse failure
// is fatal for the call, but the history still records an AI turn carrying
// the apology text so the chat stays consistent.
func (h *Handler) ChatStructured(ctx context.Context, input string) (ChatResponse, error) {
	analysis := h.analyzer.Analyze(input)
	ranked := barista.Rank(h.refs, analysis)
	prompt := barista.ComposePrompt(analysis, ranked, input)

	history, err := h.store.Messages(ctx)
	if err != nil {
		h.log.Warn("failed to load chat history, continuing without context", zap.Error(err))
		history = nil
	}

	userMsg := models.ChatMessage{ID: newMessageID("user"), Sender: models.SenderUser, Text: input}
	if err := h.store.AppendMessage(ctx, userMsg); err != nil {
		h.log.Warn("failed to persist user message", zap.Error(err))
	}

	raw, err := h.generate(ctx, barista.StructuredSysPrompt, history, prompt, true)
	if err != nil {
		return ChatResponse{}, err
	}

	reply, shops, err := barista.ParseStructured(raw)
	if err != nil {
		apology := models.ChatMessage{
			ID:            newMessageID("ai"),
			Sender:        models.SenderAI,
			Text:          fmt.Sprintf("Maaf, terjadi kesalahan: %v. Coba lagi ya.", err),
			RawAIResponse: raw,
		}
		if appendErr := h.store.AppendMessage(ctx, apology); appendErr != nil {
			h.log.Warn("failed to persist apology message", zap.Error(appendErr))
		}
		return ChatResponse{}, err
	}

	aiMsg := models.ChatMessage{
		ID:            newMessageID("ai"),
		Sender:        models.SenderAI,
		Text:          reply,
		CoffeeShops:   shops,
		RawAIResponse: raw,
	}
	if err := h.store.AppendMessage(ctx, aiMsg); err != nil {
		h.log.Warn("failed to persist ai message", zap.Error(err))
	}

	return ChatResponse{Reply: reply, CoffeeShops: shops}, nil
}

// GenerateKalcerQuiz asks the model for the vibe-score quiz.
func (h *Handler) GenerateKalcerQuiz(ctx context.Context) ([]models.KalcerQuestion, error) {
	raw, err := h.generate(ctx, "", nil, barista.KalcerQuizPrompt, true)
	if err != nil {
		return nil, err
	}
	return barista.ParseKalcerQuiz(raw)
}

// EvaluateKalcer scores the quiz answers.
func (h *Handler) EvaluateKalcer(ctx context.Context, questions []models.KalcerQuestion, answers []string) (models.KalcerResult, error) {
	if len(questions) == 0 || len(questions) != len(answers) {
		return models.KalcerResult{}, fmt.Errorf("expected one answer per question, got %d answers for %d questions", len(answers), len(questions))
	}

	var b strings.Builder
	b.WriteString(barista.KalcerEvalPrompt)
	for i, q := range questions {
		fmt.Fprintf(&b, "%d. %s\n   Jawaban: %s\n", i+1, q.Question, answers[i])
	}

	raw, err := h.generate(ctx, "", nil, b.String(), true)
	if err != nil {
		return models.KalcerResult{}, err
	}
	return barista.ParseKalcerResult(raw)
}

// Hotspots derives the map-explorer entries from the catalog: rating-only
// ranking plus deterministic card artwork.
func (h *Handler) Hotspots(limit int) []Hotspot {
	ranked := barista.Rank(h.refs, h.analyzer.Analyze(""))
	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}

	hotspots := make([]Hotspot, 0, len(ranked))
	for _, ref := range ranked {
		hotspots = append(hotspots, Hotspot{
			Name:      ref.Name,
			Address:   ref.Address,
			Reason:    ref.Reason,
			Rating:    ref.Rating,
			Mood:      ref.Mood,
			MapsQuery: ref.MapsQuery,
			Location:  ref.Location,
			Art:       barista.GenerateArt(ref.Name),
		})
	}
	return hotspots
}

func (h *Handler) History(ctx context.Context) ([]models.ChatMessage, error) {
	return h.store.Messages(ctx)
}

func (h *Handler) ClearHistory(ctx context.Context) error {
	return h.store.ClearMessages(ctx)
}

func (h *Handler) SetAPIKey(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("api key must not be empty")
	}
	if err := h.store.SetSetting(ctx, apiKeySetting, key); err != nil {
		return err
	}
	h.llm.Invalidate()
	return nil
}

func (h *Handler) ClearAPIKey(ctx context.Context) error {
	if err := h.store.DeleteSetting(ctx, apiKeySetting); err != nil {
		return err
	}
	h.llm.Invalidate()
	return nil
}

func (h *Handler) generate(ctx context.Context, sysPrompt string, history []models.ChatMessage, prompt string, jsonMode bool) (string, error) {
	model, err := h.llm.Model(ctx)
	if err != nil {
		return "", err
	}

	var messages []llms.MessageContent
	if sysPrompt != "" {
		messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, sysPrompt))
	}
	for _, msg := range history {
		role := llms.ChatMessageTypeHuman
		if msg.Sender == models.SenderAI {
			role = llms.ChatMessageTypeAI
		}
		messages = append(messages, llms.TextParts(role, historyText(msg)))
	}
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, prompt))

	opts := []llms.CallOption{llms.WithTemperature(h.temperature)}
	if jsonMode {
		opts = append(opts, llms.WithJSONMode())
	}

	content, err := model.GenerateContent(ctx, messages, opts...)
	if err != nil {
		return "", fmt.Errorf("model call failed: %w", err)
	}
	if len(content.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}

	return content.Choices[0].Content, nil
}

// historyText flattens a persisted turn back into plain text for the model,
// folding extracted shop cards into the historical context.
func historyText(msg models.ChatMessage) string {
	if len(msg.CoffeeShops) == 0 {
		return msg.Text
	}

	var b strings.Builder
	b.WriteString(msg.Text)
	b.WriteString("\nBerikut rekomendasinya:\n")
	for _, shop := range msg.CoffeeShops {
		fmt.Fprintf(&b, "- %s: %s\n", shop.Name, shop.Reason)
	}
	return b.String()
}

func newMessageID(suffix string) string {
	return fmt.Sprintf("%d-%s", time.Now().UnixNano(), suffix)
}
