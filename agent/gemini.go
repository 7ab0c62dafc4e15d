package main

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

const apiKeySetting = "gemini_api_key"

var ErrNoAPIKey = errors.New("no Gemini API key configured; set gemini.apiKey or store one via the api-key endpoint")

// LLMProvider hands out a Gemini client built once per credential. The
// handle is invalidated explicitly when the credential changes; there is no
// global client state.
type LLMProvider struct {
	configKey string
	model     string
	settings  *Store

	mu        sync.Mutex
	active    llms.Model
	activeKey string

	// newClient is swappable in tests.
	newClient func(ctx context.Context, key, model string) (llms.Model, error)
}

func NewLLMProvider(configKey, model string, settings *Store) *LLMProvider {
	return &LLMProvider{
		configKey: strings.TrimSpace(configKey),
		model:     model,
		settings:  settings,
		newClient: func(ctx context.Context, key, model string) (llms.Model, error) {
			return googleai.New(ctx, googleai.WithAPIKey(key), googleai.WithDefaultModel(model))
		},
	}
}

// Model resolves the current credential and returns a client for it,
// rebuilding the client only when the credential changed.
func (p *LLMProvider) Model(ctx context.Context) (llms.Model, error) {
	key, err := p.resolveKey(ctx)
	if err != nil {
		return nil, err
	}
	if key == "" {
		return nil, ErrNoAPIKey
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.active != nil && p.activeKey == key {
		return p.active, nil
	}

	client, err := p.newClient(ctx, key, p.model)
	if err != nil {
		return nil, err
	}
	p.active = client
	p.activeKey = key
	return client, nil
}

// resolveKey prefers the statically configured credential over the stored
// runtime one.
func (p *LLMProvider) resolveKey(ctx context.Context) (string, error) {
	if p.configKey != "" {
		return p.configKey, nil
	}
	stored, err := p.settings.GetSetting(ctx, apiKeySetting)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(stored), nil
}

// Invalidate drops the cached client so the next call rebuilds it against
// the current credential.
func (p *LLMProvider) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.active = nil
	p.activeKey = ""
}
