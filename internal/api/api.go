// Package api is the facade a front end binds to. It groups the prompt
// service operations one-to-one and adds no logic of its own; it exists
// so front ends stay decoupled from the service's construction.
package api

import (
	"context"

	"promptstash/internal/prompts"
)

// API exposes prompt operations to a front end.
type API struct {
	system prompts.System
}

// New creates the facade over a prompt system.
func New(system prompts.System) *API {
	return &API{system: system}
}

func (a *API) AddPrompt(ctx context.Context, text string, tags []string, tool string) (int64, error) {
	return a.system.Add(ctx, text, tags, tool)
}

func (a *API) GetPrompt(ctx context.Context, id int64) (*prompts.Prompt, error) {
	return a.system.Get(ctx, id)
}

func (a *API) UpdatePrompt(ctx context.Context, id int64, cmd prompts.UpdateCommand) error {
	return a.system.Update(ctx, id, cmd)
}

func (a *API) DeletePrompt(ctx context.Context, id int64) error {
	return a.system.Delete(ctx, id)
}

func (a *API) ListPrompts(ctx context.Context) ([]prompts.Prompt, error) {
	return a.system.List(ctx)
}

func (a *API) SearchPrompts(ctx context.Context, keyword string, favorite *bool) ([]prompts.Prompt, error) {
	return a.system.SearchAndFilter(ctx, keyword, favorite)
}

func (a *API) ToggleFavorite(ctx context.Context, id int64) (bool, error) {
	return a.system.ToggleFavorite(ctx, id)
}
