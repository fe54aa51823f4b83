package prompts

import (
	"context"
	"log/slog"
)

// Service applies the business rules on top of a Store.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService creates the prompt service over the given store.
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger.With("system", "service"),
	}
}

// Add stores a new prompt. The entity starts unfavorited; only the
// assigned id is returned, never a mutated copy of the input.
func (s *Service) Add(ctx context.Context, text string, tags []string, tool string) (int64, error) {
	return s.store.Create(ctx, CreateCommand{
		Text: text,
		Tags: tags,
		Tool: tool,
	})
}

func (s *Service) Get(ctx context.Context, id int64) (*Prompt, error) {
	return s.store.Find(ctx, id)
}

// Update loads the existing prompt and replaces all four mutable fields.
// Full-replace semantics: the command must carry every field's desired
// final value.
func (s *Service) Update(ctx context.Context, id int64, cmd UpdateCommand) error {
	p, err := s.store.Find(ctx, id)
	if err != nil {
		return err
	}

	p.Text = cmd.Text
	p.Tags = cmd.Tags
	p.Tool = cmd.Tool
	p.Favorite = cmd.Favorite

	return s.store.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Prompt, error) {
	return s.store.List(ctx)
}

// SearchAndFilter runs the keyword search in SQL when a keyword is
// present, otherwise starts from the full listing. The favorite filter is
// applied in memory afterward and never touches SQL.
func (s *Service) SearchAndFilter(ctx context.Context, keyword string, favorite *bool) ([]Prompt, error) {
	var (
		prompts []Prompt
		err     error
	)

	if keyword != "" {
		prompts, err = s.store.Search(ctx, keyword)
	} else {
		prompts, err = s.store.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	if favorite == nil {
		return prompts, nil
	}

	filtered := make([]Prompt, 0, len(prompts))
	for _, p := range prompts {
		if p.Favorite == *favorite {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// ToggleFavorite flips the favorite flag and persists it, returning the
// new value. A persist failure surfaces as an error rather than an
// ambiguous not-found signal.
func (s *Service) ToggleFavorite(ctx context.Context, id int64) (bool, error) {
	p, err := s.store.Find(ctx, id)
	if err != nil {
		return false, err
	}

	p.Favorite = !p.Favorite
	if err := s.store.Update(ctx, p); err != nil {
		return false, err
	}

	s.logger.Info("favorite toggled", "id", id, "favorite", p.Favorite)
	return p.Favorite, nil
}
