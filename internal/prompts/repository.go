package prompts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"promptstash/pkg/query"
	"promptstash/pkg/repository"
)

type store struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewStore creates the prompt storage layer over the given handle.
// The handle is owned by the caller; the store never closes it.
func NewStore(db *sql.DB, logger *slog.Logger) Store {
	return &store{
		db:     db,
		logger: logger.With("system", "prompts"),
	}
}

func (s *store) Create(ctx context.Context, cmd CreateCommand) (int64, error) {
	q := `
		INSERT INTO prompts(text, tags, tool)
		VALUES ($1, $2, $3)
		RETURNING id`

	args := []any{cmd.Text, JoinTags(cmd.Tags), cmd.Tool}

	id, err := repository.WithTx(ctx, s.db, func(tx *sql.Tx) (int64, error) {
		return repository.QueryOne(ctx, tx, q, args, scanID)
	})

	if err != nil {
		s.logger.Error("prompt insert failed", "error", err)
		return 0, fmt.Errorf("insert prompt: %w", err)
	}

	s.logger.Info("prompt created", "id", id, "tool", cmd.Tool)
	return id, nil
}

func (s *store) Find(ctx context.Context, id int64) (*Prompt, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	p, err := repository.QueryOne(ctx, s.db, q, args, scanPrompt)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound)
	}
	return &p, nil
}

// Update replaces every mutable field of the matching row.
func (s *store) Update(ctx context.Context, p *Prompt) error {
	if p.ID == 0 {
		return ErrMissingID
	}

	q := `
		UPDATE prompts
		SET text = $1, tags = $2, tool = $3, is_favorite = $4
		WHERE id = $5`

	args := []any{p.Text, JoinTags(p.Tags), p.Tool, p.Favorite, p.ID}

	_, err := repository.WithTx(ctx, s.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(ctx, tx, q, args...)
	})

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		s.logger.Error("prompt update failed", "id", p.ID, "error", err)
		return fmt.Errorf("update prompt: %w", err)
	}

	s.logger.Info("prompt updated", "id", p.ID)
	return nil
}

func (s *store) Delete(ctx context.Context, id int64) error {
	_, err := repository.WithTx(ctx, s.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM prompts WHERE id = $1",
			id,
		)
	})

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		s.logger.Error("prompt delete failed", "id", id, "error", err)
		return fmt.Errorf("delete prompt: %w", err)
	}

	s.logger.Info("prompt deleted", "id", id)
	return nil
}

func (s *store) List(ctx context.Context) ([]Prompt, error) {
	q, args := query.NewBuilder(projection, defaultSort).Build()

	prompts, err := repository.QueryMany(ctx, s.db, q, args, scanPrompt)
	if err != nil {
		return nil, fmt.Errorf("list prompts: %w", err)
	}
	return prompts, nil
}

// Search matches the keyword as a case-insensitive substring of the text,
// the raw stored tags string, or the tool.
func (s *store) Search(ctx context.Context, keyword string) ([]Prompt, error) {
	q, args := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(keyword, searchFields...).
		Build()

	prompts, err := repository.QueryMany(ctx, s.db, q, args, scanPrompt)
	if err != nil {
		return nil, fmt.Errorf("search prompts: %w", err)
	}
	return prompts, nil
}
