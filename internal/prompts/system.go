package prompts

import "context"

// Store is the persistence contract for prompts. The production
// implementation issues parameterized SQL against the prompts table;
// tests substitute an in-memory fake.
type Store interface {
	Create(ctx context.Context, cmd CreateCommand) (int64, error)
	Find(ctx context.Context, id int64) (*Prompt, error)
	Update(ctx context.Context, p *Prompt) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]Prompt, error)
	Search(ctx context.Context, keyword string) ([]Prompt, error)
}

// System defines the public contract for prompt domain operations.
// The facade binds to it so front ends never construct the service.
type System interface {
	Add(ctx context.Context, text string, tags []string, tool string) (int64, error)
	Get(ctx context.Context, id int64) (*Prompt, error)
	Update(ctx context.Context, id int64, cmd UpdateCommand) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]Prompt, error)
	SearchAndFilter(ctx context.Context, keyword string, favorite *bool) ([]Prompt, error)
	ToggleFavorite(ctx context.Context, id int64) (bool, error)
}
