// Package prompts implements the prompt catalog domain: the entity, its
// storage repository, and the service rules applied on top.
package prompts

import "strings"

// Prompt is a stored AI prompt. A zero ID marks an entity that has never
// been persisted; the database assigns the id on first insert and it is
// immutable afterward.
type Prompt struct {
	ID       int64
	Text     string
	Tags     []string
	Tool     string
	Favorite bool
}

// CreateCommand carries the data needed to store a new prompt.
// New prompts always start unfavorited.
type CreateCommand struct {
	Text string
	Tags []string
	Tool string
}

// UpdateCommand carries the full replacement state for an existing prompt.
// Callers supply every field's desired final value; partial-edit
// convenience belongs to the front end.
type UpdateCommand struct {
	Text     string
	Tags     []string
	Tool     string
	Favorite bool
}

// JoinTags serializes tags to the comma-delimited storage form, dropping
// empty entries. A tag containing the delimiter itself is lossy; that is
// an accepted constraint of the storage format.
func JoinTags(tags []string) string {
	parts := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		parts = append(parts, tag)
	}
	return strings.Join(parts, ",")
}

// ParseTags splits the comma-delimited storage form, trimming whitespace
// and dropping empty entries. Duplicates and order are preserved.
func ParseTags(s string) []string {
	tags := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tags = append(tags, part)
	}
	return tags
}
