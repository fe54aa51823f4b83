package prompts

import (
	"promptstash/pkg/query"
	"promptstash/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "prompts", "p").
	Project("id", "ID").
	Project("text", "Text").
	Project("tags", "Tags").
	Project("tool", "Tool").
	Project("is_favorite", "Favorite")

var defaultSort = query.SortField{
	Field: "ID",
}

// searchFields are the columns a keyword search matches against. The tags
// column holds the raw comma-joined string, so a keyword can match across
// a tag boundary ("cso" matches "abc,so-and-so"); accepted quirk of
// delimited-string search.
var searchFields = []string{"Text", "Tags", "Tool"}

func scanPrompt(s repository.Scanner) (Prompt, error) {
	var (
		p    Prompt
		tags string
	)
	if err := s.Scan(&p.ID, &p.Text, &tags, &p.Tool, &p.Favorite); err != nil {
		return Prompt{}, err
	}
	p.Tags = ParseTags(tags)
	return p, nil
}

func scanID(s repository.Scanner) (int64, error) {
	var id int64
	err := s.Scan(&id)
	return id, err
}
