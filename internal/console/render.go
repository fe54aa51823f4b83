package console

import (
	"fmt"
	"io"
	"strings"

	"promptstash/internal/prompts"
)

const separator = "------------------------------"

// FormatFavorite renders a favorite flag the way the menu asks for it.
func FormatFavorite(favorite bool) string {
	if favorite {
		return "yes"
	}
	return "no"
}

// RenderPrompt writes one prompt as a labeled block followed by a separator.
func RenderPrompt(w io.Writer, p prompts.Prompt) {
	fmt.Fprintf(w, "ID: %d\n", p.ID)
	fmt.Fprintf(w, "Text: %s\n", p.Text)
	fmt.Fprintf(w, "Tags: %s\n", strings.Join(p.Tags, ", "))
	fmt.Fprintf(w, "Tool: %s\n", p.Tool)
	fmt.Fprintf(w, "Favorite: %s\n", FormatFavorite(p.Favorite))
	fmt.Fprintln(w, separator)
}

// RenderPrompts writes every prompt in order.
func RenderPrompts(w io.Writer, list []prompts.Prompt) {
	for _, p := range list {
		RenderPrompt(w, p)
	}
}
