// Package console implements the interactive menu front end. It binds to
// the facade only; all persistence and business rules live below it.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"promptstash/internal/api"
	"promptstash/internal/config"
	"promptstash/internal/prompts"
	"promptstash/pkg/repository"
)

// App drives the numbered menu loop.
type App struct {
	api      *api.API
	messages *config.MessagesConfig
	in       *bufio.Reader
	out      io.Writer
	logger   *slog.Logger
}

// New creates the console app over the facade. Reader and writer are
// injected so tests can script a session.
func New(a *api.API, messages *config.MessagesConfig, in io.Reader, out io.Writer, logger *slog.Logger) *App {
	return &App{
		api:      a,
		messages: messages,
		in:       bufio.NewReader(in),
		out:      out,
		logger:   logger.With("system", "console"),
	}
}

// Run executes the menu loop until the user exits or input ends.
// No operation is fatal; failures print a message and the loop continues.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, a.messages.Welcome)

	for {
		fmt.Fprintln(a.out, a.messages.Menu)
		fmt.Fprint(a.out, "> ")

		choice, err := a.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(a.out, a.messages.Exit)
				return nil
			}
			return err
		}

		switch choice {
		case "1":
			a.addPrompt(ctx)
		case "2":
			a.listPrompts(ctx)
		case "3":
			a.searchPrompts(ctx)
		case "4":
			a.editPrompt(ctx)
		case "5":
			a.toggleFavorite(ctx)
		case "6":
			a.deletePrompt(ctx)
		case "7":
			fmt.Fprintln(a.out, a.messages.Exit)
			return nil
		default:
			fmt.Fprintln(a.out, a.messages.InvalidChoice)
		}
	}
}

func (a *App) addPrompt(ctx context.Context) {
	a.clear()
	fmt.Fprintln(a.out, "--- Add New Prompt ---")

	text := a.ask("Prompt text: ")
	tags := prompts.ParseTags(a.ask("Tags (comma-separated): "))
	tool := a.ask("Tool (e.g. 'Gemini API', 'DALL-E'): ")

	id, err := a.api.AddPrompt(ctx, text, tags, tool)
	if err != nil {
		a.report(err)
		return
	}
	fmt.Fprintf(a.out, a.messages.PromptAdded+"\n", id)
}

func (a *App) listPrompts(ctx context.Context) {
	a.clear()
	fmt.Fprintln(a.out, "--- All Prompts ---")

	list, err := a.api.ListPrompts(ctx)
	if err != nil {
		a.report(err)
		return
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, a.messages.NoPrompts)
		return
	}
	RenderPrompts(a.out, list)
}

func (a *App) searchPrompts(ctx context.Context) {
	a.clear()
	fmt.Fprintln(a.out, "--- Search Prompts ---")

	keyword := a.ask(a.messages.SearchPrompt)

	var favorite *bool
	switch a.ask("Favorites only? (yes/no/all): ") {
	case "yes":
		v := true
		favorite = &v
	case "no":
		v := false
		favorite = &v
	}

	list, err := a.api.SearchPrompts(ctx, keyword, favorite)
	if err != nil {
		a.report(err)
		return
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, a.messages.NoPrompts)
		return
	}
	RenderPrompts(a.out, list)
}

// editPrompt reads replacement values, keeping the current value for any
// field left blank. The service contract stays full-replace; the
// partial-edit convenience lives only here.
func (a *App) editPrompt(ctx context.Context) {
	a.clear()
	fmt.Fprintln(a.out, "--- Edit Prompt ---")

	id, ok := a.askID("ID of prompt to edit: ")
	if !ok {
		return
	}

	p, err := a.api.GetPrompt(ctx, id)
	if err != nil {
		a.reportLookup(id, err)
		return
	}
	RenderPrompt(a.out, *p)
	fmt.Fprintln(a.out, "New values (blank keeps the current value):")

	cmd := prompts.UpdateCommand{
		Text:     p.Text,
		Tags:     p.Tags,
		Tool:     p.Tool,
		Favorite: p.Favorite,
	}

	if text := a.ask(fmt.Sprintf("Text [%s]: ", p.Text)); text != "" {
		cmd.Text = text
	}
	if tags := a.ask(fmt.Sprintf("Tags [%s]: ", strings.Join(p.Tags, ", "))); tags != "" {
		cmd.Tags = prompts.ParseTags(tags)
	}
	if tool := a.ask(fmt.Sprintf("Tool [%s]: ", p.Tool)); tool != "" {
		cmd.Tool = tool
	}
	switch a.ask(fmt.Sprintf("Favorite [%s] (yes/no): ", FormatFavorite(p.Favorite))) {
	case "yes":
		cmd.Favorite = true
	case "no":
		cmd.Favorite = false
	}

	if err := a.api.UpdatePrompt(ctx, id, cmd); err != nil {
		a.reportLookup(id, err)
		return
	}
	fmt.Fprintf(a.out, a.messages.PromptUpdated+"\n", id)
}

func (a *App) toggleFavorite(ctx context.Context) {
	a.clear()
	fmt.Fprintln(a.out, "--- Toggle Favorite ---")

	id, ok := a.askID("ID of prompt to toggle: ")
	if !ok {
		return
	}

	favorite, err := a.api.ToggleFavorite(ctx, id)
	if err != nil {
		a.reportLookup(id, err)
		return
	}
	fmt.Fprintf(a.out, a.messages.FavoriteToggled+"\n", FormatFavorite(favorite))
}

func (a *App) deletePrompt(ctx context.Context) {
	a.clear()
	fmt.Fprintln(a.out, "--- Delete Prompt ---")

	id, ok := a.askID("ID of prompt to delete: ")
	if !ok {
		return
	}

	if err := a.api.DeletePrompt(ctx, id); err != nil {
		a.reportLookup(id, err)
		return
	}
	fmt.Fprintf(a.out, a.messages.PromptDeleted+"\n", id)
}

func (a *App) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (a *App) ask(label string) string {
	fmt.Fprint(a.out, label)
	line, err := a.readLine()
	if err != nil {
		return ""
	}
	return line
}

func (a *App) askID(label string) (int64, bool) {
	raw := a.ask(label)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintln(a.out, a.messages.InvalidChoice)
		return 0, false
	}
	return id, true
}

// reportLookup prints not-found for a missing id and defers everything
// else to report.
func (a *App) reportLookup(id int64, err error) {
	if errors.Is(err, prompts.ErrNotFound) {
		fmt.Fprintf(a.out, a.messages.PromptNotFound+"\n", id)
		return
	}
	a.report(err)
}

func (a *App) report(err error) {
	a.logger.Error("operation failed", "error", err)
	if repository.IsConnectionFailure(err) {
		fmt.Fprintln(a.out, a.messages.StorageDown)
		return
	}
	fmt.Fprintln(a.out, a.messages.OperationFailed)
}

// clear resets the screen between actions. ANSI escapes cover every
// terminal this tool targets.
func (a *App) clear() {
	fmt.Fprint(a.out, "\033[2J\033[H")
}
