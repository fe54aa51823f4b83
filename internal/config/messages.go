package config

import "os"

// Environment variable names for the message catalog.
const (
	EnvMsgWelcome         = "STASH_MSG_WELCOME"
	EnvMsgMenu            = "STASH_MSG_MENU"
	EnvMsgPromptAdded     = "STASH_MSG_PROMPT_ADDED"
	EnvMsgPromptNotFound  = "STASH_MSG_PROMPT_NOT_FOUND"
	EnvMsgPromptUpdated   = "STASH_MSG_PROMPT_UPDATED"
	EnvMsgPromptDeleted   = "STASH_MSG_PROMPT_DELETED"
	EnvMsgNoPrompts       = "STASH_MSG_NO_PROMPTS"
	EnvMsgSearchPrompt    = "STASH_MSG_SEARCH_PROMPT"
	EnvMsgFavoriteToggled = "STASH_MSG_FAVORITE_TOGGLED"
	EnvMsgInvalidChoice   = "STASH_MSG_INVALID_CHOICE"
	EnvMsgOperationFailed = "STASH_MSG_OPERATION_FAILED"
	EnvMsgStorageDown     = "STASH_MSG_STORAGE_DOWN"
	EnvMsgExit            = "STASH_MSG_EXIT"
)

const defaultMenu = `
1. Add a new prompt
2. List all prompts
3. Search and filter prompts
4. Edit a prompt
5. Toggle favorite status
6. Delete a prompt
7. Exit`

// MessagesConfig is the catalog of user-facing console strings. Every
// entry carries a default, so an unset variable never yields a blank
// prompt at runtime. Formatting verbs: %d for a prompt id, %s for a
// favorite status.
type MessagesConfig struct {
	Welcome         string `toml:"welcome"`
	Menu            string `toml:"menu"`
	PromptAdded     string `toml:"prompt_added"`
	PromptNotFound  string `toml:"prompt_not_found"`
	PromptUpdated   string `toml:"prompt_updated"`
	PromptDeleted   string `toml:"prompt_deleted"`
	NoPrompts       string `toml:"no_prompts"`
	SearchPrompt    string `toml:"search_prompt"`
	FavoriteToggled string `toml:"favorite_toggled"`
	InvalidChoice   string `toml:"invalid_choice"`
	OperationFailed string `toml:"operation_failed"`
	StorageDown     string `toml:"storage_down"`
	Exit            string `toml:"exit"`
}

// Finalize applies defaults then environment variable overrides.
func (c *MessagesConfig) Finalize() {
	c.loadDefaults()
	c.loadEnv()
}

// Merge overwrites non-zero fields from overlay.
func (c *MessagesConfig) Merge(overlay *MessagesConfig) {
	if overlay.Welcome != "" {
		c.Welcome = overlay.Welcome
	}
	if overlay.Menu != "" {
		c.Menu = overlay.Menu
	}
	if overlay.PromptAdded != "" {
		c.PromptAdded = overlay.PromptAdded
	}
	if overlay.PromptNotFound != "" {
		c.PromptNotFound = overlay.PromptNotFound
	}
	if overlay.PromptUpdated != "" {
		c.PromptUpdated = overlay.PromptUpdated
	}
	if overlay.PromptDeleted != "" {
		c.PromptDeleted = overlay.PromptDeleted
	}
	if overlay.NoPrompts != "" {
		c.NoPrompts = overlay.NoPrompts
	}
	if overlay.SearchPrompt != "" {
		c.SearchPrompt = overlay.SearchPrompt
	}
	if overlay.FavoriteToggled != "" {
		c.FavoriteToggled = overlay.FavoriteToggled
	}
	if overlay.InvalidChoice != "" {
		c.InvalidChoice = overlay.InvalidChoice
	}
	if overlay.OperationFailed != "" {
		c.OperationFailed = overlay.OperationFailed
	}
	if overlay.StorageDown != "" {
		c.StorageDown = overlay.StorageDown
	}
	if overlay.Exit != "" {
		c.Exit = overlay.Exit
	}
}

func (c *MessagesConfig) loadDefaults() {
	if c.Welcome == "" {
		c.Welcome = "promptstash: your AI prompt catalog"
	}
	if c.Menu == "" {
		c.Menu = defaultMenu
	}
	if c.PromptAdded == "" {
		c.PromptAdded = "Prompt saved with ID %d."
	}
	if c.PromptNotFound == "" {
		c.PromptNotFound = "No prompt with ID %d."
	}
	if c.PromptUpdated == "" {
		c.PromptUpdated = "Prompt %d updated."
	}
	if c.PromptDeleted == "" {
		c.PromptDeleted = "Prompt %d deleted."
	}
	if c.NoPrompts == "" {
		c.NoPrompts = "No prompts stored yet."
	}
	if c.SearchPrompt == "" {
		c.SearchPrompt = "Keyword (blank for all): "
	}
	if c.FavoriteToggled == "" {
		c.FavoriteToggled = "Favorite status is now %s."
	}
	if c.InvalidChoice == "" {
		c.InvalidChoice = "Invalid choice, try again."
	}
	if c.OperationFailed == "" {
		c.OperationFailed = "Operation failed."
	}
	if c.StorageDown == "" {
		c.StorageDown = "Storage is unavailable, try again later."
	}
	if c.Exit == "" {
		c.Exit = "Goodbye."
	}
}

func (c *MessagesConfig) loadEnv() {
	if v := os.Getenv(EnvMsgWelcome); v != "" {
		c.Welcome = v
	}
	if v := os.Getenv(EnvMsgMenu); v != "" {
		c.Menu = v
	}
	if v := os.Getenv(EnvMsgPromptAdded); v != "" {
		c.PromptAdded = v
	}
	if v := os.Getenv(EnvMsgPromptNotFound); v != "" {
		c.PromptNotFound = v
	}
	if v := os.Getenv(EnvMsgPromptUpdated); v != "" {
		c.PromptUpdated = v
	}
	if v := os.Getenv(EnvMsgPromptDeleted); v != "" {
		c.PromptDeleted = v
	}
	if v := os.Getenv(EnvMsgNoPrompts); v != "" {
		c.NoPrompts = v
	}
	if v := os.Getenv(EnvMsgSearchPrompt); v != "" {
		c.SearchPrompt = v
	}
	if v := os.Getenv(EnvMsgFavoriteToggled); v != "" {
		c.FavoriteToggled = v
	}
	if v := os.Getenv(EnvMsgInvalidChoice); v != "" {
		c.InvalidChoice = v
	}
	if v := os.Getenv(EnvMsgOperationFailed); v != "" {
		c.OperationFailed = v
	}
	if v := os.Getenv(EnvMsgStorageDown); v != "" {
		c.StorageDown = v
	}
	if v := os.Getenv(EnvMsgExit); v != "" {
		c.Exit = v
	}
}
