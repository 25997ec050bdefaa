package cli

import (
	"fmt"
	"unicode/utf8"

	"github.com/idilsaglam/todo/internal/config"
	"github.com/idilsaglam/todo/internal/todo"
)

// Flags are the root flags, shared by every subcommand.
type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string
	Ephemeral  bool
	NoColor    bool
}

// App is populated in the root Before hook; commands hold a pointer to it.
type App struct {
	Config *config.Config
	Store  *todo.Store
}

// checkLength applies the configured char_limit, counted in runes like the
// TUI input does.
func (a *App) checkLength(text string) error {
	if n := utf8.RuneCountInString(text); n > a.Config.CharLimit {
		return fmt.Errorf("text too long: %d characters, limit is %d", n, a.Config.CharLimit)
	}
	return nil
}
