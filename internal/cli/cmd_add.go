package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/idilsaglam/todo/internal/todo"
	"github.com/idilsaglam/todo/internal/ui"
)

type AddCmd struct {
	app *App
}

// NewAddCmd creates a new add command
func NewAddCmd(app *App) *AddCmd {
	return &AddCmd{app: app}
}

// Register adds the add command to the application
func (cmd *AddCmd) Register(root *cli.Command) *cli.Command {
	root.Commands = append(root.Commands, &cli.Command{
		Name:      "add",
		Usage:     "Add a new item (text can be multiple words)",
		UsageText: `todo add "Buy milk"`,
		Action:    cmd.run,
	})
	return root
}

func (cmd *AddCmd) run(ctx context.Context, c *cli.Command) error {
	text := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if err := cmd.app.checkLength(text); err != nil {
		return fmt.Errorf("add: %w", err)
	}
	it, err := cmd.app.Store.Add(text)
	if err != nil {
		if errors.Is(err, todo.ErrEmptyText) {
			return fmt.Errorf("usage: todo add <text...>")
		}
		return err
	}
	ui.OK(c.Root().Writer, fmt.Sprintf("added #%d", cmd.app.Store.Index(it.ID)+1))
	return nil
}
