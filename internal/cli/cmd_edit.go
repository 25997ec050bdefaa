package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/ui"
)

type EditCmd struct {
	app *App
}

func NewEditCmd(app *App) *EditCmd {
	return &EditCmd{app: app}
}

func (cmd *EditCmd) Register(root *cli.Command) *cli.Command {
	root.Commands = append(root.Commands, &cli.Command{
		Name:      "edit",
		Usage:     "Replace the text of the item at a 1-based index",
		UsageText: `todo edit 2 "Buy oat milk"`,
		Action:    cmd.run,
	})
	return root
}

func (cmd *EditCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() < 2 {
		return fmt.Errorf("usage: todo edit <index> <text...>")
	}
	text := strings.TrimSpace(strings.Join(c.Args().Tail(), " "))
	if text == "" {
		return fmt.Errorf("edit: empty text")
	}
	if err := cmd.app.checkLength(text); err != nil {
		return fmt.Errorf("edit: %w", err)
	}
	id, n, err := itemAt(cmd.app.Store, c.Args().First())
	if err != nil {
		return fmt.Errorf("edit: %w", err)
	}
	if _, err := cmd.app.Store.Edit(id, model.TextPatch(text)); err != nil {
		return err
	}
	ui.OK(c.Root().Writer, fmt.Sprintf("edited #%d", n))
	return nil
}
