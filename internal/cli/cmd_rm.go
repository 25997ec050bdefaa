package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/idilsaglam/todo/internal/ui"
)

type RmCmd struct {
	app *App
}

func NewRmCmd(app *App) *RmCmd {
	return &RmCmd{app: app}
}

func (cmd *RmCmd) Register(root *cli.Command) *cli.Command {
	root.Commands = append(root.Commands, &cli.Command{
		Name:      "rm",
		Usage:     "Remove the item at a 1-based index",
		UsageText: "todo rm 3",
		Action:    cmd.run,
	})
	return root
}

func (cmd *RmCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("usage: todo rm <index>")
	}
	id, n, err := itemAt(cmd.app.Store, c.Args().First())
	if err != nil {
		return fmt.Errorf("rm: %w", err)
	}
	if _, err := cmd.app.Store.Remove(id); err != nil {
		return err
	}
	ui.OK(c.Root().Writer, fmt.Sprintf("removed #%d", n))
	return nil
}
