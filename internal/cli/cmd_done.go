package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/idilsaglam/todo/internal/ui"
)

type DoneCmd struct {
	app *App
}

func NewDoneCmd(app *App) *DoneCmd {
	return &DoneCmd{app: app}
}

func (cmd *DoneCmd) Register(root *cli.Command) *cli.Command {
	root.Commands = append(root.Commands, &cli.Command{
		Name:      "done",
		Usage:     "Toggle completion for the item at a 1-based index",
		UsageText: "todo done 2",
		Action:    cmd.run,
	})
	return root
}

func (cmd *DoneCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("usage: todo done <index>")
	}
	id, n, err := itemAt(cmd.app.Store, c.Args().First())
	if err != nil {
		return fmt.Errorf("done: %w", err)
	}
	if _, err := cmd.app.Store.Toggle(id); err != nil {
		return err
	}
	it, _ := cmd.app.Store.Get(id)
	ui.OK(c.Root().Writer, fmt.Sprintf("#%d is now %s", n, it.Status))
	return nil
}
