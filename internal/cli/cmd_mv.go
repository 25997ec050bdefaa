package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/idilsaglam/todo/internal/ui"
)

type MvCmd struct {
	app *App
}

func NewMvCmd(app *App) *MvCmd {
	return &MvCmd{app: app}
}

func (cmd *MvCmd) Register(root *cli.Command) *cli.Command {
	root.Commands = append(root.Commands, &cli.Command{
		Name:      "mv",
		Usage:     "Move the item at <from> to position <to> (1-based, whole list)",
		UsageText: "todo mv 12 3",
		Action:    cmd.run,
	})
	return root
}

func (cmd *MvCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 2 {
		return fmt.Errorf("usage: todo mv <from> <to>")
	}
	from, fromN, err := itemAt(cmd.app.Store, c.Args().Get(0))
	if err != nil {
		return fmt.Errorf("mv: %w", err)
	}
	over, toN, err := itemAt(cmd.app.Store, c.Args().Get(1))
	if err != nil {
		return fmt.Errorf("mv: %w", err)
	}
	if _, err := cmd.app.Store.Move(from, over); err != nil {
		return err
	}
	ui.OK(c.Root().Writer, fmt.Sprintf("moved #%d to #%d", fromN, toN))
	return nil
}
