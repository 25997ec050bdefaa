package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/todo"
	"github.com/idilsaglam/todo/internal/ui"
)

type LsCmd struct {
	app *App

	// flags
	page       int
	all        bool
	group      bool
	jsonOutput bool
}

// NewLsCmd creates a new ls command
func NewLsCmd(app *App) *LsCmd {
	return &LsCmd{app: app}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(root *cli.Command) *cli.Command {
	root.Commands = append(root.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List items, one page at a time",
		UsageText: "todo ls [--page N | --all] [--group] [--json]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "page",
				Aliases:     []string{"p"},
				Usage:       "1-based page to show (10 items per page)",
				Value:       1,
				Destination: &cmd.page,
			},
			&cli.BoolFlag{
				Name:        "all",
				Aliases:     []string{"a"},
				Usage:       "show every item instead of one page",
				Destination: &cmd.all,
			},
			&cli.BoolFlag{
				Name:        "group",
				Usage:       "group output by pending/done",
				Destination: &cmd.group,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print the stored list as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})
	return root
}

// row is an item with its 1-based position in the whole list.
type row struct {
	pos  int
	item model.Item
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	out := c.Root().Writer
	items := cmd.app.Store.Items()

	if cmd.jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	total := todo.TotalPages(len(items))
	if !cmd.all && total > 0 && (cmd.page < 1 || cmd.page > total) {
		return fmt.Errorf("page out of range: have %d, got %d", total, cmd.page)
	}

	rows := make([]row, 0, len(items))
	start, end := 0, len(items)
	if !cmd.all {
		start, end = todo.Bounds(cmd.page, len(items))
	}
	for i := start; i < end; i++ {
		rows = append(rows, row{pos: i + 1, item: items[i]})
	}

	t := ui.Current()
	d, p := stats(items)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(t.Title, "Todos"),
		ui.C(t.Success, t.SymDone), d,
		ui.C(t.Pending, t.SymPending), p,
		ui.C(t.Accent, "Total"), len(items),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, ui.C(t.Muted, ui.ProgressBar(d, d+p, 28)))
	lines = append(lines, "")

	if cmd.group {
		lines = append(lines, groupLines(rows)...)
	} else {
		lines = append(lines, flatLines(rows)...)
	}

	if !cmd.all && total > 1 {
		lines = append(lines, "", pageLine(cmd.page, total))
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(t.Muted, "Tip: add with `todo add \"Buy milk\"`"))
	ui.Panel(out, lines)
	return nil
}

func stats(items []model.Item) (done, pending int) {
	for _, it := range items {
		if it.Status.Done() {
			done++
		} else {
			pending++
		}
	}
	return
}

func flatLines(rows []row) []string {
	if len(rows) == 0 {
		return []string{ui.C(ui.Current().Muted, "no items")}
	}
	t := ui.Current()
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		idx := fmt.Sprintf("%2d.", r.pos)
		box, color, text := t.BoxUnchecked, t.Pending, ui.Truncate(r.item.Text, 80)
		if r.item.Status.Done() {
			box, color, text = t.BoxChecked, t.Success, ui.C(t.Done, text)
		}
		out = append(out, fmt.Sprintf("%s %s %s %s",
			ui.Dim(idx), ui.C(color, box), text, ui.C(color, string(r.item.Status))))
	}
	return out
}

func groupLines(rows []row) []string {
	var pend, done []row
	for _, r := range rows {
		if r.item.Status.Done() {
			done = append(done, r)
		} else {
			pend = append(pend, r)
		}
	}
	t := ui.Current()
	var lines []string
	lines = append(lines, ui.C(t.Accent, "Pending"))
	if len(pend) == 0 {
		lines = append(lines, ui.C(t.Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(t.Accent, "Done"))
	if len(done) == 0 {
		lines = append(lines, ui.C(t.Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(done)...)
	}
	return lines
}

// pageLine renders the Previous/page/Next control, greying out the ends.
func pageLine(page, total int) string {
	t := ui.Current()
	prev, next := ui.C(t.Accent, "‹ Previous"), ui.C(t.Accent, "Next ›")
	if page <= 1 {
		prev = ui.C(t.Muted, "‹ Previous")
	}
	if page >= total {
		next = ui.C(t.Muted, "Next ›")
	}
	return fmt.Sprintf("%s  %s  %s", prev, ui.C(t.Title, fmt.Sprintf("%d/%d", page, total)), next)
}
