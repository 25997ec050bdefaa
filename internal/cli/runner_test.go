package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/ui"
)

type harness struct {
	t       *testing.T
	dataDir string
	config  string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ui.SetColorForcing(false, true)
	t.Cleanup(func() { ui.SetColorForcing(false, false) })
	return &harness{
		t:       t,
		dataDir: t.TempDir(),
		config:  filepath.Join(t.TempDir(), "config.yaml"),
	}
}

func (h *harness) run(args ...string) (string, string, int) {
	h.t.Helper()
	var stdout, stderr bytes.Buffer
	argv := append([]string{"todo", "--data-dir", h.dataDir, "--config", h.config}, args...)
	code := Run(context.Background(), "test", argv, &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	out, errOut, code := h.run(args...)
	require.Equal(h.t, 0, code, "stderr: %s", errOut)
	return out
}

func (h *harness) stored() []model.Item {
	h.t.Helper()
	b, err := os.ReadFile(filepath.Join(h.dataDir, "todoList.json"))
	require.NoError(h.t, err)
	var items []model.Item
	require.NoError(h.t, json.Unmarshal(b, &items))
	return items
}

func TestAdd_PersistsToDataDir(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("add", "buy", "milk")
	assert.Contains(t, out, "added #1")

	items := h.stored()
	require.Len(t, items, 1)
	assert.Equal(t, "buy milk", items[0].Text)
	assert.Equal(t, model.Pending, items[0].Status)
	assert.NotEmpty(t, items[0].ID)

	_, err := os.Stat(filepath.Join(h.dataDir, "todo.log"))
	assert.NoError(t, err, "log file goes to the data dir by default")
}

func TestAdd_Empty(t *testing.T) {
	h := newHarness(t)

	_, errOut, code := h.run("add", "   ")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "usage: todo add")
}

func TestDoneEditRm(t *testing.T) {
	h := newHarness(t)
	h.mustRun("add", "one")
	h.mustRun("add", "two")
	h.mustRun("add", "three")

	assert.Contains(t, h.mustRun("done", "2"), "#2 is now Success")
	assert.Equal(t, model.Success, h.stored()[1].Status)

	h.mustRun("edit", "3", "THREE", "!")
	assert.Equal(t, "THREE !", h.stored()[2].Text)

	h.mustRun("rm", "1")
	items := h.stored()
	require.Len(t, items, 2)
	assert.Equal(t, "two", items[0].Text)
}

func TestIndexErrors(t *testing.T) {
	h := newHarness(t)
	h.mustRun("add", "only")

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"done", "5"}, "index out of range: have 1, got 5"},
		{[]string{"rm", "0"}, "index out of range"},
		{[]string{"rm", "x"}, "not a number: x"},
		{[]string{"done"}, "usage: todo done <index>"},
		{[]string{"mv", "1"}, "usage: todo mv <from> <to>"},
		{[]string{"edit", "1"}, "usage: todo edit"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			_, errOut, code := h.run(tt.args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, errOut, tt.want)
		})
	}
}

func TestMv(t *testing.T) {
	h := newHarness(t)
	for _, text := range []string{"a", "b", "c", "d"} {
		h.mustRun("add", text)
	}

	h.mustRun("mv", "4", "2")

	var got []string
	for _, it := range h.stored() {
		got = append(got, it.Text)
	}
	assert.Equal(t, []string{"a", "d", "b", "c"}, got)
}

func TestLs_Pages(t *testing.T) {
	h := newHarness(t)
	for i := range 15 {
		h.mustRun("add", "task", string(rune('a'+i)))
	}

	page1 := h.mustRun("ls")
	assert.Contains(t, page1, "10. ")
	assert.NotContains(t, page1, "11. ")
	assert.Contains(t, page1, "1/2")
	assert.Contains(t, page1, "Total 15")

	page2 := h.mustRun("ls", "--page", "2")
	assert.Contains(t, page2, "11. ")
	assert.Contains(t, page2, "15. ")
	assert.NotContains(t, page2, "10. ")

	all := h.mustRun("ls", "--all")
	assert.Contains(t, all, " 1. ")
	assert.Contains(t, all, "15. ")

	_, errOut, code := h.run("ls", "--page", "3")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "page out of range")
}

func TestLs_Group(t *testing.T) {
	h := newHarness(t)
	h.mustRun("add", "open")
	h.mustRun("add", "closed")
	h.mustRun("done", "2")

	out := h.mustRun("ls", "--group")
	pending := strings.Index(out, "Pending")
	done := strings.Index(out, "Done")
	require.GreaterOrEqual(t, pending, 0)
	require.Greater(t, done, pending)
	assert.Greater(t, strings.Index(out, "closed"), done)
}

func TestLs_JSON(t *testing.T) {
	h := newHarness(t)
	h.mustRun("add", "x")

	out := h.mustRun("ls", "--json")

	var items []model.Item
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	assert.Equal(t, h.stored(), items)
}

func TestLs_Empty(t *testing.T) {
	h := newHarness(t)
	assert.Contains(t, h.mustRun("ls"), "no items")
}

func TestMalformedStorageStartsEmpty(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.WriteFile(filepath.Join(h.dataDir, "todoList.json"), []byte("{broken"), 0o644))

	assert.Contains(t, h.mustRun("ls"), "no items")

	h.mustRun("add", "fresh")
	require.Len(t, h.stored(), 1)
}

func TestConfigStorageKey(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.WriteFile(h.config, []byte("storage_key: work\n"), 0o644))

	h.mustRun("add", "ship")

	_, err := os.Stat(filepath.Join(h.dataDir, "work.json"))
	assert.NoError(t, err)
}

func TestCharLimit(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.WriteFile(h.config, []byte("char_limit: 5\n"), 0o644))

	h.mustRun("add", "abcde")

	_, errOut, code := h.run("add", "abcdef")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "text too long: 6 characters, limit is 5")

	_, errOut, code = h.run("edit", "1", "héllo!")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "limit is 5")

	h.mustRun("edit", "1", "héllo")
	items := h.stored()
	require.Len(t, items, 1)
	assert.Equal(t, "héllo", items[0].Text)
}

func TestNoColor(t *testing.T) {
	h := newHarness(t)
	ui.SetColorForcing(true, false)

	assert.Contains(t, h.mustRun("add", "colored"), "\x1b[")
	assert.NotContains(t, h.mustRun("--no-color", "add", "plain"), "\x1b[")
}

func TestEphemeral(t *testing.T) {
	h := newHarness(t)

	h.mustRun("--ephemeral", "add", "gone")

	entries, err := os.ReadDir(h.dataDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUnknownCommand(t *testing.T) {
	h := newHarness(t)

	_, errOut, code := h.run("frobnicate")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, `unknown command "frobnicate"`)
}
