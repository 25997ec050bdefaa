package tui

// FormMode says what the next submit of the input does.
// It is either Creating or Editing.
type FormMode interface {
	formMode()
}

// Creating means the next submit adds a new item.
type Creating struct{}

// Editing means the next submit rewrites the text of item ID.
type Editing struct {
	ID string
}

func (Creating) formMode() {}
func (Editing) formMode() {}

func submitLabel(m FormMode) string {
	if _, ok := m.(Editing); ok {
		return "Edit"
	}
	return "Add"
}

func formTitle(m FormMode) string {
	if _, ok := m.(Editing); ok {
		return "Edit item"
	}
	return "Add new item"
}
