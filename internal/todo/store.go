// Package todo owns the ordered todo list and mirrors it to a storage slot
// after every mutation.
package todo

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/idilsaglam/todo/internal/logging"
	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/store/jsonstore"
)

// DefaultKey is the slot the list is persisted under.
const DefaultKey = "todoList"

// ErrEmptyText is returned by Add when the text is blank after trimming.
var ErrEmptyText = errors.New("empty text")

// Slot is a persistent key-value slot holding raw bytes.
// Get returns jsonstore.ErrNotFound when the key was never written.
type Slot interface {
	Get(key string) ([]byte, error)
	Set(key string, data []byte) error
}

// Store is the single owner of the in-memory list. It is not safe for
// concurrent use; the UI event loop is its only caller.
type Store struct {
	slot  Slot
	key   string
	newID func() string
	log   zerolog.Logger

	items []model.Item
}

type Option func(*Store)

func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

func WithIDFunc(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// New creates a store and loads whatever the slot holds. A missing or
// unparseable value starts the store empty.
func New(slot Slot, opts ...Option) *Store {
	s := &Store{
		slot:  slot,
		key:   DefaultKey,
		newID: uuid.NewString,
		log:   logging.Component("todo"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.items = s.loadInitial()
	return s
}

func (s *Store) loadInitial() []model.Item {
	b, err := s.slot.Get(s.key)
	if err != nil {
		if !errors.Is(err, jsonstore.ErrNotFound) {
			s.log.Warn().Err(err).Str("key", s.key).Msg("read slot, starting empty")
		}
		return []model.Item{}
	}
	items, err := Decode(b)
	if err != nil {
		s.log.Warn().Err(err).Str("key", s.key).Msg("malformed slot, starting empty")
		return []model.Item{}
	}
	s.log.Debug().Int("count", len(items)).Msg("loaded")
	return items
}

// Decode parses a persisted list. Every record must carry a non-empty,
// unique id and a known status; otherwise the whole value is rejected.
func Decode(b []byte) ([]model.Item, error) {
	var items []model.Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if items == nil {
		items = []model.Item{}
	}
	seen := make(map[string]struct{}, len(items))
	for i, it := range items {
		if it.ID == "" {
			return nil, fmt.Errorf("item %d: missing id", i)
		}
		if _, dup := seen[it.ID]; dup {
			return nil, fmt.Errorf("item %d: duplicate id %q", i, it.ID)
		}
		seen[it.ID] = struct{}{}
		if !it.Status.Valid() {
			return nil, fmt.Errorf("item %d: missing status", i)
		}
	}
	return items, nil
}

// Encode serializes a list in its persisted form.
func Encode(items []model.Item) ([]byte, error) {
	if items == nil {
		items = []model.Item{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return b, nil
}

// Items returns a copy of the list in order.
func (s *Store) Items() []model.Item {
	return slices.Clone(s.items)
}

func (s *Store) Len() int { return len(s.items) }

func (s *Store) Get(id string) (model.Item, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Item{}, false
	}
	return s.items[i], true
}

// Index returns the position of id in the list, or -1.
func (s *Store) Index(id string) int { return s.index(id) }

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.items, func(it model.Item) bool { return it.ID == id })
}

// Add appends a new pending item with a fresh id.
func (s *Store) Add(text string) (model.Item, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Item{}, ErrEmptyText
	}

	id := s.newID()
	for s.index(id) >= 0 {
		id = s.newID()
	}
	it := model.Item{ID: id, Text: text, Status: model.Pending}
	s.items = append(s.items, it)
	s.log.Debug().Str("id", id).Msg("add")
	return it, s.persist()
}

// Edit merges p into the item with id, keeping its position. It reports
// false and writes nothing when id is unknown.
func (s *Store) Edit(id string, p model.Patch) (bool, error) {
	i := s.index(id)
	if i < 0 {
		return false, nil
	}
	if p.Text != nil {
		s.items[i].Text = strings.TrimSpace(*p.Text)
	}
	if p.Status != nil {
		s.items[i].Status = *p.Status
	}
	s.log.Debug().Str("id", id).Msg("edit")
	return true, s.persist()
}

// Toggle flips the completion status of id.
func (s *Store) Toggle(id string) (bool, error) {
	it, ok := s.Get(id)
	if !ok {
		return false, nil
	}
	return s.Edit(id, model.StatusPatch(it.Status.Toggle()))
}

// Remove deletes the item with id. Unknown ids are a no-op.
func (s *Store) Remove(id string) (bool, error) {
	i := s.index(id)
	if i < 0 {
		return false, nil
	}
	s.items = slices.Delete(s.items, i, i+1)
	s.log.Debug().Str("id", id).Msg("remove")
	return true, s.persist()
}

// Reorder replaces the list wholesale. The new list is taken as-is; callers
// are expected to pass a permutation of Items().
func (s *Store) Reorder(items []model.Item) error {
	s.items = slices.Clone(items)
	if s.items == nil {
		s.items = []model.Item{}
	}
	s.log.Debug().Int("count", len(items)).Msg("reorder")
	return s.persist()
}

// Move is the drop step of a drag: the item activeID moves to the position
// currently held by overID. Indices are taken over the whole list.
func (s *Store) Move(activeID, overID string) (bool, error) {
	if activeID == overID {
		return false, nil
	}
	from, to := s.index(activeID), s.index(overID)
	if from < 0 || to < 0 {
		return false, nil
	}
	return true, s.Reorder(MoveItem(s.items, from, to))
}

func (s *Store) persist() error {
	b, err := Encode(s.items)
	if err != nil {
		return err
	}
	if err := s.slot.Set(s.key, b); err != nil {
		s.log.Error().Err(err).Str("key", s.key).Msg("persist")
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

// MoveItem returns a copy of items with the element at from relocated to to.
// Out-of-range indices return an unchanged copy.
func MoveItem[T any](items []T, from, to int) []T {
	out := slices.Clone(items)
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) || from == to {
		return out
	}
	v := out[from]
	out = slices.Delete(out, from, from+1)
	return slices.Insert(out, to, v)
}
