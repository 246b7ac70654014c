// Package budget owns the budget state and every operation that changes it.
//
// A Book holds one model.State. Each mutation validates its input first,
// writes the new state through the store.Slot synchronously, and only then
// replaces the in-memory state and notifies the Renderer. A rejected or failed
// operation leaves the Book exactly as it was.
//
// A Book is not safe for concurrent use; callers serialize access.
package budget

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/theirongolddev/bplan/internal/model"
	"github.com/theirongolddev/bplan/internal/pipeline"
	"github.com/theirongolddev/bplan/internal/store"

	"github.com/sirupsen/logrus"
)

// maxImportBytes caps how much of an import file is read.
const maxImportBytes = 8 << 20

// Renderer displays the state after every successful mutation.
type Renderer interface {
	Render(state model.State, summary model.Summary)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(model.State, model.Summary)

// Render calls f.
func (f RendererFunc) Render(s model.State, sum model.Summary) { f(s, sum) }

// Option configures a Book.
type Option func(*Book)

// WithLogger sets the logger used for developer diagnostics.
func WithLogger(log *logrus.Logger) Option {
	return func(b *Book) {
		if log != nil {
			b.log = log
		}
	}
}

// WithRenderer sets the collaborator notified after each save.
func WithRenderer(r Renderer) Option {
	return func(b *Book) { b.renderer = r }
}

// Book is the application state plus its durable slot.
type Book struct {
	slot     store.Slot
	state    model.State
	log      *logrus.Logger
	renderer Renderer
}

// New returns a Book holding the default state. Call Load to read the slot.
func New(slot store.Slot, opts ...Option) *Book {
	b := &Book{
		slot:  slot,
		state: model.DefaultState(),
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Load reads the saved state. A missing or malformed snapshot keeps the
// defaults; the problem is logged and never returned.
func (b *Book) Load() {
	data, err := b.slot.Read()
	if errors.Is(err, store.ErrEmpty) {
		b.log.Debug("no saved budget, starting empty")
		return
	}
	if err != nil {
		b.log.WithError(err).Warn("load failed, using defaults")
		return
	}

	s, err := store.Decode(data)
	if err != nil {
		b.log.WithError(err).Warn("saved budget is malformed, using defaults")
		return
	}
	b.state = s
}

// State returns a copy of the current state.
func (b *Book) State() model.State {
	return b.state.Clone()
}

// Summary derives totals from the current state.
func (b *Book) Summary() model.Summary {
	return pipeline.Summarize(b.state)
}

// Len returns the number of entries in a list.
func (b *Book) Len(kind model.ListKind) int {
	return len(b.state.List(kind))
}

// Entry returns the entry at index, or false if index is out of range.
func (b *Book) Entry(kind model.ListKind, index int) (model.Entry, bool) {
	list := b.state.List(kind)
	if index < 0 || index >= len(list) {
		return model.Entry{}, false
	}
	return list[index], true
}

// SetIncome replaces the monthly income.
func (b *Book) SetIncome(raw string) error {
	v, err := model.ParseAmount(raw)
	if err != nil {
		return err
	}
	next := b.state.Clone()
	next.Income = v
	return b.save(next)
}

// AddEntry appends an entry with a trimmed name to a list.
func (b *Book) AddEntry(kind model.ListKind, name, rawAmount string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	amount, err := model.ParseAmount(rawAmount)
	if err != nil {
		return err
	}

	list := append(b.state.Clone().List(kind), model.Entry{Name: name, Amount: amount})
	return b.save(b.state.WithList(kind, list))
}

// EditEntry replaces the entry at index with the submitted values.
// It reports false without error when the form was cancelled or index is stale.
func (b *Book) EditEntry(kind model.ListKind, index int, res EditResult) (bool, error) {
	if res.Cancelled {
		return false, nil
	}
	if _, ok := b.Entry(kind, index); !ok {
		b.log.WithFields(logrus.Fields{"kind": kind, "index": index}).Debug("edit ignored, index out of range")
		return false, nil
	}

	amount, err := model.ParseAmount(res.Amount)
	if err != nil {
		return false, err
	}
	name := strings.TrimSpace(res.Name)
	if name == "" {
		return false, ErrEmptyName
	}

	list := b.state.Clone().List(kind)
	list[index] = model.Entry{Name: name, Amount: amount}
	if err := b.save(b.state.WithList(kind, list)); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteEntry removes the entry at index. Out of range is a no-op.
func (b *Book) DeleteEntry(kind model.ListKind, index int) (bool, error) {
	if _, ok := b.Entry(kind, index); !ok {
		b.log.WithFields(logrus.Fields{"kind": kind, "index": index}).Debug("delete ignored, index out of range")
		return false, nil
	}

	old := b.state.List(kind)
	list := make([]model.Entry, 0, len(old)-1)
	list = append(list, old[:index]...)
	list = append(list, old[index+1:]...)

	if err := b.save(b.state.WithList(kind, list)); err != nil {
		return false, err
	}
	return true, nil
}

// ResetAll clears income and both lists. It requires explicit confirmation.
func (b *Book) ResetAll(confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	return b.save(model.DefaultState())
}

// Export writes the serialized state to w.
func (b *Book) Export(w io.Writer) (int, error) {
	data, err := store.Encode(b.state)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	if err != nil {
		return n, fmt.Errorf("writing export: %w", err)
	}
	return n, nil
}

// Import replaces the whole state with the data read from r.
// Invalid data returns an error wrapping ErrInvalidImport and changes nothing.
func (b *Book) Import(r io.Reader) error {
	data, err := io.ReadAll(io.LimitReader(r, maxImportBytes+1))
	if err != nil {
		return fmt.Errorf("reading import: %w", err)
	}
	if len(data) > maxImportBytes {
		return fmt.Errorf("%w: file larger than %d bytes", ErrInvalidImport, maxImportBytes)
	}

	s, err := store.Decode(data)
	if err != nil {
		b.log.WithError(err).Info("import rejected")
		return fmt.Errorf("%w: %w", ErrInvalidImport, err)
	}
	return b.save(s)
}

// save writes next to the slot, then commits it and re-renders.
func (b *Book) save(next model.State) error {
	if !pipeline.Summarize(next).Finite() {
		return fmt.Errorf("%w: totals are too large", ErrInvalidAmount)
	}
	data, err := store.Encode(next)
	if err != nil {
		return err
	}
	if err := b.slot.Write(data); err != nil {
		b.log.WithError(err).Error("save failed")
		return fmt.Errorf("saving budget: %w", err)
	}

	b.state = next
	if b.renderer != nil {
		b.renderer.Render(b.state.Clone(), b.Summary())
	}
	return nil
}
