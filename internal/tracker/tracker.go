// Package tracker implements the letters screen state machine.
//
// A Tracker owns the session Progress: which letters were opened, which view
// mode is active, and which category is being browsed. Category completion is
// derived from the opened set on every read, so it can never lag behind it.
package tracker

import (
	"errors"
	"fmt"
	"sort"

	"github.com/verte-zerg/starletters/internal/catalog"
	"github.com/verte-zerg/starletters/internal/model"
)

var (
	// ErrInvalidReference reports an item or category that is not in the catalog.
	ErrInvalidReference = errors.New("invalid reference")
	// ErrInvalidTransition reports an action that is not allowed in the current mode.
	ErrInvalidTransition = errors.New("invalid transition")
)

// Letter is an item of the selected category with its read state.
type Letter struct {
	Item   model.Item
	Opened bool
}

// CategoryProgress reports how much of a category has been read.
type CategoryProgress struct {
	Category  model.Category
	Read      int
	Completed bool
}

// Tracker drives the letters screen for a single session. It is not safe for
// concurrent use; actions are expected to arrive one at a time from the UI loop.
type Tracker struct {
	catalog *catalog.Catalog

	opened    map[int]struct{}
	mode      model.ViewMode
	selected  string
	displayed *model.Item
}

// New returns a tracker with empty progress over the given catalog.
func New(c *catalog.Catalog) (*Tracker, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil catalog", catalog.ErrInvariantViolation)
	}
	t := &Tracker{catalog: c}
	t.StartOver()
	return t, nil
}

// Catalog returns the catalog the tracker was built with.
func (t *Tracker) Catalog() *catalog.Catalog {
	return t.catalog
}

// SelectCategory starts browsing a category.
func (t *Tracker) SelectCategory(name string) error {
	if _, ok := t.catalog.Category(name); !ok {
		return fmt.Errorf("%w: category %q", ErrInvalidReference, name)
	}
	if t.mode != model.ViewCategories && t.mode != model.ViewLetters {
		return fmt.Errorf("%w: select category in %s mode", ErrInvalidTransition, t.mode)
	}
	t.selected = name
	t.mode = model.ViewLetters
	return nil
}

// GoBackToCategories leaves the selected category.
func (t *Tracker) GoBackToCategories() error {
	if t.mode != model.ViewLetters {
		return fmt.Errorf("%w: back to categories in %s mode", ErrInvalidTransition, t.mode)
	}
	t.selected = ""
	t.mode = model.ViewCategories
	return nil
}

// OpenItem marks an ordinary letter as read and displays it.
func (t *Tracker) OpenItem(id int) error {
	item, ok := t.catalog.Item(id)
	if !ok {
		return fmt.Errorf("%w: item %d", ErrInvalidReference, id)
	}
	if t.mode != model.ViewCategories && t.mode != model.ViewLetters {
		return fmt.Errorf("%w: open item in %s mode", ErrInvalidTransition, t.mode)
	}
	t.opened[id] = struct{}{}
	t.displayed = &item
	t.checkCompletion()
	return nil
}

// CloseItem hides the displayed ordinary letter.
func (t *Tracker) CloseItem() error {
	if t.displayed == nil || t.displayed.ID == t.catalog.Final().ID {
		return fmt.Errorf("%w: no letter is open", ErrInvalidTransition)
	}
	t.displayed = nil
	t.checkCompletion()
	return nil
}

// OpenFinalItem displays the final letter.
func (t *Tracker) OpenFinalItem() error {
	if t.mode != model.ViewFinalLetterPending {
		return fmt.Errorf("%w: open final letter in %s mode", ErrInvalidTransition, t.mode)
	}
	final := t.catalog.Final().Item
	t.displayed = &final
	t.mode = model.ViewFinalLetterOpen
	return nil
}

// CloseFinalItem records the final letter as read and completes the session.
func (t *Tracker) CloseFinalItem() error {
	if t.mode != model.ViewFinalLetterOpen {
		return fmt.Errorf("%w: close final letter in %s mode", ErrInvalidTransition, t.mode)
	}
	t.opened[t.catalog.Final().ID] = struct{}{}
	t.displayed = nil
	t.mode = model.ViewAllComplete
	return nil
}

// StartOver discards all progress.
func (t *Tracker) StartOver() {
	t.opened = map[int]struct{}{}
	t.mode = model.ViewCategories
	t.selected = ""
	t.displayed = nil
}

// checkCompletion advances to the final letter once every ordinary letter is
// read and every category is complete. The category condition is implied by the
// item condition for a valid catalog; both are checked.
func (t *Tracker) checkCompletion() {
	if t.mode != model.ViewCategories && t.mode != model.ViewLetters {
		return
	}
	if !t.allItemsOpened() {
		return
	}
	if len(t.CompletedCategories()) != len(t.catalog.Categories()) {
		return
	}
	t.selected = ""
	t.mode = model.ViewFinalLetterPending
}

func (t *Tracker) allItemsOpened() bool {
	for _, item := range t.catalog.Items() {
		if _, ok := t.opened[item.ID]; !ok {
			return false
		}
	}
	return true
}

// Mode returns the current view mode.
func (t *Tracker) Mode() model.ViewMode {
	return t.mode
}

// SelectedCategory returns the category being browsed, if any.
func (t *Tracker) SelectedCategory() (string, bool) {
	return t.selected, t.selected != ""
}

// Letters returns the selected category's letters in catalog order. It is empty
// outside letters mode.
func (t *Tracker) Letters() []Letter {
	if t.mode != model.ViewLetters || t.selected == "" {
		return nil
	}
	items := t.catalog.ItemsIn(t.selected)
	out := make([]Letter, 0, len(items))
	for _, item := range items {
		out = append(out, Letter{Item: item, Opened: t.Opened(item.ID)})
	}
	return out
}

// CategoryProgress returns per-category read counts in catalog order.
func (t *Tracker) CategoryProgress() []CategoryProgress {
	categories := t.catalog.Categories()
	out := make([]CategoryProgress, 0, len(categories))
	for _, cat := range categories {
		read := t.readIn(cat.Name)
		out = append(out, CategoryProgress{Category: cat, Read: read, Completed: read == cat.Total})
	}
	return out
}

// CategoryComplete reports whether every letter of a category is read.
func (t *Tracker) CategoryComplete(name string) bool {
	cat, ok := t.catalog.Category(name)
	if !ok {
		return false
	}
	return t.readIn(name) == cat.Total
}

func (t *Tracker) readIn(name string) int {
	read := 0
	for _, item := range t.catalog.ItemsIn(name) {
		if _, ok := t.opened[item.ID]; ok {
			read++
		}
	}
	return read
}

// CompletedCategories returns the names of complete categories in catalog order.
func (t *Tracker) CompletedCategories() []string {
	var out []string
	for _, p := range t.CategoryProgress() {
		if p.Completed {
			out = append(out, p.Category.Name)
		}
	}
	return out
}

// Displayed returns the letter currently shown, if any.
func (t *Tracker) Displayed() (model.Item, bool) {
	if t.displayed == nil {
		return model.Item{}, false
	}
	return *t.displayed, true
}

// FinalReachable reports whether the final letter can be opened.
func (t *Tracker) FinalReachable() bool {
	return t.mode == model.ViewFinalLetterPending
}

// Opened reports whether a letter has been read.
func (t *Tracker) Opened(id int) bool {
	_, ok := t.opened[id]
	return ok
}

// OpenedIDs returns the opened ids in ascending order, including the final id
// once the final letter was closed.
func (t *Tracker) OpenedIDs() []int {
	ids := make([]int, 0, len(t.opened))
	for id := range t.opened {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// LettersRead counts opened ordinary letters.
func (t *Tracker) LettersRead() int {
	read := 0
	for _, item := range t.catalog.Items() {
		if _, ok := t.opened[item.ID]; ok {
			read++
		}
	}
	return read
}
