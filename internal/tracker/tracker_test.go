package tracker

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/verte-zerg/starletters/internal/catalog"
	"github.com/verte-zerg/starletters/internal/model"
)

func newTracker(t *testing.T) *Tracker {
	t.Helper()
	tr, err := New(catalog.Default())
	if err != nil {
		t.Fatalf("new tracker: %v", err)
	}
	return tr
}

func openAll(t *testing.T, tr *Tracker, ids []int) {
	t.Helper()
	for _, id := range ids {
		if err := tr.OpenItem(id); err != nil {
			t.Fatalf("open %d: %v", id, err)
		}
		if err := tr.CloseItem(); err != nil {
			t.Fatalf("close %d: %v", id, err)
		}
	}
}

func itemIDs(c *catalog.Catalog) []int {
	var ids []int
	for _, item := range c.Items() {
		ids = append(ids, item.ID)
	}
	return ids
}

// checkInvariant verifies a category is complete iff all of its items are opened.
func checkInvariant(t *testing.T, tr *Tracker) {
	t.Helper()
	completed := map[string]bool{}
	for _, name := range tr.CompletedCategories() {
		completed[name] = true
	}
	for _, cat := range tr.Catalog().Categories() {
		all := true
		for _, item := range tr.Catalog().ItemsIn(cat.Name) {
			if !tr.Opened(item.ID) {
				all = false
			}
		}
		if all != completed[cat.Name] {
			t.Fatalf("category %q: all opened=%v, completed=%v", cat.Name, all, completed[cat.Name])
		}
	}
}

func TestSelectCategoryAndCompleteIt(t *testing.T) {
	tr := newTracker(t)
	name := "Memories That Shaped Us"
	if err := tr.SelectCategory(name); err != nil {
		t.Fatalf("select: %v", err)
	}
	if tr.Mode() != model.ViewLetters {
		t.Fatalf("expected letters mode, got %s", tr.Mode())
	}
	if got, ok := tr.SelectedCategory(); !ok || got != name {
		t.Fatalf("expected selected %q, got %q", name, got)
	}
	letters := tr.Letters()
	if len(letters) != 4 {
		t.Fatalf("expected 4 letters, got %d", len(letters))
	}
	for i, letter := range letters {
		if tr.CategoryComplete(name) {
			t.Fatalf("category complete before letter %d", i)
		}
		openAll(t, tr, []int{letter.Item.ID})
		checkInvariant(t, tr)
	}
	if diff := cmp.Diff([]string{name}, tr.CompletedCategories()); diff != "" {
		t.Fatalf("completed mismatch (-want +got):\n%s", diff)
	}
	for _, letter := range tr.Letters() {
		if !letter.Opened {
			t.Fatalf("expected letter %d opened", letter.Item.ID)
		}
	}
	if tr.Mode() != model.ViewLetters {
		t.Fatalf("expected to stay in letters mode, got %s", tr.Mode())
	}
}

func TestOpenItemIsIdempotent(t *testing.T) {
	tr := newTracker(t)
	openAll(t, tr, []int{3})
	before := tr.OpenedIDs()
	openAll(t, tr, []int{3})
	if diff := cmp.Diff(before, tr.OpenedIDs()); diff != "" {
		t.Fatalf("opened changed (-want +got):\n%s", diff)
	}
}

func TestOpenAllAdvancesToFinalPending(t *testing.T) {
	tr := newTracker(t)
	ids := itemIDs(tr.Catalog())
	rnd := rand.New(rand.NewSource(7))
	rnd.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

	prevOpened := 0
	prevCompleted := 0
	for i, id := range ids {
		if err := tr.OpenItem(id); err != nil {
			t.Fatalf("open %d: %v", id, err)
		}
		checkInvariant(t, tr)
		if len(tr.OpenedIDs()) < prevOpened || len(tr.CompletedCategories()) < prevCompleted {
			t.Fatalf("progress shrank after opening %d", id)
		}
		prevOpened = len(tr.OpenedIDs())
		prevCompleted = len(tr.CompletedCategories())
		if i < len(ids)-1 && tr.FinalReachable() {
			t.Fatalf("final reachable after %d of %d items", i+1, len(ids))
		}
		if err := tr.CloseItem(); err != nil {
			t.Fatalf("close %d: %v", id, err)
		}
	}
	if tr.Mode() != model.ViewFinalLetterPending {
		t.Fatalf("expected finalLetterPending, got %s", tr.Mode())
	}
	if !tr.FinalReachable() {
		t.Fatalf("expected final reachable")
	}
	if len(tr.CompletedCategories()) != 5 {
		t.Fatalf("expected 5 completed categories, got %d", len(tr.CompletedCategories()))
	}
}

func TestCompletionFiresOutsideLettersMode(t *testing.T) {
	tr := newTracker(t)
	ids := itemIDs(tr.Catalog())
	if err := tr.SelectCategory("Reasons I Love You"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := tr.GoBackToCategories(); err != nil {
		t.Fatalf("back: %v", err)
	}
	openAll(t, tr, ids)
	if tr.Mode() != model.ViewFinalLetterPending {
		t.Fatalf("expected finalLetterPending from categories mode, got %s", tr.Mode())
	}
}

func TestFinalLetterFlow(t *testing.T) {
	tr := newTracker(t)
	openAll(t, tr, itemIDs(tr.Catalog()))

	if err := tr.OpenFinalItem(); err != nil {
		t.Fatalf("open final: %v", err)
	}
	if tr.Mode() != model.ViewFinalLetterOpen {
		t.Fatalf("expected finalLetterOpen, got %s", tr.Mode())
	}
	shown, ok := tr.Displayed()
	if !ok || shown.ID != catalog.FinalID {
		t.Fatalf("expected final letter displayed, got %+v", shown)
	}
	if tr.Opened(catalog.FinalID) {
		t.Fatalf("final letter must not count as opened before closing")
	}
	if err := tr.CloseFinalItem(); err != nil {
		t.Fatalf("close final: %v", err)
	}
	if tr.Mode() != model.ViewAllComplete {
		t.Fatalf("expected allComplete, got %s", tr.Mode())
	}
	if !tr.Opened(catalog.FinalID) {
		t.Fatalf("expected final id in opened")
	}
	if _, ok := tr.Displayed(); ok {
		t.Fatalf("expected nothing displayed")
	}
	if tr.LettersRead() != 20 {
		t.Fatalf("expected 20 letters read, got %d", tr.LettersRead())
	}
}

func TestStartOverResetsEverything(t *testing.T) {
	tr := newTracker(t)
	openAll(t, tr, itemIDs(tr.Catalog()))
	if err := tr.OpenFinalItem(); err != nil {
		t.Fatalf("open final: %v", err)
	}
	if err := tr.CloseFinalItem(); err != nil {
		t.Fatalf("close final: %v", err)
	}

	tr.StartOver()
	if tr.Mode() != model.ViewCategories {
		t.Fatalf("expected categories, got %s", tr.Mode())
	}
	if len(tr.OpenedIDs()) != 0 {
		t.Fatalf("expected empty opened, got %v", tr.OpenedIDs())
	}
	if len(tr.CompletedCategories()) != 0 {
		t.Fatalf("expected no completed categories, got %v", tr.CompletedCategories())
	}
	if _, ok := tr.SelectedCategory(); ok {
		t.Fatalf("expected no selected category")
	}
	if tr.Opened(catalog.FinalID) {
		t.Fatalf("final id must be cleared")
	}
}

func TestUnknownReferencesLeaveProgressUnchanged(t *testing.T) {
	tr := newTracker(t)
	if err := tr.SelectCategory("Dreams I Have With You"); err != nil {
		t.Fatalf("select: %v", err)
	}
	openAll(t, tr, []int{13})

	for _, id := range []int{0, 21, catalog.FinalID, -4} {
		if err := tr.OpenItem(id); !errors.Is(err, ErrInvalidReference) {
			t.Fatalf("open %d: expected invalid reference, got %v", id, err)
		}
	}
	if err := tr.SelectCategory("Nope"); !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("expected invalid reference, got %v", err)
	}
	if diff := cmp.Diff([]int{13}, tr.OpenedIDs()); diff != "" {
		t.Fatalf("opened changed (-want +got):\n%s", diff)
	}
	if got, _ := tr.SelectedCategory(); got != "Dreams I Have With You" {
		t.Fatalf("selected changed to %q", got)
	}
	if tr.Mode() != model.ViewLetters {
		t.Fatalf("mode changed to %s", tr.Mode())
	}
}

func TestIllegalTransitions(t *testing.T) {
	tr := newTracker(t)
	if err := tr.GoBackToCategories(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("back from categories: got %v", err)
	}
	if err := tr.CloseItem(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("close without letter: got %v", err)
	}
	if err := tr.OpenFinalItem(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("open final early: got %v", err)
	}
	if err := tr.CloseFinalItem(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("close final early: got %v", err)
	}

	openAll(t, tr, itemIDs(tr.Catalog()))
	if err := tr.SelectCategory("Reasons I Love You"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("select after completion: got %v", err)
	}
	if err := tr.OpenItem(1); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("open after completion: got %v", err)
	}
	if tr.Mode() != model.ViewFinalLetterPending {
		t.Fatalf("mode changed to %s", tr.Mode())
	}
}

func TestSelectCompletedCategoryIsAllowed(t *testing.T) {
	tr := newTracker(t)
	name := "Messages From My Heart"
	openAll(t, tr, []int{17, 18, 19, 20})
	if err := tr.SelectCategory(name); err != nil {
		t.Fatalf("select completed category: %v", err)
	}
	for _, letter := range tr.Letters() {
		if !letter.Opened {
			t.Fatalf("expected all letters opened")
		}
	}
}

func TestCategoryProgressCounts(t *testing.T) {
	tr := newTracker(t)
	openAll(t, tr, []int{1, 2, 5})
	progress := tr.CategoryProgress()
	if len(progress) != 5 {
		t.Fatalf("expected 5 categories, got %d", len(progress))
	}
	if progress[0].Read != 2 || progress[0].Completed {
		t.Fatalf("unexpected first category progress: %+v", progress[0])
	}
	if progress[1].Read != 1 {
		t.Fatalf("unexpected second category progress: %+v", progress[1])
	}
	if progress[4].Read != 0 || progress[4].Category.Total != 4 {
		t.Fatalf("unexpected last category progress: %+v", progress[4])
	}
}
