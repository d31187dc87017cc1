// Package flow switches between the top-level greeting screens.
package flow

import (
	"fmt"
	"time"

	"github.com/verte-zerg/starletters/internal/model"
	"github.com/verte-zerg/starletters/internal/tracker"
)

// Flow owns the current screen and the letters tracker.
type Flow struct {
	screen  model.Screen
	tracker *tracker.Tracker
	now     func() time.Time

	startedAt time.Time
	skipped   bool
}

// New returns a flow positioned on the welcome screen.
func New(tr *tracker.Tracker) *Flow {
	return &Flow{tracker: tr, now: time.Now}
}

// Screen returns the current screen.
func (f *Flow) Screen() model.Screen {
	return f.screen
}

// Tracker returns the letters tracker.
func (f *Flow) Tracker() *tracker.Tracker {
	return f.tracker
}

// Enter leaves the welcome screen.
func (f *Flow) Enter() error {
	if f.screen != model.ScreenWelcome {
		return fmt.Errorf("%w: enter from %s", tracker.ErrInvalidTransition, f.screen)
	}
	f.screen = model.ScreenLetters
	f.startedAt = f.now()
	f.skipped = false
	return nil
}

// ShowCake moves to the cake once the letters are done, or skips them from the
// category overview.
func (f *Flow) ShowCake() error {
	if f.screen != model.ScreenLetters {
		return fmt.Errorf("%w: show cake from %s", tracker.ErrInvalidTransition, f.screen)
	}
	switch f.tracker.Mode() {
	case model.ViewAllComplete:
		f.skipped = false
	case model.ViewCategories:
		f.skipped = true
	default:
		return fmt.Errorf("%w: show cake in %s mode", tracker.ErrInvalidTransition, f.tracker.Mode())
	}
	f.screen = model.ScreenCake
	return nil
}

// CakeDone moves from the cake to the final screen and returns the journey
// that just finished.
func (f *Flow) CakeDone() (model.Journey, error) {
	if f.screen != model.ScreenCake {
		return model.Journey{}, fmt.Errorf("%w: cake done from %s", tracker.ErrInvalidTransition, f.screen)
	}
	f.screen = model.ScreenFinal
	return model.Journey{
		StartedAt:           f.startedAt,
		FinishedAt:          f.now(),
		LettersRead:         f.tracker.LettersRead(),
		CategoriesCompleted: len(f.tracker.CompletedCategories()),
		Skipped:             f.skipped,
	}, nil
}

// Replay returns to the welcome screen with fresh letters progress.
func (f *Flow) Replay() error {
	if f.screen != model.ScreenFinal {
		return fmt.Errorf("%w: replay from %s", tracker.ErrInvalidTransition, f.screen)
	}
	f.tracker.StartOver()
	f.screen = model.ScreenWelcome
	f.startedAt = time.Time{}
	f.skipped = false
	return nil
}
