package effects

import "time"

// Step is one stage of a timed sequence. After is the delay before the step
// following this one begins.
type Step struct {
	Name  string
	After time.Duration
}

// Sequence walks through steps on timer ticks. Each run gets a new generation
// so ticks scheduled by an abandoned run can be recognized and dropped.
type Sequence struct {
	steps   []Step
	index   int
	running bool
	gen     int
}

// NewSequence returns an idle sequence.
func NewSequence(steps ...Step) *Sequence {
	return &Sequence{steps: steps, index: -1}
}

// Start begins a new run at the first step and returns its generation. It
// returns false if the sequence is already running.
func (s *Sequence) Start() (int, bool) {
	if s.running || len(s.steps) == 0 {
		return s.gen, false
	}
	s.gen++
	s.index = 0
	s.running = true
	return s.gen, true
}

// Advance moves to the next step if gen matches the current run. It returns
// false when the tick is stale or the sequence has finished.
func (s *Sequence) Advance(gen int) bool {
	if !s.running || gen != s.gen {
		return false
	}
	s.index++
	if s.index >= len(s.steps) {
		s.running = false
		s.index = -1
		return false
	}
	return true
}

// Cancel stops the current run; its pending ticks become stale.
func (s *Sequence) Cancel() {
	s.running = false
	s.index = -1
	s.gen++
}

// Running reports whether a run is in progress.
func (s *Sequence) Running() bool {
	return s.running
}

// Generation returns the current run's generation.
func (s *Sequence) Generation() int {
	return s.gen
}

// Current returns the active step.
func (s *Sequence) Current() (Step, bool) {
	if !s.running {
		return Step{}, false
	}
	return s.steps[s.index], true
}

// Is reports whether the named step is active.
func (s *Sequence) Is(name string) bool {
	step, ok := s.Current()
	return ok && step.Name == name
}

// Cake step names.
const (
	CakeBlown   = "blown"
	CakeMessage = "message"
	CakeFading  = "fading"
)

// NewCakeSequence times the candle blowing: confetti, then the message at
// 1.5s, fading at 3.5s, and done at 5s.
func NewCakeSequence() *Sequence {
	return NewSequence(
		Step{Name: CakeBlown, After: 1500 * time.Millisecond},
		Step{Name: CakeMessage, After: 2000 * time.Millisecond},
		Step{Name: CakeFading, After: 1500 * time.Millisecond},
	)
}

// Hug step names.
const (
	HugDimming = "dimming"
	HugEnters  = "enters"
	HugBurst   = "burst"
	HugMessage = "message"
	HugFading  = "fading"
)

// NewHugSequence times the cosmic hug animation.
func NewHugSequence() *Sequence {
	return NewSequence(
		Step{Name: HugDimming, After: 500 * time.Millisecond},
		Step{Name: HugEnters, After: 1500 * time.Millisecond},
		Step{Name: HugBurst, After: 1200 * time.Millisecond},
		Step{Name: HugMessage, After: 3000 * time.Millisecond},
		Step{Name: HugFading, After: 1000 * time.Millisecond},
	)
}
