// Package tui provides the Bubble Tea greeting interface.
package tui

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/verte-zerg/starletters/internal/catalog"
	"github.com/verte-zerg/starletters/internal/effects"
	"github.com/verte-zerg/starletters/internal/flow"
	"github.com/verte-zerg/starletters/internal/model"
)

const (
	frameInterval = 120 * time.Millisecond
	driftDuration = 4 * time.Second
	confettiCount  = 20
	confettiHeight = 6
	burstCount    = 15
)

// JourneyRecorder stores finished journeys. A nil recorder disables history.
type JourneyRecorder interface {
	InsertJourney(ctx context.Context, j model.Journey) (int64, error)
	IncrementHugs(ctx context.Context, id int64) error
}

type frameMsg time.Time

type typeMsg struct{ gen int }

type stepMsg struct {
	seq string
	gen int
}

type driftDoneMsg struct{ gen int }

const (
	seqCake = "cake"
	seqHug  = "hug"
)

// Model implements the Bubble Tea greeting UI.
type Model struct {
	config   model.Config
	flow     *flow.Flow
	recorder JourneyRecorder
	logger   *zap.Logger
	rnd      *rand.Rand

	keys keyMap
	help help.Model
	card viewport.Model

	width  int
	height int
	frame  int

	categoryCursor int
	letterCursor   int

	stars      *effects.Starfield
	typewriter *effects.Typewriter
	typeGen    int

	cake          *effects.Sequence
	confetti      *effects.Confetti
	confettiFrame int

	hug      *effects.Sequence
	hugCount int
	burst    *effects.Starfield

	drift      *effects.Drift
	driftFrame int
	driftGen   int

	journeyID  int64
	hasJourney bool
}

// NewModel constructs the greeting UI. recorder may be nil.
func NewModel(cfg model.Config, fl *flow.Flow, recorder JourneyRecorder, logger *zap.Logger, rnd *rand.Rand) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rnd == nil {
		rnd = effects.New()
	}
	m := &Model{
		config:   cfg,
		flow:     fl,
		recorder: recorder,
		logger:   logger,
		rnd:      rnd,
		keys:     newKeyMap(),
		help:     help.New(),
		card:     viewport.New(0, 0),
		cake:     effects.NewCakeSequence(),
		hug:      effects.NewHugSequence(),
	}
	m.stars = effects.NewStarfield(rnd, cfg.Stars)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.config.ReduceMotion {
		return nil
	}
	return frameTick()
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m *Model) typeTick() tea.Cmd {
	gen := m.typeGen
	interval := time.Duration(m.config.TypewriterMs) * time.Millisecond
	return tea.Tick(interval, func(time.Time) tea.Msg { return typeMsg{gen: gen} })
}

func stepTick(seq string, s *effects.Sequence) tea.Cmd {
	step, ok := s.Current()
	if !ok {
		return nil
	}
	gen := s.Generation()
	return tea.Tick(step.After, func(time.Time) tea.Msg { return stepMsg{seq: seq, gen: gen} })
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeCard()
		return m, nil
	case frameMsg:
		m.frame++
		if m.confetti != nil {
			m.confettiFrame++
			if m.confetti.Done(confettiHeight, m.confettiFrame) {
				m.confetti = nil
			}
		}
		if m.drift != nil {
			m.driftFrame++
		}
		return m, frameTick()
	case typeMsg:
		return m, m.handleType(msg)
	case stepMsg:
		return m, m.handleStep(msg)
	case driftDoneMsg:
		if msg.gen == m.driftGen {
			m.drift = nil
		}
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch m.flow.Screen() {
	case model.ScreenWelcome:
		if key.Matches(msg, m.keys.Enter, m.keys.Skip) {
			m.must(m.flow.Enter())
			m.categoryCursor = 0
		}
		return nil
	case model.ScreenLetters:
		return m.handleLettersKey(msg)
	case model.ScreenCake:
		return m.handleCakeKey(msg)
	case model.ScreenFinal:
		return m.handleFinalKey(msg)
	}
	return nil
}

func (m *Model) handleLettersKey(msg tea.KeyMsg) tea.Cmd {
	tr := m.flow.Tracker()
	if shown, ok := tr.Displayed(); ok {
		return m.handleCardKey(msg, shown)
	}
	switch tr.Mode() {
	case model.ViewCategories:
		count := len(tr.CategoryProgress())
		switch {
		case key.Matches(msg, m.keys.Left, m.keys.Up):
			m.categoryCursor = wrapIndex(m.categoryCursor-1, count)
		case key.Matches(msg, m.keys.Right, m.keys.Down):
			m.categoryCursor = wrapIndex(m.categoryCursor+1, count)
		case key.Matches(msg, m.keys.Enter):
			name := tr.CategoryProgress()[m.categoryCursor].Category.Name
			m.must(tr.SelectCategory(name))
			m.letterCursor = 0
			m.logger.Debug("category selected", zap.String("category", name))
		case key.Matches(msg, m.keys.Cake):
			m.must(m.flow.ShowCake())
		case key.Matches(msg, m.keys.Restart):
			if m.hasProgress() {
				m.startOver()
			}
		}
	case model.ViewLetters:
		letters := tr.Letters()
		switch {
		case key.Matches(msg, m.keys.Left, m.keys.Up):
			m.letterCursor = wrapIndex(m.letterCursor-1, len(letters))
		case key.Matches(msg, m.keys.Right, m.keys.Down):
			m.letterCursor = wrapIndex(m.letterCursor+1, len(letters))
		case key.Matches(msg, m.keys.Enter):
			if len(letters) == 0 {
				return nil
			}
			item := letters[m.letterCursor].Item
			m.must(tr.OpenItem(item.ID))
			m.logger.Debug("letter opened", zap.Int("id", item.ID), zap.String("mode", tr.Mode().String()))
			return m.openCard(item.Text)
		case key.Matches(msg, m.keys.Back):
			m.must(tr.GoBackToCategories())
		}
	case model.ViewFinalLetterPending:
		if key.Matches(msg, m.keys.Enter) {
			m.must(tr.OpenFinalItem())
			return m.openCard(tr.Catalog().Final().Text)
		}
	case model.ViewAllComplete:
		if key.Matches(msg, m.keys.Enter, m.keys.Cake) {
			m.must(m.flow.ShowCake())
		}
	}
	return nil
}

func (m *Model) handleCardKey(msg tea.KeyMsg, shown model.Item) tea.Cmd {
	tr := m.flow.Tracker()
	switch {
	case key.Matches(msg, m.keys.Skip):
		if m.typewriter != nil && !m.typewriter.Done() {
			m.typewriter.Skip()
			m.refreshCard()
		}
		return nil
	case key.Matches(msg, m.keys.Enter, m.keys.Back):
		m.typewriter = nil
		m.typeGen++
		if shown.ID == tr.Catalog().Final().ID {
			m.must(tr.CloseFinalItem())
			return m.startDrift()
		}
		m.must(tr.CloseItem())
		if tr.Mode() == model.ViewFinalLetterPending {
			m.logger.Info("all letters read")
		}
		return nil
	default:
		var cmd tea.Cmd
		m.card, cmd = m.card.Update(msg)
		return cmd
	}
}

func (m *Model) handleCakeKey(msg tea.KeyMsg) tea.Cmd {
	if !key.Matches(msg, m.keys.Blow) {
		return nil
	}
	if _, ok := m.cake.Start(); !ok {
		return nil
	}
	m.confetti = effects.NewConfetti(m.rnd, confettiCount)
	m.confettiFrame = 0
	return stepTick(seqCake, m.cake)
}

func (m *Model) handleFinalKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Replay):
		m.hug.Cancel()
		m.burst = nil
		m.must(m.flow.Replay())
		m.resetSession()
	case key.Matches(msg, m.keys.Hug):
		if _, ok := m.hug.Start(); !ok {
			return nil
		}
		m.hugCount++
		m.burst = effects.NewBurst(m.rnd, burstCount)
		m.recordHug()
		return stepTick(seqHug, m.hug)
	}
	return nil
}

func (m *Model) handleType(msg typeMsg) tea.Cmd {
	if msg.gen != m.typeGen || m.typewriter == nil {
		return nil
	}
	more := m.typewriter.Tick()
	m.refreshCard()
	if !more {
		return nil
	}
	return m.typeTick()
}

func (m *Model) handleStep(msg stepMsg) tea.Cmd {
	var seq *effects.Sequence
	switch msg.seq {
	case seqCake:
		seq = m.cake
	case seqHug:
		seq = m.hug
	default:
		return nil
	}
	if msg.gen != seq.Generation() || !seq.Running() {
		return nil
	}
	if seq.Advance(msg.gen) {
		return stepTick(msg.seq, seq)
	}
	if msg.seq == seqCake {
		m.confetti = nil
		m.finishCake()
	}
	if msg.seq == seqHug {
		m.burst = nil
	}
	return nil
}

func (m *Model) finishCake() {
	journey, err := m.flow.CakeDone()
	if err != nil {
		m.must(err)
		return
	}
	m.hugCount = 0
	m.hasJourney = false
	if m.recorder == nil {
		return
	}
	id, err := m.recorder.InsertJourney(context.Background(), journey)
	if err != nil {
		m.logger.Error("failed to save journey", zap.Error(err))
		return
	}
	m.journeyID = id
	m.hasJourney = true
	m.logger.Info("journey saved",
		zap.Int64("id", id),
		zap.Int("letters", journey.LettersRead),
		zap.Bool("skipped", journey.Skipped),
	)
}

func (m *Model) recordHug() {
	if m.recorder == nil || !m.hasJourney {
		return
	}
	if err := m.recorder.IncrementHugs(context.Background(), m.journeyID); err != nil {
		m.logger.Error("failed to record hug", zap.Error(err))
	}
}

func (m *Model) openCard(text string) tea.Cmd {
	m.typeGen++
	m.typewriter = effects.NewTypewriter(m.personalize(text))
	m.resizeCard()
	m.card.GotoTop()
	if m.config.ReduceMotion || m.config.TypewriterMs <= 0 {
		m.typewriter.Skip()
		m.refreshCard()
		return nil
	}
	m.refreshCard()
	return m.typeTick()
}

// personalize fills the recipient placeholder in letter text.
func (m *Model) personalize(text string) string {
	return strings.ReplaceAll(text, catalog.RecipientPlaceholder, m.recipient())
}

func (m *Model) refreshCard() {
	if m.typewriter == nil {
		m.card.SetContent("")
		return
	}
	m.card.SetContent(wrapText(m.typewriter.Text(), m.card.Width))
	if !m.typewriter.Done() {
		m.card.GotoBottom()
	}
}

func (m *Model) resizeCard() {
	w := m.width - 12
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	h := m.height - 14
	if h > 12 {
		h = 12
	}
	if h < 3 {
		h = 3
	}
	m.card.Width = w
	m.card.Height = h
	m.refreshCard()
}

func (m *Model) startDrift() tea.Cmd {
	cats := m.flow.Tracker().Catalog().Categories()
	symbols := make([]string, 0, len(cats)+1)
	for _, c := range cats {
		symbols = append(symbols, c.Symbol)
	}
	symbols = append(symbols, m.flow.Tracker().Catalog().Final().CategorySymbol)
	m.driftGen++
	m.drift = effects.NewDrift(m.rnd, symbols)
	m.driftFrame = 0
	gen := m.driftGen
	return tea.Tick(driftDuration, func(time.Time) tea.Msg { return driftDoneMsg{gen: gen} })
}

func (m *Model) startOver() {
	m.flow.Tracker().StartOver()
	m.resetSession()
	m.logger.Debug("letters started over")
}

// resetSession drops per-session UI state. Pending timers from the old session
// carry stale generations and are ignored when they fire.
func (m *Model) resetSession() {
	m.categoryCursor = 0
	m.letterCursor = 0
	m.typewriter = nil
	m.typeGen++
	m.drift = nil
	m.driftGen++
	m.confetti = nil
	m.hugCount = 0
	m.hasJourney = false
}

func (m *Model) hasProgress() bool {
	tr := m.flow.Tracker()
	return len(tr.OpenedIDs()) > 0 || len(tr.CompletedCategories()) > 0
}

// must logs tracker errors. The UI only offers valid actions, so any error here
// is a bug rather than a user mistake.
func (m *Model) must(err error) {
	if err != nil {
		m.logger.Warn("action rejected", zap.Error(err))
	}
}

func wrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}
