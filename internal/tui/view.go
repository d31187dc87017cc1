package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/starletters/internal/effects"
	"github.com/verte-zerg/starletters/internal/model"
	"github.com/verte-zerg/starletters/internal/tracker"
)

const (
	starBandHeight = 2
	cardWidth      = 22
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#67E8F9")).Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C4B5FD"))
	buttonStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#A855F7"))
	categoryStyle = lipgloss.NewStyle().
			Width(cardWidth).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#6366F1"))
	completedCategoryStyle = categoryStyle.BorderForeground(lipgloss.Color("#9333EA"))
	selectedCategoryStyle  = categoryStyle.BorderForeground(lipgloss.Color("#C89A3A"))
	badgeStyle             = lipgloss.NewStyle().Foreground(lipgloss.Color("#38BDF8"))
	completedBadgeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#A855F7"))
	completedTextStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ADE80"))
	heartOnStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("#F472B6"))
	heartOffStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("#334155"))
	envelopeStyle          = lipgloss.NewStyle().
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#6366F1"))
	openedEnvelopeStyle   = envelopeStyle.Foreground(lipgloss.Color("#8C8C8C")).BorderForeground(lipgloss.Color("#4A4A4A"))
	selectedEnvelopeStyle = envelopeStyle.BorderForeground(lipgloss.Color("#C89A3A"))
	finalEnvelopeStyle    = envelopeStyle.Foreground(lipgloss.Color("#FCD34D")).BorderForeground(lipgloss.Color("#F59E0B"))
	letterCardStyle       = lipgloss.NewStyle().
				Padding(1, 2).
				Border(lipgloss.DoubleBorder(), true).
				BorderForeground(lipgloss.Color("#F9A8D4"))
	letterTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9A8D4")).Bold(true)
	goldStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#FCD34D"))
	flameStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB03A"))
	cakeStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	frostingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#93C5FD"))
	fadedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
	bigMessageStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

// View implements tea.Model.
func (m *Model) View() string {
	content := m.renderScreen()
	footer := m.help.ShortHelpView(m.helpKeys())
	if m.width == 0 || m.height == 0 {
		return content + "\n" + footer
	}
	bodyHeight := m.height - 2*starBandHeight - 1
	if bodyHeight < 1 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	top := m.stars.Render(m.width, starBandHeight, m.frame)
	bottom := m.stars.Render(m.width, starBandHeight, m.frame+7)
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return strings.Join([]string{top, body, bottom, footerLine}, "\n")
}

func (m *Model) renderScreen() string {
	switch m.flow.Screen() {
	case model.ScreenWelcome:
		return m.renderWelcome()
	case model.ScreenLetters:
		return m.renderLetters()
	case model.ScreenCake:
		return m.renderCake()
	case model.ScreenFinal:
		return m.renderFinal()
	}
	return ""
}

func (m *Model) renderWelcome() string {
	lines := []string{
		goldStyle.Render("✦  ✧  ✦"),
		"",
		titleStyle.Render(fmt.Sprintf("For %s", m.recipient())),
		subtitleStyle.Render("A little universe, written one star at a time."),
		"",
		buttonStyle.Render("Enter Our Universe 💌"),
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m *Model) renderLetters() string {
	tr := m.flow.Tracker()
	if shown, ok := tr.Displayed(); ok {
		return m.renderCard(shown)
	}
	mode := tr.Mode()
	if mode == model.ViewAllComplete {
		return m.renderAllComplete()
	}
	parts := []string{m.renderHeading(), "", m.renderHearts(), ""}
	switch mode {
	case model.ViewCategories:
		parts = append(parts, m.renderCategories())
	case model.ViewLetters:
		parts = append(parts, m.renderEnvelopes())
	case model.ViewFinalLetterPending:
		parts = append(parts,
			goldStyle.Render("All memories unveiled... one final star awaits."),
			"",
			finalEnvelopeStyle.Render(fmt.Sprintf("%s  %s", tr.Catalog().Final().CategorySymbol, tr.Catalog().Final().Title)),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

func (m *Model) renderHeading() string {
	tr := m.flow.Tracker()
	var title, subtitle string
	switch tr.Mode() {
	case model.ViewCategories:
		title = "Letters From My Heart to Yours 💌"
		subtitle = fmt.Sprintf("Discover memories and dreams, one star at a time, %s.", m.recipient())
	case model.ViewLetters:
		name, _ := tr.SelectedCategory()
		title = name + " 💌"
		subtitle = fmt.Sprintf("Exploring our journey under the theme of %s.", name)
	case model.ViewFinalLetterPending:
		title = "A Final Message 💌"
		subtitle = "The universe has aligned for this moment..."
	case model.ViewFinalLetterOpen:
		title = "A Final Message 💌"
		subtitle = "Words from the deepest part of my soul..."
	}
	return lipgloss.JoinVertical(lipgloss.Center, titleStyle.Render(title), subtitleStyle.Render(subtitle))
}

func (m *Model) renderHearts() string {
	var b strings.Builder
	b.WriteString(subtitleStyle.Render("Cosmic Hearts: "))
	for _, p := range m.flow.Tracker().CategoryProgress() {
		if p.Completed {
			b.WriteString(heartOnStyle.Render("♥ "))
		} else {
			b.WriteString(heartOffStyle.Render("♥ "))
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func (m *Model) renderCategories() string {
	progress := m.flow.Tracker().CategoryProgress()
	cards := make([]string, 0, len(progress))
	for i, p := range progress {
		cards = append(cards, renderCategoryCard(p, i == m.categoryCursor))
	}
	return joinGrid(cards, m.gridColumns(cardWidth+2, len(cards)))
}

func renderCategoryCard(p tracker.CategoryProgress, selected bool) string {
	style := categoryStyle
	badge := badgeStyle
	if p.Completed {
		style = completedCategoryStyle
		badge = completedBadgeStyle
	}
	if selected {
		style = selectedCategoryStyle
	}
	lines := []string{
		badge.Render(fmt.Sprintf("%d/%d", p.Read, p.Category.Total)),
		p.Category.Symbol,
		wrapText(p.Category.Name, cardWidth-2),
	}
	if p.Completed {
		lines = append(lines, completedTextStyle.Render("Completed!"))
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderEnvelopes() string {
	tr := m.flow.Tracker()
	letters := tr.Letters()
	envelopes := make([]string, 0, len(letters))
	for i, letter := range letters {
		style := envelopeStyle
		mark := "✉"
		if letter.Opened {
			style = openedEnvelopeStyle
			mark = "✓"
		}
		if i == m.letterCursor {
			style = selectedEnvelopeStyle
		}
		envelopes = append(envelopes, style.Render(fmt.Sprintf("%s %s %d", mark, letter.Item.CategorySymbol, i+1)))
	}
	grid := joinGrid(envelopes, m.gridColumns(14, len(envelopes)))
	name, _ := tr.SelectedCategory()
	if tr.CategoryComplete(name) {
		return lipgloss.JoinVertical(lipgloss.Center, grid, "", completedTextStyle.Render("Category Complete! ✨ Press esc to go back."))
	}
	return grid
}

func (m *Model) renderCard(shown model.Item) string {
	title := shown.Category
	final := m.flow.Tracker().Catalog().Final()
	if shown.ID == final.ID {
		title = final.Title
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		letterTitleStyle.Render(fmt.Sprintf("%s  %s", shown.CategorySymbol, title)),
		"",
		m.card.View(),
	)
	return letterCardStyle.Render(body)
}

func (m *Model) renderAllComplete() string {
	message := lipgloss.JoinVertical(lipgloss.Center,
		heartOnStyle.Render("Our story continues under these stars... Happy Anniversary!"),
		"",
		buttonStyle.Render("Reveal a Sweet Surprise 🎂"),
	)
	if m.drift == nil {
		return message
	}
	drift := m.drift.Render(m.effectWidth(), 6, m.driftFrame)
	return lipgloss.JoinVertical(lipgloss.Center, drift, message)
}

func (m *Model) renderCake() string {
	switch {
	case m.cake.Is(effects.CakeMessage):
		return bigMessageStyle.Render("HAPPY ANNIVERSARY, BABY 💙✨")
	case m.cake.Is(effects.CakeFading):
		return fadedStyle.Render("HAPPY ANNIVERSARY, BABY 💙✨")
	}
	blown := m.cake.Running()
	cake := renderCakeArt(blown)
	if !blown {
		return lipgloss.JoinVertical(lipgloss.Center, cake, "", buttonStyle.Render("Blow the candles 🕯️"))
	}
	if m.confetti == nil {
		return cake
	}
	confetti := m.confetti.Render(m.effectWidth(), confettiHeight, m.confettiFrame)
	return lipgloss.JoinVertical(lipgloss.Center, confetti, cake)
}

func renderCakeArt(blown bool) string {
	flames := flameStyle.Render("  ♦ ♦ ♦ ♦ ♦  ")
	if blown {
		flames = fadedStyle.Render("  ˙ ˙ ˙ ˙ ˙  ")
	}
	lines := []string{
		flames,
		cakeStyle.Render("  | | | | |  "),
		cakeStyle.Render(" .---------. "),
		frostingStyle.Render(" |~~~~~~~~~| "),
		cakeStyle.Render(".-----------."),
		frostingStyle.Render("|  ~  ~  ~  |"),
		cakeStyle.Render("'-----------'"),
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m *Model) renderFinal() string {
	switch {
	case m.hug.Is(effects.HugDimming):
		return fadedStyle.Render("✦")
	case m.hug.Is(effects.HugEnters):
		return lipgloss.JoinVertical(lipgloss.Center, goldStyle.Render("✨   ✨"), "🫂", goldStyle.Render("✨   ✨"))
	case m.hug.Is(effects.HugBurst):
		if m.burst != nil {
			return lipgloss.JoinVertical(lipgloss.Center, m.burst.Render(m.effectWidth(), 7, m.frame), "🫂")
		}
		return "🫂"
	case m.hug.Is(effects.HugMessage):
		return heartOnStyle.Bold(true).Render(fmt.Sprintf("❤️ Ummah my %s ❤️", m.recipient()))
	case m.hug.Is(effects.HugFading):
		return fadedStyle.Render("🫂")
	}
	hugLabel := "Send a Cosmic Hug 🤗"
	if m.hugCount > 0 {
		hugLabel = "Replay the Hug 💫"
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		buttonStyle.Render("Replay This Night 🌌"),
		"  ",
		buttonStyle.Render(hugLabel),
	)
	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("Here's to many more years in our universe."),
		"",
		buttons,
	)
}

func (m *Model) helpKeys() []key.Binding {
	k := m.keys
	switch m.flow.Screen() {
	case model.ScreenWelcome:
		return []key.Binding{withHelp(k.Enter, "enter", "enter our universe"), k.Quit}
	case model.ScreenCake:
		if m.cake.Running() {
			return []key.Binding{k.Quit}
		}
		return []key.Binding{k.Blow, k.Quit}
	case model.ScreenFinal:
		if m.hug.Running() {
			return []key.Binding{k.Quit}
		}
		hug := k.Hug
		if m.hugCount > 0 {
			hug = withHelp(k.Hug, "g", "replay the hug")
		}
		return []key.Binding{k.Replay, hug, k.Quit}
	}
	tr := m.flow.Tracker()
	if _, ok := tr.Displayed(); ok {
		return []key.Binding{k.Skip, k.Up, withHelp(k.Enter, "enter", "close"), k.Quit}
	}
	switch tr.Mode() {
	case model.ViewCategories:
		bindings := []key.Binding{k.Left, withHelp(k.Enter, "enter", "choose"), k.Cake}
		if m.hasProgress() {
			bindings = append(bindings, k.Restart)
		}
		return append(bindings, k.Quit)
	case model.ViewLetters:
		return []key.Binding{k.Left, k.Enter, k.Back, k.Quit}
	case model.ViewFinalLetterPending:
		return []key.Binding{withHelp(k.Enter, "enter", "open the final letter"), k.Quit}
	case model.ViewAllComplete:
		return []key.Binding{withHelp(k.Enter, "enter", "reveal a sweet surprise"), k.Quit}
	}
	return []key.Binding{k.Quit}
}

func (m *Model) recipient() string {
	if m.config.Recipient == "" {
		return "my love"
	}
	return m.config.Recipient
}

func (m *Model) effectWidth() int {
	if m.width <= 0 {
		return 40
	}
	w := m.width - 4
	if w > 80 {
		w = 80
	}
	if w < 10 {
		w = 10
	}
	return w
}

func (m *Model) gridColumns(itemWidth, count int) int {
	if m.width <= 0 {
		return count
	}
	cols := m.width / itemWidth
	if cols < 1 {
		cols = 1
	}
	if cols > count {
		cols = count
	}
	return cols
}

func joinGrid(items []string, cols int) string {
	if len(items) == 0 {
		return ""
	}
	if cols < 1 {
		cols = 1
	}
	rows := make([]string, 0, (len(items)+cols-1)/cols)
	for start := 0; start < len(items); start += cols {
		end := start + cols
		if end > len(items) {
			end = len(items)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, items[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}
