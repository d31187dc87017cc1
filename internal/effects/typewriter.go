package effects

// Typewriter reveals text one rune per tick.
type Typewriter struct {
	text  []rune
	shown int
}

// NewTypewriter starts with nothing revealed.
func NewTypewriter(text string) *Typewriter {
	return &Typewriter{text: []rune(text)}
}

// Tick reveals the next rune and reports whether more remain.
func (t *Typewriter) Tick() bool {
	if t.shown < len(t.text) {
		t.shown++
	}
	return !t.Done()
}

// Skip reveals the whole text.
func (t *Typewriter) Skip() {
	t.shown = len(t.text)
}

// Done reports whether the whole text is visible.
func (t *Typewriter) Done() bool {
	return t.shown >= len(t.text)
}

// Text returns the revealed prefix.
func (t *Typewriter) Text() string {
	return string(t.text[:t.shown])
}
