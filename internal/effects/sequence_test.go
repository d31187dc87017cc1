package effects

import "testing"

func TestSequenceWalksSteps(t *testing.T) {
	seq := NewCakeSequence()
	if seq.Running() {
		t.Fatalf("expected idle sequence")
	}
	gen, ok := seq.Start()
	if !ok {
		t.Fatalf("expected start")
	}
	if !seq.Is(CakeBlown) {
		t.Fatalf("expected first step %q", CakeBlown)
	}
	if !seq.Advance(gen) || !seq.Is(CakeMessage) {
		t.Fatalf("expected message step")
	}
	if !seq.Advance(gen) || !seq.Is(CakeFading) {
		t.Fatalf("expected fading step")
	}
	if seq.Advance(gen) {
		t.Fatalf("expected sequence to finish")
	}
	if seq.Running() {
		t.Fatalf("expected idle after finishing")
	}
}

func TestSequenceIgnoresStaleTicks(t *testing.T) {
	seq := NewHugSequence()
	gen, _ := seq.Start()
	seq.Cancel()
	if seq.Advance(gen) {
		t.Fatalf("expected stale tick to be ignored after cancel")
	}
	next, ok := seq.Start()
	if !ok || next == gen {
		t.Fatalf("expected a new generation, got %d (old %d)", next, gen)
	}
	if seq.Advance(gen) {
		t.Fatalf("expected old generation tick to be ignored")
	}
	if !seq.Is(HugDimming) {
		t.Fatalf("stale tick must not move the new run")
	}
}

func TestSequenceCannotRestartWhileRunning(t *testing.T) {
	seq := NewHugSequence()
	gen, _ := seq.Start()
	if _, ok := seq.Start(); ok {
		t.Fatalf("expected start to be refused while running")
	}
	if seq.Generation() != gen {
		t.Fatalf("generation changed on refused start")
	}
}
