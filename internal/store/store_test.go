package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/starletters/internal/model"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "starletters.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestInsertAndListJourneys(t *testing.T) {
	st := openStore(t)
	ctx := context.Background()
	var ids []int64
	for i := 0; i < 3; i++ {
		start := time.Unix(0, 0).UTC().Add(time.Duration(i) * time.Hour)
		id, err := st.InsertJourney(ctx, model.Journey{
			StartedAt:           start,
			FinishedAt:          start.Add(10 * time.Minute),
			LettersRead:         20 - i,
			CategoriesCompleted: 5 - i,
			Skipped:             i > 0,
		})
		if err != nil {
			t.Fatalf("insert journey: %v", err)
		}
		ids = append(ids, id)
	}

	all, err := st.ListJourneys(ctx, model.HistoryConfig{})
	if err != nil {
		t.Fatalf("list journeys: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 journeys, got %d", len(all))
	}
	if all[0].ID != ids[0] || all[0].Skipped || all[0].LettersRead != 20 {
		t.Fatalf("unexpected first journey: %+v", all[0])
	}
	if !all[2].Skipped || all[2].FinishedAt.Sub(all[2].StartedAt) != 10*time.Minute {
		t.Fatalf("unexpected last journey: %+v", all[2])
	}

	last, err := st.ListJourneys(ctx, model.HistoryConfig{Last: 2})
	if err != nil {
		t.Fatalf("list last: %v", err)
	}
	if len(last) != 2 || last[0].ID != ids[1] || last[1].ID != ids[2] {
		t.Fatalf("unexpected last journeys: %+v", last)
	}

	since := time.Unix(0, 0).UTC().Add(90 * time.Minute)
	recent, err := st.ListJourneys(ctx, model.HistoryConfig{Since: &since})
	if err != nil {
		t.Fatalf("list since: %v", err)
	}
	if len(recent) != 1 || recent[0].ID != ids[2] {
		t.Fatalf("unexpected recent journeys: %+v", recent)
	}
}

func TestIncrementHugs(t *testing.T) {
	st := openStore(t)
	ctx := context.Background()
	now := time.Now().UTC()
	id, err := st.InsertJourney(ctx, model.Journey{StartedAt: now, FinishedAt: now})
	if err != nil {
		t.Fatalf("insert journey: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := st.IncrementHugs(ctx, id); err != nil {
			t.Fatalf("increment hugs: %v", err)
		}
	}
	journeys, err := st.ListJourneys(ctx, model.HistoryConfig{})
	if err != nil {
		t.Fatalf("list journeys: %v", err)
	}
	if journeys[0].Hugs != 2 {
		t.Fatalf("expected 2 hugs, got %d", journeys[0].Hugs)
	}
	if err := st.IncrementHugs(ctx, id+100); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
