package store

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nathanieltooley/pokearena/arena"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "nested", "results.db"))
	if err != nil {
		t.Fatalf("failed to open store: %s", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func testResults() *arena.Results {
	players := []string{"cooper", "RandomPlayer", "HitHardOrSwitchPlayer"}
	records := []arena.BattleRecord{
		{ID: uuid.New(), P1: "cooper", P2: "RandomPlayer", Winner: "cooper", Turns: 12, Seed: 1, Messages: []string{"cooper sent in Hitmontop!"}},
		{ID: uuid.New(), P1: "cooper", P2: "RandomPlayer", Winner: "RandomPlayer", Turns: 30, Seed: 2},
		{ID: uuid.New(), P1: "cooper", P2: "HitHardOrSwitchPlayer", Winner: "cooper", Turns: 20, Seed: 3},
		{ID: uuid.New(), P1: "cooper", P2: "HitHardOrSwitchPlayer", Winner: "", Turns: 501, Seed: 4},
		{ID: uuid.New(), P1: "RandomPlayer", P2: "HitHardOrSwitchPlayer", Winner: "HitHardOrSwitchPlayer", Turns: 9, Seed: 5},
		// seeds use the full uint64 range
		{ID: uuid.New(), P1: "RandomPlayer", P2: "HitHardOrSwitchPlayer", Winner: "HitHardOrSwitchPlayer", Turns: 9, Seed: 1 << 63},
	}

	return arena.ResultsFromRecords(players, 2, records)
}

func TestRecordAndLoadResults(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	results := testResults()

	startedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	id, err := store.RecordResults(ctx, Evaluation{StartedAt: startedAt, Seed: 99}, results)
	if err != nil {
		t.Fatalf("failed to record results: %s", err)
	}

	loaded, err := store.LoadResults(ctx, id)
	if err != nil {
		t.Fatalf("failed to load results: %s", err)
	}

	if !slices.Equal(loaded.Players, results.Players) {
		t.Fatalf("expected players %v, got %v", results.Players, loaded.Players)
	}

	for _, row := range results.Table() {
		found := slices.ContainsFunc(loaded.Table(), func(loadedRow []string) bool {
			return slices.Equal(row, loadedRow)
		})

		if !found {
			t.Fatalf("loaded table is missing row %v", row)
		}
	}

	if rate, _ := loaded.WinRate("cooper", "RandomPlayer"); rate != 0.5 {
		t.Fatalf("expected cooper to beat RandomPlayer half the time, got %f", rate)
	}

	if len(loaded.Records) != len(results.Records) {
		t.Fatalf("expected %d records, got %d", len(results.Records), len(loaded.Records))
	}

	if loaded.Records[0].Messages[0] != "cooper sent in Hitmontop!" {
		t.Fatalf("messages were not kept: %v", loaded.Records[0].Messages)
	}

	battles, err := store.Battles(ctx, id)
	if err != nil {
		t.Fatal(err)
	}

	if battles[5].Seed != 1<<63 {
		t.Fatalf("expected the high seed to survive, got %d", battles[5].Seed)
	}
}

func TestListEvaluations(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	evaluations, err := store.ListEvaluations(ctx)
	if err != nil {
		t.Fatal(err)
	}

	if len(evaluations) != 0 {
		t.Fatalf("expected no evaluations in a new store, got %d", len(evaluations))
	}

	first, err := store.RecordEvaluation(ctx, Evaluation{Seed: 1, NChallenges: 100, Players: []string{"a", "b"}})
	if err != nil {
		t.Fatal(err)
	}

	second, err := store.RecordEvaluation(ctx, Evaluation{Seed: 2, NChallenges: 10, Players: []string{"c", "d"}})
	if err != nil {
		t.Fatal(err)
	}

	evaluations, err = store.ListEvaluations(ctx)
	if err != nil {
		t.Fatal(err)
	}

	if len(evaluations) != 2 || evaluations[0].ID != first || evaluations[1].ID != second {
		t.Fatalf("unexpected evaluations: %+v", evaluations)
	}

	if evaluations[1].NChallenges != 10 || !slices.Equal(evaluations[1].Players, []string{"c", "d"}) {
		t.Fatalf("evaluation was not saved correctly: %+v", evaluations[1])
	}

	if evaluations[0].StartedAt.IsZero() {
		t.Fatal("expected a default start time")
	}
}

func TestRecordBattleNeedsEvaluation(t *testing.T) {
	store := openTestStore(t)

	err := store.RecordBattle(context.Background(), 404, arena.BattleRecord{ID: uuid.New(), P1: "a", P2: "b"})
	if err == nil {
		t.Fatal("expected a battle without an evaluation to be rejected")
	}
}

func TestDeleteEvaluation(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	id, err := store.RecordResults(ctx, Evaluation{}, testResults())
	if err != nil {
		t.Fatal(err)
	}

	if err := store.DeleteEvaluation(ctx, id); err != nil {
		t.Fatal(err)
	}

	if _, err := store.LoadResults(ctx, id); !errors.Is(err, ErrNoSuchEvaluation) {
		t.Fatalf("expected ErrNoSuchEvaluation, got %v", err)
	}

	battles, err := store.Battles(ctx, id)
	if err != nil {
		t.Fatal(err)
	}

	if len(battles) != 0 {
		t.Fatalf("expected the battles to be deleted with the evaluation, %d are left", len(battles))
	}

	if err := store.DeleteEvaluation(ctx, id); !errors.Is(err, ErrNoSuchEvaluation) {
		t.Fatalf("expected ErrNoSuchEvaluation on a second delete, got %v", err)
	}
}

func TestReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "results.db")

	store, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatal(err)
	}

	id, err := store.RecordResults(ctx, Evaluation{Seed: 5}, testResults())
	if err != nil {
		t.Fatal(err)
	}
	_ = store.Close()

	store, err = Open(ctx, dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	evaluation, err := store.Evaluation(ctx, id)
	if err != nil {
		t.Fatal(err)
	}

	if evaluation.Seed != 5 {
		t.Fatalf("expected seed 5, got %d", evaluation.Seed)
	}
}
