// Package store keeps the results of cross evaluations in a SQLite database.
package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nathanieltooley/pokearena/arena"
	"github.com/rs/zerolog/log"

	_ "modernc.org/sqlite"
)

//go:embed sql/*.sql
var sqlDir embed.FS

var ErrNoSuchEvaluation = errors.New("no such evaluation")

// Evaluation describes one cross evaluation run.
type Evaluation struct {
	ID          int64
	StartedAt   time.Time
	Seed        uint64
	NChallenges int
	Players     []string
}

type Store struct {
	db *sql.DB

	// every non create- file under sql/, prepared and keyed by its name
	queries map[string]*sql.Stmt
}

// Open opens (or creates) the database at path and makes sure its tables exist.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
			return nil, fmt.Errorf("creating database dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	store := &Store{
		db:      db,
		queries: make(map[string]*sql.Stmt),
	}

	if err := store.init(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}

	return store, nil
}

func (s *Store) init(ctx context.Context) error {
	for _, pragma := range []string{"PRAGMA busy_timeout = 5000;", "PRAGMA foreign_keys = ON;"} {
		if _, err := s.db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}

	entries, err := sqlDir.ReadDir("sql")
	if err != nil {
		return err
	}

	// create- files run first so the other queries can be prepared against their tables
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), "create-") {
			continue
		}

		data, err := sqlDir.ReadFile(path.Join("sql", entry.Name()))
		if err != nil {
			return err
		}

		if _, err := s.db.ExecContext(ctx, string(data)); err != nil {
			return fmt.Errorf("%s: %w", entry.Name(), err)
		}
		log.Debug().Str("file", entry.Name()).Msg("executed schema")
	}

	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), "create-") {
			continue
		}

		data, err := sqlDir.ReadFile(path.Join("sql", entry.Name()))
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(entry.Name(), ".sql")
		stmt, err := s.db.PrepareContext(ctx, string(data))
		if err != nil {
			return fmt.Errorf("%s: %w", entry.Name(), err)
		}

		s.queries[name] = stmt
		log.Debug().Str("query", name).Msg("registered query")
	}

	return nil
}

func (s *Store) Close() error {
	for _, stmt := range s.queries {
		_ = stmt.Close()
	}

	return s.db.Close()
}

// RecordEvaluation saves a new evaluation and returns its id. StartedAt defaults to now.
func (s *Store) RecordEvaluation(ctx context.Context, evaluation Evaluation) (int64, error) {
	if evaluation.StartedAt.IsZero() {
		evaluation.StartedAt = time.Now()
	}

	players, err := json.Marshal(evaluation.Players)
	if err != nil {
		return 0, err
	}

	res, err := s.queries["insert-evaluation"].ExecContext(ctx,
		evaluation.StartedAt.UTC().Format(time.RFC3339Nano),
		int64(evaluation.Seed),
		evaluation.NChallenges,
		string(players))
	if err != nil {
		return 0, fmt.Errorf("recording evaluation: %w", err)
	}

	return res.LastInsertId()
}

// RecordBattle saves a battle under an evaluation.
func (s *Store) RecordBattle(ctx context.Context, evaluationID int64, record arena.BattleRecord) error {
	messages, err := json.Marshal(record.Messages)
	if err != nil {
		return err
	}

	_, err = s.queries["insert-battle"].ExecContext(ctx,
		record.ID.String(),
		evaluationID,
		record.P1,
		record.P2,
		record.Winner,
		record.Turns,
		int64(record.Seed),
		string(messages))
	if err != nil {
		return fmt.Errorf("recording battle %s: %w", record.ID, err)
	}

	return nil
}

// RecordResults saves a whole evaluation and its battles in one transaction.
func (s *Store) RecordResults(ctx context.Context, evaluation Evaluation, results *arena.Results) (int64, error) {
	evaluation.Players = results.Players
	evaluation.NChallenges = results.NChallenges

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	txStore := &Store{db: s.db, queries: map[string]*sql.Stmt{
		"insert-evaluation": tx.StmtContext(ctx, s.queries["insert-evaluation"]),
		"insert-battle":     tx.StmtContext(ctx, s.queries["insert-battle"]),
	}}

	id, err := txStore.RecordEvaluation(ctx, evaluation)
	if err != nil {
		return 0, err
	}

	for _, record := range results.Records {
		if err := txStore.RecordBattle(ctx, id, record); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return id, nil
}

// DeleteEvaluation removes an evaluation and all of its battles.
func (s *Store) DeleteEvaluation(ctx context.Context, id int64) error {
	res, err := s.queries["delete-evaluation"].ExecContext(ctx, id)
	if err != nil {
		return err
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %d", ErrNoSuchEvaluation, id)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvaluation(row scanner) (Evaluation, error) {
	var (
		evaluation Evaluation
		startedAt  string
		seed       int64
		players    string
	)

	if err := row.Scan(&evaluation.ID, &startedAt, &seed, &evaluation.NChallenges, &players); err != nil {
		return evaluation, err
	}

	var err error
	evaluation.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt)
	if err != nil {
		return evaluation, fmt.Errorf("evaluation %d start time: %w", evaluation.ID, err)
	}

	evaluation.Seed = uint64(seed)

	if err := json.Unmarshal([]byte(players), &evaluation.Players); err != nil {
		return evaluation, fmt.Errorf("evaluation %d players: %w", evaluation.ID, err)
	}

	return evaluation, nil
}

func (s *Store) Evaluation(ctx context.Context, id int64) (Evaluation, error) {
	evaluation, err := scanEvaluation(s.queries["select-evaluation"].QueryRowContext(ctx, id))
	if errors.Is(err, sql.ErrNoRows) {
		return evaluation, fmt.Errorf("%w: %d", ErrNoSuchEvaluation, id)
	}

	return evaluation, err
}

// ListEvaluations returns every saved evaluation, oldest first.
func (s *Store) ListEvaluations(ctx context.Context) ([]Evaluation, error) {
	rows, err := s.queries["select-evaluations"].QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	evaluations := make([]Evaluation, 0)
	for rows.Next() {
		evaluation, err := scanEvaluation(rows)
		if err != nil {
			return nil, err
		}

		evaluations = append(evaluations, evaluation)
	}

	return evaluations, rows.Err()
}

// Battles returns the battles of an evaluation in the order they were recorded.
func (s *Store) Battles(ctx context.Context, evaluationID int64) ([]arena.BattleRecord, error) {
	rows, err := s.queries["select-battles"].QueryContext(ctx, evaluationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]arena.BattleRecord, 0)
	for rows.Next() {
		var (
			record   arena.BattleRecord
			id       string
			seed     int64
			messages string
		)

		if err := rows.Scan(&id, &record.P1, &record.P2, &record.Winner, &record.Turns, &seed, &messages); err != nil {
			return nil, err
		}

		record.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("battle id %q: %w", id, err)
		}

		record.Seed = uint64(seed)

		if err := json.Unmarshal([]byte(messages), &record.Messages); err != nil {
			return nil, fmt.Errorf("battle %s messages: %w", id, err)
		}

		records = append(records, record)
	}

	return records, rows.Err()
}

// LoadResults rebuilds the win rate table of a saved evaluation.
func (s *Store) LoadResults(ctx context.Context, evaluationID int64) (*arena.Results, error) {
	evaluation, err := s.Evaluation(ctx, evaluationID)
	if err != nil {
		return nil, err
	}

	records, err := s.Battles(ctx, evaluationID)
	if err != nil {
		return nil, err
	}

	return arena.ResultsFromRecords(evaluation.Players, evaluation.NChallenges, records), nil
}
