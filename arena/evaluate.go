package arena

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/nathanieltooley/pokearena/agent"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var ErrNotEnoughEntrants = errors.New("cross evaluation needs at least two entrants")

// Options configure a cross evaluation.
type Options struct {
	// Base seed; every battle gets its own seed derived from it
	Seed     uint64
	MaxTurns int
	// Called after every finished battle. Calls never overlap.
	Progress func(BattleRecord)
}

// Results of a cross evaluation. WinRates[a][b] is how often a beat b, nil when a == b.
type Results struct {
	Players     []string
	NChallenges int
	WinRates    map[string]map[string]*float64
	Records     []BattleRecord
}

func newResults(players []string, nChallenges int) *Results {
	results := &Results{
		Players:     players,
		NChallenges: nChallenges,
		WinRates:    make(map[string]map[string]*float64, len(players)),
	}

	for _, p := range players {
		results.WinRates[p] = make(map[string]*float64, len(players))
		for _, opponent := range players {
			results.WinRates[p][opponent] = nil
		}
	}

	return results
}

// WinRate is how often p1 beat p2. ok is false on the diagonal and for unknown players.
func (r *Results) WinRate(p1 string, p2 string) (rate float64, ok bool) {
	rates, ok := r.WinRates[p1]
	if !ok {
		return 0, false
	}

	winRate := rates[p2]
	if winRate == nil {
		return 0, false
	}

	return *winRate, true
}

// UniqueNames gives every entrant a distinct name. Repeats of a name get " 2", " 3", ... appended in entrant order.
func UniqueNames(entrants []Entrant) []string {
	names := make([]string, len(entrants))
	taken := make(map[string]bool, len(entrants))

	for i, e := range entrants {
		name := e.Player.Name()

		unique := name
		for n := 2; taken[unique]; n++ {
			unique = fmt.Sprintf("%s %d", name, n)
		}

		taken[unique] = true
		names[i] = unique
	}

	return names
}

// namedPlayer overrides an entrant's name inside the arena without touching the player.
type namedPlayer struct {
	agent.Player
	name string
}

func (p namedPlayer) Name() string {
	return p.name
}

// CrossEvaluate plays nChallenges battles between every pair of entrants, the earlier entrant always
// challenging. Pairs are played one after another; the battles of a pair run concurrently, at most as many at
// once as the stricter of the two entrants allows.
//
// A failed battle stops the evaluation and its error is returned.
func CrossEvaluate(ctx context.Context, entrants []Entrant, nChallenges int, opts Options) (*Results, error) {
	if len(entrants) < 2 {
		return nil, ErrNotEnoughEntrants
	}

	if nChallenges < 1 {
		return nil, fmt.Errorf("need at least one challenge per pair, got %d", nChallenges)
	}

	names := UniqueNames(entrants)
	named := make([]Entrant, len(entrants))
	for i, e := range entrants {
		named[i] = e
		named[i].Player = namedPlayer{Player: e.Player, name: names[i]}
	}

	results := newResults(names, nChallenges)

	var progressMu sync.Mutex
	battleNumber := uint64(0)

	for i := range named {
		for j := i + 1; j < len(named); j++ {
			challenger, opponent := named[i], named[j]

			records := make([]BattleRecord, nChallenges)

			group, groupCtx := errgroup.WithContext(ctx)
			group.SetLimit(max(1, min(challenger.MaxConcurrentBattles, opponent.MaxConcurrentBattles)))

			for k := range nChallenges {
				seed := battleSeed(opts.Seed, battleNumber)
				battleNumber++

				group.Go(func() error {
					record, err := RunBattle(groupCtx, challenger, opponent, seed, opts.MaxTurns)
					if err != nil {
						return fmt.Errorf("%s vs %s: %w", names[i], names[j], err)
					}

					records[k] = record

					if opts.Progress != nil {
						progressMu.Lock()
						opts.Progress(record)
						progressMu.Unlock()
					}

					return nil
				})
			}

			if err := group.Wait(); err != nil {
				return nil, err
			}

			results.addPair(names[i], names[j], records)

			log.Info().
				Str("challenger", names[i]).
				Str("opponent", names[j]).
				Float64("challenger_win_rate", *results.WinRates[names[i]][names[j]]).
				Msg("finished pair")
		}
	}

	return results, nil
}

func (r *Results) addPair(challenger string, opponent string, records []BattleRecord) {
	var challengerWins, opponentWins int

	for _, record := range records {
		switch record.Winner {
		case challenger:
			challengerWins++
		case opponent:
			opponentWins++
		}
	}

	challengerRate := float64(challengerWins) / float64(r.NChallenges)
	opponentRate := float64(opponentWins) / float64(r.NChallenges)

	r.WinRates[challenger][opponent] = &challengerRate
	r.WinRates[opponent][challenger] = &opponentRate
	r.Records = append(r.Records, records...)
}

// battleSeed spreads battle numbers out so neighbouring battles don't share low bits.
func battleSeed(base uint64, battleNumber uint64) uint64 {
	x := base + (battleNumber+1)*0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb

	return x ^ (x >> 31)
}

// ResultsFromRecords rebuilds the results of an evaluation from its battle records.
// Pairs with no records keep nil win rates.
func ResultsFromRecords(players []string, nChallenges int, records []BattleRecord) *Results {
	results := newResults(players, nChallenges)

	for i, challenger := range players {
		for _, opponent := range players[i+1:] {
			pairRecords := make([]BattleRecord, 0, nChallenges)
			for _, record := range records {
				if record.P1 == challenger && record.P2 == opponent {
					pairRecords = append(pairRecords, record)
				}
			}

			if len(pairRecords) > 0 {
				results.addPair(challenger, opponent, pairRecords)
			}
		}
	}

	return results
}
