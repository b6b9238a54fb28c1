package golurk

import (
	"bytes"
	"embed"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/samber/lo"
)

//go:embed data
var embeddedData embed.FS

var GlobalData = pokemonDb{}

var (
	loadOnce   sync.Once
	loadErrors []error
)

type pokemonDb struct {
	moves     MoveRegistry
	Pokemon   []BasePokemon
	abilities AbilityRegistry
	Items     []string
}

type MoveRegistry struct {
	// Moves is a map of move names to full move info
	Moves map[string]Move
	// LearnedPokemonMoves is a map that turns Pokemon names into lists of move names
	LearnedPokemonMoves map[string][]string
}

type AbilityRegistry struct {
	Abilities        []Ability
	PokemonAbilities map[string][]Ability
}

func SetGlobalMoves(mr MoveRegistry) {
	GlobalData.moves = mr
}

func SetGlobalAbilities(ar AbilityRegistry) {
	GlobalData.abilities = ar
}

// LoadDefaultData fills GlobalData from the data files embedded in this package. Only the first call loads anything.
func LoadDefaultData() error {
	loadOnce.Do(func() {
		loadErrors = DefaultLoader(embeddedData)
	})

	return errors.Join(loadErrors...)
}

func (db pokemonDb) GetMove(name string) *Move {
	move, ok := db.moves.Moves[name]
	if ok {
		return &move
	}

	return nil
}

func (db pokemonDb) MoveCount() int {
	return len(db.moves.Moves)
}

func (db pokemonDb) GetFullMovesForPokemon(pokemonName string) []Move {
	moves := db.moves.LearnedPokemonMoves[strings.ToLower(pokemonName)]
	movesFull := make([]Move, 0, len(moves))

	for _, moveName := range moves {
		if move := db.GetMove(moveName); move != nil {
			movesFull = append(movesFull, *move)
		}
	}

	return movesFull
}

func (db pokemonDb) GetPokemonByPokedex(pkdNumber int) *BasePokemon {
	for i := range db.Pokemon {
		if db.Pokemon[i].PokedexNumber == uint(pkdNumber) {
			return &db.Pokemon[i]
		}
	}

	return nil
}

func (db pokemonDb) GetPokemonByName(pkmName string) *BasePokemon {
	for i := range db.Pokemon {
		if strings.EqualFold(db.Pokemon[i].Name, pkmName) {
			return &db.Pokemon[i]
		}
	}

	return nil
}

func (db pokemonDb) GetRandomPokemon(rng *rand.Rand) *BasePokemon {
	return &db.Pokemon[rng.IntN(len(db.Pokemon))]
}

func (db pokemonDb) GetPokemonAbilities(name string) []Ability {
	return db.abilities.PokemonAbilities[strings.ToLower(name)]
}

func (db pokemonDb) HasAbility(name string) bool {
	return slices.ContainsFunc(db.abilities.Abilities, func(a Ability) bool {
		return a.Name == name
	})
}

func (db pokemonDb) HasItem(name string) bool {
	return slices.Contains(db.Items, name)
}

// LoadPokemon takes in the bytes of a csv file with the following columns:
// PokedexNumber, Name, Type1, Type2, HP, Attack, Defense, SpecialAttack, SpecialDefense, Speed
// in that order. Stat columns must be valid integers and types must be known type names.
func LoadPokemon(fileBytes []byte) ([]BasePokemon, error) {
	csvReader := csv.NewReader(bytes.NewReader(fileBytes))
	csvReader.FieldsPerRecord = 10

	rows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid pokemon csv: %w", err)
	}

	if len(rows) > 0 {
		// header
		rows = rows[1:]
	}

	pokemonList := make([]BasePokemon, 0, len(rows))

	for line, row := range rows {
		var stats [7]uint

		for i, column := range []int{0, 4, 5, 6, 7, 8, 9} {
			value, err := strconv.ParseUint(row[column], 10, 16)
			if err != nil {
				return nil, fmt.Errorf("pokemon csv row %d, column %d: %w", line+2, column+1, err)
			}
			stats[i] = uint(value)
		}

		type1, ok := TYPE_MAP[row[2]]
		if !ok {
			return nil, fmt.Errorf("pokemon csv row %d: unknown type %q", line+2, row[2])
		}

		var type2 *PokemonType
		if row[3] != "" {
			type2, ok = TYPE_MAP[row[3]]
			if !ok {
				return nil, fmt.Errorf("pokemon csv row %d: unknown type %q", line+2, row[3])
			}
		}

		newPokemon := BasePokemon{
			PokedexNumber: stats[0],
			Name:          row[1],
			Type1:         type1,
			Type2:         type2,
			Hp:            stats[1],
			Attack:        stats[2],
			Def:           stats[3],
			SpAttack:      stats[4],
			SpDef:         stats[5],
			Speed:         stats[6],
		}

		internalLogger.WithName("load_pokemon").V(2).Info("loaded pokemon", "pokedex", newPokemon.PokedexNumber, "name", newPokemon.Name)

		pokemonList = append(pokemonList, newPokemon)
	}

	internalLogger.V(1).Info("Loaded pokemon", "count", len(pokemonList))

	return pokemonList, nil
}

// LoadMoves takes in json that lists out move information and json that maps pokemon names to what moves they can learn
func LoadMoves(moveBytes []byte, moveMapBytes []byte) (MoveRegistry, error) {
	parsedMoves := make([]Move, 0)
	moveMap := make(map[string][]string)
	moveRegistry := MoveRegistry{Moves: make(map[string]Move)}

	if err := json.Unmarshal(moveBytes, &parsedMoves); err != nil {
		return moveRegistry, fmt.Errorf("couldn't unmarshal move data: %w", err)
	}
	if err := json.Unmarshal(moveMapBytes, &moveMap); err != nil {
		return moveRegistry, fmt.Errorf("couldn't unmarshal move map: %w", err)
	}

	for _, parsedMove := range parsedMoves {
		moveRegistry.Moves[parsedMove.Name] = parsedMove
	}

	moveRegistry.LearnedPokemonMoves = moveMap

	internalLogger.V(1).Info("Loaded moves", "count", len(moveRegistry.Moves), "pokemon_count", len(moveRegistry.LearnedPokemonMoves))

	return moveRegistry, nil
}

// LoadAbilities takes in json that maps pokemon names to the abilities they can have
func LoadAbilities(abilitiesMapBytes []byte) (AbilityRegistry, error) {
	abilityMap := make(map[string][]Ability)

	if err := json.Unmarshal(abilitiesMapBytes, &abilityMap); err != nil {
		return AbilityRegistry{}, fmt.Errorf("invalid ability map: %w", err)
	}

	abilities := lo.UniqBy(lo.Flatten(lo.Values(abilityMap)), func(a Ability) string {
		return a.Name
	})
	slices.SortFunc(abilities, func(a, b Ability) int {
		return strings.Compare(a.Name, b.Name)
	})

	internalLogger.V(1).Info("Loaded abilities", "pokemon_count", len(abilityMap), "ability_count", len(abilities))

	return AbilityRegistry{Abilities: abilities, PokemonAbilities: abilityMap}, nil
}

func LoadItems(itemBytes []byte) ([]string, error) {
	items := make([]string, 0)
	if err := json.Unmarshal(itemBytes, &items); err != nil {
		return items, fmt.Errorf("couldn't parse items: %w", err)
	}

	internalLogger.V(1).Info("Loaded items", "count", len(items))
	return items, nil
}

// DefaultLoader loads every data file from files concurrently and returns all errors it ran into.
// files must be laid out like this package's data directory.
func DefaultLoader(files fs.FS) []error {
	var wg sync.WaitGroup
	errChan := make(chan error, 4)

	load := func(fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				errChan <- err
			}
		}()
	}

	load(func() error {
		pokemonBytes, err := fs.ReadFile(files, "data/pokemon.csv")
		if err != nil {
			return err
		}

		pokemon, err := LoadPokemon(pokemonBytes)
		if err != nil {
			return err
		}

		GlobalData.Pokemon = pokemon
		return nil
	})
	load(func() error {
		moveBytes, err := fs.ReadFile(files, "data/moves.json")
		if err != nil {
			return err
		}

		moveMapBytes, err := fs.ReadFile(files, "data/movesMap.json")
		if err != nil {
			return err
		}

		moves, err := LoadMoves(moveBytes, moveMapBytes)
		if err != nil {
			return err
		}

		SetGlobalMoves(moves)
		return nil
	})
	load(func() error {
		abilityBytes, err := fs.ReadFile(files, "data/abilities.json")
		if err != nil {
			return err
		}

		abilities, err := LoadAbilities(abilityBytes)
		if err != nil {
			return err
		}

		SetGlobalAbilities(abilities)
		return nil
	})
	load(func() error {
		itemBytes, err := fs.ReadFile(files, "data/items.json")
		if err != nil {
			return err
		}

		items, err := LoadItems(itemBytes)
		if err != nil {
			return err
		}

		GlobalData.Items = items
		return nil
	})

	wg.Wait()
	close(errChan)

	errs := make([]error, 0)
	for err := range errChan {
		errs = append(errs, err)
	}

	return errs
}
