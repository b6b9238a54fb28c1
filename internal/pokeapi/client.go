// Package pokeapi fetches move, ability and item data from pokeapi.co in the shape the engine loads.
package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/nathanieltooley/pokearena/golurk"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const DEFAULT_BASE_URL = "https://pokeapi.co/api/v2/"

// The "holdable-active" item attribute
const HOLDABLE_ACTIVE_ATTRIBUTE = 7

type Client struct {
	BaseURL string
	HTTP    *http.Client
	// How many requests a bulk fetch keeps in flight
	Concurrency int
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DEFAULT_BASE_URL
	}

	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return &Client{
		BaseURL:     baseURL,
		HTTP:        &http.Client{Timeout: 30 * time.Second},
		Concurrency: 4,
	}
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	response, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %s", url, response.Status)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("GET %s: %w", url, err)
	}

	return nil
}

// FollowNamedResource fetches the resource a NamedApiResource points at.
func FollowNamedResource[T any](ctx context.Context, c *Client, n golurk.NamedApiResource) (T, error) {
	var followed T

	if n.Url == "" {
		return followed, fmt.Errorf("resource %q has no url", n.Name)
	}

	err := c.getJSON(ctx, n.Url, &followed)
	return followed, err
}

type moveMetaResponse struct {
	Ailment       golurk.NamedApiResource `json:"ailment"`
	AilmentChance int                     `json:"ailment_chance"`
	FlinchChance  int                     `json:"flinch_chance"`
	StatChance    int                     `json:"stat_chance"`
	Category      golurk.NamedApiResource `json:"category"`

	MinHits *int `json:"min_hits"`
	MaxHits *int `json:"max_hits"`

	Drain         int `json:"drain"`
	Healing       int `json:"healing"`
	CritRateBonus int `json:"crit_rate"`
}

type moveResponse struct {
	// null for moves that never miss
	Accuracy    *int                    `json:"accuracy"`
	DamageClass golurk.NamedApiResource `json:"damage_class"`
	Meta        *moveMetaResponse       `json:"meta"`
	Name        string                  `json:"name"`
	Power       *int                    `json:"power"`
	PP          *int                    `json:"pp"`
	Priority    int                     `json:"priority"`
	StatChanges []struct {
		Change int                     `json:"change"`
		Stat   golurk.NamedApiResource `json:"stat"`
	} `json:"stat_changes"`
	Target golurk.NamedApiResource `json:"target"`
	Type   golurk.NamedApiResource `json:"type"`
}

func deref(value *int) int {
	if value == nil {
		return 0
	}

	return *value
}

// Move fetches a move by name and follows the resources the engine needs resolved.
func (c *Client) Move(ctx context.Context, name string) (golurk.Move, error) {
	var response moveResponse
	if err := c.getJSON(ctx, c.BaseURL+"move/"+name, &response); err != nil {
		return golurk.Move{}, err
	}

	move := golurk.Move{
		Accuracy:    deref(response.Accuracy),
		Name:        response.Name,
		Power:       deref(response.Power),
		PP:          deref(response.PP),
		Priority:    response.Priority,
		StatChanges: make([]golurk.StatChange, 0, len(response.StatChanges)),
		// the engine's type names are title case
		Type: cases.Title(language.English).String(response.Type.Name),
	}

	move.DamageClass = response.DamageClass.Name

	target, err := FollowNamedResource[golurk.Target](ctx, c, response.Target)
	if err != nil {
		return move, fmt.Errorf("move %s target: %w", name, err)
	}
	move.Target = target

	for _, statChange := range response.StatChanges {
		move.StatChanges = append(move.StatChanges, golurk.StatChange{
			Change:   statChange.Change,
			StatName: statChange.Stat.Name,
		})
	}

	if response.Meta != nil {
		ailment, err := FollowNamedResource[golurk.MetaResource](ctx, c, response.Meta.Ailment)
		if err != nil {
			return move, fmt.Errorf("move %s ailment: %w", name, err)
		}

		category, err := FollowNamedResource[golurk.MetaResource](ctx, c, response.Meta.Category)
		if err != nil {
			return move, fmt.Errorf("move %s category: %w", name, err)
		}

		move.Meta = golurk.MoveMeta{
			Ailment:       ailment,
			AilmentChance: response.Meta.AilmentChance,
			FlinchChance:  response.Meta.FlinchChance,
			StatChance:    response.Meta.StatChance,
			Category:      category,
			MinHits:       response.Meta.MinHits,
			MaxHits:       response.Meta.MaxHits,
			Drain:         response.Meta.Drain,
			Healing:       response.Meta.Healing,
			CritRateBonus: response.Meta.CritRateBonus,
		}
	}

	log.Debug().Str("move", move.Name).Msg("fetched move")

	return move, nil
}

// Moves fetches every named move, sorted by name. Duplicate names are fetched once.
func (c *Client) Moves(ctx context.Context, names []string) ([]golurk.Move, error) {
	names = slices.Clone(names)
	slices.Sort(names)
	names = slices.Compact(names)

	moves := make([]golurk.Move, len(names))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(max(1, c.Concurrency))

	for i, name := range names {
		group.Go(func() error {
			move, err := c.Move(groupCtx, name)
			if err != nil {
				return err
			}

			moves[i] = move
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return moves, nil
}

// PokemonAbilities fetches the abilities a pokemon can have.
func (c *Client) PokemonAbilities(ctx context.Context, name string) ([]golurk.Ability, error) {
	var response struct {
		Abilities []struct {
			Ability  golurk.NamedApiResource `json:"ability"`
			IsHidden bool                    `json:"is_hidden"`
		} `json:"abilities"`
	}

	if err := c.getJSON(ctx, c.BaseURL+"pokemon/"+name, &response); err != nil {
		return nil, err
	}

	abilities := make([]golurk.Ability, 0, len(response.Abilities))
	for _, ability := range response.Abilities {
		abilities = append(abilities, golurk.Ability{Name: ability.Ability.Name, IsHidden: ability.IsHidden})
	}

	return abilities, nil
}

// AbilityMap fetches the abilities of every named pokemon.
func (c *Client) AbilityMap(ctx context.Context, pokemon []string) (map[string][]golurk.Ability, error) {
	var mu sync.Mutex
	abilityMap := make(map[string][]golurk.Ability, len(pokemon))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(max(1, c.Concurrency))

	for _, name := range pokemon {
		group.Go(func() error {
			abilities, err := c.PokemonAbilities(groupCtx, name)
			if err != nil {
				return fmt.Errorf("pokemon %s: %w", name, err)
			}

			mu.Lock()
			abilityMap[name] = abilities
			mu.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return abilityMap, nil
}

// Items fetches the names of every item with the given attribute.
func (c *Client) Items(ctx context.Context, attribute int) ([]string, error) {
	var response struct {
		Items []golurk.NamedApiResource `json:"items"`
	}

	if err := c.getJSON(ctx, fmt.Sprintf("%sitem-attribute/%d/", c.BaseURL, attribute), &response); err != nil {
		return nil, err
	}

	items := make([]string, len(response.Items))
	for i, item := range response.Items {
		items[i] = item.Name
	}
	slices.Sort(items)

	return items, nil
}
