package teambuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// paste stat labels in spread order
var statLabels = [6]string{"HP", "Atk", "Def", "SpA", "SpD", "Spe"}

func statLabelIndex(label string) int {
	for i, l := range statLabels {
		if strings.EqualFold(l, label) {
			return i
		}
	}

	return -1
}

// ParseShowdownTeam reads a team in Showdown's export format. Sets are separated by blank lines.
// Lines the engine has no use for (Shiny, Happiness, Tera Type...) are skipped.
func ParseShowdownTeam(text string) ([]Set, error) {
	sets := make([]Set, 0, 6)

	var current *Set
	flush := func() {
		if current != nil {
			sets = append(sets, *current)
			current = nil
		}
	}

	for i, rawLine := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		lineNumber := i + 1
		line := strings.TrimSpace(rawLine)

		if line == "" {
			flush()
			continue
		}

		if current == nil {
			set := parseHeader(line)
			current = &set
			continue
		}

		switch {
		case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "~ "):
			move := strings.TrimSpace(line[2:])
			// "Hidden Power [Fire]" style variants keep only the move name
			if bracket := strings.Index(move, "["); bracket > 0 {
				move = strings.TrimSpace(move[:bracket])
			}
			current.Moves = append(current.Moves, move)
		case strings.HasPrefix(line, "Ability:"):
			current.Ability = strings.TrimSpace(strings.TrimPrefix(line, "Ability:"))
		case strings.HasPrefix(line, "Level:"):
			level, err := strconv.ParseUint(strings.TrimSpace(strings.TrimPrefix(line, "Level:")), 10, 8)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid level: %w", lineNumber, err)
			}
			current.Level = uint(level)
		case strings.HasPrefix(line, "EVs:"):
			if err := parseSpread(strings.TrimPrefix(line, "EVs:"), &current.Evs); err != nil {
				return nil, fmt.Errorf("line %d: invalid EVs: %w", lineNumber, err)
			}
		case strings.HasPrefix(line, "IVs:"):
			if err := parseSpread(strings.TrimPrefix(line, "IVs:"), &current.Ivs); err != nil {
				return nil, fmt.Errorf("line %d: invalid IVs: %w", lineNumber, err)
			}
		case strings.HasSuffix(line, " Nature"):
			current.Nature = strings.TrimSpace(strings.TrimSuffix(line, " Nature"))
		}
	}

	flush()

	return sets, nil
}

// parseHeader reads the "Nickname (Species) (M) @ Item" line that starts every set.
func parseHeader(line string) Set {
	namePart, item, _ := strings.Cut(line, " @ ")

	namePart = strings.TrimSpace(namePart)
	gender := ""
	for _, g := range []string{"M", "F"} {
		if suffix := " (" + g + ")"; strings.HasSuffix(namePart, suffix) {
			gender = g
			namePart = strings.TrimSuffix(namePart, suffix)
		}
	}

	nickname := ""
	species := namePart
	if open := strings.LastIndex(namePart, " ("); open > 0 && strings.HasSuffix(namePart, ")") {
		nickname = namePart[:open]
		species = namePart[open+2 : len(namePart)-1]
	}

	set := NewSet(strings.TrimSpace(species))
	set.Nickname = strings.TrimSpace(nickname)
	set.Gender = gender
	set.Item = strings.TrimSpace(item)

	return set
}

// parseSpread fills spread from "252 Atk / 4 SpD / 252 Spe". Stats not named keep their value.
func parseSpread(text string, spread *[6]uint) error {
	for _, part := range strings.Split(text, "/") {
		fields := strings.Fields(part)
		if len(fields) != 2 {
			return fmt.Errorf("expected \"<value> <stat>\", got %q", strings.TrimSpace(part))
		}

		value, err := strconv.ParseUint(fields[0], 10, 16)
		if err != nil {
			return err
		}

		index := statLabelIndex(fields[1])
		if index < 0 {
			return fmt.Errorf("unknown stat %q", fields[1])
		}

		spread[index] = uint(value)
	}

	return nil
}

// FormatShowdownTeam writes sets back out in the export format ParseShowdownTeam reads.
func FormatShowdownTeam(sets []Set) string {
	var b strings.Builder

	for i, set := range sets {
		if i > 0 {
			b.WriteString("\n")
		}

		if set.Nickname != "" {
			fmt.Fprintf(&b, "%s (%s)", set.Nickname, set.Species)
		} else {
			b.WriteString(set.Species)
		}

		if set.Gender != "" {
			fmt.Fprintf(&b, " (%s)", set.Gender)
		}

		if set.Item != "" {
			fmt.Fprintf(&b, " @ %s", set.Item)
		}
		b.WriteString("\n")

		if set.Ability != "" {
			fmt.Fprintf(&b, "Ability: %s\n", set.Ability)
		}

		if set.Level != 0 && set.Level != 100 {
			fmt.Fprintf(&b, "Level: %d\n", set.Level)
		}

		if evs := formatSpread(set.Evs, 0); evs != "" {
			fmt.Fprintf(&b, "EVs: %s\n", evs)
		}

		if set.Nature != "" {
			fmt.Fprintf(&b, "%s Nature\n", set.Nature)
		}

		if ivs := formatSpread(set.Ivs, 31); ivs != "" {
			fmt.Fprintf(&b, "IVs: %s\n", ivs)
		}

		for _, move := range set.Moves {
			fmt.Fprintf(&b, "- %s\n", move)
		}
	}

	return b.String()
}

// formatSpread lists the stats that differ from the format's default value.
func formatSpread(spread [6]uint, omitted uint) string {
	parts := make([]string, 0, 6)
	for i, value := range spread {
		if value != omitted {
			parts = append(parts, fmt.Sprintf("%d %s", value, statLabels[i]))
		}
	}

	return strings.Join(parts, " / ")
}
