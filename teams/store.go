package teams

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/samber/lo"
)

// SavedTeams maps team names to their pastes
type SavedTeams map[string]string

// Store keeps named teams in a single JSON file. The file and its directory are created on first use.
type Store struct {
	FilePath string
}

func NewStore(filePath string) *Store {
	return &Store{FilePath: filePath}
}

func (s *Store) Save(name string, paste string) error {
	if name == "" {
		return fmt.Errorf("teams need a name")
	}

	teams, err := s.loadTeamMap()
	if err != nil {
		return err
	}

	teams[name] = paste

	return s.writeTeamMap(teams)
}

func (s *Store) Load(name string) (string, error) {
	teams, err := s.loadTeamMap()
	if err != nil {
		return "", err
	}

	paste, ok := teams[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNoSuchTeam, name)
	}

	return paste, nil
}

// List returns the saved team names in sorted order.
func (s *Store) List() ([]string, error) {
	teams, err := s.loadTeamMap()
	if err != nil {
		return nil, err
	}

	names := lo.Keys(teams)
	slices.Sort(names)

	return names, nil
}

func (s *Store) Delete(name string) error {
	teams, err := s.loadTeamMap()
	if err != nil {
		return err
	}

	if _, ok := teams[name]; !ok {
		return fmt.Errorf("%w: %s", ErrNoSuchTeam, name)
	}

	delete(teams, name)

	return s.writeTeamMap(teams)
}

func (s *Store) writeTeamMap(teams SavedTeams) error {
	teamsJson, err := json.MarshalIndent(teams, "", "  ")
	if err != nil {
		return err
	}

	teamsFile, err := os.Create(s.FilePath)
	if err != nil {
		return err
	}
	defer teamsFile.Close()

	if _, err := teamsFile.Write(teamsJson); err != nil {
		return err
	}

	return nil
}

func (s *Store) loadTeamMap() (SavedTeams, error) {
	teamFile, err := os.Open(s.FilePath)
	// If there is an error, assume the file doesn't exist
	if err != nil {
		if err := os.MkdirAll(filepath.Dir(s.FilePath), 0750); err != nil {
			return nil, err
		}

		teamFile, err = os.Create(s.FilePath)
		// If we still have errors, then bail
		if err != nil {
			return nil, err
		}
	}
	defer teamFile.Close()

	teamFileBytes, err := io.ReadAll(teamFile)
	if err != nil {
		return nil, err
	}

	teams := make(SavedTeams)
	if len(teamFileBytes) == 0 {
		return teams, nil
	}

	if err := json.Unmarshal(teamFileBytes, &teams); err != nil {
		return nil, fmt.Errorf("team file %s is corrupt: %w", s.FilePath, err)
	}

	return teams, nil
}
