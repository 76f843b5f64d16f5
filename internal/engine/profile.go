package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taskquest/internal/storage"
)

// Init creates a new level 1 character with an empty achievement ledger.
// An existing character is only replaced when force is set.
func (s *Service) Init(ctx context.Context, name string, class Class, force bool) (*Character, error) {
	if class == "" {
		class = ClassWarrior
	}
	if !force {
		_, _, err := storage.LoadDocument[Character](s.paths.Character)
		switch {
		case err == nil:
			return nil, ErrCharacterExists
		case !storage.IsMissing(err):
			return nil, fmt.Errorf("%w: existing character is unreadable: %v", ErrCharacterExists, err)
		}
	}
	if err := s.paths.EnsureDir(); err != nil {
		return nil, err
	}

	c := NewCharacter(name, class)
	if err := s.commit(ctx, c, NewLedger(), nil); err != nil {
		return nil, fmt.Errorf("create character: %w", err)
	}
	s.log.Info("character created", "name", c.Name, "class", c.Class, "dir", s.paths.Dir)
	return c, nil
}

func (s *Service) updateCharacter(ctx context.Context, fn func(c *Character) error) (*Character, error) {
	c, _, err := s.loadCharacter()
	if err != nil {
		return nil, err
	}
	if err := fn(c); err != nil {
		return nil, err
	}
	if err := s.commit(ctx, c, nil, nil); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) SetName(ctx context.Context, name string) (*Character, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("name is required")
	}
	return s.updateCharacter(ctx, func(c *Character) error {
		c.Name = name
		return nil
	})
}

func (s *Service) SetClass(ctx context.Context, class Class) (*Character, error) {
	return s.updateCharacter(ctx, func(c *Character) error {
		c.Class = class
		return nil
	})
}

// SetTitle equips the title of an unlocked achievement, matched by title or
// id without regard to case. An empty title clears the active one.
func (s *Service) SetTitle(ctx context.Context, title string) (*Character, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return s.updateCharacter(ctx, func(c *Character) error {
			c.ActiveTitle = nil
			return nil
		})
	}

	ledger, _, err := s.loadLedger()
	if err != nil {
		return nil, err
	}
	var match *Achievement
	if a, ok := AchievementByID(strings.ToLower(title)); ok && ledger.IsUnlocked(a.ID) {
		match = &a
	}
	for _, a := range ledger.UnlockedAchievements() {
		if match != nil {
			break
		}
		if strings.EqualFold(a.Title, title) {
			a := a
			match = &a
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %q", ErrTitleLocked, title)
	}
	return s.updateCharacter(ctx, func(c *Character) error {
		t := match.Title
		c.ActiveTitle = &t
		return nil
	})
}

// AchievementStatus pairs a catalog entry with the character's standing.
type AchievementStatus struct {
	Achievement
	Unlocked bool
	Progress float64
}

// Achievements returns the whole catalog, in catalog order, with progress.
func (s *Service) Achievements(ctx context.Context) ([]AchievementStatus, error) {
	c, ledger, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return AchievementStatuses(ledger, c), nil
}

// AchievementStatuses evaluates every catalog entry against a ledger.
func AchievementStatuses(l *Ledger, c *Character) []AchievementStatus {
	cat := Catalog()
	out := make([]AchievementStatus, 0, len(cat))
	for _, a := range cat {
		out = append(out, AchievementStatus{
			Achievement: a,
			Unlocked:    l.IsUnlocked(a.ID),
			Progress:    l.ProgressFor(a.ID, c),
		})
	}
	return out
}
