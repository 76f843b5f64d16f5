package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultRewardsYAML []byte

type defaultRewardFile struct {
	Rewards []defaultReward `yaml:"rewards"`
}

type defaultReward struct {
	ID            int64  `yaml:"id"`
	Name          string `yaml:"name"`
	Description   string `yaml:"description"`
	Cost          int    `yaml:"cost"`
	Tier          string `yaml:"tier"`
	CooldownHours int    `yaml:"cooldown_hours"`
}

// DefaultRewards parses the embedded starter catalog.
func DefaultRewards() ([]RewardInsert, error) {
	var f defaultRewardFile
	if err := yaml.Unmarshal(defaultRewardsYAML, &f); err != nil {
		return nil, fmt.Errorf("parse default rewards: %w", err)
	}
	out := make([]RewardInsert, 0, len(f.Rewards))
	for _, r := range f.Rewards {
		if r.ID <= 0 || r.Name == "" {
			return nil, fmt.Errorf("default reward %d: id and name are required", r.ID)
		}
		out = append(out, RewardInsert{
			ID:            r.ID,
			Name:          r.Name,
			Description:   r.Description,
			Cost:          r.Cost,
			Tier:          r.Tier,
			CooldownHours: r.CooldownHours,
		})
	}
	return out, nil
}

// MaxDefaultRewardID is the highest reserved reward id; rewards at or below it
// belong to the starter catalog.
func MaxDefaultRewardID() int64 {
	defaults, err := DefaultRewards()
	if err != nil {
		return 0
	}
	var max int64
	for _, r := range defaults {
		if r.ID > max {
			max = r.ID
		}
	}
	return max
}

// SeedDefaultRewards fills an empty rewards table with the starter catalog.
func SeedDefaultRewards(ctx context.Context, db *sql.DB) error {
	defaults, err := DefaultRewards()
	if err != nil {
		return err
	}
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		repo := NewRewardRepo(tx)
		n, err := repo.Count(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		for _, r := range defaults {
			if _, err := repo.Insert(ctx, r); err != nil {
				return fmt.Errorf("seed reward %q: %w", r.Name, err)
			}
		}
		return nil
	})
}
