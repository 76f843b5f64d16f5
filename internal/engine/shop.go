package engine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"taskquest/internal/storage"
)

// RewardStatus is a shop entry with its cooldown evaluated at a point in time.
type RewardStatus struct {
	storage.Reward
	Remaining time.Duration
	Default   bool
}

func (r RewardStatus) Available() bool { return r.Remaining <= 0 }

type PurchaseResult struct {
	Reward    storage.Reward
	Spent     int
	Balance   int
	Unlocked  []Achievement
	Character *Character
	Warnings  []string
}

type RewardInput struct {
	Name          string
	Description   string
	Cost          int
	Tier          RewardTier
	CooldownHours int
}

// ListRewards returns every shop reward ordered by id.
func (s *Service) ListRewards(ctx context.Context) ([]RewardStatus, error) {
	all, err := s.rewards.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	maxDefault := storage.MaxDefaultRewardID()
	out := make([]RewardStatus, 0, len(all))
	for _, r := range all {
		out = append(out, RewardStatus{
			Reward:    r,
			Remaining: r.CooldownRemaining(now),
			Default:   r.ID <= maxDefault,
		})
	}
	return out, nil
}

// AvailableRewards returns the rewards whose cooldown has elapsed.
func (s *Service) AvailableRewards(ctx context.Context) ([]RewardStatus, error) {
	all, err := s.ListRewards(ctx)
	if err != nil {
		return nil, err
	}
	var out []RewardStatus
	for _, r := range all {
		if r.Available() {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Service) findReward(ctx context.Context, identifier string) (*storage.Reward, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, errors.New("reward id or name is required")
	}
	var (
		r   *storage.Reward
		err error
	)
	if id, convErr := strconv.ParseInt(identifier, 10, 64); convErr == nil {
		r, err = s.rewards.Get(ctx, id)
	} else {
		r, err = s.rewards.GetByName(ctx, identifier)
	}
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("%w: %q", ErrRewardNotFound, identifier)
	}
	return r, nil
}

// Purchase buys a reward by numeric id or case-insensitive name. A reward
// still cooling down or one the character cannot afford is rejected before
// anything is changed.
func (s *Service) Purchase(ctx context.Context, identifier string) (*PurchaseResult, error) {
	reward, err := s.findReward(ctx, identifier)
	if err != nil {
		return nil, err
	}
	c, charBackup, err := s.loadCharacter()
	if err != nil {
		return nil, err
	}

	now := s.now()
	if rem := reward.CooldownRemaining(now); rem > 0 {
		return nil, CooldownError{Reward: reward.Name, Remaining: rem}
	}
	if c.Gold < reward.Cost {
		return nil, InsufficientGoldError{Cost: reward.Cost, Balance: c.Gold}
	}

	ledger, ledgerBackup, err := s.loadLedger()
	if err != nil {
		return nil, err
	}

	if !c.SpendGold(reward.Cost) {
		return nil, InsufficientGoldError{Cost: reward.Cost, Balance: c.Gold}
	}
	unlocked := ledger.RecordPurchase(c)

	err = s.commit(ctx, c, ledger, func(tx *sql.Tx) error {
		return storage.NewRewardRepo(tx).MarkPurchased(ctx, reward.ID, now)
	})
	if err != nil {
		return nil, fmt.Errorf("record purchase: %w", err)
	}
	reward.LastPurchased = &now

	s.log.Debug("reward purchased", "reward", reward.Name, "cost", reward.Cost, "balance", c.Gold)
	return &PurchaseResult{
		Reward:    *reward,
		Spent:     reward.Cost,
		Balance:   c.Gold,
		Unlocked:  unlocked,
		Character: c,
		Warnings:  restoredWarnings(charBackup, ledgerBackup),
	}, nil
}

// AddReward adds a custom reward to the shop.
func (s *Service) AddReward(ctx context.Context, in RewardInput) (*storage.Reward, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, errors.New("reward name is required")
	}
	if _, err := strconv.ParseInt(name, 10, 64); err == nil {
		return nil, errors.New("reward name cannot be a number")
	}
	if in.Cost <= 0 {
		return nil, fmt.Errorf("invalid cost %d: must be positive", in.Cost)
	}
	if in.CooldownHours < 0 {
		return nil, fmt.Errorf("invalid cooldown %d: must not be negative", in.CooldownHours)
	}
	tier := in.Tier
	if tier == "" {
		tier = RewardNormal
	}
	if !tier.IsValid() {
		return nil, fmt.Errorf("invalid tier %q", tier)
	}

	existing, err := s.rewards.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %q", ErrRewardExists, existing.Name)
	}

	id, err := s.rewards.Insert(ctx, storage.RewardInsert{
		Name:          name,
		Description:   strings.TrimSpace(in.Description),
		Cost:          in.Cost,
		Tier:          string(tier),
		CooldownHours: in.CooldownHours,
	})
	if err != nil {
		return nil, err
	}
	return s.rewards.Get(ctx, id)
}

// RemoveReward deletes a custom reward. The starter rewards stay.
func (s *Service) RemoveReward(ctx context.Context, identifier string) (*storage.Reward, error) {
	r, err := s.findReward(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if r.ID <= storage.MaxDefaultRewardID() {
		return nil, fmt.Errorf("%w: %q", ErrDefaultReward, r.Name)
	}
	if err := s.rewards.Delete(ctx, r.ID); err != nil {
		return nil, err
	}
	return r, nil
}
