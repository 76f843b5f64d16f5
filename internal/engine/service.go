package engine

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"time"

	"taskquest/internal/logger"
	"taskquest/internal/storage"
)

// Service runs the game rules against one data directory: the character and
// achievement documents plus the SQLite shop and history.
type Service struct {
	db          *sql.DB
	paths       storage.Paths
	log         *logger.Logger
	rng         *rand.Rand
	now         func() time.Time
	rewards     *storage.RewardRepo
	completions *storage.CompletionRepo
}

type Option func(*Service)

// WithRand fixes the RNG used for gold and loot rolls.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) { s.rng = rng }
}

// WithClock replaces time.Now for completions without a timestamp and for cooldowns.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithLogger(l *logger.Logger) Option {
	return func(s *Service) { s.log = l }
}

func NewService(db *sql.DB, paths storage.Paths, opts ...Option) *Service {
	s := &Service{
		db:          db,
		paths:       paths,
		log:         logger.Nop(),
		now:         time.Now,
		rewards:     storage.NewRewardRepo(db),
		completions: storage.NewCompletionRepo(db),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = NewRand(0)
	}
	return s
}

func (s *Service) Paths() storage.Paths { return s.paths }

// Character loads the current character.
func (s *Service) Character(ctx context.Context) (*Character, error) {
	c, _, err := s.loadCharacter()
	return c, err
}

// Snapshot loads the character together with its achievement ledger.
func (s *Service) Snapshot(ctx context.Context) (*Character, *Ledger, error) {
	c, _, err := s.loadCharacter()
	if err != nil {
		return nil, nil, err
	}
	l, _, err := s.loadLedger()
	if err != nil {
		return nil, nil, err
	}
	return c, l, nil
}

func (s *Service) loadCharacter() (*Character, bool, error) {
	c, fromBackup, err := storage.LoadDocument[Character](s.paths.Character)
	if err != nil {
		if storage.IsMissing(err) {
			return nil, false, ErrNoCharacter
		}
		return nil, false, fmt.Errorf("load character: %w", err)
	}
	if fromBackup {
		s.log.Warn("character restored from backup", "path", storage.BackupPath(s.paths.Character))
	}
	c.Normalize()
	return c, fromBackup, nil
}

// loadLedger starts a fresh ledger on first run. A ledger that exists but
// cannot be read (and has no usable backup) is an error, never reset.
func (s *Service) loadLedger() (*Ledger, bool, error) {
	l, fromBackup, err := storage.LoadDocument[Ledger](s.paths.Ledger)
	if err != nil {
		if storage.IsMissing(err) {
			s.log.Info("starting new achievement ledger", "path", s.paths.Ledger)
			return NewLedger(), false, nil
		}
		return nil, false, fmt.Errorf("load achievements: %w", err)
	}
	if fromBackup {
		s.log.Warn("achievements restored from backup", "path", storage.BackupPath(s.paths.Ledger))
	}
	l.Normalize()
	return l, fromBackup, nil
}

// commit persists one event. The journal statement runs inside a
// transaction that only commits once both documents are on disk. Both
// documents are prepared before either is renamed into place, so an encode or
// write failure leaves every file untouched.
func (s *Service) commit(ctx context.Context, c *Character, l *Ledger, journal func(tx *sql.Tx) error) error {
	return storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if journal != nil {
			if err := journal(tx); err != nil {
				return err
			}
		}
		charDoc, err := storage.PrepareDocument(s.paths.Character, c)
		if err != nil {
			return fmt.Errorf("save character: %w", err)
		}
		defer charDoc.Discard()

		var ledgerDoc *storage.PendingDocument
		if l != nil {
			if ledgerDoc, err = storage.PrepareDocument(s.paths.Ledger, l); err != nil {
				return fmt.Errorf("save achievements: %w", err)
			}
			defer ledgerDoc.Discard()
		}

		if err := charDoc.Commit(); err != nil {
			return fmt.Errorf("save character: %w", err)
		}
		if ledgerDoc != nil {
			if err := ledgerDoc.Commit(); err != nil {
				return fmt.Errorf("save achievements: %w", err)
			}
		}
		return nil
	})
}

func restoredWarnings(charBackup, ledgerBackup bool) []string {
	var out []string
	if charBackup {
		out = append(out, "character was restored from its backup")
	}
	if ledgerBackup {
		out = append(out, "achievements were restored from their backup")
	}
	return out
}
