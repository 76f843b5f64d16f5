package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"taskquest/internal/engine"
	"taskquest/internal/storage"
)

// Source is what the character sheet reads from and buys through.
type Source interface {
	Snapshot(ctx context.Context) (*engine.Character, *engine.Ledger, error)
	ListRewards(ctx context.Context) ([]engine.RewardStatus, error)
	History(ctx context.Context, limit int) ([]storage.Completion, error)
	Purchase(ctx context.Context, identifier string) (*engine.PurchaseResult, error)
}

// RunSheet opens the interactive character sheet.
func RunSheet(ctx context.Context, src Source, out io.Writer) error {
	m := newSheetModel(ctx, src)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
