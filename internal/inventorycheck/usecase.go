package inventorycheck

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-retail-view/internal/inventorycheck/dto"
	"github.com/fekuna/omnipos-retail-view/internal/view"
)

var (
	ErrSessionNotFound = errors.New("check session not found")
	ErrItemNotFound    = errors.New("check item not found")
	ErrInvalidCount    = errors.New("actual quantity must be a non-negative number")
	ErrNoInventory     = errors.New("no inventory to count")
)

// UseCase runs inventory counts. Sessions live in memory only and a merchant
// has at most one: starting a new count discards the previous one.
type UseCase interface {
	StartCheck(ctx context.Context, merchantID string) (*dto.CheckResult, error)
	RecordCount(ctx context.Context, input *dto.RecordCountInput) (*dto.CountResult, error)
	GetCheck(ctx context.Context, input *dto.GetCheckInput) (*dto.CheckResult, error)
	// OpenCheck summarizes the merchant's current session, if any.
	OpenCheck(ctx context.Context, merchantID string) (*view.CheckSummary, bool)
}
