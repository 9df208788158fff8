package dto

import (
	"time"

	"github.com/fekuna/omnipos-retail-view/internal/model"
	"github.com/fekuna/omnipos-retail-view/internal/view"
)

type RecordCountInput struct {
	MerchantID     string
	SessionID      string
	ItemID         string
	ActualQuantity float64
}

type GetCheckInput struct {
	MerchantID string
	SessionID  string
	Query      string
	Filter     view.FilterConfig
}

type CheckResult struct {
	SessionID string
	StartedAt time.Time
	View      view.CheckView
	Version   uint64
	// FetchErr is the inventory fetch failure a session was seeded despite.
	FetchErr error
}

type CountResult struct {
	Item    model.CheckItem
	Summary view.CheckSummary
}
