package dto

import (
	"time"

	"github.com/fekuna/omnipos-retail-view/internal/view"
)

type ListNotificationsInput struct {
	MerchantID string
	Query      string
	Filter     view.FilterConfig
}

type NotificationList struct {
	View     view.NotificationView
	Version  uint64
	LoadedAt time.Time
	FetchErr error
}
