package view

import (
	"cmp"

	"github.com/fekuna/omnipos-retail-view/internal/model"
)

const (
	NotificationUnread    = "unread"
	NotificationSecurity  = model.NotificationTypeSecurity
	NotificationInventory = model.NotificationTypeInventory

	NotificationSortRecent   = "recent"
	NotificationSortPriority = "priority"
)

var NotificationSpec = Spec[model.Notification]{
	Text: func(n model.Notification) []string {
		return []string{n.Title, n.Message}
	},
	Category: func(n model.Notification) string { return n.Type },
	Statuses: []string{NotificationUnread, NotificationSecurity, NotificationInventory},
	Status: func(n model.Notification, status string) bool {
		switch status {
		case All:
			return true
		case NotificationUnread:
			return !n.Read
		default:
			return n.Type == status
		}
	},
	Sorts: []SortOption[model.Notification]{
		{Key: NotificationSortRecent, Compare: func(a, b model.Notification) int { return compareNewest(a.CreatedAt, b.CreatedAt) }},
		// Most urgent first, like recent puts the newest first.
		{Key: NotificationSortPriority, Compare: func(a, b model.Notification) int { return cmp.Compare(b.Priority, a.Priority) }},
	},
}

type NotificationAggregates struct {
	Total       int            `json:"total"`
	SourceTotal int            `json:"source_total"`
	Unread      int            `json:"unread"`
	ByType      map[string]int `json:"by_type"`
}

type NotificationView struct {
	Items  []model.Notification   `json:"items"`
	Counts NotificationAggregates `json:"counts"`
}

func DeriveNotifications(records []model.Notification, query string, cfg FilterConfig) NotificationView {
	items := Derive(records, query, cfg, NotificationSpec)

	counts := NotificationAggregates{
		Total:       len(items),
		SourceTotal: len(records),
		ByType:      map[string]int{},
	}
	for _, n := range records {
		if !n.Read {
			counts.Unread++
		}
		counts.ByType[n.Type]++
	}

	return NotificationView{Items: items, Counts: counts}
}
