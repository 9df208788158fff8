package view

import (
	"math"

	"github.com/fekuna/omnipos-retail-view/internal/model"
)

const (
	CheckSortName        = "name"
	CheckSortDiscrepancy = "discrepancy"
	CheckSortCategory    = "category"
)

// Discrepancy is actual minus expected; zero while the item is uncounted.
func Discrepancy(item model.CheckItem) float64 {
	if item.ActualQuantity == nil {
		return 0
	}
	return *item.ActualQuantity - item.ExpectedQuantity
}

// NewCheckItems seeds a count from inventory lines. Every item starts pending.
func NewCheckItems(lines []model.InventoryLine) []model.CheckItem {
	items := make([]model.CheckItem, len(lines))
	for i, l := range lines {
		items[i] = model.CheckItem{
			ID:               l.ID,
			ProductID:        l.ProductID,
			SKU:              l.SKU,
			Name:             l.Name,
			Category:         l.Category,
			ExpectedQuantity: l.CurrentStock,
			Status:           model.CheckStatusPending,
		}
	}
	return items
}

// UpdateCount returns a copy of items with the actual quantity of item id
// replaced and its status recomputed. The input slice is left untouched. The
// bool reports whether id was found.
func UpdateCount(items []model.CheckItem, id string, actual float64) ([]model.CheckItem, bool) {
	out := make([]model.CheckItem, len(items))
	copy(out, items)

	for i := range out {
		if out[i].ID != id {
			continue
		}
		qty := actual
		out[i].ActualQuantity = &qty
		if Discrepancy(out[i]) == 0 {
			out[i].Status = model.CheckStatusCompleted
		} else {
			out[i].Status = model.CheckStatusDiscrepancy
		}
		return out, true
	}
	return out, false
}

type CheckSummary struct {
	Total               int     `json:"total"`
	Completed           int     `json:"completed"`
	Discrepancies       int     `json:"discrepancies"`
	Pending             int     `json:"pending"`
	TotalAbsDiscrepancy float64 `json:"total_abs_discrepancy"`
}

func SummarizeCheck(items []model.CheckItem) CheckSummary {
	s := CheckSummary{Total: len(items)}
	for _, item := range items {
		switch item.Status {
		case model.CheckStatusPending:
			s.Pending++
			continue
		case model.CheckStatusCompleted:
			s.Completed++
		default:
			s.Discrepancies++
		}
		s.TotalAbsDiscrepancy += math.Abs(Discrepancy(item))
	}
	return s
}

var CheckSpec = Spec[model.CheckItem]{
	Text: func(c model.CheckItem) []string {
		return []string{c.Name, c.SKU, c.Category}
	},
	Category: func(c model.CheckItem) string { return c.Category },
	Statuses: []string{model.CheckStatusPending, model.CheckStatusCompleted, model.CheckStatusDiscrepancy},
	Status: func(c model.CheckItem, status string) bool {
		return status == All || c.Status == status
	},
	Sorts: []SortOption[model.CheckItem]{
		{Key: CheckSortName, Compare: func(a, b model.CheckItem) int { return compareText(a.Name, b.Name) }},
		{Key: CheckSortDiscrepancy, Compare: func(a, b model.CheckItem) int { return compareNumber(Discrepancy(a), Discrepancy(b)) }},
		{Key: CheckSortCategory, Compare: func(a, b model.CheckItem) int { return compareText(a.Category, b.Category) }},
	},
}

type CheckView struct {
	Items   []model.CheckItem `json:"items"`
	Total   int               `json:"total"`
	Summary CheckSummary      `json:"summary"`
}

// DeriveCheck filters the count list; the summary covers every item.
func DeriveCheck(items []model.CheckItem, query string, cfg FilterConfig) CheckView {
	derived := Derive(items, query, cfg, CheckSpec)
	return CheckView{Items: derived, Total: len(derived), Summary: SummarizeCheck(items)}
}
