package view

import (
	"testing"

	"github.com/fekuna/omnipos-retail-view/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCheck() []model.CheckItem {
	return NewCheckItems([]model.InventoryLine{
		{ID: "l1", ProductID: "p1", Name: "Coke 50cl", Category: "Beverages", CurrentStock: 12},
		{ID: "l2", ProductID: "p2", Name: "Peak Milk", Category: "Dairy", CurrentStock: 0},
		{ID: "l3", ProductID: "p3", Name: "Indomie", Category: "Noodles", CurrentStock: 45},
	})
}

func TestNewCheckItems_StartPending(t *testing.T) {
	items := sampleCheck()

	require.Len(t, items, 3)
	for _, item := range items {
		assert.Equal(t, model.CheckStatusPending, item.Status)
		assert.Nil(t, item.ActualQuantity)
	}
	assert.Equal(t, 12.0, items[0].ExpectedQuantity)
}

func TestUpdateCount(t *testing.T) {
	src := sampleCheck()

	counted, ok := UpdateCount(src, "l1", 10)
	require.True(t, ok)
	assert.Equal(t, model.CheckStatusDiscrepancy, counted[0].Status)
	assert.Equal(t, -2.0, Discrepancy(counted[0]))
	assert.Equal(t, model.CheckStatusPending, counted[1].Status, "untouched items stay pending")

	// The source slice is not edited.
	assert.Equal(t, model.CheckStatusPending, src[0].Status)
	assert.Nil(t, src[0].ActualQuantity)

	fixed, ok := UpdateCount(counted, "l1", 12)
	require.True(t, ok)
	assert.Equal(t, model.CheckStatusCompleted, fixed[0].Status)

	_, ok = UpdateCount(fixed, "missing", 1)
	assert.False(t, ok)
}

func TestUpdateCount_StatusMatchesArithmetic(t *testing.T) {
	items := sampleCheck()
	for _, tc := range []struct {
		id     string
		actual float64
	}{{"l1", 12}, {"l2", 4}, {"l3", 44}, {"l2", 0}} {
		var ok bool
		items, ok = UpdateCount(items, tc.id, tc.actual)
		require.True(t, ok)
	}

	for _, item := range items {
		require.NotNil(t, item.ActualQuantity)
		assert.Equal(t, *item.ActualQuantity-item.ExpectedQuantity == 0, item.Status == model.CheckStatusCompleted, item.ID)
	}
}

func TestSummarizeCheck(t *testing.T) {
	items := sampleCheck()
	items, _ = UpdateCount(items, "l1", 15)
	items, _ = UpdateCount(items, "l2", 0)

	s := SummarizeCheck(items)

	assert.Equal(t, CheckSummary{Total: 3, Completed: 1, Discrepancies: 1, Pending: 1, TotalAbsDiscrepancy: 3}, s)
}

func TestDeriveCheck_FiltersByStatus(t *testing.T) {
	items := sampleCheck()
	items, _ = UpdateCount(items, "l3", 40)

	v := DeriveCheck(items, "", FilterConfig{Status: model.CheckStatusPending})
	assert.Equal(t, 2, v.Total)
	assert.Equal(t, 3, v.Summary.Total)

	v = DeriveCheck(items, "", FilterConfig{SortBy: CheckSortDiscrepancy})
	require.Len(t, v.Items, 3)
	assert.Equal(t, "l3", v.Items[0].ID)
}
