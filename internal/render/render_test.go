package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fekuna/omnipos-retail-view/internal/model"
	"github.com/fekuna/omnipos-retail-view/internal/theme"
	"github.com/fekuna/omnipos-retail-view/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog() []model.Product {
	return []model.Product{
		{ID: "p1", Name: "Coke 50cl", SKU: "BEV-001", Category: "Beverages", CurrentStock: 12, MinStock: 30, Price: 250},
		{ID: "p2", Name: "Peak Milk", Category: "Dairy", CurrentStock: 0, MinStock: 15, Price: 1900},
		{ID: "p3", Name: "Indomie", Category: "Noodles", CurrentStock: 45, MinStock: 20, Price: 180},
	}
}

func lineFor(t *testing.T, out, name string) string {
	t.Helper()
	for _, l := range strings.Split(out, "\n") {
		if strings.HasPrefix(l, name) {
			return l
		}
	}
	t.Fatalf("no line for %q in:\n%s", name, out)
	return ""
}

func TestProducts(t *testing.T) {
	var buf bytes.Buffer
	v := view.DeriveProducts(catalog(), "", view.FilterConfig{SortBy: view.ProductSortStock})

	require.NoError(t, Products(&buf, v, theme.Plain()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "NAME"))
	assert.Contains(t, lineFor(t, out, "Peak Milk"), "OUT")
	assert.Contains(t, lineFor(t, out, "Peak Milk"), "1,900")
	assert.Contains(t, lineFor(t, out, "Peak Milk"), "[..........]")
	assert.Contains(t, lineFor(t, out, "Coke 50cl"), "LOW")
	assert.Contains(t, lineFor(t, out, "Coke 50cl"), "[##........]")
	assert.Contains(t, lineFor(t, out, "Indomie"), "OK")
	assert.Contains(t, lineFor(t, out, "Indomie"), "[##########]")
	assert.Contains(t, out, "3 of 3 products  OUT 1  LOW 1  OK 1  stock value 11,100")

	// Rows come out in view order.
	assert.Less(t, strings.Index(out, "Peak Milk"), strings.Index(out, "Coke 50cl"))
	assert.Less(t, strings.Index(out, "Coke 50cl"), strings.Index(out, "Indomie"))
}

func TestProducts_ColumnsAlignWithColours(t *testing.T) {
	var buf bytes.Buffer
	v := view.DeriveProducts(catalog(), "", view.FilterConfig{})

	require.NoError(t, Products(&buf, v, theme.ForMode(theme.Dark)))
	lines := strings.Split(buf.String(), "\n")

	// The bar is the last column; each cell carries one colour escape.
	col := func(l string) int { return strings.Index(l, "[\033[") }
	header := strings.Index(lines[0], "\033[37mLEVEL")
	require.Positive(t, header)
	for _, l := range lines[1:4] {
		assert.Equal(t, header, col(l), "line %q", l)
	}
	assert.Contains(t, buf.String(), "\033[91mOUT"+theme.Reset)
}

func TestInventory(t *testing.T) {
	store := "s1"
	var buf bytes.Buffer
	v := view.DeriveInventory([]model.InventoryLine{
		{ID: "i1", Name: "Sugar", StoreID: &store, CurrentStock: -2, MinStock: 5},
	}, "", view.FilterConfig{})

	require.NoError(t, Inventory(&buf, v, theme.Plain()))

	line := lineFor(t, buf.String(), "Sugar")
	assert.Contains(t, line, "s1")
	assert.Contains(t, line, "-2")
	assert.Contains(t, line, "OUT")
	assert.Contains(t, buf.String(), "1 of 1 lines")
}

func TestNotifications(t *testing.T) {
	var buf bytes.Buffer
	v := view.DeriveNotifications([]model.Notification{
		{ID: "n1", Title: "Login from new device", Type: model.NotificationTypeSecurity},
		{ID: "n2", Title: "Weekly report", Type: model.NotificationTypeSystem, Read: true},
	}, "", view.FilterConfig{})

	require.NoError(t, Notifications(&buf, v, theme.Plain()))
	out := buf.String()

	assert.Contains(t, out, "* ")
	assert.Contains(t, out, "security")
	assert.Contains(t, out, "2 of 2 notifications  1 unread")
}

func TestCheck(t *testing.T) {
	items, _ := view.UpdateCount(view.NewCheckItems([]model.InventoryLine{
		{ID: "i1", Name: "Peak Milk", CurrentStock: 4},
		{ID: "i2", Name: "Sugar", CurrentStock: 10},
	}), "i1", 1)
	var buf bytes.Buffer

	require.NoError(t, Check(&buf, view.DeriveCheck(items, "", view.FilterConfig{}), theme.Plain()))
	out := buf.String()

	assert.Contains(t, lineFor(t, out, "Peak Milk"), "-3")
	assert.Contains(t, lineFor(t, out, "Peak Milk"), model.CheckStatusDiscrepancy)
	assert.Contains(t, lineFor(t, out, "Sugar"), model.CheckStatusPending)
	assert.Contains(t, out, "2 items  0 completed  1 discrepancies  1 pending  total difference 3")
}

func TestBar(t *testing.T) {
	p := theme.Plain()
	assert.Equal(t, "[..........]", Bar(0, p))
	assert.Equal(t, "[#####.....]", Bar(50, p))
	assert.Equal(t, "[##########]", Bar(100, p))
	assert.Equal(t, "[##########]", Bar(250, p))
}
