// Package render writes derived views as aligned text tables.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/fekuna/omnipos-retail-view/internal/model"
	"github.com/fekuna/omnipos-retail-view/internal/theme"
	"github.com/fekuna/omnipos-retail-view/internal/view"
)

const barWidth = 10

// table paints every cell once so colour escapes add the same width to all
// cells of a column and tabwriter keeps them aligned.
type table struct {
	tw *tabwriter.Writer
	t  theme.Theme
}

func newTable(w io.Writer, t theme.Theme, header ...string) *table {
	tb := &table{tw: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0), t: t}
	cells := make([]string, len(header))
	for i, h := range header {
		cells[i] = t.Paint(t.Palette.Muted, h)
	}
	tb.row(cells...)
	return tb
}

func (tb *table) row(cells ...string) {
	fmt.Fprintln(tb.tw, strings.Join(cells, "\t"))
}

func (tb *table) text(s string) string {
	return tb.t.Paint(tb.t.Palette.Text, dash(s))
}

func (tb *table) flush() error {
	return tb.tw.Flush()
}

// Products writes the products screen: a row per product and the badge line.
func Products(w io.Writer, v view.ProductView, t theme.Theme) error {
	tb := newTable(w, t, "NAME", "SKU", "CATEGORY", "STOCK", "MIN", "PRICE", "STATUS", "LEVEL")
	for _, p := range v.Items {
		tb.row(
			tb.text(p.Name),
			tb.text(p.SKU),
			tb.text(p.Category),
			tb.text(number(p.CurrentStock)),
			tb.text(number(p.MinStock)),
			tb.text(humanize.CommafWithDigits(p.Price, 2)),
			Badge(view.BucketOf(p.CurrentStock, p.MinStock), t),
			Bar(view.StockPercent(p.CurrentStock, p.MinStock), t),
		)
	}
	if err := tb.flush(); err != nil {
		return err
	}

	c := v.Counts
	_, err := fmt.Fprintf(w, "\n%d of %d products  %s  stock value %s\n",
		c.Total, c.SourceTotal, bucketLine(c.Buckets, t), humanize.CommafWithDigits(c.StockValue, 2))
	return err
}

func Inventory(w io.Writer, v view.InventoryView, t theme.Theme) error {
	tb := newTable(w, t, "NAME", "SKU", "CATEGORY", "STORE", "STOCK", "MIN", "STATUS", "LEVEL")
	for _, l := range v.Items {
		store := ""
		if l.StoreID != nil {
			store = *l.StoreID
		}
		tb.row(
			tb.text(l.Name),
			tb.text(l.SKU),
			tb.text(l.Category),
			tb.text(store),
			tb.text(number(l.CurrentStock)),
			tb.text(number(l.MinStock)),
			Badge(view.BucketOf(l.CurrentStock, l.MinStock), t),
			Bar(view.StockPercent(l.CurrentStock, l.MinStock), t),
		)
	}
	if err := tb.flush(); err != nil {
		return err
	}

	c := v.Counts
	_, err := fmt.Fprintf(w, "\n%d of %d lines  %s  %s units\n",
		c.Total, c.SourceTotal, bucketLine(c.Buckets, t), number(c.StockUnits))
	return err
}

func Notifications(w io.Writer, v view.NotificationView, t theme.Theme) error {
	tb := newTable(w, t, "", "TITLE", "TYPE", "PRIORITY", "WHEN")
	for _, n := range v.Items {
		marker, title := " ", t.Paint(t.Palette.Muted, n.Title)
		if !n.Read {
			marker, title = "*", tb.text(n.Title)
		}
		when := ""
		if !n.CreatedAt.IsZero() {
			when = humanize.Time(n.CreatedAt)
		}
		tb.row(
			t.Paint(t.Palette.Accent, marker),
			title,
			typeBadge(n.Type, t),
			tb.text(fmt.Sprint(n.Priority)),
			tb.text(when),
		)
	}
	if err := tb.flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\n%d of %d notifications  %d unread\n", v.Counts.Total, v.Counts.SourceTotal, v.Counts.Unread)
	return err
}

func Check(w io.Writer, v view.CheckView, t theme.Theme) error {
	tb := newTable(w, t, "NAME", "SKU", "EXPECTED", "COUNTED", "DIFF", "STATUS")
	for _, item := range v.Items {
		counted, diff := "", ""
		if item.ActualQuantity != nil {
			counted = number(*item.ActualQuantity)
			diff = fmt.Sprintf("%+g", view.Discrepancy(item))
		}
		tb.row(
			tb.text(item.Name),
			tb.text(item.SKU),
			tb.text(number(item.ExpectedQuantity)),
			tb.text(counted),
			tb.text(diff),
			checkBadge(item.Status, t),
		)
	}
	if err := tb.flush(); err != nil {
		return err
	}

	s := v.Summary
	_, err := fmt.Fprintf(w, "\n%d items  %d completed  %d discrepancies  %d pending  total difference %s\n",
		s.Total, s.Completed, s.Discrepancies, s.Pending, number(s.TotalAbsDiscrepancy))
	return err
}

// Badge is the coloured status label of a stock bucket.
func Badge(b view.Bucket, t theme.Theme) string {
	switch b {
	case view.BucketOut:
		return t.Paint(t.Palette.Danger, "OUT")
	case view.BucketLow:
		return t.Paint(t.Palette.Warning, "LOW")
	default:
		return t.Paint(t.Palette.Success, "OK")
	}
}

// Bar draws a fixed-width progress bar for a stock percentage.
func Bar(percent float64, t theme.Theme) string {
	filled := int(percent / 100 * barWidth)
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}

	color := t.Palette.Success
	switch {
	case percent <= 0:
		color = t.Palette.Danger
	case percent <= 50:
		color = t.Palette.Warning
	}
	return "[" + t.Paint(color, strings.Repeat("#", filled)) + strings.Repeat(".", barWidth-filled) + "]"
}

func bucketLine(c view.BucketCounts, t theme.Theme) string {
	return fmt.Sprintf("%s %d  %s %d  %s %d",
		Badge(view.BucketOut, t), c.Out,
		Badge(view.BucketLow, t), c.Low,
		Badge(view.BucketNormal, t), c.Normal)
}

func typeBadge(kind string, t theme.Theme) string {
	switch kind {
	case model.NotificationTypeSecurity:
		return t.Paint(t.Palette.Danger, kind)
	case model.NotificationTypeInventory:
		return t.Paint(t.Palette.Warning, kind)
	default:
		return t.Paint(t.Palette.Muted, dash(kind))
	}
}

func checkBadge(status string, t theme.Theme) string {
	switch status {
	case model.CheckStatusCompleted:
		return t.Paint(t.Palette.Success, status)
	case model.CheckStatusDiscrepancy:
		return t.Paint(t.Palette.Danger, status)
	default:
		return t.Paint(t.Palette.Muted, status)
	}
}

func number(f float64) string {
	return humanize.Ftoa(f)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
