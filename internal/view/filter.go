// Package view derives the ordered, filtered lists and badge counts the
// retail screens render from an in-memory source collection.
//
// Every derivation runs the same three stages in order: text filter,
// structured filter, stable sort. The source slice is never modified.
package view

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// All is the sentinel that disables a structured filter field.
const All = "all"

type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// FilterConfig is the user-selected filter state of a list screen.
type FilterConfig struct {
	Category  string    `json:"category"`
	Status    string    `json:"status"`
	SortBy    string    `json:"sort_by"`
	SortOrder SortOrder `json:"sort_order"`
}

// Comparator orders two records; negative means a sorts before b.
type Comparator[T any] func(a, b T) int

type SortOption[T any] struct {
	Key     string
	Compare Comparator[T]
}

// Spec plugs one record type into the pipeline.
type Spec[T any] struct {
	// Text returns the searchable fields; a match on any of them keeps the record.
	Text func(T) []string
	// Category returns the grouping value compared against FilterConfig.Category.
	Category func(T) string
	// Statuses lists the accepted status values besides All.
	Statuses []string
	Status   func(r T, status string) bool
	// Sorts lists the sort keys; the first one is the default.
	Sorts []SortOption[T]
}

// Normalize fills omitted or unknown fields so the pipeline always sees a
// fully defined config. Category is an open domain and is only defaulted
// when empty.
func (s Spec[T]) Normalize(cfg FilterConfig) FilterConfig {
	if strings.TrimSpace(cfg.Category) == "" {
		cfg.Category = All
	}
	if cfg.Status != All && !slices.Contains(s.Statuses, cfg.Status) {
		cfg.Status = All
	}
	if s.comparator(cfg.SortBy) == nil && len(s.Sorts) > 0 {
		cfg.SortBy = s.Sorts[0].Key
	}
	if cfg.SortOrder != Desc {
		cfg.SortOrder = Asc
	}
	return cfg
}

func (s Spec[T]) comparator(key string) Comparator[T] {
	for _, opt := range s.Sorts {
		if opt.Key == key {
			return opt.Compare
		}
	}
	return nil
}

// Derive returns a new slice holding the records that pass the query and the
// config, ordered by the configured sort. It never returns nil.
func Derive[T any](records []T, query string, cfg FilterConfig, spec Spec[T]) []T {
	cfg = spec.Normalize(cfg)

	out := filterText(records, query, spec.Text)
	out = filterStructured(out, cfg, spec)
	sortStable(out, cfg, spec)
	return out
}

func filterText[T any](records []T, query string, fields func(T) []string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]T, 0, len(records))
	for _, r := range records {
		if q == "" || matchesAny(fields(r), q) {
			out = append(out, r)
		}
	}
	return out
}

func matchesAny(values []string, lowerQuery string) bool {
	for _, v := range values {
		if v != "" && strings.Contains(strings.ToLower(v), lowerQuery) {
			return true
		}
	}
	return false
}

// filterStructured filters in place; records holds a fresh slice from filterText.
func filterStructured[T any](records []T, cfg FilterConfig, spec Spec[T]) []T {
	if cfg.Category == All && cfg.Status == All {
		return records
	}
	return slices.DeleteFunc(records, func(r T) bool {
		if cfg.Category != All && spec.Category(r) != cfg.Category {
			return true
		}
		return cfg.Status != All && !spec.Status(r, cfg.Status)
	})
}

func sortStable[T any](records []T, cfg FilterConfig, spec Spec[T]) {
	compare := spec.comparator(cfg.SortBy)
	if compare == nil {
		return
	}
	if cfg.SortOrder == Desc {
		asc := compare
		compare = func(a, b T) int { return -asc(a, b) }
	}
	slices.SortStableFunc(records, compare)
}

func compareText(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func compareNumber(a, b float64) int {
	return cmp.Compare(a, b)
}

// compareNewest puts the later timestamp first.
func compareNewest(a, b time.Time) int {
	return cmp.Compare(b.UnixMilli(), a.UnixMilli())
}
