package view

type Bucket string

const (
	BucketOut    Bucket = "out"
	BucketLow    Bucket = "low"
	BucketNormal Bucket = "normal"
)

var stockStatuses = []string{string(BucketLow), string(BucketOut), string(BucketNormal)}

// BucketOf classifies a stock level against its minimum. Exactly one bucket
// applies to any pair; with min == 0 a positive stock is always normal.
func BucketOf(current, minStock float64) Bucket {
	switch {
	case current <= 0:
		return BucketOut
	case current <= minStock:
		return BucketLow
	default:
		return BucketNormal
	}
}

// StockPercent is the fill level of a stock progress bar, where twice the
// minimum counts as full. It plays no part in bucket membership.
func StockPercent(current, minStock float64) float64 {
	if current <= 0 {
		return 0
	}
	if minStock <= 0 {
		return 100
	}
	pct := current / (2 * minStock) * 100
	if pct > 100 {
		return 100
	}
	return pct
}

type BucketCounts struct {
	Out    int `json:"out"`
	Low    int `json:"low"`
	Normal int `json:"normal"`
}

// NeedsAttention is the badge count of items that are out or low.
func (c BucketCounts) NeedsAttention() int {
	return c.Out + c.Low
}

func countBuckets[T any](records []T, stock func(T) (current, minStock float64)) BucketCounts {
	var c BucketCounts
	for _, r := range records {
		switch BucketOf(stock(r)) {
		case BucketOut:
			c.Out++
		case BucketLow:
			c.Low++
		default:
			c.Normal++
		}
	}
	return c
}

func inBucket(current, minStock float64, status string) bool {
	return status == All || string(BucketOf(current, minStock)) == status
}
