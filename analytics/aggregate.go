package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/tidepool-org/clinic-reports/records"
)

type CategoryCount struct {
	Category   string
	Count      int
	Percentage float64
}

// TrendPoint is one bucket of a time series. Series are ordered by construction.
type TrendPoint struct {
	Label string
	Start time.Time
	End   time.Time
	Value float64
}

// Percentage of part in total, 0 when total is not positive.
func Percentage(part float64, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return finite(part / total * 100)
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// tally counts categories keeping the order in which they were first seen.
type tally struct {
	order  []string
	counts map[string]int
	total  int
}

func newTally() *tally {
	return &tally{counts: map[string]int{}}
}

func (t *tally) add(category string) {
	if _, ok := t.counts[category]; !ok {
		t.order = append(t.order, category)
	}
	t.counts[category]++
	t.total++
}

func (t *tally) list() []CategoryCount {
	res := make([]CategoryCount, 0, len(t.order))
	for _, c := range t.order {
		res = append(res, CategoryCount{
			Category:   c,
			Count:      t.counts[c],
			Percentage: Percentage(float64(t.counts[c]), float64(t.total)),
		})
	}
	return res
}

func CountBy(list []records.Record, category func(records.Record) string) []CategoryCount {
	t := newTally()
	for _, r := range list {
		t.add(category(r))
	}
	return t.list()
}

// TopN returns the n largest counts. Ties keep their original order.
func TopN(counts []CategoryCount, n int) []CategoryCount {
	sorted := make([]CategoryCount, len(counts))
	copy(sorted, counts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
