package analytics

import (
	"math"
	"time"

	"github.com/tidepool-org/clinic-reports/records"
)

const (
	MaxDailyBuckets  = 30
	MaxWeeklyBuckets = 8
)

type bucket struct {
	start time.Time
	end   time.Time
	label string
}

func (b bucket) contains(t time.Time) bool {
	return !t.Before(b.start) && !t.After(b.end)
}

// dailyBuckets covers the first min(days, 30) calendar days of the range. Days past
// the cap are dropped, not merged.
func dailyBuckets(dr DateRange, f FormattingConfig) []bucket {
	count := dr.Days()
	if count > MaxDailyBuckets {
		count = MaxDailyBuckets
	}

	first := startOfDay(dr.Start)
	res := make([]bucket, 0, count)
	for i := 0; i < count; i++ {
		dayStart := first.AddDate(0, 0, i)
		res = append(res, bucket{
			start: latest(dayStart, dr.Start),
			end:   earliest(dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond), dr.End),
			label: f.DayLabel(dayStart),
		})
	}
	return res
}

// weeklyBuckets are 7 day windows from the start of the range. The last one is
// clamped to the range end.
func weeklyBuckets(dr DateRange, f FormattingConfig) []bucket {
	days := dr.Days()
	if days == 0 {
		return nil
	}
	count := int(math.Ceil(float64(days) / 7))
	if count < 1 {
		count = 1
	}
	if count > MaxWeeklyBuckets {
		count = MaxWeeklyBuckets
	}

	first := startOfDay(dr.Start)
	res := make([]bucket, 0, count)
	for i := 0; i < count; i++ {
		weekStart := first.AddDate(0, 0, 7*i)
		b := bucket{
			start: latest(weekStart, dr.Start),
			end:   earliest(weekStart.AddDate(0, 0, 7).Add(-time.Nanosecond), dr.End),
		}
		b.label = f.WeekLabel(weekStart, b.end)
		res = append(res, b)
	}
	return res
}

// series rescans the whole record set for every bucket. Bucket counts are capped so
// this stays cheap for a single organization.
func series(buckets []bucket, list []records.Record, fields []string, value func(records.Record) float64) []TrendPoint {
	dates := make([]*time.Time, len(list))
	for i, r := range list {
		dates[i] = RecordDate(r, fields)
	}

	res := make([]TrendPoint, 0, len(buckets))
	for _, b := range buckets {
		point := TrendPoint{Label: b.label, Start: b.start, End: b.end}
		for i, r := range list {
			if dates[i] != nil && b.contains(*dates[i]) {
				point.Value += value(r)
			}
		}
		point.Value = finite(point.Value)
		res = append(res, point)
	}
	return res
}

func one(records.Record) float64 {
	return 1
}

// DailyCounts is the number of records per day of the range.
func DailyCounts(dr DateRange, f FormattingConfig, list []records.Record, fields []string) []TrendPoint {
	return series(dailyBuckets(dr, f), list, fields, one)
}

// WeeklySums sums value over the records in each week of the range.
func WeeklySums(dr DateRange, f FormattingConfig, list []records.Record, fields []string, value func(records.Record) float64) []TrendPoint {
	return series(weeklyBuckets(dr, f), list, fields, value)
}

func latest(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earliest(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
