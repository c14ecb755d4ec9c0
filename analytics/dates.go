package analytics

import (
	"fmt"
	"math"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tidepool-org/clinic-reports/records"
)

const (
	DateLayout = "2006-01-02"
	day        = 24 * time.Hour
)

// Date field candidates in priority order. Source records are not consistent about
// which of these is populated.
var (
	PatientDateFields      = []string{"createdAt", "registrationDate", "date"}
	AppointmentDateFields  = []string{"date", "appointmentDate", "createdAt"}
	PrescriptionDateFields = []string{"date", "prescribedDate", "createdAt"}
	PaymentDateFields      = []string{"date", "paymentDate", "createdAt"}
	SubscriptionDateFields = []string{"createdAt", "startDate"}
	OrganizationDateFields = []string{"createdAt"}
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	DateLayout,
}

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func NewSystemClock() Clock {
	return systemClock{}
}

// ParseDateOrNull returns nil for anything that isn't a recognizable date.
func ParseDateOrNull(v interface{}) *time.Time {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return nil
		}
		return &t
	case *time.Time:
		if t == nil || t.IsZero() {
			return nil
		}
		c := *t
		return &c
	case primitive.DateTime:
		c := t.Time()
		return &c
	case primitive.Timestamp:
		c := time.Unix(int64(t.T), 0).UTC()
		return &c
	case int:
		return fromMillis(float64(t))
	case int32:
		return fromMillis(float64(t))
	case int64:
		return fromMillis(float64(t))
	case float64:
		return fromMillis(t)
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return &parsed
			}
		}
	}
	return nil
}

func fromMillis(ms float64) *time.Time {
	if math.IsNaN(ms) || math.IsInf(ms, 0) {
		return nil
	}
	t := time.UnixMilli(int64(ms)).UTC()
	return &t
}

// RecordDate returns the date stored in the first present candidate field. A present
// field that can't be parsed yields nil, later candidates are not consulted.
func RecordDate(r records.Record, fields []string) *time.Time {
	v, ok := r.Get(fields...)
	if !ok {
		return nil
	}
	return ParseDateOrNull(v)
}

// DateRange is inclusive on both ends.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) Valid() bool {
	return !r.Start.After(r.End)
}

func (r DateRange) Contains(t time.Time) bool {
	return r.Valid() && !t.Before(r.Start) && !t.After(r.End)
}

// Days is the number of calendar days touched by the range, counted in the location
// of Start. An inverted range has no days.
func (r DateRange) Days() int {
	if !r.Valid() {
		return 0
	}
	loc := r.Start.Location()
	sy, sm, sd := r.Start.Date()
	ey, em, ed := r.End.In(loc).Date()
	start := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	end := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start)/day) + 1
}

func InRange(r records.Record, dr DateRange, fields []string) bool {
	t := RecordDate(r, fields)
	if t == nil {
		return false
	}
	return dr.Contains(*t)
}

func FilterInRange(list []records.Record, dr DateRange, fields []string) []records.Record {
	res := make([]records.Record, 0, len(list))
	for _, r := range list {
		if InRange(r, dr, fields) {
			res = append(res, r)
		}
	}
	return res
}

// ParseDateRange builds a range from caller supplied ISO dates. Date-only values cover
// whole days in loc. Empty values default to the last defaultDays days through today.
func ParseDateRange(start, end string, now time.Time, loc *time.Location, defaultDays int) (DateRange, error) {
	if loc == nil {
		loc = time.UTC
	}
	today := startOfDay(now.In(loc))

	dr := DateRange{
		Start: today.AddDate(0, 0, -defaultDays),
		End:   endOfDay(today),
	}

	if start != "" {
		t, err := parseBoundary(start, loc, false)
		if err != nil {
			return DateRange{}, fmt.Errorf("invalid start date %q: %w", start, err)
		}
		dr.Start = t
	}
	if end != "" {
		t, err := parseBoundary(end, loc, true)
		if err != nil {
			return DateRange{}, fmt.Errorf("invalid end date %q: %w", end, err)
		}
		dr.End = t
	}

	return dr, nil
}

func parseBoundary(value string, loc *time.Location, isEnd bool) (time.Time, error) {
	if t, err := time.ParseInLocation(DateLayout, value, loc); err == nil {
		if isEnd {
			return endOfDay(t), nil
		}
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(loc), nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
