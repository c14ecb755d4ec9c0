package analytics

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/shopspring/decimal"

	"github.com/tidepool-org/clinic-reports/records"
)

const (
	PaymentStatusPending = "Pending"
	PaymentTypeUnknown   = "Unknown"
)

// paidStatuses is matched case-sensitively. "paid" is written by a different code path
// than "Paid" and both count.
var paidStatuses = mapset.NewSet[string]("Paid", "Completed", "paid")

type RevenueByType struct {
	Type       string
	Revenue    decimal.Decimal
	Count      int
	Percentage float64
}

type RevenueStats struct {
	Total              int
	InRange            int
	PaidCount          int
	PendingCount       int
	TotalRevenue       decimal.Decimal
	AverageTransaction decimal.Decimal
	ByType             []RevenueByType
	Weekly             []TrendPoint
}

func IsPaid(r records.Record) bool {
	status, ok := r["status"].(string)
	return ok && paidStatuses.Contains(status)
}

func PaymentType(r records.Record) string {
	return r.Coalesce(PaymentTypeUnknown, "description", "paymentMethod")
}

// PaymentAmount is the amount of the payment, zero if it can't be read.
func PaymentAmount(r records.Record) decimal.Decimal {
	v, ok := r.Get("amount")
	if !ok {
		return decimal.Zero
	}
	return ToDecimal(v)
}

// PaidAmount is the payment amount when it counts toward revenue, zero otherwise.
func PaidAmount(r records.Record) decimal.Decimal {
	if !IsPaid(r) {
		return decimal.Zero
	}
	return PaymentAmount(r)
}

func ToDecimal(v interface{}) decimal.Decimal {
	switch n := v.(type) {
	case decimal.Decimal:
		return n
	case string:
		if d, err := decimal.NewFromString(n); err == nil {
			return d
		}
		return decimal.Zero
	}
	f, ok := records.ToFloat(v)
	if !ok || finite(f) != f {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

func AggregateRevenue(all []records.Record, inRange []records.Record) RevenueStats {
	stats := RevenueStats{
		Total:        len(all),
		InRange:      len(inRange),
		TotalRevenue: decimal.Zero,
	}

	var order []string
	byType := map[string]*RevenueByType{}
	for _, r := range inRange {
		if status, _ := r["status"].(string); status == PaymentStatusPending {
			stats.PendingCount++
		}
		if !IsPaid(r) {
			continue
		}

		amount := PaymentAmount(r)
		stats.PaidCount++
		stats.TotalRevenue = stats.TotalRevenue.Add(amount)

		t := PaymentType(r)
		entry, ok := byType[t]
		if !ok {
			entry = &RevenueByType{Type: t, Revenue: decimal.Zero}
			byType[t] = entry
			order = append(order, t)
		}
		entry.Revenue = entry.Revenue.Add(amount)
		entry.Count++
	}

	total := stats.TotalRevenue.InexactFloat64()
	stats.ByType = make([]RevenueByType, 0, len(order))
	for _, t := range order {
		entry := *byType[t]
		entry.Percentage = Percentage(entry.Revenue.InexactFloat64(), total)
		stats.ByType = append(stats.ByType, entry)
	}

	stats.AverageTransaction = decimal.Zero
	if stats.PaidCount > 0 {
		stats.AverageTransaction = stats.TotalRevenue.Div(decimal.NewFromInt(int64(stats.PaidCount)))
	}

	return stats
}

// PaidRevenue is PaidAmount as a plain number for time series.
func PaidRevenue(r records.Record) float64 {
	return PaidAmount(r).InexactFloat64()
}
