package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

var monthsPerYear = decimal.NewFromInt(12)

type GrowthMetrics struct {
	TotalSubscribers     int
	NewSubscribers       int
	SubscriberGrowth     float64
	CancelledCount       int
	Churn                float64
	CurrentMonthRevenue  decimal.Decimal
	PreviousMonthRevenue decimal.Decimal
	RevenueGrowth        float64
	MonthlyActiveRevenue decimal.Decimal
	ARR                  decimal.Decimal
	TotalRevenue         decimal.Decimal
	TrialValue           decimal.Decimal
	TrialCount           int
	ConvertedTrials      int
	ConversionRate       float64
}

// SubscriberGrowth compares new subscribers with the ones that existed before them.
func SubscriberGrowth(newSubscribers int, total int) float64 {
	previous := total - newSubscribers
	if previous <= 0 {
		return 0
	}
	return finite(float64(newSubscribers) / float64(previous) * 100)
}

func ChurnRate(cancelled int, total int) float64 {
	return Percentage(float64(cancelled), float64(total))
}

// RevenueGrowth is 0 when there was no revenue in the previous month.
func RevenueGrowth(current decimal.Decimal, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		return 0
	}
	return finite(current.Sub(previous).Div(previous).InexactFloat64() * 100)
}

// ConversionRate uses currently trialing plus converted subscriptions as the trial
// population. Trials that ended without converting are not counted.
func ConversionRate(converted int, trialing int) float64 {
	return Percentage(float64(converted), float64(trialing+converted))
}

// CalculateGrowth derives the subscription metrics. newSubscribers is the number of
// subscriptions created inside the reporting range. Months are calendar months in the
// location of now.
func CalculateGrowth(subscriptions []SubscriptionSnapshot, newSubscribers int, now time.Time) GrowthMetrics {
	m := GrowthMetrics{
		TotalSubscribers:     len(subscriptions),
		NewSubscribers:       newSubscribers,
		CurrentMonthRevenue:  decimal.Zero,
		PreviousMonthRevenue: decimal.Zero,
		MonthlyActiveRevenue: decimal.Zero,
		TotalRevenue:         decimal.Zero,
		TrialValue:           decimal.Zero,
	}

	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	previousMonth := currentMonth.AddDate(0, -1, 0)
	nextMonth := currentMonth.AddDate(0, 1, 0)

	for _, s := range subscriptions {
		switch s.Status {
		case SubscriptionStatusCancelled:
			m.CancelledCount++
		case SubscriptionStatusTrialing:
			m.TrialCount++
		case SubscriptionStatusActive:
			if s.TrialEndDate != nil {
				m.ConvertedTrials++
			}
			if s.EndDate != nil && s.EndDate.After(now) {
				m.MonthlyActiveRevenue = m.MonthlyActiveRevenue.Add(s.Amount)
			}
		}

		if s.Status == SubscriptionStatusTrialing {
			m.TrialValue = m.TrialValue.Add(s.Amount)
		} else {
			m.TotalRevenue = m.TotalRevenue.Add(s.Amount)
		}

		if s.LastPaymentDate != nil {
			paid := *s.LastPaymentDate
			switch {
			case !paid.Before(currentMonth) && paid.Before(nextMonth):
				m.CurrentMonthRevenue = m.CurrentMonthRevenue.Add(s.Amount)
			case !paid.Before(previousMonth) && paid.Before(currentMonth):
				m.PreviousMonthRevenue = m.PreviousMonthRevenue.Add(s.Amount)
			}
		}
	}

	m.SubscriberGrowth = SubscriberGrowth(m.NewSubscribers, m.TotalSubscribers)
	m.Churn = ChurnRate(m.CancelledCount, m.TotalSubscribers)
	m.RevenueGrowth = RevenueGrowth(m.CurrentMonthRevenue, m.PreviousMonthRevenue)
	m.ARR = m.MonthlyActiveRevenue.Mul(monthsPerYear)
	m.ConversionRate = ConversionRate(m.ConvertedTrials, m.TrialCount)

	return m
}
