package analytics_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/tidepool-org/clinic-reports/analytics"
)

var _ = Describe("Growth", func() {
	It("has zero subscriber growth without previous subscribers", func() {
		Expect(analytics.SubscriberGrowth(0, 0)).To(Equal(0.0))
		Expect(analytics.SubscriberGrowth(3, 3)).To(Equal(0.0))
		Expect(analytics.SubscriberGrowth(2, 10)).To(Equal(25.0))
	})

	It("computes churn", func() {
		Expect(analytics.ChurnRate(0, 0)).To(Equal(0.0))
		Expect(analytics.ChurnRate(1, 4)).To(Equal(25.0))
	})

	It("has zero revenue growth without revenue in the previous month", func() {
		Expect(analytics.RevenueGrowth(decimal.NewFromInt(500), decimal.Zero)).To(Equal(0.0))
		Expect(analytics.RevenueGrowth(decimal.NewFromInt(150), decimal.NewFromInt(100))).To(Equal(50.0))
		Expect(analytics.RevenueGrowth(decimal.NewFromInt(50), decimal.NewFromInt(100))).To(Equal(-50.0))
	})

	It("computes conversion from trialing and converted subscriptions", func() {
		Expect(analytics.ConversionRate(0, 0)).To(Equal(0.0))
		Expect(analytics.ConversionRate(1, 3)).To(Equal(25.0))
	})

	Describe("CalculateGrowth", func() {
		now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
		at := func(year int, month time.Month, day int) *time.Time {
			t := date(year, month, day)
			return &t
		}

		It("derives all metrics", func() {
			subscriptions := []analytics.SubscriptionSnapshot{
				{
					Status:          analytics.SubscriptionStatusActive,
					Amount:          decimal.NewFromInt(100),
					EndDate:         at(2024, time.April, 15),
					TrialEndDate:    at(2024, time.February, 1),
					LastPaymentDate: at(2024, time.March, 1),
				},
				{
					Status:          analytics.SubscriptionStatusActive,
					Amount:          decimal.NewFromInt(50),
					EndDate:         at(2024, time.March, 1),
					LastPaymentDate: at(2024, time.February, 10),
				},
				{
					Status:  analytics.SubscriptionStatusTrialing,
					Amount:  decimal.NewFromInt(30),
					EndDate: at(2024, time.March, 30),
				},
				{
					Status:          analytics.SubscriptionStatusCancelled,
					Amount:          decimal.NewFromInt(20),
					LastPaymentDate: at(2024, time.February, 20),
				},
			}

			m := analytics.CalculateGrowth(subscriptions, 1, now)
			Expect(m.TotalSubscribers).To(Equal(4))
			Expect(m.SubscriberGrowth).To(BeNumerically("~", 100.0/3, 1e-9))
			Expect(m.CancelledCount).To(Equal(1))
			Expect(m.Churn).To(Equal(25.0))
			Expect(m.CurrentMonthRevenue.Equal(decimal.NewFromInt(100))).To(BeTrue())
			Expect(m.PreviousMonthRevenue.Equal(decimal.NewFromInt(70))).To(BeTrue())
			Expect(m.RevenueGrowth).To(BeNumerically("~", 30.0/70*100, 1e-9))
			Expect(m.MonthlyActiveRevenue.Equal(decimal.NewFromInt(100))).To(BeTrue())
			Expect(m.ARR.Equal(decimal.NewFromInt(1200))).To(BeTrue())
			Expect(m.TotalRevenue.Equal(decimal.NewFromInt(170))).To(BeTrue())
			Expect(m.TrialValue.Equal(decimal.NewFromInt(30))).To(BeTrue())
			Expect(m.TrialCount).To(Equal(1))
			Expect(m.ConvertedTrials).To(Equal(1))
			Expect(m.ConversionRate).To(Equal(50.0))
		})

		It("is all zero without subscriptions", func() {
			m := analytics.CalculateGrowth(nil, 0, now)
			Expect(m.SubscriberGrowth).To(Equal(0.0))
			Expect(m.Churn).To(Equal(0.0))
			Expect(m.RevenueGrowth).To(Equal(0.0))
			Expect(m.ConversionRate).To(Equal(0.0))
			Expect(m.ARR.IsZero()).To(BeTrue())
		})
	})
})
