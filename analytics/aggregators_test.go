package analytics_test

import (
	"fmt"
	"math"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/tidepool-org/clinic-reports/analytics"
	"github.com/tidepool-org/clinic-reports/records"
)

var _ = Describe("Aggregators", func() {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	Describe("Percentage", func() {
		It("is zero when the total is zero", func() {
			Expect(analytics.Percentage(0, 0)).To(Equal(0.0))
			Expect(analytics.Percentage(5, 0)).To(Equal(0.0))
			Expect(analytics.Percentage(5, -1)).To(Equal(0.0))
		})

		It("is never a non finite number", func() {
			Expect(math.IsNaN(analytics.Percentage(math.NaN(), 10))).To(BeFalse())
			Expect(math.IsInf(analytics.Percentage(math.Inf(1), 10), 0)).To(BeFalse())
		})

		It("computes the share", func() {
			Expect(analytics.Percentage(1, 4)).To(Equal(25.0))
		})
	})

	Describe("Patients", func() {
		It("keeps an empty gender as its own category", func() {
			Expect(analytics.PatientGender(records.Record{"gender": "", "sex": "F"})).To(Equal(""))
			Expect(analytics.PatientGender(records.Record{"sex": "F"})).To(Equal("F"))
			Expect(analytics.PatientGender(records.Record{})).To(Equal(analytics.GenderUnknown))
		})

		DescribeTable("age groups",
			func(age interface{}, expected string) {
				r := records.Record{}
				if age != nil {
					r["age"] = age
				}
				Expect(analytics.AgeGroup(analytics.PatientAge(r, now))).To(Equal(expected))
			},
			Entry("newborn", 0, analytics.AgeGroupChildren),
			Entry("17", 17, analytics.AgeGroupChildren),
			Entry("18", 18, analytics.AgeGroupYoungAdults),
			Entry("34", 34, analytics.AgeGroupYoungAdults),
			Entry("35", 35, analytics.AgeGroupAdults),
			Entry("49", 49, analytics.AgeGroupAdults),
			Entry("50", 50, analytics.AgeGroupMiddleAged),
			Entry("64", 64, analytics.AgeGroupMiddleAged),
			Entry("65", 65, analytics.AgeGroupSeniors),
			Entry("101", 101, analytics.AgeGroupSeniors),
			Entry("numeric string", "42", analytics.AgeGroupAdults),
			Entry("fractional", 17.9, analytics.AgeGroupChildren),
			Entry("missing", nil, analytics.AgeGroupUnknown),
			Entry("not a number", "forty", analytics.AgeGroupUnknown),
		)

		It("derives the age from the date of birth", func() {
			age, ok := analytics.PatientAge(records.Record{"dateOfBirth": "1990-03-16"}, now)
			Expect(ok).To(BeTrue())
			Expect(age).To(Equal(33))

			age, ok = analytics.PatientAge(records.Record{"dob": "1990-03-15"}, now)
			Expect(ok).To(BeTrue())
			Expect(age).To(Equal(34))

			_, ok = analytics.PatientAge(records.Record{"birthDate": "2030-01-01"}, now)
			Expect(ok).To(BeFalse())
		})

		It("emits age groups in band order and omits empty bands", func() {
			inRange := []records.Record{
				{"age": 70, "gender": "Female"},
				{"age": 10, "sex": "Male"},
				{"gender": "Female"},
				{"age": 20},
			}
			stats := analytics.AggregatePatients(append(inRange, records.Record{"age": 40}), inRange, now)
			Expect(stats.Total).To(Equal(5))
			Expect(stats.InRange).To(Equal(4))
			Expect(stats.AgeGroups).To(Equal([]analytics.CategoryCount{
				{Category: analytics.AgeGroupChildren, Count: 1, Percentage: 25},
				{Category: analytics.AgeGroupYoungAdults, Count: 1, Percentage: 25},
				{Category: analytics.AgeGroupSeniors, Count: 1, Percentage: 25},
				{Category: analytics.AgeGroupUnknown, Count: 1, Percentage: 25},
			}))
			Expect(stats.Genders).To(Equal([]analytics.CategoryCount{
				{Category: "Female", Count: 2, Percentage: 50},
				{Category: "Male", Count: 1, Percentage: 25},
				{Category: analytics.GenderUnknown, Count: 1, Percentage: 25},
			}))
		})
	})

	Describe("Appointments", func() {
		DescribeTable("falls back from type to appointmentType to General",
			func(r records.Record, expected string) {
				Expect(analytics.AppointmentType(r)).To(Equal(expected))
			},
			Entry("type", records.Record{"type": "Consultation", "appointmentType": "Surgery"}, "Consultation"),
			Entry("appointmentType", records.Record{"appointmentType": "Surgery"}, "Surgery"),
			Entry("null type", records.Record{"type": nil, "appointmentType": "Surgery"}, "Surgery"),
			Entry("empty type is kept", records.Record{"type": "", "appointmentType": "Surgery"}, ""),
			Entry("neither", records.Record{}, analytics.AppointmentTypeGeneral),
		)

		It("counts types, statuses and completions", func() {
			inRange := []records.Record{
				{"type": "Consultation", "status": "Completed"},
				{"appointmentType": "Follow-up", "status": "completed"},
				{"type": "Consultation", "status": "Scheduled"},
				{},
			}
			stats := analytics.AggregateAppointments(inRange, inRange)
			Expect(stats.Completed).To(Equal(2))
			Expect(stats.CompletionRate).To(Equal(50.0))
			Expect(stats.ByType).To(Equal([]analytics.CategoryCount{
				{Category: "Consultation", Count: 2, Percentage: 50},
				{Category: "Follow-up", Count: 1, Percentage: 25},
				{Category: analytics.AppointmentTypeGeneral, Count: 1, Percentage: 25},
			}))
			Expect(stats.ByStatus).To(HaveLen(4))
			Expect(stats.ByStatus[3].Category).To(Equal(analytics.AppointmentStatusUnknown))
		})

		It("has a zero completion rate without appointments", func() {
			stats := analytics.AggregateAppointments(nil, nil)
			Expect(stats.CompletionRate).To(Equal(0.0))
			Expect(stats.ByType).To(BeEmpty())
		})
	})

	Describe("Revenue", func() {
		It("only counts paid and completed payments", func() {
			payments := []records.Record{
				{"amount": 100, "status": "Paid", "date": "2024-03-02", "description": "Consultation"},
				{"amount": 50, "status": "Pending", "date": "2024-03-02", "description": "Consultation"},
				{"amount": 200, "status": "Completed", "date": "2024-03-09", "description": "Procedure"},
			}
			stats := analytics.AggregateRevenue(payments, payments)
			Expect(stats.TotalRevenue.Equal(decimal.NewFromInt(300))).To(BeTrue())
			Expect(stats.PaidCount).To(Equal(2))
			Expect(stats.PendingCount).To(Equal(1))
			Expect(stats.AverageTransaction.Equal(decimal.NewFromInt(150))).To(BeTrue())

			Expect(stats.ByType).To(HaveLen(2))
			Expect(stats.ByType[0].Type).To(Equal("Consultation"))
			Expect(stats.ByType[0].Revenue.Equal(decimal.NewFromInt(100))).To(BeTrue())
			Expect(stats.ByType[0].Count).To(Equal(1))
			Expect(stats.ByType[0].Percentage).To(BeNumerically("~", 100.0/3, 1e-9))
			Expect(stats.ByType[1].Type).To(Equal("Procedure"))
			Expect(stats.ByType[1].Revenue.Equal(decimal.NewFromInt(200))).To(BeTrue())
		})

		DescribeTable("paid statuses are matched case sensitively",
			func(status interface{}, paid bool) {
				Expect(analytics.IsPaid(records.Record{"status": status})).To(Equal(paid))
			},
			Entry("Paid", "Paid", true),
			Entry("Completed", "Completed", true),
			Entry("paid", "paid", true),
			Entry("PAID", "PAID", false),
			Entry("completed", "completed", false),
			Entry("Pending", "Pending", false),
			Entry("missing", nil, false),
		)

		DescribeTable("falls back from description to payment method to Unknown",
			func(r records.Record, expected string) {
				Expect(analytics.PaymentType(r)).To(Equal(expected))
			},
			Entry("description", records.Record{"description": "Lab", "paymentMethod": "Card"}, "Lab"),
			Entry("paymentMethod", records.Record{"paymentMethod": "Card"}, "Card"),
			Entry("null description", records.Record{"description": nil, "paymentMethod": "Card"}, "Card"),
			Entry("empty description is kept", records.Record{"description": "", "paymentMethod": "Card"}, ""),
			Entry("neither", records.Record{}, analytics.PaymentTypeUnknown),
		)

		It("reads amounts from numbers and strings", func() {
			Expect(analytics.PaymentAmount(records.Record{"amount": "19.99"}).String()).To(Equal("19.99"))
			Expect(analytics.PaymentAmount(records.Record{"amount": 19.99}).String()).To(Equal("19.99"))
			Expect(analytics.PaymentAmount(records.Record{"amount": int64(20)}).String()).To(Equal("20"))
			Expect(analytics.PaymentAmount(records.Record{"amount": "n/a"}).IsZero()).To(BeTrue())
			Expect(analytics.PaymentAmount(records.Record{}).IsZero()).To(BeTrue())
		})

		It("is zero without paid payments", func() {
			stats := analytics.AggregateRevenue(nil, []records.Record{{"amount": 10, "status": "Pending"}})
			Expect(stats.TotalRevenue.IsZero()).To(BeTrue())
			Expect(stats.AverageTransaction.IsZero()).To(BeTrue())
			Expect(stats.ByType).To(BeEmpty())
		})
	})

	Describe("Prescriptions", func() {
		DescribeTable("medication shapes",
			func(r records.Record) {
				Expect(analytics.MedicationNames(r)).To(Equal([]string{"Aspirin"}))
			},
			Entry("array of objects", records.Record{"medications": []interface{}{map[string]interface{}{"name": "Aspirin"}}}),
			Entry("array of strings", records.Record{"medications": []interface{}{"Aspirin"}}),
			Entry("bson array of documents", records.Record{"medications": bson.A{bson.M{"name": "Aspirin", "dosage": "81mg"}}}),
			Entry("bson document list", records.Record{"medications": bson.A{bson.D{{Key: "name", Value: "Aspirin"}}}}),
			Entry("single object", records.Record{"medication": map[string]interface{}{"name": "Aspirin"}}),
			Entry("single string", records.Record{"medication": "Aspirin"}),
		)

		It("counts each shape exactly once", func() {
			inRange := []records.Record{
				{"medications": []interface{}{map[string]interface{}{"name": "Aspirin"}}},
				{"medications": []string{"Aspirin"}},
				{"medication": map[string]interface{}{"name": "Aspirin"}},
				{"medication": "Aspirin"},
			}
			stats := analytics.AggregatePrescriptions(inRange, inRange)
			Expect(stats.TopMedications).To(Equal([]analytics.CategoryCount{
				{Category: "Aspirin", Count: 4, Percentage: 100},
			}))
		})

		It("skips empty entries", func() {
			r := records.Record{"medications": []interface{}{"", nil, map[string]interface{}{"name": ""}, map[string]interface{}{"dosage": "5mg"}, "Metformin"}}
			Expect(analytics.MedicationNames(r)).To(Equal([]string{"Metformin"}))
			Expect(analytics.MedicationNames(records.Record{"medication": ""})).To(BeEmpty())
			Expect(analytics.MedicationNames(records.Record{})).To(BeEmpty())
		})

		It("keeps the ten most prescribed breaking ties by first appearance", func() {
			var inRange []records.Record
			for i := 0; i < 12; i++ {
				inRange = append(inRange, records.Record{"medication": fmt.Sprintf("med-%d", i)})
			}
			inRange = append(inRange, records.Record{"medications": []string{"med-5", "med-5"}})

			top := analytics.AggregatePrescriptions(inRange, inRange).TopMedications
			Expect(top).To(HaveLen(analytics.TopMedicationsCount))

			var names []string
			for _, m := range top {
				names = append(names, m.Category)
			}
			Expect(names).To(Equal([]string{"med-5", "med-0", "med-1", "med-2", "med-3", "med-4", "med-6", "med-7", "med-8", "med-9"}))
			Expect(top[0].Count).To(Equal(3))
		})
	})
})
