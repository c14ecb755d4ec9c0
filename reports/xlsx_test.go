package reports_test

import (
	"bytes"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx/v3"

	"github.com/tidepool-org/clinic-reports/analytics"
	"github.com/tidepool-org/clinic-reports/records"
	"github.com/tidepool-org/clinic-reports/reports"
)

var _ = Describe("Workbooks", func() {
	generatedAt := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	dateRange := analytics.DateRange{
		Start: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
	}
	format := analytics.DefaultFormattingConfig()

	Describe("PracticeWorkbook", func() {
		var report *analytics.PracticeReport

		BeforeEach(func() {
			report = &analytics.PracticeReport{
				Id:             "report-1",
				OrganizationId: "org-1",
				GeneratedAt:    generatedAt,
				Range:          dateRange,
				Patients: analytics.PatientStats{
					Total:     10,
					InRange:   4,
					AgeGroups: []analytics.CategoryCount{{Category: "18-34", Count: 4, Percentage: 100}},
				},
				Appointments: analytics.AppointmentStats{
					Total:   20,
					InRange: 6,
					Daily:   []analytics.TrendPoint{{Label: "Mar 1", Value: 2}, {Label: "Mar 2", Value: 0}},
				},
				Revenue: analytics.RevenueStats{
					TotalRevenue:       decimal.NewFromInt(300),
					AverageTransaction: decimal.NewFromInt(150),
					ByType: []analytics.RevenueByType{
						{Type: "Consultation", Revenue: decimal.NewFromInt(100), Count: 1, Percentage: 25},
						{Type: "Procedure", Revenue: decimal.RequireFromString("200.5"), Count: 1, Percentage: 75},
					},
					Weekly: []analytics.TrendPoint{{Label: "Mar 1 - Mar 7", Value: 100}, {Label: "Mar 8 - Mar 14", Value: 200}},
				},
				Prescriptions: analytics.PrescriptionStats{
					TopMedications: []analytics.CategoryCount{{Category: "Aspirin", Count: 3, Percentage: 100}},
				},
				DegradedSources: []records.Collection{records.Payments},
			}
		})

		It("has one sheet per section", func() {
			file, err := reports.NewPracticeWorkbook(report, format).Generate()
			Expect(err).ToNot(HaveOccurred())
			Expect(sheetNames(file)).To(Equal([]string{
				reports.SheetNameSummary,
				reports.SheetNamePatients,
				reports.SheetNameAppointments,
				reports.SheetNameRevenue,
				reports.SheetNamePrescriptions,
			}))
		})

		It("writes unmodified values", func() {
			file, err := reports.NewPracticeWorkbook(report, format).Generate()
			Expect(err).ToNot(HaveOccurred())
			slices, err := file.ToSlice()
			Expect(err).ToNot(HaveOccurred())

			summary := slices[0]
			Expect(findRow(summary, "Report")[1]).To(Equal("report-1"))
			Expect(findRow(summary, "Unavailable Data")[1]).To(Equal("Payments"))
			Expect(findRow(summary, "Patients")[1:3]).To(Equal([]string{"10", "4"}))
			Expect(findRow(summary, "Total Revenue")[1]).To(Equal("300"))

			revenue := slices[3]
			Expect(findRow(revenue, "Procedure")[1]).To(Equal("200.5"))
			Expect(findRow(revenue, "Mar 8 - Mar 14")[1]).To(Equal("200"))

			appointments := slices[2]
			Expect(findRow(appointments, "Mar 2")[1]).To(Equal("0"))

			prescriptions := slices[4]
			Expect(findRow(prescriptions, "Aspirin")[1]).To(Equal("3"))
		})

		It("can be written", func() {
			file, err := reports.NewPracticeWorkbook(report, format).Generate()
			Expect(err).ToNot(HaveOccurred())
			buf := &bytes.Buffer{}
			Expect(file.Write(buf)).To(Succeed())
			Expect(buf.Len()).To(BeNumerically(">", 0))
		})
	})

	Describe("SubscriptionWorkbook", func() {
		It("lists every organization and the growth metrics", func() {
			days := 3
			end := time.Date(2024, time.March, 18, 0, 0, 0, 0, time.UTC)
			report := &analytics.SubscriptionReport{
				Id:                 "report-2",
				GeneratedAt:        generatedAt,
				Range:              dateRange,
				TotalOrganizations: 2,
				Organizations: []analytics.OrganizationStatus{
					{OrganizationId: "org-1", Name: "Acme Clinic", Status: analytics.StatusExpiringSoon, DaysRemaining: &days, PlanName: "Basic", EndDate: &end},
					{OrganizationId: "org-2", Name: "Unlimited Care", Status: analytics.StatusUnlimited},
				},
				Statuses: []analytics.CategoryCount{{Category: "ExpiringSoon", Count: 1, Percentage: 50}},
				Plans:    []analytics.CategoryCount{{Category: "Basic", Count: 1, Percentage: 100}},
				Growth: analytics.GrowthMetrics{
					ARR:            decimal.NewFromInt(1200),
					Churn:          12.5,
					ConversionRate: 50,
				},
			}

			file, err := reports.NewSubscriptionWorkbook(report, format).Generate()
			Expect(err).ToNot(HaveOccurred())
			Expect(sheetNames(file)).To(Equal([]string{
				reports.SheetNameSummary,
				reports.SheetNameOrganizations,
				reports.SheetNameStatuses,
				reports.SheetNamePlans,
			}))

			slices, err := file.ToSlice()
			Expect(err).ToNot(HaveOccurred())
			summary := slices[0]
			Expect(findRow(summary, "ARR")[1]).To(Equal("1200"))
			Expect(findRow(summary, "Churn")[1]).To(Equal("12.5"))
			Expect(findRow(summary, "Churn")[2]).To(Equal("12.5%"))
			Expect(findRow(summary, "Unavailable Data")).To(BeNil())

			organizations := slices[1]
			Expect(findRow(organizations, "Acme Clinic")).To(Equal([]string{"Acme Clinic", "org-1", "ExpiringSoon", "3", "Basic", "2024-03-18"}))
			Expect(findRow(organizations, "Unlimited Care")[2]).To(Equal("Unlimited"))
		})
	})
})

func sheetNames(file *xlsx.File) []string {
	var names []string
	for _, sh := range file.Sheets {
		names = append(names, sh.Name)
	}
	return names
}

func findRow(sheet [][]string, label string) []string {
	for _, row := range sheet {
		if len(row) > 0 && row[0] == label {
			return row
		}
	}
	return nil
}
