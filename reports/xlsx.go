package reports

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tidepool-org/clinic-reports/analytics"
	"github.com/tidepool-org/clinic-reports/records"
)

const (
	SheetNameSummary       = "Summary"
	SheetNamePatients      = "Patients"
	SheetNameAppointments  = "Appointments"
	SheetNameRevenue       = "Revenue"
	SheetNamePrescriptions = "Prescriptions"
	SheetNameOrganizations = "Organizations"
	SheetNameStatuses      = "Statuses"
	SheetNamePlans         = "Plans"

	TimestampFormat = time.RFC3339
	XlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type PracticeWorkbook struct {
	report *analytics.PracticeReport
	format analytics.FormattingConfig
}

func NewPracticeWorkbook(report *analytics.PracticeReport, format analytics.FormattingConfig) PracticeWorkbook {
	return PracticeWorkbook{report: report, format: format}
}

func (w PracticeWorkbook) Generate() (*xlsx.File, error) {
	file := xlsx.NewFile()

	components := []func(file *xlsx.File) error{
		w.addSummarySheet,
		w.addPatientsSheet,
		w.addAppointmentsSheet,
		w.addRevenueSheet,
		w.addPrescriptionsSheet,
	}
	for _, fn := range components {
		if err := fn(file); err != nil {
			return nil, err
		}
	}

	return file, nil
}

func (w PracticeWorkbook) addSummarySheet(file *xlsx.File) error {
	sh, err := file.AddSheet(SheetNameSummary)
	if err != nil {
		return err
	}

	r := w.report
	addHeader(sh, r.Id, r.GeneratedAt, r.Range, r.DegradedSources)
	addLabeledString(sh, "Organization", r.OrganizationId)
	sh.AddRow()

	addColumns(sh, "Records", "Total", "In Range")
	addTotals(sh, "Patients", r.Patients.Total, r.Patients.InRange)
	addTotals(sh, "Appointments", r.Appointments.Total, r.Appointments.InRange)
	addTotals(sh, "Payments", r.Revenue.Total, r.Revenue.InRange)
	addTotals(sh, "Prescriptions", r.Prescriptions.Total, r.Prescriptions.InRange)
	sh.AddRow()

	addAmount(sh, w.format, "Total Revenue", r.Revenue.TotalRevenue)
	addAmount(sh, w.format, "Average Transaction", r.Revenue.AverageTransaction)
	addLabeledInt(sh, "Paid Payments", r.Revenue.PaidCount)
	addLabeledInt(sh, "Pending Payments", r.Revenue.PendingCount)
	addLabeledInt(sh, "Completed Appointments", r.Appointments.Completed)
	addPercentage(sh, w.format, "Completion Rate", r.Appointments.CompletionRate)

	return nil
}

func (w PracticeWorkbook) addPatientsSheet(file *xlsx.File) error {
	sh, err := file.AddSheet(SheetNamePatients)
	if err != nil {
		return err
	}

	addCategoryCounts(sh, "Age Group", w.report.Patients.AgeGroups)
	sh.AddRow()
	addCategoryCounts(sh, "Gender", w.report.Patients.Genders)
	return nil
}

func (w PracticeWorkbook) addAppointmentsSheet(file *xlsx.File) error {
	sh, err := file.AddSheet(SheetNameAppointments)
	if err != nil {
		return err
	}

	addCategoryCounts(sh, "Type", w.report.Appointments.ByType)
	sh.AddRow()
	addCategoryCounts(sh, "Status", w.report.Appointments.ByStatus)
	sh.AddRow()
	addTrend(sh, "Day", "Appointments", w.report.Appointments.Daily)
	return nil
}

func (w PracticeWorkbook) addRevenueSheet(file *xlsx.File) error {
	sh, err := file.AddSheet(SheetNameRevenue)
	if err != nil {
		return err
	}

	addColumns(sh, "Type", "Revenue", "Formatted", "Payments", "Percentage")
	for _, t := range w.report.Revenue.ByType {
		row := sh.AddRow()
		row.AddCell().SetString(t.Type)
		row.AddCell().SetFloat(t.Revenue.InexactFloat64())
		row.AddCell().SetString(w.format.FormatAmount(t.Revenue))
		row.AddCell().SetInt(t.Count)
		row.AddCell().SetFloat(t.Percentage)
	}
	sh.AddRow()
	addTrend(sh, "Week", "Revenue", w.report.Revenue.Weekly)
	return nil
}

func (w PracticeWorkbook) addPrescriptionsSheet(file *xlsx.File) error {
	sh, err := file.AddSheet(SheetNamePrescriptions)
	if err != nil {
		return err
	}

	addCategoryCounts(sh, "Medication", w.report.Prescriptions.TopMedications)
	return nil
}

type SubscriptionWorkbook struct {
	report *analytics.SubscriptionReport
	format analytics.FormattingConfig
}

func NewSubscriptionWorkbook(report *analytics.SubscriptionReport, format analytics.FormattingConfig) SubscriptionWorkbook {
	return SubscriptionWorkbook{report: report, format: format}
}

func (w SubscriptionWorkbook) Generate() (*xlsx.File, error) {
	file := xlsx.NewFile()

	components := []func(file *xlsx.File) error{
		w.addSummarySheet,
		w.addOrganizationsSheet,
		w.addStatusesSheet,
		w.addPlansSheet,
	}
	for _, fn := range components {
		if err := fn(file); err != nil {
			return nil, err
		}
	}

	return file, nil
}

func (w SubscriptionWorkbook) addSummarySheet(file *xlsx.File) error {
	sh, err := file.AddSheet(SheetNameSummary)
	if err != nil {
		return err
	}

	r := w.report
	g := r.Growth
	addHeader(sh, r.Id, r.GeneratedAt, r.Range, r.DegradedSources)
	sh.AddRow()

	addLabeledInt(sh, "Organizations", r.TotalOrganizations)
	addLabeledInt(sh, "Active Organizations", r.ActiveOrganizations)
	addLabeledInt(sh, "New Organizations", r.NewOrganizations)
	addLabeledInt(sh, "Subscriptions", g.TotalSubscribers)
	addLabeledInt(sh, "New Subscriptions", g.NewSubscribers)
	addPercentage(sh, w.format, "Subscriber Growth", g.SubscriberGrowth)
	addLabeledInt(sh, "Cancelled Subscriptions", g.CancelledCount)
	addPercentage(sh, w.format, "Churn", g.Churn)
	sh.AddRow()

	addAmount(sh, w.format, "Current Month Revenue", g.CurrentMonthRevenue)
	addAmount(sh, w.format, "Previous Month Revenue", g.PreviousMonthRevenue)
	addPercentage(sh, w.format, "Revenue Growth", g.RevenueGrowth)
	addAmount(sh, w.format, "Monthly Active Revenue", g.MonthlyActiveRevenue)
	addAmount(sh, w.format, "ARR", g.ARR)
	addAmount(sh, w.format, "Total Revenue", g.TotalRevenue)
	addAmount(sh, w.format, "Trial Value", g.TrialValue)
	sh.AddRow()

	addLabeledInt(sh, "Trials", g.TrialCount)
	addLabeledInt(sh, "Converted Trials", g.ConvertedTrials)
	addPercentage(sh, w.format, "Conversion Rate", g.ConversionRate)

	return nil
}

func (w SubscriptionWorkbook) addOrganizationsSheet(file *xlsx.File) error {
	sh, err := file.AddSheet(SheetNameOrganizations)
	if err != nil {
		return err
	}

	addColumns(sh, "Organization", "Id", "Status", "Days Remaining", "Plan", "End Date")
	for _, o := range w.report.Organizations {
		row := sh.AddRow()
		row.AddCell().SetString(o.Name)
		row.AddCell().SetString(o.OrganizationId)
		row.AddCell().SetString(string(o.Status))
		if o.DaysRemaining != nil {
			row.AddCell().SetInt(*o.DaysRemaining)
		} else {
			row.AddCell()
		}
		row.AddCell().SetString(o.PlanName)
		if o.EndDate != nil {
			row.AddCell().SetString(o.EndDate.Format(analytics.DateLayout))
		} else {
			row.AddCell()
		}
	}
	return nil
}

func (w SubscriptionWorkbook) addStatusesSheet(file *xlsx.File) error {
	sh, err := file.AddSheet(SheetNameStatuses)
	if err != nil {
		return err
	}

	addCategoryCounts(sh, "Status", w.report.Statuses)
	return nil
}

func (w SubscriptionWorkbook) addPlansSheet(file *xlsx.File) error {
	sh, err := file.AddSheet(SheetNamePlans)
	if err != nil {
		return err
	}

	addCategoryCounts(sh, "Plan", w.report.Plans)
	return nil
}

func addHeader(sh *xlsx.Sheet, id string, generatedAt time.Time, dateRange analytics.DateRange, degraded []records.Collection) {
	addLabeledString(sh, "Report", id)
	addLabeledString(sh, "Report Generated", generatedAt.Format(TimestampFormat))
	addLabeledString(sh, "Start", dateRange.Start.Format(TimestampFormat))
	addLabeledString(sh, "End", dateRange.End.Format(TimestampFormat))
	if len(degraded) > 0 {
		addLabeledString(sh, "Unavailable Data", degradedNames(degraded))
	}
}

func degradedNames(degraded []records.Collection) string {
	caser := cases.Title(language.English)
	names := make([]string, 0, len(degraded))
	for _, c := range degraded {
		names = append(names, caser.String(string(c)))
	}
	return strings.Join(names, ", ")
}

func addColumns(sh *xlsx.Sheet, columns ...string) {
	row := sh.AddRow()
	for _, c := range columns {
		row.AddCell().SetString(c)
	}
}

func addLabeledString(sh *xlsx.Sheet, label string, value string) {
	row := sh.AddRow()
	row.AddCell().SetString(label)
	row.AddCell().SetString(value)
}

func addLabeledInt(sh *xlsx.Sheet, label string, value int) {
	row := sh.AddRow()
	row.AddCell().SetString(label)
	row.AddCell().SetInt(value)
}

func addTotals(sh *xlsx.Sheet, label string, total int, inRange int) {
	row := sh.AddRow()
	row.AddCell().SetString(label)
	row.AddCell().SetInt(total)
	row.AddCell().SetInt(inRange)
}

func addAmount(sh *xlsx.Sheet, format analytics.FormattingConfig, label string, value decimal.Decimal) {
	row := sh.AddRow()
	row.AddCell().SetString(label)
	row.AddCell().SetFloat(value.InexactFloat64())
	row.AddCell().SetString(format.FormatAmount(value))
}

func addPercentage(sh *xlsx.Sheet, format analytics.FormattingConfig, label string, value float64) {
	row := sh.AddRow()
	row.AddCell().SetString(label)
	row.AddCell().SetFloat(value)
	row.AddCell().SetString(format.FormatPercent(value))
}

func addCategoryCounts(sh *xlsx.Sheet, title string, counts []analytics.CategoryCount) {
	addColumns(sh, title, "Count", "Percentage")
	for _, c := range counts {
		row := sh.AddRow()
		row.AddCell().SetString(c.Category)
		row.AddCell().SetInt(c.Count)
		row.AddCell().SetFloat(c.Percentage)
	}
}

func addTrend(sh *xlsx.Sheet, title string, value string, points []analytics.TrendPoint) {
	addColumns(sh, title, value)
	for _, p := range points {
		row := sh.AddRow()
		row.AddCell().SetString(p.Label)
		row.AddCell().SetFloat(p.Value)
	}
}
