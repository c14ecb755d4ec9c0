package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tidepool-org/clinic-reports/records"
	"github.com/tidepool-org/clinic-reports/reports"
)

var practiceParams = struct {
	rangeParams
	OrganizationId string
}{}

var practiceCmd = &cobra.Command{
	Use:   "practice {organizationId}",
	Args:  cobra.ExactArgs(1),
	Short: "Generate a practice report for an organization",
	Long:  "The practice command summarizes patients, appointments, revenue and prescriptions of an organization for a date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		practiceParams.OrganizationId = args[0]
		return Run(practiceReport)
	},
}

func init() {
	practiceCmd.Flags().StringVar(&practiceParams.Start, "start", "", "Start date (YYYY-MM-DD), defaults to the configured number of days ago")
	practiceCmd.Flags().StringVar(&practiceParams.End, "end", "", "End date (YYYY-MM-DD), defaults to today")
	practiceCmd.Flags().StringVarP(&practiceParams.Output, "output", "o", "", "Write the report to the given xlsx file")

	rootCmd.AddCommand(practiceCmd)
}

func practiceReport(service reports.Service, logger *zap.SugaredLogger) error {
	dateRange, err := service.ParseDateRange(practiceParams.Start, practiceParams.End)
	if err != nil {
		return err
	}

	report, err := service.PracticeReport(context.TODO(), practiceParams.OrganizationId, dateRange)
	if err != nil {
		return fmt.Errorf("unable to generate practice report: %w", err)
	}
	logger.Debugw("practice report generated", "reportId", report.Id)

	format := service.Format()
	if practiceParams.Output != "" {
		file, err := reports.NewPracticeWorkbook(report, format).Generate()
		if err != nil {
			return err
		}
		return saveWorkbook(file, practiceParams.Output)
	}

	w := newTable(stdout)
	fmt.Fprintf(w, "Practice report %s for %s\n", report.Id, report.OrganizationId)
	fmt.Fprintf(w, "%s - %s\n\n", report.Range.Start.Format("2006-01-02"), report.Range.End.Format("2006-01-02"))
	fmt.Fprintf(w, "Patients\t%s\t%s\n", format.FormatCount(report.Patients.InRange), format.FormatCount(report.Patients.Total))
	fmt.Fprintf(w, "Appointments\t%s\t%s\n", format.FormatCount(report.Appointments.InRange), format.FormatCount(report.Appointments.Total))
	fmt.Fprintf(w, "Completion rate\t%s\n", format.FormatPercent(report.Appointments.CompletionRate))
	fmt.Fprintf(w, "Revenue\t%s\n", format.FormatAmount(report.Revenue.TotalRevenue))
	fmt.Fprintf(w, "Pending payments\t%s\n", format.FormatCount(report.Revenue.PendingCount))
	printCategoryCounts(w, "Age groups", report.Patients.AgeGroups, format)
	printCategoryCounts(w, "Appointment types", report.Appointments.ByType, format)
	printCategoryCounts(w, "Top medications", report.Prescriptions.TopMedications, format)
	printTrend(w, "Weekly revenue", report.Revenue.Weekly)
	printDegraded(w, collectionNames(report.DegradedSources))

	return w.Flush()
}

func collectionNames(collections []records.Collection) []string {
	names := make([]string, 0, len(collections))
	for _, c := range collections {
		names = append(names, string(c))
	}
	return names
}
