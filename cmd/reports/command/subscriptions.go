package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tidepool-org/clinic-reports/reports"
)

var subscriptionsParams = rangeParams{}

var subscriptionsCmd = &cobra.Command{
	Use:   "subscriptions",
	Short: "Generate the subscription analytics report",
	Long:  "The subscriptions command classifies every organization's subscription and computes growth, churn, ARR and trial conversion",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(subscriptionsReport) },
}

func init() {
	subscriptionsCmd.Flags().StringVar(&subscriptionsParams.Start, "start", "", "Start date (YYYY-MM-DD), defaults to the configured number of days ago")
	subscriptionsCmd.Flags().StringVar(&subscriptionsParams.End, "end", "", "End date (YYYY-MM-DD), defaults to today")
	subscriptionsCmd.Flags().StringVarP(&subscriptionsParams.Output, "output", "o", "", "Write the report to the given xlsx file")

	rootCmd.AddCommand(subscriptionsCmd)
}

func subscriptionsReport(service reports.Service, logger *zap.SugaredLogger) error {
	dateRange, err := service.ParseDateRange(subscriptionsParams.Start, subscriptionsParams.End)
	if err != nil {
		return err
	}

	report, err := service.SubscriptionReport(context.TODO(), dateRange)
	if err != nil {
		return fmt.Errorf("unable to generate subscription report: %w", err)
	}
	logger.Debugw("subscription report generated", "reportId", report.Id)

	format := service.Format()
	if subscriptionsParams.Output != "" {
		file, err := reports.NewSubscriptionWorkbook(report, format).Generate()
		if err != nil {
			return err
		}
		return saveWorkbook(file, subscriptionsParams.Output)
	}

	g := report.Growth
	w := newTable(stdout)
	fmt.Fprintf(w, "Subscription report %s\n\n", report.Id)
	fmt.Fprintf(w, "Organizations\t%s\n", format.FormatCount(report.TotalOrganizations))
	fmt.Fprintf(w, "New organizations\t%s\n", format.FormatCount(report.NewOrganizations))
	fmt.Fprintf(w, "Subscriber growth\t%s\n", format.FormatPercent(g.SubscriberGrowth))
	fmt.Fprintf(w, "Churn\t%s\n", format.FormatPercent(g.Churn))
	fmt.Fprintf(w, "Revenue growth\t%s\n", format.FormatPercent(g.RevenueGrowth))
	fmt.Fprintf(w, "ARR\t%s\n", format.FormatAmount(g.ARR))
	fmt.Fprintf(w, "Trial value\t%s\n", format.FormatAmount(g.TrialValue))
	fmt.Fprintf(w, "Conversion rate\t%s\n", format.FormatPercent(g.ConversionRate))
	printCategoryCounts(w, "Statuses", report.Statuses, format)
	printCategoryCounts(w, "Plans", report.Plans, format)

	fmt.Fprintf(w, "\nOrganizations\n")
	for _, o := range report.Organizations {
		days := ""
		if o.DaysRemaining != nil {
			days = fmt.Sprintf("%d days", *o.DaysRemaining)
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", o.Name, o.Status, o.PlanName, days)
	}
	printDegraded(w, collectionNames(report.DegradedSources))

	return w.Flush()
}
