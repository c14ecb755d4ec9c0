package api

import (
	"github.com/tidepool-org/clinic-reports/analytics"
	"github.com/tidepool-org/clinic-reports/records"
)

func NewPracticeReportDto(r *analytics.PracticeReport, format analytics.FormattingConfig) PracticeReport {
	return PracticeReport{
		Id:             r.Id,
		OrganizationId: r.OrganizationId,
		GeneratedAt:    r.GeneratedAt,
		Range:          NewDateRangeDto(r.Range),
		Patients: PatientStats{
			Total:     r.Patients.Total,
			InRange:   r.Patients.InRange,
			AgeGroups: NewCategoryCountsDto(r.Patients.AgeGroups),
			Genders:   NewCategoryCountsDto(r.Patients.Genders),
		},
		Appointments: AppointmentStats{
			Total:          r.Appointments.Total,
			InRange:        r.Appointments.InRange,
			Completed:      r.Appointments.Completed,
			CompletionRate: r.Appointments.CompletionRate,
			ByType:         NewCategoryCountsDto(r.Appointments.ByType),
			ByStatus:       NewCategoryCountsDto(r.Appointments.ByStatus),
			Daily:          NewTrendDto(r.Appointments.Daily),
		},
		Revenue: RevenueStats{
			Total:                       r.Revenue.Total,
			InRange:                     r.Revenue.InRange,
			PaidCount:                   r.Revenue.PaidCount,
			PendingCount:                r.Revenue.PendingCount,
			TotalRevenue:                r.Revenue.TotalRevenue,
			FormattedTotalRevenue:       format.FormatAmount(r.Revenue.TotalRevenue),
			AverageTransaction:          r.Revenue.AverageTransaction,
			FormattedAverageTransaction: format.FormatAmount(r.Revenue.AverageTransaction),
			ByType:                      NewRevenueByTypeDto(r.Revenue.ByType, format),
			Weekly:                      NewTrendDto(r.Revenue.Weekly),
		},
		Prescriptions: PrescriptionStats{
			Total:          r.Prescriptions.Total,
			InRange:        r.Prescriptions.InRange,
			TopMedications: NewCategoryCountsDto(r.Prescriptions.TopMedications),
		},
		DegradedSources: collectionNames(r.DegradedSources),
	}
}

func NewSubscriptionReportDto(r *analytics.SubscriptionReport, format analytics.FormattingConfig) SubscriptionReport {
	organizations := make([]OrganizationStatus, 0, len(r.Organizations))
	for _, o := range r.Organizations {
		organizations = append(organizations, OrganizationStatus{
			OrganizationId: o.OrganizationId,
			Name:           o.Name,
			Status:         string(o.Status),
			DaysRemaining:  o.DaysRemaining,
			PlanName:       o.PlanName,
			EndDate:        o.EndDate,
		})
	}

	g := r.Growth
	return SubscriptionReport{
		Id:                  r.Id,
		GeneratedAt:         r.GeneratedAt,
		Range:               NewDateRangeDto(r.Range),
		TotalOrganizations:  r.TotalOrganizations,
		NewOrganizations:    r.NewOrganizations,
		ActiveOrganizations: r.ActiveOrganizations,
		Statuses:            NewCategoryCountsDto(r.Statuses),
		Organizations:       organizations,
		Plans:               NewCategoryCountsDto(r.Plans),
		Growth: GrowthMetrics{
			TotalSubscribers:     g.TotalSubscribers,
			NewSubscribers:       g.NewSubscribers,
			SubscriberGrowth:     g.SubscriberGrowth,
			CancelledCount:       g.CancelledCount,
			Churn:                g.Churn,
			CurrentMonthRevenue:  g.CurrentMonthRevenue,
			PreviousMonthRevenue: g.PreviousMonthRevenue,
			RevenueGrowth:        g.RevenueGrowth,
			MonthlyActiveRevenue: g.MonthlyActiveRevenue,
			ARR:                  g.ARR,
			FormattedARR:         format.FormatAmount(g.ARR),
			TotalRevenue:         g.TotalRevenue,
			TrialValue:           g.TrialValue,
			TrialCount:           g.TrialCount,
			ConvertedTrials:      g.ConvertedTrials,
			ConversionRate:       g.ConversionRate,
		},
		DegradedSources: collectionNames(r.DegradedSources),
	}
}

func NewDateRangeDto(r analytics.DateRange) DateRange {
	return DateRange{
		Start: r.Start,
		End:   r.End,
	}
}

func NewCategoryCountsDto(counts []analytics.CategoryCount) []CategoryCount {
	dtos := make([]CategoryCount, 0, len(counts))
	for _, c := range counts {
		dtos = append(dtos, CategoryCount{
			Category:   c.Category,
			Count:      c.Count,
			Percentage: c.Percentage,
		})
	}
	return dtos
}

func NewTrendDto(points []analytics.TrendPoint) []TrendPoint {
	dtos := make([]TrendPoint, 0, len(points))
	for _, p := range points {
		dtos = append(dtos, TrendPoint{
			Label: p.Label,
			Start: p.Start,
			End:   p.End,
			Value: p.Value,
		})
	}
	return dtos
}

func NewRevenueByTypeDto(revenue []analytics.RevenueByType, format analytics.FormattingConfig) []RevenueByType {
	dtos := make([]RevenueByType, 0, len(revenue))
	for _, r := range revenue {
		dtos = append(dtos, RevenueByType{
			Type:             r.Type,
			Revenue:          r.Revenue,
			FormattedRevenue: format.FormatAmount(r.Revenue),
			Count:            r.Count,
			Percentage:       r.Percentage,
		})
	}
	return dtos
}

func collectionNames(collections []records.Collection) []string {
	names := make([]string, 0, len(collections))
	for _, c := range collections {
		names = append(names, string(c))
	}
	return names
}
