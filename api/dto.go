package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// Monetary values are serialized as decimal strings.

type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type CategoryCount struct {
	Category   string  `json:"category"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type TrendPoint struct {
	Label string    `json:"label"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Value float64   `json:"value"`
}

type RevenueByType struct {
	Type             string          `json:"type"`
	Revenue          decimal.Decimal `json:"revenue"`
	FormattedRevenue string          `json:"formattedRevenue"`
	Count            int             `json:"count"`
	Percentage       float64         `json:"percentage"`
}

type PatientStats struct {
	Total     int             `json:"total"`
	InRange   int             `json:"inRange"`
	AgeGroups []CategoryCount `json:"ageGroups"`
	Genders   []CategoryCount `json:"genders"`
}

type AppointmentStats struct {
	Total          int             `json:"total"`
	InRange        int             `json:"inRange"`
	Completed      int             `json:"completed"`
	CompletionRate float64         `json:"completionRate"`
	ByType         []CategoryCount `json:"byType"`
	ByStatus       []CategoryCount `json:"byStatus"`
	Daily          []TrendPoint    `json:"daily"`
}

type RevenueStats struct {
	Total                       int             `json:"total"`
	InRange                     int             `json:"inRange"`
	PaidCount                   int             `json:"paidCount"`
	PendingCount                int             `json:"pendingCount"`
	TotalRevenue                decimal.Decimal `json:"totalRevenue"`
	FormattedTotalRevenue       string          `json:"formattedTotalRevenue"`
	AverageTransaction          decimal.Decimal `json:"averageTransaction"`
	FormattedAverageTransaction string          `json:"formattedAverageTransaction"`
	ByType                      []RevenueByType `json:"byType"`
	Weekly                      []TrendPoint    `json:"weekly"`
}

type PrescriptionStats struct {
	Total          int             `json:"total"`
	InRange        int             `json:"inRange"`
	TopMedications []CategoryCount `json:"topMedications"`
}

type PracticeReport struct {
	Id              string            `json:"id"`
	OrganizationId  string            `json:"organizationId"`
	GeneratedAt     time.Time         `json:"generatedAt"`
	Range           DateRange         `json:"range"`
	Patients        PatientStats      `json:"patients"`
	Appointments    AppointmentStats  `json:"appointments"`
	Revenue         RevenueStats      `json:"revenue"`
	Prescriptions   PrescriptionStats `json:"prescriptions"`
	DegradedSources []string          `json:"degradedSources"`
}

type OrganizationStatus struct {
	OrganizationId string     `json:"organizationId"`
	Name           string     `json:"name"`
	Status         string     `json:"status"`
	DaysRemaining  *int       `json:"daysRemaining,omitempty"`
	PlanName       string     `json:"planName,omitempty"`
	EndDate        *time.Time `json:"endDate,omitempty"`
}

type GrowthMetrics struct {
	TotalSubscribers     int             `json:"totalSubscribers"`
	NewSubscribers       int             `json:"newSubscribers"`
	SubscriberGrowth     float64         `json:"subscriberGrowth"`
	CancelledCount       int             `json:"cancelledCount"`
	Churn                float64         `json:"churn"`
	CurrentMonthRevenue  decimal.Decimal `json:"currentMonthRevenue"`
	PreviousMonthRevenue decimal.Decimal `json:"previousMonthRevenue"`
	RevenueGrowth        float64         `json:"revenueGrowth"`
	MonthlyActiveRevenue decimal.Decimal `json:"monthlyActiveRevenue"`
	ARR                  decimal.Decimal `json:"arr"`
	FormattedARR         string          `json:"formattedArr"`
	TotalRevenue         decimal.Decimal `json:"totalRevenue"`
	TrialValue           decimal.Decimal `json:"trialValue"`
	TrialCount           int             `json:"trialCount"`
	ConvertedTrials      int             `json:"convertedTrials"`
	ConversionRate       float64         `json:"conversionRate"`
}

type SubscriptionReport struct {
	Id                  string               `json:"id"`
	GeneratedAt         time.Time            `json:"generatedAt"`
	Range               DateRange            `json:"range"`
	TotalOrganizations  int                  `json:"totalOrganizations"`
	NewOrganizations    int                  `json:"newOrganizations"`
	ActiveOrganizations int                  `json:"activeOrganizations"`
	Statuses            []CategoryCount      `json:"statuses"`
	Organizations       []OrganizationStatus `json:"organizations"`
	Plans               []CategoryCount      `json:"plans"`
	Growth              GrowthMetrics        `json:"growth"`
	DegradedSources     []string             `json:"degradedSources"`
}
