package analytics

import (
	"time"

	"github.com/google/uuid"

	"github.com/tidepool-org/clinic-reports/records"
)

type PracticeInput struct {
	Patients        []records.Record
	Appointments    []records.Record
	Prescriptions   []records.Record
	Payments        []records.Record
	DegradedSources []records.Collection
}

type PracticeReport struct {
	Id              string
	OrganizationId  string
	GeneratedAt     time.Time
	Range           DateRange
	Patients        PatientStats
	Appointments    AppointmentStats
	Revenue         RevenueStats
	Prescriptions   PrescriptionStats
	DegradedSources []records.Collection
}

type SubscriptionInput struct {
	Organizations   []records.Record
	Subscriptions   []records.Record
	DegradedSources []records.Collection
}

type OrganizationStatus struct {
	OrganizationId string
	Name           string
	Status         ClassifiedStatus
	DaysRemaining  *int
	PlanName       string
	EndDate        *time.Time
}

type SubscriptionReport struct {
	Id                  string
	GeneratedAt         time.Time
	Range               DateRange
	TotalOrganizations  int
	NewOrganizations    int
	ActiveOrganizations int
	Statuses            []CategoryCount
	Organizations       []OrganizationStatus
	Plans               []CategoryCount
	Growth              GrowthMetrics
	DegradedSources     []records.Collection
}

// Assembler builds reports from record snapshots. It holds no per-report state and
// can be shared between requests.
type Assembler struct {
	format FormattingConfig
	clock  Clock
}

func NewAssembler(format FormattingConfig, clock Clock) *Assembler {
	if clock == nil {
		clock = NewSystemClock()
	}
	return &Assembler{
		format: format,
		clock:  clock,
	}
}

func (a *Assembler) Format() FormattingConfig {
	return a.format
}

func (a *Assembler) now() time.Time {
	return a.clock.Now().In(a.format.location())
}

func (a *Assembler) PracticeReport(organizationId string, in PracticeInput, dr DateRange) PracticeReport {
	now := a.now()

	patients := FilterInRange(in.Patients, dr, PatientDateFields)
	appointments := FilterInRange(in.Appointments, dr, AppointmentDateFields)
	prescriptions := FilterInRange(in.Prescriptions, dr, PrescriptionDateFields)
	payments := FilterInRange(in.Payments, dr, PaymentDateFields)

	report := PracticeReport{
		Id:              uuid.NewString(),
		OrganizationId:  organizationId,
		GeneratedAt:     now,
		Range:           dr,
		Patients:        AggregatePatients(in.Patients, patients, now),
		Appointments:    AggregateAppointments(in.Appointments, appointments),
		Revenue:         AggregateRevenue(in.Payments, payments),
		Prescriptions:   AggregatePrescriptions(in.Prescriptions, prescriptions),
		DegradedSources: copyCollections(in.DegradedSources),
	}
	report.Appointments.Daily = DailyCounts(dr, a.format, appointments, AppointmentDateFields)
	report.Revenue.Weekly = WeeklySums(dr, a.format, payments, PaymentDateFields, PaidRevenue)

	return report
}

func (a *Assembler) SubscriptionReport(in SubscriptionInput, dr DateRange) SubscriptionReport {
	now := a.now()

	subscriptions := make([]SubscriptionSnapshot, 0, len(in.Subscriptions))
	plans := newTally()
	for _, r := range in.Subscriptions {
		// Partially decoded subscriptions are still counted.
		s, _ := DecodeSubscription(r)
		subscriptions = append(subscriptions, s)
		plans.add(s.PlanName)
	}
	latest := LatestSubscriptions(subscriptions)

	statuses := map[ClassifiedStatus]int{}
	organizations := make([]OrganizationStatus, 0, len(in.Organizations))
	active := 0
	for _, r := range in.Organizations {
		org := DecodeOrganization(r)
		var sub *SubscriptionSnapshot
		if s, ok := latest[org.Id]; ok {
			sub = &s
		}

		status := Classify(org, sub, now)
		statuses[status]++
		if org.IsActive {
			active++
		}

		entry := OrganizationStatus{
			OrganizationId: org.Id,
			Name:           org.Name,
			Status:         status,
			DaysRemaining:  DaysRemaining(status, org, sub, now),
		}
		if sub != nil {
			entry.PlanName = sub.PlanName
			entry.EndDate = sub.EndDate
		}
		organizations = append(organizations, entry)
	}

	breakdown := make([]CategoryCount, 0, len(ClassifiedStatuses))
	for _, s := range ClassifiedStatuses {
		breakdown = append(breakdown, CategoryCount{
			Category:   string(s),
			Count:      statuses[s],
			Percentage: Percentage(float64(statuses[s]), float64(len(in.Organizations))),
		})
	}

	newSubscribers := len(FilterInRange(in.Subscriptions, dr, SubscriptionDateFields))

	return SubscriptionReport{
		Id:                  uuid.NewString(),
		GeneratedAt:         now,
		Range:               dr,
		TotalOrganizations:  len(in.Organizations),
		NewOrganizations:    len(FilterInRange(in.Organizations, dr, OrganizationDateFields)),
		ActiveOrganizations: active,
		Statuses:            breakdown,
		Organizations:       organizations,
		Plans:               plans.list(),
		Growth:              CalculateGrowth(subscriptions, newSubscribers, now),
		DegradedSources:     copyCollections(in.DegradedSources),
	}
}

func copyCollections(c []records.Collection) []records.Collection {
	if len(c) == 0 {
		return nil
	}
	res := make([]records.Collection, len(c))
	copy(res, c)
	return res
}
