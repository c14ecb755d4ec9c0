package analytics

import (
	"github.com/tidepool-org/clinic-reports/records"
)

const (
	AppointmentTypeGeneral   = "General"
	AppointmentStatusUnknown = "Unknown"
)

type AppointmentStats struct {
	Total          int
	InRange        int
	Completed      int
	CompletionRate float64
	ByType         []CategoryCount
	ByStatus       []CategoryCount
	Daily          []TrendPoint
}

func AppointmentType(r records.Record) string {
	return r.Coalesce(AppointmentTypeGeneral, "type", "appointmentType")
}

func AppointmentStatus(r records.Record) string {
	return r.Coalesce(AppointmentStatusUnknown, "status")
}

func isCompleted(r records.Record) bool {
	s := AppointmentStatus(r)
	return s == "Completed" || s == "completed"
}

func AggregateAppointments(all []records.Record, inRange []records.Record) AppointmentStats {
	completed := 0
	for _, r := range inRange {
		if isCompleted(r) {
			completed++
		}
	}

	return AppointmentStats{
		Total:          len(all),
		InRange:        len(inRange),
		Completed:      completed,
		CompletionRate: Percentage(float64(completed), float64(len(inRange))),
		ByType:         CountBy(inRange, AppointmentType),
		ByStatus:       CountBy(inRange, AppointmentStatus),
	}
}
