package analytics

import (
	"math"
	"time"

	"github.com/tidepool-org/clinic-reports/records"
)

const (
	AgeGroupChildren    = "0-17"
	AgeGroupYoungAdults = "18-34"
	AgeGroupAdults      = "35-49"
	AgeGroupMiddleAged  = "50-64"
	AgeGroupSeniors     = "65+"
	AgeGroupUnknown     = "Unknown"
	GenderUnknown       = "Unknown"
)

var AgeGroups = []string{
	AgeGroupChildren,
	AgeGroupYoungAdults,
	AgeGroupAdults,
	AgeGroupMiddleAged,
	AgeGroupSeniors,
	AgeGroupUnknown,
}

type PatientStats struct {
	Total     int
	InRange   int
	AgeGroups []CategoryCount
	Genders   []CategoryCount
}

// PatientAge reads the age field, or derives it from the date of birth at now.
func PatientAge(r records.Record, now time.Time) (int, bool) {
	if age, ok := r.Float("age"); ok && !math.IsNaN(age) && !math.IsInf(age, 0) {
		return int(math.Floor(age)), true
	}
	v, ok := r.Get("dateOfBirth", "dob", "birthDate")
	if !ok {
		return 0, false
	}
	dob := ParseDateOrNull(v)
	if dob == nil || dob.After(now) {
		return 0, false
	}
	return yearsBetween(*dob, now), true
}

func yearsBetween(from, to time.Time) int {
	from = from.In(to.Location())
	years := to.Year() - from.Year()
	if to.Month() < from.Month() || (to.Month() == from.Month() && to.Day() < from.Day()) {
		years--
	}
	return years
}

func AgeGroup(age int, known bool) string {
	switch {
	case !known:
		return AgeGroupUnknown
	case age < 18:
		return AgeGroupChildren
	case age < 35:
		return AgeGroupYoungAdults
	case age < 50:
		return AgeGroupAdults
	case age < 65:
		return AgeGroupMiddleAged
	default:
		return AgeGroupSeniors
	}
}

func PatientGender(r records.Record) string {
	return r.Coalesce(GenderUnknown, "gender", "sex")
}

func AggregatePatients(all []records.Record, inRange []records.Record, now time.Time) PatientStats {
	groups := map[string]int{}
	for _, r := range inRange {
		groups[AgeGroup(PatientAge(r, now))]++
	}

	ageGroups := make([]CategoryCount, 0, len(AgeGroups))
	for _, g := range AgeGroups {
		if groups[g] == 0 {
			continue
		}
		ageGroups = append(ageGroups, CategoryCount{
			Category:   g,
			Count:      groups[g],
			Percentage: Percentage(float64(groups[g]), float64(len(inRange))),
		})
	}

	return PatientStats{
		Total:     len(all),
		InRange:   len(inRange),
		AgeGroups: ageGroups,
		Genders:   CountBy(inRange, PatientGender),
	}
}
