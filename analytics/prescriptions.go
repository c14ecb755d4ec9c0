package analytics

import (
	"github.com/tidepool-org/clinic-reports/records"
)

const TopMedicationsCount = 10

type PrescriptionStats struct {
	Total          int
	InRange        int
	TopMedications []CategoryCount
}

// MedicationNames flattens the medication shapes found in prescriptions: an array of
// objects or strings under "medications", or a single object or string under
// "medication". Empty entries are skipped.
func MedicationNames(r records.Record) []string {
	v, ok := r.Get("medications")
	if !ok {
		v, ok = r.Get("medication")
	}
	if !ok {
		return nil
	}

	if list, ok := records.AsSlice(v); ok {
		var names []string
		for _, item := range list {
			if name := medicationName(item); name != "" {
				names = append(names, name)
			}
		}
		return names
	}

	if name := medicationName(v); name != "" {
		return []string{name}
	}
	return nil
}

func medicationName(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	if doc, ok := records.AsRecord(v); ok {
		return doc.String("", "name", "medicationName")
	}
	return ""
}

func AggregatePrescriptions(all []records.Record, inRange []records.Record) PrescriptionStats {
	t := newTally()
	for _, r := range inRange {
		for _, name := range MedicationNames(r) {
			t.add(name)
		}
	}

	return PrescriptionStats{
		Total:          len(all),
		InRange:        len(inRange),
		TopMedications: TopN(t.list(), TopMedicationsCount),
	}
}
