package analytics

import (
	"fmt"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"

	"github.com/tidepool-org/clinic-reports/records"
)

type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusTrialing  SubscriptionStatus = "trialing"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
	SubscriptionStatusPastDue   SubscriptionStatus = "past_due"
	SubscriptionStatusUnpaid    SubscriptionStatus = "unpaid"
	SubscriptionStatusOther     SubscriptionStatus = "other"

	PlanUnknown = "Unknown"
)

func ParseSubscriptionStatus(status string) SubscriptionStatus {
	switch s := SubscriptionStatus(status); s {
	case SubscriptionStatusActive, SubscriptionStatusTrialing, SubscriptionStatusCancelled,
		SubscriptionStatusPastDue, SubscriptionStatusUnpaid:
		return s
	}
	return SubscriptionStatusOther
}

type SubscriptionSnapshot struct {
	Id              string
	OrganizationId  string
	Status          SubscriptionStatus
	Amount          decimal.Decimal
	PlanName        string
	EndDate         *time.Time
	TrialEndDate    *time.Time
	LastPaymentDate *time.Time
	CreatedAt       *time.Time
}

type OrganizationSnapshot struct {
	Id               string
	Name             string
	IsActive         bool
	SubscriptionType string
	TrialEndDate     *time.Time
	CreatedAt        *time.Time
}

type subscriptionDocument struct {
	Status          string          `mapstructure:"status"`
	Amount          decimal.Decimal `mapstructure:"amount"`
	EndDate         *time.Time      `mapstructure:"endDate"`
	TrialEndDate    *time.Time      `mapstructure:"trialEndDate"`
	LastPaymentDate *time.Time      `mapstructure:"lastPaymentDate"`
	CreatedAt       *time.Time      `mapstructure:"createdAt"`
	StartDate       *time.Time      `mapstructure:"startDate"`
	Plan            planDocument    `mapstructure:"plan"`
}

type planDocument struct {
	Name string `mapstructure:"name"`
}

var (
	timeType    = reflect.TypeOf(time.Time{})
	timePtrType = reflect.TypeOf(&time.Time{})
	decimalType = reflect.TypeOf(decimal.Decimal{})
	planType    = reflect.TypeOf(planDocument{})
)

// subscriptionDecodeHook normalizes the loosely typed values found in subscription
// documents. Unparseable dates decode as nil.
func subscriptionDecodeHook(_ reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	switch to {
	case timePtrType:
		t := ParseDateOrNull(data)
		if t == nil {
			return nil, nil
		}
		return *t, nil
	case timeType:
		if t := ParseDateOrNull(data); t != nil {
			return *t, nil
		}
		return time.Time{}, nil
	case decimalType:
		return ToDecimal(data), nil
	case planType:
		if doc, ok := records.AsRecord(data); ok {
			return map[string]interface{}(doc), nil
		}
		if s, ok := data.(string); ok {
			return map[string]interface{}{"name": s}, nil
		}
		return map[string]interface{}{}, nil
	}
	return data, nil
}

// DecodeSubscription always returns a usable snapshot. Fields that could not be
// decoded are left empty and reported in the error.
func DecodeSubscription(r records.Record) (SubscriptionSnapshot, error) {
	doc := subscriptionDocument{Amount: decimal.Zero}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.DecodeHookFuncType(subscriptionDecodeHook),
		WeaklyTypedInput: true,
		Result:           &doc,
	})
	if err != nil {
		return SubscriptionSnapshot{}, fmt.Errorf("unable to create subscription decoder: %w", err)
	}
	decodeErr := decoder.Decode(map[string]interface{}(r))

	snapshot := SubscriptionSnapshot{
		Id:              r.Id(),
		OrganizationId:  r.String("", "organizationId"),
		Status:          ParseSubscriptionStatus(doc.Status),
		Amount:          doc.Amount,
		PlanName:        doc.Plan.Name,
		EndDate:         doc.EndDate,
		TrialEndDate:    doc.TrialEndDate,
		LastPaymentDate: doc.LastPaymentDate,
		CreatedAt:       doc.CreatedAt,
	}
	if snapshot.CreatedAt == nil {
		snapshot.CreatedAt = doc.StartDate
	}
	if snapshot.PlanName == "" {
		snapshot.PlanName = PlanUnknown
	}
	if decodeErr != nil {
		return snapshot, fmt.Errorf("unable to decode subscription %s: %w", snapshot.Id, decodeErr)
	}
	return snapshot, nil
}

func DecodeOrganization(r records.Record) OrganizationSnapshot {
	org := OrganizationSnapshot{
		Id:               r.Id(),
		Name:             r.String("", "name"),
		IsActive:         true,
		SubscriptionType: r.String("", "subscriptionType"),
	}
	// Only an explicit false deactivates an organization.
	if active, ok := r["isActive"].(bool); ok && !active {
		org.IsActive = false
	}
	if v, ok := r.Get("trialEndDate", "trialEndsAt"); ok {
		org.TrialEndDate = ParseDateOrNull(v)
	}
	if v, ok := r.Get(OrganizationDateFields...); ok {
		org.CreatedAt = ParseDateOrNull(v)
	}
	return org
}

// LatestSubscriptions picks the most recently created subscription of each
// organization. Subscriptions without a creation date lose to dated ones, ties keep
// the first seen.
func LatestSubscriptions(subscriptions []SubscriptionSnapshot) map[string]SubscriptionSnapshot {
	res := make(map[string]SubscriptionSnapshot, len(subscriptions))
	for _, s := range subscriptions {
		if s.OrganizationId == "" {
			continue
		}
		current, ok := res[s.OrganizationId]
		if !ok || newer(s.CreatedAt, current.CreatedAt) {
			res[s.OrganizationId] = s
		}
	}
	return res
}

func newer(a, b *time.Time) bool {
	if a == nil {
		return false
	}
	return b == nil || a.After(*b)
}
