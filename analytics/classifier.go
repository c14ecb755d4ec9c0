package analytics

import (
	"math"
	"time"
)

type ClassifiedStatus string

const (
	StatusActive       ClassifiedStatus = "Active"
	StatusTrial        ClassifiedStatus = "Trial"
	StatusExpiringSoon ClassifiedStatus = "ExpiringSoon"
	StatusExpired      ClassifiedStatus = "Expired"
	StatusCancelled    ClassifiedStatus = "Cancelled"
	StatusDeactivated  ClassifiedStatus = "Deactivated"
	StatusUnlimited    ClassifiedStatus = "Unlimited"

	SubscriptionTypeUnlimited = "unlimited"

	ExpiryWindow = 7 * day
)

var ClassifiedStatuses = []ClassifiedStatus{
	StatusActive,
	StatusTrial,
	StatusExpiringSoon,
	StatusExpired,
	StatusCancelled,
	StatusDeactivated,
	StatusUnlimited,
}

// Classify maps an organization and its current subscription to a display status.
// Rules are evaluated in order and the first match wins. An organization without a
// subscription is presumed to be in its trial.
func Classify(org OrganizationSnapshot, sub *SubscriptionSnapshot, now time.Time) ClassifiedStatus {
	switch {
	case !org.IsActive:
		return StatusDeactivated
	case org.SubscriptionType == SubscriptionTypeUnlimited:
		return StatusUnlimited
	case sub == nil:
		return StatusTrial
	case sub.Status == SubscriptionStatusTrialing:
		return StatusTrial
	case sub.Status == SubscriptionStatusCancelled:
		return StatusCancelled
	case sub.EndDate != nil && sub.EndDate.Before(now):
		return StatusExpired
	case sub.EndDate != nil && sub.EndDate.Before(now.Add(ExpiryWindow)):
		return StatusExpiringSoon
	default:
		return StatusActive
	}
}

// DaysRemaining is shown for trials and subscriptions about to expire. It is nil when
// the status has no deadline or the deadline is unknown.
func DaysRemaining(status ClassifiedStatus, org OrganizationSnapshot, sub *SubscriptionSnapshot, now time.Time) *int {
	var target *time.Time
	switch status {
	case StatusTrial:
		if sub == nil {
			target = org.TrialEndDate
		} else if sub.TrialEndDate != nil {
			target = sub.TrialEndDate
		} else {
			target = sub.EndDate
		}
	case StatusExpiringSoon:
		if sub != nil {
			target = sub.EndDate
		}
	}
	if target == nil {
		return nil
	}
	days := DaysUntil(*target, now)
	return &days
}

// DaysUntil rounds up to whole days. Deadlines in the past are 0.
func DaysUntil(target time.Time, now time.Time) int {
	days := math.Ceil(float64(target.Sub(now)) / float64(day))
	if days < 0 {
		return 0
	}
	return int(days)
}
