package types

import (
	ierr "github.com/netserve/catalog/internal/errors"
)

// SubscriptionStatus is the closed status vocabulary for subscriptions. The
// upstream data used "pending" and "pending_approval" interchangeably and
// "approved" as a synonym for active; ParseSubscriptionStatus collapses those
// aliases onto this set.
type SubscriptionStatus string

const (
	SubscriptionStatusPendingApproval SubscriptionStatus = "pending_approval"
	SubscriptionStatusActive          SubscriptionStatus = "active"
	SubscriptionStatusRejected        SubscriptionStatus = "rejected"
	SubscriptionStatusCancelled       SubscriptionStatus = "cancelled"
	SubscriptionStatusExpired         SubscriptionStatus = "expired"
)

// subscriptionStatusAliases maps legacy spellings onto the closed set.
var subscriptionStatusAliases = map[string]SubscriptionStatus{
	"pending":          SubscriptionStatusPendingApproval,
	"pending_approval": SubscriptionStatusPendingApproval,
	"approved":         SubscriptionStatusActive,
	"active":           SubscriptionStatusActive,
	"rejected":         SubscriptionStatusRejected,
	"cancelled":        SubscriptionStatusCancelled,
	"expired":          SubscriptionStatusExpired,
}

// ParseSubscriptionStatus resolves a raw status string, accepting legacy
// aliases.
func ParseSubscriptionStatus(raw string) (SubscriptionStatus, error) {
	if status, ok := subscriptionStatusAliases[raw]; ok {
		return status, nil
	}
	return "", ierr.NewError("invalid subscription status").
		WithHint("Unknown subscription status").
		WithReportableDetails(map[string]interface{}{
			"status": raw,
		}).
		Mark(ierr.ErrValidation)
}

func (s SubscriptionStatus) String() string {
	return string(s)
}

func (s SubscriptionStatus) Validate() error {
	_, err := ParseSubscriptionStatus(string(s))
	return err
}

// IsTerminal reports whether no transition may leave this status.
func (s SubscriptionStatus) IsTerminal() bool {
	switch s {
	case SubscriptionStatusRejected, SubscriptionStatusCancelled, SubscriptionStatusExpired:
		return true
	}
	return false
}

// subscriptionTransitions is the allowed transition table. Expiry is a system
// transition off active; everything else is user-invoked.
var subscriptionTransitions = map[SubscriptionStatus][]SubscriptionStatus{
	SubscriptionStatusPendingApproval: {SubscriptionStatusActive, SubscriptionStatusRejected},
	SubscriptionStatusActive:          {SubscriptionStatusCancelled, SubscriptionStatusExpired},
}

// CanTransitionTo reports whether the lifecycle permits moving to target.
func (s SubscriptionStatus) CanTransitionTo(target SubscriptionStatus) bool {
	for _, allowed := range subscriptionTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}
