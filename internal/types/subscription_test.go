package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSubscriptionStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want SubscriptionStatus
	}{
		{"pending", SubscriptionStatusPendingApproval},
		{"pending_approval", SubscriptionStatusPendingApproval},
		{"approved", SubscriptionStatusActive},
		{"active", SubscriptionStatusActive},
		{"rejected", SubscriptionStatusRejected},
		{"cancelled", SubscriptionStatusCancelled},
		{"expired", SubscriptionStatusExpired},
	}
	for _, tt := range tests {
		got, err := ParseSubscriptionStatus(tt.raw)
		assert.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}

	_, err := ParseSubscriptionStatus("suspended")
	assert.Error(t, err)
	_, err = ParseSubscriptionStatus("")
	assert.Error(t, err)
}

func TestSubscriptionStatusIsTerminal(t *testing.T) {
	assert.False(t, SubscriptionStatusPendingApproval.IsTerminal())
	assert.False(t, SubscriptionStatusActive.IsTerminal())
	assert.True(t, SubscriptionStatusRejected.IsTerminal())
	assert.True(t, SubscriptionStatusCancelled.IsTerminal())
	assert.True(t, SubscriptionStatusExpired.IsTerminal())
}

func TestSubscriptionStatusTransitions(t *testing.T) {
	// Pending can be approved or rejected.
	assert.True(t, SubscriptionStatusPendingApproval.CanTransitionTo(SubscriptionStatusActive))
	assert.True(t, SubscriptionStatusPendingApproval.CanTransitionTo(SubscriptionStatusRejected))
	assert.False(t, SubscriptionStatusPendingApproval.CanTransitionTo(SubscriptionStatusCancelled))
	assert.False(t, SubscriptionStatusPendingApproval.CanTransitionTo(SubscriptionStatusExpired))

	// Active can be cancelled or expired.
	assert.True(t, SubscriptionStatusActive.CanTransitionTo(SubscriptionStatusCancelled))
	assert.True(t, SubscriptionStatusActive.CanTransitionTo(SubscriptionStatusExpired))
	assert.False(t, SubscriptionStatusActive.CanTransitionTo(SubscriptionStatusRejected))
	assert.False(t, SubscriptionStatusActive.CanTransitionTo(SubscriptionStatusPendingApproval))

	// Terminal states allow nothing.
	for _, terminal := range []SubscriptionStatus{
		SubscriptionStatusRejected,
		SubscriptionStatusCancelled,
		SubscriptionStatusExpired,
	} {
		for _, target := range []SubscriptionStatus{
			SubscriptionStatusPendingApproval,
			SubscriptionStatusActive,
			SubscriptionStatusRejected,
			SubscriptionStatusCancelled,
			SubscriptionStatusExpired,
		} {
			assert.False(t, terminal.CanTransitionTo(target), "%s -> %s", terminal, target)
		}
	}
}
