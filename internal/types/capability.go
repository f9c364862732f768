package types

// Capability names a single gated action. Capabilities are computed by the
// external access-control system and arrive on the request; this service only
// checks for their presence.
type Capability string

const (
	CapabilityCreateProduct        Capability = "create_product"
	CapabilityEditProduct          Capability = "edit_product"
	CapabilityDeleteProduct        Capability = "delete_product"
	CapabilityManagePrices         Capability = "manage_prices"
	CapabilityManageCategories     Capability = "manage_categories"
	CapabilityApproveSubscriptions Capability = "approve_subscriptions"
	CapabilityRejectSubscriptions  Capability = "reject_subscriptions"
	CapabilityCancelSubscriptions  Capability = "cancel_subscriptions"
	CapabilityViewDashboard        Capability = "view_dashboard"
)

// CapabilitySet is an explicit value object of granted capabilities. A zero
// value grants nothing.
type CapabilitySet struct {
	granted map[Capability]bool
}

// NewCapabilitySet builds a set from capability names.
func NewCapabilitySet(names ...string) CapabilitySet {
	granted := make(map[Capability]bool, len(names))
	for _, name := range names {
		granted[Capability(name)] = true
	}
	return CapabilitySet{granted: granted}
}

// Can reports whether the capability is granted.
func (s CapabilitySet) Can(c Capability) bool {
	return s.granted[c]
}

// List returns the granted capability names.
func (s CapabilitySet) List() []string {
	names := make([]string, 0, len(s.granted))
	for c := range s.granted {
		names = append(names, string(c))
	}
	return names
}
