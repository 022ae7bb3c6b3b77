package domain

// Resolution is the outcome of the role lookup performed when the tab
// bar mounts. It is recomputed on every mount and never persisted.
type Resolution int

const (
	// Buyer is the fail-safe default: no market role, or any
	// uncertainty while looking one up.
	Buyer Resolution = iota

	// MarketPendingSetup means the user holds the market role but has
	// not created their market yet.
	MarketPendingSetup

	// MarketActive means the user holds the market role and their
	// market exists.
	MarketActive
)

func (r Resolution) String() string {
	switch r {
	case MarketPendingSetup:
		return "market_pending_setup"
	case MarketActive:
		return "market_active"
	default:
		return "buyer"
	}
}

// Destination is a tab the navigation bar can offer.
type Destination string

const (
	DestHome           Destination = "home"
	DestMap            Destination = "map"
	DestProfile        Destination = "profile"
	DestCart           Destination = "cart"
	DestMarketSetup    Destination = "market_setup"
	DestMarketProducts Destination = "market_products"
)

// Tabs returns the tab set for the resolution: Home, Map and Profile
// always, plus exactly one role-dependent destination slotted before
// Profile.
func (r Resolution) Tabs() []Destination {
	var extra Destination
	switch r {
	case MarketActive:
		extra = DestMarketProducts
	case MarketPendingSetup:
		extra = DestMarketSetup
	default:
		extra = DestCart
	}

	return []Destination{DestHome, DestMap, extra, DestProfile}
}
