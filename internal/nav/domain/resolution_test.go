package domain

import "testing"

func TestTabs(t *testing.T) {
	cases := []struct {
		res   Resolution
		extra Destination
	}{
		{Buyer, DestCart},
		{MarketPendingSetup, DestMarketSetup},
		{MarketActive, DestMarketProducts},
	}

	for _, tc := range cases {
		t.Run(tc.res.String(), func(t *testing.T) {
			tabs := tc.res.Tabs()
			if len(tabs) != 4 {
				t.Fatalf("got %d tabs, want 4", len(tabs))
			}

			want := []Destination{DestHome, DestMap, tc.extra, DestProfile}
			for i := range want {
				if tabs[i] != want[i] {
					t.Fatalf("tabs = %v, want %v", tabs, want)
				}
			}
		})
	}
}
