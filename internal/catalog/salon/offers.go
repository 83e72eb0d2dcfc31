package salon

import "github.com/templateshub/demos-backend/internal/catalog"

var offers = []catalog.Offer{
	{
		ID:          "off-01",
		Title:       "New Client — 20% Off First Visit",
		Description: "Enjoy 20% off any service on your first visit to Luna Hair Studio. Valid for cuts, colour, and treatments.",
		ValidFrom:   "2026-01-01",
		ValidTo:     "2026-12-31",
		Code:        "HELLO20",
		Category:    "new-client",
	},
	{
		ID:          "off-02",
		Title:       "Spring Refresh Balayage",
		Description: "Full balayage + Olaplex treatment + blowout for $199 (save up to $90). Limited spots available.",
		ValidFrom:   "2026-03-01",
		ValidTo:     "2026-05-31",
		Code:        "SPRING199",
		Category:    "seasonal",
	},
	{
		ID:          "off-03",
		Title:       "Bring a Friend — Both Get 15% Off",
		Description: "Book the same day with a friend and both enjoy 15% off all services. Cannot be combined with other offers.",
		ValidFrom:   "2026-01-01",
		ValidTo:     "2026-12-31",
		Category:    "loyalty",
	},
	{
		ID:          "off-04",
		Title:       "Loyalty Reward — 5th Visit Free Blowout",
		Description: "After 4 paid visits, your 5th blowout is on us! Tracked automatically in our system.",
		ValidFrom:   "2026-01-01",
		ValidTo:     "2027-01-01",
		Category:    "loyalty",
	},
	{
		ID:          "off-05",
		Title:       "Keratin + Color Bundle",
		Description: "Book a keratin smoothing treatment with any colour service and save $50 off the total.",
		ValidFrom:   "2026-02-01",
		ValidTo:     "2026-06-30",
		Code:        "KCOLOR50",
		Category:    "general",
	},
}
