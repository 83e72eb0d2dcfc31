package restaurant

import "github.com/templateshub/demos-backend/internal/catalog"

var offers = []catalog.Offer{
	{
		ID:    "off-01",
		Title: "Golden Hour — Daily Happy Hour",
		Description: "Half-price house sake, $5 edamame & gyoza, and $8 yakitori flights every day from 5–7 PM. " +
			"The best way to start your evening at Tsuki.",
		ValidFrom: "2026-01-01",
		ValidTo:   "2026-12-31",
		Category:  "happy-hour",
		DineInOnly: true,
	},
	{
		ID:    "off-02",
		Title: "Omakase Monday",
		Description: "Our 12-course omakase at a special $95 price (usually $135). " +
			"Counter seating only, reservation required 48 hours in advance.",
		ValidFrom: "2026-01-06",
		ValidTo:   "2026-06-29",
		Category:  "general",
		DineInOnly: true,
	},
	{
		ID:    "off-03",
		Title: "Date Night for Two",
		Description: "A shared sashimi platter, two robata entrées, a dessert to share, and a bottle of Dassai 45 — " +
			"all for $140. Available Thu–Sat evenings.",
		ValidFrom: "2026-02-01",
		ValidTo:   "2026-04-30",
		Code:      "DATENIGHT",
		Category:  "general",
		DineInOnly: true,
	},
	{
		ID:    "off-04",
		Title: "Spring Sakura Menu",
		Description: "A limited 5-course menu inspired by cherry-blossom season: sakura shrimp tempura, " +
			"cherry blossom mochi, rose sake pairing, and more.",
		ValidFrom: "2026-03-15",
		ValidTo:   "2026-04-15",
		Category:  "seasonal",
		DineInOnly: true,
	},
	{
		ID:    "off-05",
		Title: "Summer Kakigōri Festival",
		Description: "Complimentary shaved-ice kakigōri with any entrée purchase during July. " +
			"Choose from yuzu, matcha, or ume plum syrup.",
		ValidFrom: "2026-07-01",
		ValidTo:   "2026-07-31",
		Category:  "seasonal",
		DineInOnly: true,
	},
	{
		ID:          "off-06",
		Title:       "Tanabata Sake Flight",
		Description: "Celebrate the Star Festival with a curated 4-sake tasting flight paired with light bites — $35 per person.",
		ValidFrom:   "2026-07-05",
		ValidTo:     "2026-07-07",
		Category:    "event",
		DineInOnly:  true,
	},
	{
		ID:    "off-07",
		Title: "Tsuki Insiders — 10th Visit Reward",
		Description: "Dine with us ten times and your 11th visit starts with a complimentary premium sake pour and appetizer. " +
			"Ask your server to scan your membership card.",
		ValidFrom: "2026-01-01",
		ValidTo:   "2027-01-01",
		Category:  "loyalty",
	},
	{
		ID:    "off-08",
		Title: "Birthday Omiyage",
		Description: "Celebrate your birthday at Tsuki and receive a complimentary dessert and a take-home box of " +
			"house-made mochi. Valid within 7 days of your birthday; ID required.",
		ValidFrom: "2026-01-01",
		ValidTo:   "2026-12-31",
		Category:  "loyalty",
		DineInOnly: true,
	},
}
