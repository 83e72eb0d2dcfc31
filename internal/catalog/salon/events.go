package salon

// Event is a studio happening: demos, workshops, flash promos.
type Event struct {
	ID              string
	Title           string
	Date            string
	Time            string
	Description     string
	BookingRequired bool
	Free            bool
}

var events = []Event{
	{
		ID:    "ev-01",
		Title: "Spring Hair Refresh Party",
		Date:  "2026-03-15",
		Time:  "12:00",
		Description: "Join us for an afternoon of complimentary consultations, live styling demos, champagne, " +
			"and exclusive same-day booking discounts.",
		Free: true,
	},
	{
		ID:    "ev-02",
		Title: "Balayage Masterclass (Sold Out — Waitlist Open)",
		Date:  "2026-04-05",
		Time:  "18:00",
		Description: "Watch our senior colourists demonstrate the latest balayage techniques on live models. " +
			"Q&A included. Light bites and drinks.",
		BookingRequired: true,
		Free:            true,
	},
	{
		ID:    "ev-03",
		Title: "Bridal Hair Workshop",
		Date:  "2026-05-17",
		Time:  "14:00",
		Description: "Hands-on workshop for brides-to-be. Learn styling tips, try updos with our team, " +
			"and get 10% off bridal packages booked on the day.",
		BookingRequired: true,
		Free:            true,
	},
	{
		ID:    "ev-04",
		Title: "Self-Care Sunday — Scalp & Hair Health",
		Date:  "2026-06-07",
		Time:  "11:00",
		Description: "Mini scalp analysis, product recommendations, and complimentary deep conditioning " +
			"treatment with any service booked.",
		BookingRequired: true,
		Free:            true,
	},
	{
		ID:    "ev-05",
		Title: "Summer Colour Pop — Flash Event",
		Date:  "2026-07-18",
		Time:  "10:00",
		Description: "One-day-only: any single-process colour or gloss for $75 (walk-ins welcome, " +
			"first-come first-served). Bring your summer vibe!",
	},
}
