package dental

// Event is a clinic happening: open days, workshops, screenings.
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
		Title: "Smile Makeover Open Day",
		Date:  "2026-03-21",
		Time:  "10:00",
		Description: "Free consultations with our cosmetic team. Get a digital smile preview and personalised " +
			"treatment plan. Light refreshments provided.",
		BookingRequired: true,
		Free:            true,
	},
	{
		ID:    "ev-02",
		Title: "Kids' Dental Health Workshop",
		Date:  "2026-04-12",
		Time:  "14:00",
		Description: "Fun, interactive session for children aged 4–10. Learn proper brushing, healthy snacks, " +
			"and earn a Junior Smile certificate. Parents welcome.",
		BookingRequired: true,
		Free:            true,
	},
	{
		ID:    "ev-03",
		Title: "Invisalign Information Evening",
		Date:  "2026-05-08",
		Time:  "18:30",
		Description: "Learn about clear aligner treatment, see before-and-after cases, and get an exclusive " +
			"15% discount for attendees who start treatment within 30 days.",
		BookingRequired: true,
		Free:            true,
	},
	{
		ID:    "ev-04",
		Title: "World Oral Health Day — Free Screenings",
		Date:  "2026-03-20",
		Time:  "09:00",
		Description: "Complimentary 15-minute dental screenings for the community. No registration needed — " +
			"walk-ins welcome all day.",
		Free: true,
	},
	{
		ID:    "ev-05",
		Title: "Senior Dental Health Seminar",
		Date:  "2026-06-14",
		Time:  "11:00",
		Description: "Tips on implant care, dry mouth management, and maintaining dental health over 60. " +
			"Q&A with Dr. Müller. Coffee & cake provided.",
		BookingRequired: true,
		Free:            true,
	},
}
