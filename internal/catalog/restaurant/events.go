package restaurant

// Event is a special evening at the restaurant. TicketPrice is in US
// cents; zero means free or included with a regular reservation.
// Capacity zero means regular seating applies.
type Event struct {
	ID              string
	Title           string
	Date            string
	Time            string
	Description     string
	BookingRequired bool
	TicketPrice     int
	Capacity        int
	Tags            []string
}

var events = []Event{
	{
		ID:    "ev-01",
		Title: "Chef's Table: Spring Omakase Preview",
		Date:  "2026-03-14",
		Time:  "19:00",
		Description: "Join Chef Takeshi for an exclusive 14-course preview of the spring omakase menu. " +
			"Each course is paired with a sake selected by our sommelier. Counter seating only — " +
			"an intimate evening limited to 8 guests.",
		BookingRequired: true,
		TicketPrice:     17500,
		Capacity:        8,
		Tags:            []string{"omakase", "tasting", "exclusive"},
	},
	{
		ID:    "ev-02",
		Title: "Sake 101: Introduction to Japanese Sake",
		Date:  "2026-03-22",
		Time:  "17:30",
		Description: "A guided tasting of six sakes spanning junmai, ginjo, and daiginjo grades. " +
			"Learn to read labels, pair with food, and find your palate. Includes light bites and a " +
			"take-home tasting card.",
		BookingRequired: true,
		TicketPrice:     5500,
		Capacity:        24,
		Tags:            []string{"sake", "workshop", "beginner"},
	},
	{
		ID:    "ev-03",
		Title: "Live Shamisen & Jazz Night",
		Date:  "2026-04-04",
		Time:  "20:00",
		Description: "A fusion performance blending traditional shamisen with modern jazz. No cover charge — " +
			"enjoy the show with your regular dinner reservation. Complimentary shōchū cocktail for the " +
			"first 30 guests.",
		Tags: []string{"music", "live", "no-cover"},
	},
	{
		ID:    "ev-04",
		Title: "Ramen Pop-Up: Tsukemen Night",
		Date:  "2026-04-18",
		Time:  "18:00",
		Description: "For one night only, our kitchen transforms into a tsukemen (dipping ramen) bar. " +
			"Three broths — tonkotsu, yuzu shio, and spicy miso — with thick artisan noodles. " +
			"Walk-ins welcome, first come first served.",
		Tags: []string{"ramen", "pop-up", "limited"},
	},
	{
		ID:    "ev-05",
		Title: "Mother's Day Kaiseki Dinner",
		Date:  "2026-05-10",
		Time:  "18:00",
		Description: "Treat Mom to a 10-course kaiseki dinner featuring seasonal spring ingredients — " +
			"sakura-smoked duck, bamboo shoot tempura, and a matcha-strawberry dessert. Complimentary " +
			"sparkling sake toast. Private tatami room available for parties of 6+.",
		BookingRequired: true,
		TicketPrice:     12500,
		Capacity:        40,
		Tags:            []string{"kaiseki", "holiday", "family"},
	},
	{
		ID:    "ev-06",
		Title: "Tanabata Star Festival Dinner",
		Date:  "2026-07-07",
		Time:  "19:00",
		Description: "Celebrate Tanabata with a themed 8-course dinner, paper wish-writing, and a curated " +
			"sake flight under our rooftop string lights. Dress code: yukata welcome.",
		BookingRequired: true,
		TicketPrice:     9500,
		Capacity:        50,
		Tags:            []string{"festival", "cultural", "seasonal"},
	},
	{
		ID:    "ev-07",
		Title: "Whisky Masterclass: Japanese Single Malts",
		Date:  "2026-08-15",
		Time:  "18:30",
		Description: "Taste five Japanese single malts — Yamazaki, Hakushu, Nikka Yoichi, Nikka Miyagikyo, " +
			"and a mystery bottling. Our bar director guides you through nose, palate, and finish with " +
			"paired canapés.",
		BookingRequired: true,
		TicketPrice:     8500,
		Capacity:        18,
		Tags:            []string{"whisky", "masterclass", "tasting"},
	},
	{
		ID:    "ev-08",
		Title: "Harvest Moon Supper",
		Date:  "2026-09-25",
		Time:  "19:00",
		Description: "An autumn-inspired multi-course dinner celebrating Tsukimi (moon-viewing). Dishes feature " +
			"matsutake mushroom, sanma (pacific saury), and chestnut. Rooftop seating with moon cakes and hōjicha.",
		BookingRequired: true,
		TicketPrice:     11000,
		Capacity:        30,
		Tags:            []string{"cultural", "seasonal", "tasting"},
	},
	{
		ID:    "ev-09",
		Title: "New Year's Eve: Toshikoshi Soba Party",
		Date:  "2026-12-31",
		Time:  "21:00",
		Description: "Ring in the New Year the Japanese way. Enjoy hand-cut soba noodles, a sake countdown " +
			"toast at midnight, and live taiko drumming. Includes a 6-course dinner and free-flow sake " +
			"from 9 PM to 1 AM.",
		BookingRequired: true,
		TicketPrice:     15000,
		Capacity:        60,
		Tags:            []string{"holiday", "new-year", "live", "all-inclusive"},
	},
}
