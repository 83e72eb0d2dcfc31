package restaurant

// DietaryTags flags the dietary attributes of a dish.
type DietaryTags struct {
	Vegetarian  bool
	Vegan       bool
	GlutenFree  bool
	LactoseFree bool
}

// MenuItem is one dish. Prices are in US cents; display formatting
// happens at the tool boundary.
type MenuItem struct {
	ID          string
	Name        string
	Description string
	Price       int
	Tags        DietaryTags
	Allergens   []string
	Badge       string
	SoldOut     bool
}

type MenuCategory struct {
	Key         string
	Label       string
	Icon        string
	Description string
	Items       []MenuItem
}

// tag shorthands
var (
	noTag = DietaryTags{}
	v     = DietaryTags{Vegetarian: true}
	vg    = DietaryTags{Vegetarian: true, Vegan: true}
	gf    = DietaryTags{GlutenFree: true}
	gfLF  = DietaryTags{GlutenFree: true, LactoseFree: true}
	vGF   = DietaryTags{Vegetarian: true, GlutenFree: true}
	vgAll = DietaryTags{Vegetarian: true, Vegan: true, GlutenFree: true, LactoseFree: true}
)

var menu = []MenuCategory{
	{
		Key:         "starters",
		Label:       "Starters",
		Icon:        "🥢",
		Description: "Small plates to whet the appetite.",
		Items: []MenuItem{
			{ID: "st-01", Name: "Truffle Edamame", Description: "Steamed soybeans, white truffle oil, Maldon sea salt.", Price: 1200, Tags: vgAll, Allergens: []string{"soy"}, Badge: "Popular"},
			{ID: "st-02", Name: "Wagyu Beef Tataki", Description: "Flash-seared A5 Miyazaki wagyu, ponzu gelée, micro shiso, crispy garlic chips.", Price: 3200, Tags: gf, Allergens: []string{"soy"}, Badge: "Chef's Pick"},
			{ID: "st-03", Name: "Spicy Tuna Crispy Rice", Description: "Sushi-rice crisps topped with spicy tuna tartare, jalapeño, togarashi aioli.", Price: 1800, Tags: noTag, Allergens: []string{"fish", "soy", "egg", "sesame"}},
			{ID: "st-04", Name: "Pork Gyoza", Description: "Pan-fried dumplings (6 pc), spicy ponzu dipping sauce, chili oil.", Price: 1200, Tags: noTag, Allergens: []string{"wheat", "soy", "sesame"}},
			{ID: "st-05", Name: "Agedashi Tofu", Description: "Silken tofu, dashi broth, grated daikon, bonito flakes, scallion.", Price: 1100, Tags: v, Allergens: []string{"soy", "wheat", "fish"}},
			{ID: "st-06", Name: "Karaage Chicken", Description: "Double-fried Japanese chicken thigh, yuzu koshō mayo, lemon wedge.", Price: 1400, Tags: noTag, Allergens: []string{"wheat", "egg", "soy"}},
			{ID: "st-07", Name: "Shishito Peppers", Description: "Blistered shishitos, bonito flakes, ponzu butter.", Price: 1000, Tags: vGF, Allergens: []string{"soy", "milk"}},
			{ID: "st-08", Name: "Miso Black Cod", Description: "Sustainably sourced cod fillet, 72-hour saikyo miso marinade, hajikami ginger.", Price: 2800, Tags: gf, Allergens: []string{"fish", "soy"}, Badge: "Seasonal"},
		},
	},
	{
		Key:         "sushi",
		Label:       "Sushi & Sashimi",
		Icon:        "🍣",
		Description: "Fresh from Toyosu Market, prepared with precision.",
		Items: []MenuItem{
			{ID: "su-01", Name: "Omakase Sashimi Deluxe", Description: "15-piece chef's selection — Otoro, Chūtoro, Uni, Botan-ebi, Hirame, Hotate.", Price: 8500, Tags: gfLF, Allergens: []string{"fish", "shellfish", "soy"}, Badge: "Chef's Pick"},
			{ID: "su-02", Name: "Bluefin Tuna Flight", Description: "Akami, Chūtoro, Otoro, Negitoro gunkan — 8 pieces total.", Price: 4500, Tags: gfLF, Allergens: []string{"fish", "soy"}},
			{ID: "su-03", Name: "Hamachi Jalapeño", Description: "Yellowtail sashimi (6 pc), yuzu soy, thinly sliced serrano, micro cilantro.", Price: 2400, Tags: gfLF, Allergens: []string{"fish", "soy"}},
			{ID: "su-04", Name: "Truffle Salmon Roll", Description: "Spicy salmon, cucumber, seared salmon top, black truffle oil, fried shallot.", Price: 2200, Tags: noTag, Allergens: []string{"fish", "soy", "sesame", "wheat"}},
			{ID: "su-05", Name: "A5 Wagyu Uni Nigiri", Description: "Seared Miyazaki A5 wagyu, Hokkaido bafun uni, oscietra caviar (2 pc).", Price: 3200, Tags: gf, Allergens: []string{"fish", "soy", "milk"}, Badge: "New"},
			{ID: "su-06", Name: "Dragon Roll", Description: "Shrimp tempura, avocado, eel, unagi glaze, tobiko, sesame.", Price: 2400, Tags: noTag, Allergens: []string{"shellfish", "fish", "wheat", "soy", "sesame", "egg"}},
			{ID: "su-07", Name: "Veggie Temaki Hand Roll", Description: "Avocado, cucumber, takuan, shiso leaf, crispy nori cone (2 pc).", Price: 1200, Tags: vgAll, Allergens: []string{"soy", "sesame"}},
			{ID: "su-08", Name: "Salmon Aburi Nigiri", Description: "Torched Atlantic salmon, garlic chip, yuzu mayo (4 pc).", Price: 1800, Tags: noTag, Allergens: []string{"fish", "soy", "egg"}},
		},
	},
	{
		Key:         "robata",
		Label:       "Robata Grill",
		Icon:        "🔥",
		Description: "Charcoal-grilled over binchotan at 1,000 °C.",
		Items: []MenuItem{
			{ID: "rb-01", Name: "Negima (Chicken Thigh & Scallion)", Description: "Tare glaze, shichimi — 2 skewers.", Price: 800, Tags: gf, Allergens: []string{"soy"}},
			{ID: "rb-02", Name: "Tsukune (Chicken Meatball)", Description: "Egg yolk dip, sweet soy tare — 2 skewers.", Price: 900, Tags: noTag, Allergens: []string{"egg", "soy", "wheat"}},
			{ID: "rb-03", Name: "Wagyu Short Rib", Description: "A4 wagyu kalbi, sea salt, wasabi, grated daikon.", Price: 2800, Tags: gf, Allergens: nil, Badge: "Popular"},
			{ID: "rb-04", Name: "Lamb Chop", Description: "Korean spice rub, kimchi cucumber, sesame leaf.", Price: 1800, Tags: gf, Allergens: []string{"sesame", "soy"}},
			{ID: "rb-05", Name: "Miso-Glazed Eggplant", Description: "Nasu dengaku, sweet white miso, toasted sesame.", Price: 1200, Tags: vgAll, Allergens: []string{"soy", "sesame"}},
			{ID: "rb-06", Name: "King Trumpet Mushroom", Description: "Soy butter, shichimi pepper, micro herbs.", Price: 1200, Tags: v, Allergens: []string{"soy", "milk"}},
			{ID: "rb-07", Name: "Asparagus Bacon Wrap", Description: "Smoked bacon, grilled asparagus — 2 skewers.", Price: 700, Tags: gf, Allergens: nil},
			{ID: "rb-08", Name: "Whole Grilled Squid", Description: "Scored Monterey squid, shiso chimichurri, lemon.", Price: 1600, Tags: gfLF, Allergens: []string{"shellfish"}, Badge: "Seasonal"},
		},
	},
	{
		Key:         "mains",
		Label:       "Mains",
		Icon:        "🍜",
		Description: "Hearty plates for the main course.",
		Items: []MenuItem{
			{ID: "mn-01", Name: "Tonkotsu Ramen", Description: "18-hour pork bone broth, chashu belly, ajitama egg, bamboo shoots, nori.", Price: 1900, Tags: noTag, Allergens: []string{"wheat", "egg", "soy", "sesame"}},
			{ID: "mn-02", Name: "Spicy Miso Ramen", Description: "Red miso broth, ground pork, bean sprouts, corn, chili oil, soft egg.", Price: 1800, Tags: noTag, Allergens: []string{"wheat", "egg", "soy", "sesame"}},
			{ID: "mn-03", Name: "Katsu Curry Don", Description: "Panko-crusted pork loin, house curry, steamed rice, pickled daikon.", Price: 2200, Tags: noTag, Allergens: []string{"wheat", "egg", "soy", "milk"}},
			{ID: "mn-04", Name: "Chirashi Bowl", Description: "Assorted sashimi over seasoned sushi rice, tamago, ikura, shiso.", Price: 2800, Tags: gf, Allergens: []string{"fish", "shellfish", "soy", "egg"}, Badge: "Chef's Pick"},
			{ID: "mn-05", Name: "Grilled Unagi Don", Description: "Charcoal-grilled freshwater eel, kabayaki glaze, sansho pepper, rice.", Price: 3200, Tags: noTag, Allergens: []string{"fish", "soy", "wheat"}},
			{ID: "mn-06", Name: "Vegetable Udon", Description: "Thick wheat noodles, kombu dashi, seasonal vegetables, yuzu zest.", Price: 1600, Tags: vg, Allergens: []string{"wheat", "soy"}},
		},
	},
	{
		Key:         "drinks",
		Label:       "Sake & Spirits",
		Icon:        "🍶",
		Description: "Curated pours to complement every course.",
		Items: []MenuItem{
			{ID: "dk-01", Name: "Dassai 45 Junmai Daiginjo", Description: "Clean, soft, sweet melon notes — glass / bottle.", Price: 1600, Tags: vgAll, Allergens: nil},
			{ID: "dk-02", Name: "Kubota Manju Junmai Daiginjo", Description: "Complex, floral, ultra-refined — glass / bottle.", Price: 2800, Tags: vgAll, Allergens: nil},
			{ID: "dk-03", Name: "Kikusui Perfect Snow Nigori", Description: "Unfiltered, rich, sweet, creamy body — glass / bottle.", Price: 1200, Tags: vgAll, Allergens: nil},
			{ID: "dk-04", Name: "Hakutsuru Sayuri Nigori", Description: "Light, fruity, slightly sweet — glass / bottle.", Price: 1100, Tags: vgAll, Allergens: nil},
			{ID: "dk-05", Name: "Hibiki Harmony Japanese Whisky", Description: "Blended Suntory whisky, honey, orange peel, white chocolate — neat / rocks.", Price: 2400, Tags: vgAll, Allergens: nil},
			{ID: "dk-06", Name: "Tokyo Mule", Description: "Vodka, fresh yuzu juice, ginger beer, cucumber ribbon.", Price: 1600, Tags: vgAll, Allergens: nil},
			{ID: "dk-07", Name: "Lychee Martini", Description: "Roku gin, lychee liqueur, fresh lime, lychee pearl.", Price: 1700, Tags: vgAll, Allergens: nil},
			{ID: "dk-08", Name: "Shiso Sour", Description: "Shōchū, fresh shiso leaf, lemon, honey syrup, soda.", Price: 1500, Tags: vgAll, Allergens: nil},
		},
	},
	{
		Key:         "desserts",
		Label:       "Desserts",
		Icon:        "🍡",
		Description: "Sweet finales to close the night.",
		Items: []MenuItem{
			{ID: "ds-01", Name: "Matcha Lava Cake", Description: "Warm Uji matcha fondant, black sesame ice cream, azuki compote.", Price: 1400, Tags: v, Allergens: []string{"wheat", "egg", "milk", "sesame"}, Badge: "Popular"},
			{ID: "ds-02", Name: "Yuzu Cheesecake", Description: "Japanese-style soufflé cheesecake, yuzu curd, candied kumquat.", Price: 1300, Tags: v, Allergens: []string{"wheat", "egg", "milk"}},
			{ID: "ds-03", Name: "Mochi Ice Cream Trio", Description: "Black sesame, hojicha, and strawberry — handmade daily.", Price: 1100, Tags: v, Allergens: []string{"milk", "soy", "sesame"}},
			{ID: "ds-04", Name: "Kakigōri", Description: "Shaved ice, condensed milk, seasonal fruit syrup (ask server for today's flavor).", Price: 1000, Tags: vGF, Allergens: []string{"milk"}, Badge: "Seasonal"},
			{ID: "ds-05", Name: "Dorayaki", Description: "Fluffy honey pancakes, sweet azuki bean paste, whipped cream.", Price: 900, Tags: v, Allergens: []string{"wheat", "egg", "milk"}},
		},
	},
}
