package salon

import "github.com/templateshub/demos-backend/internal/catalog"

var services = []catalog.ServiceCategory{
	{
		Key:         "cuts",
		Label:       "Cuts & Styling",
		Icon:        "✂️",
		Description: "Precision cuts and styling tailored to your face shape and lifestyle.",
		Items: []catalog.ServiceItem{
			{ID: "cu-01", Name: "Women's Haircut & Blowout", Description: "Consultation, precision cut, shampoo, conditioning treatment, and professional blowout.", PriceFrom: 8000, PriceTo: 12000, Duration: "60 min", Category: "cuts", Popular: true},
			{ID: "cu-02", Name: "Men's Haircut & Style", Description: "Tailored cut with hot towel, shampoo, and style.", PriceFrom: 5500, PriceTo: 7500, Duration: "30–45 min", Category: "cuts"},
			{ID: "cu-03", Name: "Kids' Haircut (Under 12)", Description: "Gentle, fun haircut for children. Includes a treat!", PriceFrom: 3500, PriceTo: 5000, Duration: "30 min", Category: "cuts"},
			{ID: "cu-04", Name: "Bang / Fringe Trim", Description: "Quick trim to keep your bangs on point. Complimentary for regular clients.", PriceFrom: 1500, Duration: "10 min", Category: "cuts"},
			{ID: "cu-05", Name: "Blowout & Style", Description: "Shampoo and professional blowout with heat styling. Perfect for events.", PriceFrom: 5000, PriceTo: 7500, Duration: "45 min", Category: "cuts", Popular: true},
			{ID: "cu-06", Name: "Updo / Event Styling", Description: "Special occasion updo or bridal styling. Includes consultation and trial run.", PriceFrom: 10000, PriceTo: 18000, Duration: "60–90 min", Category: "cuts"},
		},
	},
	{
		Key:         "color",
		Label:       "Color",
		Icon:        "🎨",
		Description: "Expert color services from subtle highlights to bold transformations.",
		Items: []catalog.ServiceItem{
			{ID: "co-01", Name: "Balayage / Ombre", Description: "Hand-painted highlights for a sun-kissed, natural gradient. Includes toner and gloss.", PriceFrom: 15000, PriceTo: 28000, Duration: "2–3 hours", Category: "color", Popular: true},
			{ID: "co-02", Name: "Full Highlights", Description: "Foil highlights for dimensional, all-over brightness. Customised placement.", PriceFrom: 15000, PriceTo: 25000, Duration: "2–2.5 hours", Category: "color"},
			{ID: "co-03", Name: "Partial Highlights", Description: "Face-framing or crown highlights for a subtle lift. Great for first-time color.", PriceFrom: 10000, PriceTo: 17000, Duration: "1.5–2 hours", Category: "color"},
			{ID: "co-04", Name: "Single Process Color", Description: "All-over color or root touch-up with premium ammonia-free formulas.", PriceFrom: 9000, PriceTo: 14000, Duration: "1.5 hours", Category: "color"},
			{ID: "co-05", Name: "Gloss / Toner", Description: "Shine-boosting toner to refresh or adjust tone between colour sessions.", PriceFrom: 5000, PriceTo: 8000, Duration: "30–45 min", Category: "color"},
			{ID: "co-06", Name: "Color Correction", Description: "Fix box-dye disasters or transform unwanted tones. Consultation required.", PriceFrom: 25000, PriceTo: 50000, Duration: "3–5 hours", Category: "color"},
		},
	},
	{
		Key:         "treatments",
		Label:       "Treatments",
		Icon:        "💆",
		Description: "Repair, hydrate, and protect your hair with salon-grade treatments.",
		Items: []catalog.ServiceItem{
			{ID: "tr-01", Name: "Keratin Smoothing Treatment", Description: "Eliminates frizz and adds shine for up to 3 months. Formaldehyde-free formula.", PriceFrom: 25000, PriceTo: 40000, Duration: "2–3 hours", Category: "treatments", Popular: true},
			{ID: "tr-02", Name: "Olaplex Bond Repair", Description: "Patented bond-building treatment to reverse damage from heat, colour, or environment.", PriceFrom: 6500, PriceTo: 9500, Duration: "30–45 min", Category: "treatments"},
			{ID: "tr-03", Name: "Deep Conditioning Mask", Description: "Intense hydration and repair for dry or damaged hair. Includes steam treatment.", PriceFrom: 4500, PriceTo: 6500, Duration: "30 min", Category: "treatments"},
			{ID: "tr-04", Name: "Scalp Detox Treatment", Description: "Exfoliating scalp treatment to remove build-up and promote healthy growth. Includes massage.", PriceFrom: 5500, PriceTo: 7500, Duration: "30 min", Category: "treatments"},
		},
	},
	{
		Key:         "extensions",
		Label:       "Extensions",
		Icon:        "💫",
		Description: "Premium hair extensions for length, volume, or both.",
		Items: []catalog.ServiceItem{
			{ID: "ex-01", Name: "Tape-In Extensions (Full Head)", Description: "Seamless, damage-free tape-in extensions. Includes cut and blend.", PriceFrom: 40000, PriceTo: 70000, Duration: "2–3 hours", Category: "extensions"},
			{ID: "ex-02", Name: "Clip-In Set (Custom Color Match)", Description: "Reusable clip-in extensions colour-matched to your hair. Perfect for events.", PriceFrom: 20000, PriceTo: 40000, Duration: "1 hour (fitting)", Category: "extensions"},
			{ID: "ex-03", Name: "Extension Maintenance", Description: "Move-up and rebond existing tape or bead extensions. Includes wash and style.", PriceFrom: 15000, PriceTo: 25000, Duration: "1.5 hours", Category: "extensions"},
		},
	},
}
