package dental

import "github.com/templateshub/demos-backend/internal/catalog"

var treatments = []catalog.ServiceCategory{
	{
		Key:         "general",
		Label:       "General Dentistry",
		Icon:        "🦷",
		Description: "Preventive care and routine treatments to keep your smile healthy.",
		Items: []catalog.ServiceItem{
			{ID: "g-01", Name: "Comprehensive Exam & Digital X-Rays", Description: "Full oral examination with AI-assisted digital panoramic and bitewing X-rays.", PriceFrom: 12000, Duration: "45 min", Category: "general", Popular: true, Coverage: "Covered by most Luxembourg health plans"},
			{ID: "g-02", Name: "Professional Cleaning (Prophylaxis)", Description: "Ultrasonic scaling, polishing, and fluoride treatment. Includes gum health assessment.", PriceFrom: 9500, Duration: "30–45 min", Category: "general", Coverage: "Covered annually by CNS"},
			{ID: "g-03", Name: "Composite Filling", Description: "Tooth-coloured resin filling matched to your natural shade. Mercury-free and durable.", PriceFrom: 15000, PriceTo: 25000, Duration: "30–45 min", Category: "general"},
			{ID: "g-04", Name: "Root Canal Therapy", Description: "Endodontic treatment to save an infected tooth. Performed under local anaesthesia with microscope guidance.", PriceFrom: 45000, PriceTo: 80000, Duration: "60–90 min", Category: "general"},
			{ID: "g-05", Name: "Tooth Extraction (Simple)", Description: "Gentle extraction under local anaesthesia with follow-up care instructions.", PriceFrom: 15000, PriceTo: 25000, Duration: "30 min", Category: "general"},
			{ID: "g-06", Name: "Night Guard / Mouth Guard", Description: "Custom-moulded guard for bruxism or sports protection. 3D-printed for perfect fit.", PriceFrom: 35000, Duration: "2 appointments", Category: "general"},
		},
	},
	{
		Key:         "cosmetic",
		Label:       "Cosmetic Dentistry",
		Icon:        "✨",
		Description: "Transform your smile with our advanced aesthetic treatments.",
		Items: []catalog.ServiceItem{
			{ID: "c-01", Name: "Professional Teeth Whitening", Description: "In-office Philips Zoom whitening. Up to 8 shades lighter in one visit.", PriceFrom: 45000, Duration: "75 min", Category: "cosmetic", Popular: true},
			{ID: "c-02", Name: "Porcelain Veneers", Description: "Ultra-thin ceramic shells custom-crafted to reshape and perfect your smile. Per tooth.", PriceFrom: 80000, PriceTo: 120000, Duration: "2–3 appointments", Category: "cosmetic"},
			{ID: "c-03", Name: "Dental Bonding", Description: "Sculpted composite resin to repair chips, gaps, or discolouration. Same-day results.", PriceFrom: 20000, PriceTo: 40000, Duration: "30–60 min", Category: "cosmetic"},
			{ID: "c-04", Name: "Gum Contouring", Description: "Laser-assisted reshaping for a balanced, even gum line. Minimal discomfort.", PriceFrom: 30000, PriceTo: 60000, Duration: "45 min", Category: "cosmetic"},
			{ID: "c-05", Name: "Smile Makeover Consultation", Description: "Comprehensive digital smile design with mock-ups. Combine multiple treatments for your ideal result.", PriceFrom: 0, Duration: "60 min", Category: "cosmetic", Coverage: "Free consultation"},
		},
	},
	{
		Key:         "orthodontics",
		Label:       "Orthodontics",
		Icon:        "😁",
		Description: "Straighten your teeth discreetly with modern orthodontic solutions.",
		Items: []catalog.ServiceItem{
			{ID: "o-01", Name: "Invisalign Clear Aligners", Description: "Nearly invisible custom aligners. 3D treatment plan with predictable results.", PriceFrom: 350000, PriceTo: 550000, Duration: "6–18 months", Category: "orthodontics", Popular: true},
			{ID: "o-02", Name: "Ceramic Braces", Description: "Tooth-coloured brackets for a subtle look with powerful correction.", PriceFrom: 400000, PriceTo: 550000, Duration: "12–24 months", Category: "orthodontics"},
			{ID: "o-03", Name: "Retainers", Description: "Custom-fitted retainers to maintain results after orthodontic treatment.", PriceFrom: 25000, PriceTo: 40000, Duration: "1 appointment", Category: "orthodontics"},
			{ID: "o-04", Name: "Orthodontic Consultation", Description: "Full assessment with 3D scan and treatment options. Includes digital simulation.", PriceFrom: 0, Duration: "45 min", Category: "orthodontics", Coverage: "Free initial consultation"},
		},
	},
	{
		Key:         "emergency",
		Label:       "Emergency Care",
		Icon:        "🚨",
		Description: "Same-day emergency appointments for urgent dental issues.",
		Items: []catalog.ServiceItem{
			{ID: "e-01", Name: "Emergency Exam & Pain Relief", Description: "Immediate assessment and pain management. X-rays and diagnosis included.", PriceFrom: 15000, Duration: "30 min", Category: "emergency", Popular: true},
			{ID: "e-02", Name: "Broken / Chipped Tooth Repair", Description: "Same-day bonding or temporary crown to restore function and aesthetics.", PriceFrom: 20000, PriceTo: 45000, Duration: "30–60 min", Category: "emergency"},
			{ID: "e-03", Name: "Lost Filling / Crown Recement", Description: "Re-bonding or temporary replacement to protect the tooth until definitive treatment.", PriceFrom: 10000, PriceTo: 20000, Duration: "20 min", Category: "emergency"},
			{ID: "e-04", Name: "Abscess / Infection Management", Description: "Drainage, antibiotics if indicated, and follow-up plan. Pain relief priority.", PriceFrom: 20000, PriceTo: 40000, Duration: "30–45 min", Category: "emergency"},
		},
	},
}
