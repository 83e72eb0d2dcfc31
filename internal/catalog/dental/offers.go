package dental

import "github.com/templateshub/demos-backend/internal/catalog"

var offers = []catalog.Offer{
	{
		ID:    "off-01",
		Title: "New Patient Welcome Package",
		Description: "Comprehensive exam, digital X-rays, professional cleaning, and a personalised treatment plan — " +
			"all for €99 (normally €215). First visit only.",
		ValidFrom: "2026-01-01",
		ValidTo:   "2026-12-31",
		Code:      "WELCOME99",
		Category:  "new-patient",
	},
	{
		ID:          "off-02",
		Title:       "Free Orthodontic Consultation",
		Description: "Complimentary Invisalign or braces consultation with 3D digital smile simulation. No obligation.",
		ValidFrom:   "2026-01-01",
		ValidTo:     "2026-12-31",
		Category:    "general",
	},
	{
		ID:          "off-03",
		Title:       "Spring Whitening Special",
		Description: "Professional Zoom whitening for €349 (save €100). Includes take-home touch-up kit.",
		ValidFrom:   "2026-03-01",
		ValidTo:     "2026-05-31",
		Code:        "SPRING349",
		Category:    "seasonal",
	},
	{
		ID:          "off-04",
		Title:       "Family Plan — 10% Off",
		Description: "Register 3+ family members and receive 10% off all preventive treatments for the household.",
		ValidFrom:   "2026-01-01",
		ValidTo:     "2026-12-31",
		Category:    "loyalty",
	},
	{
		ID:          "off-05",
		Title:       "Refer a Friend",
		Description: "When your referral completes their first appointment, you both receive a €50 credit toward any treatment.",
		ValidFrom:   "2026-01-01",
		ValidTo:     "2027-01-01",
		Category:    "loyalty",
	},
}
