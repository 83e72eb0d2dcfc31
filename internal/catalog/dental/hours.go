package dental

import (
	"time"

	"github.com/templateshub/demos-backend/internal/catalog"
)

// weeklyHours is indexed by time.Weekday (Sunday = 0).
var weeklyHours = [7]catalog.DayHours{
	{Day: time.Sunday, Label: "Sunday", Note: "Emergency line available"},
	{Day: time.Monday, Label: "Monday", Open: "08:00", Close: "20:00"},
	{Day: time.Tuesday, Label: "Tuesday", Open: "08:00", Close: "20:00"},
	{Day: time.Wednesday, Label: "Wednesday", Open: "08:00", Close: "20:00"},
	{Day: time.Thursday, Label: "Thursday", Open: "08:00", Close: "20:00"},
	{Day: time.Friday, Label: "Friday", Open: "08:00", Close: "20:00"},
	{Day: time.Saturday, Label: "Saturday", Open: "09:00", Close: "16:00", Note: "Half day"},
}

var emergencyLine = struct {
	Phone     string
	Available string
}{
	Phone:     "+352 123 456 789",
	Available: "24/7 for registered patients",
}

var specialClosures = []catalog.SpecialClosure{
	{Date: "2026-04-06", Reason: "Easter Monday — Closed", Closed: true},
	{Date: "2026-05-01", Reason: "Labour Day — Closed", Closed: true},
	{Date: "2026-06-23", Reason: "Luxembourg National Day — Closed", Closed: true},
	{Date: "2026-08-15", Reason: "Assumption Day — Closed", Closed: true},
	{Date: "2026-12-25", Reason: "Christmas Day — Closed", Closed: true},
	{Date: "2026-12-26", Reason: "St. Stephen's Day — Closed", Closed: true},
	{Date: "2026-12-31", Reason: "New Year's Eve — Morning only", Closed: false, Open: "08:00", Close: "13:00"},
}
