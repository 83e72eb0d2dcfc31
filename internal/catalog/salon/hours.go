package salon

import (
	"time"

	"github.com/templateshub/demos-backend/internal/catalog"
)

// weeklyHours is indexed by time.Weekday (Sunday = 0).
var weeklyHours = [7]catalog.DayHours{
	{Day: time.Sunday, Label: "Sunday", Note: "Closed"},
	{Day: time.Monday, Label: "Monday", Open: "09:00", Close: "20:00"},
	{Day: time.Tuesday, Label: "Tuesday", Open: "09:00", Close: "20:00"},
	{Day: time.Wednesday, Label: "Wednesday", Open: "09:00", Close: "20:00"},
	{Day: time.Thursday, Label: "Thursday", Open: "09:00", Close: "20:00"},
	{Day: time.Friday, Label: "Friday", Open: "09:00", Close: "20:00"},
	{Day: time.Saturday, Label: "Saturday", Open: "10:00", Close: "18:00"},
}

var specialClosures = []catalog.SpecialClosure{
	{Date: "2026-01-01", Reason: "New Year's Day — Closed", Closed: true},
	{Date: "2026-05-25", Reason: "Memorial Day — Closed", Closed: true},
	{Date: "2026-07-04", Reason: "Independence Day — Closed", Closed: true},
	{Date: "2026-09-07", Reason: "Labor Day — Closed", Closed: true},
	{Date: "2026-11-26", Reason: "Thanksgiving — Closed", Closed: true},
	{Date: "2026-12-25", Reason: "Christmas Day — Closed", Closed: true},
	{Date: "2026-12-24", Reason: "Christmas Eve — Early close", Closed: false, Open: "09:00", Close: "14:00"},
	{Date: "2026-12-31", Reason: "New Year's Eve — Early close", Closed: false, Open: "09:00", Close: "15:00"},
}
