package restaurant

import (
	"time"

	"github.com/templateshub/demos-backend/internal/catalog"
)

// weeklyHours is indexed by time.Weekday (Sunday = 0).
var weeklyHours = [7]catalog.DayHours{
	{Day: time.Sunday, Label: "Sunday", Open: "16:00", Close: "22:00", Note: "Early close"},
	{Day: time.Monday, Label: "Monday", Open: "17:00", Close: "23:00"},
	{Day: time.Tuesday, Label: "Tuesday", Open: "17:00", Close: "23:00"},
	{Day: time.Wednesday, Label: "Wednesday", Open: "17:00", Close: "23:00"},
	{Day: time.Thursday, Label: "Thursday", Open: "17:00", Close: "23:30"},
	{Day: time.Friday, Label: "Friday", Open: "17:00", Close: "01:00", Note: "Late night"},
	{Day: time.Saturday, Label: "Saturday", Open: "17:00", Close: "01:00", Note: "Late night"},
}

// happyHour is a recurring promotional window on the listed weekdays.
var happyHour = struct {
	Start       string
	End         string
	Days        []time.Weekday
	Description string
}{
	Start:       "17:00",
	End:         "19:00",
	Days:        []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
	Description: "Half-price house sake, $5 edamame & gyoza, $8 yakitori flights.",
}

var specialClosures = []catalog.SpecialClosure{
	{Date: "2026-03-20", Reason: "Spring Equinox — Private Omakase Event", Closed: true},
	{Date: "2026-04-29", Reason: "Shōwa Day — Holiday Hours", Closed: false, Open: "16:00", Close: "22:00"},
	{Date: "2026-05-05", Reason: "Children's Day — Closed for staff celebration", Closed: true},
	{Date: "2026-07-04", Reason: "Independence Day — Limited seating (roof-deck open)", Closed: false, Open: "18:00", Close: "00:00"},
	{Date: "2026-12-31", Reason: "New Year's Eve — Toshikoshi Soba Special (ticketed)", Closed: false, Open: "19:00", Close: "02:00"},
	{Date: "2027-01-01", Reason: "New Year's Day — Closed", Closed: true},
}
