// Package restaurant is the Tsuki Izakaya catalog: hours, menu, offers,
// events, and the availability stub, projected into the JSON results the
// concierge tools return.
package restaurant

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/templateshub/demos-backend/internal/catalog"
)

type itemView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       string  `json:"price"`
	Tags        string  `json:"tags"`
	Allergens   string  `json:"allergens"`
	Badge       *string `json:"badge"`
}

func projectItem(i MenuItem) itemView {
	var badge *string
	if i.Badge != "" {
		badge = &i.Badge
	}
	allergens := "none listed"
	if len(i.Allergens) > 0 {
		allergens = strings.Join(i.Allergens, ", ")
	}
	return itemView{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Price:       catalog.FormatUSD(i.Price),
		Tags:        tagSummary(i.Tags),
		Allergens:   allergens,
		Badge:       badge,
	}
}

func tagSummary(t DietaryTags) string {
	var flags []string
	if t.Vegan {
		flags = append(flags, "Vegan")
	} else if t.Vegetarian {
		flags = append(flags, "Vegetarian")
	}
	if t.GlutenFree {
		flags = append(flags, "GF")
	}
	if t.LactoseFree {
		flags = append(flags, "LF")
	}
	if len(flags) == 0 {
		return "—"
	}
	return strings.Join(flags, ", ")
}

// OpenHours reports the schedule for one date: regular hours, the
// happy-hour window when the weekday has one, and any special closure
// or modified hours on file.
func OpenHours(date string) (string, error) {
	day, err := catalog.ParseDate(date)
	if err != nil {
		return "", err
	}
	regular := weeklyHours[day.Weekday()]

	result := map[string]any{
		"date":      date,
		"dayOfWeek": regular.Label,
	}
	if regular.Open != "" {
		result["regularHours"] = map[string]any{
			"open":  regular.Open,
			"close": regular.Close,
			"note":  regular.Note,
		}
	} else {
		result["regularHours"] = "Closed"
	}

	if special := catalog.ClosureFor(specialClosures, date); special != nil {
		notice := map[string]any{
			"reason": special.Reason,
			"closed": special.Closed,
		}
		if !special.Closed {
			notice["modifiedOpen"] = special.Open
			notice["modifiedClose"] = special.Close
		}
		result["specialNotice"] = notice
	}

	for _, d := range happyHour.Days {
		if d == day.Weekday() {
			result["happyHour"] = map[string]any{
				"start":       happyHour.Start,
				"end":         happyHour.End,
				"description": happyHour.Description,
			}
			break
		}
	}

	return marshal(result)
}

// TodayMenu returns the full menu grouped by category, sold-out items
// omitted.
func TodayMenu() (string, error) {
	type categoryView struct {
		Category    string     `json:"category"`
		Icon        string     `json:"icon"`
		Description string     `json:"description"`
		Items       []itemView `json:"items"`
	}
	compact := make([]categoryView, 0, len(menu))
	for _, cat := range menu {
		cv := categoryView{
			Category:    cat.Label,
			Icon:        cat.Icon,
			Description: cat.Description,
			Items:       make([]itemView, 0, len(cat.Items)),
		}
		for _, i := range cat.Items {
			if i.SoldOut {
				continue
			}
			cv.Items = append(cv.Items, projectItem(i))
		}
		compact = append(compact, cv)
	}
	return marshal(compact)
}

// DishFilter narrows the menu by dietary flags and a free-text query.
type DishFilter struct {
	Vegetarian  bool
	Vegan       bool
	GlutenFree  bool
	LactoseFree bool
	Query       string
}

// FindDishes filters menu items across all categories.
func FindDishes(f DishFilter) (string, error) {
	var results []itemView
	q := strings.ToLower(f.Query)
	for _, cat := range menu {
		for _, i := range cat.Items {
			if i.SoldOut {
				continue
			}
			if f.Vegetarian && !i.Tags.Vegetarian {
				continue
			}
			if f.Vegan && !i.Tags.Vegan {
				continue
			}
			if f.GlutenFree && !i.Tags.GlutenFree {
				continue
			}
			if f.LactoseFree && !i.Tags.LactoseFree {
				continue
			}
			if q != "" &&
				!strings.Contains(strings.ToLower(i.Name), q) &&
				!strings.Contains(strings.ToLower(i.Description), q) {
				continue
			}
			results = append(results, projectItem(i))
		}
	}

	out := map[string]any{
		"count": len(results),
		"items": results,
	}
	if len(results) == 0 {
		out["items"] = []itemView{}
		out["note"] = "No dishes matched these filters."
	}
	return marshal(out)
}

// Offers returns the promotions active on the given date.
func Offers(today string) (string, error) {
	type offerView struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		ValidFrom   string  `json:"validFrom"`
		ValidTo     string  `json:"validTo"`
		Code        *string `json:"code"`
		DineInOnly  bool    `json:"dineInOnly"`
	}
	active := catalog.ActiveOffers(offers, today)
	out := make([]offerView, 0, len(active))
	for _, o := range active {
		var code *string
		if o.Code != "" {
			c := o.Code
			code = &c
		}
		out = append(out, offerView{
			Title:       o.Title,
			Description: o.Description,
			ValidFrom:   o.ValidFrom,
			ValidTo:     o.ValidTo,
			Code:        code,
			DineInOnly:  o.DineInOnly,
		})
	}
	return marshal(out)
}

// Events returns the events inside the inclusive date range, soonest
// first.
func Events(from, to string) (string, error) {
	type eventView struct {
		Title           string `json:"title"`
		Date            string `json:"date"`
		Time            any    `json:"time"`
		Description     string `json:"description"`
		BookingRequired bool   `json:"bookingRequired"`
		TicketPrice     string `json:"ticketPrice"`
		Capacity        any    `json:"capacity"`
	}
	var filtered []Event
	for _, e := range events {
		if e.Date >= from && e.Date <= to {
			filtered = append(filtered, e)
		}
	}
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].Date < filtered[j].Date })

	out := make([]eventView, 0, len(filtered))
	for _, e := range filtered {
		ev := eventView{
			Title:           e.Title,
			Date:            e.Date,
			Description:     e.Description,
			BookingRequired: e.BookingRequired,
			TicketPrice:     "Free / included",
			Capacity:        "Regular seating",
		}
		if e.Time != "" {
			ev.Time = e.Time
		}
		if e.TicketPrice > 0 {
			ev.TicketPrice = catalog.FormatUSD(e.TicketPrice)
		}
		if e.Capacity > 0 {
			ev.Capacity = e.Capacity
		}
		out = append(out, ev)
	}
	return marshal(out)
}

// CheckAvailability is a deterministic stand-in for a real booking
// system. The slot hash depends on date and time only, so a larger
// party can never improve the answer for the same slot.
func CheckAvailability(date, timeOfDay string, partySize int) (string, error) {
	dateDigits := strings.ReplaceAll(date, "-", "")
	if len(dateDigits) > 4 {
		dateDigits = dateDigits[len(dateDigits)-4:]
	}
	seed := dateDigits + strings.ReplaceAll(timeOfDay, ":", "")
	status := catalog.SlotAvailability(seed)
	if partySize > 4 {
		status = status.Worsen()
	}

	var message string
	switch status {
	case catalog.Available:
		message = "Great news — we have a table for you!"
	case catalog.Limited:
		message = "We have limited availability. We recommend booking soon."
	default:
		message = "Unfortunately that slot is fully booked. Try a different time or date."
	}

	return marshal(map[string]any{
		"date":      date,
		"time":      timeOfDay,
		"partySize": partySize,
		"status":    status,
		"message":   message,
	})
}

func marshal(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
