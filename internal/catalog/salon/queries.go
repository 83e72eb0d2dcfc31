// Package salon is the Luna Hair Studio catalog: hours, services,
// offers, and events, projected into the JSON results the assistant's
// tools return.
package salon

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/templateshub/demos-backend/internal/catalog"
)

type serviceView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Duration    string `json:"duration"`
	Popular     bool   `json:"popular"`
}

func projectService(i catalog.ServiceItem) serviceView {
	return serviceView{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Price:       catalog.PriceRange(i.PriceFrom, i.PriceTo, catalog.FormatUSDWhole),
		Duration:    i.Duration,
		Popular:     i.Popular,
	}
}

// OpenHours reports the studio schedule for one date, including any
// holiday closure or early close on file.
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
		note := regular.Note
		if note == "" {
			note = "Closed"
		}
		result["regularHours"] = map[string]any{"closed": true, "note": note}
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

	return marshal(result)
}

// Services returns the full service list grouped by category.
func Services() (string, error) {
	type categoryView struct {
		Category    string        `json:"category"`
		Key         string        `json:"key"`
		Icon        string        `json:"icon"`
		Description string        `json:"description"`
		Items       []serviceView `json:"items"`
	}
	compact := make([]categoryView, 0, len(services))
	for _, cat := range services {
		cv := categoryView{
			Category:    cat.Label,
			Key:         cat.Key,
			Icon:        cat.Icon,
			Description: cat.Description,
			Items:       make([]serviceView, 0, len(cat.Items)),
		}
		for _, i := range cat.Items {
			cv.Items = append(cv.Items, projectService(i))
		}
		compact = append(compact, cv)
	}
	return marshal(compact)
}

// ServiceFilter narrows services by category key, popularity, and a
// free-text query.
type ServiceFilter struct {
	Category string
	Query    string
	Popular  bool
}

// FindServices filters services across all categories.
func FindServices(f ServiceFilter) (string, error) {
	var results []serviceView
	q := strings.ToLower(f.Query)
	for _, cat := range services {
		for _, i := range cat.Items {
			if f.Category != "" && i.Category != f.Category {
				continue
			}
			if f.Popular && !i.Popular {
				continue
			}
			if q != "" &&
				!strings.Contains(strings.ToLower(i.Name), q) &&
				!strings.Contains(strings.ToLower(i.Description), q) {
				continue
			}
			results = append(results, projectService(i))
		}
	}

	out := map[string]any{
		"count": len(results),
		"items": results,
	}
	if len(results) == 0 {
		out["items"] = []serviceView{}
		out["note"] = "No services matched these filters."
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
		Free            bool   `json:"free"`
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
			Free:            e.Free,
		}
		if e.Time != "" {
			ev.Time = e.Time
		}
		out = append(out, ev)
	}
	return marshal(out)
}

// CheckAvailability is a deterministic stand-in for a real booking
// system. The requested service folds into the slot hash so different
// services can answer differently for the same time.
func CheckAvailability(date, timeOfDay, service string) (string, error) {
	dateDigits := strings.ReplaceAll(date, "-", "")
	if len(dateDigits) > 4 {
		dateDigits = dateDigits[len(dateDigits)-4:]
	}
	seed := dateDigits + strings.ReplaceAll(timeOfDay, ":", "") + strconv.Itoa(len(service))
	status := catalog.SlotAvailability(seed)

	if service == "" {
		service = "general"
	}

	var message string
	switch status {
	case catalog.Available:
		message = "That slot is available! Would you like to book it?"
	case catalog.Limited:
		message = "We have limited availability around that time. We recommend booking soon."
	default:
		message = "That slot is fully booked. Would you like to try a different time?"
	}

	return marshal(map[string]any{
		"date":    date,
		"time":    timeOfDay,
		"service": service,
		"status":  status,
		"message": message,
	})
}

func marshal(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
