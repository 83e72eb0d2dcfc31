// Package catalog holds the read-only reference primitives shared by the
// demo sites: weekly hours with special closures, offer validity windows,
// minor-unit price formatting, and the deterministic availability stub.
package catalog

import (
	"fmt"
	"time"
)

// DayHours is one row of a weekly schedule. An empty Open means closed
// that day.
type DayHours struct {
	Day   time.Weekday
	Label string
	Open  string
	Close string
	Note  string
}

// SpecialClosure overrides the regular schedule for one exact date:
// either fully closed or with modified hours.
type SpecialClosure struct {
	Date   string
	Reason string
	Closed bool
	Open   string
	Close  string
}

// ParseDate parses an ISO "YYYY-MM-DD" date.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}
	return t, nil
}

// ISODate formats t as "YYYY-MM-DD".
func ISODate(t time.Time) string {
	return t.Format("2006-01-02")
}

// ClosureFor returns the special closure on file for the exact date, if any.
func ClosureFor(closures []SpecialClosure, date string) *SpecialClosure {
	for i := range closures {
		if closures[i].Date == date {
			return &closures[i]
		}
	}
	return nil
}

// Offer is a promotion with an inclusive validity window.
type Offer struct {
	ID          string
	Title       string
	Description string
	ValidFrom   string
	ValidTo     string
	Code        string
	Category    string
	DineInOnly  bool
}

// ActiveOffers filters offers whose validity window covers the date.
// ISO date strings compare lexicographically, so no parsing is needed.
func ActiveOffers(offers []Offer, date string) []Offer {
	active := make([]Offer, 0, len(offers))
	for _, o := range offers {
		if o.ValidFrom <= date && o.ValidTo >= date {
			active = append(active, o)
		}
	}
	return active
}

// ServiceItem is a bookable service with a single price or a range,
// shared by the salon and dental catalogs. Prices are in minor currency
// units.
type ServiceItem struct {
	ID          string
	Name        string
	Description string
	PriceFrom   int
	PriceTo     int // 0 = single "from" price
	Duration    string
	Category    string
	Popular     bool
	Coverage    string // insurance note, dental only
}

type ServiceCategory struct {
	Key         string
	Label       string
	Icon        string
	Description string
	Items       []ServiceItem
}

// FormatUSD renders cents as "$12.00".
func FormatUSD(cents int) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}

// FormatUSDWhole renders cents as "$80", the salon price style.
func FormatUSDWhole(cents int) string {
	return fmt.Sprintf("$%.0f", float64(cents)/100)
}

// FormatEUR renders cents as "€120.00".
func FormatEUR(cents int) string {
	return fmt.Sprintf("€%.2f", float64(cents)/100)
}

// PriceRange renders a service price with the given formatter:
// "$80 – $120" for ranges, "from $80" otherwise.
func PriceRange(from, to int, format func(int) string) string {
	if to > 0 {
		return format(from) + " – " + format(to)
	}
	return "from " + format(from)
}

// Availability is the three-tier pseudo-status of the booking stub.
type Availability string

const (
	Available   Availability = "available"
	Limited     Availability = "limited"
	Unavailable Availability = "unavailable"
)

// SlotAvailability derives a deterministic status from a slot seed
// (date and time, plus any service discriminator). This is a stand-in
// for a real booking integration; only determinism and the three-tier
// interface matter, not the hashing itself.
func SlotAvailability(seed string) Availability {
	sum := 0
	for _, b := range []byte(seed) {
		sum += int(b)
	}
	switch mod := sum % 10; {
	case mod < 5:
		return Available
	case mod < 8:
		return Limited
	default:
		return Unavailable
	}
}

// Worsen shifts the status one tier toward scarcity. Large parties can
// only hold or lose availability, never gain it.
func (a Availability) Worsen() Availability {
	if a == Available {
		return Limited
	}
	return Unavailable
}
