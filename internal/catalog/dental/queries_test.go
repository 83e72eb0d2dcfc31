package dental

import (
	"encoding/json"
	"strings"
	"testing"
)

func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		t.Fatalf("invalid JSON result: %v\n%s", err, raw)
	}
	return out
}

func decodeList(t *testing.T, raw string) []map[string]any {
	t.Helper()
	var out []map[string]any
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		t.Fatalf("invalid JSON result: %v\n%s", err, raw)
	}
	return out
}

func TestOpenHoursSundayCarriesEmergencyLine(t *testing.T) {
	raw, err := OpenHours("2026-03-22") // a Sunday
	if err != nil {
		t.Fatal(err)
	}
	got := decode(t, raw)

	hours := got["regularHours"].(map[string]any)
	if hours["closed"] != true || hours["note"] != "Emergency line available" {
		t.Errorf("regularHours = %v", hours)
	}
	line, ok := got["emergencyLine"].(map[string]any)
	if !ok {
		t.Fatalf("missing emergencyLine: %s", raw)
	}
	if line["phone"] != "+352 123 456 789" {
		t.Errorf("phone = %v", line["phone"])
	}
}

func TestOpenHoursHolidayClosureCarriesEmergencyLine(t *testing.T) {
	raw, err := OpenHours("2026-04-06") // Easter Monday
	if err != nil {
		t.Fatal(err)
	}
	got := decode(t, raw)

	notice := got["specialNotice"].(map[string]any)
	if notice["closed"] != true {
		t.Errorf("closed = %v, want true", notice["closed"])
	}
	if _, ok := got["emergencyLine"]; !ok {
		t.Error("holiday closure must include the emergency line")
	}
}

func TestOpenHoursOpenDayOmitsEmergencyLine(t *testing.T) {
	raw, err := OpenHours("2026-03-17") // a Tuesday
	if err != nil {
		t.Fatal(err)
	}
	got := decode(t, raw)
	if _, ok := got["emergencyLine"]; ok {
		t.Error("open days must not carry the emergency line")
	}
	hours := got["regularHours"].(map[string]any)
	if hours["open"] != "08:00" || hours["close"] != "20:00" {
		t.Errorf("hours = %v", hours)
	}
}

func TestTreatmentsEuroAndCoverage(t *testing.T) {
	raw, err := Treatments()
	if err != nil {
		t.Fatal(err)
	}
	cats := decodeList(t, raw)
	if len(cats) != 4 {
		t.Fatalf("got %d categories, want 4", len(cats))
	}
	for _, c := range cats {
		for _, it := range c["items"].([]any) {
			item := it.(map[string]any)
			price := item["price"].(string)
			if price != "Free" && !strings.HasPrefix(price, "€") && !strings.HasPrefix(price, "from €") {
				t.Errorf("%v: price %q not in euros", item["name"], price)
			}
			if item["id"] == "g-02" && item["coverage"] != "Covered annually by CNS" {
				t.Errorf("g-02 coverage = %v", item["coverage"])
			}
		}
	}
}

func TestFreeConsultationProjectsFree(t *testing.T) {
	raw, err := FindTreatments(TreatmentFilter{Query: "smile makeover"})
	if err != nil {
		t.Fatal(err)
	}
	got := decode(t, raw)
	items := got["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("got %d items, want the consultation", len(items))
	}
	if price := items[0].(map[string]any)["price"]; price != "Free" {
		t.Errorf("price = %v, want Free", price)
	}
}

func TestFindTreatmentsByCategory(t *testing.T) {
	raw, err := FindTreatments(TreatmentFilter{Category: "emergency"})
	if err != nil {
		t.Fatal(err)
	}
	got := decode(t, raw)
	if got["count"].(float64) != 4 {
		t.Errorf("count = %v, want 4 emergency treatments", got["count"])
	}

	raw, err = FindTreatments(TreatmentFilter{Category: "orthodontics", Popular: true})
	if err != nil {
		t.Fatal(err)
	}
	got = decode(t, raw)
	items := got["items"].([]any)
	if len(items) != 1 || items[0].(map[string]any)["name"] != "Invisalign Clear Aligners" {
		t.Errorf("items = %v", items)
	}
}

func TestFindTreatmentsEmptyNote(t *testing.T) {
	raw, err := FindTreatments(TreatmentFilter{Query: "balayage"})
	if err != nil {
		t.Fatal(err)
	}
	got := decode(t, raw)
	if got["count"].(float64) != 0 {
		t.Fatalf("count = %v, want 0", got["count"])
	}
	if got["note"] != "No treatments matched these filters." {
		t.Errorf("note = %v", got["note"])
	}
}

func TestOffersSeasonalWindow(t *testing.T) {
	raw, err := Offers("2026-06-15")
	if err != nil {
		t.Fatal(err)
	}
	titles := map[string]bool{}
	for _, o := range decodeList(t, raw) {
		titles[o["title"].(string)] = true
	}
	if titles["Spring Whitening Special"] {
		t.Error("spring offer must have lapsed by mid-June")
	}
	if !titles["New Patient Welcome Package"] {
		t.Error("year-round offer missing")
	}
}

func TestEventsSortedAcrossDeclarationOrder(t *testing.T) {
	// ev-04 is declared after ev-03 but happens first.
	raw, err := Events("2026-03-01", "2026-06-30")
	if err != nil {
		t.Fatal(err)
	}
	list := decodeList(t, raw)
	if len(list) != 5 {
		t.Fatalf("got %d events, want 5", len(list))
	}
	if list[0]["title"] != "World Oral Health Day — Free Screenings" {
		t.Errorf("first event = %v, want the March 20 screenings", list[0]["title"])
	}
}

func TestCheckAvailabilityEchoesTreatment(t *testing.T) {
	raw, err := CheckAvailability("2026-06-14", "10:00", "whitening")
	if err != nil {
		t.Fatal(err)
	}
	got := decode(t, raw)
	if got["treatment"] != "whitening" {
		t.Errorf("treatment = %v", got["treatment"])
	}
	switch got["status"] {
	case "available", "limited", "unavailable":
	default:
		t.Errorf("status = %v", got["status"])
	}

	raw2, err := CheckAvailability("2026-06-14", "10:00", "whitening")
	if err != nil {
		t.Fatal(err)
	}
	if raw != raw2 {
		t.Fatal("same slot and treatment must produce the same answer")
	}
}
