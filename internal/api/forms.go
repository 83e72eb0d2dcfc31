package api

import (
	"encoding/json"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/templateshub/demos-backend/internal/catalog"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[\d\s\-+().]{7,20}$`)
)

func validEmail(v string) bool { return emailRe.MatchString(v) }
func validPhone(v string) bool { return phoneRe.MatchString(v) }

var seatingOptions = []string{"Counter", "Table", "Omakase"}

type reserveRequest struct {
	Name      string          `json:"name"`
	Phone     string          `json:"phone"`
	Email     string          `json:"email"`
	PartySize json.RawMessage `json:"partySize"`
	Date      string          `json:"date"`
	Time      string          `json:"time"`
	Seating   string          `json:"seating"`
	Notes     string          `json:"notes"`
}

// reserveHandler validates a table reservation request and logs it.
// Errors accumulate into a flat list so the form can show all problems
// at once.
func reserveHandler(now func() time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req reserveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "errors": []string{"Invalid request body."}})
			return
		}

		var errs []string

		name := strings.TrimSpace(req.Name)
		if len(name) < 2 || len(name) > 100 {
			errs = append(errs, "Full name is required (2–100 characters).")
		}
		if !validPhone(strings.TrimSpace(req.Phone)) {
			errs = append(errs, "A valid phone number is required.")
		}
		if req.Email != "" && !validEmail(strings.TrimSpace(req.Email)) {
			errs = append(errs, "If provided, email must be a valid address.")
		}

		var size int
		if err := json.Unmarshal(req.PartySize, &size); err != nil || size < 1 || size > 12 {
			errs = append(errs, "Party size must be between 1 and 12.")
		}

		if req.Date == "" {
			errs = append(errs, "Preferred date is required.")
		} else if req.Date < catalog.ISODate(now()) {
			errs = append(errs, "Date cannot be in the past.")
		}
		if req.Time == "" {
			errs = append(errs, "Preferred time is required.")
		}

		validSeating := false
		for _, s := range seatingOptions {
			if req.Seating == s {
				validSeating = true
				break
			}
		}
		if !validSeating {
			errs = append(errs, "Seating preference must be Counter, Table, or Omakase.")
		}

		if len(req.Notes) > 500 {
			errs = append(errs, "Notes must be under 500 characters.")
		}

		if len(errs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "errors": errs})
			return
		}

		log.Printf("[reserve] name=%q phone=%q party=%d date=%s time=%s seating=%s",
			name, strings.TrimSpace(req.Phone), size, req.Date, req.Time, req.Seating)

		c.JSON(http.StatusOK, gin.H{
			"ok":      true,
			"message": "Reservation request received. We'll confirm shortly.",
		})
	}
}

type contactRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// contactHandler validates the studio contact form. Errors come back
// keyed by field name.
func contactHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"errors":  gin.H{"form": "Something went wrong. Please try again."},
			})
			return
		}

		errs := gin.H{}
		if len(strings.TrimSpace(req.Name)) < 2 {
			errs["name"] = "Name must be at least 2 characters."
		}
		if !validEmail(req.Email) {
			errs["email"] = "Please enter a valid email address."
		}
		if !validPhone(req.Phone) {
			errs["phone"] = "Please enter a valid phone number."
		}
		if len(strings.TrimSpace(req.Message)) < 10 {
			errs["message"] = "Message must be at least 10 characters."
		}

		if len(errs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": errs})
			return
		}

		log.Printf("[contact] name=%q email=%q phone=%q", strings.TrimSpace(req.Name),
			strings.TrimSpace(req.Email), strings.TrimSpace(req.Phone))

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Thank you! We'll get back to you within 24 hours.",
		})
	}
}

var allowedTreatments = map[string]bool{
	"cosmetic":     true,
	"general":      true,
	"orthodontics": true,
	"emergency":    true,
}

type leadRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Date      string `json:"date"`
	Treatment string `json:"treatment"`
}

// leadHandler validates a clinic lead submission. Field errors answer
// 422; a malformed body answers 400.
func leadHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req leadRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"ok":     false,
				"errors": gin.H{"_form": "Invalid request body."},
			})
			return
		}

		errs := gin.H{}
		if strings.TrimSpace(req.Name) == "" {
			errs["name"] = "Full name is required."
		}
		if strings.TrimSpace(req.Phone) == "" {
			errs["phone"] = "Phone number is required."
		} else if !validPhone(strings.TrimSpace(req.Phone)) {
			errs["phone"] = "Please enter a valid phone number."
		}
		if req.Email != "" && !validEmail(strings.TrimSpace(req.Email)) {
			errs["email"] = "Please enter a valid email address."
		}
		if req.Treatment != "" && !allowedTreatments[strings.ToLower(req.Treatment)] {
			errs["treatment"] = "Invalid treatment selection."
		}

		if len(errs) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false, "errors": errs})
			return
		}

		log.Printf("[lead] name=%q phone=%q treatment=%q", strings.TrimSpace(req.Name),
			strings.TrimSpace(req.Phone), req.Treatment)

		c.JSON(http.StatusOK, gin.H{
			"ok":      true,
			"message": "Thank you! We'll contact you within 15 minutes during business hours.",
		})
	}
}
