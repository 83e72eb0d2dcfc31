package dental

import (
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/templateshub/demos-backend/internal/catalog"
	"github.com/templateshub/demos-backend/internal/tools"
)

// SystemPrompt frames the WhitePeak Dental assistant persona.
const SystemPrompt = `You are the calm, reassuring AI assistant for **WhitePeak Dental**, a modern dental clinic in Luxembourg City.

Rules you MUST follow:
1. Be warm, clear, and concise. Use short paragraphs. Never produce walls of text.
2. When a patient asks about hours, treatments, pricing, offers, or events — **ALWAYS call the appropriate tool**. Never guess or invent this information.
3. If the patient's request is ambiguous (e.g. "book an appointment" without a date, time, or treatment), **ask a clarifying question first**.
4. For appointment inquiries, collect **date, time, and type of treatment** before calling check_appointment_availability.
5. Prices are returned in EUR cents. Convert to euros for display (e.g. 9500 → €95.00). For price ranges, show "€X – €Y". Mention insurance coverage notes when the tool result includes them.
6. Never give medical advice or a diagnosis. For pain or urgent issues, recommend the emergency exam and share the emergency line for closed days.
7. Stay on-topic. If asked about things unrelated to the clinic, politely redirect.
8. Keep the tone professional and reassuring — many patients are nervous about dental visits.

Clinic details:
- Address: 12 Avenue de la Liberté, 1930 Luxembourg City
- Phone: +352 123 456 789
- Email: smile@whitepeakdental.lu
- Emergency line: +352 123 456 789 (24/7 for registered patients)`

// NewRegistry wires the six clinic tools. now supplies "today" for the
// date defaults.
func NewRegistry(now func() time.Time) *tools.Registry {
	today := func() string { return catalog.ISODate(now()) }

	return tools.NewRegistry(
		tools.Tool{
			Def: mcp.NewTool("get_open_hours",
				mcp.WithDescription("Get clinic opening hours for a specific date. Returns regular schedule, any special closure / modified hours, and the emergency line on closed days."),
				mcp.WithString("date", mcp.Description(`ISO date "YYYY-MM-DD". Defaults to today if omitted.`)),
			),
			Call: func(args map[string]any) (string, error) {
				date := tools.StringArg(args, "date")
				if date == "" {
					date = today()
				}
				return OpenHours(date)
			},
		},
		tools.Tool{
			Def: mcp.NewTool("get_treatments",
				mcp.WithDescription("Return the full list of treatments organised by category (general, cosmetic, orthodontics, emergency). Each item includes price range, duration, and insurance coverage notes."),
			),
			Call: func(args map[string]any) (string, error) {
				return Treatments()
			},
		},
		tools.Tool{
			Def: mcp.NewTool("find_treatments",
				mcp.WithDescription("Search or filter treatments by category and/or a free-text query (name or description)."),
				mcp.WithString("category", mcp.Description("Filter by category key: general, cosmetic, orthodontics, emergency.")),
				mcp.WithString("query", mcp.Description("Free-text search matched against treatment name and description (case-insensitive).")),
				mcp.WithBoolean("popular", mcp.Description("If true, return only popular / recommended treatments.")),
			),
			Call: func(args map[string]any) (string, error) {
				return FindTreatments(TreatmentFilter{
					Category: tools.StringArg(args, "category"),
					Query:    tools.StringArg(args, "query"),
					Popular:  tools.BoolArg(args, "popular"),
				})
			},
		},
		tools.Tool{
			Def: mcp.NewTool("get_offers",
				mcp.WithDescription("Return currently active promotions and offers."),
			),
			Call: func(args map[string]any) (string, error) {
				return Offers(today())
			},
		},
		tools.Tool{
			Def: mcp.NewTool("get_events",
				mcp.WithDescription("Return upcoming clinic events within an optional date range."),
				mcp.WithString("from", mcp.Description(`Start date "YYYY-MM-DD". Defaults to today.`)),
				mcp.WithString("to", mcp.Description(`End date "YYYY-MM-DD". Defaults to 90 days from now.`)),
			),
			Call: func(args map[string]any) (string, error) {
				from := tools.StringArg(args, "from")
				if from == "" {
					from = today()
				}
				to := tools.StringArg(args, "to")
				if to == "" {
					to = catalog.ISODate(now().AddDate(0, 0, 90))
				}
				return Events(from, to)
			},
		},
		tools.Tool{
			Def: mcp.NewTool("check_appointment_availability",
				mcp.WithDescription("Check appointment availability for a given date, time, and treatment type. Returns available, limited, or unavailable. (Stub — real integration pending.)"),
				mcp.WithString("date", mcp.Description(`ISO date "YYYY-MM-DD".`), mcp.Required()),
				mcp.WithString("time", mcp.Description(`"HH:mm" (24-hour).`), mcp.Required()),
				mcp.WithString("treatment", mcp.Description("Type of treatment requested.")),
			),
			Call: func(args map[string]any) (string, error) {
				return CheckAvailability(
					tools.StringArg(args, "date"),
					tools.StringArg(args, "time"),
					tools.StringArg(args, "treatment"),
				)
			},
		},
	)
}
