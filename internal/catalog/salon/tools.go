package salon

import (
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/templateshub/demos-backend/internal/catalog"
	"github.com/templateshub/demos-backend/internal/tools"
)

// SystemPrompt frames the Luna persona for the studio assistant.
const SystemPrompt = `You are Luna, the friendly AI assistant for **Luna Hair Studio**, a premium hair salon in SoHo, New York City.

Rules you MUST follow:
1. Be warm, friendly, and concise. Use short paragraphs. Never produce walls of text.
2. When a client asks about hours, services, pricing, offers, or events — **ALWAYS call the appropriate tool**. Never guess or invent this information.
3. If the client's request is ambiguous (e.g. "book an appointment" without specifying a date, time, or service), **ask a clarifying question first**.
4. For appointment inquiries, collect **date, time, and type of service** before calling check_appointment_availability.
5. Prices are returned in USD cents. Convert to dollars for display (e.g. 8000 → $80). For price ranges, show "$X – $Y".
6. If asked about hair advice, give general tips but always recommend a consultation for personalised advice.
7. Stay on-topic. If asked about things unrelated to the salon, politely redirect.
8. Keep the tone warm, stylish, and inviting — match the Luna Hair Studio vibe.
9. Use emojis sparingly (1-2 per message max) to keep things approachable.

Studio details:
- Address: 78 Spring Street, SoHo, New York, NY 10012
- Phone: (555) 123-4567
- Email: hello@lunahairstudio.com
- WhatsApp: +1 (555) 123-4567`

// NewRegistry wires the six studio tools. now supplies "today" for the
// date defaults.
func NewRegistry(now func() time.Time) *tools.Registry {
	today := func() string { return catalog.ISODate(now()) }

	return tools.NewRegistry(
		tools.Tool{
			Def: mcp.NewTool("get_open_hours",
				mcp.WithDescription("Get salon opening hours for a specific date. Returns regular schedule and any special closure / modified hours."),
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
			Def: mcp.NewTool("get_services",
				mcp.WithDescription("Return the full list of salon services organised by category (cuts, color, treatments, extensions). Each item includes price range and duration."),
			),
			Call: func(args map[string]any) (string, error) {
				return Services()
			},
		},
		tools.Tool{
			Def: mcp.NewTool("find_services",
				mcp.WithDescription("Search or filter salon services by category and/or a free-text query (name or description)."),
				mcp.WithString("category", mcp.Description("Filter by category key: cuts, color, treatments, extensions.")),
				mcp.WithString("query", mcp.Description("Free-text search matched against service name and description (case-insensitive).")),
				mcp.WithBoolean("popular", mcp.Description("If true, return only popular / recommended services.")),
			),
			Call: func(args map[string]any) (string, error) {
				return FindServices(ServiceFilter{
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
				mcp.WithDescription("Return upcoming salon events within an optional date range."),
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
				mcp.WithDescription("Check appointment availability for a given date, time, and service type. Returns available, limited, or unavailable. (Stub — real integration pending.)"),
				mcp.WithString("date", mcp.Description(`ISO date "YYYY-MM-DD".`), mcp.Required()),
				mcp.WithString("time", mcp.Description(`"HH:mm" (24-hour).`), mcp.Required()),
				mcp.WithString("service", mcp.Description("Type of service requested.")),
			),
			Call: func(args map[string]any) (string, error) {
				return CheckAvailability(
					tools.StringArg(args, "date"),
					tools.StringArg(args, "time"),
					tools.StringArg(args, "service"),
				)
			},
		},
	)
}
