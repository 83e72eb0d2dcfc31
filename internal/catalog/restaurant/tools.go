package restaurant

import (
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/templateshub/demos-backend/internal/catalog"
	"github.com/templateshub/demos-backend/internal/tools"
)

// SystemPrompt frames the Tsuki Izakaya concierge persona and the rules
// the assistant must follow when answering guests.
const SystemPrompt = `You are the concise, friendly AI concierge for **Tsuki Izakaya**, a premium Japanese izakaya and sushi bar.

Rules you MUST follow:
1. Be helpful and concise. Use short paragraphs. Never produce walls of text.
2. When a guest asks about hours, menu items, offers, or events — **ALWAYS call the appropriate tool**. Never guess or invent this information.
3. If the guest's request is ambiguous (e.g. "book a table" without a date, time, or party size), **ask a clarifying question first** before calling any tool.
4. ALLERGY GUIDANCE: When asked about allergens or dietary needs, provide information from the menu data, then **always** add:
   - "⚠️ Our dishes are prepared in a shared kitchen. Cross-contamination is possible. Please confirm directly with your server before ordering."
   - Never provide medical or health advice. If pressed, recommend the guest consult a healthcare professional and speak with the restaurant staff.
5. For reservation inquiries, collect **date, time, and party size** before calling check_table_availability.
6. Prices in tool results are in US cents. Convert to dollars for display (e.g. 1200 → $12.00).
7. Stay on-topic. If asked about things unrelated to the restaurant, politely redirect.
8. Keep the tone warm, inviting, and aligned with a premium late-night Japanese dining experience.`

// NewRegistry wires the six concierge tools. now supplies "today" for
// the date defaults.
func NewRegistry(now func() time.Time) *tools.Registry {
	today := func() string { return catalog.ISODate(now()) }

	return tools.NewRegistry(
		tools.Tool{
			Def: mcp.NewTool("get_open_hours",
				mcp.WithDescription("Get restaurant opening hours for a specific date. Returns regular schedule, happy-hour window, and any special closure / modified hours."),
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
			Def: mcp.NewTool("get_today_menu",
				mcp.WithDescription("Return the full menu organised by category. Each item includes price, dietary tags, allergens, and optional badges."),
				mcp.WithString("date", mcp.Description("Optional ISO date (for seasonal filtering in the future). Defaults to today.")),
			),
			Call: func(args map[string]any) (string, error) {
				return TodayMenu()
			},
		},
		tools.Tool{
			Def: mcp.NewTool("find_dishes",
				mcp.WithDescription("Search or filter menu items by dietary requirements and/or a free-text query (name or ingredient)."),
				mcp.WithBoolean("vegetarian", mcp.Description("Filter for vegetarian dishes.")),
				mcp.WithBoolean("vegan", mcp.Description("Filter for vegan dishes.")),
				mcp.WithBoolean("glutenFree", mcp.Description("Filter for gluten-free dishes.")),
				mcp.WithBoolean("lactoseFree", mcp.Description("Filter for lactose-free dishes.")),
				mcp.WithString("query", mcp.Description("Free-text search matched against item name and description (case-insensitive).")),
			),
			Call: func(args map[string]any) (string, error) {
				return FindDishes(DishFilter{
					Vegetarian:  tools.BoolArg(args, "vegetarian"),
					Vegan:       tools.BoolArg(args, "vegan"),
					GlutenFree:  tools.BoolArg(args, "glutenFree"),
					LactoseFree: tools.BoolArg(args, "lactoseFree"),
					Query:       tools.StringArg(args, "query"),
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
				mcp.WithDescription("Return upcoming events within an optional date range."),
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
			Def: mcp.NewTool("check_table_availability",
				mcp.WithDescription("Check table availability for a given date, time, and party size. Returns available, limited, or unavailable. (Stub — real integration pending.)"),
				mcp.WithString("date", mcp.Description(`ISO date "YYYY-MM-DD".`), mcp.Required()),
				mcp.WithString("time", mcp.Description(`"HH:mm" (24-hour).`), mcp.Required()),
				mcp.WithNumber("partySize", mcp.Description("Number of guests (1–12)."), mcp.Required()),
			),
			Call: func(args map[string]any) (string, error) {
				return CheckAvailability(
					tools.StringArg(args, "date"),
					tools.StringArg(args, "time"),
					tools.IntArg(args, "partySize"),
				)
			},
		},
	)
}
