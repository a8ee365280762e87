package notification

// Notification is an admin dashboard alert.
type Notification struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Category  string `json:"category"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt"`
}

// DemoNotifications seeds the admin dashboard when no database is configured.
var DemoNotifications = []Notification{
	{ID: 1, Title: "New order received", Body: "Order #1002 is awaiting confirmation.", Category: "orders", CreatedAt: "2026-07-10T14:31:00Z"},
	{ID: 2, Title: "Low stock warning", Body: "Canvas Weekender Bag has 2 units left.", Category: "inventory", CreatedAt: "2026-07-12T09:00:00Z"},
	{ID: 3, Title: "New subscriber", Body: "liam.osei@example.com joined the newsletter.", Category: "marketing", Read: true, CreatedAt: "2026-06-20T08:23:00Z"},
	{ID: 4, Title: "Contact form message", Body: "A visitor asked about custom branding work.", Category: "contacts", CreatedAt: "2026-07-18T16:40:00Z"},
}
