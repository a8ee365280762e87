package subscriber

// Subscriber is a newsletter signup record.
type Subscriber struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name,omitempty"`
	Status       string `json:"status"`
	SubscribedAt string `json:"subscribedAt"`
}

const (
	StatusActive       = "active"
	StatusUnsubscribed = "unsubscribed"
)

// DemoSubscribers seeds the admin dashboard when no database is configured.
var DemoSubscribers = []Subscriber{
	{ID: "a4f6d9e2-1c3b-4f5a-9e8d-7b6a5c4d3e2f", Email: "mira.kovacs@example.com", Name: "Mira Kovacs", Status: StatusActive, SubscribedAt: "2026-05-02T09:14:00Z"},
	{ID: "b2e8c7d1-9a0f-4e3b-8c2d-1f0e9d8c7b6a", Email: "jon.whitfield@example.com", Name: "Jon Whitfield", Status: StatusActive, SubscribedAt: "2026-05-11T17:40:00Z"},
	{ID: "c9d0e1f2-3a4b-5c6d-7e8f-9a0b1c2d3e4f", Email: "sofia.ramires@example.com", Name: "Sofia Ramires", Status: StatusUnsubscribed, SubscribedAt: "2026-06-01T12:05:00Z"},
	{ID: "d7c6b5a4-3f2e-1d0c-9b8a-7f6e5d4c3b2a", Email: "liam.osei@example.com", Name: "Liam Osei", Status: StatusActive, SubscribedAt: "2026-06-20T08:22:00Z"},
}
