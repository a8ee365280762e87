package order

// Line is a single product line within an order.
type Line struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Order represents a purchase shown on the admin dashboard.
type Order struct {
	ID        int     `json:"id"`
	Customer  string  `json:"customer"`
	Email     string  `json:"email"`
	Lines     []Line  `json:"lines"`
	Total     float64 `json:"total"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// DemoOrders seeds the admin dashboard when no database is configured.
var DemoOrders = []Order{
	{
		ID: 1001, Customer: "Mira Kovacs", Email: "mira.kovacs@example.com",
		Lines:  []Line{{ProductID: 1, Name: "Aurora Desk Lamp", Price: 49.99, Quantity: 1}, {ProductID: 3, Name: "Linen Throw Pillow", Price: 32, Quantity: 2}},
		Total:  113.99, Status: StatusShipped, CreatedAt: "2026-07-02T10:15:00Z", UpdatedAt: "2026-07-03T09:00:00Z",
	},
	{
		ID: 1002, Customer: "Jon Whitfield", Email: "jon.whitfield@example.com",
		Lines:  []Line{{ProductID: 4, Name: "Ceramic Pour-Over Set", Price: 58, Quantity: 1}},
		Total:  58, Status: StatusPending, CreatedAt: "2026-07-10T14:30:00Z", UpdatedAt: "2026-07-10T14:30:00Z",
	},
	{
		ID: 1003, Customer: "Sofia Ramires", Email: "sofia.ramires@example.com",
		Lines:  []Line{{ProductID: 5, Name: "Canvas Weekender Bag", Price: 89.99, Quantity: 1}, {ProductID: 6, Name: "Brass Plant Mister", Price: 19.75, Quantity: 1}},
		Total:  109.74, Status: StatusDelivered, CreatedAt: "2026-07-15T08:05:00Z", UpdatedAt: "2026-07-20T11:45:00Z",
	},
}

// ValidStatus reports whether s is a known order status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusPaid, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}
