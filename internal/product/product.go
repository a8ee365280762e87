package product

// Product represents a shop item. JSON tags use camelCase to match the
// storefront client.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Rating      int     `json:"rating,omitempty"`
	CreatedAt   string  `json:"createdAt,omitempty"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
}

// DemoProducts seeds the catalog when no database is configured.
var DemoProducts = []Product{
	{ID: 1, Name: "Aurora Desk Lamp", Price: 49.99, Image: "/shop/aurora-lamp.jpg", Description: "Minimal LED desk lamp with warm dimming", Category: "Lighting", Rating: 5},
	{ID: 2, Name: "Walnut Phone Stand", Price: 24.5, Image: "/shop/walnut-stand.jpg", Description: "Hand-finished walnut stand for phones and tablets", Category: "Accessories", Rating: 4},
	{ID: 3, Name: "Linen Throw Pillow", Price: 32, Image: "/shop/linen-pillow.jpg", Description: "Stonewashed linen cover with feather insert", Category: "Home", Rating: 5},
	{ID: 4, Name: "Ceramic Pour-Over Set", Price: 58, Image: "/shop/pour-over.jpg", Description: "Two-piece ceramic dripper and carafe", Category: "Kitchen", Rating: 5},
	{ID: 5, Name: "Canvas Weekender Bag", Price: 89.99, Image: "/shop/weekender.jpg", Description: "Waxed canvas with leather trim", Category: "Accessories", Rating: 4},
	{ID: 6, Name: "Brass Plant Mister", Price: 19.75, Image: "/shop/plant-mister.jpg", Description: "Vintage-style mister for indoor plants", Category: "Home", Rating: 4},
}
