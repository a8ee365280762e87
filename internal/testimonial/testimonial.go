package testimonial

// Testimonial is a customer quote shown on the marketing pages.
type Testimonial struct {
	ID       int    `json:"id"`
	Author   string `json:"author"`
	Company  string `json:"company,omitempty"`
	Quote    string `json:"quote"`
	Category string `json:"category"`
	Rating   int    `json:"rating"`
}

// DemoTestimonials seeds the site when no database is configured.
var DemoTestimonials = []Testimonial{
	{ID: 1, Author: "Mira Kovacs", Company: "Studio North", Quote: "The storefront redesign doubled our conversion rate within a month.", Category: "design", Rating: 5},
	{ID: 2, Author: "Jon Whitfield", Company: "Whitfield & Co", Quote: "Fast, communicative and the final product was exactly what we asked for.", Category: "development", Rating: 5},
	{ID: 3, Author: "Sofia Ramires", Quote: "Great branding work. Our customers finally recognize us at a glance.", Category: "branding", Rating: 4},
	{ID: 4, Author: "Liam Osei", Company: "Osei Goods", Quote: "The team handled our migration without a minute of downtime.", Category: "development", Rating: 5},
}
