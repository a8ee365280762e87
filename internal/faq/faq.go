package faq

// FAQ is a question/answer entry shown on the FAQ page.
type FAQ struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// DemoFAQs seeds the site when no database is configured.
var DemoFAQs = []FAQ{
	{ID: 1, Question: "How long does a typical project take?", Answer: "Most storefront builds take four to eight weeks depending on scope.", Category: "services"},
	{ID: 2, Question: "Do you offer ongoing maintenance?", Answer: "Yes, we offer monthly maintenance plans covering updates and small changes.", Category: "services"},
	{ID: 3, Question: "What payment methods do you accept?", Answer: "We accept all major credit cards and bank transfers.", Category: "billing"},
	{ID: 4, Question: "Can I get a refund on a deposit?", Answer: "Deposits are refundable within 14 days if work has not started.", Category: "billing"},
	{ID: 5, Question: "How fast is shipping on shop orders?", Answer: "Orders ship within 2-3 business days; free shipping over $50.", Category: "shop"},
	{ID: 6, Question: "What is your return policy?", Answer: "Returns are accepted within 30 days of delivery.", Category: "shop"},
}
