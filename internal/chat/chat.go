package chat

import "strings"

// Rule pairs trigger keywords with a canned reply. Rules are evaluated in
// order and the first match wins, so more specific rules go first.
type Rule struct {
	Keywords []string
	Reply    string
}

// FallbackReply is returned when no rule matches.
const FallbackReply = "I'm sorry, I didn't quite understand that. Could you rephrase, or ask about our services, pricing or contact details?"

// DefaultRules is the storefront ruleset.
var DefaultRules = []Rule{
	{
		Keywords: []string{"hello", "hi", "hey", "good morning", "good afternoon"},
		Reply:    "Hello! Welcome to our store. How can I help you today?",
	},
	{
		Keywords: []string{"service", "what do you do", "offer"},
		Reply:    "We offer web design, branding and custom storefront builds. You can find the full list on our Services page.",
	},
	{
		Keywords: []string{"price", "pricing", "cost", "how much"},
		Reply:    "Pricing depends on the scope of the project. Drop us a line through the contact form and we'll send you a quote.",
	},
	{
		Keywords: []string{"contact", "email", "phone", "reach"},
		Reply:    "You can reach us through the contact form, or email hello@example.com. We usually reply within one business day.",
	},
	{
		Keywords: []string{"shipping", "delivery"},
		Reply:    "Orders ship within 2-3 business days. Shipping is free on orders over $50.",
	},
	{
		Keywords: []string{"return", "refund"},
		Reply:    "We accept returns within 30 days of delivery. Refunds are issued to the original payment method.",
	},
	{
		Keywords: []string{"thank", "thanks"},
		Reply:    "You're welcome! Is there anything else I can help with?",
	},
	{
		Keywords: []string{"bye", "goodbye", "see you"},
		Reply:    "Goodbye! Have a great day.",
	},
}

// Responder answers free-text messages by keyword matching. It is
// deterministic and keeps no conversation state.
type Responder struct {
	rules    []Rule
	fallback string
}

func NewResponder(rules []Rule, fallback string) *Responder {
	return &Responder{rules: rules, fallback: fallback}
}

func NewDefaultResponder() *Responder {
	return NewResponder(DefaultRules, FallbackReply)
}

// Reply returns the reply for the first rule whose keyword appears in the
// message. Matching is a case-insensitive substring check.
func (r *Responder) Reply(message string) string {
	msg := strings.ToLower(message)
	for _, rule := range r.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(msg, kw) {
				return rule.Reply
			}
		}
	}
	return r.fallback
}
