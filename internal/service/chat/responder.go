package chat

import "strings"

// Rule pairs a trigger phrase with its canned reply. Rules are evaluated
// in slice order and the first trigger found anywhere in the lower-cased
// input wins, so more specific phrases must precede generic ones.
type Rule struct {
	Trigger string
	Reply   string
}

// Greeting opens every conversation.
const Greeting = "👋 Hi! How can I help you today?"

// DefaultReply is used when no trigger matches.
const DefaultReply = "🤝 Thanks for reaching out! Our team will reply soon. Meanwhile, you can contact us directly at designdynasty84@gmail.com"

// DefaultRules returns the support widget's scripted rule table.
func DefaultRules() []Rule {
	return []Rule{
		{Trigger: "hi", Reply: "Hello! How can I help you?"},
		{Trigger: "hello", Reply: "Hello! How can I help you?"},
		{Trigger: "web development", Reply: "🚀 We craft scalable websites & web apps tailored for your business. Do you want a free consultation?"},
		{Trigger: "pricing", Reply: "💰 Our plans start at $999. Business plan at $2,999 is most popular. Would you like detailed pricing?"},
		{Trigger: "portfolio", Reply: "📂 You can explore our portfolio — 200+ projects across industries! Would you like the link?"},
	}
}

// Responder produces deterministic canned replies. It is not a
// conversational system: no context, no heuristics, no failure modes.
type Responder struct {
	rules        []Rule
	defaultReply string
}

// NewResponder builds a responder over an ordered rule table.
func NewResponder(rules []Rule, defaultReply string) *Responder {
	return &Responder{
		rules:        append([]Rule(nil), rules...),
		defaultReply: defaultReply,
	}
}

// Reply scans the rules in priority order against the lower-cased input
// and returns the first match, or the default reply when nothing matches.
func (r *Responder) Reply(input string) string {
	lowered := strings.ToLower(input)
	for _, rule := range r.rules {
		if strings.Contains(lowered, rule.Trigger) {
			return rule.Reply
		}
	}
	return r.defaultReply
}
