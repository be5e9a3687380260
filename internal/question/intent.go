package question

import "strings"

// DomainIntent is the subject-matter category of a free-text question
type DomainIntent string

const (
	IntentChurnRisk       DomainIntent = "churn_risk"
	IntentRecommendations DomainIntent = "recommendations"
	IntentOnboarding      DomainIntent = "onboarding"
	IntentAdoption        DomainIntent = "adoption"
	IntentUsageTrends     DomainIntent = "usage_trends"
	IntentUsageData       DomainIntent = "usage_data"
	IntentOverview        DomainIntent = "overview"
)

// Shape is the rhetorical structure chosen for the answer
type Shape string

const (
	ShapeWhy    Shape = "WHY"    // explanatory
	ShapeWhat   Shape = "WHAT"   // factual
	ShapeAction Shape = "ACTION" // prescriptive
)

type domainRule struct {
	intent   DomainIntent
	keywords []string
}

// domainRules are evaluated top to bottom, first match wins. Churn keywords
// lead to avoid false matches from broader categories.
var domainRules = []domainRule{
	{IntentChurnRisk, []string{
		"churn", "risk", "retention", "leaving", "cancel",
		"at risk", "likely to leave", "retention risk",
	}},
	{IntentRecommendations, []string{
		"recommend", "should", "next", "best action", "priority",
		"what to do", "suggest", "advice", "focus on",
	}},
	{IntentOnboarding, []string{
		"onboard", "enablement", "getting started",
		"how to start", "first steps", "setup", "initial",
	}},
	{IntentAdoption, []string{
		"adopt", "adoption", "using", "features used",
		"what features", "feature usage", "adopted",
	}},
	{IntentUsageTrends, []string{
		"trend", "recent", "change", "activity", "pattern",
		"increasing", "decreasing", "last", "recently",
	}},
	{IntentUsageData, []string{
		"usage data", "metrics", "count", "how many",
		"usage stats", "statistics", "numbers",
	}},
}

// ClassifyDomain assigns a question to its subject-matter category.
// Questions matching no rule fall back to overview.
func ClassifyDomain(q string) DomainIntent {
	lower := strings.ToLower(q)
	for _, rule := range domainRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.intent
			}
		}
	}
	return IntentOverview
}

type shapeRule struct {
	shape    Shape
	reason   string
	keywords []string
}

// shapeRules are evaluated in order WHY > ACTION > WHAT
var shapeRules = []shapeRule{
	{ShapeWhy, "question asks 'why' or seeks explanation", []string{
		"why", "how come", "reason", "cause", "because", "explain",
		"what's wrong", "what's the problem", "how engaged",
	}},
	{ShapeAction, "question asks for recommendations or actions", []string{
		"should", "what to do", "recommend", "next step", "action",
		"pitch", "focus on", "prioritize", "do this week", "suggest",
		"how to", "what should", "what can", "steps", "playbook",
	}},
	{ShapeWhat, "question asks for factual information", []string{
		"what is", "what are", "what's", "how many", "how much",
		"show me", "tell me", "list", "status", "current",
	}},
}

// whySynonyms catch interpretive language when no rule matched
var whySynonyms = []string{"indicating", "suggesting", "meaning", "implication"}

// ClassifyShape chooses the answer structure for a question and reports why.
// Ambiguous questions default to an explanatory response.
func ClassifyShape(q string) (Shape, string) {
	lower := strings.ToLower(q)
	for _, rule := range shapeRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.shape, rule.reason
			}
		}
	}
	for _, syn := range whySynonyms {
		if strings.Contains(lower, syn) {
			return ShapeWhy, "question contains interpretive language"
		}
	}
	return ShapeWhy, "ambiguous question, defaulting to explanatory response"
}
