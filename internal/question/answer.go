package question

import "fmt"

// Section is one labeled block of an answer (WHY, WHAT, ACTION, EVIDENCE)
type Section struct {
	Heading string   `json:"heading"`
	Lines   []string `json:"lines"`
}

// Answer is a structured, explainable response to a free-text question
type Answer struct {
	Question   string       `json:"question"`
	Domain     DomainIntent `json:"domain_intent"`
	Shape      Shape        `json:"shape"`
	ShapeNote  string       `json:"shape_note"`
	Sections   []Section    `json:"sections"`
	Confidence float64      `json:"confidence"`
	Trend      string       `json:"trend,omitempty"`
}

// ConfidenceLabel buckets a confidence score for display
func ConfidenceLabel(confidence float64) string {
	pct := int(confidence * 100)
	switch {
	case pct >= 70:
		return "High"
	case pct >= 40:
		return "Med"
	default:
		return "Low"
	}
}

func (a *Answer) addSection(heading string, lines ...string) {
	a.Sections = append(a.Sections, Section{Heading: heading, Lines: lines})
}

func bullet(format string, args ...interface{}) string {
	return "• " + fmt.Sprintf(format, args...)
}
