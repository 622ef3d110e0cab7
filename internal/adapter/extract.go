package adapter

import (
	"regexp"
	"strings"
)

// Attribution is what a NameExtractor pulled out of a free-text
// description. At most one of Customer/Product is set; both empty means the
// transaction is not attributable and contributes to totals only.
type Attribution struct {
	Customer string
	Product  string
}

// NameExtractor turns a transaction description into an Attribution. It is
// a pluggable strategy: the default regexp implementation is fragile by
// nature, and callers that do not trust it can swap in NopExtractor without
// touching the aggregation logic.
type NameExtractor interface {
	Extract(description string) Attribution
}

type attributionPattern struct {
	re      *regexp.Regexp
	product bool
}

// patternExtractor applies an ordered pattern list; the first pattern to
// match wins.
type patternExtractor struct {
	patterns []attributionPattern
}

// Names are captured as letter-and-space runs, so "Client A - Jan" yields
// "A" rather than dragging the date suffix into the identity.
var defaultPatterns = []attributionPattern{
	{re: regexp.MustCompile(`(?i)\bclient\s+([a-z][a-z ]*)`)},
	{re: regexp.MustCompile(`(?i)\bcustomer\s+([a-z][a-z ]*)`)},
	{re: regexp.MustCompile(`(?i)\bfrom\s+([a-z][a-z ]*)`)},
	{re: regexp.MustCompile(`(?i)\bfor\s+([a-z][a-z ]*)`), product: true},
}

// nameStopwords end a captured name, so "from Acme for Consulting" yields
// "Acme" instead of the whole tail.
var nameStopwords = map[string]bool{
	"client":   true,
	"customer": true,
	"for":      true,
	"from":     true,
	"invoice":  true,
	"payment":  true,
	"via":      true,
}

// NewPatternExtractor returns the default ordered-pattern extractor.
func NewPatternExtractor() NameExtractor {
	return &patternExtractor{patterns: defaultPatterns}
}

func (e *patternExtractor) Extract(description string) Attribution {
	for _, p := range e.patterns {
		m := p.re.FindStringSubmatch(description)
		if m == nil {
			continue
		}
		name := trimName(m[1])
		if name == "" {
			continue
		}
		if p.product {
			return Attribution{Product: name}
		}
		return Attribution{Customer: name}
	}
	return Attribution{}
}

func trimName(raw string) string {
	words := strings.Fields(raw)
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if nameStopwords[strings.ToLower(w)] {
			break
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

// NopExtractor attributes nothing: totals are still aggregated but customer
// and product breakdowns stay empty.
type NopExtractor struct{}

func (NopExtractor) Extract(string) Attribution { return Attribution{} }
