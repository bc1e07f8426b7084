package services

import (
	"regexp"
	"strings"

	"github.com/prime-labs/prime-cli/internal/core/domain"
)

// Slot extraction patterns. These run against the lowercased document
// text, independently of the catalog match patterns.
var (
	searchTermPattern = regexp.MustCompile(`(?i)play\s+(.+?)\s+on\s+youtube`)
	newsTopicPattern  = regexp.MustCompile(`(?i)news\s+(?:about\s+)?(.+)`)
	reminderPattern   = regexp.MustCompile(`(?i)remind\s+me\s+to\s+(.+?)\s+(?:at\s+)?(.+)`)
)

// Extractor pulls intent-specific slot values out of an annotated
// document. A slot whose rule does not match is reported as an empty
// string, never omitted; extraction failure is a degraded result, not
// an error.
type Extractor struct{}

// NewExtractor creates an extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the slot map for the given intent. The map contains
// exactly the entity names the definition declares; a nil definition
// (unknown intent) yields an empty map.
func (e *Extractor) Extract(doc *domain.AnnotatedDocument, def *domain.IntentDefinition) map[string]string {
	entities := make(map[string]string)
	if def == nil {
		return entities
	}

	switch def.Name {
	case domain.IntentOpenApp:
		entities["app_name"] = extractAppName(doc)
	case domain.IntentPlayYouTube:
		entities["search_term"] = extractGroup(searchTermPattern, doc.Text)
	case domain.IntentSendMessage, domain.IntentMakeCall:
		entities["contact_name"] = extractContactName(doc)
	case domain.IntentGetWeather:
		entities["location"] = extractLocation(doc)
	case domain.IntentGetNews:
		entities["topic"] = extractGroup(newsTopicPattern, doc.Text)
	case domain.IntentSetReminder:
		task, at := extractReminder(doc.Text)
		entities["task"] = task
		entities["time"] = at
	}

	// Every declared slot is present, even when its rule found nothing.
	for _, name := range def.Entities {
		if _, ok := entities[name]; !ok {
			entities[name] = ""
		}
	}

	return entities
}

// extractAppName returns the first non-stopword noun or proper-noun
// token.
func extractAppName(doc *domain.AnnotatedDocument) string {
	for _, t := range doc.Tokens {
		if (t.POS == domain.POSNoun || t.POS == domain.POSProperNoun) && !t.IsStop {
			return t.Text
		}
	}
	return ""
}

// extractContactName prefers a PERSON named entity, then falls back to
// the first noun phrase headed by a noun or proper noun.
func extractContactName(doc *domain.AnnotatedDocument) string {
	for _, ent := range doc.Entities {
		if ent.Label == domain.EntityLabelPerson {
			return ent.Text
		}
	}
	for _, np := range doc.NounPhrases {
		if np.HeadPOS == domain.POSNoun || np.HeadPOS == domain.POSProperNoun {
			return np.Text
		}
	}
	return ""
}

// extractLocation returns the first GPE or LOC named entity. The basic
// annotator produces no entity spans, so this degrades to "" there.
func extractLocation(doc *domain.AnnotatedDocument) string {
	for _, ent := range doc.Entities {
		if ent.Label == domain.EntityLabelGPE || ent.Label == domain.EntityLabelLocation {
			return ent.Text
		}
	}
	return ""
}

// extractReminder splits "remind me to <task> at <time>" into its two
// slots. Both come back empty when the phrase does not match.
func extractReminder(text string) (task, at string) {
	m := reminderPattern.FindStringSubmatch(text)
	if m == nil {
		return "", ""
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
}

// extractGroup returns the trimmed first capture group, or "".
func extractGroup(pattern *regexp.Regexp, text string) string {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
