package services

import (
	"github.com/prime-labs/prime-cli/internal/core/domain"
	"github.com/prime-labs/prime-cli/internal/logger"
)

// Scoring weights. The pattern term is additive per matching pattern:
// a query matching two patterns of the same intent contributes 0.8 from
// patterns alone. Only the final sum is clamped to 1.0.
const (
	patternWeight  = 0.4
	keywordWeight  = 0.3
	semanticWeight = 0.3
)

// Scorer computes per-intent confidence scores and selects the best
// intent for a query. It is stateless: the candidate intent is always
// an explicit argument, never carried between calls.
type Scorer struct{}

// NewScorer creates a scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score computes the confidence of one intent for the given query.
// rawText is the query as submitted; patterns match it
// case-insensitively. The keyword term intersects the document's
// keyword lemmas with the intent's keyword list. The semantic term is a
// flat bonus when the annotator backed the document with a vector.
func (s *Scorer) Score(doc *domain.AnnotatedDocument, rawText string, def *domain.IntentDefinition) float64 {
	score := 0.0

	for _, pattern := range def.Patterns {
		if pattern.MatchString(rawText) {
			score += patternWeight
		}
	}

	if len(def.Keywords) > 0 {
		score += keywordOverlap(doc.Keywords(), def.Keywords) * keywordWeight
	}

	if doc.HasVector {
		score += semanticWeight
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// SelectBest evaluates every intent in catalog order and returns the
// best qualifying one. An intent becomes the new best only if its score
// strictly exceeds the current best and meets its own threshold, so
// ties keep the earlier intent. When nothing qualifies the result is
// "unknown" with confidence 0.
func (s *Scorer) SelectBest(doc *domain.AnnotatedDocument, rawText string, catalog *Catalog) domain.IntentMatch {
	best := domain.IntentMatch{Intent: domain.IntentUnknown, Confidence: 0.0}

	defs := catalog.Definitions()
	for i := range defs {
		score := s.Score(doc, rawText, &defs[i])
		logger.Debug("Intent %s: score=%.3f threshold=%.2f", defs[i].Name, score, defs[i].Threshold)
		if score > best.Confidence && score >= defs[i].Threshold {
			best.Intent = defs[i].Name
			best.Confidence = score
		}
	}

	return best
}

// keywordOverlap returns |docKeywords ∩ intentKeywords| / |intentKeywords|.
// Both sides are treated as sets; duplicate lemmas count once.
func keywordOverlap(docKeywords, intentKeywords []string) float64 {
	if len(intentKeywords) == 0 {
		return 0
	}

	present := make(map[string]bool, len(docKeywords))
	for _, k := range docKeywords {
		present[k] = true
	}

	matches := 0
	counted := make(map[string]bool, len(intentKeywords))
	for _, k := range intentKeywords {
		if present[k] && !counted[k] {
			matches++
			counted[k] = true
		}
	}

	return float64(matches) / float64(len(intentKeywords))
}
