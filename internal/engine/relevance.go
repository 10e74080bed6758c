package engine

import "strings"

// Scoring weights: a category match is the strongest evidence, a keyword in
// the title is next, a keyword in the abstract the weakest.
const (
	categoryPoints = 10
	titlePoints    = 5
	abstractPoints = 2

	// MinRelevance is the ingestion floor. Candidates scoring below it are
	// discarded before they ever reach storage. Fixed, not user-tunable.
	MinRelevance = 5
)

// Priority tiers derived from the relevance score.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// PaperFields is the slice of a paper the relevance engine looks at.
type PaperFields struct {
	Title      string
	Abstract   string
	Categories []string
}

// Area is an interest profile papers are scored against. Callers pass only
// the areas they want considered (normally the enabled ones) — the engine
// does not filter.
type Area struct {
	Name       string
	Categories []string
	Keywords   []string
}

// ScorePaper sums evidence across all given areas:
//   - +10 once per area with any category overlap, regardless of how many
//     categories overlap
//   - +5 per keyword found case-insensitively in the title
//   - +2 per distinct keyword found in the abstract (repeated occurrences of
//     the same keyword do not stack)
func ScorePaper(p PaperFields, areas []Area) int {
	title := strings.ToLower(p.Title)
	abstract := strings.ToLower(p.Abstract)

	score := 0
	for _, area := range areas {
		if categoryOverlap(p.Categories, area.Categories) {
			score += categoryPoints
		}
		for _, kw := range area.Keywords {
			kw = strings.ToLower(kw)
			if kw == "" {
				continue
			}
			if strings.Contains(title, kw) {
				score += titlePoints
			}
			if strings.Contains(abstract, kw) {
				score += abstractPoints
			}
		}
	}
	return score
}

// MatchTopics returns the names of areas the paper matches: a category
// overlap or at least one keyword hit in title or abstract. Boolean presence
// only — weights play no part here.
func MatchTopics(p PaperFields, areas []Area) []string {
	title := strings.ToLower(p.Title)
	abstract := strings.ToLower(p.Abstract)

	var topics []string
	for _, area := range areas {
		if categoryOverlap(p.Categories, area.Categories) {
			topics = append(topics, area.Name)
			continue
		}
		for _, kw := range area.Keywords {
			kw = strings.ToLower(kw)
			if kw == "" {
				continue
			}
			if strings.Contains(title, kw) || strings.Contains(abstract, kw) {
				topics = append(topics, area.Name)
				break
			}
		}
	}
	return topics
}

// PriorityFor maps a relevance score to its tier: high above 20, medium
// above 10, low otherwise.
func PriorityFor(score int) string {
	switch {
	case score > 20:
		return PriorityHigh
	case score > 10:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

func categoryOverlap(paperCats, areaCats []string) bool {
	for _, ac := range areaCats {
		for _, pc := range paperCats {
			if strings.EqualFold(pc, ac) {
				return true
			}
		}
	}
	return false
}
