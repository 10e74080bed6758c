package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/lazypower/lifeboard/internal/engine"
)

const papersFile = "papers.json"

// Paper statuses.
const (
	PaperUnread   = "unread"
	PaperReading  = "reading"
	PaperReviewed = "reviewed"
)

// Paper is a research paper that survived relevance scoring at ingestion.
// The score, priority, and matched topics are computed once when the paper
// is ingested and never recomputed, even if the research areas change later.
type Paper struct {
	PaperID        string    `json:"paper_id"`
	Title          string    `json:"title"`
	Authors        []string  `json:"authors"`
	Abstract       string    `json:"abstract"`
	Categories     []string  `json:"categories"`
	PublishedAt    time.Time `json:"published_at"`
	PDFLink        string    `json:"pdf_link"`
	MatchedTopics  []string  `json:"matched_topics"`
	Tags           []string  `json:"tags"`
	Status         string    `json:"status"`
	RelevanceScore int       `json:"relevance_score"`
	Priority       string    `json:"priority"`
	AddedAt        time.Time `json:"added_at"`
}

// ResearchArea is a named interest profile papers are scored against.
type ResearchArea struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
	Keywords    []string `json:"keywords"`
	Enabled     bool     `json:"enabled"`
}

// ResearchConfig holds the research areas plus feed fetch settings.
type ResearchConfig struct {
	Areas      []ResearchArea `json:"areas"`
	MaxResults int            `json:"max_results"`
	DaysBack   int            `json:"days_back"`
}

type papersDoc struct {
	Papers []Paper        `json:"papers"`
	Config ResearchConfig `json:"config"`
}

// IngestStatus distinguishes the three ingestion outcomes.
type IngestStatus string

const (
	IngestStored    IngestStatus = "stored"
	IngestDuplicate IngestStatus = "duplicate"
	IngestDiscarded IngestStatus = "discarded"
)

func (s *Store) loadPapersDoc() (papersDoc, error) {
	doc := papersDoc{
		Config: ResearchConfig{MaxResults: 20, DaysBack: 14},
	}
	if err := s.readDoc(papersFile, &doc); err != nil {
		return doc, err
	}
	if doc.Papers == nil {
		doc.Papers = []Paper{}
	}
	if doc.Config.Areas == nil {
		doc.Config.Areas = []ResearchArea{}
	}
	return doc, nil
}

// ListPapers returns every stored paper.
func (s *Store) ListPapers() ([]Paper, error) {
	doc, err := s.loadPapersDoc()
	if err != nil {
		return nil, err
	}
	return doc.Papers, nil
}

// GetPaper returns a paper by its paper_id, or nil if absent.
func (s *Store) GetPaper(id string) (*Paper, error) {
	doc, err := s.loadPapersDoc()
	if err != nil {
		return nil, err
	}
	for i := range doc.Papers {
		if doc.Papers[i].PaperID == id {
			return &doc.Papers[i], nil
		}
	}
	return nil, nil
}

// IngestPaper runs a candidate through the relevance gate. Outcomes:
//   - duplicate paper_id: the existing record is returned untouched
//   - score below the relevance floor: discarded, nothing persisted
//   - otherwise: scored, tagged, prioritized, and stored
//
// Scoring considers enabled research areas only.
func (s *Store) IngestPaper(p Paper) (*Paper, IngestStatus, error) {
	doc, err := s.loadPapersDoc()
	if err != nil {
		return nil, "", err
	}

	for i := range doc.Papers {
		if doc.Papers[i].PaperID == p.PaperID {
			return &doc.Papers[i], IngestDuplicate, nil
		}
	}

	areas := enabledAreas(doc.Config.Areas)
	fields := engine.PaperFields{
		Title:      p.Title,
		Abstract:   p.Abstract,
		Categories: p.Categories,
	}

	p.RelevanceScore = engine.ScorePaper(fields, areas)
	if p.RelevanceScore < engine.MinRelevance {
		return nil, IngestDiscarded, nil
	}

	p.MatchedTopics = engine.MatchTopics(fields, areas)
	if p.MatchedTopics == nil {
		p.MatchedTopics = []string{}
	}
	p.Priority = engine.PriorityFor(p.RelevanceScore)
	p.Status = PaperUnread
	p.Tags = []string{}
	p.AddedAt = s.now()

	doc.Papers = append(doc.Papers, p)
	if err := s.writeDoc(papersFile, &doc); err != nil {
		return nil, "", err
	}
	return &p, IngestStored, nil
}

// UpdatePaper applies a JSON patch to a paper. Identity and the
// ingestion-time scoring results are immutable.
func (s *Store) UpdatePaper(id string, patch []byte) (*Paper, error) {
	doc, err := s.loadPapersDoc()
	if err != nil {
		return nil, err
	}

	for i := range doc.Papers {
		if doc.Papers[i].PaperID != id {
			continue
		}
		prev := doc.Papers[i]
		if err := mergePatch(&doc.Papers[i], patch); err != nil {
			return nil, err
		}
		doc.Papers[i].PaperID = prev.PaperID
		doc.Papers[i].RelevanceScore = prev.RelevanceScore
		doc.Papers[i].Priority = prev.Priority
		doc.Papers[i].MatchedTopics = prev.MatchedTopics
		doc.Papers[i].AddedAt = prev.AddedAt
		if err := s.writeDoc(papersFile, &doc); err != nil {
			return nil, err
		}
		return &doc.Papers[i], nil
	}
	return nil, nil
}

// DeletePaper removes a paper permanently.
func (s *Store) DeletePaper(id string) error {
	doc, err := s.loadPapersDoc()
	if err != nil {
		return err
	}
	kept := doc.Papers[:0]
	for _, p := range doc.Papers {
		if p.PaperID != id {
			kept = append(kept, p)
		}
	}
	doc.Papers = kept
	return s.writeDoc(papersFile, &doc)
}

// GetResearchConfig returns the research areas and fetch settings.
func (s *Store) GetResearchConfig() (*ResearchConfig, error) {
	doc, err := s.loadPapersDoc()
	if err != nil {
		return nil, err
	}
	return &doc.Config, nil
}

// UpdateResearchConfig patches the fetch settings. Areas are managed through
// the dedicated area operations, never through this patch.
func (s *Store) UpdateResearchConfig(patch []byte) (*ResearchConfig, error) {
	doc, err := s.loadPapersDoc()
	if err != nil {
		return nil, err
	}

	areas := doc.Config.Areas
	if err := mergePatch(&doc.Config, patch); err != nil {
		return nil, err
	}
	doc.Config.Areas = areas

	if err := s.writeDoc(papersFile, &doc); err != nil {
		return nil, err
	}
	return &doc.Config, nil
}

// AddResearchArea registers a new interest area. The id defaults to a slug
// of the name; duplicate ids are rejected.
func (s *Store) AddResearchArea(a ResearchArea) (*ResearchConfig, error) {
	if a.Name == "" {
		return nil, fmt.Errorf("research area name required")
	}
	if a.ID == "" {
		a.ID = slugify(a.Name)
	}

	doc, err := s.loadPapersDoc()
	if err != nil {
		return nil, err
	}
	for _, existing := range doc.Config.Areas {
		if existing.ID == a.ID {
			return nil, fmt.Errorf("research area %q already exists", a.ID)
		}
	}

	doc.Config.Areas = append(doc.Config.Areas, a)
	if err := s.writeDoc(papersFile, &doc); err != nil {
		return nil, err
	}
	return &doc.Config, nil
}

// ToggleResearchArea sets an area's enabled flag, or flips it when enabled
// is nil. Returns nil when the area does not exist.
func (s *Store) ToggleResearchArea(id string, enabled *bool) (*ResearchArea, error) {
	doc, err := s.loadPapersDoc()
	if err != nil {
		return nil, err
	}

	for i := range doc.Config.Areas {
		if doc.Config.Areas[i].ID != id {
			continue
		}
		if enabled != nil {
			doc.Config.Areas[i].Enabled = *enabled
		} else {
			doc.Config.Areas[i].Enabled = !doc.Config.Areas[i].Enabled
		}
		if err := s.writeDoc(papersFile, &doc); err != nil {
			return nil, err
		}
		return &doc.Config.Areas[i], nil
	}
	return nil, nil
}

// RemoveResearchArea deletes an area. Already-ingested papers keep the
// matched_topics they were stamped with. Returns nil when the area does not
// exist.
func (s *Store) RemoveResearchArea(id string) (*ResearchConfig, error) {
	doc, err := s.loadPapersDoc()
	if err != nil {
		return nil, err
	}

	found := false
	kept := doc.Config.Areas[:0]
	for _, a := range doc.Config.Areas {
		if a.ID == id {
			found = true
			continue
		}
		kept = append(kept, a)
	}
	if !found {
		return nil, nil
	}
	doc.Config.Areas = kept

	if err := s.writeDoc(papersFile, &doc); err != nil {
		return nil, err
	}
	return &doc.Config, nil
}

func enabledAreas(areas []ResearchArea) []engine.Area {
	out := make([]engine.Area, 0, len(areas))
	for _, a := range areas {
		if !a.Enabled {
			continue
		}
		out = append(out, engine.Area{
			Name:       a.Name,
			Categories: a.Categories,
			Keywords:   a.Keywords,
		})
	}
	return out
}

func slugify(name string) string {
	var b strings.Builder
	prevHyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			prevHyphen = false
		default:
			if !prevHyphen && b.Len() > 0 {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
