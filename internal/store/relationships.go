package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lazypower/lifeboard/internal/engine"
)

const relationshipsFile = "relationships.json"

// Person is someone to stay in touch with. nextContactDue is derived from
// lastContact + contactInterval and kept consistent on every mutation that
// touches either input.
type Person struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	ContactInterval int       `json:"contactInterval"` // days
	LastContact     time.Time `json:"lastContact"`
	NextContactDue  time.Time `json:"nextContactDue"`
	Notes           string    `json:"notes"`
	ContactMethods  []string  `json:"contactMethods"`
}

// PersonView augments a person with the read-time derived fields. These are
// never persisted.
type PersonView struct {
	Person
	IsOverdue            bool `json:"isOverdue"`
	DaysSinceLastContact int  `json:"daysSinceLastContact"`
}

type relationshipsDoc struct {
	People []Person `json:"people"`
}

// ListPeople returns every person decorated with overdue status and days
// since last contact, evaluated against the store clock.
func (s *Store) ListPeople() ([]PersonView, error) {
	var doc relationshipsDoc
	if err := s.readDoc(relationshipsFile, &doc); err != nil {
		return nil, err
	}

	now := s.now()
	views := make([]PersonView, 0, len(doc.People))
	for _, p := range doc.People {
		views = append(views, PersonView{
			Person:               p,
			IsOverdue:            engine.IsOverdue(now, p.NextContactDue),
			DaysSinceLastContact: engine.DaysSince(now, p.LastContact),
		})
	}
	return views, nil
}

// CreatePerson adds a person. The contact interval falls back to the
// category default and lastContact to now; the due date is computed from the
// resolved values. Unknown categories are an error.
func (s *Store) CreatePerson(p Person) (*Person, error) {
	if p.Name == "" {
		return nil, fmt.Errorf("person name required")
	}
	if p.ContactInterval <= 0 {
		interval, ok := engine.DefaultInterval(p.Category)
		if !ok {
			return nil, fmt.Errorf("unknown relationship category %q", p.Category)
		}
		p.ContactInterval = interval
	} else if _, ok := engine.DefaultInterval(p.Category); !ok {
		return nil, fmt.Errorf("unknown relationship category %q", p.Category)
	}

	if p.LastContact.IsZero() {
		p.LastContact = s.now()
	}
	p.ID = uuid.NewString()
	p.NextContactDue = engine.NextContactDue(p.LastContact, p.ContactInterval)
	if p.ContactMethods == nil {
		p.ContactMethods = []string{"phone"}
	}

	var doc relationshipsDoc
	if err := s.readDoc(relationshipsFile, &doc); err != nil {
		return nil, err
	}
	doc.People = append(doc.People, p)
	if err := s.writeDoc(relationshipsFile, &doc); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdatePerson applies a JSON patch. When the patch touches lastContact or
// contactInterval the due date is recomputed from the merged record — both
// post-patch values, not just the changed one. Returns nil when no person
// matches the id.
func (s *Store) UpdatePerson(id string, patch []byte) (*Person, error) {
	// Probe which due-date inputs the patch mentions before merging.
	var probe struct {
		LastContact     *time.Time `json:"lastContact"`
		ContactInterval *int       `json:"contactInterval"`
	}
	if err := json.Unmarshal(patch, &probe); err != nil {
		return nil, fmt.Errorf("apply patch: %w", err)
	}

	var doc relationshipsDoc
	if err := s.readDoc(relationshipsFile, &doc); err != nil {
		return nil, err
	}

	for i := range doc.People {
		if doc.People[i].ID != id {
			continue
		}
		prev := doc.People[i]
		if err := mergePatch(&doc.People[i], patch); err != nil {
			return nil, err
		}
		doc.People[i].ID = prev.ID

		if probe.LastContact != nil || probe.ContactInterval != nil {
			doc.People[i].NextContactDue = engine.NextContactDue(
				doc.People[i].LastContact,
				doc.People[i].ContactInterval,
			)
		} else {
			doc.People[i].NextContactDue = prev.NextContactDue
		}

		if err := s.writeDoc(relationshipsFile, &doc); err != nil {
			return nil, err
		}
		return &doc.People[i], nil
	}
	return nil, nil
}

// LogContact marks a person as contacted now and recomputes the due date.
func (s *Store) LogContact(id string) (*Person, error) {
	patch, err := json.Marshal(map[string]any{"lastContact": s.now()})
	if err != nil {
		return nil, err
	}
	return s.UpdatePerson(id, patch)
}

// DeletePerson removes a person permanently.
func (s *Store) DeletePerson(id string) error {
	var doc relationshipsDoc
	if err := s.readDoc(relationshipsFile, &doc); err != nil {
		return err
	}
	kept := doc.People[:0]
	for _, p := range doc.People {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	doc.People = kept
	return s.writeDoc(relationshipsFile, &doc)
}
