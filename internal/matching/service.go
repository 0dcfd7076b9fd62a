package matching

import (
	"strings"

	uuid "github.com/satori/go.uuid"

	"myple/internal/catalog"
	"myple/internal/common"
)

// FilterAll disables the type and university filters.
const FilterAll = "all"

type Service struct {
	matchings []Matching
}

func NewService(specs []catalog.MatchingSpec) *Service {
	s := &Service{}
	for _, m := range specs {
		s.matchings = append(s.matchings, Matching{
			ID:          m.ID,
			Title:       m.Title,
			Type:        m.Type,
			Description: m.Description,
			Location:    m.Location,
			University:  m.University,
			MaxPeople:   m.MaxPeople,
			Organizer:   m.Organizer,
			Tags:        append([]string(nil), m.Tags...),
		})
	}
	return s
}

func (s *Service) Matchings() []Matching {
	return append([]Matching(nil), s.matchings...)
}

func (s *Service) Matching(id string) (Matching, bool) {
	for _, m := range s.matchings {
		if m.ID == id {
			return m, true
		}
	}
	return Matching{}, false
}

// Search applies the list filters conjunctively: free text against
// title, description, tags and university; then the type and
// university selectors, each disabled by the "all" sentinel.
func (s *Service) Search(query, typ, university string) []Matching {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]Matching, 0, len(s.matchings))
	for _, m := range s.matchings {
		if query != "" && !matchesQuery(m, query) {
			continue
		}
		if typ != "" && typ != FilterAll && m.Type != typ {
			continue
		}
		if university != "" && university != FilterAll && m.University != university {
			continue
		}
		out = append(out, m)
	}
	return out
}

func matchesQuery(m Matching, query string) bool {
	if strings.Contains(strings.ToLower(m.Title), query) ||
		strings.Contains(strings.ToLower(m.Description), query) ||
		strings.Contains(strings.ToLower(m.University), query) {
		return true
	}
	for _, tag := range m.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

type ApplicationForm struct {
	Reason       string
	Experience   string
	Expectations string
}

// Apply submits an application form. The reason needs at least 20
// characters, experience and expectations at least 10 each; one
// application per applicant per matching.
func (s *Service) Apply(matchingID, applicant string, form ApplicationForm) (Application, error) {
	if err := validateForm(form); err != nil {
		return Application{}, err
	}
	for i, m := range s.matchings {
		if m.ID != matchingID {
			continue
		}
		for _, a := range m.Applications {
			if a.Applicant == applicant {
				return Application{}, common.InvalidArgumentError(nil, "already applied to this matching")
			}
		}
		app := Application{
			ID:           uuid.NewV4().String(),
			Applicant:    applicant,
			Reason:       strings.TrimSpace(form.Reason),
			Experience:   strings.TrimSpace(form.Experience),
			Expectations: strings.TrimSpace(form.Expectations),
			Status:       ApplicationPending,
		}
		s.matchings[i].Applications = append(m.Applications, app)
		return app, nil
	}
	return Application{}, common.NotFoundError(nil, "cannot find matching")
}

func validateForm(form ApplicationForm) error {
	if len(strings.TrimSpace(form.Reason)) < 20 {
		return common.InvalidArgumentError(nil, "reason needs at least 20 characters")
	}
	if len(strings.TrimSpace(form.Experience)) < 10 {
		return common.InvalidArgumentError(nil, "experience needs at least 10 characters")
	}
	if len(strings.TrimSpace(form.Expectations)) < 10 {
		return common.InvalidArgumentError(nil, "expectations needs at least 10 characters")
	}
	return nil
}

// Accept approves a pending application, capped at the matching's
// capacity.
func (s *Service) Accept(matchingID, applicationID string) error {
	for i, m := range s.matchings {
		if m.ID != matchingID {
			continue
		}
		if m.Accepted() >= m.MaxPeople {
			return common.InvalidArgumentError(nil, "matching is full")
		}
		for j, a := range m.Applications {
			if a.ID == applicationID {
				s.matchings[i].Applications[j].Status = ApplicationAccepted
				return nil
			}
		}
		return common.NotFoundError(nil, "cannot find application")
	}
	return common.NotFoundError(nil, "cannot find matching")
}

// Reject declines a pending application.
func (s *Service) Reject(matchingID, applicationID string) error {
	for i, m := range s.matchings {
		if m.ID != matchingID {
			continue
		}
		for j, a := range m.Applications {
			if a.ID == applicationID {
				s.matchings[i].Applications[j].Status = ApplicationRejected
				return nil
			}
		}
		return common.NotFoundError(nil, "cannot find application")
	}
	return common.NotFoundError(nil, "cannot find matching")
}
