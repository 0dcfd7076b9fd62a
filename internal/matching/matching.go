package matching

type Matching struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Type         string        `json:"type"`
	Description  string        `json:"description"`
	Location     string        `json:"location"`
	University   string        `json:"university"`
	MaxPeople    int           `json:"max_people"`
	Organizer    string        `json:"organizer"`
	Tags         []string      `json:"tags"`
	Applications []Application `json:"applications"`
}

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

type Application struct {
	ID           string            `json:"id"`
	Applicant    string            `json:"applicant"`
	Reason       string            `json:"reason"`
	Experience   string            `json:"experience"`
	Expectations string            `json:"expectations"`
	Status       ApplicationStatus `json:"status"`
}

// Accepted counts the applications the organizer has approved.
func (m Matching) Accepted() int {
	n := 0
	for _, a := range m.Applications {
		if a.Status == ApplicationAccepted {
			n++
		}
	}
	return n
}
