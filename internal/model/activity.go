package model

// ActivityType classifies an activity record kind. Its string value doubles
// as the storage key prefix and the URL path segment, so the constants below
// are load-bearing: changing one is a breaking change for stored data.
type ActivityType string

const (
	TypePublications ActivityType = "publications"
	TypeSeminars     ActivityType = "seminars"
	TypeEvents       ActivityType = "events"
	TypeLectures     ActivityType = "lectures"
	TypeProjects     ActivityType = "projects"
)

// ActivityTypes lists all activity kinds in their display order. Reports and
// stats iterate this slice so every consumer agrees on the ordering.
var ActivityTypes = []ActivityType{
	TypePublications,
	TypeSeminars,
	TypeEvents,
	TypeLectures,
	TypeProjects,
}

// ParseActivityType maps a URL path segment to an ActivityType.
// Returns ("", false) for anything that isn't one of the five kinds —
// unknown shapes are rejected at the boundary, not at point of use.
func ParseActivityType(s string) (ActivityType, bool) {
	t := ActivityType(s)
	for _, known := range ActivityTypes {
		if t == known {
			return t, true
		}
	}
	return "", false
}

// Record is implemented by all five activity variants. The generic CRUD
// engine and the report formatter only ever see records through this
// interface plus the schema descriptor for their type.
//
// FieldValues returns the record's non-ID fields keyed by schema field name.
// Year, student counts etc. are kept as strings — they come from free-form
// inputs and are never computed with.
type Record interface {
	RecordID() string
	Type() ActivityType
	FieldValues() map[string]string
}

// Publication is a journal or conference publication.
type Publication struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Authors     string `json:"authors"`
	Journal     string `json:"journal"`
	Year        string `json:"year"`
	Kind        string `json:"type,omitempty"`
	DOI         string `json:"doi,omitempty"`
	Description string `json:"description,omitempty"`
}

func (p Publication) RecordID() string { return p.ID }
func (p Publication) Type() ActivityType { return TypePublications }
func (p *Publication) SetRecordID(id string) { p.ID = id }

func (p Publication) FieldValues() map[string]string {
	return map[string]string{
		"title":       p.Title,
		"authors":     p.Authors,
		"journal":     p.Journal,
		"year":        p.Year,
		"type":        p.Kind,
		"doi":         p.DOI,
		"description": p.Description,
	}
}

// Seminar is an attended seminar or workshop.
type Seminar struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Venue       string `json:"venue"`
	Date        string `json:"date"`
	Topic       string `json:"topic"`
	Organizer   string `json:"organizer,omitempty"`
	Description string `json:"description,omitempty"`
}

func (s Seminar) RecordID() string { return s.ID }
func (s Seminar) Type() ActivityType { return TypeSeminars }
func (s *Seminar) SetRecordID(id string) { s.ID = id }

func (s Seminar) FieldValues() map[string]string {
	return map[string]string{
		"title":       s.Title,
		"venue":       s.Venue,
		"date":        s.Date,
		"topic":       s.Topic,
		"organizer":   s.Organizer,
		"description": s.Description,
	}
}

// Event is an organized or attended event.
type Event struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Kind        string `json:"type"`
	Venue       string `json:"venue"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	Role        string `json:"role,omitempty"`
	Organizer   string `json:"organizer,omitempty"`
	Description string `json:"description,omitempty"`
}

func (e Event) RecordID() string { return e.ID }
func (e Event) Type() ActivityType { return TypeEvents }
func (e *Event) SetRecordID(id string) { e.ID = id }

func (e Event) FieldValues() map[string]string {
	return map[string]string{
		"name":        e.Name,
		"type":        e.Kind,
		"venue":       e.Venue,
		"startDate":   e.StartDate,
		"endDate":     e.EndDate,
		"role":        e.Role,
		"organizer":   e.Organizer,
		"description": e.Description,
	}
}

// Lecture is a guest lecture or taught course.
type Lecture struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Course        string `json:"course"`
	Semester      string `json:"semester"`
	AcademicYear  string `json:"academicYear"`
	Department    string `json:"department,omitempty"`
	StudentsCount string `json:"studentsCount,omitempty"`
	HoursPerWeek  string `json:"hoursPerWeek,omitempty"`
	Description   string `json:"description,omitempty"`
}

func (l Lecture) RecordID() string { return l.ID }
func (l Lecture) Type() ActivityType { return TypeLectures }
func (l *Lecture) SetRecordID(id string) { l.ID = id }

func (l Lecture) FieldValues() map[string]string {
	return map[string]string{
		"title":         l.Title,
		"course":        l.Course,
		"semester":      l.Semester,
		"academicYear":  l.AcademicYear,
		"department":    l.Department,
		"studentsCount": l.StudentsCount,
		"hoursPerWeek":  l.HoursPerWeek,
		"description":   l.Description,
	}
}

// Project is a research or consultancy project.
type Project struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Kind          string `json:"type"`
	Status        string `json:"status"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate,omitempty"`
	FundingAgency string `json:"fundingAgency,omitempty"`
	Amount        string `json:"amount,omitempty"`
	Role          string `json:"role,omitempty"`
	Collaborators string `json:"collaborators,omitempty"`
	Description   string `json:"description,omitempty"`
}

func (p Project) RecordID() string { return p.ID }
func (p Project) Type() ActivityType { return TypeProjects }
func (p *Project) SetRecordID(id string) { p.ID = id }

func (p Project) FieldValues() map[string]string {
	return map[string]string{
		"title":         p.Title,
		"type":          p.Kind,
		"status":        p.Status,
		"startDate":     p.StartDate,
		"endDate":       p.EndDate,
		"fundingAgency": p.FundingAgency,
		"amount":        p.Amount,
		"role":          p.Role,
		"collaborators": p.Collaborators,
		"description":   p.Description,
	}
}
