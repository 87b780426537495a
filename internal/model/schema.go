package model

import (
	"strings"

	"github.com/sakif/faculty-appraisal/internal/apperror"
)

// FieldSpec describes one field of an activity variant: its JSON/form name,
// the label used when laying it out in a report, and whether a submission
// must fill it in.
type FieldSpec struct {
	Name     string
	Label    string
	Required bool
}

// Schema is the entity-schema descriptor for one activity kind. The five
// activity variants differ only in this value — the ordered field list, the
// required subset, and nothing else — which is what lets a single generic
// engine serve all of them.
//
// The first field acts as the record's headline in itemized reports.
type Schema struct {
	Type   ActivityType
	Fields []FieldSpec
}

var schemas = map[ActivityType]Schema{
	TypePublications: {
		Type: TypePublications,
		Fields: []FieldSpec{
			{Name: "title", Label: "Title", Required: true},
			{Name: "authors", Label: "Authors", Required: true},
			{Name: "journal", Label: "Journal", Required: true},
			{Name: "year", Label: "Year", Required: true},
			{Name: "type", Label: "Type"},
			{Name: "doi", Label: "DOI"},
			{Name: "description", Label: "Description"},
		},
	},
	TypeSeminars: {
		Type: TypeSeminars,
		Fields: []FieldSpec{
			{Name: "title", Label: "Title", Required: true},
			{Name: "venue", Label: "Venue", Required: true},
			{Name: "date", Label: "Date", Required: true},
			{Name: "topic", Label: "Topic", Required: true},
			{Name: "organizer", Label: "Organizer"},
			{Name: "description", Label: "Description"},
		},
	},
	TypeEvents: {
		Type: TypeEvents,
		Fields: []FieldSpec{
			{Name: "name", Label: "Name", Required: true},
			{Name: "type", Label: "Type", Required: true},
			{Name: "venue", Label: "Venue", Required: true},
			{Name: "startDate", Label: "Start Date", Required: true},
			{Name: "endDate", Label: "End Date"},
			{Name: "role", Label: "Role"},
			{Name: "organizer", Label: "Organizer"},
			{Name: "description", Label: "Description"},
		},
	},
	TypeLectures: {
		Type: TypeLectures,
		Fields: []FieldSpec{
			{Name: "title", Label: "Title", Required: true},
			{Name: "course", Label: "Course", Required: true},
			{Name: "semester", Label: "Semester", Required: true},
			{Name: "academicYear", Label: "Academic Year", Required: true},
			{Name: "department", Label: "Department"},
			{Name: "studentsCount", Label: "Students"},
			{Name: "hoursPerWeek", Label: "Hours/Week"},
			{Name: "description", Label: "Description"},
		},
	},
	TypeProjects: {
		Type: TypeProjects,
		Fields: []FieldSpec{
			{Name: "title", Label: "Title", Required: true},
			{Name: "type", Label: "Type", Required: true},
			{Name: "status", Label: "Status", Required: true},
			{Name: "startDate", Label: "Start Date", Required: true},
			{Name: "endDate", Label: "End Date"},
			{Name: "fundingAgency", Label: "Funding Agency"},
			{Name: "amount", Label: "Amount"},
			{Name: "role", Label: "Role"},
			{Name: "collaborators", Label: "Collaborators"},
			{Name: "description", Label: "Description"},
		},
	},
}

// SchemaFor returns the descriptor for the given activity kind.
// Panics on an unknown type: callers reach this only through
// ParseActivityType or a Record's own Type(), so an unknown type here is a
// programming error, not bad input.
func SchemaFor(t ActivityType) Schema {
	s, ok := schemas[t]
	if !ok {
		panic("model: no schema for activity type " + string(t))
	}
	return s
}

// Validate checks rec against its schema's required-field subset.
// Whitespace-only values count as blank. Returns an apperror validation
// error naming the first missing field, or nil if the record is complete.
func Validate(rec Record) error {
	schema := SchemaFor(rec.Type())
	values := rec.FieldValues()
	for _, f := range schema.Fields {
		if f.Required && strings.TrimSpace(values[f.Name]) == "" {
			return apperror.ValidationFailed(f.Name, f.Label+" is required")
		}
	}
	return nil
}
