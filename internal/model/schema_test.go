package model

import (
	"errors"
	"testing"

	"github.com/sakif/faculty-appraisal/internal/apperror"
)

func TestParseActivityType(t *testing.T) {
	tests := []struct {
		in     string
		want   ActivityType
		wantOK bool
	}{
		{"publications", TypePublications, true},
		{"seminars", TypeSeminars, true},
		{"events", TypeEvents, true},
		{"lectures", TypeLectures, true},
		{"projects", TypeProjects, true},
		{"Publications", "", false},
		{"grants", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseActivityType(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseActivityType(%q) = (%q, %v), want (%q, %v)",
				tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestSchemaFor_AllTypesHaveSchemas(t *testing.T) {
	for _, typ := range ActivityTypes {
		schema := SchemaFor(typ)
		if schema.Type != typ {
			t.Errorf("SchemaFor(%q).Type = %q", typ, schema.Type)
		}
		if len(schema.Fields) == 0 {
			t.Errorf("SchemaFor(%q) has no fields", typ)
		}
		if !schema.Fields[0].Required {
			t.Errorf("SchemaFor(%q): headline field %q should be required", typ, schema.Fields[0].Name)
		}
	}
}

func TestSchemaFor_FieldNamesMatchFieldValues(t *testing.T) {
	records := []Record{
		Publication{},
		Seminar{},
		Event{},
		Lecture{},
		Project{},
	}

	for _, rec := range records {
		values := rec.FieldValues()
		for _, f := range SchemaFor(rec.Type()).Fields {
			if _, ok := values[f.Name]; !ok {
				t.Errorf("%s: schema field %q missing from FieldValues()", rec.Type(), f.Name)
			}
		}
	}
}

func TestValidate_CompleteRecord(t *testing.T) {
	pub := Publication{
		Title:   "On Testing",
		Authors: "A. Author",
		Journal: "J. Test",
		Year:    "2026",
	}
	if err := Validate(pub); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidate_MissingRequiredField(t *testing.T) {
	lec := Lecture{
		Title:    "Guest Lecture on Compilers",
		Course:   "CSE 420",
		Semester: "Spring",
		// AcademicYear missing
	}
	err := Validate(lec)
	if err == nil {
		t.Fatal("Validate() should error on missing academic year")
	}
	if !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("error = %T, want *apperror.AppError", err)
	}
	if appErr.Field != "academicYear" {
		t.Errorf("Field = %q, want %q", appErr.Field, "academicYear")
	}
}

func TestValidate_WhitespaceCountsAsBlank(t *testing.T) {
	sem := Seminar{
		Title: "  ",
		Venue: "Hall A",
		Date:  "2026-01-05",
		Topic: "Storage",
	}
	if err := Validate(sem); !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation for whitespace-only title", err)
	}
}

func TestValidate_OptionalFieldsIgnored(t *testing.T) {
	ev := Event{
		Name:      "Annual CS Fest",
		Kind:      "Conference",
		Venue:     "Main Auditorium",
		StartDate: "2026-04-01",
		// EndDate, Role, Organizer, Description all blank
	}
	if err := Validate(ev); err != nil {
		t.Errorf("Validate() error = %v, optional fields should not be checked", err)
	}
}

func TestSetRecordID(t *testing.T) {
	var p Publication
	p.SetRecordID("rec-1")
	if p.RecordID() != "rec-1" {
		t.Errorf("RecordID() = %q, want %q", p.RecordID(), "rec-1")
	}
}
