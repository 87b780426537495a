package report

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/sakif/faculty-appraisal/internal/model"
)

var testTime = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func testUser() model.User {
	return model.User{
		ID:          "user-1",
		Name:        "Jane Doe",
		Email:       "jane@university.edu",
		Department:  "Computer Science",
		Designation: "Assistant Professor",
		Role:        model.RoleFaculty,
	}
}

// pageCount counts page objects in the raw PDF. Good enough to assert
// pagination without a PDF parser: each page contributes one "/Type /Page"
// and the page tree contributes one "/Type /Pages".
func pageCount(t *testing.T, data []byte) int {
	t.Helper()
	pages := bytes.Count(data, []byte("/Type /Page"))
	trees := bytes.Count(data, []byte("/Type /Pages"))
	return pages - trees
}

func TestFaculty_ProducesValidPDF(t *testing.T) {
	data, err := Faculty(testUser(), Stats{}, nil, testTime)
	if err != nil {
		t.Fatalf("Faculty() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("output does not start with a PDF header")
	}
	if pageCount(t, data) != 1 {
		t.Errorf("page count = %d, want 1 for an empty report", pageCount(t, data))
	}
}

func TestFaculty_BlankDesignationDefaults(t *testing.T) {
	user := testUser()
	user.Designation = ""

	// The designation line falls back to "Faculty"; a panic or error here
	// would mean the fallback is gone.
	if _, err := Faculty(user, Stats{}, nil, testTime); err != nil {
		t.Fatalf("Faculty() error = %v", err)
	}
}

func TestFaculty_ItemizedSectionsSpillToNewPages(t *testing.T) {
	var records []model.Record
	for i := 0; i < 40; i++ {
		records = append(records, model.Publication{
			ID:      fmt.Sprintf("rec-%d", i),
			Title:   fmt.Sprintf("Paper %d", i),
			Authors: "J. Doe",
			Journal: "Journal of Testing",
			Year:    "2026",
		})
	}
	sections := []Section{{Type: model.TypePublications, Records: records}}
	stats := Stats{Publications: len(records)}

	data, err := Faculty(testUser(), stats, sections, testTime)
	if err != nil {
		t.Fatalf("Faculty() error = %v", err)
	}
	if got := pageCount(t, data); got < 2 {
		t.Errorf("page count = %d, want at least 2 for 40 itemized records", got)
	}
}

func TestFaculty_SkipsEmptySections(t *testing.T) {
	// A report whose sections are all empty lays out exactly like one with
	// no sections at all.
	allEmpty := make([]Section, 0, len(model.ActivityTypes))
	for _, typ := range model.ActivityTypes {
		allEmpty = append(allEmpty, Section{Type: typ})
	}

	withEmpty, err := Faculty(testUser(), Stats{}, allEmpty, testTime)
	if err != nil {
		t.Fatalf("Faculty() error = %v", err)
	}
	withNone, err := Faculty(testUser(), Stats{}, nil, testTime)
	if err != nil {
		t.Fatalf("Faculty() error = %v", err)
	}

	if got, want := pageCount(t, withEmpty), pageCount(t, withNone); got != want {
		t.Errorf("page count with empty sections = %d, want %d", got, want)
	}
	if len(withEmpty) != len(withNone) {
		t.Errorf("output size with empty sections = %d bytes, want %d", len(withEmpty), len(withNone))
	}
}

func TestRoster_ProducesValidPDF(t *testing.T) {
	entries := []RosterEntry{
		{User: testUser(), Stats: Stats{Publications: 3, Projects: 1}},
	}

	data, err := Roster(entries, testTime)
	if err != nil {
		t.Fatalf("Roster() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("output does not start with a PDF header")
	}
}

func TestRoster_EmptyRoster(t *testing.T) {
	data, err := Roster(nil, testTime)
	if err != nil {
		t.Fatalf("Roster() error = %v", err)
	}
	if pageCount(t, data) != 1 {
		t.Errorf("page count = %d, want 1 for an empty roster", pageCount(t, data))
	}
}

func TestRoster_LongRosterSpillsToNewPages(t *testing.T) {
	var entries []RosterEntry
	for i := 0; i < 12; i++ {
		user := testUser()
		user.ID = fmt.Sprintf("user-%d", i)
		user.Name = fmt.Sprintf("Faculty Member %d", i)
		entries = append(entries, RosterEntry{User: user})
	}

	data, err := Roster(entries, testTime)
	if err != nil {
		t.Fatalf("Roster() error = %v", err)
	}
	if got := pageCount(t, data); got < 2 {
		t.Errorf("page count = %d, want at least 2 for 12 entries", got)
	}
}

func TestFacultyFilename(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Jane Doe", "Jane_Doe_Faculty_Report.pdf"},
		{"  Jane Doe  ", "Jane_Doe_Faculty_Report.pdf"},
		{"Madonna", "Madonna_Faculty_Report.pdf"},
	}
	for _, tt := range tests {
		if got := FacultyFilename(tt.name); got != tt.want {
			t.Errorf("FacultyFilename(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestRosterFilename(t *testing.T) {
	got := RosterFilename(testTime)
	if got != "All_Faculty_Reports_2026-03-15.pdf" {
		t.Errorf("RosterFilename() = %q, want %q", got, "All_Faculty_Reports_2026-03-15.pdf")
	}
}

func TestStatsCount(t *testing.T) {
	s := Stats{Publications: 1, Seminars: 2, Events: 3, Lectures: 4, Projects: 5}
	for i, typ := range model.ActivityTypes {
		if got := s.Count(typ); got != i+1 {
			t.Errorf("Count(%q) = %d, want %d", typ, got, i+1)
		}
	}
}
