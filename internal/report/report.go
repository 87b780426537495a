// Package report lays out the printable appraisal documents.
//
// The layout is a fixed sequence of draw-text-at-coordinate calls on an A4
// page measured in millimetres, with one pagination rule: before writing a
// line, if the vertical cursor is past the page-bottom threshold, start a
// new page and reset the cursor to the top margin.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/sakif/faculty-appraisal/internal/model"
)

const (
	leftMargin      = 20.0
	topMargin       = 30.0
	bottomThreshold = 40.0 // page break when cursor > pageHeight - bottomThreshold
)

// Section is one activity type's records for the itemized part of a
// single-faculty report, in the owner's list order.
type Section struct {
	Type    model.ActivityType
	Records []model.Record
}

// Stats is the per-faculty activity count summary.
type Stats struct {
	Publications int `json:"publications"`
	Seminars     int `json:"seminars"`
	Events       int `json:"events"`
	Lectures     int `json:"lectures"`
	Projects     int `json:"projects"`
}

// Count returns the count for one activity type.
func (s Stats) Count(t model.ActivityType) int {
	switch t {
	case model.TypePublications:
		return s.Publications
	case model.TypeSeminars:
		return s.Seminars
	case model.TypeEvents:
		return s.Events
	case model.TypeLectures:
		return s.Lectures
	case model.TypeProjects:
		return s.Projects
	}
	return 0
}

// summaryLabels are the fixed captions of the numeric summary block.
var summaryLabels = map[model.ActivityType]string{
	model.TypePublications: "Publications",
	model.TypeSeminars:     "Seminars Attended",
	model.TypeEvents:       "Events Organized",
	model.TypeLectures:     "Guest Lectures",
	model.TypeProjects:     "Projects",
}

// sectionTitles head the itemized sections.
var sectionTitles = map[model.ActivityType]string{
	model.TypePublications: "Publications",
	model.TypeSeminars:     "Seminars",
	model.TypeEvents:       "Events",
	model.TypeLectures:     "Lectures",
	model.TypeProjects:     "Projects",
}

// RosterEntry is one faculty member's line in the all-faculty report.
type RosterEntry struct {
	User  model.User
	Stats Stats
}

// doc carries the document and its vertical cursor through the layout
// helpers.
type doc struct {
	pdf        *fpdf.Fpdf
	y          float64
	pageWidth  float64
	pageHeight float64
}

func newDoc() *doc {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	w, h := pdf.GetPageSize()
	return &doc{pdf: pdf, pageWidth: w, pageHeight: h}
}

// ensureRoom applies the pagination rule.
func (d *doc) ensureRoom() {
	if d.y > d.pageHeight-bottomThreshold {
		d.pdf.AddPage()
		d.y = topMargin
	}
}

func (d *doc) setFont(style string, size float64) {
	d.pdf.SetFont("Helvetica", style, size)
}

func (d *doc) text(x float64, s string) {
	d.pdf.Text(x, d.y, s)
}

func (d *doc) centered(s string) {
	w := d.pdf.GetStringWidth(s)
	d.pdf.Text((d.pageWidth-w)/2, d.y, s)
}

func (d *doc) output() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("report: writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// Faculty renders the single-faculty appraisal report: title, identity
// block, numeric summary, then an itemized section for each non-empty
// activity list. Sections should be passed in model.ActivityTypes order.
func Faculty(user model.User, stats Stats, sections []Section, now time.Time) ([]byte, error) {
	d := newDoc()

	d.setFont("B", 20)
	d.y = 30
	d.centered("Faculty Self-Appraisal Report")

	d.setFont("B", 14)
	d.y = 50
	d.text(leftMargin, "Faculty Information")

	designation := user.Designation
	if designation == "" {
		designation = "Faculty"
	}

	d.setFont("", 12)
	d.y = 65
	d.text(leftMargin, "Name: "+user.Name)
	d.y = 75
	d.text(leftMargin, "Department: "+user.Department)
	d.y = 85
	d.text(leftMargin, "Designation: "+designation)
	d.y = 95
	d.text(leftMargin, "Email: "+user.Email)

	d.setFont("B", 14)
	d.y = 120
	d.text(leftMargin, "Activity Summary")

	d.setFont("", 12)
	d.y = 135
	for _, t := range model.ActivityTypes {
		d.text(leftMargin, fmt.Sprintf("%s: %d", summaryLabels[t], stats.Count(t)))
		d.y += 15
	}

	d.y = 220
	first := true
	for _, sec := range sections {
		if len(sec.Records) == 0 {
			continue
		}
		d.ensureRoom()
		if !first {
			d.y += 10
		}
		first = false

		d.setFont("B", 14)
		d.text(leftMargin, sectionTitles[sec.Type])
		d.y += 15

		d.setFont("", 10)
		schema := model.SchemaFor(sec.Type)
		for i, rec := range sec.Records {
			d.ensureRoom()
			values := rec.FieldValues()
			d.text(leftMargin, fmt.Sprintf("%d. %s", i+1, values[schema.Fields[0].Name]))
			d.y += 10
			for _, f := range schema.Fields[1:] {
				if v := values[f.Name]; v != "" {
					d.ensureRoom()
					d.text(leftMargin, fmt.Sprintf("   %s: %s", f.Label, v))
					d.y += 10
				}
			}
			d.y += 5
		}
	}

	d.setFont("", 8)
	d.y = d.pageHeight - 20
	d.text(leftMargin, "Generated on: "+now.Format("2006-01-02"))
	d.text(d.pageWidth-40, "Faculty Report")

	return d.output()
}

// Roster renders the all-faculty report: a cover block followed by one
// name/department/counts entry per faculty member.
func Roster(entries []RosterEntry, now time.Time) ([]byte, error) {
	d := newDoc()

	d.setFont("B", 24)
	d.y = 50
	d.centered("All Faculty Reports")

	d.setFont("", 16)
	d.y = 80
	d.centered("Generated on: " + now.Format("2006-01-02"))
	d.y = 100
	d.centered(fmt.Sprintf("Total Faculty: %d", len(entries)))

	d.y = 140
	for i, e := range entries {
		if d.y > 250 {
			d.pdf.AddPage()
			d.y = topMargin
		}

		d.setFont("B", 14)
		d.text(leftMargin, fmt.Sprintf("%d. %s", i+1, e.User.Name))
		d.y += 15

		d.setFont("", 10)
		d.text(30, "Department: "+e.User.Department)
		d.y += 10
		d.text(30, fmt.Sprintf("Publications: %d, Seminars: %d, Events: %d",
			e.Stats.Publications, e.Stats.Seminars, e.Stats.Events))
		d.y += 10
		d.text(30, fmt.Sprintf("Lectures: %d, Projects: %d",
			e.Stats.Lectures, e.Stats.Projects))
		d.y += 20
	}

	return d.output()
}

// FacultyFilename names a single-faculty report download,
// e.g. "Jane_Doe_Faculty_Report.pdf".
func FacultyFilename(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "_") + "_Faculty_Report.pdf"
}

// RosterFilename names the all-faculty report download,
// e.g. "All_Faculty_Reports_2026-08-31.pdf".
func RosterFilename(now time.Time) string {
	return "All_Faculty_Reports_" + now.Format("2006-01-02") + ".pdf"
}
