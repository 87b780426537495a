package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sakif/faculty-appraisal/internal/apperror"
	"github.com/sakif/faculty-appraisal/internal/model"
	"github.com/sakif/faculty-appraisal/internal/report"
	"github.com/sakif/faculty-appraisal/internal/repository"
)

// Engines groups the five activity engines so consumers that need all of a
// faculty member's lists (reports, stats) take one dependency instead of
// five.
type Engines struct {
	Publications *Activity[model.Publication, *model.Publication]
	Seminars     *Activity[model.Seminar, *model.Seminar]
	Events       *Activity[model.Event, *model.Event]
	Lectures     *Activity[model.Lecture, *model.Lecture]
	Projects     *Activity[model.Project, *model.Project]
}

// NewEngines instantiates the generic CRUD engine once per activity type.
func NewEngines(store repository.RecordStore, logger *slog.Logger) *Engines {
	return &Engines{
		Publications: NewActivity[model.Publication](store, logger),
		Seminars:     NewActivity[model.Seminar](store, logger),
		Events:       NewActivity[model.Event](store, logger),
		Lectures:     NewActivity[model.Lecture](store, logger),
		Projects:     NewActivity[model.Project](store, logger),
	}
}

// ReportService produces the admin-facing views over faculty activity:
// per-faculty counts and the downloadable PDF reports.
type ReportService struct {
	users   repository.UserRepository
	engines *Engines
	logger  *slog.Logger
	now     func() time.Time
}

func NewReportService(users repository.UserRepository, engines *Engines, logger *slog.Logger) *ReportService {
	return &ReportService{
		users:   users,
		engines: engines,
		logger:  logger,
		now:     time.Now,
	}
}

// Document is a rendered report ready for download.
type Document struct {
	Filename string
	Data     []byte
}

// collect loads all five of a faculty member's lists and shapes them for
// the formatter.
func (s *ReportService) collect(ctx context.Context, ownerID string) (report.Stats, []report.Section, error) {
	pubs, err := s.engines.Publications.List(ctx, ownerID)
	if err != nil {
		return report.Stats{}, nil, err
	}
	sems, err := s.engines.Seminars.List(ctx, ownerID)
	if err != nil {
		return report.Stats{}, nil, err
	}
	events, err := s.engines.Events.List(ctx, ownerID)
	if err != nil {
		return report.Stats{}, nil, err
	}
	lectures, err := s.engines.Lectures.List(ctx, ownerID)
	if err != nil {
		return report.Stats{}, nil, err
	}
	projects, err := s.engines.Projects.List(ctx, ownerID)
	if err != nil {
		return report.Stats{}, nil, err
	}

	stats := report.Stats{
		Publications: len(pubs),
		Seminars:     len(sems),
		Events:       len(events),
		Lectures:     len(lectures),
		Projects:     len(projects),
	}

	sections := []report.Section{
		{Type: model.TypePublications, Records: asRecords(pubs)},
		{Type: model.TypeSeminars, Records: asRecords(sems)},
		{Type: model.TypeEvents, Records: asRecords(events)},
		{Type: model.TypeLectures, Records: asRecords(lectures)},
		{Type: model.TypeProjects, Records: asRecords(projects)},
	}

	return stats, sections, nil
}

func asRecords[T model.Record](list []T) []model.Record {
	records := make([]model.Record, len(list))
	for i, r := range list {
		records[i] = r
	}
	return records
}

// getFaculty resolves id to a faculty user. An existing user with a
// different role is reported as not found — admins don't have activity
// lists or reports.
func (s *ReportService) getFaculty(ctx context.Context, id string) (*model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Role != model.RoleFaculty {
		return nil, apperror.NotFound("faculty member", id)
	}
	return user, nil
}

// Stats returns one faculty member's activity counts.
func (s *ReportService) Stats(ctx context.Context, facultyID string) (report.Stats, error) {
	if _, err := s.getFaculty(ctx, facultyID); err != nil {
		return report.Stats{}, err
	}
	stats, _, err := s.collect(ctx, facultyID)
	return stats, err
}

// FacultyReport renders the single-faculty PDF.
func (s *ReportService) FacultyReport(ctx context.Context, facultyID string) (*Document, error) {
	user, err := s.getFaculty(ctx, facultyID)
	if err != nil {
		return nil, err
	}

	stats, sections, err := s.collect(ctx, facultyID)
	if err != nil {
		return nil, err
	}

	data, err := report.Faculty(*user, stats, sections, s.now())
	if err != nil {
		return nil, fmt.Errorf("service/report: rendering report for %s: %w", facultyID, err)
	}

	s.logger.Info("faculty report generated",
		slog.String("facultyID", facultyID),
		slog.Int("bytes", len(data)),
	)

	return &Document{
		Filename: report.FacultyFilename(user.Name),
		Data:     data,
	}, nil
}

// AllFacultyReports renders the whole-roster PDF.
func (s *ReportService) AllFacultyReports(ctx context.Context) (*Document, error) {
	faculty, err := s.users.ListByRole(ctx, model.RoleFaculty)
	if err != nil {
		return nil, fmt.Errorf("service/report: listing faculty: %w", err)
	}

	entries := make([]report.RosterEntry, 0, len(faculty))
	for _, member := range faculty {
		stats, _, err := s.collect(ctx, member.ID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, report.RosterEntry{User: member, Stats: stats})
	}

	now := s.now()
	data, err := report.Roster(entries, now)
	if err != nil {
		return nil, fmt.Errorf("service/report: rendering roster report: %w", err)
	}

	s.logger.Info("roster report generated",
		slog.Int("faculty", len(entries)),
		slog.Int("bytes", len(data)),
	)

	return &Document{
		Filename: report.RosterFilename(now),
		Data:     data,
	}, nil
}
