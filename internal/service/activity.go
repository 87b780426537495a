// Package service contains the business logic layer of the application.
//
// The interesting piece is Activity: rather than five near-identical CRUD
// modules, one per activity type, there is one generic engine parametrized
// by the record type; each concrete type is a one-line instantiation in the
// server wiring.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/rs/xid"

	"github.com/sakif/faculty-appraisal/internal/apperror"
	"github.com/sakif/faculty-appraisal/internal/model"
	"github.com/sakif/faculty-appraisal/internal/repository"
)

// RecordPtr constrains P to be *T where *T carries the model.Record
// behaviour plus the ability to assign an ID. Value methods live on T so
// that stored lists are plain []T; SetRecordID needs the pointer.
type RecordPtr[T any] interface {
	*T
	model.Record
	SetRecordID(id string)
}

// Activity is the generic CRUD engine for one activity type: create
// appends, update replaces by id, delete removes by id, and every mutation
// rewrites the owner's whole list through the record store in a single
// write.
//
// All operations are scoped to one owner — an owner's list is only ever
// addressed by its (type, ownerID) key, so there is no way for one faculty
// member's call to touch another's records.
type Activity[T any, P RecordPtr[T]] struct {
	store  repository.RecordStore
	typ    model.ActivityType
	logger *slog.Logger
}

// NewActivity creates the engine for T's activity type. The type is read
// off T's zero value, so the five instantiations differ only in the type
// parameter.
func NewActivity[T any, P RecordPtr[T]](store repository.RecordStore, logger *slog.Logger) *Activity[T, P] {
	var zero T
	return &Activity[T, P]{
		store:  store,
		typ:    P(&zero).Type(),
		logger: logger,
	}
}

// Type returns the activity type this engine serves.
func (s *Activity[T, P]) Type() model.ActivityType {
	return s.typ
}

// List returns the owner's records in insertion order. A list that was
// never saved — or whose stored bytes are malformed — comes back empty,
// never as an error.
func (s *Activity[T, P]) List(ctx context.Context, ownerID string) ([]T, error) {
	return s.load(ctx, ownerID)
}

// Create validates rec, assigns it a fresh ID, appends it to the owner's
// list, and persists. On a validation failure nothing is written and the
// stored list is unchanged.
func (s *Activity[T, P]) Create(ctx context.Context, ownerID string, rec T) (T, error) {
	var zero T

	if err := model.Validate(P(&rec)); err != nil {
		return zero, err
	}

	P(&rec).SetRecordID(xid.New().String())

	list, err := s.load(ctx, ownerID)
	if err != nil {
		return zero, err
	}

	list = append(list, rec)
	if err := s.save(ctx, ownerID, list); err != nil {
		return zero, err
	}

	s.logger.Info("record created",
		slog.String("type", string(s.typ)),
		slog.String("id", P(&rec).RecordID()),
		slog.String("owner", ownerID),
	)

	return rec, nil
}

// Update replaces the record whose ID matches with the submitted fields,
// preserving the ID, and persists. Returns apperror.ErrNotFound — with the
// list untouched — if the owner has no record with that ID.
func (s *Activity[T, P]) Update(ctx context.Context, ownerID, id string, rec T) (T, error) {
	var zero T

	if err := model.Validate(P(&rec)); err != nil {
		return zero, err
	}

	list, err := s.load(ctx, ownerID)
	if err != nil {
		return zero, err
	}

	found := false
	for i := range list {
		if P(&list[i]).RecordID() == id {
			P(&rec).SetRecordID(id)
			list[i] = rec
			found = true
			break
		}
	}
	if !found {
		return zero, apperror.NotFound("record", id)
	}

	if err := s.save(ctx, ownerID, list); err != nil {
		return zero, err
	}

	s.logger.Info("record updated",
		slog.String("type", string(s.typ)),
		slog.String("id", id),
		slog.String("owner", ownerID),
	)

	return rec, nil
}

// Delete removes the record with the given ID from the owner's list and
// persists. Deleting an ID that isn't present is a no-op: nothing is
// written and no error is returned.
func (s *Activity[T, P]) Delete(ctx context.Context, ownerID, id string) error {
	list, err := s.load(ctx, ownerID)
	if err != nil {
		return err
	}

	kept := make([]T, 0, len(list))
	for i := range list {
		if P(&list[i]).RecordID() != id {
			kept = append(kept, list[i])
		}
	}
	if len(kept) == len(list) {
		return nil
	}

	if err := s.save(ctx, ownerID, kept); err != nil {
		return err
	}

	s.logger.Info("record deleted",
		slog.String("type", string(s.typ)),
		slog.String("id", id),
		slog.String("owner", ownerID),
	)

	return nil
}

// load reads and decodes the owner's list. Malformed stored data degrades
// to an empty list: it is logged, never surfaced, and the next successful
// mutation overwrites it with a well-formed value.
func (s *Activity[T, P]) load(ctx context.Context, ownerID string) ([]T, error) {
	raw, err := s.store.Load(ctx, s.typ, ownerID)
	if err != nil {
		return nil, fmt.Errorf("loading %s for owner %s: %w", s.typ, ownerID, err)
	}
	if raw == nil {
		return []T{}, nil
	}

	var list []T
	if err := json.Unmarshal(raw, &list); err != nil {
		s.logger.Warn("malformed stored list, treating as empty",
			slog.String("type", string(s.typ)),
			slog.String("owner", ownerID),
			slog.String("error", err.Error()),
		)
		return []T{}, nil
	}
	if list == nil {
		list = []T{}
	}
	return list, nil
}

func (s *Activity[T, P]) save(ctx context.Context, ownerID string, list []T) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encoding %s for owner %s: %w", s.typ, ownerID, err)
	}
	if err := s.store.Save(ctx, s.typ, ownerID, data); err != nil {
		return fmt.Errorf("saving %s for owner %s: %w", s.typ, ownerID, err)
	}
	return nil
}
