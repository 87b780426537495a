package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sakif/faculty-appraisal/internal/model"
	"github.com/sakif/faculty-appraisal/internal/repository"
)

// compile-time check that *DB implements repository.RecordStore
var _ repository.RecordStore = (*DB)(nil)

// storageKey builds the record-store key for one owner's list of one
// activity type, e.g. "publications_cv37rs3pp9olc6atsptg".
func storageKey(typ model.ActivityType, ownerID string) string {
	return fmt.Sprintf("%s_%s", typ, ownerID)
}

// Load returns the stored list bytes for the given (type, owner) pair, or
// nil if nothing has ever been saved under that key. Decoding — and the
// degrade-to-empty rule for malformed values — is the caller's concern; the
// store hands back bytes as written.
func (db *DB) Load(ctx context.Context, typ model.ActivityType, ownerID string) ([]byte, error) {
	var value []byte
	err := db.conn.QueryRowContext(ctx,
		`SELECT value FROM records WHERE key = ?`,
		storageKey(typ, ownerID),
	).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("sqlite: loading %s for owner %s: %w", typ, ownerID, err)
	}
	return value, nil
}

// Save overwrites the whole list for the given (type, owner) pair in a
// single upsert, so readers never see a partially written list.
func (db *DB) Save(ctx context.Context, typ model.ActivityType, ownerID string, data []byte) error {
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO records (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		storageKey(typ, ownerID),
		data,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("sqlite: saving %s for owner %s: %w", typ, ownerID, err)
	}
	return nil
}
