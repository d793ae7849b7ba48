package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/abhishek622/moodjournal/pkg/model"
)

var (
	// ErrConnection means no database connection could be acquired.
	ErrConnection = errors.New("database connection failed")
	// ErrWrite means an insert did not complete; no row is visible.
	ErrWrite = errors.New("journal insert failed")
	// ErrRead means a listing query failed.
	ErrRead = errors.New("journal query failed")
)

// JournalRepository is the concrete store for journal entries.
//
// Every operation checks a dedicated connection out of the pool and
// releases it on return, so a failure mid-operation never leaks one and
// each request holds at most a single connection.
type JournalRepository struct {
	db *sql.DB
}

// Insert appends one entry and returns the id and timestamp the store
// assigned to it.
func (r JournalRepository) Insert(ctx context.Context, text, emotion string, score float64) (int64, time.Time, error) {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer conn.Close()

	const q = `
INSERT INTO journal_entries (entry_text, primary_emotion, primary_score)
VALUES (?, ?, ?)
`
	res, err := conn.ExecContext(ctx, q, text, emotion, score)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("%w: %v", ErrWrite, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("%w: last insert id: %v", ErrWrite, err)
	}

	// MySQL has no RETURNING; fetch the assigned timestamp on the same
	// connection. The caller never saw the row if this fails, so it
	// counts as a failed write.
	var ts time.Time
	row := conn.QueryRowContext(ctx, `SELECT timestamp FROM journal_entries WHERE id = ?`, id)
	if err := row.Scan(&ts); err != nil {
		return 0, time.Time{}, fmt.Errorf("%w: read back timestamp: %v", ErrWrite, err)
	}
	return id, ts, nil
}

// ListRecent returns up to limit entries, newest first. Entries sharing
// a timestamp order most-recent-inserted-first.
func (r JournalRepository) ListRecent(ctx context.Context, limit int) ([]model.JournalEntry, error) {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer conn.Close()

	const q = `
SELECT id, entry_text, primary_emotion, primary_score, timestamp
FROM journal_entries
ORDER BY timestamp DESC, id DESC
LIMIT ?
`
	rows, err := conn.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	defer rows.Close()

	out := make([]model.JournalEntry, 0, limit)
	for rows.Next() {
		var e model.JournalEntry
		if err := rows.Scan(&e.ID, &e.EntryText, &e.PrimaryEmotion, &e.PrimaryScore, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("%w: scan entry: %v", ErrRead, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	return out, nil
}
