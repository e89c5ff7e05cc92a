package database

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/gaurav-code098/Neo-Translate/internal/domain"
	"github.com/gaurav-code098/Neo-Translate/internal/domain/entity"
)

// turnRepository is the sqlite implementation of TurnRepository. The table
// uses INTEGER PRIMARY KEY AUTOINCREMENT, so turn ids stay unique and
// strictly increasing for the lifetime of the database file, including
// across session clears.
type turnRepository struct {
	db *sql.DB

	// Serializes the append critical section. sqlite would serialize the
	// writes anyway, but taking the lock here keeps id assignment and
	// insertion order identical under concurrent submissions without
	// relying on driver-level busy handling.
	mu sync.Mutex
}

// NewTurnRepository creates a TurnRepository backed by the given database.
func NewTurnRepository(db *sql.DB) domain.TurnRepository {
	return &turnRepository{db: db}
}

// Append inserts the turn and returns it with its assigned id and creation
// time. The gateway work has already happened by the time this runs; the
// insert itself is a short exclusive section.
func (r *turnRepository) Append(ctx context.Context, turn *entity.Turn) (*entity.Turn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	createdAt := time.Now().UTC()

	var audioURL interface{}
	if turn.AudioURL != "" {
		audioURL = turn.AudioURL
	}

	row := r.db.QueryRowContext(ctx,
		`INSERT INTO turns (role, original_text, original_lang, translated_text, target_lang, audio_url, created_at)
         VALUES (?, ?, ?, ?, ?, ?, ?)
         RETURNING id`,
		string(turn.Role),
		turn.OriginalText,
		turn.OriginalLang,
		turn.TranslatedText,
		turn.TargetLang,
		audioURL,
		createdAt.Format(time.RFC3339Nano),
	)

	var id int64
	if err := row.Scan(&id); err != nil {
		return nil, domain.NewStorageError("could not persist the turn", err)
	}

	stored := *turn
	stored.ID = id
	stored.CreatedAt = createdAt
	return &stored, nil
}

// ReadAll returns a snapshot of all turns in id order. WAL mode lets this
// run concurrently with an in-flight append; the reader sees the log either
// before or after the commit, never a torn row.
func (r *turnRepository) ReadAll(ctx context.Context) ([]*entity.Turn, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, role, original_text, original_lang, translated_text, target_lang, audio_url, created_at
         FROM turns
         ORDER BY id ASC`)
	if err != nil {
		return nil, domain.NewStorageError("could not read the conversation log", err)
	}
	defer rows.Close()

	var turns []*entity.Turn
	for rows.Next() {
		var (
			t         entity.Turn
			role      string
			audioURL  sql.NullString
			createdAt string
		)
		if err := rows.Scan(&t.ID, &role, &t.OriginalText, &t.OriginalLang,
			&t.TranslatedText, &t.TargetLang, &audioURL, &createdAt); err != nil {
			return nil, domain.NewStorageError("could not read the conversation log", err)
		}
		t.Role = entity.Role(role)
		if audioURL.Valid {
			t.AudioURL = audioURL.String
		}
		if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			t.CreatedAt = ts
		}
		turns = append(turns, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("could not read the conversation log", err)
	}
	return turns, nil
}

// Clear removes every turn. Deleting from an empty table is a no-op, so
// repeated clears are safe.
func (r *turnRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.db.ExecContext(ctx, `DELETE FROM turns`); err != nil {
		return domain.NewStorageError("could not clear the conversation log", err)
	}
	return nil
}
