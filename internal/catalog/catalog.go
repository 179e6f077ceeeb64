// Package catalog persists discovered shortcuts in a SQLite database so other
// tools can query them without re-reading every Steam user's shortcuts file.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/joshuapare/vdfkit/pkg/shortcut"
)

const table = "shortcuts"

var columns = []string{
	"user_id",
	"source_path",
	"position",
	"app_id",
	"app_name",
	"exe",
	"start_dir",
	"steam_id",
	"indexed_at",
}

// Entry is one stored shortcut together with where it was found.
type Entry struct {
	shortcut.Shortcut `yaml:",inline"`

	UserID     string    `json:"user_id" yaml:"user_id"`
	SourcePath string    `json:"source_path" yaml:"source_path"`
	Position   int       `json:"position" yaml:"position"`
	SteamID    uint64    `json:"steam_id" yaml:"steam_id"`
	IndexedAt  time.Time `json:"indexed_at" yaml:"indexed_at"`
}

// SyncStats summarises one Sync call.
type SyncStats struct {
	Sources   int // sources whose rows were replaced
	Skipped   int // sources left untouched because they failed to parse
	Shortcuts int // rows written
	Pruned    int // rows removed because their file is gone
}

// Store is a shortcut catalog backed by SQLite.
type Store struct {
	db  *sql.DB
	sq  sq.StatementBuilderType
	now func() time.Time
}

// Open opens or creates the catalog at path and migrates it to the current
// schema.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := openDB(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return &Store{
		db:  db,
		sq:  sq.StatementBuilder,
		now: func() time.Time { return time.Now().UTC() },
	}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Sync replaces the stored rows of every source that parsed successfully.
// Sources carrying an error keep whatever was stored for them before, so a
// file caught mid-write by Steam does not wipe its catalog entries. All
// changes are applied in one transaction.
func (s *Store) Sync(ctx context.Context, sources []shortcut.Source) (SyncStats, error) {
	var stats SyncStats
	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		return s.replace(ctx, tx, sources, &stats)
	})
	if err != nil {
		return SyncStats{}, fmt.Errorf("catalog: sync: %w", err)
	}
	return stats, nil
}

// Reconcile makes the catalog mirror a complete scan: it syncs sources like
// Sync and then deletes the rows of every file that is not among them, such
// as the shortcuts of a user whose file or directory was removed. Failed
// sources still count as present and keep their rows.
func (s *Store) Reconcile(ctx context.Context, sources []shortcut.Source) (SyncStats, error) {
	var stats SyncStats
	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := s.replace(ctx, tx, sources, &stats); err != nil {
			return err
		}
		paths := make([]string, 0, len(sources))
		for _, src := range sources {
			paths = append(paths, src.Path)
		}
		del, args, err := s.sq.Delete(table).Where(sq.NotEq{"source_path": paths}).ToSql()
		if err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, del, args...)
		if err != nil {
			return fmt.Errorf("prune: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("prune: %w", err)
		}
		stats.Pruned = int(n)
		return nil
	})
	if err != nil {
		return SyncStats{}, fmt.Errorf("catalog: reconcile: %w", err)
	}
	return stats, nil
}

func (s *Store) replace(ctx context.Context, tx *sql.Tx, sources []shortcut.Source, stats *SyncStats) error {
	indexedAt := s.now().Format(time.RFC3339)
	for _, src := range sources {
		if src.Err != nil {
			stats.Skipped++
			continue
		}
		del, args, err := s.sq.Delete(table).Where(sq.Eq{"source_path": src.Path}).ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, del, args...); err != nil {
			return fmt.Errorf("clear %s: %w", src.Path, err)
		}
		stats.Sources++
		if len(src.Shortcuts) == 0 {
			continue
		}

		ins := s.sq.Insert(table).Columns(columns...)
		for i, sc := range src.Shortcuts {
			ins = ins.Values(
				src.UserID,
				src.Path,
				i,
				int64(sc.AppID),
				sc.AppName,
				sc.Exe,
				sc.StartDir,
				// SQLite integers are signed; the bit pattern round-trips.
				int64(sc.SteamID()),
				indexedAt,
			)
		}
		q, args, err := ins.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, q, args...); err != nil {
			return fmt.Errorf("insert %s: %w", src.Path, err)
		}
		stats.Shortcuts += len(src.Shortcuts)
	}
	return nil
}

// List returns every stored shortcut ordered by user, file and position.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	return s.list(ctx, nil)
}

// ListUser returns the stored shortcuts of one Steam account.
func (s *Store) ListUser(ctx context.Context, userID string) ([]Entry, error) {
	return s.list(ctx, sq.Eq{"user_id": userID})
}

// FindBySteamID returns the shortcuts whose derived SteamID equals id. More
// than one row can match when the same shortcut exists for several users.
func (s *Store) FindBySteamID(ctx context.Context, id uint64) ([]Entry, error) {
	return s.list(ctx, sq.Eq{"steam_id": int64(id)})
}

func (s *Store) list(ctx context.Context, where sq.Sqlizer) ([]Entry, error) {
	q := s.sq.Select(columns...).
		From(table).
		OrderBy("user_id", "source_path", "position")
	if where != nil {
		q = q.Where(where)
	}
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("catalog: list: %w", err)
	}
	defer rows.Close()

	out := make([]Entry, 0)
	for rows.Next() {
		var (
			e         Entry
			appID     int64
			steamID   int64
			indexedAt string
		)
		if err := rows.Scan(
			&e.UserID,
			&e.SourcePath,
			&e.Position,
			&appID,
			&e.AppName,
			&e.Exe,
			&e.StartDir,
			&steamID,
			&indexedAt,
		); err != nil {
			return nil, fmt.Errorf("catalog: scan: %w", err)
		}
		e.AppID = uint32(appID)
		e.SteamID = uint64(steamID)
		e.IndexedAt, _ = time.Parse(time.RFC3339, indexedAt)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog: list: %w", err)
	}
	return out, nil
}
