package state

import (
	"context"
	"database/sql"
	"time"

	dbutil "github.com/llehouerou/jamp/internal/db"
)

// MaxRecent is the number of history entries kept.
const MaxRecent = 50

// Kind tells what a recent entry was loaded as.
type Kind string

const (
	KindTrack    Kind = "track"
	KindPlaylist Kind = "playlist"
)

// RecentItem is one file the user loaded.
type RecentItem struct {
	Path       string
	Kind       Kind
	Title      string // tracks only
	Artist     string // tracks only
	TrackCount int    // playlists only
	LoadedAt   time.Time
}

// AddRecent records item as the most recently loaded entry. Loading the same
// path again moves it to the top. Entries past MaxRecent are pruned.
func (m *Manager) AddRecent(ctx context.Context, item RecentItem) error {
	return addRecent(ctx, m.db, item)
}

// ListRecent returns up to limit entries, newest first.
func (m *Manager) ListRecent(ctx context.Context, limit int) ([]RecentItem, error) {
	return listRecent(ctx, m.db, limit)
}

// ClearRecent removes all history entries.
func (m *Manager) ClearRecent(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `DELETE FROM recent_items`)
	return err
}

func addRecent(ctx context.Context, db *sql.DB, item RecentItem) error {
	if item.LoadedAt.IsZero() {
		item.LoadedAt = time.Now()
	}

	return dbutil.WithTx(ctx, db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO recent_items (path, kind, title, artist, track_count, loaded_at)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(path) DO UPDATE SET
				kind = excluded.kind,
				title = excluded.title,
				artist = excluded.artist,
				track_count = excluded.track_count,
				loaded_at = excluded.loaded_at
		`, item.Path, string(item.Kind), dbutil.NullString(item.Title), dbutil.NullString(item.Artist),
			sql.NullInt64{Int64: int64(item.TrackCount), Valid: item.Kind == KindPlaylist},
			item.LoadedAt.UnixNano())
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			DELETE FROM recent_items WHERE id NOT IN (
				SELECT id FROM recent_items ORDER BY loaded_at DESC, id DESC LIMIT ?
			)
		`, MaxRecent)
		return err
	})
}

func listRecent(ctx context.Context, db *sql.DB, limit int) ([]RecentItem, error) {
	if limit <= 0 || limit > MaxRecent {
		limit = MaxRecent
	}

	rows, err := db.QueryContext(ctx, `
		SELECT path, kind, title, artist, track_count, loaded_at
		FROM recent_items
		ORDER BY loaded_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []RecentItem
	for rows.Next() {
		var item RecentItem
		var kind string
		var title, artist sql.NullString
		var trackCount sql.NullInt64
		var loadedAt int64

		if err := rows.Scan(&item.Path, &kind, &title, &artist, &trackCount, &loadedAt); err != nil {
			return nil, err
		}

		item.Kind = Kind(kind)
		item.Title = dbutil.NullStringValue(title)
		item.Artist = dbutil.NullStringValue(artist)
		item.TrackCount = int(dbutil.NullInt64Value(trackCount))
		item.LoadedAt = time.Unix(0, loadedAt)
		items = append(items, item)
	}
	return items, rows.Err()
}
