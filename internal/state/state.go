package state

import (
	"context"
	"database/sql"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/llehouerou/jamp/internal/db"
)

const (
	appName    = "jamp"
	dbFileName = "jamp.db"
)

type Manager struct {
	db *sql.DB
}

// Open opens the history database under the XDG data directory.
func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens the history database at path. db.Memory gives a
// throwaway database.
func OpenPath(path string) (*Manager, error) {
	conn, err := db.Open(path)
	if err != nil {
		return nil, err
	}

	if err := initSchema(context.Background(), conn); err != nil {
		conn.Close()
		return nil, err
	}

	return &Manager{db: conn}, nil
}

func (m *Manager) Close() error {
	return m.db.Close()
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
