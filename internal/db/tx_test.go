package db

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(Memory)
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}

	_, err = db.Exec(`CREATE TABLE entries (id INTEGER PRIMARY KEY, path TEXT NOT NULL UNIQUE)`)
	if err != nil {
		db.Close()
		t.Fatalf("failed to create table: %v", err)
	}

	return db
}

func countEntries(t *testing.T, db *sql.DB) int {
	t.Helper()
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&count); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	return count
}

func TestOpen_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "jamp.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	var fk int
	if err := db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if fk != 1 {
		t.Errorf("foreign_keys = %d, want 1", fk)
	}
}

func TestWithTx_Success(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	err := WithTx(context.Background(), db, func(tx *sql.Tx) error {
		for _, p := range []string{"/a.mp3", "/b.mp3"} {
			if _, err := tx.Exec(`INSERT INTO entries (path) VALUES (?)`, p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithTx failed: %v", err)
	}

	if count := countEntries(t, db); count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestWithTx_Rollback(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	testErr := errors.New("test error")

	err := WithTx(context.Background(), db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO entries (path) VALUES (?)`, "/a.mp3"); err != nil {
			return err
		}
		return testErr
	})

	if !errors.Is(err, testErr) {
		t.Fatalf("WithTx should return the error: got %v, want %v", err, testErr)
	}
	if count := countEntries(t, db); count != 0 {
		t.Errorf("count = %d, want 0 (rolled back)", count)
	}
}

func TestWithTx_ConstraintRollsBackEarlierWrites(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	err := WithTx(context.Background(), db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO entries (path) VALUES (?)`, "/a.mp3"); err != nil {
			return err
		}
		_, err := tx.Exec(`INSERT INTO entries (path) VALUES (?)`, "/a.mp3")
		return err
	})

	if err == nil {
		t.Fatal("WithTx should return the unique constraint error")
	}
	if count := countEntries(t, db); count != 0 {
		t.Errorf("count = %d, want 0 (all rolled back)", count)
	}
}

func TestWithTx_CancelledContext(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := WithTx(ctx, db, func(_ *sql.Tx) error {
		called = true
		return nil
	})

	if err == nil {
		t.Error("WithTx should fail with a cancelled context")
	}
	if called {
		t.Error("fn should not run without a transaction")
	}
}

func TestNullValues(t *testing.T) {
	if got := NullInt64Value(sql.NullInt64{Int64: 42, Valid: true}); got != 42 {
		t.Errorf("NullInt64Value(valid 42) = %d, want 42", got)
	}
	if got := NullInt64Value(sql.NullInt64{Int64: 42}); got != 0 {
		t.Errorf("NullInt64Value(invalid) = %d, want 0", got)
	}
	if got := NullStringValue(sql.NullString{String: "x", Valid: true}); got != "x" {
		t.Errorf("NullStringValue(valid) = %q, want %q", got, "x")
	}
	if got := NullStringValue(sql.NullString{String: "x"}); got != "" {
		t.Errorf("NullStringValue(invalid) = %q, want empty", got)
	}
}

func TestNullString(t *testing.T) {
	if ns := NullString(""); ns.Valid {
		t.Error("NullString(\"\").Valid = true, want false")
	}
	if ns := NullString("Artist"); !ns.Valid || ns.String != "Artist" {
		t.Errorf("NullString(\"Artist\") = %+v, want valid Artist", ns)
	}
}
