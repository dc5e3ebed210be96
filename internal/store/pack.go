package store

import (
	"context"
	"fmt"
	"io/fs"
)

// Pack builds a bundle at dbPath from the record tree in fsys. Every
// classifiable record file is stored; other files are skipped. Existing
// records at the same paths are replaced, so packing is idempotent.
// It returns the number of records written.
func Pack(ctx context.Context, fsys fs.FS, dbPath string) (int, error) {
	db, err := openBundleDB(dbPath)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin pack: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO records (path, kind, data) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	count := 0
	err = fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		kind := Classify(p)
		if kind == "" {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}
		if _, err := stmt.ExecContext(ctx, p, string(kind), data); err != nil {
			return fmt.Errorf("store %s: %w", p, err)
		}
		count++
		return nil
	})
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit pack: %w", err)
	}
	return count, nil
}
