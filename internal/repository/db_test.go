package repository

import (
	"context"
	"path/filepath"
	"testing"

	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("new db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestNewDBSeedsDefaults(t *testing.T) {
	db := newTestDB(t)

	categories, err := NewCategoryRepository(db).List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(categories) != 3 {
		t.Fatalf("expected 3 seeded categories, got %d", len(categories))
	}

	want := map[uint]string{1: "Work", 2: "Personal", 3: "Shopping"}
	for _, category := range categories {
		if want[category.ID] != category.Name {
			t.Errorf("category %d: got %q, want %q", category.ID, category.Name, want[category.ID])
		}
	}
}

func TestSeedingIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	for i := 0; i < 2; i++ {
		db, err := NewDB(path)
		if err != nil {
			t.Fatalf("open %d: %v", i, err)
		}
		categories, err := NewCategoryRepository(db).List(context.Background())
		if err != nil {
			t.Fatalf("list %d: %v", i, err)
		}
		if len(categories) != 3 {
			t.Fatalf("open %d: expected 3 categories, got %d", i, len(categories))
		}
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
}

func TestNewDBCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "test.db")
	db, err := NewDB(path)
	if err != nil {
		t.Fatalf("new db: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
