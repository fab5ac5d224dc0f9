// Package testutil holds helpers shared by package tests
package testutil

import (
	"bitwise74/chores-api/db"
	"bitwise74/chores-api/pkg/util"
	"testing"

	"gorm.io/gorm"
)

// NewDB returns a migrated in-memory sqlite database private to the test
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	name, err := util.NewID()
	if err != nil {
		t.Fatalf("Failed to generate database name: %v", err)
	}

	gdb, err := db.Open("sqlite", "file:"+name+"?mode=memory&cache=shared&_foreign_keys=on")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	// Every connection to a named memory database shares it, one is enough
	// and avoids table lock errors
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	return gdb
}
