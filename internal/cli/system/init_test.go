package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/julianstephens/missionlog/internal/cli"
	"github.com/julianstephens/missionlog/internal/config"
	"github.com/julianstephens/missionlog/internal/constants"
	"github.com/julianstephens/missionlog/internal/storage/sqlite"
)

func setupTestInitDB(t *testing.T) (*cli.Context, string, func()) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")

	store := sqlite.NewStore(dbPath)

	ctx := &cli.Context{
		Store:  store,
		Config: config.Config{DB: dbPath, Addr: constants.DefaultAddr},
	}

	cleanup := func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	}

	return ctx, dbPath, cleanup
}

func TestInitCmd_Success(t *testing.T) {
	ctx, dbPath, cleanup := setupTestInitDB(t)
	defer cleanup()

	cmd := &InitCmd{}
	err := cmd.Run(ctx)

	if err != nil {
		t.Errorf("init command failed: %v", err)
	}

	// Verify database file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("database file was not created at %s", dbPath)
	}
}

func TestInitCmd_Idempotent(t *testing.T) {
	ctx, _, cleanup := setupTestInitDB(t)
	defer cleanup()

	cmd := &InitCmd{}

	// Run init first time
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("first init failed: %v", err)
	}

	// Run init second time - should be idempotent
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("second init failed (should be idempotent): %v", err)
	}
}

func TestInitCmd_IdempotentKeepsData(t *testing.T) {
	ctx, _, cleanup := setupTestInitDB(t)
	defer cleanup()

	cmd := &InitCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("first init failed: %v", err)
	}

	if _, err := ctx.Store.AddLog("2024-01-15", "Focus", "3 hours deep work"); err != nil {
		t.Fatalf("AddLog failed: %v", err)
	}

	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("second init failed: %v", err)
	}

	entries, err := ctx.Store.ListLogs("2024-01-15")
	if err != nil {
		t.Fatalf("ListLogs failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("re-running init should not touch existing data, got %d entries", len(entries))
	}
}

func TestInitCmd_ForceDeletesExisting(t *testing.T) {
	ctx, dbPath, cleanup := setupTestInitDB(t)
	defer cleanup()

	// First, create and initialize database
	normalCmd := &InitCmd{}
	if err := normalCmd.Run(ctx); err != nil {
		t.Fatalf("initial init failed: %v", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatalf("database file was not created")
	}

	// Add some data to verify it gets wiped
	if _, err := ctx.Store.AddLog("2024-01-15", "Focus", "3 hours deep work"); err != nil {
		t.Fatalf("AddLog failed: %v", err)
	}

	// Now run init with force flag
	forceCmd := &InitCmd{Force: true}
	if err := forceCmd.Run(ctx); err != nil {
		t.Fatalf("init with force failed: %v", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatalf("database file was not recreated after force")
	}

	// The fresh database has no log entries
	entries, err := ctx.Store.ListLogs("2024-01-15")
	if err != nil {
		t.Fatalf("ListLogs failed after force: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty database after force, got %d entries", len(entries))
	}
}

func TestInitCmd_ForceWithNonExistentDatabase(t *testing.T) {
	ctx, dbPath, cleanup := setupTestInitDB(t)
	defer cleanup()

	// Verify database doesn't exist initially
	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Fatalf("database file should not exist initially")
	}

	forceCmd := &InitCmd{Force: true}
	if err := forceCmd.Run(ctx); err != nil {
		t.Fatalf("init with force on non-existent database failed: %v", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("database file was not created")
	}
}
