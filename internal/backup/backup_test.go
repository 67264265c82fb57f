package backup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/julianstephens/missionlog/internal/constants"
	"github.com/julianstephens/missionlog/internal/storage/sqlite"
)

// setupTestDB creates an initialized missionlog database with one log
// entry and one task, closed and ready to back up.
func setupTestDB(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "missionlog.db")

	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test database: %v", err)
	}
	if _, err := store.AddLog("2024-01-01", "Focus", "3 hours deep work"); err != nil {
		t.Fatalf("AddLog failed: %v", err)
	}
	if _, err := store.AddTask("2024-01-01", "Write report"); err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close test database: %v", err)
	}

	return dbPath
}

func TestCreateBackup(t *testing.T) {
	dbPath := setupTestDB(t)

	mgr := NewManager(dbPath)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		t.Fatalf("backup file was not created: %s", backupPath)
	}

	// The backup is a readable database containing the source rows
	restored := sqlite.NewStore(backupPath)
	if err := restored.Load(); err != nil {
		t.Fatalf("failed to open backup as a database: %v", err)
	}
	defer restored.Close()

	entries, err := restored.ListLogs("2024-01-01")
	if err != nil {
		t.Fatalf("ListLogs on backup failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Outcome != "3 hours deep work" {
		t.Errorf("backup does not contain the source log entry: %+v", entries)
	}

	tasks, err := restored.ListTasks("2024-01-01")
	if err != nil {
		t.Fatalf("ListTasks on backup failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Description != "Write report" {
		t.Errorf("backup does not contain the source task: %+v", tasks)
	}
}

func TestCreateBackup_MissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))

	if _, err := mgr.CreateBackup(); err == nil {
		t.Fatal("expected error when the database does not exist")
	}
}

func TestBackupRotation(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	numBackups := constants.MaxBackups + 5
	for i := 0; i < numBackups; i++ {
		if _, err := mgr.CreateBackup(); err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != constants.MaxBackups {
		t.Errorf("expected %d backups after rotation, got %d", constants.MaxBackups, len(backups))
	}
}

func TestListBackups_NewestFirst(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatalf("failed to create backup dir: %v", err)
	}

	// Listing orders by the timestamp embedded in the filename
	names := []string{
		"missionlog-20240102-090000.db",
		"missionlog-20240101-090000.db",
		"missionlog-20240103-120000.db",
		"missionlog-20240103-120000-1.db",
		"notes.txt", // ignored
	}
	for _, name := range names {
		path := filepath.Join(mgr.GetBackupDir(), name)
		if err := os.WriteFile(path, []byte("x"), 0600); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}

	if len(backups) != 4 {
		t.Fatalf("expected 4 backups, got %d", len(backups))
	}

	want := []string{
		"missionlog-20240103-120000-1.db",
		"missionlog-20240103-120000.db",
		"missionlog-20240102-090000.db",
		"missionlog-20240101-090000.db",
	}
	for i, name := range want {
		if filepath.Base(backups[i].Path) != name {
			t.Errorf("position %d: expected %s, got %s", i, name, filepath.Base(backups[i].Path))
		}
	}
}

func TestListBackups_EmptyDirectory(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups before any were created, got %d", len(backups))
	}
}

func TestRestoreBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	// Change the database after the backup was taken
	store := sqlite.NewStore(dbPath)
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load database: %v", err)
	}
	if _, err := store.AddTask("2024-01-01", "Review PRs"); err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close database: %v", err)
	}

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	restored := sqlite.NewStore(dbPath)
	if err := restored.Load(); err != nil {
		t.Fatalf("failed to load restored database: %v", err)
	}
	defer restored.Close()

	tasks, err := restored.ListTasks("2024-01-01")
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 1 {
		t.Errorf("expected restore to roll back to 1 task, got %d", len(tasks))
	}
}

func TestRestoreBackup_CreatesSafetyCopy(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	before := len(backups)

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	backups, err = mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != before+1 {
		t.Errorf("expected restore to add a safety copy: %d backups before, %d after", before, len(backups))
	}
}

func TestRestoreBackup_RejectsInvalidFile(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatalf("failed to create backup dir: %v", err)
	}
	invalidPath := filepath.Join(mgr.GetBackupDir(), "missionlog-20240101-090000.db")
	if err := os.WriteFile(invalidPath, []byte("not a database"), 0600); err != nil {
		t.Fatalf("failed to write invalid file: %v", err)
	}

	if err := mgr.RestoreBackup(invalidPath); err == nil {
		t.Fatal("expected restore to reject a corrupted backup")
	}

	// The live database was left untouched
	store := sqlite.NewStore(dbPath)
	if err := store.Load(); err != nil {
		t.Fatalf("database was damaged by failed restore: %v", err)
	}
	store.Close()
}

func TestRestoreBackup_MissingFile(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	if err := mgr.RestoreBackup(filepath.Join(mgr.GetBackupDir(), "nope.db")); err == nil {
		t.Fatal("expected error for missing backup file")
	}
}

func TestUniqueBackupFilenames(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	paths := make(map[string]bool)
	for i := 0; i < 5; i++ {
		backupPath, err := mgr.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
		name := filepath.Base(backupPath)
		if paths[name] {
			t.Errorf("duplicate backup filename: %s", name)
		}
		paths[name] = true
	}
}
