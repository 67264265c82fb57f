package lockfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/missionlog/internal/constants"
)

var findProcessFunc = ps.FindProcess

// ErrAlreadyRunning is returned when the lockfile belongs to a live server process.
var ErrAlreadyRunning = errors.New("another missionlog server is already running")

// Lock guards the SQLite database against concurrent server instances.
// The lockfile lives next to the database and holds the owning PID.
type Lock struct {
	path string
}

// New returns a lock for the database at dbPath.
func New(dbPath string) *Lock {
	return &Lock{
		path: filepath.Join(filepath.Dir(dbPath), constants.ServerLockfileName),
	}
}

// Path returns the location of the lockfile on disk.
func (l *Lock) Path() string {
	return l.path
}

// Acquire claims the lock, replacing any stale lockfile left behind by a
// crashed server. It fails with ErrAlreadyRunning if the recorded PID
// belongs to a live missionlog process.
func (l *Lock) Acquire() error {
	if pid, held := l.heldBy(); held {
		return fmt.Errorf("%w (pid %d)", ErrAlreadyRunning, pid)
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0700); err != nil {
		return fmt.Errorf("failed to create lockfile directory: %w", err)
	}
	if err := os.WriteFile(l.path, []byte(strconv.Itoa(os.Getpid())), 0600); err != nil {
		return fmt.Errorf("failed to write lockfile: %w", err)
	}
	return nil
}

// Release removes the lockfile. A missing file is not an error.
func (l *Lock) Release() error {
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lockfile: %w", err)
	}
	return nil
}

// heldBy reports whether the lockfile on disk belongs to a live server,
// and if so which PID holds it. Malformed content and dead or recycled
// PIDs count as stale.
func (l *Lock) heldBy() (int, bool) {
	content, err := os.ReadFile(l.path)
	if err != nil {
		return 0, false
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(content)))
	if err != nil {
		return 0, false
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return 0, false
	}

	// The PID may have been recycled by an unrelated process after a crash
	if !strings.HasPrefix(process.Executable(), constants.AppName) {
		return 0, false
	}

	return pid, true
}
