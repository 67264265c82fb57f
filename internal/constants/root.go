package constants

const (
	AppName            = "missionlog"
	DefaultKeyringUser = "database-connection"
	DefaultDBPath      = "~/.config/missionlog/missionlog.db"
	DefaultAddr        = "127.0.0.1:8383"
	Version            = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the display format for entry timestamps (HH:MM)
	TimeFormat = "15:04"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "missionlog-"
	BackupFileSuffix = ".db"

	// ServerLockfileName guards the SQLite file against a second server process
	ServerLockfileName = "missionlog.lock"

	// ExportFilePrefix is the basename prefix for CSV downloads
	ExportFilePrefix = "mission_log_"
)
