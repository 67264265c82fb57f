// Package export serializes one day's logs and tasks into a CSV document.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/julianstephens/missionlog/internal/constants"
	"github.com/julianstephens/missionlog/internal/models"
)

var header = []string{"Type", "Timestamp", "Category", "Detail", "Status"}

// WriteDay writes the day as CSV: one header row, one row per log entry,
// then one row per task, in the order the storage layer returned them.
// A day with no logs and no tasks yields the header row only.
func WriteDay(w io.Writer, day models.Day) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, e := range day.Logs {
		row := []string{"Log", e.CreatedAt.Format(time.RFC3339), e.Category, e.Outcome, "-"}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write log entry row: %w", err)
		}
	}

	for _, t := range day.Tasks {
		row := []string{"Task", t.CreatedAt.Format(time.RFC3339), "-", t.Description, t.Status()}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write task row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// Filename returns the attachment name for a day's CSV download.
func Filename(date string) string {
	return constants.ExportFilePrefix + date + ".csv"
}
