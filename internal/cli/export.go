package cli

import (
	"fmt"
	"os"

	"github.com/julianstephens/missionlog/internal/export"
)

type ExportCmd struct {
	Date   string `arg:"" help:"Date to export (YYYY-MM-DD or 'today')." default:"today"`
	Output string `short:"o" help:"Write CSV to a file instead of stdout." type:"path"`
}

func (c *ExportCmd) Run(ctx *Context) error {
	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	day, err := fetchDay(ctx.Store, date)
	if err != nil {
		return err
	}

	if c.Output == "" {
		return export.WriteDay(os.Stdout, day)
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := export.WriteDay(f, day); err != nil {
		return err
	}

	fmt.Printf("✓ Exported %s to %s\n", date, c.Output)
	return nil
}
