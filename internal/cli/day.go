package cli

import (
	"fmt"

	"github.com/julianstephens/missionlog/internal/constants"
)

type DayCmd struct {
	Date string `arg:"" help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	day, err := fetchDay(ctx.Store, date)
	if err != nil {
		return err
	}

	fmt.Printf("Mission log for %s:\n\n", date)

	if len(day.Logs) == 0 {
		fmt.Println("  No log entries")
	} else {
		for _, entry := range day.Logs {
			fmt.Printf("  %s  %-12s  %s\n", entry.CreatedAt.Format(constants.TimeFormat), entry.Category, entry.Outcome)
		}
	}

	fmt.Println()

	if len(day.Tasks) == 0 {
		fmt.Println("  No tasks")
		return nil
	}
	for _, task := range day.Tasks {
		marker := " "
		if task.Done {
			marker = "x"
		}
		fmt.Printf("  [%s] %s\n", marker, task.Description)
	}

	return nil
}
