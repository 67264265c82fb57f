// Package view renders the home page. Rendering is a pure function from a
// fully-populated context structure to markup; callers validate and order
// the data before handing it over.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/julianstephens/missionlog/internal/models"
)

//go:embed home.html
var files embed.FS

var home = template.Must(template.ParseFS(files, "home.html"))

// HomePage is the complete context for the home template.
type HomePage struct {
	Date    string // displayed day, YYYY-MM-DD
	PrevDay string
	NextDay string
	Logs    []models.LogEntry
	Tasks   []models.Task
}

// Render writes the home page for the given context.
func Render(w io.Writer, page HomePage) error {
	if err := home.Execute(w, page); err != nil {
		return fmt.Errorf("failed to render home page: %w", err)
	}
	return nil
}
