package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/julianstephens/missionlog/internal/constants"
	"github.com/julianstephens/missionlog/internal/export"
	"github.com/julianstephens/missionlog/internal/logger"
	"github.com/julianstephens/missionlog/internal/models"
	"github.com/julianstephens/missionlog/internal/server/view"
	"github.com/julianstephens/missionlog/internal/storage"
	"github.com/julianstephens/missionlog/internal/validation"
)

// renderError maps the error taxonomy to HTTP statuses: validation errors
// are 400, missing rows are 404, anything else is a 500 with a generic
// body. Storage failure details go to the log, never to the response.
func (s *Server) renderError(c *gin.Context, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Error("request failed",
			"request_id", requestID(c),
			"path", c.Request.URL.Path,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func adjacentDays(day string) (prev, next string) {
	t, err := time.Parse(constants.DateFormat, day)
	if err != nil {
		return day, day
	}
	return t.AddDate(0, 0, -1).Format(constants.DateFormat),
		t.AddDate(0, 0, 1).Format(constants.DateFormat)
}

func (s *Server) handleHome(c *gin.Context) {
	day := c.Query("day")
	if day == "" {
		day = s.today()
	}
	if err := validation.Day(day); err != nil {
		s.renderError(c, err)
		return
	}

	logs, err := s.store.ListLogs(day)
	if err != nil {
		s.renderError(c, err)
		return
	}
	tasks, err := s.store.ListTasks(day)
	if err != nil {
		s.renderError(c, err)
		return
	}

	prev, next := adjacentDays(day)
	page := view.HomePage{
		Date:    day,
		PrevDay: prev,
		NextDay: next,
		Logs:    logs,
		Tasks:   tasks,
	}

	// Render into a buffer so a template failure still yields a 500
	// instead of a truncated page.
	var buf bytes.Buffer
	if err := view.Render(&buf, page); err != nil {
		s.renderError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) handleHealth(c *gin.Context) {
	// Pure liveness probe, no database dependency.
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleAddLog(c *gin.Context) {
	date := c.PostForm("date")
	if date == "" {
		date = s.today()
	}

	entry, err := s.store.AddLog(date, c.PostForm("category"), c.PostForm("outcome"))
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/?day="+entry.Date)
}

func (s *Server) handleAddTask(c *gin.Context) {
	date := c.PostForm("date")
	if date == "" {
		date = s.today()
	}

	task, err := s.store.AddTask(date, c.PostForm("description"))
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/?day="+task.Date)
}

func (s *Server) handleToggleTask(c *gin.Context) {
	id, err := strconv.ParseInt(c.PostForm("task_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "task_id must be an integer"})
		return
	}

	task, err := s.store.ToggleTask(id)
	if err != nil {
		s.renderError(c, err)
		return
	}

	// Redirect to the day the task belongs to, not the submitting page.
	c.Redirect(http.StatusSeeOther, "/?day="+task.Date)
}

func (s *Server) handleExport(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = s.today()
	}
	if err := validation.Day(date); err != nil {
		s.renderError(c, err)
		return
	}

	logs, err := s.store.ListLogs(date)
	if err != nil {
		s.renderError(c, err)
		return
	}
	tasks, err := s.store.ListTasks(date)
	if err != nil {
		s.renderError(c, err)
		return
	}

	day := models.Day{Date: date, Logs: logs, Tasks: tasks}

	var buf bytes.Buffer
	if err := export.WriteDay(&buf, day); err != nil {
		s.renderError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", export.Filename(date)))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
