// Package server exposes the tracker over HTTP: the home page, form
// endpoints for adding and toggling records, CSV export, and a liveness
// probe. Handlers hold the storage provider on the server struct; nothing
// is cached across requests.
package server

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/julianstephens/missionlog/internal/constants"
	"github.com/julianstephens/missionlog/internal/logger"
	"github.com/julianstephens/missionlog/internal/storage"
)

type Server struct {
	store storage.Provider
	// now is a field so tests can pin "today"
	now func() time.Time
}

func New(store storage.Provider) *Server {
	return &Server{
		store: store,
		now:   time.Now,
	}
}

func (s *Server) today() string {
	return s.now().Format(constants.DateFormat)
}

// Router builds the engine with all routes and middleware attached.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(), gin.Recovery())

	r.GET("/", s.handleHome)
	r.GET("/health", s.handleHealth)
	r.POST("/log", s.handleAddLog)
	r.POST("/task", s.handleAddTask)
	r.POST("/task/toggle", s.handleToggleTask)
	r.GET("/export", s.handleExport)

	return r
}

// Run serves HTTP on addr until the listener fails.
func (s *Server) Run(addr string) error {
	logger.Info("starting server", "addr", addr)
	return s.Router().Run(addr)
}
