package cli

import (
	"github.com/gin-gonic/gin"

	"github.com/julianstephens/missionlog/internal/lockfile"
	"github.com/julianstephens/missionlog/internal/server"
	"github.com/julianstephens/missionlog/internal/storage/sqlite"
)

// ServeCmd runs the web interface until interrupted.
type ServeCmd struct{}

func (c *ServeCmd) Run(ctx *Context) error {
	if !ctx.Config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// Cross-process exclusion only matters for the file-backed store;
	// PostgreSQL handles concurrent clients itself
	if _, ok := ctx.Store.(*sqlite.Store); ok {
		lock := lockfile.New(ctx.Store.GetConfigPath())
		if err := lock.Acquire(); err != nil {
			return err
		}
		defer lock.Release()
	}

	// Snapshot before the session starts mutating data
	ctx.PerformAutomaticBackup()

	return server.New(ctx.Store).Run(ctx.Config.Addr)
}
