package game

import (
	"time"

	"github.com/sirupsen/logrus"

	"tombs/internal/logger"
	"tombs/internal/session"
)

// recordDeath appends the finished run to the run log once. A disk problem
// is logged and otherwise ignored so it never interrupts play.
func (g *Game) recordDeath() {
	if g.recorded || g.opts.RunLogDir == "" {
		return
	}
	g.recorded = true

	rec := g.Session.Record(true, time.Now())
	entry := logger.Log.WithFields(logrus.Fields{"run": rec.RunID, "depth": rec.Depth, "level": rec.Level})
	if err := session.AppendRunLog(g.opts.RunLogDir, rec); err != nil {
		entry.WithError(err).Warn("run log not written")
		return
	}
	entry.Info("run recorded")
}
