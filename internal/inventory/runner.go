package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"technitium_sync/internal/reconcile"
	"technitium_sync/internal/technitium"
)

// RunResult summarizes one manifest application.
type RunResult struct {
	RunID    string              `json:"runId"`
	Outcomes []reconcile.Outcome `json:"outcomes"`
	Changed  int                 `json:"changed"`
	Failed   bool                `json:"failed"`
}

// Run applies the manifest items strictly in order against one server.
// A failure aborts the run; entries after the failing one are not
// attempted. Each entry issues at most one mutating call, so a partial
// run leaves no entry half-applied.
func Run(ctx context.Context, c *technitium.Client, items []Item, checkMode bool, logger *logrus.Entry) RunResult {
	result := RunResult{RunID: uuid.NewString()}
	log := logger.WithField("run_id", result.RunID)

	start := time.Now()
	log.WithField("entries", len(items)).Info("starting reconciliation run")

	for _, item := range items {
		out, err := reconcile.Apply(ctx, c, item.Resource, item.Intent, checkMode)
		result.Outcomes = append(result.Outcomes, out)

		entryLog := log.WithFields(logrus.Fields{
			"kind": out.Kind,
			"name": out.Name,
		})
		if err != nil {
			result.Failed = true
			entryLog.WithError(err).Error("reconciliation failed, aborting run")
			break
		}
		if out.Changed {
			result.Changed++
			entryLog.WithField("action", out.Action).Info(out.Msg)
		} else {
			entryLog.Debug(out.Msg)
		}
	}

	log.WithFields(logrus.Fields{
		"changed":  result.Changed,
		"failed":   result.Failed,
		"duration": time.Since(start).Round(time.Millisecond).String(),
	}).Info("reconciliation run finished")

	return result
}
