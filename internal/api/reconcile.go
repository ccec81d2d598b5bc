package api

import (
	"time"

	"technitium_sync/internal/httpx"
	"technitium_sync/internal/inventory"
	"technitium_sync/internal/reconcile"
	"technitium_sync/internal/technitium"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("component", "api")

// ConnectionParams identifies the DNS server a reconcile request targets.
// Each request carries its own connection; the facade holds no server state.
type ConnectionParams struct {
	URL           string `json:"url" binding:"required"`
	Port          int    `json:"port"`
	Token         string `json:"token" binding:"required"`
	ValidateCerts *bool  `json:"validateCerts"`
	TimeoutSec    int    `json:"timeoutSec"`
}

// ReconcileRequest represents one reconcile invocation over HTTP
type ReconcileRequest struct {
	Connection ConnectionParams `json:"connection" binding:"required"`
	CheckMode  bool             `json:"checkMode"`
	Resource   inventory.Entry  `json:"resource" binding:"required"`
}

func (p ConnectionParams) profile() technitium.Profile {
	validate := true
	if p.ValidateCerts != nil {
		validate = *p.ValidateCerts
	}
	return technitium.Profile{
		BaseURL:       p.URL,
		Port:          p.Port,
		Token:         p.Token,
		ValidateCerts: validate,
		Timeout:       time.Duration(p.TimeoutSec) * time.Second,
	}
}

// reconcileHandler handles POST /api/v1/reconcile
func reconcileHandler(c *gin.Context) {
	var req ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamMissing("invalid request body"))
		return
	}

	item, err := req.Resource.Item()
	if err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}

	client := technitium.NewClient(req.Connection.profile())
	// Failure detail is folded into the outcome record, so the wrapper
	// stays 200 and callers always get the same shape back.
	outcome, _ := reconcile.Apply(c.Request.Context(), client, item.Resource, item.Intent, req.CheckMode)

	entry := logger.WithFields(logrus.Fields{
		"kind":    outcome.Kind,
		"name":    outcome.Name,
		"action":  outcome.Action,
		"changed": outcome.Changed,
	})
	if outcome.Failed {
		entry.Warnf("reconcile failed: %s", outcome.Msg)
	} else {
		entry.Info("reconcile completed")
	}

	httpx.OK(c, outcome)
}
