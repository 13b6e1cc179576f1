package system

import (
	"context"
	"encoding/json"
	"time"

	"livpulse/internal/features/overview"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

type SystemController struct {
	OverviewService overview.OverviewService
	Log             *zap.Logger
}

func NewSystemController(overviewService overview.OverviewService, log *zap.Logger) *SystemController {
	return &SystemController{
		OverviewService: overviewService,
		Log:             log,
	}
}

// wsRequest is what alert subscribers send; only "refresh" is recognised.
type wsRequest struct {
	Action string `json:"action"`
}

// HandleAlertsSocket serves the alert feed over a websocket. The merged
// alert bundle is pushed on connect and again on every refresh request.
func (ctrl *SystemController) HandleAlertsSocket(c *websocket.Conn) {
	defer c.Close()

	if err := ctrl.pushAlerts(c); err != nil {
		ctrl.Log.Warn("alerts push failed", zap.Error(err))
		return
	}

	for {
		_, msg, err := c.ReadMessage()
		if err != nil {
			return
		}

		var req wsRequest
		if json.Unmarshal(msg, &req) != nil || req.Action != "refresh" {
			if err := c.WriteJSON(map[string]string{"error": "unknown action"}); err != nil {
				return
			}
			continue
		}

		if err := ctrl.pushAlerts(c); err != nil {
			ctrl.Log.Warn("alerts push failed", zap.Error(err))
			return
		}
	}
}

func (ctrl *SystemController) pushAlerts(c *websocket.Conn) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	bundle, err := ctrl.OverviewService.Alerts(ctx)
	if err != nil {
		return err
	}
	return c.WriteJSON(bundle)
}
