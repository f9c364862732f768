package cron

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/netserve/catalog/internal/logger"
	"github.com/netserve/catalog/internal/service"
	"github.com/netserve/catalog/internal/types"
)

// SubscriptionCronHandler handles subscription related cron jobs
type SubscriptionCronHandler struct {
	subscriptionService service.SubscriptionService
	logger              *logger.Logger
}

// NewSubscriptionCronHandler creates a new subscription cron handler
func NewSubscriptionCronHandler(
	subscriptionService service.SubscriptionService,
	logger *logger.Logger,
) *SubscriptionCronHandler {
	return &SubscriptionCronHandler{
		subscriptionService: subscriptionService,
		logger:              logger,
	}
}

// ExpireSubscriptions sweeps active subscriptions past their end date,
// renewing the auto-renew ones and expiring the rest. Runs as the system
// actor.
func (h *SubscriptionCronHandler) ExpireSubscriptions(c *gin.Context) {
	h.logger.Infow("starting subscription expiry cron job",
		"time", time.Now().UTC().Format(time.RFC3339),
	)

	ctx := types.WithUserID(c.Request.Context(), types.DefaultUserID)
	expired, renewed, err := h.subscriptionService.ExpireDueSubscriptions(ctx)
	if err != nil {
		h.logger.Errorw("failed to expire subscriptions", "error", err)
		c.Error(err)
		return
	}

	h.logger.Infow("completed subscription expiry cron job",
		"expired", expired,
		"renewed", renewed,
	)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"expired": expired,
		"renewed": renewed,
	})
}
