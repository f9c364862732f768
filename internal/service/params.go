package service

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/netserve/catalog/internal/cache"
	"github.com/netserve/catalog/internal/config"
	"github.com/netserve/catalog/internal/domain/category"
	"github.com/netserve/catalog/internal/domain/price"
	"github.com/netserve/catalog/internal/domain/product"
	"github.com/netserve/catalog/internal/domain/subscription"
	ierr "github.com/netserve/catalog/internal/errors"
	"github.com/netserve/catalog/internal/logger"
	"github.com/netserve/catalog/internal/types"
	"github.com/netserve/catalog/internal/webhook"
)

// ServiceParams carries the shared dependencies injected into every service.
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	DB     *sqlx.DB
	Cache  cache.Cache

	ProductRepo  product.Repository
	PriceRepo    price.Repository
	SubRepo      subscription.Repository
	CategoryRepo category.Repository

	WebhookPublisher webhook.Publisher
}

// requireCapability rejects the call unless the request context carries the
// capability. The capability set is computed upstream; this is the only
// enforcement point in the service layer.
func requireCapability(ctx context.Context, c types.Capability) error {
	if types.GetCapabilities(ctx).Can(c) {
		return nil
	}
	return ierr.NewErrorf("missing capability %s", c).
		WithHint("You do not have permission to perform this action").
		WithReportableDetails(map[string]any{
			"capability": string(c),
			"user_id":    types.GetUserID(ctx),
		}).
		Mark(ierr.ErrPermissionDenied)
}

// publishWebhook delivers a lifecycle event without failing the caller.
// Webhook delivery is best effort; a failed delivery is logged and dropped.
func (p ServiceParams) publishWebhook(ctx context.Context, eventName string, payload interface{}) {
	if p.WebhookPublisher == nil {
		return
	}
	if err := p.WebhookPublisher.Publish(ctx, eventName, payload); err != nil {
		p.Logger.Errorw("failed to publish webhook event",
			"event_name", eventName,
			"error", err,
		)
	}
}
