// Package ratings integrates the external post-purchase rating collaborator.
package ratings

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"mazza/config"
	deliverycontext "mazza/internal/delivery/context"
	"mazza/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultTimeout = 5 * time.Second

// httpRatingsService implements the RatingsService port over a plain HTTP
// POST to the ratings collaborator. Failures are the caller's to log and
// swallow; a rating prompt is never worth failing an order.
type httpRatingsService struct {
	endpoint   string
	httpClient *http.Client
}

type ratingRequest struct {
	BuyerID   string `json:"buyer_id"`
	ProductID string `json:"product_id"`
}

// NewHTTPRatingsService creates a RatingsService calling the configured endpoint.
func NewHTTPRatingsService(cfg *config.RatingsConfig) service.RatingsService {
	timeout := defaultTimeout
	endpoint := ""
	if cfg != nil {
		endpoint = cfg.Endpoint
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
	}

	return &httpRatingsService{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// RequestPostPurchaseRating asks the collaborator to prompt the buyer for a
// rating. A blank endpoint disables the integration.
func (s *httpRatingsService) RequestPostPurchaseRating(ctx context.Context, buyerID, productID uuid.UUID) error {
	if s.endpoint == "" {
		return nil
	}

	body, err := json.Marshal(ratingRequest{
		BuyerID:   buyerID.String(),
		ProductID: productID.String(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to call ratings endpoint")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("ratings endpoint returned non-success status: %d", resp.StatusCode)
	}

	return nil
}
