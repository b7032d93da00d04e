package service

import (
	"context"

	"github.com/google/uuid"
)

// RatingsService triggers the post-purchase rating workflow after a
// confirmed order. The workflow itself runs in an external collaborator.
type RatingsService interface {
	// RequestPostPurchaseRating asks the ratings collaborator to prompt the
	// buyer for a rating of the purchased product.
	RequestPostPurchaseRating(ctx context.Context, buyerID, productID uuid.UUID) error
}
