package usecase

import (
	"context"

	"mazza/internal/domain/entity"
)

// EmptyReason explains why a nearby search returned no stores, so the
// delivery layer can render the right guidance to the buyer.
type EmptyReason string

const (
	// EmptyReasonNone means the result set is not empty.
	EmptyReasonNone EmptyReason = ""
	// EmptyReasonNoApprovedStores means no store has passed moderation yet.
	EmptyReasonNoApprovedStores EmptyReason = "no_approved_stores"
	// EmptyReasonNoVisibleProducts means approved stores exist but none has
	// a purchasable listing at this moment.
	EmptyReasonNoVisibleProducts EmptyReason = "no_visible_products"
)

// FindNearbyInput represents the input for a nearby-store search.
type FindNearbyInput struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Limit     int     `json:"limit,omitempty"` // 0 means the configured default
	OpenOnly  bool    `json:"open_only,omitempty"`
}

// NearbyStoresResult is a ranked page of stores around the searcher.
type NearbyStoresResult struct {
	Stores      []*entity.NearbyStore `json:"stores"`
	EmptyReason EmptyReason           `json:"empty_reason,omitempty"`
}

// DiscoveryUsecase defines the interface for the nearby-store search.
type DiscoveryUsecase interface {
	// FindNearby returns stores ranked by distance from the searcher's
	// coordinate, closest first, ties broken by store ID.
	FindNearby(ctx context.Context, input *FindNearbyInput) (*NearbyStoresResult, error)
}
