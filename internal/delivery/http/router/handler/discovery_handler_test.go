package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"mazza/internal/domain/entity"
	"mazza/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// fakeDiscoveryUsecase records the last input and replays a canned result.
type fakeDiscoveryUsecase struct {
	lastInput *usecase.FindNearbyInput
	result    *usecase.NearbyStoresResult
	err       error
}

func (f *fakeDiscoveryUsecase) FindNearby(_ context.Context, input *usecase.FindNearbyInput) (*usecase.NearbyStoresResult, error) {
	f.lastInput = input

	return f.result, f.err
}

func performNearbyRequest(h *DiscoveryHandler, query url.Values) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/stores/nearby?"+query.Encode(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = h.FindNearby(c)

	return rec
}

func TestDiscoveryHandler_FindNearby(t *testing.T) {
	fake := &fakeDiscoveryUsecase{
		result: &usecase.NearbyStoresResult{
			Stores: []*entity.NearbyStore{
				{
					Store:      &entity.Store{ID: uuid.New(), Name: "Bella Tandir"},
					DistanceKm: 0.42,
					IsOpen:     true,
				},
			},
		},
	}
	handler := NewDiscoveryHandler(fake)

	query := url.Values{}
	query.Set("lat", "41.3111")
	query.Set("lng", "69.2797")
	query.Set("limit", "5")
	query.Set("open_only", "true")

	rec := performNearbyRequest(handler, query)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bella Tandir")
	assert.Contains(t, rec.Body.String(), "distance_km")

	assert.Equal(t, 41.3111, fake.lastInput.Latitude)
	assert.Equal(t, 69.2797, fake.lastInput.Longitude)
	assert.Equal(t, 5, fake.lastInput.Limit)
	assert.True(t, fake.lastInput.OpenOnly)
}

func TestDiscoveryHandler_MissingCoordinates(t *testing.T) {
	handler := NewDiscoveryHandler(&fakeDiscoveryUsecase{})

	rec := performNearbyRequest(handler, url.Values{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "lat")
}

func TestDiscoveryHandler_MalformedLimit(t *testing.T) {
	handler := NewDiscoveryHandler(&fakeDiscoveryUsecase{})

	query := url.Values{}
	query.Set("lat", "41.3111")
	query.Set("lng", "69.2797")
	query.Set("limit", "lots")

	rec := performNearbyRequest(handler, query)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDiscoveryHandler_EmptyReasonPassedThrough(t *testing.T) {
	fake := &fakeDiscoveryUsecase{
		result: &usecase.NearbyStoresResult{
			Stores:      []*entity.NearbyStore{},
			EmptyReason: usecase.EmptyReasonNoApprovedStores,
		},
	}
	handler := NewDiscoveryHandler(fake)

	query := url.Values{}
	query.Set("lat", "41.3111")
	query.Set("lng", "69.2797")

	rec := performNearbyRequest(handler, query)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "no_approved_stores")
}
