package handler

import (
	"net/http"
	"time"

	deliverycontext "mazza/internal/delivery/context"
	"mazza/internal/delivery/http/response"
	"mazza/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StoreHandler holds dependencies for seller-side store and listing handlers.
type StoreHandler struct {
	uc usecase.ListingUsecase
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(uc usecase.ListingUsecase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

type createStoreRequest struct {
	Name           string   `json:"name" validate:"required,max=120"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	OpensAtMinute  int      `json:"opens_at_minute" validate:"min=0,max=1439"`
	ClosesAtMinute int      `json:"closes_at_minute" validate:"min=0,max=1439"`
}

// CreateStore handles a seller registering a new store.
func (h *StoreHandler) CreateStore(c echo.Context) error {
	actor := deliverycontext.GetActor(c)
	if actor == nil {
		return response.Unauthorized(c, "Authentication required")
	}

	var req createStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid store input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	store, err := h.uc.CreateStore(c.Request().Context(), actor.ID, &usecase.CreateStoreInput{
		Name:           req.Name,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		OpensAtMinute:  req.OpensAtMinute,
		ClosesAtMinute: req.ClosesAtMinute,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, store)
}

// GetOwnStore handles retrieving the seller's own store.
func (h *StoreHandler) GetOwnStore(c echo.Context) error {
	actor := deliverycontext.GetActor(c)
	if actor == nil {
		return response.Unauthorized(c, "Authentication required")
	}

	store, err := h.uc.GetOwnStore(c.Request().Context(), actor.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store)
}

type updateHoursRequest struct {
	OpensAtMinute  int `json:"opens_at_minute" validate:"min=0,max=1439"`
	ClosesAtMinute int `json:"closes_at_minute" validate:"min=0,max=1439"`
}

// UpdateStoreHours handles changing the store's opening window.
func (h *StoreHandler) UpdateStoreHours(c echo.Context) error {
	actor := deliverycontext.GetActor(c)
	if actor == nil {
		return response.Unauthorized(c, "Authentication required")
	}

	var req updateHoursRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid opening hours input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	store, err := h.uc.UpdateStoreHours(c.Request().Context(), actor.ID, &usecase.UpdateStoreHoursInput{
		OpensAtMinute:  req.OpensAtMinute,
		ClosesAtMinute: req.ClosesAtMinute,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store)
}

type updateLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// UpdateStoreLocation handles moving the store's pickup point.
func (h *StoreHandler) UpdateStoreLocation(c echo.Context) error {
	actor := deliverycontext.GetActor(c)
	if actor == nil {
		return response.Unauthorized(c, "Authentication required")
	}

	var req updateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	store, err := h.uc.UpdateStoreLocation(c.Request().Context(), actor.ID, &usecase.UpdateStoreLocationInput{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store)
}

type createProductRequest struct {
	Name           string     `json:"name" validate:"required,max=200"`
	Price          float64    `json:"price" validate:"min=0"`
	OriginalPrice  *float64   `json:"original_price,omitempty"`
	Quantity       int        `json:"quantity" validate:"required,min=1"`
	AvailableFrom  *time.Time `json:"available_from,omitempty"`
	AvailableUntil time.Time  `json:"available_until" validate:"required"`
}

// CreateProduct handles a seller publishing a new listing.
func (h *StoreHandler) CreateProduct(c echo.Context) error {
	actor := deliverycontext.GetActor(c)
	if actor == nil {
		return response.Unauthorized(c, "Authentication required")
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), actor.ID, &usecase.CreateProductInput{
		Name:           req.Name,
		Price:          req.Price,
		OriginalPrice:  req.OriginalPrice,
		Quantity:       req.Quantity,
		AvailableFrom:  req.AvailableFrom,
		AvailableUntil: req.AvailableUntil,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// ListOwnProducts handles retrieving all of the seller's listings.
func (h *StoreHandler) ListOwnProducts(c echo.Context) error {
	actor := deliverycontext.GetActor(c)
	if actor == nil {
		return response.Unauthorized(c, "Authentication required")
	}

	products, err := h.uc.ListOwnProducts(c.Request().Context(), actor.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products)
}

// UpdateProduct handles editing a listing. Omitted fields stay unchanged.
func (h *StoreHandler) UpdateProduct(c echo.Context) error {
	actor := deliverycontext.GetActor(c)
	if actor == nil {
		return response.Unauthorized(c, "Authentication required")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid product ID format")
	}

	var input usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid product input")
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), actor.ID, productID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product)
}

// DeactivateProduct handles hiding a listing from discovery.
func (h *StoreHandler) DeactivateProduct(c echo.Context) error {
	actor := deliverycontext.GetActor(c)
	if actor == nil {
		return response.Unauthorized(c, "Authentication required")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid product ID format")
	}

	if err := h.uc.DeactivateProduct(c.Request().Context(), actor.ID, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product deactivated"})
}
