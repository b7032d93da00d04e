package handler

import (
	"net/http"

	deliverycontext "mazza/internal/delivery/context"
	"mazza/internal/delivery/http/response"
	"mazza/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order lifecycle handlers.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type createOrderRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CreateOrder handles a buyer placing a new order.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	actor := deliverycontext.GetActor(c)
	if actor == nil {
		return response.Unauthorized(c, "Authentication required")
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return response.BindingError(c, "Invalid product ID format")
	}

	output, err := h.uc.CreateOrder(c.Request().Context(), actor.ID, &usecase.CreateOrderInput{
		ProductID: productID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// ConfirmOrder handles the owning seller accepting a pending order.
func (h *OrderHandler) ConfirmOrder(c echo.Context) error {
	actor := deliverycontext.GetActor(c)
	if actor == nil {
		return response.Unauthorized(c, "Authentication required")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid order ID format")
	}

	output, err := h.uc.ConfirmOrder(c.Request().Context(), actor.ID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// RejectOrder handles the seller rejecting or the buyer cancelling a pending order.
func (h *OrderHandler) RejectOrder(c echo.Context) error {
	actor := deliverycontext.GetActor(c)
	if actor == nil {
		return response.Unauthorized(c, "Authentication required")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid order ID format")
	}

	output, err := h.uc.RejectOrder(c.Request().Context(), actor.ID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// GetOrder handles retrieving a single order for one of its participants.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	actor := deliverycontext.GetActor(c)
	if actor == nil {
		return response.Unauthorized(c, "Authentication required")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid order ID format")
	}

	output, err := h.uc.GetOrder(c.Request().Context(), actor.ID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// ListMyOrders handles retrieving the buyer's order history, newest first.
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	actor := deliverycontext.GetActor(c)
	if actor == nil {
		return response.Unauthorized(c, "Authentication required")
	}

	orders, err := h.uc.ListBuyerOrders(c.Request().Context(), actor.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// ListPendingOrders handles retrieving the seller's approval queue, oldest first.
func (h *OrderHandler) ListPendingOrders(c echo.Context) error {
	actor := deliverycontext.GetActor(c)
	if actor == nil {
		return response.Unauthorized(c, "Authentication required")
	}

	orders, err := h.uc.ListStorePendingOrders(c.Request().Context(), actor.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// PickupQR renders the order's pickup code as a PNG image.
func (h *OrderHandler) PickupQR(c echo.Context) error {
	actor := deliverycontext.GetActor(c)
	if actor == nil {
		return response.Unauthorized(c, "Authentication required")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid order ID format")
	}

	png, err := h.uc.PickupQR(c.Request().Context(), actor.ID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
