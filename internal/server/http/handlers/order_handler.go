package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mkarev/shopapi/internal/domain/model"
	"github.com/mkarev/shopapi/internal/server/http/dto"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /orders. Line items, address and price are taken as
// supplied; the only transformation is coercing each product reference into
// a UUID, and a coercion failure surfaces like any other persistence error.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: err.Error()})
		return
	}

	items := make([]model.OrderItem, 0, len(req.Products))
	for _, p := range req.Products {
		productID, err := uuid.Parse(p.Product)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: err.Error()})
			return
		}
		items = append(items, model.OrderItem{ProductID: productID, Quantity: p.Quantity})
	}

	if _, err := h.facade.PlaceOrder(c.Request.Context(), CurrentUserID(c), items, req.Address, req.Price); err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Order created"})
}

// MarkDelivered handles PUT /orders/mark-delivered/:id. The update is
// unconditional: an id that matches no order still reports success.
func (h *OrderHandler) MarkDelivered(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: err.Error()})
		return
	}

	if err := h.facade.MarkDelivered(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Updated"})
}

// List handles GET /orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: err.Error()})
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}

	c.JSON(http.StatusOK, response)
}

func toOrderResponse(order model.OrderWithOwner) dto.OrderResponse {
	items := make([]dto.OrderLineItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderLineItem{Product: item.ProductID.String(), Quantity: item.Quantity})
	}

	return dto.OrderResponse{
		ID: order.ID.String(),
		Owner: dto.OrderOwner{
			ID:        order.Owner.ID.String(),
			Login:     order.Owner.Login,
			Role:      string(order.Owner.Role),
			CreatedAt: order.Owner.CreatedAt,
		},
		Products:  items,
		Address:   order.Address,
		Price:     order.Price,
		Delivered: order.Delivered,
		CreatedAt: order.CreatedAt,
	}
}
