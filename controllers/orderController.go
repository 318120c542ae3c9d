package controllers

import (
	"fmt"
	"net/http"

	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/services"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

func (c *OrderController) CreateOrder(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	var body models.CreateOrderData
	if !bindJSON(ctx, &body) {
		return
	}

	order, err := c.orders.PlaceOrder(ctx.Request.Context(), identity, body)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	ctx.Header("Location", fmt.Sprintf("/api/orders/%d", order.ID))
	sendJSONResponse(ctx, http.StatusCreated, order)
}

func (c *OrderController) GetOrders(ctx *gin.Context) {
	orders, err := c.orders.GetAllOrders(ctx.Request.Context())
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, orders)
}

func (c *OrderController) GetOrder(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	order, err := c.orders.GetOrderByID(ctx.Request.Context(), identity, id)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, order)
}

// GetUserOrders is mounted behind RequireSelfOrAdmin("userId").
func (c *OrderController) GetUserOrders(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	orders, err := c.orders.GetOrdersByUser(ctx.Request.Context(), userID)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, orders)
}
