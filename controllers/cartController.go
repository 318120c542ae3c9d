package controllers

import (
	"net/http"

	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/services"
	"github.com/gin-gonic/gin"
)

// CartController serves the caller's own cart; the owner always comes from the token.
type CartController struct {
	carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{carts: carts}
}

func (c *CartController) GetCart(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	cart, err := c.carts.GetCart(ctx.Request.Context(), identity.ID)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, cart)
}

func (c *CartController) AddCartItem(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	var body models.AddCartItemData
	if !bindJSON(ctx, &body) {
		return
	}

	cart, err := c.carts.AddItem(ctx.Request.Context(), identity.ID, body)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, cart)
}

func (c *CartController) RemoveCartItem(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.carts.RemoveItem(ctx.Request.Context(), identity.ID, itemID); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *CartController) ClearCart(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	if err := c.carts.ClearCart(ctx.Request.Context(), identity.ID); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
