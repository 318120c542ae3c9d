package controllers

import (
	"net/http"

	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/services"
	"github.com/gin-gonic/gin"
)

type WishlistController struct {
	wishlists *services.WishlistService
}

func NewWishlistController(wishlists *services.WishlistService) *WishlistController {
	return &WishlistController{wishlists: wishlists}
}

// GetWishlist is mounted behind RequireSelfOrAdmin("userId").
func (c *WishlistController) GetWishlist(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	wishlist, err := c.wishlists.GetByUserID(ctx.Request.Context(), userID)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, wishlist)
}

func (c *WishlistController) AddWishlistItem(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	var body models.AddWishlistItemData
	if !bindJSON(ctx, &body) {
		return
	}

	if err := c.wishlists.AddItem(ctx.Request.Context(), identity.ID, body.ProductID); err != nil {
		respondWithError(ctx, err)
		return
	}

	wishlist, err := c.wishlists.GetByUserID(ctx.Request.Context(), identity.ID)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, wishlist)
}

func (c *WishlistController) RemoveWishlistItem(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.wishlists.RemoveItem(ctx.Request.Context(), identity, itemID); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
