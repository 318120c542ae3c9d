package controllers

import (
	"fmt"
	"net/http"

	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/services"
	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	categories *services.CategoryService
}

func NewCategoryController(categories *services.CategoryService) *CategoryController {
	return &CategoryController{categories: categories}
}

func (c *CategoryController) GetCategories(ctx *gin.Context) {
	var query models.CategoryQuery
	if !bindQuery(ctx, &query) {
		return
	}

	categories, err := c.categories.List(ctx.Request.Context(), query)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, categories)
}

func (c *CategoryController) GetCategory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	category, err := c.categories.Get(ctx.Request.Context(), id)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, category)
}

func (c *CategoryController) CreateCategory(ctx *gin.Context) {
	var body models.CategoryData
	if !bindJSON(ctx, &body) {
		return
	}

	category, err := c.categories.Create(ctx.Request.Context(), body)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	ctx.Header("Location", fmt.Sprintf("/api/categories/%d", category.ID))
	sendJSONResponse(ctx, http.StatusCreated, category)
}

func (c *CategoryController) UpdateCategory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var body models.CategoryData
	if !bindJSON(ctx, &body) {
		return
	}

	if err := c.categories.Update(ctx.Request.Context(), id, body); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *CategoryController) DeleteCategory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.categories.Delete(ctx.Request.Context(), id); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
