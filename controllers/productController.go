package controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/services"
	"github.com/Kariqs/storefront-api/storage"
	"github.com/gin-gonic/gin"
)

type ProductController struct {
	products *services.ProductService
	images   storage.ImageStore
}

func NewProductController(products *services.ProductService, images storage.ImageStore) *ProductController {
	return &ProductController{products: products, images: images}
}

func (c *ProductController) GetProducts(ctx *gin.Context) {
	var query models.ProductQuery
	if !bindQuery(ctx, &query) {
		return
	}

	products, err := c.products.List(ctx.Request.Context(), query)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, products)
}

func (c *ProductController) GetProduct(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	product, err := c.products.Get(ctx.Request.Context(), id)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, product)
}

func (c *ProductController) CreateProduct(ctx *gin.Context) {
	var body models.ProductData
	if !bindJSON(ctx, &body) {
		return
	}

	product, err := c.products.Create(ctx.Request.Context(), body)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	ctx.Header("Location", fmt.Sprintf("/api/products/%d", product.ID))
	sendJSONResponse(ctx, http.StatusCreated, product)
}

func (c *ProductController) UpdateProduct(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var body models.ProductData
	if !bindJSON(ctx, &body) {
		return
	}

	if err := c.products.Update(ctx.Request.Context(), id, body); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *ProductController) DeleteProduct(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.products.Delete(ctx.Request.Context(), id); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// UploadImage stores the multipart field "file" and returns its public URL.
func (c *ProductController) UploadImage(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "No file uploaded")
		return
	}

	f, err := header.Open()
	if err != nil {
		log.Printf("Error opening file %s: %v", header.Filename, err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Unable to read uploaded file")
		return
	}
	defer f.Close()

	image, err := storage.DetectImage(f)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	url, err := c.images.Save(ctx.Request.Context(), image)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, models.UploadResponse{Url: url})
}
