package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/utils"
	"gorm.io/gorm"
)

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

func (s *ProductService) List(ctx context.Context, q models.ProductQuery) ([]models.ProductDto, error) {
	query := s.db.WithContext(ctx).
		Preload("Category").
		Scopes(nameContains("name", strings.TrimSpace(q.Name)))
	if q.CategoryID != 0 {
		query = query.Where("category_id = ?", q.CategoryID)
	}

	var products []models.Product
	if err := query.Scopes(paginate(q.Page, q.PageSize)).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	out := make([]models.ProductDto, 0, len(products))
	for _, p := range products {
		out = append(out, p.ToDto())
	}
	return out, nil
}

func (s *ProductService) Get(ctx context.Context, id uint) (models.ProductDto, error) {
	product, err := s.find(ctx, id)
	if err != nil {
		return models.ProductDto{}, err
	}
	return product.ToDto(), nil
}

func (s *ProductService) find(ctx context.Context, id uint) (models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).Preload("Category").First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, utils.NotFound("product not found")
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("find product %d: %w", id, err)
	}
	return product, nil
}

// Exists reports whether a product row with id is present.
func (s *ProductService) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check product %d: %w", id, err)
	}
	return count > 0, nil
}

func (s *ProductService) validate(ctx context.Context, data models.ProductData) error {
	verr := utils.NewValidationError("invalid product")
	if !data.Price.Round(2).IsPositive() {
		verr.Add("price", "Price must be greater than zero.")
	}
	if data.DiscountPrice.Round(2).IsNegative() {
		verr.Add("discountPrice", "Discount price cannot be negative.")
	}
	if data.Stock < 0 {
		verr.Add("stock", "Stock must be a non-negative number.")
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", data.CategoryID).Count(&count).Error; err != nil {
		return fmt.Errorf("check category %d: %w", data.CategoryID, err)
	}
	if count == 0 {
		verr.Add("categoryId", "Category does not exist.")
	}
	return verr.OrNil()
}

func applyProductData(p *models.Product, data models.ProductData) {
	p.Name = strings.TrimSpace(data.Name)
	p.Description = data.Description
	p.Brand = strings.TrimSpace(data.Brand)
	p.Price = data.Price.Round(2)
	p.DiscountPrice = data.DiscountPrice.Round(2)
	p.Stock = data.Stock
	p.CategoryID = data.CategoryID
	p.ImageUrl = data.ImageUrl
	p.Colors = data.Colors
}

func (s *ProductService) Create(ctx context.Context, data models.ProductData) (models.ProductDto, error) {
	if err := s.validate(ctx, data); err != nil {
		return models.ProductDto{}, err
	}

	var product models.Product
	applyProductData(&product, data)
	if err := s.db.WithContext(ctx).Omit("Category").Create(&product).Error; err != nil {
		return models.ProductDto{}, fmt.Errorf("create product: %w", err)
	}

	created, err := s.find(ctx, product.ID)
	if err != nil {
		return models.ProductDto{}, err
	}
	return created.ToDto(), nil
}

func (s *ProductService) Update(ctx context.Context, id uint, data models.ProductData) error {
	product, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := s.validate(ctx, data); err != nil {
		return err
	}

	applyProductData(&product, data)
	if err := s.db.WithContext(ctx).Omit("Category", "CreatedAt").Save(&product).Error; err != nil {
		return fmt.Errorf("update product %d: %w", id, err)
	}
	return nil
}

func (s *ProductService) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Product{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete product %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.NotFound("product not found")
	}
	return nil
}
