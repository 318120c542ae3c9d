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

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) List(ctx context.Context, q models.CategoryQuery) ([]models.CategoryDto, error) {
	var categories []models.Category
	err := s.db.WithContext(ctx).
		Scopes(nameContains("name", strings.TrimSpace(q.Name)), paginate(q.Page, q.PageSize)).
		Order("id").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	out := make([]models.CategoryDto, 0, len(categories))
	for _, c := range categories {
		out = append(out, c.ToDto())
	}
	return out, nil
}

func (s *CategoryService) Get(ctx context.Context, id uint) (models.CategoryDto, error) {
	category, err := s.find(ctx, id)
	if err != nil {
		return models.CategoryDto{}, err
	}
	return category.ToDto(), nil
}

func (s *CategoryService) find(ctx context.Context, id uint) (models.Category, error) {
	var category models.Category
	err := s.db.WithContext(ctx).First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Category{}, utils.NotFound("category not found")
	}
	if err != nil {
		return models.Category{}, fmt.Errorf("find category %d: %w", id, err)
	}
	return category, nil
}

func (s *CategoryService) Create(ctx context.Context, data models.CategoryData) (models.CategoryDto, error) {
	category := models.Category{
		Name:        strings.TrimSpace(data.Name),
		Description: strings.TrimSpace(data.Description),
	}
	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		return models.CategoryDto{}, fmt.Errorf("create category: %w", err)
	}
	return category.ToDto(), nil
}

func (s *CategoryService) Update(ctx context.Context, id uint, data models.CategoryData) error {
	result := s.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Updates(map[string]any{
		"name":        strings.TrimSpace(data.Name),
		"description": strings.TrimSpace(data.Description),
	})
	if result.Error != nil {
		return fmt.Errorf("update category %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		// MySQL reports zero rows when nothing changed, so confirm existence.
		_, err := s.find(ctx, id)
		return err
	}
	return nil
}

func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Category{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete category %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.NotFound("category not found")
	}
	return nil
}
