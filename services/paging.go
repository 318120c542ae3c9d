package services

import (
	"math"

	"gorm.io/gorm"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
	// maxPage keeps the computed offset inside int32 on every platform.
	maxPage = math.MaxInt32 / maxPageSize
)

// pageBounds normalises page and pageSize into an offset and limit.
func pageBounds(page, pageSize int) (offset, limit int) {
	switch {
	case page < 1:
		page = 1
	case page > maxPage:
		page = maxPage
	}
	switch {
	case pageSize < 1:
		pageSize = defaultPageSize
	case pageSize > maxPageSize:
		pageSize = maxPageSize
	}
	return (page - 1) * pageSize, pageSize
}

func paginate(page, pageSize int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		offset, limit := pageBounds(page, pageSize)
		return db.Offset(offset).Limit(limit)
	}
}

// nameContains filters column by a substring match when name is non-empty.
func nameContains(column, name string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if name == "" {
			return db
		}
		return db.Where(column+" LIKE ?", "%"+name+"%")
	}
}
