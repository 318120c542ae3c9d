package models

type Category struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"size:300;not null"`
}

type CategoryData struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"required,max=300"`
}

type CategoryQuery struct {
	Name     string `form:"name"`
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
}

type CategoryDto struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (c Category) ToDto() CategoryDto {
	return CategoryDto{ID: c.ID, Name: c.Name, Description: c.Description}
}
