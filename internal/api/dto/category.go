package dto

import (
	"context"

	"github.com/netserve/catalog/internal/domain/category"
	"github.com/netserve/catalog/internal/types"
	"github.com/netserve/catalog/internal/validator"
)

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

func (r *CreateCategoryRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateCategoryRequest) ToCategory(ctx context.Context) *category.Category {
	return &category.Category{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CATEGORY),
		Name:      r.Name,
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
}

type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

func (r *UpdateCategoryRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type CategoryResponse struct {
	*category.Category
}

type ListCategoriesResponse struct {
	Items []*CategoryResponse `json:"items"`
	Total int                 `json:"total"`
}
