package service

import (
	"context"

	"github.com/netserve/catalog/internal/api/dto"
	ierr "github.com/netserve/catalog/internal/errors"
	"github.com/netserve/catalog/internal/types"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	GetCategory(ctx context.Context, id string) (*dto.CategoryResponse, error)
	ListCategories(ctx context.Context) (*dto.ListCategoriesResponse, error)
	UpdateCategory(ctx context.Context, id string, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id string) error
}

type categoryService struct {
	ServiceParams
}

func NewCategoryService(params ServiceParams) CategoryService {
	return &categoryService{ServiceParams: params}
}

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := requireCapability(ctx, types.CapabilityManageCategories); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cat := req.ToCategory(ctx)
	if err := s.CategoryRepo.Create(ctx, cat); err != nil {
		return nil, err
	}

	return &dto.CategoryResponse{Category: cat}, nil
}

func (s *categoryService) GetCategory(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	if id == "" {
		return nil, ierr.NewError("category ID is required").
			WithHint("Category ID is required").
			Mark(ierr.ErrValidation)
	}

	cat, err := s.CategoryRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{Category: cat}, nil
}

func (s *categoryService) ListCategories(ctx context.Context) (*dto.ListCategoriesResponse, error) {
	categories, err := s.CategoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.CategoryResponse, len(categories))
	for i, cat := range categories {
		items[i] = &dto.CategoryResponse{Category: cat}
	}
	return &dto.ListCategoriesResponse{Items: items, Total: len(items)}, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id string, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := requireCapability(ctx, types.CapabilityManageCategories); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cat, err := s.CategoryRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	cat.Name = req.Name
	cat.UpdatedBy = types.GetUserID(ctx)
	if err := s.CategoryRepo.Update(ctx, cat); err != nil {
		return nil, err
	}

	return &dto.CategoryResponse{Category: cat}, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id string) error {
	if err := requireCapability(ctx, types.CapabilityManageCategories); err != nil {
		return err
	}

	// Categories referenced by products cannot be removed.
	count, err := s.ProductRepo.Count(ctx, &types.ProductFilter{CategoryID: id})
	if err != nil {
		return err
	}
	if count > 0 {
		return ierr.NewError("category has products").
			WithHint("Reassign or delete the category's products first").
			WithReportableDetails(map[string]any{
				"category_id":   id,
				"product_count": count,
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	return s.CategoryRepo.Delete(ctx, id)
}
