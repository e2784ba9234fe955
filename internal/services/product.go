package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/atelierhaus/atelier-backend/internal/domain"
	"github.com/atelierhaus/atelier-backend/internal/platform/apierr"
	"github.com/atelierhaus/atelier-backend/internal/platform/dbctx"
	"github.com/atelierhaus/atelier-backend/internal/platform/logger"
	"github.com/atelierhaus/atelier-backend/internal/repos"
)

type ProductCreateInput struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

type ProductUpdateInput struct {
	Name        *string   `json:"name"`
	Category    *string   `json:"category"`
	Price       *float64  `json:"price"`
	Description *string   `json:"description"`
	Images      *[]string `json:"images"`
}

type ProductPage struct {
	Items      []*domain.Product `json:"items"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	Total      int64             `json:"total"`
	TotalPages int               `json:"total_pages"`
}

type ProductService interface {
	Create(ctx context.Context, input *ProductCreateInput) (*domain.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	Update(ctx context.Context, id uuid.UUID, input *ProductUpdateInput) (*domain.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, category string, page, pageSize int) (*ProductPage, error)
}

type productService struct {
	db          *gorm.DB
	log         *logger.Logger
	productRepo repos.ProductRepo
}

func NewProductService(db *gorm.DB, log *logger.Logger, productRepo repos.ProductRepo) ProductService {
	return &productService{db: db, log: log.With("service", "ProductService"), productRepo: productRepo}
}

func encodeImages(images []string) (datatypes.JSON, error) {
	if len(images) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(images)
	if err != nil {
		return nil, fmt.Errorf("encode product images: %w", err)
	}
	return datatypes.JSON(raw), nil
}

func (s *productService) Create(ctx context.Context, input *ProductCreateInput) (*domain.Product, error) {
	fe := fieldErrors{}
	if input == nil {
		fe.add("body", "is required")
		return nil, fe.err()
	}
	if strings.TrimSpace(input.Name) == "" {
		fe.add("name", "is required")
	}
	if input.Price < 0 {
		fe.add("price", "must be non-negative")
	}
	if vErr := fe.err(); vErr != nil {
		return nil, vErr
	}

	images, err := encodeImages(input.Images)
	if err != nil {
		return nil, err
	}
	created, err := s.productRepo.Create(dbctx.Context{Ctx: ctx}, &domain.Product{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		Category:    strings.TrimSpace(input.Category),
		Price:       input.Price,
		Description: input.Description,
		Images:      images,
	})
	if err != nil {
		s.log.Warn("Product create failed", "error", err)
		return nil, fmt.Errorf("create product: %w", err)
	}
	return created, nil
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(dbctx.Context{Ctx: ctx}, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierr.NotFound("product")
	}
	if err != nil {
		return nil, fmt.Errorf("load product: %w", err)
	}
	return product, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, input *ProductUpdateInput) (*domain.Product, error) {
	fe := fieldErrors{}
	if input == nil {
		fe.add("body", "is required")
		return nil, fe.err()
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		fe.add("name", "cannot be empty")
	}
	if input.Price != nil && *input.Price < 0 {
		fe.add("price", "must be non-negative")
	}
	if vErr := fe.err(); vErr != nil {
		return nil, vErr
	}

	var updated *domain.Product
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txc := dbctx.Context{Ctx: ctx, Tx: tx}
		product, err := s.productRepo.GetByID(txc, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierr.NotFound("product")
		}
		if err != nil {
			return fmt.Errorf("load product: %w", err)
		}
		if input.Name != nil {
			product.Name = strings.TrimSpace(*input.Name)
		}
		if input.Category != nil {
			product.Category = strings.TrimSpace(*input.Category)
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Images != nil {
			images, err := encodeImages(*input.Images)
			if err != nil {
				return err
			}
			product.Images = images
		}
		if err := s.productRepo.Update(txc, product); err != nil {
			return fmt.Errorf("update product: %w", err)
		}
		updated = product
		return nil
	})
	if err != nil {
		s.log.Warn("Product update failed", "id", id, "error", err)
		return nil, err
	}
	return updated, nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txc := dbctx.Context{Ctx: ctx, Tx: tx}
		if _, err := s.productRepo.GetByID(txc, id); errors.Is(err, gorm.ErrRecordNotFound) {
			return apierr.NotFound("product")
		} else if err != nil {
			return fmt.Errorf("load product: %w", err)
		}
		return s.productRepo.SoftDeleteByID(txc, id)
	})
}

func (s *productService) List(ctx context.Context, category string, page, pageSize int) (*ProductPage, error) {
	fe := fieldErrors{}
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if page < 1 {
		fe.add("page", "must be 1 or greater")
	}
	if pageSize < 1 || pageSize > maxPageSize {
		fe.add("page_size", fmt.Sprintf("must be between 1 and %d", maxPageSize))
	}
	if vErr := fe.err(); vErr != nil {
		return nil, vErr
	}

	products, total, err := s.productRepo.List(dbctx.Context{Ctx: ctx}, category, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return &ProductPage{
		Items:      products,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}
