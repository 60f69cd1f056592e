package services

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"glory-event-api/internal/apperr"
	"glory-event-api/internal/domain"
	"glory-event-api/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type CreateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Image       string
	Category    string
	InStock     *bool
	Featured    *bool
}

// UpdateProductInput carries the allow-listed updatable fields; nil means
// keep the stored value. There is deliberately no pass-through of the raw
// request body.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Image       *string
	Category    *string
	InStock     *bool
	Featured    *bool
}

type ProductService struct {
	products repository.ProductRepository
	log      *logrus.Logger
}

func NewProductService(products repository.ProductRepository, log *logrus.Logger) *ProductService {
	return &ProductService{products: products, log: log}
}

// slugify lowercases and reduces a name to hyphen-separated ASCII words.
func slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	out, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to list products", err)
	}
	return out, nil
}

func (s *ProductService) FeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	out, err := s.products.FindFeatured(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to list featured products", err)
	}
	return out, nil
}

func (s *ProductService) ProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	out, err := s.products.FindByCategory(ctx, category)
	if err != nil {
		return nil, apperr.Internal("failed to list products by category", err)
	}
	return out, nil
}

func (s *ProductService) ProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	p, err := s.products.FindBySlug(ctx, slug)
	if err != nil {
		return nil, apperr.Internal("failed to load product", err)
	}
	if p == nil {
		return nil, apperr.NotFound("product not found")
	}
	return p, nil
}

func validateCreateProduct(in CreateProductInput) apperr.FieldErrors {
	fields := apperr.FieldErrors{}
	if in.Name == "" {
		fields.Add("name", "name is required")
	} else if len(in.Name) > 255 {
		fields.Add("name", "name must not exceed 255 characters")
	}
	if in.Description == "" {
		fields.Add("description", "description is required")
	}
	if in.Price.IsNegative() {
		fields.Add("price", "price must not be negative")
	}
	if in.Category == "" {
		fields.Add("category", "category is required")
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func (s *ProductService) CreateProduct(ctx context.Context, in CreateProductInput) (*domain.Product, error) {
	if fields := validateCreateProduct(in); fields != nil {
		return nil, apperr.Validation("validation failed", fields)
	}

	slug := slugify(in.Name)
	taken, err := s.products.CountBySlug(ctx, slug)
	if err != nil {
		return nil, apperr.Internal("failed to check slug", err)
	}
	if taken > 0 {
		slug = fmt.Sprintf("%s-%d", slug, taken+1)
	}

	p := &domain.Product{
		Name:        in.Name,
		Slug:        slug,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		Category:    in.Category,
		InStock:     true,
		Featured:    false,
	}
	if in.InStock != nil {
		p.InStock = *in.InStock
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}

	if err := s.products.Save(ctx, p); err != nil {
		return nil, apperr.Internal("failed to create product", err)
	}
	s.log.WithFields(logrus.Fields{"product_id": p.ID, "slug": p.Slug}).Info("product created")
	return p, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uint64, in UpdateProductInput) (*domain.Product, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to load product", err)
	}
	if p == nil {
		return nil, apperr.NotFound("product not found")
	}

	fields := apperr.FieldErrors{}
	if in.Name != nil {
		if *in.Name == "" || len(*in.Name) > 255 {
			fields.Add("name", "name must be between 1 and 255 characters")
		} else {
			p.Name = *in.Name
		}
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			fields.Add("price", "price must not be negative")
		} else {
			p.Price = *in.Price
		}
	}
	if in.Image != nil {
		p.Image = *in.Image
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.InStock != nil {
		p.InStock = *in.InStock
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	if len(fields) > 0 {
		return nil, apperr.Validation("validation failed", fields)
	}

	if err := s.products.Update(ctx, p); err != nil {
		return nil, apperr.Internal("failed to update product", err)
	}
	return p, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uint64) error {
	if err := s.products.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return apperr.NotFound("product not found")
		}
		return apperr.Internal("failed to delete product", err)
	}
	return nil
}
