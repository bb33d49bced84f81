package usecase

import (
	"context"
	"log/slog"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zoombxu/surplus/internal/adapter/imagehost"
	domainErrors "github.com/zoombxu/surplus/internal/domain/errors"
	"github.com/zoombxu/surplus/internal/domain/model"
	"github.com/zoombxu/surplus/internal/domain/repository"
)

// CatalogUseCase manages the product catalog and image hosting.
type CatalogUseCase struct {
	products repository.ProductRepository
	images   imagehost.Client
	logger   *slog.Logger
	now      func() time.Time
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository, images imagehost.Client, logger *slog.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		products: products,
		images:   images,
		logger:   logger,
		now:      time.Now,
	}
}

// List returns the catalog, newest first.
func (u *CatalogUseCase) List(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx)
}

// Get returns a single product.
func (u *CatalogUseCase) Get(ctx context.Context, id string) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// Create validates and stores a new product.
func (u *CatalogUseCase) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	product.ID = uuid.NewString()
	product.CreatedAt = u.now().UTC()
	product.UpdatedAt = product.CreatedAt
	if err := u.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update replaces a product record.
func (u *CatalogUseCase) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	existing, err := u.products.GetByID(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = u.now().UTC()
	return u.products.Update(ctx, product)
}

// Delete removes a product from the catalog and releases its hosted
// images. Image cleanup is best effort: the host keeps an orphan at
// worst, so failures are logged and swallowed.
func (u *CatalogUseCase) Delete(ctx context.Context, id string) error {
	product, err := u.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.products.Delete(ctx, id); err != nil {
		return err
	}
	for _, ref := range product.Images {
		publicID := publicIDFromRef(ref)
		if publicID == "" {
			continue
		}
		if err := u.images.Delete(ctx, publicID); err != nil {
			u.logger.Warn("hosted image not removed",
				slog.String("product", id), slog.String("image", publicID), slog.String("error", err.Error()))
		}
	}
	return nil
}

// publicIDFromRef recovers the host-side public id from a stored image
// URL: the path without its leading slash and extension.
func publicIDFromRef(ref string) string {
	parsed, err := url.Parse(ref)
	if err != nil || parsed.Path == "" {
		return ""
	}
	p := strings.TrimPrefix(parsed.Path, "/")
	return strings.TrimSuffix(p, path.Ext(p))
}

// UploadImage pushes a base64 data URI to the image host and returns the
// hosted descriptor to embed in a product.
func (u *CatalogUseCase) UploadImage(ctx context.Context, dataURI, folder string) (*imagehost.UploadResult, error) {
	if !strings.HasPrefix(dataURI, "data:") {
		return nil, imagehost.ErrRejected
	}
	return u.images.Upload(ctx, dataURI, folder)
}

func validateProduct(product *model.Product) error {
	if strings.TrimSpace(product.Name) == "" || strings.TrimSpace(product.Price) == "" {
		return domainErrors.ErrInvalidProduct
	}
	return nil
}
