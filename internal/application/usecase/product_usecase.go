package usecase

import (
	"context"

	"github.com/jhoicas/sns-api/internal/application/dto"
	"github.com/jhoicas/sns-api/internal/application/ports"
	"github.com/jhoicas/sns-api/internal/domain"
	"github.com/jhoicas/sns-api/internal/domain/entity"
	"github.com/jhoicas/sns-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. La categoría no se verifica al escribir;
// al leer se resuelve con una consulta por lote.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	txRunner     ports.CatalogTxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	txRunner ports.CatalogTxRunner,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, txRunner: txRunner}
}

// Create crea un producto activo.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	p := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		ImageURL:    in.ImageURL,
		IsActive:    true,
		CreatedAt:   clock(),
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return uc.one(ctx, p)
}

// GetByID obtiene un producto con su categoría; ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.one(ctx, p)
}

// List lista productos por orden de ID.
func (uc *ProductUseCase) List(ctx context.Context, p dto.PageRequest) ([]dto.ProductResponse, error) {
	offset, limit := page(p)
	list, err := uc.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return uc.many(ctx, list)
}

// Update aplica solo los campos presentes.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	p, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	applyProductUpdate(p, in)
	p.UpdatedAt = nowPtr()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return uc.one(ctx, p)
}

// Delete elimina el producto y sus sub-productos en la misma transacción.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out, err := uc.one(ctx, p)
	if err != nil {
		return nil, err
	}
	err = uc.txRunner.RunCatalog(ctx, func(productRepo repository.ProductRepository, subRepo repository.SubProductRepository) error {
		if _, err := subRepo.DeleteByProduct(ctx, id); err != nil {
			return err
		}
		return productRepo.Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (uc *ProductUseCase) find(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (uc *ProductUseCase) one(ctx context.Context, p *entity.Product) (*dto.ProductResponse, error) {
	list, err := uc.many(ctx, []*entity.Product{p})
	if err != nil {
		return nil, err
	}
	return &list[0], nil
}

func (uc *ProductUseCase) many(ctx context.Context, list []*entity.Product) ([]dto.ProductResponse, error) {
	ids := make([]int64, 0, len(list))
	for _, p := range list {
		if p.CategoryID != nil {
			ids = append(ids, *p.CategoryID)
		}
	}
	cats, err := resolveCategories(ctx, uc.categoryRepo, ids)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		r := toProductResponse(p)
		if p.CategoryID != nil {
			r.Category = toCategoryResponse(cats[*p.CategoryID])
		}
		out = append(out, *r)
	}
	return out, nil
}

// resolveCategories carga en un solo viaje las categorías referenciadas.
func resolveCategories(ctx context.Context, repo repository.CategoryRepository, ids []int64) (map[int64]*entity.Category, error) {
	if len(ids) == 0 {
		return map[int64]*entity.Category{}, nil
	}
	return repo.GetByIDs(ctx, ids)
}

func applyProductUpdate(p *entity.Product, in dto.UpdateProductRequest) {
	setString(&p.Name, in.Name)
	setOptString(&p.Description, in.Description)
	setOptInt64(&p.CategoryID, in.CategoryID)
	setOptString(&p.ImageURL, in.ImageURL)
	setBool(&p.IsActive, in.IsActive)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CategoryID:  p.CategoryID,
		ImageURL:    p.ImageURL,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
