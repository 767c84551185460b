package usecase

import (
	"context"
	"strings"

	"github.com/gosimple/slug"

	"github.com/jhoicas/sns-api/internal/application/dto"
	"github.com/jhoicas/sns-api/internal/application/ports"
	"github.com/jhoicas/sns-api/internal/domain"
	"github.com/jhoicas/sns-api/internal/domain/entity"
	"github.com/jhoicas/sns-api/internal/domain/repository"
)

// SubProductUseCase casos de uso para sub-productos. El producto referenciado debe existir al escribir.
type SubProductUseCase struct {
	repo        repository.SubProductRepository
	productRepo repository.ProductRepository
	datasheets  ports.DatasheetGenerator
}

// NewSubProductUseCase construye el caso de uso. datasheets puede ser nil (sin fichas PDF).
func NewSubProductUseCase(
	repo repository.SubProductRepository,
	productRepo repository.ProductRepository,
	datasheets ports.DatasheetGenerator,
) *SubProductUseCase {
	return &SubProductUseCase{repo: repo, productRepo: productRepo, datasheets: datasheets}
}

// Create crea un sub-producto aplicando valores por defecto.
func (uc *SubProductUseCase) Create(ctx context.Context, in dto.CreateSubProductRequest) (*dto.SubProductResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if err := uc.requireProduct(ctx, in.ProductID); err != nil {
		return nil, err
	}
	sp := &entity.SubProduct{
		Name:               in.Name,
		Description:        in.Description,
		ProductID:          in.ProductID,
		SKU:                in.SKU,
		Brand:              in.Brand,
		Model:              in.Model,
		Specifications:     in.Specifications,
		Features:           in.Features,
		Images:             in.Images,
		PriceRange:         in.PriceRange,
		Currency:           orDefault(in.Currency, entity.DefaultCurrency),
		AvailabilityStatus: orDefault(in.AvailabilityStatus, entity.DefaultAvailabilityStatus),
		WarrantyInfo:       in.WarrantyInfo,
		SupportInfo:        in.SupportInfo,
		DocumentationURL:   in.DocumentationURL,
		DatasheetURL:       in.DatasheetURL,
		Tags:               in.Tags,
		MetaTitle:          in.MetaTitle,
		MetaDescription:    in.MetaDescription,
		IsActive:           true,
		CreatedAt:          clock(),
	}
	if in.IsFeatured != nil {
		sp.IsFeatured = *in.IsFeatured
	}
	if in.SortOrder != nil {
		sp.SortOrder = *in.SortOrder
	}
	if err := uc.repo.Create(ctx, sp); err != nil {
		return nil, err
	}
	return toSubProductResponse(sp), nil
}

// GetByID obtiene un sub-producto; ErrNotFound si no existe.
func (uc *SubProductUseCase) GetByID(ctx context.Context, id int64) (*dto.SubProductResponse, error) {
	sp, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSubProductResponse(sp), nil
}

// List lista con filtros opcionales de igualdad.
func (uc *SubProductUseCase) List(ctx context.Context, in dto.SubProductListRequest) ([]dto.SubProductResponse, error) {
	offset, limit := page(in.PageRequest)
	filter := repository.SubProductFilter{ProductID: in.ProductID, IsFeatured: in.IsFeatured, IsActive: in.IsActive}
	list, err := uc.repo.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, err
	}
	return toSubProductResponses(list), nil
}

// ListByProduct devuelve los sub-productos activos de un producto ordenados por sort_order y nombre.
func (uc *SubProductUseCase) ListByProduct(ctx context.Context, productID int64) ([]dto.SubProductResponse, error) {
	list, err := uc.repo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return toSubProductResponses(list), nil
}

// ListFeatured devuelve los destacados activos; limit <= 0 usa el valor por defecto.
func (uc *SubProductUseCase) ListFeatured(ctx context.Context, limit int) ([]dto.SubProductResponse, error) {
	if limit <= 0 {
		limit = dto.DefaultFeaturedLimit
	}
	if limit > dto.MaxLimit {
		limit = dto.MaxLimit
	}
	list, err := uc.repo.ListFeatured(ctx, limit)
	if err != nil {
		return nil, err
	}
	return toSubProductResponses(list), nil
}

// Search busca por subcadena (sin mayúsculas) en nombre, marca, modelo y tags. q vacío es inválido.
func (uc *SubProductUseCase) Search(ctx context.Context, q string, p dto.PageRequest) ([]dto.SubProductResponse, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, &dto.ValidationError{Fields: []string{"q"}, Msg: "q is required"}
	}
	offset, limit := page(p)
	list, err := uc.repo.Search(ctx, q, offset, limit)
	if err != nil {
		return nil, err
	}
	return toSubProductResponses(list), nil
}

// Update aplica solo los campos presentes; si cambia product_id, el nuevo producto debe existir.
func (uc *SubProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateSubProductRequest) (*dto.SubProductResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	sp, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.ProductID != nil && *in.ProductID != sp.ProductID {
		if err := uc.requireProduct(ctx, *in.ProductID); err != nil {
			return nil, err
		}
	}
	applySubProductUpdate(sp, in)
	sp.UpdatedAt = nowPtr()
	if err := uc.repo.Update(ctx, sp); err != nil {
		return nil, err
	}
	return toSubProductResponse(sp), nil
}

// Delete elimina el sub-producto y devuelve la fila borrada.
func (uc *SubProductUseCase) Delete(ctx context.Context, id int64) (*dto.SubProductResponse, error) {
	sp, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return toSubProductResponse(sp), nil
}

// Datasheet genera la ficha técnica PDF. Con activeOnly un sub-producto inactivo se trata como inexistente.
func (uc *SubProductUseCase) Datasheet(ctx context.Context, id int64, activeOnly bool) ([]byte, string, error) {
	if uc.datasheets == nil {
		return nil, "", domain.ErrNotFound
	}
	sp, err := uc.find(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if activeOnly && !sp.IsActive {
		return nil, "", domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByID(ctx, sp.ProductID)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.datasheets.GenerateDatasheet(ctx, sp, product)
	if err != nil {
		return nil, "", err
	}
	return pdf, datasheetFilename(sp), nil
}

func (uc *SubProductUseCase) find(ctx context.Context, id int64) (*entity.SubProduct, error) {
	sp, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, domain.ErrNotFound
	}
	return sp, nil
}

func (uc *SubProductUseCase) requireProduct(ctx context.Context, productID int64) error {
	p, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrProductNotFound
	}
	return nil
}

// datasheetFilename nombre de descarga a partir del SKU (o del nombre si no hay SKU).
func datasheetFilename(sp *entity.SubProduct) string {
	base := sp.Name
	if sp.SKU != nil && *sp.SKU != "" {
		base = *sp.SKU
	}
	s := slug.Make(base)
	if s == "" {
		return "datasheet.pdf"
	}
	return s + "-datasheet.pdf"
}

func applySubProductUpdate(sp *entity.SubProduct, in dto.UpdateSubProductRequest) {
	setString(&sp.Name, in.Name)
	setOptString(&sp.Description, in.Description)
	if in.ProductID != nil {
		sp.ProductID = *in.ProductID
	}
	setOptString(&sp.SKU, in.SKU)
	setOptString(&sp.Brand, in.Brand)
	setOptString(&sp.Model, in.Model)
	setOptString(&sp.Specifications, in.Specifications)
	setOptString(&sp.Features, in.Features)
	setOptString(&sp.Images, in.Images)
	setOptString(&sp.PriceRange, in.PriceRange)
	setOptString(&sp.Currency, in.Currency)
	setOptString(&sp.AvailabilityStatus, in.AvailabilityStatus)
	setOptString(&sp.WarrantyInfo, in.WarrantyInfo)
	setOptString(&sp.SupportInfo, in.SupportInfo)
	setOptString(&sp.DocumentationURL, in.DocumentationURL)
	setOptString(&sp.DatasheetURL, in.DatasheetURL)
	setOptString(&sp.Tags, in.Tags)
	setOptString(&sp.MetaTitle, in.MetaTitle)
	setOptString(&sp.MetaDescription, in.MetaDescription)
	setBool(&sp.IsActive, in.IsActive)
	setBool(&sp.IsFeatured, in.IsFeatured)
	if in.SortOrder != nil {
		sp.SortOrder = *in.SortOrder
	}
}

func toSubProductResponses(list []*entity.SubProduct) []dto.SubProductResponse {
	out := make([]dto.SubProductResponse, 0, len(list))
	for _, sp := range list {
		out = append(out, *toSubProductResponse(sp))
	}
	return out
}

func toSubProductResponse(sp *entity.SubProduct) *dto.SubProductResponse {
	return &dto.SubProductResponse{
		ID:                 sp.ID,
		Name:               sp.Name,
		Description:        sp.Description,
		ProductID:          sp.ProductID,
		SKU:                sp.SKU,
		Brand:              sp.Brand,
		Model:              sp.Model,
		Specifications:     sp.Specifications,
		Features:           sp.Features,
		Images:             sp.Images,
		PriceRange:         sp.PriceRange,
		Currency:           sp.Currency,
		AvailabilityStatus: sp.AvailabilityStatus,
		WarrantyInfo:       sp.WarrantyInfo,
		SupportInfo:        sp.SupportInfo,
		DocumentationURL:   sp.DocumentationURL,
		DatasheetURL:       sp.DatasheetURL,
		Tags:               sp.Tags,
		MetaTitle:          sp.MetaTitle,
		MetaDescription:    sp.MetaDescription,
		IsActive:           sp.IsActive,
		IsFeatured:         sp.IsFeatured,
		SortOrder:          sp.SortOrder,
		CreatedAt:          sp.CreatedAt,
		UpdatedAt:          sp.UpdatedAt,
	}
}
