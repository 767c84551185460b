package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/sns-api/internal/domain/entity"
	"github.com/jhoicas/sns-api/internal/domain/repository"
)

var _ repository.SubProductRepository = (*SubProductRepo)(nil)

const subProductColumns = `id, name, description, product_id, sku, brand, model, specifications, features, images,
	price_range, currency, availability_status, warranty_info, support_info, documentation_url, datasheet_url,
	tags, meta_title, meta_description, is_active, is_featured, sort_order, created_at, updated_at`

// SubProductRepo implementación del puerto SubProductRepository sobre PostgreSQL (usable con pool o tx).
type SubProductRepo struct {
	q Querier
}

// NewSubProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSubProductRepository(q Querier) *SubProductRepo {
	return &SubProductRepo{q: q}
}

// Create inserta el sub-producto. Un product_id inexistente se traduce a ErrProductNotFound (FK).
func (r *SubProductRepo) Create(ctx context.Context, sp *entity.SubProduct) error {
	query := `
		INSERT INTO sub_products (name, description, product_id, sku, brand, model, specifications, features, images,
			price_range, currency, availability_status, warranty_info, support_info, documentation_url, datasheet_url,
			tags, meta_title, meta_description, is_active, is_featured, sort_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		sp.Name, sp.Description, sp.ProductID, sp.SKU, sp.Brand, sp.Model, sp.Specifications, sp.Features, sp.Images,
		sp.PriceRange, sp.Currency, sp.AvailabilityStatus, sp.WarrantyInfo, sp.SupportInfo, sp.DocumentationURL, sp.DatasheetURL,
		sp.Tags, sp.MetaTitle, sp.MetaDescription, sp.IsActive, sp.IsFeatured, sp.SortOrder, sp.CreatedAt,
	).Scan(&sp.ID)
	if err != nil {
		return writeErr("insert sub_product", err)
	}
	return nil
}

// GetByID obtiene un sub-producto por ID.
func (r *SubProductRepo) GetByID(ctx context.Context, id int64) (*entity.SubProduct, error) {
	sp, err := scanSubProduct(r.q.QueryRow(ctx, `SELECT `+subProductColumns+` FROM sub_products WHERE id = $1`, id))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sub_product: %w", err)
	}
	return sp, nil
}

// List aplica los filtros presentes (igualdad) y pagina por ID ascendente.
func (r *SubProductRepo) List(ctx context.Context, f repository.SubProductFilter, offset, limit int) ([]*entity.SubProduct, error) {
	query, args := subProductListQuery(f, offset, limit)
	return r.query(ctx, "list sub_products", query, args...)
}

// subProductListQuery arma el SELECT con placeholders numerados en el orden de los filtros.
func subProductListQuery(f repository.SubProductFilter, offset, limit int) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.ProductID != nil {
		add("product_id = $%d", *f.ProductID)
	}
	if f.IsFeatured != nil {
		add("is_featured = $%d", *f.IsFeatured)
	}
	if f.IsActive != nil {
		add("is_active = $%d", *f.IsActive)
	}
	query := `SELECT ` + subProductColumns + ` FROM sub_products`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	args = append(args, offset, limit)
	query += fmt.Sprintf(` ORDER BY id OFFSET $%d LIMIT $%d`, len(args)-1, len(args))
	return query, args
}

// ListByProduct activos de un producto ordenados por sort_order, name.
func (r *SubProductRepo) ListByProduct(ctx context.Context, productID int64) ([]*entity.SubProduct, error) {
	query := `SELECT ` + subProductColumns + ` FROM sub_products
		WHERE product_id = $1 AND is_active
		ORDER BY sort_order, name`
	return r.query(ctx, "list sub_products by product", query, productID)
}

// ListFeatured destacados activos, mismo orden que ListByProduct.
func (r *SubProductRepo) ListFeatured(ctx context.Context, limit int) ([]*entity.SubProduct, error) {
	query := `SELECT ` + subProductColumns + ` FROM sub_products
		WHERE is_featured AND is_active
		ORDER BY sort_order, name
		LIMIT $1`
	return r.query(ctx, "list featured sub_products", query, limit)
}

// Search ILIKE sobre name, brand, model y tags. Los comodines del usuario se escapan.
func (r *SubProductRepo) Search(ctx context.Context, q string, offset, limit int) ([]*entity.SubProduct, error) {
	pattern := "%" + escapeLike(q) + "%"
	query := `SELECT ` + subProductColumns + ` FROM sub_products
		WHERE is_active AND (name ILIKE $1 OR brand ILIKE $1 OR model ILIKE $1 OR tags ILIKE $1)
		ORDER BY id
		OFFSET $2 LIMIT $3`
	return r.query(ctx, "search sub_products", query, pattern, offset, limit)
}

// Update persiste todos los campos editables.
func (r *SubProductRepo) Update(ctx context.Context, sp *entity.SubProduct) error {
	query := `
		UPDATE sub_products SET
			name = $2, description = $3, product_id = $4, sku = $5, brand = $6, model = $7, specifications = $8,
			features = $9, images = $10, price_range = $11, currency = $12, availability_status = $13,
			warranty_info = $14, support_info = $15, documentation_url = $16, datasheet_url = $17, tags = $18,
			meta_title = $19, meta_description = $20, is_active = $21, is_featured = $22, sort_order = $23, updated_at = $24
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		sp.ID, sp.Name, sp.Description, sp.ProductID, sp.SKU, sp.Brand, sp.Model, sp.Specifications,
		sp.Features, sp.Images, sp.PriceRange, sp.Currency, sp.AvailabilityStatus,
		sp.WarrantyInfo, sp.SupportInfo, sp.DocumentationURL, sp.DatasheetURL, sp.Tags,
		sp.MetaTitle, sp.MetaDescription, sp.IsActive, sp.IsFeatured, sp.SortOrder, sp.UpdatedAt,
	)
	if err != nil {
		return writeErr("update sub_product", err)
	}
	return expectOne(tag)
}

// Delete elimina un sub-producto por ID.
func (r *SubProductRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM sub_products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sub_product: %w", err)
	}
	return expectOne(tag)
}

// DeleteByProduct elimina todos los sub-productos de un producto y devuelve cuántos borró.
func (r *SubProductRepo) DeleteByProduct(ctx context.Context, productID int64) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM sub_products WHERE product_id = $1`, productID)
	if err != nil {
		return 0, fmt.Errorf("delete sub_products by product: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *SubProductRepo) query(ctx context.Context, op, query string, args ...any) ([]*entity.SubProduct, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	list, err := scanAll(rows, scanSubProduct)
	if err != nil {
		return nil, fmt.Errorf("%s: scan: %w", op, err)
	}
	return list, nil
}

func scanSubProduct(row pgx.Row) (*entity.SubProduct, error) {
	var sp entity.SubProduct
	err := row.Scan(
		&sp.ID, &sp.Name, &sp.Description, &sp.ProductID, &sp.SKU, &sp.Brand, &sp.Model, &sp.Specifications,
		&sp.Features, &sp.Images, &sp.PriceRange, &sp.Currency, &sp.AvailabilityStatus, &sp.WarrantyInfo,
		&sp.SupportInfo, &sp.DocumentationURL, &sp.DatasheetURL, &sp.Tags, &sp.MetaTitle, &sp.MetaDescription,
		&sp.IsActive, &sp.IsFeatured, &sp.SortOrder, &sp.CreatedAt, &sp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &sp, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
