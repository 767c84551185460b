package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/jhoicas/sns-api/internal/domain"
	"github.com/jhoicas/sns-api/internal/domain/entity"
	"github.com/jhoicas/sns-api/internal/domain/repository"
)

var (
	_ repository.AdminRepository       = (*AdminRepo)(nil)
	_ repository.CategoryRepository    = (*CategoryRepo)(nil)
	_ repository.ProductRepository     = (*ProductRepo)(nil)
	_ repository.SubProductRepository  = (*SubProductRepo)(nil)
	_ repository.ServiceRepository     = (*ServiceRepo)(nil)
	_ repository.SolutionRepository    = (*SolutionRepo)(nil)
	_ repository.CustomerRepository    = (*CustomerRepo)(nil)
	_ repository.CompanyInfoRepository = (*CompanyInfoRepo)(nil)
)

// ── Admin ────────────────────────────────────────────────────────────────────

type AdminRepo struct{ s *Store }

func (r *AdminRepo) Create(_ context.Context, a *entity.Admin) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.conflict(a) {
		return domain.ErrDuplicate
	}
	a.ID = r.s.admins.identity()
	r.s.admins.rows[a.ID] = *a
	return nil
}

func (r *AdminRepo) GetByID(_ context.Context, id int64) (*entity.Admin, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, _ := r.s.admins.get(id)
	return a, nil
}

func (r *AdminRepo) GetByUsername(_ context.Context, username string) (*entity.Admin, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, a := range r.s.admins.rows {
		if a.Username == username {
			return &a, nil
		}
	}
	return nil, nil
}

func (r *AdminRepo) Update(_ context.Context, a *entity.Admin) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.admins.rows[a.ID]; !ok {
		return domain.ErrNotFound
	}
	if r.conflict(a) {
		return domain.ErrDuplicate
	}
	r.s.admins.rows[a.ID] = *a
	return nil
}

func (r *AdminRepo) Delete(_ context.Context, id int64) error {
	return deleteRow(r.s, r.s.admins, id)
}

func (r *AdminRepo) conflict(a *entity.Admin) bool {
	for id, row := range r.s.admins.rows {
		if id != a.ID && (row.Username == a.Username || row.Email == a.Email) {
			return true
		}
	}
	return false
}

// ── Category ─────────────────────────────────────────────────────────────────

type CategoryRepo struct{ s *Store }

func (r *CategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.conflict(c) {
		return domain.ErrDuplicate
	}
	c.ID = r.s.categories.identity()
	r.s.categories.rows[c.ID] = *c
	return nil
}

func (r *CategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, _ := r.s.categories.get(id)
	return c, nil
}

func (r *CategoryRepo) GetByIDs(_ context.Context, ids []int64) (map[int64]*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make(map[int64]*entity.Category, len(ids))
	for _, id := range ids {
		if c, ok := r.s.categories.get(id); ok {
			out[id] = c
		}
	}
	return out, nil
}

func (r *CategoryRepo) List(_ context.Context, offset, limit int) ([]*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return ptrs(window(r.s.categories.ordered(), offset, limit)), nil
}

func (r *CategoryRepo) Update(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories.rows[c.ID]; !ok {
		return domain.ErrNotFound
	}
	if r.conflict(c) {
		return domain.ErrDuplicate
	}
	r.s.categories.rows[c.ID] = *c
	return nil
}

// Delete no toca productos ni servicios: su category_id queda colgando, igual que sin FK estricta.
func (r *CategoryRepo) Delete(_ context.Context, id int64) error {
	return deleteRow(r.s, r.s.categories, id)
}

func (r *CategoryRepo) conflict(c *entity.Category) bool {
	for id, row := range r.s.categories.rows {
		if id != c.ID && row.Name == c.Name {
			return true
		}
	}
	return false
}

// ── Product ──────────────────────────────────────────────────────────────────

// ProductRepo con tx=true es la vista que recibe RunCatalog; ya tiene txMu tomado.
type ProductRepo struct {
	s  *Store
	tx bool
}

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	defer r.s.catalogWrite(r.tx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.ID = r.s.products.identity()
	r.s.products.rows[p.ID] = *p
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, _ := r.s.products.get(id)
	return p, nil
}

func (r *ProductRepo) List(_ context.Context, offset, limit int) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return ptrs(window(r.s.products.ordered(), offset, limit)), nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	defer r.s.catalogWrite(r.tx)()
	return updateRow(r.s, r.s.products, p.ID, *p)
}

func (r *ProductRepo) Delete(_ context.Context, id int64) error {
	defer r.s.catalogWrite(r.tx)()
	return deleteRow(r.s, r.s.products, id)
}

// ── SubProduct ───────────────────────────────────────────────────────────────

type SubProductRepo struct {
	s  *Store
	tx bool
}

func (r *SubProductRepo) Create(_ context.Context, sp *entity.SubProduct) error {
	defer r.s.catalogWrite(r.tx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.conflict(sp) {
		return domain.ErrDuplicate
	}
	sp.ID = r.s.subProducts.identity()
	r.s.subProducts.rows[sp.ID] = *sp
	return nil
}

func (r *SubProductRepo) GetByID(_ context.Context, id int64) (*entity.SubProduct, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sp, _ := r.s.subProducts.get(id)
	return sp, nil
}

func (r *SubProductRepo) List(_ context.Context, f repository.SubProductFilter, offset, limit int) ([]*entity.SubProduct, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rows := r.filter(func(sp entity.SubProduct) bool {
		return (f.ProductID == nil || sp.ProductID == *f.ProductID) &&
			(f.IsFeatured == nil || sp.IsFeatured == *f.IsFeatured) &&
			(f.IsActive == nil || sp.IsActive == *f.IsActive)
	})
	return ptrs(window(rows, offset, limit)), nil
}

func (r *SubProductRepo) ListByProduct(_ context.Context, productID int64) ([]*entity.SubProduct, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rows := r.filter(func(sp entity.SubProduct) bool { return sp.ProductID == productID && sp.IsActive })
	sortForDisplay(rows)
	return ptrs(rows), nil
}

func (r *SubProductRepo) ListFeatured(_ context.Context, limit int) ([]*entity.SubProduct, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rows := r.filter(func(sp entity.SubProduct) bool { return sp.IsFeatured && sp.IsActive })
	sortForDisplay(rows)
	return ptrs(window(rows, 0, limit)), nil
}

func (r *SubProductRepo) Search(_ context.Context, query string, offset, limit int) ([]*entity.SubProduct, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	q := strings.ToLower(query)
	rows := r.filter(func(sp entity.SubProduct) bool {
		if !sp.IsActive {
			return false
		}
		return strings.Contains(strings.ToLower(sp.Name), q) ||
			containsFold(sp.Brand, q) || containsFold(sp.Model, q) || containsFold(sp.Tags, q)
	})
	return ptrs(window(rows, offset, limit)), nil
}

func (r *SubProductRepo) Update(_ context.Context, sp *entity.SubProduct) error {
	defer r.s.catalogWrite(r.tx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.subProducts.rows[sp.ID]; !ok {
		return domain.ErrNotFound
	}
	if r.conflict(sp) {
		return domain.ErrDuplicate
	}
	r.s.subProducts.rows[sp.ID] = *sp
	return nil
}

func (r *SubProductRepo) Delete(_ context.Context, id int64) error {
	defer r.s.catalogWrite(r.tx)()
	return deleteRow(r.s, r.s.subProducts, id)
}

func (r *SubProductRepo) DeleteByProduct(_ context.Context, productID int64) (int64, error) {
	defer r.s.catalogWrite(r.tx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, sp := range r.s.subProducts.rows {
		if sp.ProductID == productID {
			delete(r.s.subProducts.rows, id)
			n++
		}
	}
	return n, nil
}

func (r *SubProductRepo) filter(keep func(entity.SubProduct) bool) []entity.SubProduct {
	out := []entity.SubProduct{}
	for _, sp := range r.s.subProducts.ordered() {
		if keep(sp) {
			out = append(out, sp)
		}
	}
	return out
}

// conflict: sku es único solo cuando está presente.
func (r *SubProductRepo) conflict(sp *entity.SubProduct) bool {
	if sp.SKU == nil {
		return false
	}
	for id, row := range r.s.subProducts.rows {
		if id != sp.ID && row.SKU != nil && *row.SKU == *sp.SKU {
			return true
		}
	}
	return false
}

func sortForDisplay(rows []entity.SubProduct) {
	slices.SortStableFunc(rows, func(a, b entity.SubProduct) int {
		if c := cmp.Compare(a.SortOrder, b.SortOrder); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
}

// ── Service ──────────────────────────────────────────────────────────────────

type ServiceRepo struct{ s *Store }

func (r *ServiceRepo) Create(_ context.Context, sv *entity.Service) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sv.ID = r.s.services.identity()
	r.s.services.rows[sv.ID] = *sv
	return nil
}

func (r *ServiceRepo) GetByID(_ context.Context, id int64) (*entity.Service, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sv, _ := r.s.services.get(id)
	return sv, nil
}

func (r *ServiceRepo) List(_ context.Context, offset, limit int) ([]*entity.Service, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return ptrs(window(r.s.services.ordered(), offset, limit)), nil
}

func (r *ServiceRepo) Update(_ context.Context, sv *entity.Service) error {
	return updateRow(r.s, r.s.services, sv.ID, *sv)
}

func (r *ServiceRepo) Delete(_ context.Context, id int64) error {
	return deleteRow(r.s, r.s.services, id)
}

// ── Solution ─────────────────────────────────────────────────────────────────

type SolutionRepo struct{ s *Store }

func (r *SolutionRepo) Create(_ context.Context, so *entity.Solution) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	so.ID = r.s.solutions.identity()
	r.s.solutions.rows[so.ID] = *so
	return nil
}

func (r *SolutionRepo) GetByID(_ context.Context, id int64) (*entity.Solution, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	so, _ := r.s.solutions.get(id)
	return so, nil
}

func (r *SolutionRepo) List(_ context.Context, offset, limit int) ([]*entity.Solution, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return ptrs(window(r.s.solutions.ordered(), offset, limit)), nil
}

func (r *SolutionRepo) Update(_ context.Context, so *entity.Solution) error {
	return updateRow(r.s, r.s.solutions, so.ID, *so)
}

func (r *SolutionRepo) Delete(_ context.Context, id int64) error {
	return deleteRow(r.s, r.s.solutions, id)
}

// ── Customer ─────────────────────────────────────────────────────────────────

type CustomerRepo struct{ s *Store }

func (r *CustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c.ID = r.s.customers.identity()
	r.s.customers.rows[c.ID] = *c
	return nil
}

func (r *CustomerRepo) GetByID(_ context.Context, id int64) (*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, _ := r.s.customers.get(id)
	return c, nil
}

func (r *CustomerRepo) List(_ context.Context, offset, limit int) ([]*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return ptrs(window(r.s.customers.ordered(), offset, limit)), nil
}

func (r *CustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	return updateRow(r.s, r.s.customers, c.ID, *c)
}

func (r *CustomerRepo) Delete(_ context.Context, id int64) error {
	return deleteRow(r.s, r.s.customers, id)
}

// ── CompanyInfo ──────────────────────────────────────────────────────────────

type CompanyInfoRepo struct{ s *Store }

func (r *CompanyInfoRepo) Get(_ context.Context) (*entity.CompanyInfo, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rows := r.s.companyInfo.ordered()
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *CompanyInfoRepo) Create(_ context.Context, info *entity.CompanyInfo) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	info.ID = r.s.companyInfo.identity()
	r.s.companyInfo.rows[info.ID] = *info
	return nil
}

func (r *CompanyInfoRepo) Update(_ context.Context, info *entity.CompanyInfo) error {
	return updateRow(r.s, r.s.companyInfo, info.ID, *info)
}

// ── helpers ──────────────────────────────────────────────────────────────────

func updateRow[T any](s *Store, t *table[T], id int64, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return domain.ErrNotFound
	}
	t.rows[id] = v
	return nil
}

func deleteRow[T any](s *Store, t *table[T], id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(t.rows, id)
	return nil
}
