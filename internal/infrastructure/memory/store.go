// Package memory implementa los puertos de persistencia en memoria (DB_DRIVER=memory y tests).
// Respeta las mismas reglas que PostgreSQL: identidades crecientes que no se reutilizan,
// claves únicas y borrado en cascada de sub-productos dentro de una transacción.
package memory

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/jhoicas/sns-api/internal/application/ports"
	"github.com/jhoicas/sns-api/internal/domain/entity"
	"github.com/jhoicas/sns-api/internal/domain/repository"
)

var _ ports.CatalogTxRunner = (*Store)(nil)

// table guarda copias por valor indexadas por ID.
type table[T any] struct {
	rows   map[int64]T
	nextID int64
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[int64]T)}
}

func (t *table[T]) identity() int64 {
	t.nextID++
	return t.nextID
}

func (t *table[T]) get(id int64) (*T, bool) {
	v, ok := t.rows[id]
	if !ok {
		return nil, false
	}
	return &v, true
}

func (t *table[T]) ordered() []T {
	out := make([]T, 0, len(t.rows))
	for _, id := range slices.Sorted(maps.Keys(t.rows)) {
		out = append(out, t.rows[id])
	}
	return out
}

// Store agrupa todas las tablas bajo un único RWMutex.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	admins      *table[entity.Admin]
	categories  *table[entity.Category]
	products    *table[entity.Product]
	subProducts *table[entity.SubProduct]
	services    *table[entity.Service]
	solutions   *table[entity.Solution]
	customers   *table[entity.Customer]
	companyInfo *table[entity.CompanyInfo]
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		admins:      newTable[entity.Admin](),
		categories:  newTable[entity.Category](),
		products:    newTable[entity.Product](),
		subProducts: newTable[entity.SubProduct](),
		services:    newTable[entity.Service](),
		solutions:   newTable[entity.Solution](),
		customers:   newTable[entity.Customer](),
		companyInfo: newTable[entity.CompanyInfo](),
	}
}

// Repositorios sobre el store.
func (s *Store) Admins() *AdminRepo { return &AdminRepo{s: s} }
func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{s: s} }
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }
func (s *Store) SubProducts() *SubProductRepo { return &SubProductRepo{s: s} }
func (s *Store) Services() *ServiceRepo { return &ServiceRepo{s: s} }
func (s *Store) Solutions() *SolutionRepo { return &SolutionRepo{s: s} }
func (s *Store) Customers() *CustomerRepo { return &CustomerRepo{s: s} }
func (s *Store) CompanyInfo() *CompanyInfoRepo { return &CompanyInfoRepo{s: s} }

// RunCatalog ejecuta fn de forma serializada; si fn falla se restauran productos y sub-productos.
// Las escrituras de catálogo fuera de la transacción esperan a que termine, así el restore no las pisa.
func (s *Store) RunCatalog(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	subProductRepo repository.SubProductRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	products, subProducts := maps.Clone(s.products.rows), maps.Clone(s.subProducts.rows)
	s.mu.RUnlock()

	if err := fn(&ProductRepo{s: s, tx: true}, &SubProductRepo{s: s, tx: true}); err != nil {
		// Las identidades consumidas no se devuelven, igual que una secuencia.
		s.mu.Lock()
		s.products.rows, s.subProducts.rows = products, subProducts
		s.mu.Unlock()
		return err
	}
	return nil
}

// catalogWrite toma txMu para una escritura de productos o sub-productos fuera de RunCatalog.
func (s *Store) catalogWrite(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.txMu.Lock()
	return s.txMu.Unlock
}

// window aplica offset/limit sobre una lista ya ordenada.
func window[T any](rows []T, offset, limit int) []T {
	if offset >= len(rows) {
		return []T{}
	}
	end := len(rows)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return rows[offset:end]
}

func ptrs[T any](rows []T) []*T {
	out := make([]*T, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out
}

func containsFold(field *string, lowered string) bool {
	return field != nil && strings.Contains(strings.ToLower(*field), lowered)
}
