package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sns-api/internal/application/dto"
	"github.com/jhoicas/sns-api/internal/application/usecase"
	"github.com/jhoicas/sns-api/internal/domain"
	"github.com/jhoicas/sns-api/internal/infrastructure/memory"
)

type fixture struct {
	categories  *usecase.CategoryUseCase
	products    *usecase.ProductUseCase
	subProducts *usecase.SubProductUseCase
	services    *usecase.ServiceUseCase
	solutions   *usecase.SolutionUseCase
	customers   *usecase.CustomerUseCase
	company     *usecase.CompanyInfoUseCase
	admins      *usecase.AdminUseCase
	provision   *usecase.ProvisionUseCase
}

func newFixture() *fixture {
	s := memory.NewStore()
	f := &fixture{
		categories:  usecase.NewCategoryUseCase(s.Categories()),
		products:    usecase.NewProductUseCase(s.Products(), s.Categories(), s),
		subProducts: usecase.NewSubProductUseCase(s.SubProducts(), s.Products(), nil),
		services:    usecase.NewServiceUseCase(s.Services(), s.Categories()),
		solutions:   usecase.NewSolutionUseCase(s.Solutions()),
		customers:   usecase.NewCustomerUseCase(s.Customers()),
		company:     usecase.NewCompanyInfoUseCase(s.CompanyInfo()),
		admins:      usecase.NewAdminUseCase(s.Admins()),
	}
	f.provision = usecase.NewProvisionUseCase(s.Admins(), f.admins, f.company, f.categories)
	return f
}

func str(s string) *string { return &s }
func i64(n int64) *int64   { return &n }
func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }

func TestCategory_CreateYLeer(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	created, err := f.categories.Create(ctx, dto.CreateCategoryRequest{Name: "Network & Security", Description: str("Firewalls")})
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.True(t, created.IsActive)
	assert.Nil(t, created.UpdatedAt)

	got, err := f.categories.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Network & Security", got.Name)
	assert.Equal(t, "Firewalls", *got.Description)
}

func TestCategory_NombreDuplicado(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.categories.Create(ctx, dto.CreateCategoryRequest{Name: "IT Services"})
	require.NoError(t, err)
	_, err = f.categories.Create(ctx, dto.CreateCategoryRequest{Name: "IT Services"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCategory_NombreVacio_Validacion(t *testing.T) {
	f := newFixture()
	_, err := f.categories.Create(context.Background(), dto.CreateCategoryRequest{Name: ""})

	var verr *dto.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProduct_UpdateVacio_NoCambiaCampos(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	cat, err := f.categories.Create(ctx, dto.CreateCategoryRequest{Name: "Data Center Product"})
	require.NoError(t, err)
	p, err := f.products.Create(ctx, dto.CreateProductRequest{
		Name:       "Dell PowerEdge",
		CategoryID: &cat.ID,
		ImageURL:   str("https://example.com/r740.png"),
	})
	require.NoError(t, err)

	before, err := f.products.GetByID(ctx, p.ID)
	require.NoError(t, err)

	updated, err := f.products.Update(ctx, p.ID, dto.UpdateProductRequest{})
	require.NoError(t, err)

	after, err := f.products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, after)

	require.NotNil(t, after.UpdatedAt)
	after.UpdatedAt = nil
	assert.Equal(t, before, after)
}

// assertUpdateVacio compara la lectura previa con la respuesta y la relectura tras un update sin campos.
func assertUpdateVacio[T any](t *testing.T, before, updated, after *T, updatedAt func(*T) **time.Time) {
	t.Helper()
	assert.Equal(t, updated, after)
	require.NotNil(t, *updatedAt(after))
	*updatedAt(after) = nil
	assert.Equal(t, before, after)
}

func TestUpdateVacio_TodasLasEntidades(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name string
		run  func(t *testing.T, f *fixture)
	}{
		{"category", func(t *testing.T, f *fixture) {
			c, err := f.categories.Create(ctx, dto.CreateCategoryRequest{Name: "IT Services", Description: str("Consultoría")})
			require.NoError(t, err)
			before, err := f.categories.GetByID(ctx, c.ID)
			require.NoError(t, err)
			updated, err := f.categories.Update(ctx, c.ID, dto.UpdateCategoryRequest{})
			require.NoError(t, err)
			after, err := f.categories.GetByID(ctx, c.ID)
			require.NoError(t, err)
			assertUpdateVacio(t, before, updated, after, func(r *dto.CategoryResponse) **time.Time { return &r.UpdatedAt })
		}},
		{"sub-product", func(t *testing.T, f *fixture) {
			p, err := f.products.Create(ctx, dto.CreateProductRequest{Name: "Cisco"})
			require.NoError(t, err)
			sp, err := f.subProducts.Create(ctx, dto.CreateSubProductRequest{
				Name: "Catalyst 9200", ProductID: p.ID, SKU: str("C9200-24T"), Brand: str("Cisco"),
				Tags: str(`["switch"]`), IsFeatured: boolPtr(true), SortOrder: intPtr(3),
			})
			require.NoError(t, err)
			before, err := f.subProducts.GetByID(ctx, sp.ID)
			require.NoError(t, err)
			updated, err := f.subProducts.Update(ctx, sp.ID, dto.UpdateSubProductRequest{})
			require.NoError(t, err)
			after, err := f.subProducts.GetByID(ctx, sp.ID)
			require.NoError(t, err)
			assertUpdateVacio(t, before, updated, after, func(r *dto.SubProductResponse) **time.Time { return &r.UpdatedAt })
		}},
		{"service", func(t *testing.T, f *fixture) {
			cat, err := f.categories.Create(ctx, dto.CreateCategoryRequest{Name: "IT Services"})
			require.NoError(t, err)
			sv, err := f.services.Create(ctx, dto.CreateServiceRequest{Name: "IT Audit", CategoryID: &cat.ID, Features: str(`["ISO 27001"]`)})
			require.NoError(t, err)
			before, err := f.services.GetByID(ctx, sv.ID)
			require.NoError(t, err)
			updated, err := f.services.Update(ctx, sv.ID, dto.UpdateServiceRequest{})
			require.NoError(t, err)
			after, err := f.services.GetByID(ctx, sv.ID)
			require.NoError(t, err)
			assertUpdateVacio(t, before, updated, after, func(r *dto.ServiceResponse) **time.Time { return &r.UpdatedAt })
		}},
		{"solution", func(t *testing.T, f *fixture) {
			so, err := f.solutions.Create(ctx, dto.CreateSolutionRequest{Name: "RPA", Description: str("Automatización")})
			require.NoError(t, err)
			before, err := f.solutions.GetByID(ctx, so.ID)
			require.NoError(t, err)
			updated, err := f.solutions.Update(ctx, so.ID, dto.UpdateSolutionRequest{})
			require.NoError(t, err)
			after, err := f.solutions.GetByID(ctx, so.ID)
			require.NoError(t, err)
			assertUpdateVacio(t, before, updated, after, func(r *dto.SolutionResponse) **time.Time { return &r.UpdatedAt })
		}},
		{"customer", func(t *testing.T, f *fixture) {
			c, err := f.customers.Create(ctx, dto.CreateCustomerRequest{Name: "Customer 1", LogoURL: str("https://www.snsbd.com/1.png")})
			require.NoError(t, err)
			before, err := f.customers.GetByID(ctx, c.ID)
			require.NoError(t, err)
			updated, err := f.customers.Update(ctx, c.ID, dto.UpdateCustomerRequest{})
			require.NoError(t, err)
			after, err := f.customers.GetByID(ctx, c.ID)
			require.NoError(t, err)
			assertUpdateVacio(t, before, updated, after, func(r *dto.CustomerResponse) **time.Time { return &r.UpdatedAt })
		}},
		{"company-info", func(t *testing.T, f *fixture) {
			_, err := f.company.Create(ctx, dto.CreateCompanyInfoRequest{CompanyName: "Star Network Solutions", FoundedYear: intPtr(2009)})
			require.NoError(t, err)
			before, err := f.company.Get(ctx)
			require.NoError(t, err)
			updated, err := f.company.Update(ctx, dto.UpdateCompanyInfoRequest{})
			require.NoError(t, err)
			after, err := f.company.Get(ctx)
			require.NoError(t, err)
			assertUpdateVacio(t, before, updated, after, func(r *dto.CompanyInfoResponse) **time.Time { return &r.UpdatedAt })
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.run(t, newFixture())
		})
	}
}

func TestCompanyInfo_EnteroFueraDeRango_Validacion(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.company.Create(ctx, dto.CreateCompanyInfoRequest{CompanyName: "SNS"})
	require.NoError(t, err)

	_, err = f.company.Update(ctx, dto.UpdateCompanyInfoRequest{TotalClients: intPtr(1 << 31)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.company.Update(ctx, dto.UpdateCompanyInfoRequest{TotalBrands: intPtr(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.company.Update(ctx, dto.UpdateCompanyInfoRequest{TotalClients: intPtr(1<<31 - 1)})
	assert.NoError(t, err)
}

func TestSubProduct_SortOrderFueraDeRango_Validacion(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	p, err := f.products.Create(ctx, dto.CreateProductRequest{Name: "APC"})
	require.NoError(t, err)

	_, err = f.subProducts.Create(ctx, dto.CreateSubProductRequest{Name: "Smart-UPS", ProductID: p.ID, SortOrder: intPtr(1 << 31)})
	var verr *dto.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "sort_order")
}

func TestAdmin_PasswordMayorA72Bytes_Validacion(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a, err := f.admins.Create(ctx, dto.CreateAdminRequest{Username: "admin", Email: "admin@snsbd.com", Password: "admin123"})
	require.NoError(t, err)

	// 40 runas pasan el tag max=72 pero ocupan 80 bytes
	long := strings.Repeat("ñ", 40)
	_, err = f.admins.UpdateProfile(ctx, a.ID, dto.UpdateProfileRequest{Password: &long})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	tooMany := strings.Repeat("a", 73)
	_, err = f.admins.UpdateProfile(ctx, a.ID, dto.UpdateProfileRequest{Password: &tooMany})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProduct_CategoriaInexistenteNoSeVerifica(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	p, err := f.products.Create(ctx, dto.CreateProductRequest{Name: "Huérfano", CategoryID: i64(999)})
	require.NoError(t, err)
	assert.Equal(t, int64(999), *p.CategoryID)
	assert.Nil(t, p.Category)

	s, err := f.services.Create(ctx, dto.CreateServiceRequest{Name: "IT Audit", CategoryID: i64(404)})
	require.NoError(t, err)
	assert.Equal(t, int64(404), *s.CategoryID)
	assert.Nil(t, s.Category)
}

func TestProduct_ResuelveCategoria(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	cat, err := f.categories.Create(ctx, dto.CreateCategoryRequest{Name: "Security Surveillance"})
	require.NoError(t, err)
	_, err = f.products.Create(ctx, dto.CreateProductRequest{Name: "Hikvision CCTV Systems", CategoryID: &cat.ID})
	require.NoError(t, err)

	list, err := f.products.List(ctx, dto.PageRequest{Limit: 10})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Category)
	assert.Equal(t, "Security Surveillance", list[0].Category.Name)
}

func TestProduct_DeleteBorraSubProductos(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	p, err := f.products.Create(ctx, dto.CreateProductRequest{Name: "Cisco Networking"})
	require.NoError(t, err)
	other, err := f.products.Create(ctx, dto.CreateProductRequest{Name: "Fortinet"})
	require.NoError(t, err)

	for _, name := range []string{"Catalyst 9300", "ASR 1001-X", "ISR 4331"} {
		_, err := f.subProducts.Create(ctx, dto.CreateSubProductRequest{Name: name, ProductID: p.ID})
		require.NoError(t, err)
	}
	keep, err := f.subProducts.Create(ctx, dto.CreateSubProductRequest{Name: "FortiGate 60F", ProductID: other.ID})
	require.NoError(t, err)

	deleted, err := f.products.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cisco Networking", deleted.Name)

	_, err = f.products.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	remaining, err := f.subProducts.List(ctx, dto.SubProductListRequest{PageRequest: dto.PageRequest{Limit: 100}})
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, keep.ID, remaining[0].ID)
}

func TestProduct_DeleteInexistente(t *testing.T) {
	f := newFixture()
	_, err := f.products.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSubProduct_CreateAplicaDefaults(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	p, err := f.products.Create(ctx, dto.CreateProductRequest{Name: "APC"})
	require.NoError(t, err)
	sp, err := f.subProducts.Create(ctx, dto.CreateSubProductRequest{Name: "Smart-UPS 1500", ProductID: p.ID})
	require.NoError(t, err)

	assert.Equal(t, "USD", *sp.Currency)
	assert.Equal(t, "Available", *sp.AvailabilityStatus)
	assert.False(t, sp.IsFeatured)
	assert.Equal(t, 0, sp.SortOrder)
	assert.True(t, sp.IsActive)
}

func TestSubProduct_ProductoInexistente(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.subProducts.Create(ctx, dto.CreateSubProductRequest{Name: "X", ProductID: 77})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	p, err := f.products.Create(ctx, dto.CreateProductRequest{Name: "Ruijie"})
	require.NoError(t, err)
	sp, err := f.subProducts.Create(ctx, dto.CreateSubProductRequest{Name: "RG-S2910", ProductID: p.ID})
	require.NoError(t, err)

	_, err = f.subProducts.Update(ctx, sp.ID, dto.UpdateSubProductRequest{ProductID: i64(78)})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestSubProduct_SKUDuplicado(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	p, err := f.products.Create(ctx, dto.CreateProductRequest{Name: "Cisco"})
	require.NoError(t, err)
	_, err = f.subProducts.Create(ctx, dto.CreateSubProductRequest{Name: "A", ProductID: p.ID, SKU: str("C9300-48P")})
	require.NoError(t, err)
	_, err = f.subProducts.Create(ctx, dto.CreateSubProductRequest{Name: "B", ProductID: p.ID, SKU: str("C9300-48P")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// sin SKU no hay conflicto
	_, err = f.subProducts.Create(ctx, dto.CreateSubProductRequest{Name: "C", ProductID: p.ID})
	require.NoError(t, err)
	_, err = f.subProducts.Create(ctx, dto.CreateSubProductRequest{Name: "D", ProductID: p.ID})
	require.NoError(t, err)
}

func TestSubProduct_ByProductOrdenYActivos(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	p, err := f.products.Create(ctx, dto.CreateProductRequest{Name: "ZKTeco"})
	require.NoError(t, err)
	order := func(n int) *int { return &n }
	_, err = f.subProducts.Create(ctx, dto.CreateSubProductRequest{Name: "Zeta", ProductID: p.ID, SortOrder: order(1)})
	require.NoError(t, err)
	_, err = f.subProducts.Create(ctx, dto.CreateSubProductRequest{Name: "Beta", ProductID: p.ID, SortOrder: order(2)})
	require.NoError(t, err)
	_, err = f.subProducts.Create(ctx, dto.CreateSubProductRequest{Name: "Alfa", ProductID: p.ID, SortOrder: order(1)})
	require.NoError(t, err)
	hidden, err := f.subProducts.Create(ctx, dto.CreateSubProductRequest{Name: "Oculto", ProductID: p.ID})
	require.NoError(t, err)
	_, err = f.subProducts.Update(ctx, hidden.ID, dto.UpdateSubProductRequest{IsActive: boolPtr(false)})
	require.NoError(t, err)

	list, err := f.subProducts.ListByProduct(ctx, p.ID)
	require.NoError(t, err)
	names := make([]string, 0, len(list))
	for _, sp := range list {
		names = append(names, sp.Name)
	}
	assert.Equal(t, []string{"Alfa", "Zeta", "Beta"}, names)
}

func TestSubProduct_FeaturedLimite(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	p, err := f.products.Create(ctx, dto.CreateProductRequest{Name: "Hikvision"})
	require.NoError(t, err)
	for i := 0; i < 12; i++ {
		_, err := f.subProducts.Create(ctx, dto.CreateSubProductRequest{
			Name:       "Cam " + string(rune('A'+i)),
			ProductID:  p.ID,
			IsFeatured: boolPtr(true),
		})
		require.NoError(t, err)
	}
	_, err = f.subProducts.Create(ctx, dto.CreateSubProductRequest{Name: "No destacado", ProductID: p.ID})
	require.NoError(t, err)

	def, err := f.subProducts.ListFeatured(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, def, 10)

	three, err := f.subProducts.ListFeatured(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, three, 3)
	for _, sp := range three {
		assert.True(t, sp.IsFeatured)
	}
}

func TestSubProduct_Search(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	p, err := f.products.Create(ctx, dto.CreateProductRequest{Name: "Storage"})
	require.NoError(t, err)
	_, err = f.subProducts.Create(ctx, dto.CreateSubProductRequest{
		Name: "PowerVault ME5012", ProductID: p.ID, Brand: str("Dell"), Model: str("ME5012"),
	})
	require.NoError(t, err)
	_, err = f.subProducts.Create(ctx, dto.CreateSubProductRequest{
		Name: "Camera", ProductID: p.ID, Tags: str(`["ip-camera","outdoor"]`),
	})
	require.NoError(t, err)

	byBrand, err := f.subProducts.Search(ctx, "dELL", dto.PageRequest{Limit: 10})
	require.NoError(t, err)
	require.Len(t, byBrand, 1)
	assert.Equal(t, "PowerVault ME5012", byBrand[0].Name)

	byTag, err := f.subProducts.Search(ctx, "OUTDOOR", dto.PageRequest{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, byTag, 1)

	none, err := f.subProducts.Search(ctx, "juniper", dto.PageRequest{Limit: 10})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	_, err = f.subProducts.Search(ctx, "   ", dto.PageRequest{Limit: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubProduct_DatasheetSinGenerador(t *testing.T) {
	f := newFixture()
	_, _, err := f.subProducts.Datasheet(context.Background(), 1, false)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompanyInfo_GetSinProvisionar(t *testing.T) {
	f := newFixture()
	_, err := f.company.Get(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.company.Update(context.Background(), dto.UpdateCompanyInfoRequest{Phone: str("+880")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompanyInfo_CreateDefaultsYMerge(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	created, err := f.company.Create(ctx, dto.CreateCompanyInfoRequest{CompanyName: "Star Network Solutions"})
	require.NoError(t, err)
	assert.Equal(t, 0, *created.TotalClients)
	assert.Equal(t, 0, *created.TotalBrands)
	assert.Equal(t, 365, *created.ServiceDaysPerYear)

	clients := 70
	updated, err := f.company.Update(ctx, dto.UpdateCompanyInfoRequest{TotalClients: &clients})
	require.NoError(t, err)
	assert.Equal(t, "Star Network Solutions", updated.CompanyName)
	assert.Equal(t, 70, *updated.TotalClients)
	assert.Equal(t, 365, *updated.ServiceDaysPerYear)
}

func TestSolutionYCustomer_CRUD(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	sol, err := f.solutions.Create(ctx, dto.CreateSolutionRequest{Name: "Networking", Features: str(`["Wi-Fi"]`)})
	require.NoError(t, err)
	sol2, err := f.solutions.Update(ctx, sol.ID, dto.UpdateSolutionRequest{Name: str("Networking & Wi-Fi")})
	require.NoError(t, err)
	assert.Equal(t, "Networking & Wi-Fi", sol2.Name)
	assert.Equal(t, `["Wi-Fi"]`, *sol2.Features)

	cust, err := f.customers.Create(ctx, dto.CreateCustomerRequest{Name: "Customer 1", LogoURL: str("https://www.snsbd.com/1.png")})
	require.NoError(t, err)
	gone, err := f.customers.Delete(ctx, cust.ID)
	require.NoError(t, err)
	assert.Equal(t, cust.ID, gone.ID)
	_, err = f.customers.GetByID(ctx, cust.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProvision_Idempotente(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	admin := dto.CreateAdminRequest{Username: "admin", Email: "admin@snsbd.com", Password: "admin123"}

	created, err := f.provision.EnsureAdmin(ctx, admin)
	require.NoError(t, err)
	assert.True(t, created)
	created, err = f.provision.EnsureAdmin(ctx, admin)
	require.NoError(t, err)
	assert.False(t, created)

	created, err = f.provision.EnsureCompanyInfo(ctx, usecase.DefaultCompanyInfo("SNS"))
	require.NoError(t, err)
	assert.True(t, created)
	created, err = f.provision.EnsureCompanyInfo(ctx, usecase.DefaultCompanyInfo("Otra"))
	require.NoError(t, err)
	assert.False(t, created)

	cats := []dto.CreateCategoryRequest{{Name: "IT Services"}, {Name: "IT Solutions"}}
	n, err := f.provision.SeedCategories(ctx, cats)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	n, err = f.provision.SeedCategories(ctx, cats)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestAdmin_PasswordSeHashea(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	a, err := f.admins.Create(ctx, dto.CreateAdminRequest{Username: "ops", Email: "ops@snsbd.com", Password: "secreto1"})
	require.NoError(t, err)
	assert.Equal(t, "ops", a.Username)

	_, err = f.admins.Create(ctx, dto.CreateAdminRequest{Username: "ops", Email: "otro@snsbd.com", Password: "secreto1"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = f.admins.Create(ctx, dto.CreateAdminRequest{Username: "x", Email: "no-es-email", Password: "secreto1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
