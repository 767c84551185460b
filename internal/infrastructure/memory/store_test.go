package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sns-api/internal/domain"
	"github.com/jhoicas/sns-api/internal/domain/entity"
	"github.com/jhoicas/sns-api/internal/domain/repository"
	"github.com/jhoicas/sns-api/internal/infrastructure/memory"
)

func TestIdentidades_NoSeReutilizan(t *testing.T) {
	s := memory.NewStore()
	repo := s.Categories()
	ctx := context.Background()

	a := &entity.Category{Name: "A", IsActive: true, CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Delete(ctx, a.ID))

	b := &entity.Category{Name: "B", IsActive: true, CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, b))
	assert.Greater(t, b.ID, a.ID)
}

func TestGet_SinFilaDevuelveNil(t *testing.T) {
	s := memory.NewStore()
	got, err := s.Products().GetByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, got)

	info, err := s.CompanyInfo().Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestUpdateDelete_SinFila(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	assert.ErrorIs(t, s.Services().Update(ctx, &entity.Service{ID: 5, Name: "x"}), domain.ErrNotFound)
	assert.ErrorIs(t, s.Customers().Delete(ctx, 5), domain.ErrNotFound)
}

func TestAdmin_UnicidadUsernameYEmail(t *testing.T) {
	s := memory.NewStore()
	repo := s.Admins()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Admin{Username: "admin", Email: "a@snsbd.com"}))
	assert.ErrorIs(t, repo.Create(ctx, &entity.Admin{Username: "admin", Email: "b@snsbd.com"}), domain.ErrDuplicate)
	assert.ErrorIs(t, repo.Create(ctx, &entity.Admin{Username: "otro", Email: "a@snsbd.com"}), domain.ErrDuplicate)
}

func TestRunCatalog_RestauraSiFalla(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()

	p := &entity.Product{Name: "Cisco", IsActive: true}
	require.NoError(t, s.Products().Create(ctx, p))
	sp := &entity.SubProduct{Name: "Catalyst", ProductID: p.ID, IsActive: true}
	require.NoError(t, s.SubProducts().Create(ctx, sp))

	boom := errors.New("boom")
	err := s.RunCatalog(ctx, func(products repository.ProductRepository, subs repository.SubProductRepository) error {
		n, err := subs.DeleteByProduct(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		require.NoError(t, products.Delete(ctx, p.ID))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	gotP, err := s.Products().GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.NotNil(t, gotP)
	gotSP, err := s.SubProducts().GetByID(ctx, sp.ID)
	require.NoError(t, err)
	assert.NotNil(t, gotSP)
}

func TestRunCatalog_EscrituraConcurrenteSobreviveAlRollback(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()

	started, release := make(chan struct{}), make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- s.RunCatalog(ctx, func(repository.ProductRepository, repository.SubProductRepository) error {
			close(started)
			<-release
			return errors.New("boom")
		})
	}()
	<-started

	outside := &entity.Product{Name: "Fortinet", IsActive: true}
	created := make(chan error, 1)
	go func() { created <- s.Products().Create(ctx, outside) }()

	close(release)
	require.Error(t, <-done)
	require.NoError(t, <-created)

	got, err := s.Products().GetByID(ctx, outside.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Fortinet", got.Name)
}

func TestRunCatalog_ContextoCancelado(t *testing.T) {
	s := memory.NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := s.RunCatalog(ctx, func(repository.ProductRepository, repository.SubProductRepository) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestSubProducts_ListFiltros(t *testing.T) {
	s := memory.NewStore()
	repo := s.SubProducts()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.SubProduct{Name: "a", ProductID: 1, IsActive: true, IsFeatured: true}))
	require.NoError(t, repo.Create(ctx, &entity.SubProduct{Name: "b", ProductID: 1, IsActive: false}))
	require.NoError(t, repo.Create(ctx, &entity.SubProduct{Name: "c", ProductID: 2, IsActive: true}))

	pid := int64(1)
	active := true
	featured := true

	all, err := repo.List(ctx, repository.SubProductFilter{}, 0, 100)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byProduct, err := repo.List(ctx, repository.SubProductFilter{ProductID: &pid}, 0, 100)
	require.NoError(t, err)
	assert.Len(t, byProduct, 2)

	activeOnes, err := repo.List(ctx, repository.SubProductFilter{IsActive: &active}, 0, 100)
	require.NoError(t, err)
	assert.Len(t, activeOnes, 2)

	feat, err := repo.List(ctx, repository.SubProductFilter{IsFeatured: &featured}, 0, 100)
	require.NoError(t, err)
	require.Len(t, feat, 1)
	assert.Equal(t, "a", feat[0].Name)

	paged, err := repo.List(ctx, repository.SubProductFilter{}, 2, 100)
	require.NoError(t, err)
	require.Len(t, paged, 1)
	assert.Equal(t, "c", paged[0].Name)
}
