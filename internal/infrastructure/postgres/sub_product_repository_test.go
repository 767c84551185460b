package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/sns-api/internal/domain/repository"
)

func TestEscapeLike(t *testing.T) {
	cases := map[string]string{
		"cisco":     "cisco",
		"100%":      `100\%`,
		"c9300_48p": `c9300\_48p`,
		`a\b`:       `a\\b`,
		`%_\`:       `\%\_\\`,
		"":          "",
	}
	for in, want := range cases {
		assert.Equal(t, want, escapeLike(in), "entrada %q", in)
	}
}

func TestSubProductListQuery_SinFiltros(t *testing.T) {
	query, args := subProductListQuery(repository.SubProductFilter{}, 0, 100)
	assert.NotContains(t, query, "WHERE")
	assert.True(t, strings.HasSuffix(query, "ORDER BY id OFFSET $1 LIMIT $2"))
	assert.Equal(t, []any{0, 100}, args)
}

func TestSubProductListQuery_TodosLosFiltros(t *testing.T) {
	productID, featured, active := int64(7), true, false
	query, args := subProductListQuery(repository.SubProductFilter{
		ProductID: &productID, IsFeatured: &featured, IsActive: &active,
	}, 20, 10)

	assert.Contains(t, query, "WHERE product_id = $1 AND is_featured = $2 AND is_active = $3")
	assert.True(t, strings.HasSuffix(query, "ORDER BY id OFFSET $4 LIMIT $5"))
	assert.Equal(t, []any{int64(7), true, false, 20, 10}, args)
}

func TestSubProductListQuery_SoloActivo(t *testing.T) {
	active := true
	query, args := subProductListQuery(repository.SubProductFilter{IsActive: &active}, 0, 5)

	assert.Contains(t, query, "WHERE is_active = $1 ORDER BY id OFFSET $2 LIMIT $3")
	assert.Equal(t, []any{true, 0, 5}, args)
}
