package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sns-api/internal/domain/entity"
)

func str(s string) *string { return &s }

func TestGenerateDatasheet_ProducePDF(t *testing.T) {
	sp := &entity.SubProduct{
		ID:               1,
		Name:             "Catalyst 9300",
		Brand:            str("Cisco"),
		SKU:              str("C9300-48P"),
		Description:      str("Switch de acceso apilable."),
		Specifications:   str(`{"ports":"48x 1G PoE+","uplinks":"4x 10G"}`),
		Features:         str(`["StackWise-480","UPOE"]`),
		PriceRange:       str("4000-6000"),
		Currency:         str("USD"),
		DocumentationURL: str("https://www.cisco.com/c/en/us/products/switches/catalyst-9300-series-switches/index.html"),
		SupportInfo:      str("24/7"),
	}
	product := &entity.Product{ID: 1, Name: "Cisco Networking"}

	out, err := NewMarotoPDFGenerator("SNS").GenerateDatasheet(context.Background(), sp, product)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateDatasheet_SinCamposOpcionales(t *testing.T) {
	out, err := NewMarotoPDFGenerator("SNS").GenerateDatasheet(context.Background(), &entity.SubProduct{Name: "Genérico"}, nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestParseSpecifications(t *testing.T) {
	assert.Nil(t, parseSpecifications(nil))
	assert.Nil(t, parseSpecifications(str("  ")))
	assert.Equal(t, [][2]string{{"a", "1"}, {"b", "x"}}, parseSpecifications(str(`{"b":"x","a":1}`)))
	assert.Equal(t, [][2]string{{"Details", "texto libre"}}, parseSpecifications(str("texto libre")))
}

func TestParseList(t *testing.T) {
	assert.Nil(t, parseList(nil))
	assert.Equal(t, []string{"uno", "dos"}, parseList(str(`["uno","dos"]`)))
	assert.Equal(t, []string{"uno", "dos"}, parseList(str("uno, dos,")))
}
