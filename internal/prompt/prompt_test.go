package prompt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"invocr/internal/domain"
	"invocr/internal/prompt"
)

func TestBuildExtractionPrompt_Deterministic(t *testing.T) {
	mapping := domain.ColumnMapping{"upc": "Item #", "price": "Unit Cost"}

	first := prompt.BuildExtractionPrompt(mapping)
	second := prompt.BuildExtractionPrompt(mapping)

	assert.Equal(t, first, second)
}

func TestBuildExtractionPrompt_Defaults(t *testing.T) {
	p := prompt.BuildExtractionPrompt(domain.ColumnMapping{})

	assert.Contains(t, p, "- product_name: (Look for columns like 'product_description/name')")
	assert.Contains(t, p, "- upc: (Look for columns like 'UPC/item_code')")
	assert.Contains(t, p, "- quantity: (Look for columns like 'quantity')")
	assert.Contains(t, p, "- unit: (Look for columns like 'unit_of_measure')")
	assert.Contains(t, p, "- price: (Look for columns like 'price')")
}

func TestBuildExtractionPrompt_NilMappingEqualsEmpty(t *testing.T) {
	assert.Equal(t, prompt.BuildExtractionPrompt(nil), prompt.BuildExtractionPrompt(domain.ColumnMapping{}))
}

func TestBuildExtractionPrompt_Overrides(t *testing.T) {
	mapping := domain.ColumnMapping{
		"product_name": "Description",
		"upc":          "SKU",
	}
	p := prompt.BuildExtractionPrompt(mapping)

	assert.Contains(t, p, "- product_name: (Look for columns like 'Description')")
	assert.Contains(t, p, "- upc: (Look for columns like 'SKU')")
	// Unmapped fields keep their defaults
	assert.Contains(t, p, "- price: (Look for columns like 'price')")
}

func TestBuildExtractionPrompt_EmptyOverrideFallsBack(t *testing.T) {
	p := prompt.BuildExtractionPrompt(domain.ColumnMapping{"unit": ""})

	assert.Contains(t, p, "- unit: (Look for columns like 'unit_of_measure')")
}

func TestBuildExtractionPrompt_UnknownKeysIgnored(t *testing.T) {
	base := prompt.BuildExtractionPrompt(domain.ColumnMapping{})
	withJunk := prompt.BuildExtractionPrompt(domain.ColumnMapping{"not_a_field": "whatever"})

	assert.Equal(t, base, withJunk)
}

func TestBuildExtractionPrompt_MetadataFields(t *testing.T) {
	p := prompt.BuildExtractionPrompt(nil)

	assert.Contains(t, p, "invoice_metadata")
	assert.Contains(t, p, "line_items")
	for _, field := range []string{
		"invoice_number", "invoice_date", "vendor_name", "vendor_address",
		"store_name", "store_address", "po_number", "payment_terms",
		"due_date", "total_amount", "subtotal", "tax", "freight", "other_charges",
	} {
		assert.Contains(t, p, field)
	}
	assert.False(t, strings.HasPrefix(p, "\n"))
	assert.False(t, strings.HasSuffix(p, "\n"))
}

func TestResolveColumn(t *testing.T) {
	assert.Equal(t, "price", prompt.ResolveColumn(nil, prompt.FieldPrice))
	assert.Equal(t, "Cost", prompt.ResolveColumn(domain.ColumnMapping{"price": "Cost"}, prompt.FieldPrice))
	assert.Equal(t, "price", prompt.ResolveColumn(domain.ColumnMapping{"price": ""}, prompt.FieldPrice))
}
