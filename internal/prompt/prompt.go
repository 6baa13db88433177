package prompt

import "invocr/internal/domain"

// Logical line-item field keys accepted in a column mapping.
const (
	FieldProductName = "product_name"
	FieldUPC         = "upc"
	FieldQuantity    = "quantity"
	FieldUnit        = "unit"
	FieldPrice       = "price"
)

// Default display names used when a mapping does not override a field.
var defaultColumns = map[string]string{
	FieldProductName: "product_description/name",
	FieldUPC:         "UPC/item_code",
	FieldQuantity:    "quantity",
	FieldUnit:        "unit_of_measure",
	FieldPrice:       "price",
}

// ResolveColumn returns the display name for a logical field: the mapping
// value when present and non-empty, otherwise the built-in default.
func ResolveColumn(mapping domain.ColumnMapping, key string) string {
	if name, ok := mapping[key]; ok && name != "" {
		return name
	}
	return defaultColumns[key]
}

// BuildExtractionPrompt composes the invoice extraction instruction for the
// LLM. Equal mappings yield byte-identical prompts.
func BuildExtractionPrompt(mapping domain.ColumnMapping) string {
	return `You are a powerful and reliable invoice parser. I will provide you an invoice extracted from a PDF in plain text format and/or image. Your task is to extract **all relevant structured information** from it and return a clean, well-formatted JSON.

The JSON should contain two main sections:

1. invoice_metadata:
- invoice_number, invoice_date, vendor_name, vendor_address, store_name, store_address,
  po_number, payment_terms, due_date, total_amount, subtotal, tax, freight, other_charges

2. line_items:
For each product, extract:
- product_name: (Look for columns like '` + ResolveColumn(mapping, FieldProductName) + `')
- upc: (Look for columns like '` + ResolveColumn(mapping, FieldUPC) + `')
- quantity: (Look for columns like '` + ResolveColumn(mapping, FieldQuantity) + `')
- unit: (Look for columns like '` + ResolveColumn(mapping, FieldUnit) + `')
- price: (Look for columns like '` + ResolveColumn(mapping, FieldPrice) + `')

Return the result in valid JSON format with these exact field names.`
}
