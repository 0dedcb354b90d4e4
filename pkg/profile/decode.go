package profile

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// DecodeBusinessProfile parses a stored business record. Decoding is
// tolerant: a field of the wrong JSON type is treated as absent, and a
// document that is not a JSON object yields the zero record. It never fails.
func DecodeBusinessProfile(data []byte) BusinessProfile {
	fields := objectFields(data)
	return BusinessProfile{
		BusinessName:        stringField(fields, "businessName"),
		BusinessDescription: stringField(fields, "businessDescription"),
		ServicesOffered:     stringField(fields, "servicesOffered"),
		TargetAudience:      stringField(fields, "targetAudience"),
		EstablishedYear:     scalarField(fields, "establishedYear"),
		Email:               stringField(fields, "email"),
		Phone:               stringField(fields, "phone"),
		WhatsApp:            stringField(fields, "whatsapp"),
		Address:             stringField(fields, "address"),
		Website:             stringField(fields, "website"),
		ColorTheme:          stringField(fields, "colorTheme"),
	}
}

// DecodeProductCatalog parses a stored catalog record with the same
// degradation rules as DecodeBusinessProfile.
func DecodeProductCatalog(data []byte) ProductCatalog {
	fields := objectFields(data)
	return ProductCatalog{
		Products:        productsField(fields, "products"),
		PaymentMethods:  stringListField(fields, "paymentMethods"),
		DeliveryOptions: stringListField(fields, "deliveryOptions"),
		Categories:      stringField(fields, "categories"),
		DeliveryAreas:   stringField(fields, "deliveryAreas"),
	}
}

func objectFields(data []byte) map[string]json.RawMessage {
	if len(data) == 0 {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}
	return fields
}

func stringField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return ""
	}
	return strings.TrimSpace(value)
}

// scalarField accepts either a JSON string or a JSON number, since the wizard
// historically stored the established year both ways.
func scalarField(fields map[string]json.RawMessage, key string) string {
	if value := stringField(fields, key); value != "" {
		return value
	}
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var number json.Number
	if err := json.Unmarshal(raw, &number); err != nil {
		return ""
	}
	return number.String()
}

func stringListField(fields map[string]json.RawMessage, key string) []string {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		var value string
		if err := json.Unmarshal(entry, &value); err != nil {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		out = append(out, value)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func productsField(fields map[string]json.RawMessage, key string) []Product {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}
	out := make([]Product, 0, len(entries))
	for _, entry := range entries {
		product, ok := decodeProduct(entry)
		if !ok {
			continue
		}
		out = append(out, product)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func decodeProduct(data []byte) (Product, bool) {
	fields := objectFields(data)
	if fields == nil {
		return Product{}, false
	}
	return Product{
		ProductName:        stringField(fields, "productName"),
		ProductPrice:       priceField(fields, "productPrice"),
		ProductDescription: stringField(fields, "productDescription"),
		ProductImage:       stringField(fields, "productImage"),
		ProductCategory:    stringField(fields, "productCategory"),
		ProductSKU:         stringField(fields, "productSku"),
	}, true
}

// priceField coerces the stored price to a non-negative number. The wizard
// saves whatever the user typed, so strings, numbers, nulls, and garbage all
// arrive here; anything that does not parse becomes zero.
func priceField(fields map[string]json.RawMessage, key string) float64 {
	raw, ok := fields[key]
	if !ok {
		return 0
	}
	var number float64
	if err := json.Unmarshal(raw, &number); err == nil {
		if number < 0 {
			return 0
		}
		return number
	}
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return 0
	}
	// ParseFloat accepts "NaN" and "Inf", which are not prices.
	number, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || number < 0 || math.IsNaN(number) || math.IsInf(number, 0) {
		return 0
	}
	return number
}
