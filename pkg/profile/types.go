package profile

// BusinessProfile is the wizard's business record. Every field is optional;
// the site model builder substitutes documented defaults for the text fields
// that always render.
type BusinessProfile struct {
	BusinessName        string `json:"businessName"`
	BusinessDescription string `json:"businessDescription"`
	ServicesOffered     string `json:"servicesOffered"`
	TargetAudience      string `json:"targetAudience"`
	EstablishedYear     string `json:"establishedYear"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	WhatsApp            string `json:"whatsapp"`
	Address             string `json:"address"`
	Website             string `json:"website"`
	ColorTheme          string `json:"colorTheme"`
}

// ProductCatalog is the wizard's commerce record.
type ProductCatalog struct {
	Products        []Product `json:"products"`
	PaymentMethods  []string  `json:"paymentMethods"`
	DeliveryOptions []string  `json:"deliveryOptions"`
	Categories      string    `json:"categories"`
	DeliveryAreas   string    `json:"deliveryAreas"`
}

// Product describes a single catalog entry. ProductPrice is already coerced
// by the decoder: missing, malformed, or negative values become zero.
type Product struct {
	ProductName        string  `json:"productName"`
	ProductPrice       float64 `json:"productPrice"`
	ProductDescription string  `json:"productDescription"`
	ProductImage       string  `json:"productImage"`
	ProductCategory    string  `json:"productCategory"`
	ProductSKU         string  `json:"productSku"`
}
