package sitemodel

// Site is the fully substituted content model both renderers consume. Every
// default has already been applied and every conditional decided, so the view
// tree and the exported document cannot drift apart on content.
type Site struct {
	// Name is the cleaned business name as supplied, empty when the user
	// gave none. Title always holds a display value.
	Name         string
	Title        string
	AboutTitle   string
	Industry     string
	IndustryIcon string
	Tagline      string
	Contact      Contact
	About        About
	Products     []ProductView
	Services     Services
	Footer       Footer
	ThemeID      string
}

// Contact carries the substituted contact lines. Email and Phone always hold
// a value (the documented default when the user gave none); the Provided
// flags drive the header chips, which only appear for user-supplied data.
type Contact struct {
	Email         string
	Phone         string
	WhatsApp      string
	EmailProvided bool
	PhoneProvided bool
}

// About holds the three about-section cards. Established is empty when the
// profile carries no year, which suppresses its line entirely.
type About struct {
	Story          string
	Established    string
	Services       string
	TargetAudience string
}

// ProductView is a display-ready catalog entry. Price is always populated,
// including the "₹0.00" case; Image, Category, and SKU render only when set.
type ProductView struct {
	Name        string
	Price       string
	Description string
	Image       string
	Category    string
	SKU         string
}

// Services groups the commerce sub-cards. Each renders only when its backing
// field survives normalisation.
type Services struct {
	PaymentMethods  []string
	DeliveryOptions []string
	Categories      string
	DeliveryAreas   string
}

// Empty reports whether no services sub-card has content.
func (s Services) Empty() bool {
	return len(s.PaymentMethods) == 0 &&
		len(s.DeliveryOptions) == 0 &&
		s.Categories == "" &&
		s.DeliveryAreas == ""
}

// Footer carries the substituted footer columns plus the copyright year.
type Footer struct {
	Blurb   string
	Address string
	Website string
	Year    string
}
