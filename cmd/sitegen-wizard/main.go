package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/websiteboss/sitegen/internal/record"
	"github.com/websiteboss/sitegen/pkg/profile"
	"github.com/websiteboss/sitegen/pkg/theme"
)

var industries = []string{
	"Pharmacy", "Cosmetics", "Restaurant", "Electronics", "Clothing", "Grocery", "Other",
}

var paymentChoices = []string{"cash", "card", "upi", "netbanking", "wallet"}

var deliveryChoices = []string{"pickup", "home delivery", "courier", "same-day"}

func main() {
	_ = godotenv.Load()

	store := pflag.String("store", envOr("SITEGEN_STORE_DIR", ".sitegen"), "session directory the records are written to")
	pflag.Parse()

	bp, err := askBusiness()
	if err != nil {
		log.Fatalf("Wizard aborted: %v", err)
	}

	industry, err := askIndustry()
	if err != nil {
		log.Fatalf("Wizard aborted: %v", err)
	}

	catalog, err := askCatalog()
	if err != nil {
		log.Fatalf("Wizard aborted: %v", err)
	}

	if err := record.Save(*store, bp, catalog, industry); err != nil {
		log.Fatalf("Failed to save session: %v", err)
	}
	fmt.Printf("Session saved to %s — run sitegen-cli to render your website.\n", *store)
}

func askBusiness() (profile.BusinessProfile, error) {
	var bp profile.BusinessProfile

	questions := []struct {
		message string
		help    string
		target  *string
	}{
		{"Business name:", "Shown in the header, title, and footer.", &bp.BusinessName},
		{"Business description:", "One or two sentences; used as the tagline and story.", &bp.BusinessDescription},
		{"Services offered:", "", &bp.ServicesOffered},
		{"Target audience:", "", &bp.TargetAudience},
		{"Established year:", "Leave empty if you'd rather not show it.", &bp.EstablishedYear},
		{"Contact email:", "", &bp.Email},
		{"Contact phone:", "", &bp.Phone},
		{"WhatsApp number:", "Leave empty to omit the WhatsApp line.", &bp.WhatsApp},
		{"Address:", "", &bp.Address},
		{"Website URL:", "Leave empty to omit the website line.", &bp.Website},
	}
	for _, q := range questions {
		prompt := &survey.Input{Message: q.message, Help: q.help}
		if err := survey.AskOne(prompt, q.target); err != nil {
			return profile.BusinessProfile{}, err
		}
	}

	themes := theme.Default().Names()
	if err := survey.AskOne(&survey.Select{
		Message: "Color theme:",
		Options: themes,
		Default: theme.DefaultTheme,
	}, &bp.ColorTheme); err != nil {
		return profile.BusinessProfile{}, err
	}
	return bp, nil
}

func askIndustry() (string, error) {
	var industry string
	if err := survey.AskOne(&survey.Select{
		Message: "Industry:",
		Options: industries,
	}, &industry); err != nil {
		return "", err
	}
	if industry == "Other" {
		if err := survey.AskOne(&survey.Input{Message: "Describe your industry:"}, &industry); err != nil {
			return "", err
		}
	}
	return industry, nil
}

func askCatalog() (profile.ProductCatalog, error) {
	var catalog profile.ProductCatalog

	for {
		var more bool
		message := "Add a product?"
		if len(catalog.Products) > 0 {
			message = "Add another product?"
		}
		if err := survey.AskOne(&survey.Confirm{Message: message, Default: len(catalog.Products) == 0}, &more); err != nil {
			return profile.ProductCatalog{}, err
		}
		if !more {
			break
		}
		product, err := askProduct()
		if err != nil {
			return profile.ProductCatalog{}, err
		}
		catalog.Products = append(catalog.Products, product)
	}

	if err := survey.AskOne(&survey.MultiSelect{
		Message: "Payment methods:",
		Options: paymentChoices,
	}, &catalog.PaymentMethods); err != nil {
		return profile.ProductCatalog{}, err
	}
	if err := survey.AskOne(&survey.MultiSelect{
		Message: "Delivery options:",
		Options: deliveryChoices,
	}, &catalog.DeliveryOptions); err != nil {
		return profile.ProductCatalog{}, err
	}
	if err := survey.AskOne(&survey.Input{
		Message: "Product categories:",
		Help:    "Free text, e.g. \"Medicines, Wellness, Baby care\". Leave empty to omit.",
	}, &catalog.Categories); err != nil {
		return profile.ProductCatalog{}, err
	}
	if err := survey.AskOne(&survey.Input{
		Message: "Delivery areas:",
		Help:    "Free text, e.g. \"Within 10 km of Pune\". Leave empty to omit.",
	}, &catalog.DeliveryAreas); err != nil {
		return profile.ProductCatalog{}, err
	}
	return catalog, nil
}

func askProduct() (profile.Product, error) {
	var p profile.Product

	if err := survey.AskOne(&survey.Input{Message: "Product name:"}, &p.ProductName, survey.WithValidator(survey.Required)); err != nil {
		return profile.Product{}, err
	}

	var price string
	if err := survey.AskOne(&survey.Input{
		Message: "Price (₹):",
		Help:    "Numbers only; anything else is treated as no price.",
	}, &price, survey.WithValidator(priceValidator)); err != nil {
		return profile.Product{}, err
	}
	if value, err := strconv.ParseFloat(strings.TrimSpace(price), 64); err == nil && value >= 0 {
		p.ProductPrice = value
	}

	rest := []struct {
		message string
		target  *string
	}{
		{"Description:", &p.ProductDescription},
		{"Image URL:", &p.ProductImage},
		{"Category:", &p.ProductCategory},
		{"SKU:", &p.ProductSKU},
	}
	for _, q := range rest {
		if err := survey.AskOne(&survey.Input{Message: q.message}, q.target); err != nil {
			return profile.Product{}, err
		}
	}
	return p, nil
}

func priceValidator(ans any) error {
	text, ok := ans.(string)
	if !ok {
		return nil
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fmt.Errorf("%q is not a number", text)
	}
	if value < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	return nil
}

func envOr(key, def string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return def
}
