package sitemodel

// Default strings substituted for absent profile fields. These render
// verbatim, so changing one changes every generated site.
const (
	DefaultBusinessName = "My Business"
	DefaultAboutName    = "Our Business"
	DefaultTagline      = "Welcome to our business"
	DefaultStory        = "We are committed to providing excellent products and services to our customers."
	DefaultServices     = "We offer a wide range of quality products and services."
	DefaultAudience     = "Our offerings are tailored to meet the needs of our valued customers."
	DefaultEmail        = "contact@business.com"
	DefaultPhone        = "Phone not provided"
	DefaultAddress      = "Address not provided"
	DefaultFooterBlurb  = "Your trusted business partner"
)
