package htmldoc

import (
	"fmt"
	"strings"

	"github.com/websiteboss/sitegen/pkg/theme"
)

// buildStylesheet generates the embedded stylesheet for the exported
// document from the resolved palette. The document carries no other styling,
// so everything colour-related funnels through here.
func buildStylesheet(palette theme.Palette) string {
	var buf strings.Builder

	buf.WriteString(`* { margin: 0; padding: 0; box-sizing: border-box; }
body {
  font-family: 'Inter', 'Segoe UI', system-ui, sans-serif;
  line-height: 1.6;
  color: ` + palette.TextDark + `;
}
.container {
  max-width: 1200px;
  margin: 0 auto;
  padding: 0 24px;
  position: relative;
  z-index: 2;
}
`)

	buf.WriteString(fmt.Sprintf(`.header {
  background: %s;
  color: white;
  padding: 100px 0;
  text-align: center;
  position: relative;
  overflow: hidden;
}
.header::before {
  content: '';
  position: absolute;
  inset: 0;
  background: rgba(0,0,0,0.1);
  z-index: 1;
}
.business-name {
  font-size: clamp(2.5rem, 5vw, 4rem);
  margin-bottom: 24px;
  font-weight: 700;
  text-shadow: 0 4px 20px rgba(0,0,0,0.3);
  line-height: 1.2;
}
.industry-icon {
  font-size: clamp(3rem, 6vw, 5rem);
  margin-bottom: 20px;
}
.tagline {
  font-size: clamp(1.1rem, 2vw, 1.4rem);
  opacity: 0.95;
  margin-bottom: 40px;
  font-weight: 300;
  max-width: 600px;
  margin-left: auto;
  margin-right: auto;
}
.contact-info {
  display: flex;
  justify-content: center;
  gap: 20px;
  flex-wrap: wrap;
  margin-top: 40px;
}
.contact-item {
  background: rgba(255,255,255,0.15);
  padding: 12px 20px;
  border-radius: 50px;
  border: 1px solid rgba(255,255,255,0.2);
  font-size: 0.95rem;
}
`, palette.HeroBackground))

	buf.WriteString(fmt.Sprintf(`.section-title {
  font-size: clamp(2rem, 4vw, 3rem);
  text-align: center;
  margin-bottom: 60px;
  color: %s;
  font-weight: 700;
  position: relative;
}
.section-title::after {
  content: '';
  position: absolute;
  bottom: -10px;
  left: 50%%;
  transform: translateX(-50%%);
  width: 60px;
  height: 4px;
  background: linear-gradient(90deg, %s, %s);
  border-radius: 2px;
}
`, palette.TextDark, palette.Primary, palette.Accent))

	buf.WriteString(fmt.Sprintf(`.about-section {
  background: linear-gradient(135deg, #FFFFFF 0%%, #F8FAFC 100%%);
  padding: 100px 24px;
}
.about-content {
  display: grid;
  grid-template-columns: repeat(auto-fit, minmax(350px, 1fr));
  gap: 32px;
  max-width: 1200px;
  margin: 0 auto;
}
.about-card {
  background: rgba(255,255,255,0.9);
  padding: 40px;
  border-radius: 20px;
  box-shadow: 0 20px 40px rgba(0,0,0,0.08);
  border: 1px solid %s;
}
.card-title {
  color: %s;
  font-size: 1.5rem;
  margin-bottom: 20px;
  font-weight: 600;
}
.card-note {
  margin-top: 16px;
  color: %s;
  font-weight: 500;
}
`, palette.CardBorder, palette.Primary, palette.Primary))

	buf.WriteString(fmt.Sprintf(`.products-section {
  background: linear-gradient(135deg, #F8FAFC 0%%, #E2E8F0 100%%);
  padding: 100px 24px;
}
.products-grid {
  display: grid;
  grid-template-columns: repeat(auto-fit, minmax(320px, 1fr));
  gap: 32px;
  max-width: 1200px;
  margin: 0 auto;
}
.product-card {
  background: white;
  border-radius: 24px;
  overflow: hidden;
  box-shadow: 0 25px 50px rgba(0,0,0,0.1);
  border: 1px solid rgba(255,255,255,0.8);
}
.product-image {
  width: 100%%;
  height: 240px;
  object-fit: cover;
  background: linear-gradient(135deg, %s, %s);
}
.product-info { padding: 32px; }
.product-name {
  font-size: 1.4rem;
  color: %s;
  margin-bottom: 12px;
  font-weight: 600;
  line-height: 1.3;
}
.product-price {
  font-size: 1.6rem;
  color: %s;
  font-weight: 700;
  margin-bottom: 16px;
}
.product-description {
  color: %s;
  line-height: 1.6;
  font-size: 0.95rem;
}
.product-meta { color: %s; font-size: 0.9rem; margin-top: 12px; font-weight: 500; }
.product-sku { color: %s; font-size: 0.8rem; margin-top: 8px; }
`, palette.CardBg, palette.CardBorder, palette.TextDark, palette.Primary, palette.TextLight, palette.Primary, palette.TextLight))

	buf.WriteString(fmt.Sprintf(`.services-section {
  background: linear-gradient(135deg, #FFFFFF 0%%, #F1F5F9 100%%);
  padding: 100px 24px;
}
.services-grid {
  display: grid;
  grid-template-columns: repeat(auto-fit, minmax(280px, 1fr));
  gap: 32px;
  max-width: 1200px;
  margin: 0 auto;
}
.service-card {
  background: rgba(255,255,255,0.9);
  padding: 40px;
  border-radius: 20px;
  text-align: center;
  box-shadow: 0 20px 40px rgba(0,0,0,0.08);
  border: 1px solid %s;
}
.service-icon { font-size: 3.5rem; margin-bottom: 24px; }
.service-badges {
  display: flex;
  gap: 12px;
  flex-wrap: wrap;
  justify-content: center;
  margin-top: 16px;
}
.service-badge {
  background: rgba(0,0,0,0.05);
  padding: 8px 16px;
  border-radius: 20px;
  font-size: 0.85rem;
  font-weight: 500;
  border: 1px solid %s;
}
.service-text { color: %s; line-height: 1.7; font-size: 0.95rem; }
`, palette.CardBorder, palette.CardBorder, palette.TextLight))

	buf.WriteString(fmt.Sprintf(`.footer {
  background: %s;
  color: white;
  padding: 80px 24px 40px;
  text-align: center;
  position: relative;
  overflow: hidden;
}
.footer-content {
  max-width: 1200px;
  margin: 0 auto;
  display: grid;
  grid-template-columns: repeat(auto-fit, minmax(280px, 1fr));
  gap: 48px;
  margin-bottom: 48px;
}
.footer-section { text-align: left; }
.footer-title {
  font-size: 1.4rem;
  margin-bottom: 24px;
  font-weight: 600;
}
.footer-text {
  opacity: 0.9;
  line-height: 1.7;
  font-size: 0.95rem;
}
.footer-bottom {
  border-top: 1px solid rgba(255,255,255,0.2);
  padding-top: 24px;
  margin-top: 24px;
  opacity: 0.7;
}
@media (max-width: 768px) {
  .about-content, .products-grid, .services-grid, .footer-content {
    grid-template-columns: 1fr;
  }
  .footer-section { text-align: center; }
}
`, palette.HeroBackground))

	return buf.String()
}
