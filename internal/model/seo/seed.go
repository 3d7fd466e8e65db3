package seo

// DefaultImage is the Open Graph image used when an entry supplies none.
const DefaultImage = "/og-default.jpg"

// Seed returns the route metadata table for the Design Dynasty site.
// Exactly one entry carries path "/" and doubles as the fallback.
func Seed() []PageMeta {
	return []PageMeta{
		{
			Path:        "/",
			Title:       "Design Dynasty | Web, Mobile, and Design Solutions",
			Description: "Full-service agency delivering websites, mobile apps, and brand design that grow your business.",
			Keywords:    []string{"web development", "mobile apps", "graphic design", "digital agency", "Design Dynasty"},
			Image:       DefaultImage,
			Type:        TypeWebsite,
		},
		{
			Path:        "/about",
			Title:       "About Design Dynasty | Team, Mission, Experience",
			Description: "Meet Design Dynasty: our mission, values, and experienced team delivering exceptional digital solutions.",
			Keywords:    []string{"about", "agency", "team", "mission", "experience"},
			Image:       DefaultImage,
			Type:        TypeWebsite,
		},
		{
			Path:        "/services",
			Title:       "Services | Web Development, Mobile, Design, Marketing",
			Description: "Comprehensive services: web development, mobile apps, graphic design, digital marketing, e-commerce.",
			Keywords:    []string{"services", "web", "mobile", "design", "marketing", "ecommerce"},
			Image:       DefaultImage,
			Type:        TypeService,
		},
		{
			Path:        "/services/web-development",
			Title:       "Web Development Services | React, Node.js, Cloud",
			Description: "Custom websites and web apps using React, Node.js, and cloud. Secure, scalable, and fast.",
			Keywords:    []string{"web development", "react", "node.js", "frontend", "backend"},
			Image:       DefaultImage,
			Type:        TypeService,
		},
		{
			Path:        "/services/graphic-design",
			Title:       "Graphic Design Services | Brand Identity, UI/UX",
			Description: "Brand identity, UI/UX, and marketing assets that elevate your visual presence.",
			Keywords:    []string{"graphic design", "brand identity", "ui ux", "visual design"},
			Image:       DefaultImage,
			Type:        TypeService,
		},
		{
			Path:        "/services/mobile-development",
			Title:       "Mobile App Development | iOS, Android, Cross-Platform",
			Description: "Native iOS/Android and cross-platform apps built with React Native and Flutter.",
			Keywords:    []string{"mobile development", "react native", "flutter", "ios", "android"},
			Image:       DefaultImage,
			Type:        TypeService,
		},
		{
			Path:        "/services/digital-marketing",
			Title:       "Digital Marketing | SEO, PPC, Social, Content",
			Description: "Data-driven SEO, PPC, social media, and content marketing to grow your brand.",
			Keywords:    []string{"digital marketing", "seo", "ppc", "social media", "content marketing"},
			Image:       DefaultImage,
			Type:        TypeService,
		},
		{
			Path:        "/services/ecommerce-solutions",
			Title:       "E-commerce Solutions | Shopify, WooCommerce, Magento",
			Description: "High-converting online stores with secure payments, analytics, and mobile commerce.",
			Keywords:    []string{"ecommerce", "shopify", "woocommerce", "magento", "online store"},
			Image:       DefaultImage,
			Type:        TypeService,
		},
		{
			Path:        "/pricing",
			Title:       "Pricing Plans | Transparent Web & App Development Pricing",
			Description: "Starter, Business, and Enterprise plans for websites and apps. Clear, transparent pricing.",
			Keywords:    []string{"pricing", "plans", "cost", "web development pricing", "app development pricing"},
			Image:       DefaultImage,
			Type:        TypeProduct,
		},
		{
			Path:        "/blog",
			Title:       "Blog & Insights | Web, Mobile, and Design Trends",
			Description: "Latest insights on web development, mobile apps, and design from our expert team.",
			Keywords:    []string{"blog", "insights", "web development trends", "mobile", "design"},
			Image:       DefaultImage,
			Type:        TypeArticle,
		},
		{
			Path:        "/contact",
			Title:       "Contact Design Dynasty | Free Consultation & Quotes",
			Description: "Get in touch for a free consultation about web, mobile, or design projects.",
			Keywords:    []string{"contact", "quote", "consultation", "get in touch"},
			Image:       DefaultImage,
			Type:        TypeWebsite,
		},
		{
			Path:        "/privacy-policy",
			Title:       "Privacy Policy | Design Dynasty",
			Description: "Read how we collect, use, and protect your information.",
			Keywords:    []string{"privacy policy", "data protection", "gdpr"},
			Image:       DefaultImage,
			Type:        TypeWebsite,
		},
	}
}
