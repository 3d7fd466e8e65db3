package catalog

// SeedPlans provides the three pricing tiers from the product spec.
func SeedPlans() []Plan {
	return []Plan{
		{
			ID:     "starter",
			Name:   "Starter",
			Price:  "$999",
			Period: "/project",
			Features: []string{
				"Basic website design",
				"Mobile responsive",
				"5 pages included",
				"Basic SEO optimization",
			},
			ButtonText: "Get Started",
		},
		{
			ID:     "business",
			Name:   "Business",
			Price:  "$2,999",
			Period: "/project",
			Features: []string{
				"Advanced web application",
				"Custom functionality",
				"Database integration",
				"6 months support",
			},
			IsPopular:  true,
			ButtonText: "Get Started",
		},
		{
			ID:     "enterprise",
			Name:   "Enterprise",
			Price:  "$9,999",
			Period: "/project",
			Features: []string{
				"Enterprise solution",
				"Unlimited revisions",
				"Dedicated support",
				"Priority development",
			},
			ButtonText: "Contact Sales",
		},
	}
}

// SeedOfferings provides the five service lines with landing pages.
func SeedOfferings() []Offering {
	return []Offering{
		{
			ID:           "web-development",
			Name:         "Web Development",
			Tagline:      "Custom websites and web apps",
			Description:  "Secure, scalable, and fast web experiences built with modern stacks and cloud deployment.",
			Technologies: []string{"React", "Node.js", "Cloud"},
		},
		{
			ID:           "graphic-design",
			Name:         "Graphic Design",
			Tagline:      "Brand identity and UI/UX",
			Description:  "Brand identity, UI/UX, and marketing assets that elevate your visual presence.",
			Technologies: []string{"Figma", "Adobe Creative Suite"},
		},
		{
			ID:           "mobile-development",
			Name:         "Mobile Development",
			Tagline:      "iOS, Android, cross-platform",
			Description:  "Native iOS/Android and cross-platform apps with app-store-ready polish.",
			Technologies: []string{"React Native", "Flutter", "Swift", "Kotlin"},
		},
		{
			ID:           "digital-marketing",
			Name:         "Digital Marketing",
			Tagline:      "SEO, PPC, social, content",
			Description:  "Data-driven SEO, PPC, social media, and content marketing to grow your brand.",
			Technologies: []string{"Google Ads", "Analytics"},
		},
		{
			ID:           "ecommerce-solutions",
			Name:         "E-commerce Solutions",
			Tagline:      "High-converting online stores",
			Description:  "Online stores with secure payments, analytics, and mobile commerce.",
			Technologies: []string{"Shopify", "WooCommerce", "Magento"},
		},
	}
}

// SeedPosts provides the blog teasers shown on the blog index.
func SeedPosts() []Post {
	return []Post{
		{
			Slug:     "future-of-web-development-2024",
			Title:    "The Future of Web Development: Trends to Watch in 2024",
			Excerpt:  "From edge rendering to AI-assisted tooling, the web platform keeps accelerating.",
			Author:   "Sarah Johnson",
			Date:     "2024-03-15",
			Category: "Web Development",
		},
		{
			Slug:     "mobile-app-design-best-practices",
			Title:    "Mobile App Design Best Practices for Better User Experience",
			Excerpt:  "Small screens reward ruthless prioritization. A tour of patterns that convert.",
			Author:   "Mike Chen",
			Date:     "2024-03-10",
			Category: "Mobile Development",
		},
		{
			Slug:     "brand-identity-design",
			Title:    "Brand Identity Design: Creating Memorable Visual Experiences",
			Excerpt:  "Logos are the tip of the iceberg. What actually makes a brand stick.",
			Author:   "John Smith",
			Date:     "2024-03-05",
			Category: "Design",
		},
		{
			Slug:     "optimizing-website-performance",
			Title:    "Optimizing Website Performance: Speed Matters",
			Excerpt:  "Every 100ms of latency costs conversions. Practical wins, measured.",
			Author:   "Sarah Johnson",
			Date:     "2024-02-28",
			Category: "Web Development",
		},
	}
}
