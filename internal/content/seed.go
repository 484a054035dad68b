package content

// Seed data used whenever a collection has no stored snapshot yet. The site
// is fully usable on first boot and every record can be edited or removed
// from the back office afterwards.

// SeedSettings returns the default site settings.
func SeedSettings() SiteSettings {
	return SiteSettings{
		WhatsApp:        "916382488657",
		Email:           "sales@windseal.example",
		Facebook:        "https://facebook.com/windseal",
		HeadOfficePhone: "+91 81224 76567",
		BranchOnePhone:  "+91 63817 78251",
		BranchTwoPhone:  "+91 86674 59835",
		AdminPhone:      "+91 63824 88657",
		HeroBanners: []string{
			"https://images.unsplash.com/photo-1533090161767-e6ffed986c88?auto=format&fit=crop&q=80&w=1920",
			"https://images.unsplash.com/photo-1505691938895-1758d7eaa511?auto=format&fit=crop&q=80&w=1920",
		},
		AboutText: "We, Windseal Hardwares, are a leading ISO 9001:2015 certified uPVC " +
			"hardware provider with a complete range of uPVC hardware, tools and " +
			"accessories, offering integrated solutions for uPVC windows and doors.",
		AboutImage: "https://images.unsplash.com/photo-1581094794329-c8112a89af12?auto=format&fit=crop&q=80&w=800",
		AboutTextSecondary: "Over the past few years we have grown our range of uPVC products " +
			"and started our own manufacturing of uPVC and aluminum windows and doors. " +
			"A dedicated dispatch team gives our clients the best and fastest delivery, " +
			"and more than 1000 clients across the country purchase from us in bulk.",
		AboutImageSecondary: "https://images.unsplash.com/photo-1516455590571-18256e5bb9ff?auto=format&fit=crop&q=80&w=800",
		StrengthImage:       "https://images.unsplash.com/photo-1522071820081-009f0129c71c?auto=format&fit=crop&q=80&w=800",
		ContactImage:        "https://images.unsplash.com/photo-1534536281715-e28d76689b4d?auto=format&fit=crop&q=80&w=800",
		HeaderLogo:          "", // empty means the templates render the default mark
		FooterLogo:          "",
		PoweredByLogo:       "https://via.placeholder.com/120x40?text=POWERED+BY",
		Strengths: []StrengthItem{
			{ID: "1", IconName: "Heart", Text: "Generosity in the market."},
			{ID: "2", IconName: "ShieldCheck", Text: "Ethical business dealings."},
			{ID: "3", IconName: "Users", Text: "A competent team for delivery."},
			{ID: "4", IconName: "Globe", Text: "Wide range of network distribution."},
			{ID: "5", IconName: "BadgePercent", Text: "Most competitive pricing."},
		},
	}
}

// SeedCategories returns the default product categories.
func SeedCategories() []Category {
	return []Category{
		{ID: "1", Name: "Handle", Image: "https://picsum.photos/seed/handle/400/300"},
		{ID: "2", Name: "Sliding Folding", Image: "https://picsum.photos/seed/sliding/400/300"},
		{ID: "3", Name: "Tilt & Turn", Image: "https://picsum.photos/seed/tilt/400/300"},
		{ID: "4", Name: "Wonder Series", Image: "https://picsum.photos/seed/wonder/400/300"},
		{ID: "5", Name: "Vertical Sliding", Image: "https://picsum.photos/seed/vertical/400/300"},
		{ID: "6", Name: "Hinges", Image: "https://picsum.photos/seed/hinges/400/300"},
		{ID: "7", Name: "Rollers", Image: "https://picsum.photos/seed/rollers/400/300"},
		{ID: "8", Name: "Friction Stay", Image: "https://picsum.photos/seed/friction/400/300"},
		{ID: "9", Name: "Door Sets", Image: "https://picsum.photos/seed/doorsets/400/300"},
	}
}

// SeedProducts returns the default products.
func SeedProducts() []Product {
	return []Product{
		{
			ID:         "p1",
			CategoryID: "7",
			Name:       "Mesh Roller Steel Frame 7.5MM/10MM",
			Description: "A high quality and durable roller designed to enhance the " +
				"performance of uPVC windows and doors. Crafted with precision, these " +
				"rollers are an essential component for smooth and effortless movement.",
			Images: []string{
				"https://picsum.photos/seed/p1-1/600/400",
				"https://picsum.photos/seed/p1-2/600/400",
			},
		},
		{
			ID:          "p2",
			CategoryID:  "7",
			Name:        "Standard Mesh Roller",
			Description: "A durable mesh roller for standard window configurations.",
			Images:      []string{"https://picsum.photos/seed/p2/600/400"},
		},
		{
			ID:          "p3",
			CategoryID:  "1",
			Name:        "Silver Curve Handle",
			Description: "Elegant silver finish handle with ergonomic grip.",
			Images:      []string{"https://picsum.photos/seed/p3/600/400"},
		},
	}
}

// SeedCatalogs returns the default catalogs.
func SeedCatalogs() []Catalog {
	return []Catalog{
		{ID: "c1", Name: "Windseal Hardwares", Image: "https://picsum.photos/seed/cat1/300/400", FileURL: "#"},
		{ID: "c2", Name: "uPVC Windows & Doors", Image: "https://picsum.photos/seed/cat2/300/400", FileURL: "#"},
		{ID: "c3", Name: "Technical Manual", Image: "https://picsum.photos/seed/cat3/300/400", FileURL: "#"},
	}
}

// SeedTestimonials returns the default testimonials.
func SeedTestimonials() []Testimonial {
	return []Testimonial{
		{
			ID:      "t1",
			Name:    "John Doe",
			Company: "SomeCompany LLC.",
			Content: "Windseal is the best uPVC hardware seller for doors and windows. " +
				"We got an instant response and quick delivery.",
			Avatar: "https://i.pravatar.cc/150?u=john",
		},
		{
			ID:      "t2",
			Name:    "Jane Doe",
			Company: "BuildFast Corp.",
			Content: "Excellent delivery on time. All the best, keep it up. " +
				"We love to shop with you.",
			Avatar: "https://i.pravatar.cc/150?u=jane",
		},
	}
}

// SeedGallery returns the default gallery images.
func SeedGallery() []GalleryImage {
	return []GalleryImage{
		{ID: "g1", URL: "https://picsum.photos/seed/gal1/800/600", Caption: "Installation View 1"},
		{ID: "g2", URL: "https://picsum.photos/seed/gal2/800/600", Caption: "Premium Hardware Display"},
		{ID: "g3", URL: "https://picsum.photos/seed/gal3/800/600", Caption: "Showroom Interior"},
		{ID: "g4", URL: "https://picsum.photos/seed/gal4/800/600", Caption: "Testing Unit"},
		{ID: "g5", URL: "https://picsum.photos/seed/gal5/800/600", Caption: "Packaging Area"},
		{ID: "g6", URL: "https://picsum.photos/seed/gal6/800/600", Caption: "Warehouse Stock"},
	}
}
