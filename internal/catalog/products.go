package catalog

import "github.com/giannis-supplies/storefront/internal/models"

var defaultProducts = []models.Product{
	{
		ID:          1,
		Name:        "Professional Hair Clipper Pro X1",
		Price:       89.99,
		Category:    "clippers",
		Description: "High-performance cordless clipper with ceramic blades",
		Icon:        "✂️",
		Image:       "images/products/clipper-1.jpg",
	},
	{
		ID:          2,
		Name:        "Premium Pomade - Strong Hold",
		Price:       24.99,
		Category:    "styling",
		Description: "Water-based pomade with natural shine",
		Icon:        "💈",
		Image:       "images/products/pomade-1.jpg",
	},
	{
		ID:          3,
		Name:        "Straight Razor Kit",
		Price:       45.50,
		Category:    "shaving",
		Description: "Professional straight razor with leather strop",
		Icon:        "🪒",
		Image:       "images/products/razor-1.jpg",
	},
	{
		ID:          4,
		Name:        "Carbon Fiber Cutting Comb Set",
		Price:       19.99,
		Category:    "combs",
		Description: "Heat-resistant professional combs (5-piece set)",
		Icon:        "🪮",
		Image:       "images/products/comb-1.jpg",
	},
	{
		ID:          5,
		Name:        "Beard Trimmer Elite",
		Price:       69.99,
		Category:    "clippers",
		Description: "Precision beard trimmer with 20 length settings",
		Icon:        "✂️",
		Image:       "images/products/trimmer-1.jpg",
	},
	{
		ID:          6,
		Name:        "Styling Clay - Matte Finish",
		Price:       22.99,
		Category:    "styling",
		Description: "Strong hold clay for textured styles",
		Icon:        "💈",
		Image:       "images/products/clay-1.jpg",
	},
	{
		ID:          7,
		Name:        "Luxury Shaving Cream",
		Price:       18.50,
		Category:    "shaving",
		Description: "Rich lather shaving cream with aloe vera",
		Icon:        "🪒",
		Image:       "images/products/cream-1.jpg",
	},
	{
		ID:          8,
		Name:        "Boar Bristle Brush",
		Price:       29.99,
		Category:    "combs",
		Description: "Natural boar bristle for shine and health",
		Icon:        "🪮",
		Image:       "images/products/brush-1.jpg",
	},
}
