package catalog

import "github.com/spec-kit/storefront-service/internal/domain"

// seedProducts returns the fixed storefront catalog. The lineup is small by
// design; pagination and search are out of scope.
func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:             "feather-flag-1",
			Name:           "Custom Feather Flag - Premium",
			Category:       "Feather Flags",
			Description:    "High-quality outdoor feather flag perfect for fireworks businesses. Weather resistant and eye-catching.",
			BasePrice:      89.99,
			WholesalePrice: 69.99,
			ImageURL:       "https://images.pexels.com/photos/9557118/pexels-photo-9557118.jpeg",
			Customizable:   true,
			Sizes:          []string{"Small (8ft)", "Medium (10ft)", "Large (12ft)"},
		},
		{
			ID:             "feather-flag-2",
			Name:           "Custom Feather Flag - Standard",
			Category:       "Feather Flags",
			Description:    "Cost-effective feather flag solution for promotional events and store fronts.",
			BasePrice:      59.99,
			WholesalePrice: 45.99,
			ImageURL:       "https://images.pexels.com/photos/7956683/pexels-photo-7956683.jpeg",
			Customizable:   true,
			Sizes:          []string{"Small (6ft)", "Medium (8ft)", "Large (10ft)"},
		},
		{
			ID:             "custom-banner-1",
			Name:           "Vinyl Banner - Heavy Duty",
			Category:       "Custom Banners",
			Description:    "Durable vinyl banner perfect for outdoor advertising. Customizable with your logo and text.",
			BasePrice:      129.99,
			WholesalePrice: 99.99,
			ImageURL:       "https://images.pexels.com/photos/32275555/pexels-photo-32275555.jpeg",
			Customizable:   true,
			Sizes:          []string{"3x6 ft", "4x8 ft", "6x10 ft", "Custom Size"},
		},
		{
			ID:             "custom-banner-2",
			Name:           "Mesh Banner - Wind Resistant",
			Category:       "Custom Banners",
			Description:    "Wind-resistant mesh banner ideal for windy locations. Great visibility with reduced wind load.",
			BasePrice:      149.99,
			WholesalePrice: 119.99,
			ImageURL:       "https://images.unsplash.com/photo-1533069027836-fa937181a8ce?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDQ2NDJ8MHwxfHNlYXJjaHwxfHxhZHZlcnRpc2luZyUyMGJhbm5lcnN8ZW58MHx8fHwxNzQ4MzY5NDgzfDA&ixlib=rb-4.1.0&q=85",
			Customizable:   true,
			Sizes:          []string{"4x8 ft", "6x10 ft", "8x12 ft"},
		},
		{
			ID:             "no-smoking-sign-1",
			Name:           "No Smoking Sign - Aluminum",
			Category:       "No Smoking Signs",
			Description:    "Professional aluminum no smoking sign. Required for fireworks retail locations.",
			BasePrice:      24.99,
			WholesalePrice: 18.99,
			ImageURL:       "https://images.pexels.com/photos/29517828/pexels-photo-29517828.jpeg",
			Customizable:   false,
			Sizes:          []string{"8x10 inches", "12x16 inches", "18x24 inches"},
		},
		{
			ID:             "no-smoking-sign-2",
			Name:           "No Smoking Sign - Plastic",
			Category:       "No Smoking Signs",
			Description:    "Durable plastic no smoking sign for indoor and outdoor use.",
			BasePrice:      15.99,
			WholesalePrice: 11.99,
			ImageURL:       "https://images.unsplash.com/photo-1494083630901-b3f0cfe59c27?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDk1Nzd8MHwxfHNlYXJjaHwzfHxubyUyMHNtb2tpbmclMjBzaWduc3xlbnwwfHx8fDE3NDgzNjk0Nzh8MA&ixlib=rb-4.1.0&q=85",
			Customizable:   false,
			Sizes:          []string{"6x8 inches", "8x10 inches", "12x16 inches"},
		},
	}
}
