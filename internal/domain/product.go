package domain

// Product is a static catalog entry. Products are seeded at startup and
// never written.
type Product struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Description    string   `json:"description"`
	BasePrice      float64  `json:"base_price"`
	WholesalePrice float64  `json:"wholesale_price"`
	ImageURL       string   `json:"image_url"`
	Customizable   bool     `json:"customizable"`
	Sizes          []string `json:"sizes"`
}
