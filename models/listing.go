package models

// Homestay is a featured listing on the homepage.
type Homestay struct {
	ID             int     `json:"id"`
	Title          string  `json:"title"`
	Location       string  `json:"location"`
	Price          int64   `json:"price"`
	FormattedPrice string  `json:"formattedPrice,omitempty"`
	Rating         float64 `json:"rating"`
	Image          string  `json:"image"`
	Category       string  `json:"category"`
}

// Destination is a popular destination tile.
type Destination struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Properties int    `json:"properties"`
	Image      string `json:"image"`
	Size       string `json:"size"` // "large", "medium", "wide"
}
