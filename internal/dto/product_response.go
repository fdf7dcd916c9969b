package dto

type ProductResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Price       float64  `json:"price"`
	Rating      float32  `json:"rating"`
	Stock       int      `json:"stock"`
	ImageURLs   []string `json:"imageUrls"`
	Description string   `json:"description"`
	CategoryID  string   `json:"categoryId"`
	IsFavorite  bool     `json:"isFavorite"`
}

type CategoryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ItemCount int    `json:"itemCount"`
	IconURL   string `json:"iconUrl"`
}

type ProductRequest struct {
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	ImageURLs   []string `json:"imageUrls"`
	Description string   `json:"description"`
	CategoryID  string   `json:"categoryId"`
}
