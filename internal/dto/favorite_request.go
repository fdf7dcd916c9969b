package dto

type FavoriteRequest struct {
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	Brand     string  `json:"brand"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"imageUrl"`
}

type FavoriteCountResponse struct {
	Count int `json:"count"`
}
