package dto

type CartItemRequest struct {
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	ImageURL  string  `json:"imageUrl"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CartItemResponse struct {
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	ImageURL  string  `json:"imageUrl"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type CartCountResponse struct {
	Count int `json:"count"`
}
