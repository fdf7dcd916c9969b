package domain

// CartItem is one cart line. The product id doubles as the line key, so a
// repeated add accumulates quantity instead of creating a second document.
type CartItem struct {
	UserID    string  `bson:"user_id" json:"-"`
	ProductID string  `bson:"product_id" json:"id"`
	Name      string  `bson:"name" json:"name"`
	ImageURL  string  `bson:"image_url" json:"imageUrl"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	UpdatedAt int64   `bson:"updated_at" json:"-"`
}

// Favorite is an existence record per (user, product).
type Favorite struct {
	UserID    string  `bson:"user_id" json:"-"`
	ProductID string  `bson:"product_id" json:"id"`
	Name      string  `bson:"name" json:"name"`
	Brand     string  `bson:"brand" json:"brand"`
	Price     float64 `bson:"price" json:"price"`
	ImageURL  string  `bson:"image_url" json:"imageUrl"`
	CreatedAt int64   `bson:"created_at" json:"-"`
}
