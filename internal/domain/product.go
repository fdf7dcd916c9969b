package domain

type Product struct {
	ID          string   `bson:"_id,omitempty" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Brand       string   `bson:"brand" json:"brand"`
	Price       float64  `bson:"price" json:"price"`
	Rating      float32  `bson:"rating" json:"rating"`
	Stock       int      `bson:"stock" json:"stock"`
	ImageURLs   []string `bson:"image_urls" json:"imageUrls"`
	Description string   `bson:"description" json:"description"`
	CategoryID  string   `bson:"category_id" json:"categoryId"`
	CreatedAt   int64    `bson:"created_at" json:"-"`
	UpdatedAt   int64    `bson:"updated_at" json:"-"`
}

// ImageURL returns the primary image, first of the list.
func (p Product) ImageURL() string {
	if len(p.ImageURLs) > 0 {
		return p.ImageURLs[0]
	}
	return ""
}

type Category struct {
	ID        string `bson:"_id,omitempty" json:"id"`
	Name      string `bson:"name" json:"name"`
	ItemCount int    `bson:"item_count" json:"itemCount"`
	IconURL   string `bson:"icon_url" json:"iconUrl"`
}
