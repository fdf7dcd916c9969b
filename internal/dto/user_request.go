package dto

type UserRequest struct {
	ID       int64  `json:"id"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AddressRequest struct {
	FullName    string `json:"fullName"`
	Phone       string `json:"phone"`
	Department  string `json:"department"`
	Province    string `json:"province"`
	District    string `json:"district"`
	AddressLine string `json:"addressLine"`
	Reference   string `json:"reference"`
	IsDefault   bool   `json:"isDefault"`
}
