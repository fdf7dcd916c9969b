package dto

type LoginResponse struct {
	UserID int64  `json:"user_id"`
	Token  string `json:"token"`
}

type DepartmentResponse struct {
	Name      string   `json:"name"`
	Provinces []string `json:"provinces"`
}

type AddressResponse struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName"`
	Phone       string `json:"phone"`
	Department  string `json:"department"`
	Province    string `json:"province"`
	District    string `json:"district"`
	AddressLine string `json:"addressLine"`
	Reference   string `json:"reference"`
	IsDefault   bool   `json:"isDefault"`
}
