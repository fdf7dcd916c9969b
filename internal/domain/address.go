package domain

import "database/sql"

// Address is a saved shipping address for checkout forms.
type Address struct {
	ID           string       `db:"id"`
	UserID       string       `db:"user_id"`
	FullName     string       `db:"full_name"`
	Phone        string       `db:"phone"`
	Department   string       `db:"department"`
	Province     string       `db:"province"`
	District     string       `db:"district"`
	AddressLine  string       `db:"address_line"`
	Reference    string       `db:"reference"`
	IsDefault    bool         `db:"is_default"`
	CreatedAt    int64        `db:"created_at"`
	UpdatedAt    int64        `db:"updated_at"`
	DeletedAt    sql.NullTime `db:"deleted_at"`
}
