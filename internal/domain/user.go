package domain

import "database/sql"

type User struct {
	ID             int64        `db:"id"`
	Name           string       `db:"name"`
	Email          string       `db:"email"`
	HashedPassword string       `db:"hashed_password"`
	ExternalID     string       `db:"external_id"`
	CreatedAt      int64        `db:"created_at"`
	UpdatedAt      int64        `db:"updated_at"`
	DeletedAt      sql.NullTime `db:"deleted_at"`
}
