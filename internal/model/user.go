package model

const (
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

type User struct {
	BaseModel
	Name         string `db:"name" json:"name"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"-"`
	Role         string `db:"role" json:"role"`
}
