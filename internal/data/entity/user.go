package entity

type User struct {
	Base
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
	Name         string `db:"name"`
	IsAdmin      bool   `db:"is_admin"`
}
