package domain

// Admin es una identidad separada de User, con su propia tabla y credencial.
type Admin struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}
