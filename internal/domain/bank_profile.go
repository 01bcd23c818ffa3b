package domain

import "time"

// BankProfile vive en la tabla histórica users1 (perfil con datos bancarios).
type BankProfile struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	Pincode       string    `json:"pincode"`
	AccountNumber string    `json:"account_number"`
	IFSCCode      string    `json:"ifsc_code"`
	CreatedAt     time.Time `json:"created_at"`
}
