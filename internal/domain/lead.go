package domain

import "time"

// Lead vive en la tabla histórica users2 (captura de email o móvil).
type Lead struct {
	ID            string    `json:"id"`
	EmailOrMobile string    `json:"emailOrMobile"`
	CreatedAt     time.Time `json:"created_at"`
}
