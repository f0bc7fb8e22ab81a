package models

// Organization represents a campus organization that collects fees
type Organization struct {
	ID            int64  `json:"id" db:"id"`
	Code          string `json:"code" db:"code"` // Unique
	Name          string `json:"name" db:"name"`
	Department    string `json:"department" db:"department"`
	Description   string `json:"description" db:"description"`
	ContactEmail  string `json:"contactEmail" db:"contact_email"`
	ContactPhone  string `json:"contactPhone" db:"contact_phone"`
	BoothLocation string `json:"boothLocation" db:"booth_location"`
}
