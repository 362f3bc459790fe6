package entity

import "time"

// DraftRow fila del formulario aún no enviada. Guarda el texto tal cual lo escribió el usuario
// para recuperarlo tras recargar la página.
type DraftRow struct {
	ID               string // token único de la fila (UUID)
	Position         int
	ClientTaxID      string
	ProviderTaxID    string
	DocumentType     string
	DocumentNumber   string
	InternalCode     string
	IssueDate        string
	DueDate          string
	ConfirmationDate string
	Amount           string
	Currency         string
	UpdatedAt        time.Time
}
