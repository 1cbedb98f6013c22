package entity

// Tipos de registro (contraparte de un movimiento).
const (
	RegistrationTypeCliente   = "CLIENTE"
	RegistrationTypeProveedor = "PROVEEDOR"
	RegistrationTypeEvento    = "EVENTO"
)

// Registration representa una contraparte: cliente, proveedor o evento.
// Los movimientos guardan una copia de Name y Document al momento de la
// transacción; renombrar un registro no altera el historial.
type Registration struct {
	ID          string // CAD-<ms>
	Type        string
	Name        string
	Document    string
	Contact     string
	Responsible string
	Plate       string
	City        string
	Notes       string
}
