package entity

// Product representa un producto del inventario.
// El stock se expresa en cajas completas más unidades sueltas; tras cada
// actualización se cumple 0 <= UnitStock < UnitsPerBox (ver internal/domain/ledger).
// UnitsPerBox es fijo desde el alta y siempre mayor que cero.
type Product struct {
	ID           string // PROD-<ms>
	Name         string
	UnitsPerBox  int
	BoxStock     int
	UnitStock    int
	DateAdded    string // tal como se almacena en la hoja: "DD/MM/YYYY, HH:MM:SS"
	LastVerified string // última escritura de stock, mismo formato
}

// TotalUnits devuelve el total de unidades (cajas convertidas más sueltas).
func (p *Product) TotalUnits() int {
	return p.BoxStock*p.UnitsPerBox + p.UnitStock
}
