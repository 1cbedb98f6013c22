package sheets

import "context"

// RangeUpdate es una escritura puntual dentro de un batch.
type RangeUpdate struct {
	Range string // notación A1, ej. "Inventario!D5:E5"
	Rows  [][]string
}

// TabularClient abstrae el servicio de hoja de cálculo como un conjunto de
// rangos A1 legibles y escribibles. El ledger solo conoce esta interfaz; la
// implementación real va contra Google Sheets y los tests usan la de memoria.
type TabularClient interface {
	ReadRange(ctx context.Context, readRange string) ([][]string, error)
	AppendRows(ctx context.Context, writeRange string, rows [][]string) error
	UpdateRange(ctx context.Context, writeRange string, rows [][]string) error
	BatchUpdate(ctx context.Context, updates []RangeUpdate) error
}
