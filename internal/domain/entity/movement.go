package entity

import (
	"fmt"
	"strings"
	"time"
)

// MovementKind clasifica una transacción. El tipo se decide al crearla y se
// almacena como campo propio; nunca se vuelve a derivar de subcadenas.
type MovementKind string

const (
	KindCompra     MovementKind = "COMPRA"     // entrada por compra
	KindEntrada    MovementKind = "ENTRADA"    // entrada genérica
	KindVenta      MovementKind = "VENTA"      // salida por venta
	KindSalida     MovementKind = "SALIDA"     // salida genérica
	KindDevolucion MovementKind = "DEVOLUCION" // devolución, siempre entrada
)

// Incoming indica si el tipo aumenta el stock. Todo lo que no es entrada, resta.
func (k MovementKind) Incoming() bool {
	switch k {
	case KindCompra, KindEntrada, KindDevolucion:
		return true
	}
	return false
}

// ParseMovementKind valida la pertenencia al enumerado.
func ParseMovementKind(s string) (MovementKind, error) {
	k := MovementKind(strings.ToUpper(strings.TrimSpace(s)))
	switch k {
	case KindCompra, KindEntrada, KindVenta, KindSalida, KindDevolucion:
		return k, nil
	}
	return "", fmt.Errorf("tipo de movimiento desconocido: %q", s)
}

// Formatos de fecha tal como se escriben en el almacenamiento tabular.
// Los ajustes manuales usan un formato distinto al de movimientos/devoluciones.
const (
	MovementTimeLayout   = "02/01/2006, 15:04:05"
	CorrectionTimeLayout = "02/01/2006 15:04"
)

// FormatMovementTime serializa un instante al formato de los registros de movimiento.
func FormatMovementTime(t time.Time) string {
	return t.Format(MovementTimeLayout)
}

// MovementLine es una línea de una transacción registrada en los log de
// movimientos o de devoluciones. Una transacción lógica produce una línea por
// producto, todas con el mismo TransactionID y la misma fecha. Los log son
// solo-anexado: las líneas nunca se modifican ni se borran.
type MovementLine struct {
	TransactionID        string // MOV-<ms> o DEV-<ms>
	Date                 string // MovementTimeLayout
	Kind                 MovementKind
	ProductID            string
	ProductName          string
	RegistrationID       string
	RegistrationName     string // copia de valor al momento de la transacción
	RegistrationDocument string // ídem
	BoxQuantity          int
	UnitQuantity         int
	Notes                string
	Operator             string
	ReturnDue            string // solo entradas con fecha comprometida de devolución
	EventName            string // solo devoluciones: evento de origen
}
