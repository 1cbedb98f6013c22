package ledger

import (
	"fmt"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
)

// Apply aplica un delta de unidades (positivo entrada, negativo salida) sobre
// el stock actual de un producto y devuelve el nuevo par (cajas, unidades)
// normalizado: el excedente de unidades se acarrea a cajas y el faltante se
// toma prestado de cajas hasta que 0 <= unidades < unitsPerBox.
// El total resultante siempre es stockAnterior + delta.
func Apply(boxStock, unitStock, unitsPerBox, delta int) (int, int, error) {
	if unitsPerBox <= 0 {
		return 0, 0, fmt.Errorf("%w: %d", domain.ErrInvalidUnitsPerBox, unitsPerBox)
	}
	total := boxStock*unitsPerBox + unitStock + delta
	if total < 0 {
		return 0, 0, domain.ErrInsufficientStock
	}
	return total / unitsPerBox, total % unitsPerBox, nil
}

// LineDelta convierte las cantidades de una línea (cajas, unidades) en un
// delta con signo según la dirección del movimiento.
func LineDelta(incoming bool, boxQty, unitQty, unitsPerBox int) int {
	delta := boxQty*unitsPerBox + unitQty
	if !incoming {
		return -delta
	}
	return delta
}
