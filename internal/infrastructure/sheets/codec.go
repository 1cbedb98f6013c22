package sheets

import "strconv"

// cell devuelve la celda i de una fila tolerando filas cortas (la API de
// valores recorta las celdas vacías del final).
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// intCell interpreta la celda como entero; vacío o ilegible vale 0.
func intCell(row []string, i int) int {
	n, _ := strconv.Atoi(cell(row, i))
	return n
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
