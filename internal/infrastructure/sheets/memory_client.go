package sheets

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

var _ TabularClient = (*MemoryClient)(nil)

// MemoryClient implementación en memoria de TabularClient. Se usa en los tests
// del ledger y como almacenamiento efímero en modo desarrollo, cuando no hay
// hoja de cálculo configurada.
type MemoryClient struct {
	mu   sync.Mutex
	tabs map[string][][]string
}

// NewMemoryClient crea un cliente vacío; las pestañas se crean al escribir.
func NewMemoryClient() *MemoryClient {
	return &MemoryClient{tabs: make(map[string][][]string)}
}

// ReadRange devuelve las celdas del rango, con filas recortadas a la ventana
// de columnas pedida.
func (c *MemoryClient) ReadRange(_ context.Context, readRange string) ([][]string, error) {
	ref, err := parseA1(readRange)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	grid := c.tabs[ref.tab]
	start := ref.startRow
	if start < 1 {
		start = 1
	}
	end := ref.endRow
	if end < 1 || end > len(grid) {
		end = len(grid)
	}
	var out [][]string
	for r := start; r <= end; r++ {
		row := grid[r-1]
		var cells []string
		for col := ref.startCol; col <= ref.endCol && col < len(row); col++ {
			cells = append(cells, row[col])
		}
		out = append(out, cells)
	}
	return out, nil
}

// AppendRows anexa filas al final de la pestaña.
func (c *MemoryClient) AppendRows(_ context.Context, writeRange string, rows [][]string) error {
	ref, err := parseA1(writeRange)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, row := range rows {
		full := make([]string, ref.startCol+len(row))
		copy(full[ref.startCol:], row)
		c.tabs[ref.tab] = append(c.tabs[ref.tab], full)
	}
	return nil
}

// UpdateRange sobreescribe celdas a partir de la esquina superior izquierda
// del rango, creando filas y columnas según haga falta.
func (c *MemoryClient) UpdateRange(_ context.Context, writeRange string, rows [][]string) error {
	ref, err := parseA1(writeRange)
	if err != nil {
		return err
	}
	if ref.startRow < 1 {
		return fmt.Errorf("rango sin fila inicial: %s", writeRange)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	grid := c.tabs[ref.tab]
	for i, row := range rows {
		rowIdx := ref.startRow - 1 + i
		for rowIdx >= len(grid) {
			grid = append(grid, nil)
		}
		width := ref.startCol + len(row)
		if len(grid[rowIdx]) < width {
			widened := make([]string, width)
			copy(widened, grid[rowIdx])
			grid[rowIdx] = widened
		}
		copy(grid[rowIdx][ref.startCol:], row)
	}
	c.tabs[ref.tab] = grid
	return nil
}

// BatchUpdate aplica cada escritura en orden.
func (c *MemoryClient) BatchUpdate(ctx context.Context, updates []RangeUpdate) error {
	for _, u := range updates {
		if err := c.UpdateRange(ctx, u.Range, u.Rows); err != nil {
			return err
		}
	}
	return nil
}

// a1Range es un rango A1 ya interpretado. Fila 0 significa sin límite.
type a1Range struct {
	tab              string
	startCol, endCol int // base 0
	startRow, endRow int // base 1; 0 = sin límite
}

// parseA1 interpreta referencias de las formas usadas por los repositorios:
// "Tab!A2:G", "Tab!A:N", "Tab!D5:E5", "Tab!G5".
func parseA1(ref string) (a1Range, error) {
	tab, rng, ok := strings.Cut(ref, "!")
	if !ok || tab == "" || rng == "" {
		return a1Range{}, fmt.Errorf("rango A1 inválido: %s", ref)
	}
	first, second, hasEnd := strings.Cut(rng, ":")
	startCol, startRow, err := parseCell(first)
	if err != nil {
		return a1Range{}, fmt.Errorf("rango A1 inválido: %s", ref)
	}
	out := a1Range{tab: tab, startCol: startCol, endCol: startCol, startRow: startRow, endRow: startRow}
	if hasEnd {
		endCol, endRow, err := parseCell(second)
		if err != nil {
			return a1Range{}, fmt.Errorf("rango A1 inválido: %s", ref)
		}
		out.endCol = endCol
		out.endRow = endRow
	}
	return out, nil
}

// parseCell separa letras de columna y número de fila ("D5" → 3, 5; "D" → 3, 0).
func parseCell(cell string) (col, row int, err error) {
	i := 0
	for i < len(cell) && cell[i] >= 'A' && cell[i] <= 'Z' {
		col = col*26 + int(cell[i]-'A'+1)
		i++
	}
	if col == 0 {
		return 0, 0, fmt.Errorf("celda inválida: %s", cell)
	}
	col--
	if i < len(cell) {
		row, err = strconv.Atoi(cell[i:])
		if err != nil || row < 1 {
			return 0, 0, fmt.Errorf("celda inválida: %s", cell)
		}
	}
	return col, row, nil
}
