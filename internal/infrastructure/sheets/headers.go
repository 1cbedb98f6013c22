package sheets

import "context"

// Tabs nombres de las pestañas del almacenamiento.
type Tabs struct {
	Inventory     string
	Registrations string
	Movements     string
	Returns       string
	Corrections   string
}

// EnsureHeaders escribe la fila de cabecera de cada pestaña. Es idempotente:
// se ejecuta en el arranque para que una hoja (o el cliente en memoria) recién
// creada quede con la estructura esperada por los repositorios.
func EnsureHeaders(ctx context.Context, client TabularClient, tabs Tabs) error {
	headers := []RangeUpdate{
		{Range: tabs.Inventory + "!A1:G1", Rows: [][]string{{
			"ID", "Nombre", "UnidadesPorCaja", "StockCajas", "StockUnidades", "FechaAlta", "UltimaVerificacion",
		}}},
		{Range: tabs.Registrations + "!A1:I1", Rows: [][]string{{
			"ID", "Tipo", "Nombre", "Documento", "Contacto", "Responsable", "Placa", "Ciudad", "Notas",
		}}},
		{Range: tabs.Movements + "!A1:N1", Rows: [][]string{{
			"Transaccion", "Fecha", "Tipo", "ProductoID", "Producto", "RegistroID", "Registro", "Documento",
			"Cajas", "Unidades", "Notas", "Operador", "FechaDevolucion", "Evento",
		}}},
		{Range: tabs.Returns + "!A1:N1", Rows: [][]string{{
			"Transaccion", "Fecha", "Tipo", "ProductoID", "Producto", "RegistroID", "Registro", "Documento",
			"Cajas", "Unidades", "Notas", "Operador", "FechaDevolucion", "Evento",
		}}},
		{Range: tabs.Corrections + "!A1:H1", Rows: [][]string{{
			"Fecha", "ProductoID", "Producto", "CajasAnterior", "UnidadesAnterior", "CajasNueva", "UnidadesNueva", "Operador",
		}}},
	}
	return client.BatchUpdate(ctx, headers)
}
