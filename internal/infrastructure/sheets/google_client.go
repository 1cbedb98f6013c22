package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
)

var _ TabularClient = (*GoogleClient)(nil)

// GoogleClient implementación de TabularClient sobre la API de Google Sheets.
// Toda la hoja de cálculo funciona como el almacenamiento del ledger: una
// pestaña mutable de inventario y pestañas solo-anexado para los log.
type GoogleClient struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewGoogleClient crea el servicio con credenciales de cuenta de servicio.
func NewGoogleClient(ctx context.Context, spreadsheetID, credentialsFile string) (*GoogleClient, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("crear servicio sheets: %w", err)
	}
	return &GoogleClient{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// ReadRange lee un rango y devuelve las celdas como texto.
func (c *GoogleClient) ReadRange(ctx context.Context, readRange string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: leer %s: %v", domain.ErrUpstream, readRange, err)
	}
	return fromValues(resp.Values), nil
}

// AppendRows anexa filas al final del rango.
func (c *GoogleClient) AppendRows(ctx context.Context, writeRange string, rows [][]string) error {
	vr := &sheets.ValueRange{Values: toValues(rows)}
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, writeRange, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: anexar en %s: %v", domain.ErrUpstream, writeRange, err)
	}
	return nil
}

// UpdateRange sobreescribe un rango.
func (c *GoogleClient) UpdateRange(ctx context.Context, writeRange string, rows [][]string) error {
	vr := &sheets.ValueRange{Values: toValues(rows)}
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, writeRange, vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: actualizar %s: %v", domain.ErrUpstream, writeRange, err)
	}
	return nil
}

// BatchUpdate aplica varias escrituras en una sola llamada al servicio.
func (c *GoogleClient) BatchUpdate(ctx context.Context, updates []RangeUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	data := make([]*sheets.ValueRange, 0, len(updates))
	for _, u := range updates {
		data = append(data, &sheets.ValueRange{Range: u.Range, Values: toValues(u.Rows)})
	}
	req := &sheets.BatchUpdateValuesRequest{
		ValueInputOption: "RAW",
		Data:             data,
	}
	_, err := c.svc.Spreadsheets.Values.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: batch update: %v", domain.ErrUpstream, err)
	}
	return nil
}

func toValues(rows [][]string) [][]interface{} {
	out := make([][]interface{}, len(rows))
	for i, row := range rows {
		out[i] = make([]interface{}, len(row))
		for j, cell := range row {
			out[i][j] = cell
		}
	}
	return out
}

func fromValues(values [][]interface{}) [][]string {
	out := make([][]string, len(values))
	for i, row := range values {
		out[i] = make([]string, len(row))
		for j, cell := range row {
			out[i][j] = fmt.Sprint(cell)
		}
	}
	return out
}
