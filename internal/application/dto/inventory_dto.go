package dto

// CreateProductRequest body para POST /api/stock/inventory.
type CreateProductRequest struct {
	ProductName string `json:"productName"`
	UnitsPerBox int    `json:"unitsPerBox"`
	BoxStock    int    `json:"boxStock,omitempty"`
	UnitStock   int    `json:"unitStock,omitempty"`
}

// InventoryItem fila de GET /api/stock/inventory (orden por nombre de producto).
type InventoryItem struct {
	ProductID    string `json:"productId"`
	ProductName  string `json:"productName"`
	UnitsPerBox  int    `json:"unitsPerBox"`
	BoxStock     int    `json:"boxStock"`
	UnitStock    int    `json:"unitStock"`
	DateAdded    string `json:"dateAdded"`
	LastVerified string `json:"lastVerified"`
}

// CorrectStockRequest body para POST /api/stock/inventory/update.
type CorrectStockRequest struct {
	ProductID    string `json:"productId"`
	NewBoxStock  int    `json:"newBoxStock"`
	NewUnitStock int    `json:"newUnitStock"`
	OperatorName string `json:"operatorName"`
}

// MovementProduct línea de producto dentro de una transacción.
type MovementProduct struct {
	ProductID    string `json:"productId"`
	BoxQuantity  int    `json:"boxQuantity"`
	UnitQuantity int    `json:"unitQuantity"`
}

// MovementRequest body para POST /api/stock/movements.
type MovementRequest struct {
	Type           string            `json:"type"`
	RegistrationID string            `json:"registrationId"`
	Notes          string            `json:"notes"`
	OperatorName   string            `json:"operatorName"`
	Products       []MovementProduct `json:"products"`
	ReturnDate     string            `json:"returnDate,omitempty"`
}

// ReturnRequest body para POST /api/stock/returns.
type ReturnRequest struct {
	RegistrationID string            `json:"registrationId,omitempty"`
	EventID        string            `json:"eventId,omitempty"`
	EventName      string            `json:"eventName"`
	Notes          string            `json:"notes"`
	OperatorName   string            `json:"operatorName"`
	Products       []MovementProduct `json:"products"`
}

// TransactionLine línea enriquecida de una transacción (con UnitsPerBox para
// presentación).
type TransactionLine struct {
	ProductID    string `json:"productId"`
	ProductName  string `json:"productName"`
	BoxQuantity  int    `json:"boxQuantity"`
	UnitQuantity int    `json:"unitQuantity"`
	UnitsPerBox  int    `json:"unitsPerBox"`
}

// TransactionDetail resumen de una transacción: cabecera de la primera línea
// más las líneas enriquecidas.
type TransactionDetail struct {
	ID                   string            `json:"id"`
	Date                 string            `json:"date"`
	Type                 string            `json:"type"`
	RegistrationID       string            `json:"registrationId,omitempty"`
	RegistrationName     string            `json:"registrationName,omitempty"`
	RegistrationDocument string            `json:"registrationDocument,omitempty"`
	Notes                string            `json:"notes,omitempty"`
	Operator             string            `json:"operator"`
	ReturnDate           string            `json:"returnDate,omitempty"`
	EventName            string            `json:"eventName,omitempty"`
	Lines                []TransactionLine `json:"lines"`
}

// AuditRow fila de la auditoría unificada (movimientos, devoluciones y ajustes,
// más reciente primero).
type AuditRow struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	Type         string `json:"type"`
	ProductName  string `json:"productName"`
	Description  string `json:"description"` // contraparte o detalle sintetizado del ajuste
	BoxQuantity  int    `json:"boxQuantity"`
	UnitQuantity int    `json:"unitQuantity"`
	Operator     string `json:"operator"`
}
