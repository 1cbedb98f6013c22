package entity

// CorrectionEntry registra un ajuste manual de stock. Se identifica por su
// fecha; el stock vigente ya quedó escrito en el producto al momento del
// ajuste, así que estas entradas solo alimentan la auditoría.
type CorrectionEntry struct {
	Date        string // CorrectionTimeLayout
	ProductID   string
	ProductName string
	OldBox      int
	OldUnit     int
	NewBox      int
	NewUnit     int
	Operator    string
}
