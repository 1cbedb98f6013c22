package inventory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/ledger"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// UseCase agrupa las operaciones del libro de inventario: alta y listado de
// productos, ajustes manuales y transacciones multilínea (entradas, salidas y
// devoluciones) con política validar-luego-escribir.
//
// El almacenamiento remoto no ofrece transacciones ni compare-and-swap, así
// que el mutex serializa cada ciclo leer-modificar-escribir: dos transacciones
// concurrentes sobre el mismo producto nunca se pisan la actualización.
type UseCase struct {
	mu            sync.Mutex
	products      repository.ProductRepository
	registrations repository.RegistrationRepository
	movements     repository.MovementLogRepository
	returns       repository.MovementLogRepository
	corrections   repository.CorrectionLogRepository
}

// NewUseCase construye el caso de uso del ledger.
func NewUseCase(
	products repository.ProductRepository,
	registrations repository.RegistrationRepository,
	movements repository.MovementLogRepository,
	returns repository.MovementLogRepository,
	corrections repository.CorrectionLogRepository,
) *UseCase {
	return &UseCase{
		products:      products,
		registrations: registrations,
		movements:     movements,
		returns:       returns,
		corrections:   corrections,
	}
}

// RegisterProduct da de alta un producto con su stock inicial normalizado.
func (uc *UseCase) RegisterProduct(ctx context.Context, in dto.CreateProductRequest) (*entity.Product, error) {
	name := strings.TrimSpace(in.ProductName)
	if name == "" {
		return nil, fmt.Errorf("%w: productName requerido", domain.ErrInvalidInput)
	}
	if in.UnitsPerBox <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidUnitsPerBox, in.UnitsPerBox)
	}
	if in.BoxStock < 0 || in.UnitStock < 0 {
		return nil, fmt.Errorf("%w: stock inicial negativo", domain.ErrInvalidInput)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	existing, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range existing {
		if strings.EqualFold(p.Name, name) {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicate, name)
		}
	}

	// El stock inicial puede llegar sin normalizar (p. ej. 30 unidades con
	// cajas de 12): se acarrea antes de persistir.
	box, unit, err := ledger.Apply(in.BoxStock, in.UnitStock, in.UnitsPerBox, 0)
	if err != nil {
		return nil, err
	}

	now := entity.FormatMovementTime(time.Now())
	product := &entity.Product{
		ID:           entity.NewID(entity.PrefixProduct),
		Name:         name,
		UnitsPerBox:  in.UnitsPerBox,
		BoxStock:     box,
		UnitStock:    unit,
		DateAdded:    now,
		LastVerified: now,
	}
	if err := uc.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// ListInventory devuelve el stock actual ordenado por nombre de producto.
func (uc *UseCase) ListInventory(ctx context.Context) ([]dto.InventoryItem, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(products, func(i, j int) bool {
		return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
	})
	out := make([]dto.InventoryItem, 0, len(products))
	for _, p := range products {
		out = append(out, dto.InventoryItem{
			ProductID:    p.ID,
			ProductName:  p.Name,
			UnitsPerBox:  p.UnitsPerBox,
			BoxStock:     p.BoxStock,
			UnitStock:    p.UnitStock,
			DateAdded:    p.DateAdded,
			LastVerified: p.LastVerified,
		})
	}
	return out, nil
}

// CorrectStock sobreescribe manualmente el stock de un producto y anexa la
// entrada de auditoría con los valores anterior y nuevo.
func (uc *UseCase) CorrectStock(ctx context.Context, in dto.CorrectStockRequest) error {
	if in.ProductID == "" || strings.TrimSpace(in.OperatorName) == "" {
		return fmt.Errorf("%w: productId y operatorName requeridos", domain.ErrInvalidInput)
	}
	if in.NewBoxStock < 0 || in.NewUnitStock < 0 {
		return fmt.Errorf("%w: stock negativo", domain.ErrInvalidInput)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	product, err := uc.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("%w: %s", domain.ErrProductNotFound, in.ProductID)
	}

	box, unit, err := ledger.Apply(in.NewBoxStock, in.NewUnitStock, product.UnitsPerBox, 0)
	if err != nil {
		return err
	}

	now := time.Now()
	update := repository.StockUpdate{
		ProductID:    product.ID,
		BoxStock:     box,
		UnitStock:    unit,
		LastVerified: entity.FormatMovementTime(now),
	}
	if err := uc.products.UpdateStock(ctx, []repository.StockUpdate{update}); err != nil {
		return err
	}
	entry := &entity.CorrectionEntry{
		Date:        now.Format(entity.CorrectionTimeLayout),
		ProductID:   product.ID,
		ProductName: product.Name,
		OldBox:      product.BoxStock,
		OldUnit:     product.UnitStock,
		NewBox:      box,
		NewUnit:     unit,
		Operator:    in.OperatorName,
	}
	return uc.corrections.Append(ctx, entry)
}

// RegisterMovement aplica una transacción multilínea de entrada o salida.
// Las devoluciones tienen su propia operación (RegisterReturn).
func (uc *UseCase) RegisterMovement(ctx context.Context, in dto.MovementRequest) (*dto.TransactionDetail, error) {
	kind, err := entity.ParseMovementKind(in.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if kind == entity.KindDevolucion {
		return nil, fmt.Errorf("%w: las devoluciones se registran por su propia ruta", domain.ErrInvalidInput)
	}
	if in.ReturnDate != "" && !kind.Incoming() {
		return nil, fmt.Errorf("%w: returnDate solo aplica a entradas", domain.ErrInvalidInput)
	}
	if err := validateLines(in.OperatorName, in.Products); err != nil {
		return nil, err
	}
	if in.RegistrationID == "" {
		return nil, fmt.Errorf("%w: registrationId requerido", domain.ErrInvalidInput)
	}
	reg, err := uc.registrations.GetByID(ctx, in.RegistrationID)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrRegistrationNotFound, in.RegistrationID)
	}
	return uc.commit(ctx, kind, entity.PrefixMovement, uc.movements, reg,
		"", in.ReturnDate, in.Notes, in.OperatorName, in.Products)
}

// RegisterReturn aplica una transacción de devolución (siempre suma stock),
// etiquetada con el evento de origen.
func (uc *UseCase) RegisterReturn(ctx context.Context, in dto.ReturnRequest) (*dto.TransactionDetail, error) {
	if strings.TrimSpace(in.EventName) == "" {
		return nil, fmt.Errorf("%w: eventName requerido", domain.ErrInvalidInput)
	}
	if err := validateLines(in.OperatorName, in.Products); err != nil {
		return nil, err
	}
	var reg *entity.Registration
	if in.RegistrationID != "" {
		var err error
		reg, err = uc.registrations.GetByID(ctx, in.RegistrationID)
		if err != nil {
			return nil, err
		}
		if reg == nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrRegistrationNotFound, in.RegistrationID)
		}
	}
	return uc.commit(ctx, entity.KindDevolucion, entity.PrefixReturn, uc.returns, reg,
		in.EventName, "", in.Notes, in.OperatorName, in.Products)
}

func validateLines(operator string, lines []dto.MovementProduct) error {
	if strings.TrimSpace(operator) == "" {
		return fmt.Errorf("%w: operatorName requerido", domain.ErrInvalidInput)
	}
	if len(lines) == 0 {
		return fmt.Errorf("%w: la transacción no tiene líneas", domain.ErrInvalidInput)
	}
	for _, l := range lines {
		if l.ProductID == "" {
			return fmt.Errorf("%w: línea sin productId", domain.ErrInvalidInput)
		}
		if l.BoxQuantity < 0 || l.UnitQuantity < 0 {
			return fmt.Errorf("%w: cantidades negativas", domain.ErrInvalidInput)
		}
		if l.BoxQuantity == 0 && l.UnitQuantity == 0 {
			return fmt.Errorf("%w: línea sin cantidad", domain.ErrInvalidInput)
		}
	}
	return nil
}

// commit resuelve y normaliza todas las líneas en memoria y solo entonces
// persiste: una escritura batch con el stock final por producto más una fila
// de log por línea. Si cualquier línea falla, no se emite ninguna escritura.
// Líneas sucesivas sobre el mismo producto componen contra el estado en vuelo,
// no contra la lectura inicial.
func (uc *UseCase) commit(
	ctx context.Context,
	kind entity.MovementKind,
	idPrefix string,
	logRepo repository.MovementLogRepository,
	reg *entity.Registration,
	eventName, returnDue, notes, operator string,
	lines []dto.MovementProduct,
) (*dto.TransactionDetail, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	all, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Product, len(all))
	for _, p := range all {
		byID[p.ID] = p
	}

	var touched []string
	for _, l := range lines {
		p, ok := byID[l.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, l.ProductID)
		}
		delta := ledger.LineDelta(kind.Incoming(), l.BoxQuantity, l.UnitQuantity, p.UnitsPerBox)
		box, unit, err := ledger.Apply(p.BoxStock, p.UnitStock, p.UnitsPerBox, delta)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", err, p.Name)
		}
		if !contains(touched, p.ID) {
			touched = append(touched, p.ID)
		}
		p.BoxStock, p.UnitStock = box, unit
	}

	txID := entity.NewID(idPrefix)
	stamp := entity.FormatMovementTime(time.Now())

	updates := make([]repository.StockUpdate, 0, len(touched))
	for _, id := range touched {
		p := byID[id]
		updates = append(updates, repository.StockUpdate{
			ProductID:    p.ID,
			BoxStock:     p.BoxStock,
			UnitStock:    p.UnitStock,
			LastVerified: stamp,
		})
	}

	regID, regName, regDoc := "", "", ""
	if reg != nil {
		regID, regName, regDoc = reg.ID, reg.Name, reg.Document
	}

	logLines := make([]*entity.MovementLine, 0, len(lines))
	detailLines := make([]dto.TransactionLine, 0, len(lines))
	for _, l := range lines {
		p := byID[l.ProductID]
		logLines = append(logLines, &entity.MovementLine{
			TransactionID:        txID,
			Date:                 stamp,
			Kind:                 kind,
			ProductID:            p.ID,
			ProductName:          p.Name,
			RegistrationID:       regID,
			RegistrationName:     regName,
			RegistrationDocument: regDoc,
			BoxQuantity:          l.BoxQuantity,
			UnitQuantity:         l.UnitQuantity,
			Notes:                notes,
			Operator:             operator,
			ReturnDue:            returnDue,
			EventName:            eventName,
		})
		detailLines = append(detailLines, dto.TransactionLine{
			ProductID:    p.ID,
			ProductName:  p.Name,
			BoxQuantity:  l.BoxQuantity,
			UnitQuantity: l.UnitQuantity,
			UnitsPerBox:  p.UnitsPerBox,
		})
	}

	// A partir de aquí ya no hay fallos de validación posibles; el batch de
	// stock y el anexado al log son las únicas escrituras de la transacción.
	if err := uc.products.UpdateStock(ctx, updates); err != nil {
		return nil, err
	}
	if err := logRepo.Append(ctx, logLines); err != nil {
		return nil, err
	}

	return &dto.TransactionDetail{
		ID:                   txID,
		Date:                 stamp,
		Type:                 string(kind),
		RegistrationID:       regID,
		RegistrationName:     regName,
		RegistrationDocument: regDoc,
		Notes:                notes,
		Operator:             operator,
		ReturnDate:           returnDue,
		EventName:            eventName,
		Lines:                detailLines,
	}, nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
