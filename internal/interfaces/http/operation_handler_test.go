package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appledger "github.com/Ojas37/Stock-Master/internal/application/ledger"
	"github.com/Ojas37/Stock-Master/internal/application/usecase"
	"github.com/Ojas37/Stock-Master/internal/domain"
	"github.com/Ojas37/Stock-Master/internal/domain/entity"
	"github.com/Ojas37/Stock-Master/internal/domain/repository"
	apphttp "github.com/Ojas37/Stock-Master/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos: un world en memoria que implementa los puertos del motor.
// El fakeTx pasa repos sobre el mismo world; suficiente para probar el mapeo
// HTTP de la taxonomía de errores del dominio.
// ──────────────────────────────────────────────────────────────────────────────

type world struct {
	operations map[string]*entity.Operation
	moves      []*entity.StockMove
	levels     map[string]*entity.StockLevel // key: productID+"/"+warehouseID
	products   map[string]*entity.Product
	warehouses map[string]*entity.Warehouse
}

func newWorld() *world {
	return &world{
		operations: map[string]*entity.Operation{},
		levels:     map[string]*entity.StockLevel{},
		products:   map[string]*entity.Product{},
		warehouses: map[string]*entity.Warehouse{},
	}
}

// runErr fuerza el error que una transacción real devolvería (p. ej. una
// falla de serialización).
type fakeTx struct {
	w      *world
	runErr error
}

func (f *fakeTx) Run(_ context.Context, fn func(
	repository.OperationRepository,
	repository.StockMoveRepository,
	repository.StockLevelRepository,
	repository.ProductRepository,
) error) error {
	if f.runErr != nil {
		return f.runErr
	}
	return fn(opRepo{f.w}, moveRepo{f.w}, levelRepo{f.w}, productRepo{f.w})
}

func (f *fakeTx) RunSerializable(ctx context.Context, fn func(
	repository.OperationRepository,
	repository.StockMoveRepository,
	repository.StockLevelRepository,
	repository.ProductRepository,
) error) error {
	return f.Run(ctx, fn)
}

type opRepo struct{ w *world }

func (r opRepo) Create(op *entity.Operation) error { r.w.operations[op.ID] = op; return nil }
func (r opRepo) GetByID(id string) (*entity.Operation, error) {
	return r.w.operations[id], nil
}
func (r opRepo) GetForUpdate(id string) (*entity.Operation, error) {
	return r.w.operations[id], nil
}
func (r opRepo) MarkCompleted(id string, at time.Time) error {
	op := r.w.operations[id]
	op.Status = entity.OperationStatusCompleted
	op.CompletedAt = &at
	return nil
}
func (r opRepo) List(repository.OperationFilter, int, int) ([]*entity.Operation, error) {
	out := make([]*entity.Operation, 0, len(r.w.operations))
	for _, op := range r.w.operations {
		out = append(out, op)
	}
	return out, nil
}

type moveRepo struct{ w *world }

func (r moveRepo) Append(m *entity.StockMove) error { r.w.moves = append(r.w.moves, m); return nil }
func (r moveRepo) SumDeltas(productID, warehouseID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, m := range r.w.moves {
		if m.ProductID == productID && m.WarehouseID == warehouseID {
			sum = sum.Add(m.SignedDelta())
		}
	}
	return sum, nil
}
func (r moveRepo) List(repository.MoveFilter, bool, int, int) ([]*entity.StockMove, error) {
	return r.w.moves, nil
}
func (r moveRepo) SumDeltasByProduct() ([]repository.ProductBalance, error) { return nil, nil }
func (r moveRepo) SumDeltasByPair() ([]repository.PairBalance, error)       { return nil, nil }

type levelRepo struct{ w *world }

func (r levelRepo) Get(productID, warehouseID string) (*entity.StockLevel, error) {
	if lv, ok := r.w.levels[productID+"/"+warehouseID]; ok {
		return lv, nil
	}
	return &entity.StockLevel{ProductID: productID, WarehouseID: warehouseID, Quantity: decimal.Zero}, nil
}
func (r levelRepo) Lock(productID, warehouseID string) (*entity.StockLevel, error) {
	return r.Get(productID, warehouseID)
}
func (r levelRepo) Upsert(lv *entity.StockLevel) error {
	r.w.levels[lv.ProductID+"/"+lv.WarehouseID] = lv
	return nil
}

type productRepo struct{ w *world }

func (r productRepo) Create(p *entity.Product) error { r.w.products[p.ID] = p; return nil }
func (r productRepo) GetByID(id string) (*entity.Product, error) {
	return r.w.products[id], nil
}
func (r productRepo) GetBySKU(string) (*entity.Product, error) { return nil, nil }
func (r productRepo) Update(p *entity.Product) error           { r.w.products[p.ID] = p; return nil }
func (r productRepo) AddToTotalStock(id string, delta decimal.Decimal) error {
	p := r.w.products[id]
	p.TotalStock = p.TotalStock.Add(delta)
	return nil
}
func (r productRepo) SetTotalStock(id string, total decimal.Decimal) error {
	r.w.products[id].TotalStock = total
	return nil
}
func (r productRepo) List(int, int) ([]*entity.Product, error) { return nil, nil }

type warehouseRepo struct{ w *world }

func (r warehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return r.w.warehouses[id], nil
}
func (r warehouseRepo) List(int, int) ([]*entity.Warehouse, error) { return nil, nil }

// buildTestApp arma una app Fiber con las rutas de operaciones sobre el world.
func buildTestApp(w *world) *fiber.App {
	return buildTestAppTx(w, &fakeTx{w: w})
}

func buildTestAppTx(w *world, tx *fakeTx) *fiber.App {
	operationUC := usecase.NewOperationUseCase(opRepo{w}, productRepo{w}, warehouseRepo{w})
	confirmUC := appledger.NewConfirmOperationUseCase(tx, warehouseRepo{w})
	handler := apphttp.NewOperationHandler(operationUC, confirmUC)

	app := fiber.New()
	app.Post("/api/operations", handler.Create)
	app.Get("/api/operations/:id", handler.GetByID)
	app.Put("/api/operations/:id/confirm", handler.Confirm)
	return app
}

func seededWorld() *world {
	w := newWorld()
	w.products["p1"] = &entity.Product{ID: "p1", SKU: "SKU-001", Name: "Teclado"}
	w.warehouses["w1"] = &entity.Warehouse{ID: "w1", Name: "Principal"}
	w.warehouses["w2"] = &entity.Warehouse{ID: "w2", Name: "Norte"}
	return w
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func strPtr(s string) *string { return &s }

func pendingOp(w *world, id, opType string, from, to *string, quantity string) {
	q, _ := decimal.NewFromString(quantity)
	w.operations[id] = &entity.Operation{
		ID: id, Type: opType, Reference: "TEST-" + id,
		ProductID: "p1", FromWarehouseID: from, ToWarehouseID: to,
		Quantity: q, Status: entity.OperationStatusPending,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestOperationHandler_CreateYConfirmar(t *testing.T) {
	w := seededWorld()
	app := buildTestApp(w)

	resp, body := doJSON(t, app, http.MethodPost, "/api/operations", map[string]any{
		"type":            "receipt",
		"product_id":      "p1",
		"to_warehouse_id": "w1",
		"quantity":        "10",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	operation := body["operation"].(map[string]any)
	id := operation["id"].(string)
	assert.Equal(t, "pending", operation["status"])

	resp, body = doJSON(t, app, http.MethodPut, "/api/operations/"+id+"/confirm", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["reference"])

	require.Len(t, w.moves, 1)
	assert.True(t, w.products["p1"].TotalStock.Equal(decimal.NewFromInt(10)))
}

func TestOperationHandler_ConfirmarDosVeces(t *testing.T) {
	w := seededWorld()
	app := buildTestApp(w)
	pendingOp(w, "op1", entity.OperationTypeReceipt, nil, strPtr("w1"), "10")

	resp, _ := doJSON(t, app, http.MethodPut, "/api/operations/op1/confirm", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPut, "/api/operations/op1/confirm", nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "ALREADY_CONFIRMED", body["code"])
	assert.Len(t, w.moves, 1)
}

func TestOperationHandler_ConfirmarInexistente(t *testing.T) {
	app := buildTestApp(seededWorld())

	resp, body := doJSON(t, app, http.MethodPut, "/api/operations/no-existe/confirm", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestOperationHandler_StockInsuficiente(t *testing.T) {
	w := seededWorld()
	app := buildTestApp(w)
	pendingOp(w, "del", entity.OperationTypeDelivery, strPtr("w1"), nil, "5")

	resp, body := doJSON(t, app, http.MethodPut, "/api/operations/del/confirm", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", body["code"])
	assert.Empty(t, w.moves)
}

func TestOperationHandler_CreateMalFormada(t *testing.T) {
	app := buildTestApp(seededWorld())

	// receipt sin bodega destino
	resp, body := doJSON(t, app, http.MethodPost, "/api/operations", map[string]any{
		"type":       "receipt",
		"product_id": "p1",
		"quantity":   "10",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_OPERATION", body["code"])

	// cantidad cero
	resp, body = doJSON(t, app, http.MethodPost, "/api/operations", map[string]any{
		"type":            "receipt",
		"product_id":      "p1",
		"to_warehouse_id": "w1",
		"quantity":        "0",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_QUANTITY", body["code"])
}

func TestOperationHandler_ConflictoDeConcurrencia(t *testing.T) {
	w := seededWorld()
	app := buildTestAppTx(w, &fakeTx{w: w, runErr: domain.ErrConcurrencyConflict})
	pendingOp(w, "op1", entity.OperationTypeReceipt, nil, strPtr("w1"), "10")

	resp, body := doJSON(t, app, http.MethodPut, "/api/operations/op1/confirm", nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONCURRENCY_CONFLICT", body["code"])
	assert.Empty(t, w.moves)
	assert.Equal(t, entity.OperationStatusPending, w.operations["op1"].Status,
		"un conflicto de serialización deja la operación pendiente para reintentar")
}

func TestOperationHandler_GetByIDInexistente(t *testing.T) {
	app := buildTestApp(seededWorld())

	resp, body := doJSON(t, app, http.MethodGet, "/api/operations/nada", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["code"])
}
