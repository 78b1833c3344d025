package ledger_test

// Fakes en memoria de los puertos de persistencia. Comparten un memStore y el
// fakeTxRunner restaura un snapshot si la función transaccional falla, para
// poder afirmar "ningún cambio parcial" igual que con una transacción real.

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ojas37/Stock-Master/internal/domain/entity"
	"github.com/Ojas37/Stock-Master/internal/domain/repository"
)

type pairKey struct {
	productID   string
	warehouseID string
}

type memStore struct {
	operations map[string]*entity.Operation
	moves      []*entity.StockMove
	levels     map[pairKey]*entity.StockLevel
	products   map[string]*entity.Product
	warehouses map[string]*entity.Warehouse
}

func newMemStore() *memStore {
	return &memStore{
		operations: make(map[string]*entity.Operation),
		levels:     make(map[pairKey]*entity.StockLevel),
		products:   make(map[string]*entity.Product),
		warehouses: make(map[string]*entity.Warehouse),
	}
}

func (s *memStore) snapshot() *memStore {
	out := newMemStore()
	for id, op := range s.operations {
		cp := *op
		out.operations[id] = &cp
	}
	for _, mv := range s.moves {
		cp := *mv
		out.moves = append(out.moves, &cp)
	}
	for k, lv := range s.levels {
		cp := *lv
		out.levels[k] = &cp
	}
	for id, p := range s.products {
		cp := *p
		out.products[id] = &cp
	}
	for id, w := range s.warehouses {
		cp := *w
		out.warehouses[id] = &cp
	}
	return out
}

func (s *memStore) restore(snap *memStore) {
	s.operations = snap.operations
	s.moves = snap.moves
	s.levels = snap.levels
	s.products = snap.products
	s.warehouses = snap.warehouses
}

// fakeTxRunner implementa ledger.TxRunner sobre el memStore. Registra el
// modo de cada corrida para que los tests puedan afirmar qué aislamiento
// pidió el caso de uso; conflictErr simula una falla de serialización.
type fakeTxRunner struct {
	store            *memStore
	serializableRuns int
	conflictErr      error
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	opRepo repository.OperationRepository,
	moveRepo repository.StockMoveRepository,
	levelRepo repository.StockLevelRepository,
	productRepo repository.ProductRepository,
) error) error {
	snap := r.store.snapshot()
	err := fn(
		&fakeOperationRepo{store: r.store},
		&fakeMoveRepo{store: r.store},
		&fakeLevelRepo{store: r.store},
		&fakeProductRepo{store: r.store},
	)
	if err != nil {
		r.store.restore(snap)
	}
	return err
}

func (r *fakeTxRunner) RunSerializable(ctx context.Context, fn func(
	opRepo repository.OperationRepository,
	moveRepo repository.StockMoveRepository,
	levelRepo repository.StockLevelRepository,
	productRepo repository.ProductRepository,
) error) error {
	r.serializableRuns++
	if r.conflictErr != nil {
		return r.conflictErr
	}
	return r.Run(ctx, fn)
}

type fakeOperationRepo struct{ store *memStore }

func (r *fakeOperationRepo) Create(op *entity.Operation) error {
	cp := *op
	r.store.operations[op.ID] = &cp
	return nil
}

func (r *fakeOperationRepo) GetByID(id string) (*entity.Operation, error) {
	op, ok := r.store.operations[id]
	if !ok {
		return nil, nil
	}
	cp := *op
	return &cp, nil
}

func (r *fakeOperationRepo) GetForUpdate(id string) (*entity.Operation, error) {
	return r.GetByID(id)
}

func (r *fakeOperationRepo) MarkCompleted(id string, completedAt time.Time) error {
	op := r.store.operations[id]
	op.Status = entity.OperationStatusCompleted
	op.CompletedAt = &completedAt
	return nil
}

func (r *fakeOperationRepo) List(_ repository.OperationFilter, _, _ int) ([]*entity.Operation, error) {
	out := make([]*entity.Operation, 0, len(r.store.operations))
	for _, op := range r.store.operations {
		cp := *op
		out = append(out, &cp)
	}
	return out, nil
}

type fakeMoveRepo struct{ store *memStore }

func (r *fakeMoveRepo) Append(move *entity.StockMove) error {
	cp := *move
	r.store.moves = append(r.store.moves, &cp)
	return nil
}

func (r *fakeMoveRepo) SumDeltas(productID, warehouseID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, mv := range r.store.moves {
		if mv.ProductID == productID && mv.WarehouseID == warehouseID {
			sum = sum.Add(mv.SignedDelta())
		}
	}
	return sum, nil
}

func (r *fakeMoveRepo) List(filter repository.MoveFilter, ascending bool, limit, offset int) ([]*entity.StockMove, error) {
	out := make([]*entity.StockMove, 0)
	for _, mv := range r.store.moves {
		if filter.ProductID != "" && mv.ProductID != filter.ProductID {
			continue
		}
		if filter.WarehouseID != "" && mv.WarehouseID != filter.WarehouseID {
			continue
		}
		if filter.OperationID != "" && mv.OperationID != filter.OperationID {
			continue
		}
		cp := *mv
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[j].CreatedAt.Before(out[i].CreatedAt)
	})
	if offset > 0 {
		if offset >= len(out) {
			return nil, nil
		}
		out = out[offset:]
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeMoveRepo) SumDeltasByProduct() ([]repository.ProductBalance, error) {
	sums := make(map[string]decimal.Decimal)
	for _, mv := range r.store.moves {
		sums[mv.ProductID] = sums[mv.ProductID].Add(mv.SignedDelta())
	}
	out := make([]repository.ProductBalance, 0, len(sums))
	for id, sum := range sums {
		out = append(out, repository.ProductBalance{ProductID: id, Balance: sum})
	}
	return out, nil
}

func (r *fakeMoveRepo) SumDeltasByPair() ([]repository.PairBalance, error) {
	sums := make(map[pairKey]decimal.Decimal)
	for _, mv := range r.store.moves {
		k := pairKey{productID: mv.ProductID, warehouseID: mv.WarehouseID}
		sums[k] = sums[k].Add(mv.SignedDelta())
	}
	out := make([]repository.PairBalance, 0, len(sums))
	for k, sum := range sums {
		out = append(out, repository.PairBalance{ProductID: k.productID, WarehouseID: k.warehouseID, Balance: sum})
	}
	return out, nil
}

type fakeLevelRepo struct{ store *memStore }

func (r *fakeLevelRepo) Get(productID, warehouseID string) (*entity.StockLevel, error) {
	lv, ok := r.store.levels[pairKey{productID: productID, warehouseID: warehouseID}]
	if !ok {
		return &entity.StockLevel{ProductID: productID, WarehouseID: warehouseID, Quantity: decimal.Zero}, nil
	}
	cp := *lv
	return &cp, nil
}

func (r *fakeLevelRepo) Lock(productID, warehouseID string) (*entity.StockLevel, error) {
	k := pairKey{productID: productID, warehouseID: warehouseID}
	if _, ok := r.store.levels[k]; !ok {
		r.store.levels[k] = &entity.StockLevel{ProductID: productID, WarehouseID: warehouseID, Quantity: decimal.Zero}
	}
	cp := *r.store.levels[k]
	return &cp, nil
}

func (r *fakeLevelRepo) Upsert(level *entity.StockLevel) error {
	cp := *level
	r.store.levels[pairKey{productID: level.ProductID, warehouseID: level.WarehouseID}] = &cp
	return nil
}

type fakeProductRepo struct{ store *memStore }

func (r *fakeProductRepo) Create(product *entity.Product) error {
	cp := *product
	r.store.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.store.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(product *entity.Product) error {
	cp := *product
	r.store.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) AddToTotalStock(productID string, delta decimal.Decimal) error {
	p := r.store.products[productID]
	p.TotalStock = p.TotalStock.Add(delta)
	return nil
}

func (r *fakeProductRepo) SetTotalStock(productID string, total decimal.Decimal) error {
	p := r.store.products[productID]
	p.TotalStock = total
	return nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	ids := make([]string, 0, len(r.store.products))
	for id := range r.store.products {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*entity.Product, 0, len(ids))
	for _, id := range ids {
		cp := *r.store.products[id]
		out = append(out, &cp)
	}
	if offset > 0 {
		if offset >= len(out) {
			return nil, nil
		}
		out = out[offset:]
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

type fakeWarehouseRepo struct{ store *memStore }

func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	w, ok := r.store.warehouses[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *fakeWarehouseRepo) List(_, _ int) ([]*entity.Warehouse, error) {
	out := make([]*entity.Warehouse, 0, len(r.store.warehouses))
	for _, w := range r.store.warehouses {
		cp := *w
		out = append(out, &cp)
	}
	return out, nil
}
