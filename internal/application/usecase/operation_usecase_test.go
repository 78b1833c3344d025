package usecase_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ojas37/Stock-Master/internal/application/dto"
	"github.com/Ojas37/Stock-Master/internal/application/usecase"
	"github.com/Ojas37/Stock-Master/internal/domain"
	"github.com/Ojas37/Stock-Master/internal/domain/entity"
	"github.com/Ojas37/Stock-Master/internal/domain/repository"
)

func qty(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func strPtr(s string) *string { return &s }

type stubOperationRepo struct {
	created   []*entity.Operation
	byID      map[string]*entity.Operation
	createErr error
}

func (r *stubOperationRepo) Create(op *entity.Operation) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, op)
	return nil
}

func (r *stubOperationRepo) GetByID(id string) (*entity.Operation, error) {
	return r.byID[id], nil
}

func (r *stubOperationRepo) GetForUpdate(id string) (*entity.Operation, error) {
	return r.byID[id], nil
}

func (r *stubOperationRepo) MarkCompleted(string, time.Time) error { return nil }

func (r *stubOperationRepo) List(_ repository.OperationFilter, _, _ int) ([]*entity.Operation, error) {
	return r.created, nil
}

type stubProductRepo struct {
	products map[string]*entity.Product
}

func (r *stubProductRepo) Create(*entity.Product) error { return nil }
func (r *stubProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *stubProductRepo) GetBySKU(string) (*entity.Product, error)      { return nil, nil }
func (r *stubProductRepo) Update(*entity.Product) error                  { return nil }
func (r *stubProductRepo) AddToTotalStock(string, decimal.Decimal) error { return nil }
func (r *stubProductRepo) SetTotalStock(string, decimal.Decimal) error   { return nil }
func (r *stubProductRepo) List(_, _ int) ([]*entity.Product, error)      { return nil, nil }

type stubWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func (r *stubWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return r.warehouses[id], nil
}
func (r *stubWarehouseRepo) List(_, _ int) ([]*entity.Warehouse, error) { return nil, nil }

func newOperationUC() (*usecase.OperationUseCase, *stubOperationRepo) {
	opRepo := &stubOperationRepo{byID: make(map[string]*entity.Operation)}
	productRepo := &stubProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", SKU: "SKU-001", Name: "Teclado"},
	}}
	warehouseRepo := &stubWarehouseRepo{warehouses: map[string]*entity.Warehouse{
		"w1": {ID: "w1", Name: "Principal"},
		"w2": {ID: "w2", Name: "Norte"},
	}}
	return usecase.NewOperationUseCase(opRepo, productRepo, warehouseRepo), opRepo
}

func TestOperationCreate_QuedaPendiente(t *testing.T) {
	uc, opRepo := newOperationUC()

	resp, err := uc.Create(dto.CreateOperationRequest{
		Type:          entity.OperationTypeReceipt,
		ProductID:     "p1",
		ToWarehouseID: strPtr("w1"),
		Quantity:      qty("10"),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OperationStatusPending, resp.Status)
	assert.NotEmpty(t, resp.ID)
	assert.Nil(t, resp.CompletedAt)
	require.Len(t, opRepo.created, 1)
}

func TestOperationCreate_FormatoDeReferencia(t *testing.T) {
	uc, _ := newOperationUC()

	resp, err := uc.Create(dto.CreateOperationRequest{
		Type:            entity.OperationTypeTransfer,
		ProductID:       "p1",
		FromWarehouseID: strPtr("w1"),
		ToWarehouseID:   strPtr("w2"),
		Quantity:        qty("3"),
	})
	require.NoError(t, err)

	// TRANSFER-<unix millis>
	assert.True(t, strings.HasPrefix(resp.Reference, "TRANSFER-"), "referencia: %s", resp.Reference)
	sufijo := strings.TrimPrefix(resp.Reference, "TRANSFER-")
	assert.Len(t, sufijo, 13, "el sufijo es un timestamp en milisegundos")
}

func TestOperationCreate_TotalValueDerivado(t *testing.T) {
	uc, _ := newOperationUC()
	precio := qty("120000")

	resp, err := uc.Create(dto.CreateOperationRequest{
		Type:          entity.OperationTypeReceipt,
		ProductID:     "p1",
		ToWarehouseID: strPtr("w1"),
		Quantity:      qty("10"),
		UnitPrice:     &precio,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.TotalValue)
	assert.True(t, resp.TotalValue.Equal(qty("1200000")))

	// Sin precio no hay total.
	resp, err = uc.Create(dto.CreateOperationRequest{
		Type:          entity.OperationTypeReceipt,
		ProductID:     "p1",
		ToWarehouseID: strPtr("w1"),
		Quantity:      qty("10"),
	})
	require.NoError(t, err)
	assert.Nil(t, resp.TotalValue)
}

func TestOperationCreate_RechazaMalFormadas(t *testing.T) {
	uc, opRepo := newOperationUC()

	cases := []struct {
		name    string
		in      dto.CreateOperationRequest
		wantErr error
	}{
		{
			name:    "receipt sin bodega destino",
			in:      dto.CreateOperationRequest{Type: entity.OperationTypeReceipt, ProductID: "p1", Quantity: qty("10")},
			wantErr: domain.ErrInvalidOperation,
		},
		{
			name: "transfer a la misma bodega",
			in: dto.CreateOperationRequest{
				Type: entity.OperationTypeTransfer, ProductID: "p1",
				FromWarehouseID: strPtr("w1"), ToWarehouseID: strPtr("w1"), Quantity: qty("1"),
			},
			wantErr: domain.ErrInvalidOperation,
		},
		{
			name: "delivery con cantidad cero",
			in: dto.CreateOperationRequest{
				Type: entity.OperationTypeDelivery, ProductID: "p1",
				FromWarehouseID: strPtr("w1"), Quantity: decimal.Zero,
			},
			wantErr: domain.ErrInvalidQuantity,
		},
		{
			name: "adjustment sin cantidad",
			in: dto.CreateOperationRequest{
				Type: entity.OperationTypeAdjustment, ProductID: "p1",
				ToWarehouseID: strPtr("w1"), Quantity: decimal.Zero,
			},
			wantErr: domain.ErrInvalidQuantity,
		},
		{
			name: "producto inexistente",
			in: dto.CreateOperationRequest{
				Type: entity.OperationTypeReceipt, ProductID: "fantasma",
				ToWarehouseID: strPtr("w1"), Quantity: qty("1"),
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "bodega inexistente",
			in: dto.CreateOperationRequest{
				Type: entity.OperationTypeReceipt, ProductID: "p1",
				ToWarehouseID: strPtr("w9"), Quantity: qty("1"),
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(tc.in)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
	assert.Empty(t, opRepo.created, "ninguna operación mal formada debe persistirse")
}

func TestOperationCreate_ReferenciaDuplicada(t *testing.T) {
	// operations.reference es UNIQUE: dos creates del mismo tipo en el mismo
	// milisegundo chocan en el INSERT y el repo lo traduce a ErrDuplicate.
	// El caso de uso debe dejarlo pasar sin envolverlo para que HTTP lo mapee.
	uc, opRepo := newOperationUC()
	opRepo.createErr = domain.ErrDuplicate

	_, err := uc.Create(dto.CreateOperationRequest{
		Type:          entity.OperationTypeReceipt,
		ProductID:     "p1",
		ToWarehouseID: strPtr("w1"),
		Quantity:      qty("10"),
	})
	require.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Empty(t, opRepo.created)
}

func TestOperationCreate_AdjustmentNegativoEsValido(t *testing.T) {
	uc, _ := newOperationUC()

	resp, err := uc.Create(dto.CreateOperationRequest{
		Type:          entity.OperationTypeAdjustment,
		ProductID:     "p1",
		ToWarehouseID: strPtr("w1"),
		Quantity:      qty("-5"),
		Reason:        "conteo físico",
	})
	require.NoError(t, err)
	assert.True(t, resp.Quantity.Equal(qty("-5")), "el ajuste conserva el signo hasta la confirmación")
}
