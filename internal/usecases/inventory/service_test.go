package inventory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/George0Simion/BizzGenie/infrastructure/repository"
	"github.com/George0Simion/BizzGenie/infrastructure/repository/mocks"
	"github.com/George0Simion/BizzGenie/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2025, time.November, 28, 10, 0, 0, 0, time.UTC)

type decimalMatcher struct {
	expected decimal.Decimal
}

func (m decimalMatcher) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.expected)
}

func (m decimalMatcher) String() string {
	return "é igual a " + m.expected.String()
}

func decimalEq(value string) gomock.Matcher {
	return decimalMatcher{expected: decimal.RequireFromString(value)}
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func newTestService(repo repository.InventoryBatchRepository) *Service {
	return &Service{
		repo: repo,
		settings: Settings{
			DefaultMinThreshold: decimal.NewFromInt(2),
			DefaultUnit:         "pcs",
			DefaultCategory:     "general",
			DefaultShelfLife:    7,
			ExpiryWarningDays:   3,
			Location:            time.UTC,
		},
		now: func() time.Time { return now },
	}
}

func expectLock(repo *mocks.MockInventoryBatchRepository, tx repository.InventoryBatchTx, productName string) {
	repo.EXPECT().
		WithProductLock(gomock.Any(), productName, gomock.Any()).
		DoAndReturn(func(ctx context.Context, name string, fn func(repository.InventoryBatchTx) error) error {
			return fn(tx)
		})
}

func TestService_AddProduct(t *testing.T) {
	december1 := domain.DateOf(2025, time.December, 1)

	tests := []struct {
		name           string
		request        domain.AddProductRequest
		setup          func(repo *mocks.MockInventoryBatchRepository, tx *mocks.MockInventoryBatchTx)
		expectedAction domain.AddProductAction
		expectedText   string
		validate       func(t *testing.T, batch *domain.InventoryBatch)
		expectedErr    error
	}{
		{
			name: "Cria lote novo com mínimo padrão",
			request: domain.AddProductRequest{
				ProductName:    "tomatoes",
				Quantity:       dec("5"),
				ExpirationDate: december1,
				Category:       "vegetables",
				Unit:           "kg",
			},
			setup: func(repo *mocks.MockInventoryBatchRepository, tx *mocks.MockInventoryBatchTx) {
				expectLock(repo, tx, "tomatoes")
				tx.EXPECT().FindBatch(gomock.Any(), "tomatoes", december1).Return(nil, nil)
				tx.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedAction: domain.AddProductCreated,
			expectedText:   "Created new batch: 5kg of 'tomatoes' (Category: vegetables, Exp: 2025-12-01)",
			validate: func(t *testing.T, batch *domain.InventoryBatch) {
				assert.NotEmpty(t, batch.ID)
				assert.Equal(t, "5", batch.Quantity.String())
				assert.Equal(t, "2", batch.MinThreshold.String())
				assert.Equal(t, "kg", batch.Unit)
				assert.False(t, batch.AutoBuy)
			},
		},
		{
			name: "Soma ao lote existente e sobrescreve categoria e auto_buy",
			request: domain.AddProductRequest{
				ProductName:    "tomatoes",
				Quantity:       dec("3"),
				ExpirationDate: december1,
				Category:       "produce",
				Unit:           "kg",
				AutoBuy:        true,
			},
			setup: func(repo *mocks.MockInventoryBatchRepository, tx *mocks.MockInventoryBatchTx) {
				expectLock(repo, tx, "tomatoes")
				tx.EXPECT().FindBatch(gomock.Any(), "tomatoes", december1).Return(&domain.InventoryBatch{
					ID:             "bat_1",
					ProductName:    "tomatoes",
					Category:       "vegetables",
					Quantity:       dec("5"),
					Unit:           "kg",
					ExpirationDate: december1,
					MinThreshold:   dec("4"),
				}, nil)
				tx.EXPECT().UpdateBatch(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedAction: domain.AddProductUpdated,
			expectedText:   "Updated existing batch: 3kg of 'tomatoes' (Category: produce, Exp: 2025-12-01)",
			validate: func(t *testing.T, batch *domain.InventoryBatch) {
				assert.Equal(t, "bat_1", batch.ID)
				assert.Equal(t, "8", batch.Quantity.String())
				assert.Equal(t, "produce", batch.Category)
				assert.True(t, batch.AutoBuy)
				assert.Equal(t, "4", batch.MinThreshold.String())
			},
		},
		{
			name: "Vencimento ausente usa hoje mais a validade padrão",
			request: domain.AddProductRequest{
				ProductName: "  Fresh   Basil ",
				Quantity:    dec("1"),
			},
			setup: func(repo *mocks.MockInventoryBatchRepository, tx *mocks.MockInventoryBatchTx) {
				expectLock(repo, tx, "fresh basil")
				tx.EXPECT().FindBatch(gomock.Any(), "fresh basil", domain.DateOf(2025, time.December, 5)).Return(nil, nil)
				tx.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedAction: domain.AddProductCreated,
			expectedText:   "Created new batch: 1pcs of 'fresh basil' (Category: general, Exp: 2025-12-05)",
		},
		{
			name:        "Quantidade zero é rejeitada",
			request:     domain.AddProductRequest{ProductName: "tomatoes", Quantity: dec("0")},
			setup:       func(repo *mocks.MockInventoryBatchRepository, tx *mocks.MockInventoryBatchTx) {},
			expectedErr: ErrInvalidQuantity,
		},
		{
			name:        "Quantidade negativa é rejeitada",
			request:     domain.AddProductRequest{ProductName: "tomatoes", Quantity: dec("-2")},
			setup:       func(repo *mocks.MockInventoryBatchRepository, tx *mocks.MockInventoryBatchTx) {},
			expectedErr: ErrInvalidQuantity,
		},
		{
			name:        "Quantidade com mais de 3 casas decimais é rejeitada",
			request:     domain.AddProductRequest{ProductName: "tomatoes", Quantity: dec("1.2345")},
			setup:       func(repo *mocks.MockInventoryBatchRepository, tx *mocks.MockInventoryBatchTx) {},
			expectedErr: ErrQuantityPrecision,
		},
		{
			name:        "Nome vazio é rejeitado",
			request:     domain.AddProductRequest{ProductName: "   ", Quantity: dec("1")},
			setup:       func(repo *mocks.MockInventoryBatchRepository, tx *mocks.MockInventoryBatchTx) {},
			expectedErr: ErrMissingProductName,
		},
		{
			name: "Falha no banco é propagada",
			request: domain.AddProductRequest{
				ProductName:    "tomatoes",
				Quantity:       dec("1"),
				ExpirationDate: december1,
			},
			setup: func(repo *mocks.MockInventoryBatchRepository, tx *mocks.MockInventoryBatchTx) {
				expectLock(repo, tx, "tomatoes")
				tx.EXPECT().FindBatch(gomock.Any(), "tomatoes", december1).Return(nil, errors.New("conexão perdida"))
			},
			expectedErr: ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockInventoryBatchRepository(ctrl)
			tx := mocks.NewMockInventoryBatchTx(ctrl)
			tt.setup(repo, tx)

			result, err := newTestService(repo).AddProduct(context.Background(), tt.request)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)

				var inventoryErr *InventoryError
				assert.ErrorAs(t, err, &inventoryErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedAction, result.Action)
			assert.Equal(t, tt.expectedText, FormatAddResult(result))
			if tt.validate != nil {
				tt.validate(t, result.Batch)
			}
		})
	}
}

func TestService_ConsumeProduct(t *testing.T) {
	eligible := func() []*domain.InventoryBatch {
		return []*domain.InventoryBatch{
			{ID: "b1", ProductName: "tomatoes", Quantity: dec("5"), Unit: "kg", ExpirationDate: domain.DateOf(2025, time.December, 1)},
			{ID: "b2", ProductName: "tomatoes", Quantity: dec("3"), Unit: "kg", ExpirationDate: domain.DateOf(2025, time.December, 5)},
		}
	}

	tests := []struct {
		name              string
		quantity          string
		setup             func(tx *mocks.MockInventoryBatchTx)
		expectedStatus    domain.ConsumptionStatus
		expectedRemaining string
		expectedText      string
	}{
		{
			name:     "Consome do lote que vence primeiro",
			quantity: "4",
			setup: func(tx *mocks.MockInventoryBatchTx) {
				tx.EXPECT().ListEligibleBatches(gomock.Any(), "tomatoes").Return(eligible(), nil)
				tx.EXPECT().UpdateQuantity(gomock.Any(), "b1", decimalEq("1")).Return(nil)
			},
			expectedStatus:    domain.ConsumptionConsumed,
			expectedRemaining: "0",
			expectedText:      "Consumed tomatoes: 4kg (batch 2025-12-01)",
		},
		{
			name:     "Atravessa lotes em ordem de vencimento",
			quantity: "7",
			setup: func(tx *mocks.MockInventoryBatchTx) {
				tx.EXPECT().ListEligibleBatches(gomock.Any(), "tomatoes").Return(eligible(), nil)
				gomock.InOrder(
					tx.EXPECT().UpdateQuantity(gomock.Any(), "b1", decimalEq("0")).Return(nil),
					tx.EXPECT().UpdateQuantity(gomock.Any(), "b2", decimalEq("1")).Return(nil),
				)
			},
			expectedStatus:    domain.ConsumptionConsumed,
			expectedRemaining: "0",
			expectedText:      "Consumed tomatoes: 5kg (batch 2025-12-01), 2kg (batch 2025-12-05)",
		},
		{
			name:     "Estoque insuficiente consome tudo e informa o restante",
			quantity: "10",
			setup: func(tx *mocks.MockInventoryBatchTx) {
				tx.EXPECT().ListEligibleBatches(gomock.Any(), "tomatoes").Return(eligible(), nil)
				tx.EXPECT().UpdateQuantity(gomock.Any(), "b1", decimalEq("0")).Return(nil)
				tx.EXPECT().UpdateQuantity(gomock.Any(), "b2", decimalEq("0")).Return(nil)
			},
			expectedStatus:    domain.ConsumptionPartial,
			expectedRemaining: "2",
			expectedText:      "Consumed available stock of tomatoes. Still need 2 more.",
		},
		{
			name:     "Produto sem estoque não altera nada",
			quantity: "1",
			setup: func(tx *mocks.MockInventoryBatchTx) {
				tx.EXPECT().ListEligibleBatches(gomock.Any(), "tomatoes").Return([]*domain.InventoryBatch{}, nil)
			},
			expectedStatus:    domain.ConsumptionNotFound,
			expectedRemaining: "1",
			expectedText:      "Error: 'tomatoes' not found in stock.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockInventoryBatchRepository(ctrl)
			tx := mocks.NewMockInventoryBatchTx(ctrl)
			expectLock(repo, tx, "tomatoes")
			tt.setup(tx)

			result, err := newTestService(repo).ConsumeProduct(context.Background(), "Tomatoes", dec(tt.quantity))

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, result.Status)
			assert.Equal(t, tt.expectedRemaining, result.RemainingUnfulfilled.String())
			assert.Equal(t, tt.expectedText, FormatConsumption(result))
			assert.True(t, result.TotalConsumed().Add(result.RemainingUnfulfilled).Equal(dec(tt.quantity)))
		})
	}
}

func TestService_ConsumeProduct_InvalidQuantity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockInventoryBatchRepository(ctrl)

	cases := map[string]error{
		"0":      ErrInvalidQuantity,
		"-3":     ErrInvalidQuantity,
		"0.0001": ErrQuantityPrecision,
		"2.5005": ErrQuantityPrecision,
	}

	for qty, expectedErr := range cases {
		result, err := newTestService(repo).ConsumeProduct(context.Background(), "tomatoes", dec(qty))
		assert.Nil(t, result)
		assert.ErrorIs(t, err, expectedErr, qty)
		assert.True(t, IsValidationError(err))
	}
}

func TestValidateQuantity(t *testing.T) {
	tests := []struct {
		quantity    string
		expectedErr error
	}{
		{quantity: "1"},
		{quantity: "0.001"},
		{quantity: "2.5000"},
		{quantity: "0.0005", expectedErr: ErrQuantityPrecision},
		{quantity: "0", expectedErr: ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.quantity, func(t *testing.T) {
			err := validateQuantity("milk", dec(tt.quantity))
			if tt.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestService_ConsumeProduct_UpdateFailureRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockInventoryBatchRepository(ctrl)
	tx := mocks.NewMockInventoryBatchTx(ctrl)
	updateErr := errors.New("deadlock detectado")

	repo.EXPECT().
		WithProductLock(gomock.Any(), "tomatoes", gomock.Any()).
		DoAndReturn(func(ctx context.Context, name string, fn func(repository.InventoryBatchTx) error) error {
			err := fn(tx)
			assert.ErrorIs(t, err, updateErr)
			return err
		})
	tx.EXPECT().ListEligibleBatches(gomock.Any(), "tomatoes").Return([]*domain.InventoryBatch{
		{ID: "b1", ProductName: "tomatoes", Quantity: dec("5"), Unit: "kg"},
	}, nil)
	tx.EXPECT().UpdateQuantity(gomock.Any(), "b1", decimalEq("3")).Return(updateErr)

	result, err := newTestService(repo).ConsumeProduct(context.Background(), "tomatoes", dec("2"))

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrDatabaseOperation)
	assert.ErrorIs(t, err, updateErr)
}

func TestService_ListInventory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockInventoryBatchRepository(ctrl)
	expected := []*domain.InventoryBatch{{ID: "b1", ProductName: "tomatoes", Quantity: dec("5")}}
	repo.EXPECT().ListAvailable(gomock.Any()).Return(expected, nil)

	batches, err := newTestService(repo).ListInventory(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, expected, batches)
}

func TestService_GetAlerts_UsesClock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockInventoryBatchRepository(ctrl)
	repo.EXPECT().ListBatches(gomock.Any()).Return([]*domain.InventoryBatch{
		{ID: "b1", ProductName: "milk", Quantity: dec("2"), Unit: "l", ExpirationDate: domain.DateOf(2025, time.November, 27)},
	}, nil)

	alerts, err := newTestService(repo).GetAlerts(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, domain.DateOf(2025, time.November, 28), alerts.Date)
	assert.Len(t, alerts.Expired, 1)
	assert.Empty(t, alerts.ExpiringSoon)
}
