package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"settlement-ledger/internal/core/domain"
	"settlement-ledger/internal/core/ports"
	"settlement-ledger/internal/core/ports/mocks"
	"settlement-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWalletService_Credit_CreatesWalletOnFirstUse(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	userID := uuid.New()

	entry, err := h.wallet.Credit(ctx, ports.EntryRequest{
		UserID:    userID,
		Amount:    dec("250.50"),
		Type:      domain.EntryDeposit,
		Reference: "TOPUP-1",
	})
	require.NoError(t, err)

	assert.True(t, entry.BalanceAfter.Equal(dec("250.50")))
	assert.Equal(t, domain.EntryDeposit, entry.Type)

	wallet, err := h.queries.GetWallet(ctx, userID)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, wallet.ID)
	assert.Equal(t, "KES", wallet.Currency)
	assert.True(t, wallet.Balance.Equal(dec("250.50")))
	assert.Equal(t, float64(1), counterValue(t, h.registry, "settlement_wallet_entries_total",
		map[string]string{"type": "deposit"}))
}

func TestWalletService_Debit_InsufficientFunds(t *testing.T) {
	tests := []struct {
		name   string
		funded string
		debit  string
	}{
		{"no wallet", "", "10"},
		{"balance too low", "99.99", "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			userID := uuid.New()
			if tt.funded != "" {
				h.fund(t, userID, tt.funded)
			}

			_, err := h.wallet.Debit(context.Background(), ports.EntryRequest{
				UserID:    userID,
				Amount:    dec(tt.debit),
				Type:      domain.EntryWithdrawal,
				Reference: "WDR-1",
			})
			require.Error(t, err)
			assert.True(t, apperror.IsKind(err, apperror.KindInsufficientFunds))
			assert.False(t, apperror.Retryable(err))

			entries, total, err := h.queries.ListWalletTransactions(context.Background(), userID, nil, 1, 20)
			require.NoError(t, err)
			if tt.funded == "" {
				assert.Zero(t, total)
			} else {
				assert.EqualValues(t, 1, total, "only the funding entry exists")
				assert.Equal(t, domain.EntryDeposit, entries[0].Type)
			}
		})
	}
}

func TestWalletService_Validation(t *testing.T) {
	userID := uuid.New()
	tests := []struct {
		name   string
		credit bool
		req    ports.EntryRequest
	}{
		{"zero amount", true, ports.EntryRequest{UserID: userID, Amount: dec("0"), Type: domain.EntryDeposit}},
		{"negative amount", false, ports.EntryRequest{UserID: userID, Amount: dec("-5"), Type: domain.EntryWithdrawal}},
		{"sub-cent amount", true, ports.EntryRequest{UserID: userID, Amount: dec("1.005"), Type: domain.EntryDeposit}},
		{"debit type on credit", true, ports.EntryRequest{UserID: userID, Amount: dec("1"), Type: domain.EntryWithdrawal}},
		{"credit type on debit", false, ports.EntryRequest{UserID: userID, Amount: dec("1"), Type: domain.EntryRefund}},
		{"unknown type", true, ports.EntryRequest{UserID: userID, Amount: dec("1"), Type: "bonus"}},
		{"missing user", true, ports.EntryRequest{Amount: dec("1"), Type: domain.EntryDeposit}},
	}

	h := newHarness(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			if tt.credit {
				_, err = h.wallet.Credit(context.Background(), tt.req)
			} else {
				_, err = h.wallet.Debit(context.Background(), tt.req)
			}
			require.Error(t, err)
			assert.True(t, apperror.IsKind(err, apperror.KindValidation), "got %v", err)
		})
	}
}

func TestWalletService_StorageFailureRollsBack(t *testing.T) {
	h := newHarness(t)
	userID := uuid.New()
	h.fund(t, userID, "100")

	h.store.FailOn("wallet_transactions.create", errors.New("disk full"))

	_, err := h.wallet.Debit(context.Background(), ports.EntryRequest{
		UserID:    userID,
		Amount:    dec("40"),
		Type:      domain.EntryWithdrawal,
		Reference: "WDR-2",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindInternal))

	assert.True(t, h.balance(t, userID).Equal(dec("100")), "balance update must roll back with the entry")
	audit, err := h.queries.VerifyWallet(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, audit.Consistent)
	assert.EqualValues(t, 1, audit.EntryCount)
}

func TestWalletService_ConcurrentDebitsNeverOverdraw(t *testing.T) {
	h := newHarness(t)
	userID := uuid.New()
	h.fund(t, userID, "100")

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		declined  int
	)
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := h.wallet.Debit(context.Background(), ports.EntryRequest{
				UserID:    userID,
				Amount:    dec("10"),
				Type:      domain.EntryPayment,
				Reference: "PAY-X",
			})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
			} else if apperror.IsKind(err, apperror.KindInsufficientFunds) {
				declined++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, succeeded)
	assert.Equal(t, 15, declined)
	assert.True(t, h.balance(t, userID).IsZero())

	audit, err := h.queries.VerifyWallet(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, audit.Consistent)
	assert.EqualValues(t, 11, audit.EntryCount)
}

func TestWalletService_DebitTx_LockError(t *testing.T) {
	ctrl := gomock.NewController(t)
	wallets := mocks.NewMockWalletRepository(ctrl)
	entries := mocks.NewMockWalletTransactionRepository(ctrl)
	svc := NewWalletService(wallets, entries, mocks.NewMockDBTransactor(ctrl), mocks.NewMockMetrics(ctrl), "KES", newTestLogger())

	userID := uuid.New()
	wallets.EXPECT().
		GetByUserIDForUpdate(gomock.Any(), gomock.Any(), userID).
		Return(nil, errors.New("lock timeout"))

	_, err := svc.DebitTx(context.Background(), nil, ports.EntryRequest{
		UserID: userID,
		Amount: dec("5"),
		Type:   domain.EntryWithdrawal,
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindInternal))
	assert.Contains(t, err.Error(), "lock wallet")
}

func TestWalletService_CreditTx_CreatesThenAppends(t *testing.T) {
	ctrl := gomock.NewController(t)
	wallets := mocks.NewMockWalletRepository(ctrl)
	entries := mocks.NewMockWalletTransactionRepository(ctrl)
	svc := NewWalletService(wallets, entries, mocks.NewMockDBTransactor(ctrl), mocks.NewMockMetrics(ctrl), "KES", newTestLogger())

	userID := uuid.New()
	walletID := uuid.New()
	gomock.InOrder(
		wallets.EXPECT().GetByUserIDForUpdate(gomock.Any(), gomock.Any(), userID).Return(nil, nil),
		wallets.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgx.Tx, w *domain.Wallet) error {
				assert.Equal(t, userID, w.UserID)
				assert.Equal(t, "KES", w.Currency)
				return nil
			}),
		wallets.EXPECT().GetByUserIDForUpdate(gomock.Any(), gomock.Any(), userID).
			Return(&domain.Wallet{ID: walletID, UserID: userID, Balance: dec("0")}, nil),
		wallets.EXPECT().UpdateBalance(gomock.Any(), gomock.Any(), walletID, decimalEq("12.34")).Return(nil),
		entries.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgx.Tx, e *domain.WalletTransaction) error {
				assert.Equal(t, walletID, e.WalletID)
				assert.True(t, e.BalanceAfter.Equal(dec("12.34")))
				return nil
			}),
	)

	entry, err := svc.CreditTx(context.Background(), nil, ports.EntryRequest{
		UserID:    userID,
		Amount:    dec("12.34"),
		Type:      domain.EntryDeposit,
		Reference: "TOPUP-9",
	})
	require.NoError(t, err)
	assert.Equal(t, "TOPUP-9", entry.Reference)
}
