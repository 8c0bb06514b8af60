package ledgerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/nickolaa/konsol-pro-clone/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var txnCols = []string{"id", "user_id", "task_id", "type", "amount", "status", "created_at", "processed_at"}

func TestRepository_CreateTransaction(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Transaction saved",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(42, now)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO transactions")).
					WithArgs(20, pgxmock.AnyArg(), "payout", 500.0, "pending", pgxmock.AnyArg()).
					WillReturnRows(rows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO transactions")).
					WithArgs(20, pgxmock.AnyArg(), "payout", 500.0, "pending", pgxmock.AnyArg()).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			txn := &domain.Transaction{
				UserID: 20,
				Type:   domain.TransactionTypePayout,
				Amount: 500.0,
				Status: domain.TransactionStatusPending,
			}
			err := repo.CreateTransaction(context.Background(), txn)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 42, txn.ID)
			}
		})
	}
}

func TestRepository_FindTransactionByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Transaction exists", func(t *testing.T) {
		rows := pgxmock.NewRows(txnCols).
			AddRow(42, 20, nil, "payout", 500.0, "pending", now, nil)
		mock.ExpectQuery(regexp.QuoteMeta("FROM transactions")).
			WithArgs(42).
			WillReturnRows(rows)

		txn, err := repo.FindTransactionByID(context.Background(), 42)
		assert.NoError(t, err)
		assert.Equal(t, domain.TransactionTypePayout, txn.Type)
		assert.Nil(t, txn.ProcessedAt)
	})

	t.Run("Transaction does not exist", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM transactions")).
			WithArgs(42).
			WillReturnError(pgx.ErrNoRows)

		txn, err := repo.FindTransactionByID(context.Background(), 42)
		assert.NoError(t, err)
		assert.Nil(t, txn)
	})
}

func TestRepository_FindForSettlement(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Pending payouts and payments returned oldest first", func(t *testing.T) {
		rows := pgxmock.NewRows(txnCols).
			AddRow(1, 20, nil, "payout", 500.0, "pending", now, nil).
			AddRow(2, 20, nil, "payment", 5000.0, "pending", now, nil)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE status = $1 AND type IN ($2, $3)")).
			WithArgs("pending", "payout", "payment", 1000).
			WillReturnRows(rows)

		txns, err := repo.FindForSettlement(context.Background(), 1000)
		assert.NoError(t, err)
		assert.Len(t, txns, 2)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE status = $1 AND type IN ($2, $3)")).
			WithArgs("pending", "payout", "payment", 1000).
			WillReturnError(errors.New("database error"))

		_, err := repo.FindForSettlement(context.Background(), 1000)
		assert.Error(t, err)
	})
}

func TestRepository_MarkProcessed(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectOK  bool
		expectErr bool
	}{
		{
			name: "Pending transaction finalized",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE transactions")).
					WithArgs("completed", 42, "pending").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectOK: true,
		},
		{
			name: "Repeated callback is a no-op",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE transactions")).
					WithArgs("completed", 42, "pending").
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectOK: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE transactions")).
					WithArgs("completed", 42, "pending").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			ok, err := repo.MarkProcessed(context.Background(), 42, domain.TransactionStatusCompleted)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectOK, ok)
			}
		})
	}
}

func TestRepository_GetWallet(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Wallet exists", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "user_id", "balance"}).AddRow(1, 20, 500.5)
		mock.ExpectQuery(regexp.QuoteMeta("FROM wallets")).
			WithArgs(20).
			WillReturnRows(rows)

		wallet, err := repo.GetWallet(context.Background(), 20)
		assert.NoError(t, err)
		assert.Equal(t, 500.5, wallet.Balance)
	})

	t.Run("No wallet yet", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM wallets")).
			WithArgs(20).
			WillReturnError(pgx.ErrNoRows)

		wallet, err := repo.GetWallet(context.Background(), 20)
		assert.NoError(t, err)
		assert.Nil(t, wallet)
	})
}

func TestRepository_Credit(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Wallet created on first credit", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO wallets")).
			WithArgs(20, 1000.0).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.Credit(context.Background(), 20, 1000.0)
		assert.NoError(t, err)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO wallets")).
			WithArgs(20, 1000.0).
			WillReturnError(errors.New("database error"))

		err := repo.Credit(context.Background(), 20, 1000.0)
		assert.Error(t, err)
	})
}

func TestRepository_DebitIfSufficient(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectOK  bool
		expectErr bool
	}{
		{
			name: "Balance covers the amount",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("WHERE user_id = $2 AND balance >= $1")).
					WithArgs(500.0, 20).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectOK: true,
		},
		{
			name: "Balance short, nothing debited",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("WHERE user_id = $2 AND balance >= $1")).
					WithArgs(500.0, 20).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectOK: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("WHERE user_id = $2 AND balance >= $1")).
					WithArgs(500.0, 20).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			ok, err := repo.DebitIfSufficient(context.Background(), 20, 500.0)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectOK, ok)
			}
		})
	}
}
