package ledgerrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/nickolaa/konsol-pro-clone/internal/domain"
	"github.com/nickolaa/konsol-pro-clone/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const transactionColumns = `id, user_id, task_id, type, amount, status, created_at, processed_at`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(&t.ID, &t.UserID, &t.TaskID, &t.Type, &t.Amount, &t.Status, &t.CreatedAt, &t.ProcessedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) CreateTransaction(ctx context.Context, txn *domain.Transaction) error {
	query := `
        INSERT INTO transactions (user_id, task_id, type, amount, status, processed_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, txn.UserID, txn.TaskID, txn.Type, txn.Amount, txn.Status, txn.ProcessedAt).
		Scan(&txn.ID, &txn.CreatedAt)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindTransactionByID(ctx context.Context, id int) (*domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE id = $1
    `
	txn, err := scanTransaction(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find transaction", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

func (r *Repository) FindTransactionsByUserID(ctx context.Context, userID int) ([]domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		txns = append(txns, *txn)
	}
	return txns, nil
}

// FindForSettlement returns pending payouts and payments awaiting the external
// settlement processor, oldest first.
func (r *Repository) FindForSettlement(ctx context.Context, limit uint32) ([]domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE status = $1 AND type IN ($2, $3)
        ORDER BY created_at ASC
        LIMIT $4
    `
	rows, err := r.db.Query(ctx, query,
		domain.TransactionStatusPending, domain.TransactionTypePayout, domain.TransactionTypePayment, int(limit))
	if err != nil {
		zap.L().Error("can't get transactions for settlement", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("can't scan transaction row for settlement", zap.Error(err))
			return nil, err
		}
		txns = append(txns, *txn)
	}
	return txns, nil
}

// MarkProcessed finalizes a pending transaction. Completed and failed rows are
// immutable, so the status guard makes repeated settlement callbacks no-ops.
func (r *Repository) MarkProcessed(ctx context.Context, id int, status string) (bool, error) {
	query := `
        UPDATE transactions
        SET status = $1, processed_at = now()
        WHERE id = $2 AND status = $3
    `
	tag, err := r.db.Exec(ctx, query, status, id, domain.TransactionStatusPending)
	if err != nil {
		zap.L().Error("failed to mark transaction processed", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) GetWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, balance
        FROM wallets
        WHERE user_id = $1
    `
	var wallet domain.Wallet
	err := r.db.QueryRow(ctx, query, userID).Scan(&wallet.ID, &wallet.UserID, &wallet.Balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

// Credit adds to the wallet, creating it on first use.
func (r *Repository) Credit(ctx context.Context, userID int, amount float64) error {
	query := `
        INSERT INTO wallets (user_id, balance)
        VALUES ($1, $2)
        ON CONFLICT (user_id) DO UPDATE SET balance = wallets.balance + EXCLUDED.balance
    `
	if _, err := r.db.Exec(ctx, query, userID, amount); err != nil {
		zap.L().Error("failed to credit wallet", zap.Error(err))
		return err
	}
	return nil
}

// DebitIfSufficient reserves funds with a single conditional update, so
// concurrent payout requests cannot jointly overdraw the wallet. A false
// return means the balance was short.
func (r *Repository) DebitIfSufficient(ctx context.Context, userID int, amount float64) (bool, error) {
	query := `
        UPDATE wallets
        SET balance = balance - $1
        WHERE user_id = $2 AND balance >= $1
    `
	tag, err := r.db.Exec(ctx, query, amount, userID)
	if err != nil {
		zap.L().Error("failed to debit wallet", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
