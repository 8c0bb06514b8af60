package ledgerservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/nickolaa/konsol-pro-clone/internal/domain"
	"github.com/nickolaa/konsol-pro-clone/internal/pg"
)

type Repo interface {
	CreateTransaction(ctx context.Context, txn *domain.Transaction) error
	FindTransactionByID(ctx context.Context, id int) (*domain.Transaction, error)
	FindTransactionsByUserID(ctx context.Context, userID int) ([]domain.Transaction, error)
	FindForSettlement(ctx context.Context, limit uint32) ([]domain.Transaction, error)
	MarkProcessed(ctx context.Context, id int, status string) (bool, error)
	GetWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	Credit(ctx context.Context, userID int, amount float64) error
	DebitIfSufficient(ctx context.Context, userID int, amount float64) (bool, error)
}

type Service struct {
	repo      Repo
	txManager pg.TXManager
}

func New(repo Repo, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
	}
}

// Deposit records a completed deposit and credits the wallet in one unit.
// There is no gateway in scope, so deposits settle immediately.
func (s *Service) Deposit(ctx context.Context, principal domain.Principal, amount float64) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, domain.ErrValidation
	}

	now := time.Now()
	txn := &domain.Transaction{
		UserID:      principal.ID,
		Type:        domain.TransactionTypeDeposit,
		Amount:      amount,
		Status:      domain.TransactionStatusCompleted,
		ProcessedAt: &now,
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.CreateTransaction(ctx, txn); err != nil {
			return err
		}
		return s.repo.Credit(ctx, principal.ID, amount)
	})
	if err != nil {
		zap.L().Error("failed to deposit", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

// RequestPayout reserves the amount at request time: the conditional debit and
// the pending transaction commit together, so concurrent requests cannot
// jointly exceed the balance.
func (s *Service) RequestPayout(ctx context.Context, principal domain.Principal, amount float64) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, domain.ErrValidation
	}

	txn := &domain.Transaction{
		UserID: principal.ID,
		Type:   domain.TransactionTypePayout,
		Amount: amount,
		Status: domain.TransactionStatusPending,
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.repo.DebitIfSufficient(ctx, principal.ID, amount)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrInsufficientFunds
		}
		return s.repo.CreateTransaction(ctx, txn)
	})
	if err != nil {
		if !errors.Is(err, domain.ErrInsufficientFunds) {
			zap.L().Error("failed to request payout", zap.Error(err))
		}
		return nil, err
	}
	return txn, nil
}

// RecordTaskPayment creates the pending payment owed to the freelancer for a
// finished task. It is system-triggered (act signing), never user-initiated.
func (s *Service) RecordTaskPayment(ctx context.Context, taskID, freelancerID int, amount float64) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, domain.ErrValidation
	}

	txn := &domain.Transaction{
		UserID: freelancerID,
		TaskID: &taskID,
		Type:   domain.TransactionTypePayment,
		Amount: amount,
		Status: domain.TransactionStatusPending,
	}
	if err := s.repo.CreateTransaction(ctx, txn); err != nil {
		zap.L().Error("failed to record task payment", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

// GetWallet returns a zero wallet for users that never transacted.
func (s *Service) GetWallet(ctx context.Context, principal domain.Principal) (*domain.Wallet, error) {
	wallet, err := s.repo.GetWallet(ctx, principal.ID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	if wallet == nil {
		return &domain.Wallet{UserID: principal.ID}, nil
	}
	return wallet, nil
}

func (s *Service) ListTransactions(ctx context.Context, principal domain.Principal) ([]domain.Transaction, error) {
	txns, err := s.repo.FindTransactionsByUserID(ctx, principal.ID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return txns, nil
}

// Settle finalizes a pending transaction with the outcome reported by the
// external settlement processor. A settled payment credits the freelancer; a
// failed payout releases the reservation back to the wallet. Already-settled
// transactions are left untouched.
func (s *Service) Settle(ctx context.Context, txnID int, succeeded bool) error {
	txn, err := s.repo.FindTransactionByID(ctx, txnID)
	if err != nil {
		return err
	}
	if txn == nil {
		return domain.ErrNotFound
	}
	if txn.Status != domain.TransactionStatusPending {
		return domain.ErrInvalidState
	}

	status := domain.TransactionStatusCompleted
	if !succeeded {
		status = domain.TransactionStatusFailed
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.repo.MarkProcessed(ctx, txnID, status)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrInvalidState
		}

		switch {
		case succeeded && txn.Type == domain.TransactionTypePayment:
			return s.repo.Credit(ctx, txn.UserID, txn.Amount)
		case !succeeded && txn.Type == domain.TransactionTypePayout:
			return s.repo.Credit(ctx, txn.UserID, txn.Amount)
		}
		return nil
	})
}
