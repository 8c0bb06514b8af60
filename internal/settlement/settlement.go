package settlement

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nickolaa/konsol-pro-clone/internal/config"
	"github.com/nickolaa/konsol-pro-clone/internal/domain"
	"github.com/nickolaa/konsol-pro-clone/internal/service/ledgerservice"
	"github.com/nickolaa/konsol-pro-clone/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var processingTxns sync.Map

// Response is the settlement processor's verdict for one transaction.
type Response struct {
	Transaction int    `json:"transaction"`
	Status      string `json:"status"`
}

const (
	// settledStatus выплата проведена;
	settledStatus string = "SETTLED"
	// rejectedStatus выплата отклонена банком;
	rejectedStatus string = "REJECTED"
	// processingStatus выплата в обработке;
	processingStatus string = "PROCESSING"
)

// Settler finalizes a pending transaction with the processor's outcome.
type Settler interface {
	Settle(ctx context.Context, txnID int, succeeded bool) error
}

// Service polls the external settlement processor for the outcome of pending
// payouts and payments and applies the verdicts to the ledger.
type Service struct {
	url            string
	ledgerRepo     ledgerservice.Repo
	settler        Settler
	client         clients.HTTPClientI
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, ledgerRepo ledgerservice.Repo, settler Settler, client clients.HTTPClientI) *Service {
	return &Service{
		url:            cfg.SettlementAddress,
		ledgerRepo:     ledgerRepo,
		settler:        settler,
		client:         client,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Settlement service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping settlement service")
			return
		case <-ticker.C:
			s.processTransactions(ctx)
		}
	}
}

func (s *Service) processTransactions(ctx context.Context) {
	txns, err := s.ledgerRepo.FindForSettlement(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch transactions for settlement", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, txn := range txns {
		txn := txn

		if _, loaded := processingTxns.LoadOrStore(txn.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingTxns.Delete(txn.ID)
				return s.handleTransaction(ctx, txn)
			})
			if err != nil {
				processingTxns.Delete(txn.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing settlements", zap.Error(err))
	}
}

func (s *Service) handleTransaction(ctx context.Context, txn domain.Transaction) error {
	url := s.url + "/api/settlements/" + strconv.Itoa(txn.ID)
	var err error
	var statusCode int
	var respBody []byte
	var respHeaders http.Header

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, respBody, respHeaders, err = s.client.Get(url, nil)
			if err != nil {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return fmt.Errorf("failed to query settlement for transaction %d after %d retries: %w", txn.ID, maxRetries, err)
			}

			switch statusCode {
			case http.StatusTooManyRequests:
				return s.handleRateLimit(txn, respHeaders, attempt)
			case http.StatusNoContent:
				// processor has not seen the transaction yet, next tick will retry
				zap.L().Info("Transaction not yet known to settlement processor", zap.Int("transactionID", txn.ID))
				return nil
			case http.StatusOK:
				return s.applyVerdict(ctx, txn, respBody)
			default:
				zap.L().Error("Unexpected status code", zap.Int("status", statusCode), zap.Int("transactionID", txn.ID))
				return errors.New("unexpected status code")
			}
		}
	}
	return nil
}

func (s *Service) applyVerdict(ctx context.Context, txn domain.Transaction, respBody []byte) error {
	var response Response
	if err := json.Unmarshal(respBody, &response); err != nil {
		return fmt.Errorf("failed to parse response body: %w", err)
	}

	if response.Transaction != txn.ID {
		return fmt.Errorf("transaction id mismatch: expected %d, got %d", txn.ID, response.Transaction)
	}

	switch response.Status {
	case settledStatus:
		if err := s.settler.Settle(ctx, txn.ID, true); err != nil {
			return fmt.Errorf("failed to settle transaction %d: %w", txn.ID, err)
		}
	case rejectedStatus:
		if err := s.settler.Settle(ctx, txn.ID, false); err != nil {
			return fmt.Errorf("failed to reject transaction %d: %w", txn.ID, err)
		}
	case processingStatus:
		zap.L().Info("Transaction still processing", zap.Int("transactionID", txn.ID))
	default:
		zap.L().Warn("Unrecognized settlement status received", zap.Int("transactionID", txn.ID), zap.String("status", response.Status))
	}
	return nil
}

func (s *Service) handleRateLimit(txn domain.Transaction, respHeaders http.Header, attempt int) error {
	retryAfterHeader := respHeaders.Get("Retry-After")
	retryAfter := retryInterval * time.Duration(attempt)

	if retryAfterHeader != "" {
		if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Rate limit detected, retrying",
		zap.Int("transactionID", txn.ID),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	time.Sleep(retryAfter)
	return nil
}
