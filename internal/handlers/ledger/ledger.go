package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nickolaa/konsol-pro-clone/internal/domain"
	"github.com/nickolaa/konsol-pro-clone/internal/dto"
	"github.com/nickolaa/konsol-pro-clone/pkg/auth"
	"github.com/nickolaa/konsol-pro-clone/pkg/utils"
)

type Service interface {
	Deposit(ctx context.Context, principal domain.Principal, amount float64) (*domain.Transaction, error)
	RequestPayout(ctx context.Context, principal domain.Principal, amount float64) (*domain.Transaction, error)
	GetWallet(ctx context.Context, principal domain.Principal) (*domain.Wallet, error)
	ListTransactions(ctx context.Context, principal domain.Principal) ([]domain.Transaction, error)
}

type LedgerHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, domain.ErrUnavailable):
		utils.RespondWithError(w, http.StatusServiceUnavailable, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func transactionResponse(txn *domain.Transaction) dto.TransactionResponseDTO {
	return dto.TransactionResponseDTO{
		ID:          txn.ID,
		TaskID:      txn.TaskID,
		Type:        txn.Type,
		Amount:      txn.Amount,
		Status:      txn.Status,
		CreatedAt:   txn.CreatedAt,
		ProcessedAt: txn.ProcessedAt,
	}
}

// Deposit godoc
//
//	@Summary		Top up the wallet
//	@Description	Record a deposit and credit the caller's wallet.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositRequestDTO	true	"Deposit amount"
//	@Success		201		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Non-positive amount"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/deposit [post]
func (h *LedgerHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	txn, err := h.ledgerService.Deposit(r.Context(), principal, req.Amount)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, transactionResponse(txn))
}

// RequestPayout godoc
//
//	@Summary		Request a payout
//	@Description	Reserve the amount from the wallet and queue a pending payout for settlement.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PayoutRequestDTO	true	"Payout amount"
//	@Success		201		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Non-positive amount"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/payout [post]
func (h *LedgerHandler) RequestPayout(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.PayoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	txn, err := h.ledgerService.RequestPayout(r.Context(), principal, req.Amount)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, transactionResponse(txn))
}

// GetWallet godoc
//
//	@Summary		Get the caller's wallet balance
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet [get]
func (h *LedgerHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	wallet, err := h.ledgerService.GetWallet(r.Context(), principal)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{Balance: wallet.Balance})
}

// ListTransactions godoc
//
//	@Summary		List the caller's transactions
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO
//	@Success		204	{object}	utils.Response	"No transactions"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions [get]
func (h *LedgerHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	txns, err := h.ledgerService.ListTransactions(r.Context(), principal)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if len(txns) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No transactions found")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(txns))
	for i := range txns {
		response[i] = transactionResponse(&txns[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
