package dto

import "time"

type DepositRequestDTO struct {
	Amount float64 `json:"amount" example:"1000"`
}

type PayoutRequestDTO struct {
	Amount float64 `json:"amount" example:"500"`
}

type WalletResponseDTO struct {
	Balance float64 `json:"balance" example:"500.5"`
}

type TransactionResponseDTO struct {
	ID          int        `json:"id" example:"1"`
	TaskID      *int       `json:"task_id,omitempty" example:"1"`
	Type        string     `json:"type" example:"payout"`
	Amount      float64    `json:"amount" example:"500"`
	Status      string     `json:"status" example:"pending"`
	CreatedAt   time.Time  `json:"created_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}
