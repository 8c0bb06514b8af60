package dto

import "time"

type GenerateActRequestDTO struct {
	WorkPerformed string `json:"work_performed" example:"Logo delivered in vector and raster formats"`
}

type SignRequestDTO struct {
	SignatureBlob string `json:"signature_blob" example:"base64-consent-payload"`
}

type ContractResponseDTO struct {
	ID             int        `json:"id" example:"1"`
	TaskID         int        `json:"task_id" example:"1"`
	ContractNumber string     `json:"contract_number" example:"CON-20260830-18927354"`
	Status         string     `json:"status" example:"pending_signature"`
	Amount         float64    `json:"amount" example:"5000"`
	Deadline       *time.Time `json:"deadline,omitempty"`
	FileLocation   *string    `json:"file_location,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type ActResponseDTO struct {
	ID           int       `json:"id" example:"1"`
	TaskID       int       `json:"task_id" example:"1"`
	ContractID   int       `json:"contract_id" example:"1"`
	ActNumber    string    `json:"act_number" example:"ACT-20260830-52113948"`
	Status       string    `json:"status" example:"pending_signature"`
	Amount       float64   `json:"amount" example:"5000"`
	FileLocation *string   `json:"file_location,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
