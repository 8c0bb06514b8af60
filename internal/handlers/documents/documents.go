package documents

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nickolaa/konsol-pro-clone/internal/domain"
	"github.com/nickolaa/konsol-pro-clone/internal/dto"
	"github.com/nickolaa/konsol-pro-clone/pkg/auth"
	"github.com/nickolaa/konsol-pro-clone/pkg/utils"
)

type Service interface {
	GenerateContract(ctx context.Context, principal domain.Principal, taskID int) (*domain.Contract, error)
	GenerateAct(ctx context.Context, principal domain.Principal, taskID int, workPerformed string) (*domain.Act, error)
	Sign(ctx context.Context, principal domain.Principal, ref domain.DocumentRef, signatureBlob, sourceAddress string) (*domain.Signature, error)
	GetContractByTask(ctx context.Context, principal domain.Principal, taskID int) (*domain.Contract, error)
	GetActByTask(ctx context.Context, principal domain.Principal, taskID int) (*domain.Act, error)
}

type DocumentHandler struct {
	documentService Service
}

func New(documentService Service) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
	}
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrDuplicateSignature):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrUnavailable):
		utils.RespondWithError(w, http.StatusServiceUnavailable, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func contractResponse(contract *domain.Contract) dto.ContractResponseDTO {
	return dto.ContractResponseDTO{
		ID:             contract.ID,
		TaskID:         contract.TaskID,
		ContractNumber: contract.ContractNumber,
		Status:         contract.Status,
		Amount:         contract.Amount,
		Deadline:       contract.Deadline,
		FileLocation:   contract.FileLocation,
		CreatedAt:      contract.CreatedAt,
	}
}

func actResponse(act *domain.Act) dto.ActResponseDTO {
	return dto.ActResponseDTO{
		ID:           act.ID,
		TaskID:       act.TaskID,
		ContractID:   act.ContractID,
		ActNumber:    act.ActNumber,
		Status:       act.Status,
		Amount:       act.Amount,
		FileLocation: act.FileLocation,
		CreatedAt:    act.CreatedAt,
	}
}

// GenerateContract godoc
//
//	@Summary		Generate the contract for an assigned task
//	@Description	Snapshot the task terms into a contract awaiting both signatures. One contract per task.
//	@Tags			Documents
//	@Security		BearerAuth
//	@Produce		json
//	@Param			taskID	path		int	true	"Task ID"
//	@Success		201		{object}	dto.ContractResponseDTO
//	@Failure		403		{object}	utils.Response	"Caller is not the task owner"
//	@Failure		404		{object}	utils.Response	"Task not found"
//	@Failure		409		{object}	utils.Response	"Task not assigned or contract already exists"
//	@Router			/api/tasks/{taskID}/contract [post]
func (h *DocumentHandler) GenerateContract(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	taskID, err := strconv.Atoi(chi.URLParam(r, "taskID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	contract, err := h.documentService.GenerateContract(r.Context(), principal, taskID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, contractResponse(contract))
}

// GenerateAct godoc
//
//	@Summary		Generate the completion act
//	@Description	Requires a completed task and a fully signed contract. The work summary defaults to the contract's work description.
//	@Tags			Documents
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			taskID	path		int						true	"Task ID"
//	@Param			request	body		dto.GenerateActRequestDTO	false	"Work summary"
//	@Success		201		{object}	dto.ActResponseDTO
//	@Failure		403		{object}	utils.Response	"Caller is not the task owner"
//	@Failure		404		{object}	utils.Response	"Task not found"
//	@Failure		409		{object}	utils.Response	"Task not completed, contract unsigned, or act already exists"
//	@Router			/api/tasks/{taskID}/act [post]
func (h *DocumentHandler) GenerateAct(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	taskID, err := strconv.Atoi(chi.URLParam(r, "taskID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	var req dto.GenerateActRequestDTO
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	act, err := h.documentService.GenerateAct(r.Context(), principal, taskID, req.WorkPerformed)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, actResponse(act))
}

// SignContract godoc
//
//	@Summary		Sign a contract
//	@Description	Record the caller's signature. The second distinct signature flips the contract to signed.
//	@Tags			Documents
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			contractID	path		int					true	"Contract ID"
//	@Param			request		body		dto.SignRequestDTO	true	"Signature payload"
//	@Success		200			{object}	utils.Response		"Signature recorded"
//	@Failure		400			{object}	utils.Response		"Empty signature payload"
//	@Failure		403			{object}	utils.Response		"Caller is not a party to the contract"
//	@Failure		404			{object}	utils.Response		"Contract not found"
//	@Failure		409			{object}	utils.Response		"Already signed by the caller or not pending"
//	@Router			/api/contracts/{contractID}/sign [post]
func (h *DocumentHandler) SignContract(w http.ResponseWriter, r *http.Request) {
	h.sign(w, r, domain.DocumentKindContract, "contractID")
}

// SignAct godoc
//
//	@Summary		Sign a completion act
//	@Description	Record the caller's signature. The second distinct signature flips the act to signed and records the freelancer's payment.
//	@Tags			Documents
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			actID	path		int					true	"Act ID"
//	@Param			request	body		dto.SignRequestDTO	true	"Signature payload"
//	@Success		200		{object}	utils.Response		"Signature recorded"
//	@Failure		400		{object}	utils.Response		"Empty signature payload"
//	@Failure		403		{object}	utils.Response		"Caller is not a party to the act"
//	@Failure		404		{object}	utils.Response		"Act not found"
//	@Failure		409		{object}	utils.Response		"Already signed by the caller or not pending"
//	@Router			/api/acts/{actID}/sign [post]
func (h *DocumentHandler) SignAct(w http.ResponseWriter, r *http.Request) {
	h.sign(w, r, domain.DocumentKindAct, "actID")
}

func (h *DocumentHandler) sign(w http.ResponseWriter, r *http.Request, kind, param string) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	documentID, err := strconv.Atoi(chi.URLParam(r, param))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid document id")
		return
	}

	var req dto.SignRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ref := domain.DocumentRef{Kind: kind, ID: documentID}
	if _, err := h.documentService.Sign(r.Context(), principal, ref, req.SignatureBlob, r.RemoteAddr); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Signature recorded"})
}

// GetContract godoc
//
//	@Summary		Get the contract for a task
//	@Tags			Documents
//	@Security		BearerAuth
//	@Produce		json
//	@Param			taskID	path		int	true	"Task ID"
//	@Success		200		{object}	dto.ContractResponseDTO
//	@Failure		403		{object}	utils.Response	"Caller is not a party to the contract"
//	@Failure		404		{object}	utils.Response	"No contract for this task"
//	@Router			/api/tasks/{taskID}/contract [get]
func (h *DocumentHandler) GetContract(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	taskID, err := strconv.Atoi(chi.URLParam(r, "taskID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	contract, err := h.documentService.GetContractByTask(r.Context(), principal, taskID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, contractResponse(contract))
}

// GetAct godoc
//
//	@Summary		Get the completion act for a task
//	@Tags			Documents
//	@Security		BearerAuth
//	@Produce		json
//	@Param			taskID	path		int	true	"Task ID"
//	@Success		200		{object}	dto.ActResponseDTO
//	@Failure		403		{object}	utils.Response	"Caller is not a party to the act"
//	@Failure		404		{object}	utils.Response	"No act for this task"
//	@Router			/api/tasks/{taskID}/act [get]
func (h *DocumentHandler) GetAct(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	taskID, err := strconv.Atoi(chi.URLParam(r, "taskID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	act, err := h.documentService.GetActByTask(r.Context(), principal, taskID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, actResponse(act))
}
