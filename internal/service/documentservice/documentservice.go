package documentservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/nickolaa/konsol-pro-clone/internal/domain"
	"github.com/nickolaa/konsol-pro-clone/internal/pg"
	"github.com/nickolaa/konsol-pro-clone/pkg/docnum"
)

type Repo interface {
	CreateContract(ctx context.Context, contract *domain.Contract) error
	CreateAct(ctx context.Context, act *domain.Act) error
	FindContractByID(ctx context.Context, contractID int) (*domain.Contract, error)
	FindContractByTaskID(ctx context.Context, taskID int) (*domain.Contract, error)
	FindActByID(ctx context.Context, actID int) (*domain.Act, error)
	FindActByTaskID(ctx context.Context, taskID int) (*domain.Act, error)
	UpdateContractStatus(ctx context.Context, contractID int, status string) error
	UpdateActStatus(ctx context.Context, actID int, status string) error
	LockDocument(ctx context.Context, ref domain.DocumentRef) (string, error)
	CreateSignature(ctx context.Context, sig *domain.Signature) error
	CountSignatures(ctx context.Context, ref domain.DocumentRef) (int, error)
}

type TaskRepo interface {
	FindByID(ctx context.Context, taskID int) (*domain.Task, error)
}

// PaymentRecorder is the slice of the ledger used when a signed act produces
// the freelancer's payment.
type PaymentRecorder interface {
	RecordTaskPayment(ctx context.Context, taskID, freelancerID int, amount float64) (*domain.Transaction, error)
}

// Renderer is the external document renderer: it turns snapshot fields into an
// immutable artifact and returns its storage locator.
type Renderer interface {
	Render(ctx context.Context, kind string, fields map[string]any) (string, error)
}

// signersRequired is the two-party threshold that promotes a document to signed.
const signersRequired = 2

type Service struct {
	repo      Repo
	taskRepo  TaskRepo
	ledger    PaymentRecorder
	renderer  Renderer
	txManager pg.TXManager
}

func New(repo Repo, taskRepo TaskRepo, ledger PaymentRecorder, renderer Renderer, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		taskRepo:  taskRepo,
		ledger:    ledger,
		renderer:  renderer,
		txManager: txManager,
	}
}

// GenerateContract snapshots the assigned task into a contract awaiting both
// signatures. Later task edits do not touch the snapshot.
func (s *Service) GenerateContract(ctx context.Context, principal domain.Principal, taskID int) (*domain.Contract, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	if task.EmployerID != principal.ID {
		return nil, domain.ErrForbidden
	}
	if task.Status != domain.TaskStatusAssigned || task.AssigneeID == nil {
		return nil, domain.ErrInvalidState
	}

	existing, err := s.repo.FindContractByTaskID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}

	contract := &domain.Contract{
		TaskID:          task.ID,
		ContractNumber:  docnum.Generate(docnum.ContractPrefix, time.Now()),
		EmployerID:      task.EmployerID,
		FreelancerID:    *task.AssigneeID,
		WorkDescription: task.Description,
		Amount:          task.Amount,
		Deadline:        task.Deadline,
		Status:          domain.DocumentStatusPendingSignature,
	}

	location, err := s.renderer.Render(ctx, domain.DocumentKindContract, map[string]any{
		"contract_number":  contract.ContractNumber,
		"employer_id":      contract.EmployerID,
		"freelancer_id":    contract.FreelancerID,
		"work_description": contract.WorkDescription,
		"amount":           contract.Amount,
		"deadline":         contract.Deadline,
	})
	if err != nil {
		zap.L().Error("failed to render contract", zap.Error(err))
		return nil, err
	}
	contract.FileLocation = &location

	if err := s.repo.CreateContract(ctx, contract); err != nil {
		return nil, err
	}
	return contract, nil
}

// GenerateAct requires a completed task and a fully signed contract.
func (s *Service) GenerateAct(ctx context.Context, principal domain.Principal, taskID int, workPerformed string) (*domain.Act, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	if task.EmployerID != principal.ID {
		return nil, domain.ErrForbidden
	}
	if task.Status != domain.TaskStatusCompleted || task.AssigneeID == nil {
		return nil, domain.ErrInvalidState
	}

	contract, err := s.repo.FindContractByTaskID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if contract == nil || contract.Status != domain.DocumentStatusSigned {
		return nil, domain.ErrInvalidState
	}

	existing, err := s.repo.FindActByTaskID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}

	if workPerformed == "" {
		workPerformed = contract.WorkDescription
	}

	act := &domain.Act{
		TaskID:        task.ID,
		ContractID:    contract.ID,
		ActNumber:     docnum.Generate(docnum.ActPrefix, time.Now()),
		EmployerID:    task.EmployerID,
		FreelancerID:  *task.AssigneeID,
		WorkPerformed: workPerformed,
		Amount:        contract.Amount,
		Status:        domain.DocumentStatusPendingSignature,
	}

	location, err := s.renderer.Render(ctx, domain.DocumentKindAct, map[string]any{
		"act_number":      act.ActNumber,
		"contract_number": contract.ContractNumber,
		"employer_id":     act.EmployerID,
		"freelancer_id":   act.FreelancerID,
		"work_performed":  act.WorkPerformed,
		"amount":          act.Amount,
	})
	if err != nil {
		zap.L().Error("failed to render act", zap.Error(err))
		return nil, err
	}
	act.FileLocation = &location

	if err := s.repo.CreateAct(ctx, act); err != nil {
		return nil, err
	}
	return act, nil
}

type documentParties struct {
	employerID   int
	freelancerID int
	taskID       int
	amount       float64
	status       string
}

func (s *Service) loadParties(ctx context.Context, ref domain.DocumentRef) (*documentParties, error) {
	switch ref.Kind {
	case domain.DocumentKindContract:
		contract, err := s.repo.FindContractByID(ctx, ref.ID)
		if err != nil {
			return nil, err
		}
		if contract == nil {
			return nil, domain.ErrNotFound
		}
		return &documentParties{
			employerID:   contract.EmployerID,
			freelancerID: contract.FreelancerID,
			taskID:       contract.TaskID,
			amount:       contract.Amount,
			status:       contract.Status,
		}, nil
	case domain.DocumentKindAct:
		act, err := s.repo.FindActByID(ctx, ref.ID)
		if err != nil {
			return nil, err
		}
		if act == nil {
			return nil, domain.ErrNotFound
		}
		return &documentParties{
			employerID:   act.EmployerID,
			freelancerID: act.FreelancerID,
			taskID:       act.TaskID,
			amount:       act.Amount,
			status:       act.Status,
		}, nil
	default:
		return nil, domain.ErrValidation
	}
}

// Sign records one party's signing event. Exactly when the second distinct
// signature lands, the document flips to signed and — for an act — the
// freelancer's pending payment is recorded, all in one transaction.
func (s *Service) Sign(ctx context.Context, principal domain.Principal, ref domain.DocumentRef, signatureBlob, sourceAddress string) (*domain.Signature, error) {
	if signatureBlob == "" {
		return nil, domain.ErrValidation
	}

	doc, err := s.loadParties(ctx, ref)
	if err != nil {
		return nil, err
	}
	if principal.ID != doc.employerID && principal.ID != doc.freelancerID {
		return nil, domain.ErrForbidden
	}
	if doc.status != domain.DocumentStatusPendingSignature {
		return nil, domain.ErrInvalidState
	}

	task, err := s.taskRepo.FindByID(ctx, doc.taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	if task.Status == domain.TaskStatusCancelled {
		return nil, domain.ErrInvalidState
	}

	sig := &domain.Signature{
		SignerID:      principal.ID,
		DocumentKind:  ref.Kind,
		DocumentID:    ref.ID,
		SignatureBlob: signatureBlob,
		SourceAddress: sourceAddress,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		// The row lock serializes concurrent signers: the second one to
		// acquire it counts both committed signatures and promotes.
		status, err := s.repo.LockDocument(ctx, ref)
		if err != nil {
			return err
		}
		if status != domain.DocumentStatusPendingSignature {
			return domain.ErrInvalidState
		}

		if err := s.repo.CreateSignature(ctx, sig); err != nil {
			return err
		}

		count, err := s.repo.CountSignatures(ctx, ref)
		if err != nil {
			return err
		}
		if count < signersRequired {
			return nil
		}

		switch ref.Kind {
		case domain.DocumentKindContract:
			return s.repo.UpdateContractStatus(ctx, ref.ID, domain.DocumentStatusSigned)
		case domain.DocumentKindAct:
			if err := s.repo.UpdateActStatus(ctx, ref.ID, domain.DocumentStatusSigned); err != nil {
				return err
			}
			_, err := s.ledger.RecordTaskPayment(ctx, doc.taskID, doc.freelancerID, doc.amount)
			return err
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrDuplicateSignature) {
			zap.L().Error("failed to sign document", zap.Error(err))
		}
		return nil, err
	}
	return sig, nil
}

func (s *Service) GetContractByTask(ctx context.Context, principal domain.Principal, taskID int) (*domain.Contract, error) {
	contract, err := s.repo.FindContractByTaskID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, domain.ErrNotFound
	}
	if principal.ID != contract.EmployerID && principal.ID != contract.FreelancerID {
		return nil, domain.ErrForbidden
	}
	return contract, nil
}

func (s *Service) GetActByTask(ctx context.Context, principal domain.Principal, taskID int) (*domain.Act, error) {
	act, err := s.repo.FindActByTaskID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if act == nil {
		return nil, domain.ErrNotFound
	}
	if principal.ID != act.EmployerID && principal.ID != act.FreelancerID {
		return nil, domain.ErrForbidden
	}
	return act, nil
}
