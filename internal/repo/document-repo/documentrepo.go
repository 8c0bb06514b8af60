package documentrepo

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

const contractColumns = `id, task_id, contract_number, employer_id, freelancer_id, work_description, amount, deadline, status, file_location, created_at`

const actColumns = `id, task_id, contract_id, act_number, employer_id, freelancer_id, work_performed, amount, status, file_location, created_at`

func scanContract(row pgx.Row) (*domain.Contract, error) {
	var c domain.Contract
	err := row.Scan(
		&c.ID, &c.TaskID, &c.ContractNumber, &c.EmployerID, &c.FreelancerID,
		&c.WorkDescription, &c.Amount, &c.Deadline, &c.Status, &c.FileLocation, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanAct(row pgx.Row) (*domain.Act, error) {
	var a domain.Act
	err := row.Scan(
		&a.ID, &a.TaskID, &a.ContractID, &a.ActNumber, &a.EmployerID, &a.FreelancerID,
		&a.WorkPerformed, &a.Amount, &a.Status, &a.FileLocation, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) CreateContract(ctx context.Context, contract *domain.Contract) error {
	query := `
        INSERT INTO contracts (task_id, contract_number, employer_id, freelancer_id, work_description, amount, deadline, status, file_location)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		contract.TaskID, contract.ContractNumber, contract.EmployerID, contract.FreelancerID,
		contract.WorkDescription, contract.Amount, contract.Deadline, contract.Status, contract.FileLocation,
	).Scan(&contract.ID, &contract.CreatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err, "") {
			return domain.ErrConflict
		}
		zap.L().Error("can't save contract", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CreateAct(ctx context.Context, act *domain.Act) error {
	query := `
        INSERT INTO acts (task_id, contract_id, act_number, employer_id, freelancer_id, work_performed, amount, status, file_location)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		act.TaskID, act.ContractID, act.ActNumber, act.EmployerID, act.FreelancerID,
		act.WorkPerformed, act.Amount, act.Status, act.FileLocation,
	).Scan(&act.ID, &act.CreatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err, "") {
			return domain.ErrConflict
		}
		zap.L().Error("can't save act", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindContractByID(ctx context.Context, contractID int) (*domain.Contract, error) {
	query := `
        SELECT ` + contractColumns + `
        FROM contracts
        WHERE id = $1
    `
	contract, err := scanContract(r.db.QueryRow(ctx, query, contractID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find contract", zap.Error(err))
		return nil, err
	}
	return contract, nil
}

func (r *Repository) FindContractByTaskID(ctx context.Context, taskID int) (*domain.Contract, error) {
	query := `
        SELECT ` + contractColumns + `
        FROM contracts
        WHERE task_id = $1
    `
	contract, err := scanContract(r.db.QueryRow(ctx, query, taskID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find contract by task", zap.Error(err))
		return nil, err
	}
	return contract, nil
}

func (r *Repository) FindActByID(ctx context.Context, actID int) (*domain.Act, error) {
	query := `
        SELECT ` + actColumns + `
        FROM acts
        WHERE id = $1
    `
	act, err := scanAct(r.db.QueryRow(ctx, query, actID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find act", zap.Error(err))
		return nil, err
	}
	return act, nil
}

func (r *Repository) FindActByTaskID(ctx context.Context, taskID int) (*domain.Act, error) {
	query := `
        SELECT ` + actColumns + `
        FROM acts
        WHERE task_id = $1
    `
	act, err := scanAct(r.db.QueryRow(ctx, query, taskID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find act by task", zap.Error(err))
		return nil, err
	}
	return act, nil
}

func (r *Repository) UpdateContractStatus(ctx context.Context, contractID int, status string) error {
	query := `
        UPDATE contracts
        SET status = $1
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, status, contractID); err != nil {
		zap.L().Error("failed to update contract status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateActStatus(ctx context.Context, actID int, status string) error {
	query := `
        UPDATE acts
        SET status = $1
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, status, actID); err != nil {
		zap.L().Error("failed to update act status", zap.Error(err))
		return err
	}
	return nil
}

// LockDocument takes the document's row lock for the current transaction and
// returns its status. Signing serializes on it before inserting and counting,
// otherwise two concurrent signers each count only their own row.
func (r *Repository) LockDocument(ctx context.Context, ref domain.DocumentRef) (string, error) {
	var query string
	switch ref.Kind {
	case domain.DocumentKindContract:
		query = `SELECT status FROM contracts WHERE id = $1 FOR UPDATE`
	case domain.DocumentKindAct:
		query = `SELECT status FROM acts WHERE id = $1 FOR UPDATE`
	default:
		return "", domain.ErrValidation
	}

	var status string
	if err := r.db.QueryRow(ctx, query, ref.ID).Scan(&status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		zap.L().Error("can't lock document", zap.Error(err))
		return "", err
	}
	return status, nil
}

// CreateSignature persists one signing event. The storage-level unique index on
// (signer, document kind, document id) is the double-signing guard.
func (r *Repository) CreateSignature(ctx context.Context, sig *domain.Signature) error {
	query := `
        INSERT INTO signatures (signer_id, document_kind, document_id, signature_blob, source_address)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, signed_at
    `
	err := r.db.QueryRow(ctx, query,
		sig.SignerID, sig.DocumentKind, sig.DocumentID, sig.SignatureBlob, sig.SourceAddress,
	).Scan(&sig.ID, &sig.SignedAt)
	if err != nil {
		if pg.IsUniqueViolation(err, "signatures_signer_document_key") {
			return domain.ErrDuplicateSignature
		}
		zap.L().Error("can't save signature", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CountSignatures(ctx context.Context, ref domain.DocumentRef) (int, error) {
	query := `
        SELECT count(DISTINCT signer_id)
        FROM signatures
        WHERE document_kind = $1 AND document_id = $2
    `
	var count int
	if err := r.db.QueryRow(ctx, query, ref.Kind, ref.ID).Scan(&count); err != nil {
		zap.L().Error("can't count signatures", zap.Error(err))
		return 0, err
	}
	return count, nil
}
