package documentrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

var contractCols = []string{
	"id", "task_id", "contract_number", "employer_id", "freelancer_id",
	"work_description", "amount", "deadline", "status", "file_location", "created_at",
}

var actCols = []string{
	"id", "task_id", "contract_id", "act_number", "employer_id", "freelancer_id",
	"work_performed", "amount", "status", "file_location", "created_at",
}

func uniqueViolation(constraint string) *pgconn.PgError {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func strPtr(s string) *string {
	return &s
}

func TestRepository_CreateContract(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name          string
		mockSetup     func()
		expectedError error
	}{
		{
			name: "Contract saved",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(7, now)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO contracts")).
					WithArgs(1, "C-0017", 10, 20, "Vector logo", 5000.0, pgxmock.AnyArg(), "pending_signature", strPtr("contracts/C-0017.pdf")).
					WillReturnRows(rows)
			},
		},
		{
			name: "Second contract for the task",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO contracts")).
					WithArgs(1, "C-0017", 10, 20, "Vector logo", 5000.0, pgxmock.AnyArg(), "pending_signature", strPtr("contracts/C-0017.pdf")).
					WillReturnError(uniqueViolation("contracts_task_key"))
			},
			expectedError: domain.ErrConflict,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO contracts")).
					WithArgs(1, "C-0017", 10, 20, "Vector logo", 5000.0, pgxmock.AnyArg(), "pending_signature", strPtr("contracts/C-0017.pdf")).
					WillReturnError(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			contract := &domain.Contract{
				TaskID:          1,
				ContractNumber:  "C-0017",
				EmployerID:      10,
				FreelancerID:    20,
				WorkDescription: "Vector logo",
				Amount:          5000.0,
				Status:          domain.DocumentStatusPendingSignature,
				FileLocation:    strPtr("contracts/C-0017.pdf"),
			}
			err := repo.CreateContract(context.Background(), contract)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 7, contract.ID)
			}
		})
	}
}

func TestRepository_CreateAct(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Act saved", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(3, now)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO acts")).
			WithArgs(1, 7, "A-0035", 10, 20, "Logo delivered", 5000.0, "pending_signature", strPtr("acts/A-0035.pdf")).
			WillReturnRows(rows)

		act := &domain.Act{
			TaskID:        1,
			ContractID:    7,
			ActNumber:     "A-0035",
			EmployerID:    10,
			FreelancerID:  20,
			WorkPerformed: "Logo delivered",
			Amount:        5000.0,
			Status:        domain.DocumentStatusPendingSignature,
			FileLocation:  strPtr("acts/A-0035.pdf"),
		}
		err := repo.CreateAct(context.Background(), act)
		assert.NoError(t, err)
		assert.Equal(t, 3, act.ID)
	})

	t.Run("Second act for the task", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO acts")).
			WithArgs(1, 7, "A-0035", 10, 20, "Logo delivered", 5000.0, "pending_signature", strPtr("acts/A-0035.pdf")).
			WillReturnError(uniqueViolation("acts_task_key"))

		act := &domain.Act{
			TaskID: 1, ContractID: 7, ActNumber: "A-0035", EmployerID: 10, FreelancerID: 20,
			WorkPerformed: "Logo delivered", Amount: 5000.0,
			Status: domain.DocumentStatusPendingSignature, FileLocation: strPtr("acts/A-0035.pdf"),
		}
		err := repo.CreateAct(context.Background(), act)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestRepository_FindContractByTaskID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	deadline := now.Add(72 * time.Hour)

	t.Run("Contract exists", func(t *testing.T) {
		rows := pgxmock.NewRows(contractCols).
			AddRow(7, 1, "C-0017", 10, 20, "Vector logo", 5000.0, &deadline, "signed", strPtr("contracts/C-0017.pdf"), now)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE task_id = $1")).
			WithArgs(1).
			WillReturnRows(rows)

		contract, err := repo.FindContractByTaskID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, "C-0017", contract.ContractNumber)
		assert.Equal(t, domain.DocumentStatusSigned, contract.Status)
	})

	t.Run("No contract for the task", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE task_id = $1")).
			WithArgs(1).
			WillReturnError(pgx.ErrNoRows)

		contract, err := repo.FindContractByTaskID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Nil(t, contract)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE task_id = $1")).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		_, err := repo.FindContractByTaskID(context.Background(), 1)
		assert.Error(t, err)
	})
}

func TestRepository_FindContractByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Contract exists", func(t *testing.T) {
		rows := pgxmock.NewRows(contractCols).
			AddRow(7, 1, "C-0017", 10, 20, "Vector logo", 5000.0, nil, "pending_signature", strPtr("contracts/C-0017.pdf"), now)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
			WithArgs(7).
			WillReturnRows(rows)

		contract, err := repo.FindContractByID(context.Background(), 7)
		assert.NoError(t, err)
		assert.Equal(t, 7, contract.ID)
		assert.Nil(t, contract.Deadline)
	})

	t.Run("Contract does not exist", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
			WithArgs(7).
			WillReturnError(pgx.ErrNoRows)

		contract, err := repo.FindContractByID(context.Background(), 7)
		assert.NoError(t, err)
		assert.Nil(t, contract)
	})
}

func TestRepository_FindActByTaskID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Act exists", func(t *testing.T) {
		rows := pgxmock.NewRows(actCols).
			AddRow(3, 1, 7, "A-0035", 10, 20, "Logo delivered", 5000.0, "pending_signature", strPtr("acts/A-0035.pdf"), now)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE task_id = $1")).
			WithArgs(1).
			WillReturnRows(rows)

		act, err := repo.FindActByTaskID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, "A-0035", act.ActNumber)
		assert.Equal(t, 7, act.ContractID)
	})

	t.Run("No act for the task", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE task_id = $1")).
			WithArgs(1).
			WillReturnError(pgx.ErrNoRows)

		act, err := repo.FindActByTaskID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Nil(t, act)
	})
}

func TestRepository_UpdateContractStatus(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Status updated", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE contracts")).
			WithArgs("signed", 7).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateContractStatus(context.Background(), 7, domain.DocumentStatusSigned)
		assert.NoError(t, err)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE contracts")).
			WithArgs("signed", 7).
			WillReturnError(errors.New("database error"))

		err := repo.UpdateContractStatus(context.Background(), 7, domain.DocumentStatusSigned)
		assert.Error(t, err)
	})
}

func TestRepository_UpdateActStatus(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Status updated", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE acts")).
			WithArgs("signed", 3).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateActStatus(context.Background(), 3, domain.DocumentStatusSigned)
		assert.NoError(t, err)
	})
}

func TestRepository_CreateSignature(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name          string
		mockSetup     func()
		expectedError error
	}{
		{
			name: "Signature recorded",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "signed_at"}).AddRow(11, now)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO signatures")).
					WithArgs(10, "contract", 7, "base64blob", "198.51.100.7:55001").
					WillReturnRows(rows)
			},
		},
		{
			name: "Same signer signs twice",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO signatures")).
					WithArgs(10, "contract", 7, "base64blob", "198.51.100.7:55001").
					WillReturnError(uniqueViolation("signatures_signer_document_key"))
			},
			expectedError: domain.ErrDuplicateSignature,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO signatures")).
					WithArgs(10, "contract", 7, "base64blob", "198.51.100.7:55001").
					WillReturnError(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			sig := &domain.Signature{
				SignerID:      10,
				DocumentKind:  domain.DocumentKindContract,
				DocumentID:    7,
				SignatureBlob: "base64blob",
				SourceAddress: "198.51.100.7:55001",
			}
			err := repo.CreateSignature(context.Background(), sig)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 11, sig.ID)
			}
		})
	}
}

func TestRepository_LockDocument(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Contract row locked", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"status"}).AddRow("pending_signature")
		mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM contracts WHERE id = $1 FOR UPDATE")).
			WithArgs(7).
			WillReturnRows(rows)

		status, err := repo.LockDocument(context.Background(), domain.ContractRef(7))
		assert.NoError(t, err)
		assert.Equal(t, domain.DocumentStatusPendingSignature, status)
	})

	t.Run("Act row locked", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"status"}).AddRow("signed")
		mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM acts WHERE id = $1 FOR UPDATE")).
			WithArgs(3).
			WillReturnRows(rows)

		status, err := repo.LockDocument(context.Background(), domain.ActRef(3))
		assert.NoError(t, err)
		assert.Equal(t, domain.DocumentStatusSigned, status)
	})

	t.Run("Missing document", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM contracts WHERE id = $1 FOR UPDATE")).
			WithArgs(99).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.LockDocument(context.Background(), domain.ContractRef(99))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Unknown document kind", func(t *testing.T) {
		_, err := repo.LockDocument(context.Background(), domain.DocumentRef{Kind: "invoice", ID: 1})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestRepository_CountSignatures(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Distinct signers counted", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"count"}).AddRow(2)
		mock.ExpectQuery(regexp.QuoteMeta("count(DISTINCT signer_id)")).
			WithArgs("contract", 7).
			WillReturnRows(rows)

		count, err := repo.CountSignatures(context.Background(), domain.ContractRef(7))
		assert.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("count(DISTINCT signer_id)")).
			WithArgs("contract", 7).
			WillReturnError(errors.New("database error"))

		_, err := repo.CountSignatures(context.Background(), domain.ContractRef(7))
		assert.Error(t, err)
	})
}
