package domain

import "time"

// Principal is the authenticated caller supplied by the external identity
// provider. Role flags are non-exclusive capabilities.
type Principal struct {
	ID           int  `json:"id"`
	IsEmployer   bool `json:"is_employer"`
	IsFreelancer bool `json:"is_freelancer"`
}

type Task struct {
	ID          int        `db:"id"`
	EmployerID  int        `db:"employer_id"`
	AssigneeID  *int       `db:"assignee_id"`
	TemplateID  *int       `db:"template_id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	Amount      float64    `db:"amount"`
	Status      string     `db:"status"`
	Deadline    *time.Time `db:"deadline"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

type TaskTemplate struct {
	ID            int       `db:"id"`
	EmployerID    int       `db:"employer_id"`
	Name          string    `db:"name"`
	Title         string    `db:"title"`
	Description   string    `db:"description"`
	DefaultAmount float64   `db:"default_amount"`
	CreatedAt     time.Time `db:"created_at"`
}

type Contract struct {
	ID              int        `db:"id"`
	TaskID          int        `db:"task_id"`
	ContractNumber  string     `db:"contract_number"`
	EmployerID      int        `db:"employer_id"`
	FreelancerID    int        `db:"freelancer_id"`
	WorkDescription string     `db:"work_description"`
	Amount          float64    `db:"amount"`
	Deadline        *time.Time `db:"deadline"`
	Status          string     `db:"status"`
	FileLocation    *string    `db:"file_location"`
	CreatedAt       time.Time  `db:"created_at"`
}

type Act struct {
	ID            int       `db:"id"`
	TaskID        int       `db:"task_id"`
	ContractID    int       `db:"contract_id"`
	ActNumber     string    `db:"act_number"`
	EmployerID    int       `db:"employer_id"`
	FreelancerID  int       `db:"freelancer_id"`
	WorkPerformed string    `db:"work_performed"`
	Amount        float64   `db:"amount"`
	Status        string    `db:"status"`
	FileLocation  *string   `db:"file_location"`
	CreatedAt     time.Time `db:"created_at"`
}

type Signature struct {
	ID            int       `db:"id"`
	SignerID      int       `db:"signer_id"`
	DocumentKind  string    `db:"document_kind"`
	DocumentID    int       `db:"document_id"`
	SignatureBlob string    `db:"signature_blob"`
	SourceAddress string    `db:"source_address"`
	SignedAt      time.Time `db:"signed_at"`
}

type Transaction struct {
	ID          int        `db:"id"`
	UserID      int        `db:"user_id"`
	TaskID      *int       `db:"task_id"`
	Type        string     `db:"type"`
	Amount      float64    `db:"amount"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}

type Wallet struct {
	ID      int     `db:"id"`
	UserID  int     `db:"user_id"`
	Balance float64 `db:"balance"`
}

type Review struct {
	ID           int       `db:"id"`
	TaskID       int       `db:"task_id"`
	EmployerID   int       `db:"employer_id"`
	FreelancerID int       `db:"freelancer_id"`
	Rating       int       `db:"rating"`
	Comment      string    `db:"comment"`
	CreatedAt    time.Time `db:"created_at"`
}

const (
	// TaskStatusDraft задание создано, но не опубликовано;
	TaskStatusDraft string = "draft"
	// TaskStatusPublished задание доступно для исполнителей;
	TaskStatusPublished string = "published"
	// TaskStatusAssigned исполнитель назначен, работа идёт;
	TaskStatusAssigned string = "assigned"
	// TaskStatusCompleted работа выполнена исполнителем;
	TaskStatusCompleted string = "completed"
	// TaskStatusCancelled задание отменено заказчиком.
	TaskStatusCancelled string = "cancelled"
)

const (
	DocumentStatusDraft            string = "draft"
	DocumentStatusPendingSignature string = "pending_signature"
	DocumentStatusSigned           string = "signed"
	DocumentStatusCancelled        string = "cancelled"
)

const (
	DocumentKindContract string = "contract"
	DocumentKindAct      string = "act"
)

const (
	TransactionTypeDeposit string = "deposit"
	TransactionTypePayout  string = "payout"
	TransactionTypePayment string = "payment"
)

const (
	TransactionStatusPending   string = "pending"
	TransactionStatusCompleted string = "completed"
	TransactionStatusFailed    string = "failed"
)

const (
	RatingMin = 1
	RatingMax = 5
)

// DocumentRef addresses one of the two signable document kinds.
type DocumentRef struct {
	Kind string
	ID   int
}

func ContractRef(id int) DocumentRef { return DocumentRef{Kind: DocumentKindContract, ID: id} }
func ActRef(id int) DocumentRef      { return DocumentRef{Kind: DocumentKindAct, ID: id} }

// IsTerminal reports whether a task status admits no further transitions.
func IsTerminal(status string) bool {
	return status == TaskStatusCompleted || status == TaskStatusCancelled
}
