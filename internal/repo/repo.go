package repo

import (
	"github.com/nickolaa/konsol-pro-clone/internal/pg"
	documentrepo "github.com/nickolaa/konsol-pro-clone/internal/repo/document-repo"
	ledgerrepo "github.com/nickolaa/konsol-pro-clone/internal/repo/ledger-repo"
	reviewrepo "github.com/nickolaa/konsol-pro-clone/internal/repo/review-repo"
	taskrepo "github.com/nickolaa/konsol-pro-clone/internal/repo/task-repo"
	"github.com/nickolaa/konsol-pro-clone/internal/service/documentservice"
	"github.com/nickolaa/konsol-pro-clone/internal/service/ledgerservice"
	"github.com/nickolaa/konsol-pro-clone/internal/service/reviewservice"
	"github.com/nickolaa/konsol-pro-clone/internal/service/taskservice"
)

type Repositories struct {
	TaskRepo     taskservice.Repo
	DocumentRepo documentservice.Repo
	LedgerRepo   ledgerservice.Repo
	ReviewRepo   reviewservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	taskRepo := taskrepo.New(conn, txManager)
	documentRepo := documentrepo.New(conn)
	ledgerRepo := ledgerrepo.New(conn)
	reviewRepo := reviewrepo.New(conn)

	return &Repositories{
		TaskRepo:     taskRepo,
		DocumentRepo: documentRepo,
		LedgerRepo:   ledgerRepo,
		ReviewRepo:   reviewRepo,
	}
}
