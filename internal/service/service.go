package service

import (
	"github.com/nickolaa/konsol-pro-clone/internal/handlers/documents"
	"github.com/nickolaa/konsol-pro-clone/internal/handlers/ledger"
	"github.com/nickolaa/konsol-pro-clone/internal/handlers/reviews"
	"github.com/nickolaa/konsol-pro-clone/internal/handlers/tasks"

	"github.com/nickolaa/konsol-pro-clone/internal/pg"
	"github.com/nickolaa/konsol-pro-clone/internal/repo"
	"github.com/nickolaa/konsol-pro-clone/internal/service/documentservice"
	"github.com/nickolaa/konsol-pro-clone/internal/service/ledgerservice"
	"github.com/nickolaa/konsol-pro-clone/internal/service/reviewservice"
	"github.com/nickolaa/konsol-pro-clone/internal/service/taskservice"
)

type Services struct {
	TaskService     tasks.Service
	DocumentService documents.Service
	LedgerService   ledger.Service
	ReviewService   reviews.Service

	// Ledger is the concrete ledger service; the settlement poller needs its
	// Settle method, which the HTTP surface does not expose.
	Ledger *ledgerservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, renderer documentservice.Renderer) *Services {
	ledgerService := ledgerservice.New(repo.LedgerRepo, txManager)
	taskService := taskservice.New(repo.TaskRepo)
	documentService := documentservice.New(repo.DocumentRepo, repo.TaskRepo, ledgerService, renderer, txManager)
	reviewService := reviewservice.New(repo.ReviewRepo, repo.TaskRepo)

	return &Services{
		TaskService:     taskService,
		DocumentService: documentService,
		LedgerService:   ledgerService,
		ReviewService:   reviewService,
		Ledger:          ledgerService,
	}
}
