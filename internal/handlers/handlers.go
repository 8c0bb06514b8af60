package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/nickolaa/konsol-pro-clone/docs"
	documenthandlers "github.com/nickolaa/konsol-pro-clone/internal/handlers/documents"
	ledgerhandlers "github.com/nickolaa/konsol-pro-clone/internal/handlers/ledger"
	reviewhandlers "github.com/nickolaa/konsol-pro-clone/internal/handlers/reviews"
	taskhandlers "github.com/nickolaa/konsol-pro-clone/internal/handlers/tasks"
	"github.com/nickolaa/konsol-pro-clone/internal/service"
	"github.com/nickolaa/konsol-pro-clone/pkg/auth"
)

type TaskHandler interface {
	CreateTask(w http.ResponseWriter, r *http.Request)
	UpdateTask(w http.ResponseWriter, r *http.Request)
	Publish(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	GetTask(w http.ResponseWriter, r *http.Request)
	ListTasks(w http.ResponseWriter, r *http.Request)
	CreateTemplate(w http.ResponseWriter, r *http.Request)
	ListTemplates(w http.ResponseWriter, r *http.Request)
}

type DocumentHandler interface {
	GenerateContract(w http.ResponseWriter, r *http.Request)
	GenerateAct(w http.ResponseWriter, r *http.Request)
	SignContract(w http.ResponseWriter, r *http.Request)
	SignAct(w http.ResponseWriter, r *http.Request)
	GetContract(w http.ResponseWriter, r *http.Request)
	GetAct(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	Deposit(w http.ResponseWriter, r *http.Request)
	RequestPayout(w http.ResponseWriter, r *http.Request)
	GetWallet(w http.ResponseWriter, r *http.Request)
	ListTransactions(w http.ResponseWriter, r *http.Request)
}

type ReviewHandler interface {
	CreateReview(w http.ResponseWriter, r *http.Request)
	GetReview(w http.ResponseWriter, r *http.Request)
	ListReviews(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	TaskHandler     TaskHandler
	DocumentHandler DocumentHandler
	LedgerHandler   LedgerHandler
	ReviewHandler   ReviewHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		TaskHandler:     taskhandlers.New(s.TaskService),
		DocumentHandler: documenthandlers.New(s.DocumentService),
		LedgerHandler:   ledgerhandlers.New(s.LedgerService),
		ReviewHandler:   reviewhandlers.New(s.ReviewService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Route("/api/tasks", func(r chi.Router) {
			r.Post("/", h.TaskHandler.CreateTask)
			r.Get("/", h.TaskHandler.ListTasks)

			r.Route("/{taskID}", func(r chi.Router) {
				r.Get("/", h.TaskHandler.GetTask)
				r.Patch("/", h.TaskHandler.UpdateTask)
				r.Post("/publish", h.TaskHandler.Publish)
				r.Post("/assign", h.TaskHandler.Assign)
				r.Post("/complete", h.TaskHandler.Complete)
				r.Post("/cancel", h.TaskHandler.Cancel)

				r.Post("/contract", h.DocumentHandler.GenerateContract)
				r.Get("/contract", h.DocumentHandler.GetContract)
				r.Post("/act", h.DocumentHandler.GenerateAct)
				r.Get("/act", h.DocumentHandler.GetAct)

				r.Post("/review", h.ReviewHandler.CreateReview)
				r.Get("/review", h.ReviewHandler.GetReview)
			})
		})
		r.Route("/api/task-templates", func(r chi.Router) {
			r.Post("/", h.TaskHandler.CreateTemplate)
			r.Get("/", h.TaskHandler.ListTemplates)
		})
		r.Post("/api/contracts/{contractID}/sign", h.DocumentHandler.SignContract)
		r.Post("/api/acts/{actID}/sign", h.DocumentHandler.SignAct)

		r.Route("/api/wallet", func(r chi.Router) {
			r.Get("/", h.LedgerHandler.GetWallet)
			r.Post("/deposit", h.LedgerHandler.Deposit)
			r.Post("/payout", h.LedgerHandler.RequestPayout)
		})
		r.Get("/api/transactions", h.LedgerHandler.ListTransactions)
		r.Get("/api/reviews", h.ReviewHandler.ListReviews)
	})

	return r
}
