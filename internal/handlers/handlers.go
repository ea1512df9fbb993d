package handlers

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/deadpigeons/docs"
	"github.com/GlebRadaev/deadpigeons/internal/domain"
	authhandlers "github.com/GlebRadaev/deadpigeons/internal/handlers/auth"
	boardhandlers "github.com/GlebRadaev/deadpigeons/internal/handlers/boards"
	gamehandlers "github.com/GlebRadaev/deadpigeons/internal/handlers/games"
	transactionhandlers "github.com/GlebRadaev/deadpigeons/internal/handlers/transactions"
	userhandlers "github.com/GlebRadaev/deadpigeons/internal/handlers/users"
	"github.com/GlebRadaev/deadpigeons/internal/service"
	"github.com/GlebRadaev/deadpigeons/pkg/auth"
	appmiddleware "github.com/GlebRadaev/deadpigeons/pkg/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	SetupFirstAdmin(w http.ResponseWriter, r *http.Request)
	WhoAmI(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	GetAll(w http.ResponseWriter, r *http.Request)
	GetUserByID(w http.ResponseWriter, r *http.Request)
	GetCurrentUser(w http.ResponseWriter, r *http.Request)
	GetUserByEmail(w http.ResponseWriter, r *http.Request)
	UpdateUser(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
	RestoreUser(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
	GetBalanceByID(w http.ResponseWriter, r *http.Request)
	GetMyBalance(w http.ResponseWriter, r *http.Request)
}

type GameHandler interface {
	GetCurrentGame(w http.ResponseWriter, r *http.Request)
	GetAllGames(w http.ResponseWriter, r *http.Request)
	GetGameByID(w http.ResponseWriter, r *http.Request)
	GetGamesByYear(w http.ResponseWriter, r *http.Request)
	GetGameByWeekAndYear(w http.ResponseWriter, r *http.Request)
	CreateGame(w http.ResponseWriter, r *http.Request)
	SetWinningNumbers(w http.ResponseWriter, r *http.Request)
	ActivateGame(w http.ResponseWriter, r *http.Request)
	DeleteGame(w http.ResponseWriter, r *http.Request)
	RestoreGame(w http.ResponseWriter, r *http.Request)
	GetGameStats(w http.ResponseWriter, r *http.Request)
}

type BoardHandler interface {
	GetMyBoards(w http.ResponseWriter, r *http.Request)
	CreateBoard(w http.ResponseWriter, r *http.Request)
	GetBoard(w http.ResponseWriter, r *http.Request)
	UpdateBoard(w http.ResponseWriter, r *http.Request)
	DeleteBoard(w http.ResponseWriter, r *http.Request)
	StopRepeating(w http.ResponseWriter, r *http.Request)
	GetActiveRepeatingBoards(w http.ResponseWriter, r *http.Request)
	GetBoardsForCurrentGameWeek(w http.ResponseWriter, r *http.Request)
	ProcessRepeatingBoards(w http.ResponseWriter, r *http.Request)
}

type TransactionHandler interface {
	CreateTransaction(w http.ResponseWriter, r *http.Request)
	GetAllTransactions(w http.ResponseWriter, r *http.Request)
	GetPendingTransactions(w http.ResponseWriter, r *http.Request)
	GetPendingTransactionsCount(w http.ResponseWriter, r *http.Request)
	GetTransactionByMobilepayReference(w http.ResponseWriter, r *http.Request)
	GetTransactionByID(w http.ResponseWriter, r *http.Request)
	GetTransactionsByUserID(w http.ResponseWriter, r *http.Request)
	GetUserBalance(w http.ResponseWriter, r *http.Request)
	ApproveTransaction(w http.ResponseWriter, r *http.Request)
	RejectTransaction(w http.ResponseWriter, r *http.Request)
	RestoreTransaction(w http.ResponseWriter, r *http.Request)
	DeleteTransaction(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler        AuthHandler
	UserHandler        UserHandler
	GameHandler        GameHandler
	BoardHandler       BoardHandler
	TransactionHandler TransactionHandler

	verifier    auth.TokenVerifier
	authLimiter *appmiddleware.RateLimiter
}

func New(s *service.Services, authLimiter *appmiddleware.RateLimiter) *Handlers {
	return &Handlers{
		AuthHandler:        authhandlers.New(s.AuthService),
		UserHandler:        userhandlers.New(s.UserService),
		GameHandler:        gamehandlers.New(s.GameService),
		BoardHandler:       boardhandlers.New(s.BoardService, s.RebuyService),
		TransactionHandler: transactionhandlers.New(s.TransactionService),
		verifier:           s.TokenVerifier,
		authLimiter:        authLimiter,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.Recoverer,
		middleware.Logger,
		appmiddleware.Metrics,
	)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		r.Route("/Auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				if h.authLimiter != nil {
					r.Use(h.authLimiter.Handler)
				}
				r.Post("/Register", h.AuthHandler.Register)
				r.Post("/Login", h.AuthHandler.Login)
				r.Post("/SetupFirstAdmin", h.AuthHandler.SetupFirstAdmin)
			})
			r.With(auth.AuthMiddleware(h.verifier)).Get("/WhoAmI", h.AuthHandler.WhoAmI)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.verifier))
			admin := auth.RequireRole(domain.RoleAdmin)

			r.Route("/Users", func(r chi.Router) {
				r.With(admin).Get("/", h.UserHandler.GetAll)
				r.Get("/GetUserById", h.UserHandler.GetUserByID)
				r.Get("/GetCurrentUser", h.UserHandler.GetCurrentUser)
				r.With(admin).Get("/GetUserByEmail", h.UserHandler.GetUserByEmail)
				r.Put("/UpdateUser", h.UserHandler.UpdateUser)
				r.With(admin).Delete("/DeleteUser", h.UserHandler.DeleteUser)
				r.With(admin).Post("/RestoreUser", h.UserHandler.RestoreUser)
				r.Post("/ChangePassword", h.UserHandler.ChangePassword)
				r.Get("/GetBalanceById", h.UserHandler.GetBalanceByID)
				r.Get("/GetMyBalance", h.UserHandler.GetMyBalance)
			})

			r.Route("/Boards", func(r chi.Router) {
				r.Get("/", h.BoardHandler.GetMyBoards)
				r.Post("/", h.BoardHandler.CreateBoard)
				r.Get("/GetBoard", h.BoardHandler.GetBoard)
				r.Put("/UpdateBoard", h.BoardHandler.UpdateBoard)
				r.Delete("/DeleteBoard", h.BoardHandler.DeleteBoard)
				r.Post("/StopRepeating", h.BoardHandler.StopRepeating)
				r.Group(func(r chi.Router) {
					r.Use(admin)
					r.Get("/GetActiveRepeatingBoards", h.BoardHandler.GetActiveRepeatingBoards)
					r.Get("/GetBoardsForCurrentGameWeek", h.BoardHandler.GetBoardsForCurrentGameWeek)
					r.Post("/ProcessRepeatingBoards", h.BoardHandler.ProcessRepeatingBoards)
				})
			})

			r.Route("/Games", func(r chi.Router) {
				r.Get("/GetCurrentGame", h.GameHandler.GetCurrentGame)
				r.Get("/GetAllGames", h.GameHandler.GetAllGames)
				r.Get("/GetGameById", h.GameHandler.GetGameByID)
				r.Get("/GetGamesByYear", h.GameHandler.GetGamesByYear)
				r.Get("/GetGameByWeekAndYear", h.GameHandler.GetGameByWeekAndYear)
				r.Group(func(r chi.Router) {
					r.Use(admin)
					r.Post("/CreateGame", h.GameHandler.CreateGame)
					r.Post("/SetWinningNumbers", h.GameHandler.SetWinningNumbers)
					r.Post("/ActivateGame", h.GameHandler.ActivateGame)
					r.Delete("/DeleteGame", h.GameHandler.DeleteGame)
					r.Post("/RestoreGame", h.GameHandler.RestoreGame)
					r.Get("/GetGameStats", h.GameHandler.GetGameStats)
				})
			})

			r.Route("/Transactions", func(r chi.Router) {
				r.Post("/CreateTransaction", h.TransactionHandler.CreateTransaction)
				r.Get("/GetTransactionById", h.TransactionHandler.GetTransactionByID)
				r.Get("/GetTransactionsByUserId", h.TransactionHandler.GetTransactionsByUserID)
				r.Get("/GetUserBalance", h.TransactionHandler.GetUserBalance)
				r.Group(func(r chi.Router) {
					r.Use(admin)
					r.Get("/GetAllTransactions", h.TransactionHandler.GetAllTransactions)
					r.Get("/GetPendingTransactions", h.TransactionHandler.GetPendingTransactions)
					r.Get("/GetPendingTransactionsCount", h.TransactionHandler.GetPendingTransactionsCount)
					r.Get("/GetTransactionByMobilepayReference", h.TransactionHandler.GetTransactionByMobilepayReference)
					r.Post("/ApproveTransaction", h.TransactionHandler.ApproveTransaction)
					r.Post("/RejectTransaction", h.TransactionHandler.RejectTransaction)
					r.Post("/RestoreTransaction", h.TransactionHandler.RestoreTransaction)
					r.Delete("/DeleteTransaction", h.TransactionHandler.DeleteTransaction)
				})
			})
		})
	})

	return r
}
