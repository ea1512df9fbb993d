package service

//go:generate mockgen -source=service.go -destination=mock_service.go -package=service

import (
	"context"
	"time"

	"github.com/GlebRadaev/deadpigeons/internal/config"
	"github.com/GlebRadaev/deadpigeons/internal/handlers/auth"
	"github.com/GlebRadaev/deadpigeons/internal/handlers/boards"
	"github.com/GlebRadaev/deadpigeons/internal/handlers/games"
	"github.com/GlebRadaev/deadpigeons/internal/handlers/transactions"
	"github.com/GlebRadaev/deadpigeons/internal/handlers/users"
	"github.com/GlebRadaev/deadpigeons/internal/rebuy"

	pkgauth "github.com/GlebRadaev/deadpigeons/pkg/auth"

	"github.com/GlebRadaev/deadpigeons/internal/repo"
	authservice "github.com/GlebRadaev/deadpigeons/internal/service/authservice"
	boardservice "github.com/GlebRadaev/deadpigeons/internal/service/boardservice"
	gameservice "github.com/GlebRadaev/deadpigeons/internal/service/gameservice"
	transactionservice "github.com/GlebRadaev/deadpigeons/internal/service/transactionservice"
	userservice "github.com/GlebRadaev/deadpigeons/internal/service/userservice"
)

type Seeder interface {
	SeedUpcomingWeeks(ctx context.Context, now time.Time) (int, error)
}

type Scheduler interface {
	Start(ctx context.Context) error
	Close()
}

type Services struct {
	AuthService        auth.Service
	UserService        users.Service
	GameService        games.Service
	BoardService       boards.Service
	TransactionService transactions.Service
	RebuyService       boards.Rebuyer
	TokenVerifier      pkgauth.TokenVerifier
	Seeder             Seeder
	Scheduler          Scheduler
}

func New(repo *repo.Repositories, cfg *config.Config) (*Services, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	hashService := &pkgauth.HashService{}
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)

	transactionService := transactionservice.New(repo.TransactionRepo)
	authService := authservice.New(repo.UserRepo, repo.TxManager, hashService, jwtService, cfg.TokenTTL)
	userService := userservice.New(repo.UserRepo, transactionService, hashService)
	gameService := gameservice.New(repo.GameRepo, repo.TxManager, loc, cfg.SeedWeeks)
	boardService := boardservice.New(repo.BoardRepo, repo.UserRepo, repo.GameRepo, repo.TransactionRepo, repo.TxManager)
	rebuyService := rebuy.New(cfg, loc, boardService, gameService)

	return &Services{
		AuthService:        authService,
		UserService:        userService,
		GameService:        gameService,
		BoardService:       boardService,
		TransactionService: transactionService,
		RebuyService:       rebuyService,
		TokenVerifier:      authService,
		Seeder:             gameService,
		Scheduler:          rebuyService,
	}, nil
}
