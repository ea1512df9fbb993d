package repo

import (
	"github.com/GlebRadaev/deadpigeons/internal/pg"
	boardrepo "github.com/GlebRadaev/deadpigeons/internal/repo/board-repo"
	gamerepo "github.com/GlebRadaev/deadpigeons/internal/repo/game-repo"
	transactionrepo "github.com/GlebRadaev/deadpigeons/internal/repo/transaction-repo"
	userrepo "github.com/GlebRadaev/deadpigeons/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo        *userrepo.Repository
	GameRepo        *gamerepo.Repository
	BoardRepo       *boardrepo.Repository
	TransactionRepo *transactionrepo.Repository
	TxManager       pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		GameRepo:        gamerepo.New(conn),
		BoardRepo:       boardrepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
		TxManager:       txManager,
	}
}
