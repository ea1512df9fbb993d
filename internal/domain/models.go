package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

type User struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	FirstName    string     `json:"firstName" db:"first_name"`
	LastName     string     `json:"lastName" db:"last_name"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	Salt         uuid.UUID  `json:"-" db:"salt"`
	Role         string     `json:"role" db:"role"`
	Deleted      bool       `json:"isDeleted" db:"deleted"`
	DeletedAt    *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty" db:"updated_at"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type Game struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	Week           int        `json:"weekNumber" db:"week"`
	Year           int        `json:"year" db:"year"`
	Active         bool       `json:"isActive" db:"active"`
	WinningNumbers []int      `json:"winningNumbers" db:"winning_numbers"`
	PublishedAt    *time.Time `json:"publishedAt,omitempty" db:"published_at"`
	Deleted        bool       `json:"isDeleted" db:"deleted"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
}

func (g *Game) HasWinningNumbers() bool {
	return len(g.WinningNumbers) > 0
}

type Board struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	UserID    uuid.UUID  `json:"userId" db:"user_id"`
	GameID    *uuid.UUID `json:"gameId" db:"game_id"`
	Numbers   []int      `json:"numbers" db:"numbers"`
	Price     int        `json:"price" db:"price"`
	Repeating bool       `json:"isRepeating" db:"repeating"`
	RepeatOf  *uuid.UUID `json:"repeatOf,omitempty" db:"repeat_of"`
	Deleted   bool       `json:"isDeleted" db:"deleted"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
}

// Played reports whether the board is bound to a game and can no longer change.
func (b *Board) Played() bool {
	return b.GameID != nil
}

type TransactionStatus string

const (
	TransactionPending  TransactionStatus = "pending"
	TransactionApproved TransactionStatus = "approved"
	TransactionRejected TransactionStatus = "rejected"
)

type Transaction struct {
	ID                 uuid.UUID         `json:"id" db:"id"`
	UserID             *uuid.UUID        `json:"userId" db:"user_id"`
	Amount             int               `json:"amount" db:"amount"`
	MobilepayReference string            `json:"mobilepayReference" db:"mobilepay_reference"`
	Status             TransactionStatus `json:"status" db:"status"`
	BoardID            *uuid.UUID        `json:"boardId,omitempty" db:"board_id"`
	Deleted            bool              `json:"isDeleted" db:"deleted"`
	CreatedAt          time.Time         `json:"createdAt" db:"created_at"`
}

func (t *Transaction) Approved() bool {
	return t.Status == TransactionApproved
}

type GameStats struct {
	GameID                uuid.UUID `json:"gameId"`
	TotalBoards           int       `json:"totalBoards"`
	TotalRevenue          int       `json:"totalRevenue"`
	ActiveRepeatingBoards int       `json:"activeRepeatingBoards"`
	PendingTransactions   int       `json:"pendingTransactions"`
}

type Week struct {
	Year int
	Week int
}

type RebuyReport struct {
	GameID     uuid.UUID `json:"gameId"`
	Candidates int       `json:"candidates"`
	Purchased  int       `json:"purchased"`
	Skipped    int       `json:"skipped"`
	Failed     int       `json:"failed"`
}
