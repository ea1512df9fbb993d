package boardservice

//go:generate mockgen -source=boardservice.go -destination=mock_boardservice.go -package=boardservice

import (
	"context"
	"fmt"
	"time"

	"github.com/GlebRadaev/deadpigeons/internal/domain"
	"github.com/GlebRadaev/deadpigeons/internal/dto"
	"github.com/GlebRadaev/deadpigeons/internal/pg"
	"github.com/GlebRadaev/deadpigeons/pkg/validate"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DebitReferencePrefix prefixes the reference of the ledger entry written for
// every board purchase.
const DebitReferencePrefix = "BOARD-"

var (
	ErrBoardNotFound       = domain.NotFound("board not found")
	ErrUserNotFound        = domain.Validation("user not found")
	ErrGameNotFound        = domain.Validation("game not found")
	ErrGameInactive        = domain.Validation("game is not active")
	ErrGameDrawn           = domain.Validation("winning numbers for this game have already been drawn")
	ErrInsufficientBalance = domain.Validation("insufficient balance")
	ErrBoardPlayed         = domain.NewError(domain.ErrInvalidOperation, "cannot change a board that has already been played")
	ErrAlreadyRepurchased  = domain.NewError(domain.ErrInvalidOperation, "board has already been bought for this game")
)

type Repo interface {
	FindByID(ctx context.Context, id, userID uuid.UUID) (*domain.Board, error)
	FindByUser(ctx context.Context, userID uuid.UUID, includeDeleted bool) ([]domain.Board, error)
	FindActiveRepeating(ctx context.Context) ([]domain.Board, error)
	FindPlayedIDs(ctx context.Context, gameID uuid.UUID) (map[uuid.UUID]struct{}, error)
	HasRepeatInGame(ctx context.Context, sourceID, gameID uuid.UUID) (bool, error)
	Create(ctx context.Context, board *domain.Board) error
	Update(ctx context.Context, board *domain.Board) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	StopRepeating(ctx context.Context, id uuid.UUID, updatedAt time.Time) error
}

type UserRepo interface {
	LockForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type GameRepo interface {
	FindByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*domain.Game, error)
	FindByWeekAndYear(ctx context.Context, week, year int) (*domain.Game, error)
}

// Ledger is the slice of the transaction store a purchase needs.
type Ledger interface {
	SumApprovedByUser(ctx context.Context, userID uuid.UUID) (int, error)
	Create(ctx context.Context, t *domain.Transaction) error
}

type Service struct {
	boardRepo Repo
	userRepo  UserRepo
	gameRepo  GameRepo
	ledger    Ledger
	txManager pg.TXManager
	now       func() time.Time
}

func New(repo Repo, userRepo UserRepo, gameRepo GameRepo, ledger Ledger, txManager pg.TXManager) *Service {
	return &Service{
		boardRepo: repo,
		userRepo:  userRepo,
		gameRepo:  gameRepo,
		ledger:    ledger,
		txManager: txManager,
		now:       time.Now,
	}
}

// Create buys a board for userID in the given game.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, req dto.CreateBoardDTO) (*domain.Board, error) {
	if err := validate.Struct(req); err != nil {
		return nil, domain.Validation(err.Error())
	}
	numbers, price, err := priced(req.Numbers, req.Price)
	if err != nil {
		return nil, err
	}
	gameID := req.GameID
	now := s.now().UTC()
	board := &domain.Board{
		ID:        uuid.New(),
		UserID:    userID,
		GameID:    &gameID,
		Numbers:   numbers,
		Price:     price,
		Repeating: req.Repeating,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.purchase(ctx, board); err != nil {
		return nil, err
	}
	zap.L().Info("board purchased",
		zap.String("board", board.ID.String()),
		zap.String("user", userID.String()),
		zap.Int("price", price),
	)
	return board, nil
}

// Repurchase buys a non-repeating copy of a repeating board for gameID.
func (s *Service) Repurchase(ctx context.Context, source domain.Board, gameID uuid.UUID) (*domain.Board, error) {
	numbers, price, err := priced(source.Numbers, 0)
	if err != nil {
		return nil, err
	}
	sourceID := source.ID
	now := s.now().UTC()
	board := &domain.Board{
		ID:        uuid.New(),
		UserID:    source.UserID,
		GameID:    &gameID,
		Numbers:   numbers,
		Price:     price,
		RepeatOf:  &sourceID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.purchase(ctx, board); err != nil {
		return nil, err
	}
	return board, nil
}

// purchase writes the board and its debit in one transaction. The user row
// lock is taken first so concurrent purchases by one user see each other's
// debits.
func (s *Service) purchase(ctx context.Context, board *domain.Board) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.LockForUpdate(ctx, board.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}

		game, err := s.gameRepo.FindByID(ctx, *board.GameID, false)
		if err != nil {
			return err
		}
		switch {
		case game == nil:
			return ErrGameNotFound
		case !game.Active:
			return ErrGameInactive
		case game.HasWinningNumbers():
			return ErrGameDrawn
		}

		if board.RepeatOf != nil {
			exists, err := s.boardRepo.HasRepeatInGame(ctx, *board.RepeatOf, game.ID)
			if err != nil {
				return err
			}
			if exists {
				return ErrAlreadyRepurchased
			}
		}

		balance, err := s.ledger.SumApprovedByUser(ctx, board.UserID)
		if err != nil {
			return err
		}
		if balance < board.Price {
			return ErrInsufficientBalance
		}

		if err := s.boardRepo.Create(ctx, board); err != nil {
			if pg.IsUniqueViolation(err) && board.RepeatOf != nil {
				return ErrAlreadyRepurchased
			}
			return err
		}
		userID, boardID := board.UserID, board.ID
		return s.ledger.Create(ctx, &domain.Transaction{
			ID:                 uuid.New(),
			UserID:             &userID,
			Amount:             -board.Price,
			MobilepayReference: DebitReferencePrefix + board.ID.String(),
			Status:             domain.TransactionApproved,
			BoardID:            &boardID,
			CreatedAt:          board.CreatedAt,
		})
	})
}

func (s *Service) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Board, error) {
	board, err := s.boardRepo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return nil, ErrBoardNotFound
	}
	return board, nil
}

func (s *Service) GetByUser(ctx context.Context, userID uuid.UUID, includeDeleted bool) ([]domain.Board, error) {
	return s.boardRepo.FindByUser(ctx, userID, includeDeleted)
}

func (s *Service) Update(ctx context.Context, id, userID uuid.UUID, req dto.UpdateBoardDTO) (*domain.Board, error) {
	if err := validate.Struct(req); err != nil {
		return nil, domain.Validation(err.Error())
	}
	numbers, price, err := priced(req.Numbers, req.Price)
	if err != nil {
		return nil, err
	}
	board, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if board.Played() {
		return nil, ErrBoardPlayed
	}
	board.Numbers = numbers
	board.Price = price
	board.Repeating = req.Repeating
	board.UpdatedAt = s.now().UTC()
	if err := s.boardRepo.Update(ctx, board); err != nil {
		return nil, err
	}
	return board, nil
}

func (s *Service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	board, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return err
	}
	if board.Played() {
		return ErrBoardPlayed
	}
	return s.boardRepo.SoftDelete(ctx, id)
}

// StopRepeating switches off automatic repurchase of a board. Unlike Update it
// is allowed once the board has been played.
func (s *Service) StopRepeating(ctx context.Context, id, userID uuid.UUID) (*domain.Board, error) {
	board, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if !board.Repeating {
		return board, nil
	}
	board.Repeating = false
	board.UpdatedAt = s.now().UTC()
	if err := s.boardRepo.StopRepeating(ctx, id, board.UpdatedAt); err != nil {
		return nil, err
	}
	zap.L().Info("board stopped repeating", zap.String("board", id.String()), zap.String("user", userID.String()))
	return board, nil
}

func (s *Service) GetActiveRepeating(ctx context.Context) ([]domain.Board, error) {
	return s.boardRepo.FindActiveRepeating(ctx)
}

// GetForCurrentGameWeek lists the repeating boards that still need a board in
// the active game of the given week. It is empty when that game is missing or
// not active.
func (s *Service) GetForCurrentGameWeek(ctx context.Context, year, week int) ([]domain.Board, error) {
	game, err := s.gameRepo.FindByWeekAndYear(ctx, week, year)
	if err != nil {
		return nil, err
	}
	if game == nil || !game.Active {
		return []domain.Board{}, nil
	}
	played, err := s.boardRepo.FindPlayedIDs(ctx, game.ID)
	if err != nil {
		return nil, err
	}
	repeating, err := s.boardRepo.FindActiveRepeating(ctx)
	if err != nil {
		return nil, err
	}
	boards := make([]domain.Board, 0, len(repeating))
	for _, b := range repeating {
		if _, ok := played[b.ID]; ok {
			continue
		}
		boards = append(boards, b)
	}
	return boards, nil
}

// priced validates numbers and resolves the price from the price table. A zero
// requested price means "use the table".
func priced(numbers []int, requested int) ([]int, int, error) {
	if err := domain.ValidateBoardNumbers(numbers); err != nil {
		return nil, 0, err
	}
	price, ok := domain.BoardPrice(len(numbers))
	if !ok {
		return nil, 0, domain.Validation(fmt.Sprintf("no price for a board with %d numbers", len(numbers)))
	}
	if requested != 0 && requested != price {
		return nil, 0, domain.Validation(fmt.Sprintf("price for %d numbers must be %d", len(numbers), price))
	}
	return domain.SortedNumbers(numbers), price, nil
}
