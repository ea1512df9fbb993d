package gameservice

//go:generate mockgen -source=gameservice.go -destination=mock_gameservice.go -package=gameservice

import (
	"context"
	"time"

	"github.com/GlebRadaev/deadpigeons/internal/domain"
	"github.com/GlebRadaev/deadpigeons/internal/dto"
	"github.com/GlebRadaev/deadpigeons/internal/pg"
	"github.com/GlebRadaev/deadpigeons/pkg/validate"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrGameNotFound       = domain.NotFound("game not found")
	ErrNoCurrentGame      = domain.NotFound("there is no game for the current week")
	ErrGameExists         = domain.Validation("a game for this week and year already exists")
	ErrNumbersAlreadySet  = domain.NewError(domain.ErrInvalidOperation, "winning numbers have already been set for this game")
	ErrGameNotDeleted     = domain.NewError(domain.ErrInvalidOperation, "game is not deleted")
	ErrRestoreWeekClaimed = domain.Validation("another game already exists for this week and year")
	ErrGameHasBoards      = domain.NewError(domain.ErrInvalidOperation, "game has boards and can only be soft deleted")
)

type Repo interface {
	FindByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*domain.Game, error)
	FindByWeekAndYear(ctx context.Context, week, year int) (*domain.Game, error)
	FindAll(ctx context.Context, includeDeleted bool) ([]domain.Game, error)
	FindByYear(ctx context.Context, year int, includeDeleted bool) ([]domain.Game, error)
	ExistingWeeks(ctx context.Context) (map[domain.Week]struct{}, error)
	Create(ctx context.Context, game *domain.Game) error
	DeactivateAll(ctx context.Context) error
	SetActive(ctx context.Context, id uuid.UUID) error
	SetWinningNumbers(ctx context.Context, id uuid.UUID, numbers []int, publishedAt time.Time) (bool, error)
	SetDeleted(ctx context.Context, id uuid.UUID, deleted bool) error
	FindActive(ctx context.Context) (*domain.Game, error)
	Restore(ctx context.Context, id uuid.UUID, active bool) error
	HasBoards(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context, gameID uuid.UUID) (*domain.GameStats, error)
}

type Service struct {
	gameRepo  Repo
	txManager pg.TXManager
	loc       *time.Location
	seedWeeks int
	now       func() time.Time
}

func New(repo Repo, txManager pg.TXManager, loc *time.Location, seedWeeks int) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		gameRepo:  repo,
		txManager: txManager,
		loc:       loc,
		seedWeeks: seedWeeks,
		now:       time.Now,
	}
}

// GetCurrent returns the game of the ISO week containing today in the game
// timezone, or nil when no such game exists.
func (s *Service) GetCurrent(ctx context.Context) (*domain.Game, error) {
	year, week := s.now().In(s.loc).ISOWeek()
	return s.gameRepo.FindByWeekAndYear(ctx, week, year)
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	game, err := s.gameRepo.FindByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, ErrGameNotFound
	}
	return game, nil
}

func (s *Service) GetAll(ctx context.Context, includeDeleted bool) ([]domain.Game, error) {
	return s.gameRepo.FindAll(ctx, includeDeleted)
}

func (s *Service) GetByYear(ctx context.Context, year int, includeDeleted bool) ([]domain.Game, error) {
	return s.gameRepo.FindByYear(ctx, year, includeDeleted)
}

func (s *Service) GetByWeekAndYear(ctx context.Context, week, year int) (*domain.Game, error) {
	game, err := s.gameRepo.FindByWeekAndYear(ctx, week, year)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, ErrGameNotFound
	}
	return game, nil
}

// Create inserts the game as the single active one.
func (s *Service) Create(ctx context.Context, req dto.CreateGameDTO) (*domain.Game, error) {
	if err := validate.Struct(req); err != nil {
		return nil, domain.Validation(err.Error())
	}
	game := &domain.Game{
		ID:        uuid.New(),
		Week:      req.Week,
		Year:      req.Year,
		Active:    true,
		CreatedAt: s.now().UTC(),
	}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		existing, err := s.gameRepo.FindByWeekAndYear(ctx, req.Week, req.Year)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrGameExists
		}
		if err := s.gameRepo.DeactivateAll(ctx); err != nil {
			return err
		}
		return s.gameRepo.Create(ctx, game)
	})
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, ErrGameExists
		}
		return nil, err
	}
	zap.L().Info("game created", zap.Int("week", game.Week), zap.Int("year", game.Year))
	return game, nil
}

// SetWinningNumbers publishes the draw. Numbers can be set once; the game
// becomes the single active game.
func (s *Service) SetWinningNumbers(ctx context.Context, req dto.SetWinningNumbersDTO) (*domain.Game, error) {
	if err := domain.ValidateWinningNumbers(req.WinningNumbers); err != nil {
		return nil, err
	}
	var game *domain.Game
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		game, err = s.GetByID(ctx, req.GameID)
		if err != nil {
			return err
		}
		if game.HasWinningNumbers() {
			return ErrNumbersAlreadySet
		}
		publishedAt := s.now().UTC()
		ok, err := s.gameRepo.SetWinningNumbers(ctx, game.ID, req.WinningNumbers, publishedAt)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNumbersAlreadySet
		}
		if err := s.activate(ctx, game.ID); err != nil {
			return err
		}
		game.WinningNumbers = req.WinningNumbers
		game.PublishedAt = &publishedAt
		game.Active = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("winning numbers published", zap.String("game", game.ID.String()), zap.Ints("numbers", game.WinningNumbers))
	return game, nil
}

func (s *Service) Activate(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	var game *domain.Game
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		game, err = s.GetByID(ctx, id)
		if err != nil {
			return err
		}
		return s.activate(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	game.Active = true
	zap.L().Info("game activated", zap.String("game", id.String()))
	return game, nil
}

// Delete soft-deletes a game, or removes it when permanent is set. Games with
// boards keep their rows so past purchases still point at them.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, permanent bool) error {
	game, err := s.gameRepo.FindByID(ctx, id, permanent)
	if err != nil {
		return err
	}
	if game == nil {
		return ErrGameNotFound
	}
	if !permanent {
		return s.gameRepo.SetDeleted(ctx, id, true)
	}
	hasBoards, err := s.gameRepo.HasBoards(ctx, id)
	if err != nil {
		return err
	}
	if hasBoards {
		return ErrGameHasBoards
	}
	if err := s.gameRepo.Delete(ctx, id); err != nil {
		if pg.IsForeignKeyViolation(err) {
			return ErrGameHasBoards
		}
		return err
	}
	return nil
}

// Restore brings a soft-deleted game back. A game that was active when it was
// deleted comes back active unless another game has been activated since.
func (s *Service) Restore(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	var game *domain.Game
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		game, err = s.gameRepo.FindByID(ctx, id, true)
		if err != nil {
			return err
		}
		if game == nil {
			return ErrGameNotFound
		}
		if !game.Deleted {
			return ErrGameNotDeleted
		}
		other, err := s.gameRepo.FindByWeekAndYear(ctx, game.Week, game.Year)
		if err != nil {
			return err
		}
		if other != nil {
			return ErrRestoreWeekClaimed
		}
		if game.Active {
			current, err := s.gameRepo.FindActive(ctx)
			if err != nil {
				return err
			}
			game.Active = current == nil
		}
		if err := s.gameRepo.Restore(ctx, id, game.Active); err != nil {
			if pg.IsUniqueViolation(err) {
				return ErrRestoreWeekClaimed
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	game.Deleted = false
	zap.L().Info("game restored", zap.String("game", id.String()), zap.Bool("active", game.Active))
	return game, nil
}

// Stats reports figures for the current week's game.
func (s *Service) Stats(ctx context.Context) (*domain.GameStats, error) {
	current, err := s.GetCurrent(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNoCurrentGame
	}
	return s.gameRepo.Stats(ctx, current.ID)
}

// SeedUpcomingWeeks makes sure a game exists for this week and the following
// weeks, then activates the current week's game. It returns how many games
// were created.
func (s *Service) SeedUpcomingWeeks(ctx context.Context, now time.Time) (int, error) {
	today := now.In(s.loc)
	monday := startOfWeek(today)
	created := 0

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		existing, err := s.gameRepo.ExistingWeeks(ctx)
		if err != nil {
			return err
		}
		for i := 0; i < s.seedWeeks; i++ {
			year, week := monday.AddDate(0, 0, 7*i).ISOWeek()
			key := domain.Week{Year: year, Week: week}
			if _, ok := existing[key]; ok {
				continue
			}
			game := &domain.Game{ID: uuid.New(), Week: week, Year: year, CreatedAt: now.UTC()}
			if err := s.gameRepo.Create(ctx, game); err != nil {
				return err
			}
			existing[key] = struct{}{}
			created++
		}

		year, week := today.ISOWeek()
		current, err := s.gameRepo.FindByWeekAndYear(ctx, week, year)
		if err != nil {
			return err
		}
		if current == nil || current.Active {
			return nil
		}
		return s.activate(ctx, current.ID)
	})
	if err != nil {
		zap.L().Error("can't seed games", zap.Error(err))
		return 0, err
	}
	zap.L().Info("games seeded", zap.Int("created", created), zap.Int("weeks", s.seedWeeks))
	return created, nil
}

func (s *Service) activate(ctx context.Context, id uuid.UUID) error {
	if err := s.gameRepo.DeactivateAll(ctx); err != nil {
		return err
	}
	return s.gameRepo.SetActive(ctx, id)
}

func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.Date()
	return time.Date(y, m, d-offset, 12, 0, 0, 0, t.Location())
}
