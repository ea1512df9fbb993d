package rebuy

//go:generate mockgen -source=rebuy.go -destination=mock_rebuy.go -package=rebuy

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/GlebRadaev/deadpigeons/internal/config"
	"github.com/GlebRadaev/deadpigeons/internal/domain"
	"github.com/GlebRadaev/deadpigeons/internal/service/boardservice"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type BoardService interface {
	GetForCurrentGameWeek(ctx context.Context, year, week int) ([]domain.Board, error)
	Repurchase(ctx context.Context, source domain.Board, gameID uuid.UUID) (*domain.Board, error)
}

type GameService interface {
	GetCurrent(ctx context.Context) (*domain.Game, error)
}

// Service buys this week's board for every repeating board that does not have
// one yet.
type Service struct {
	boards     BoardService
	games      GameService
	workerPool WorkerPoolI
	schedule   string
	loc        *time.Location
	inFlight   sync.Map
}

func New(cfg *config.Config, loc *time.Location, boards BoardService, games GameService) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		boards:     boards,
		games:      games,
		workerPool: NewWorkerPool(cfg.RebuyWorkers),
		schedule:   cfg.RebuySchedule,
		loc:        loc,
	}
}

// Start schedules Process on the configured cron spec. An empty spec leaves
// the job to the admin endpoint.
func (s *Service) Start(ctx context.Context) error {
	if s.schedule == "" {
		zap.L().Info("Rebuy schedule is not configured")
		return nil
	}
	c := cron.New(cron.WithLocation(s.loc))
	if _, err := c.AddFunc(s.schedule, func() { s.runScheduled(ctx) }); err != nil {
		return fmt.Errorf("invalid rebuy schedule %q: %w", s.schedule, err)
	}
	c.Start()
	zap.L().Info("Rebuy service started", zap.String("schedule", s.schedule))

	go func() {
		<-ctx.Done()
		<-c.Stop().Done()
		zap.L().Info("Rebuy scheduler stopped")
	}()
	return nil
}

func (s *Service) Close() {
	s.workerPool.Close()
}

func (s *Service) runScheduled(ctx context.Context) {
	report, err := s.Process(ctx)
	if err != nil {
		zap.L().Error("Scheduled rebuy failed", zap.Error(err))
		return
	}
	zap.L().Info("Scheduled rebuy finished",
		zap.Int("candidates", report.Candidates),
		zap.Int("purchased", report.Purchased),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed),
	)
}

// Process runs one rebuy round for the current week's game. Individual
// purchase failures are counted and logged, they do not abort the round.
func (s *Service) Process(ctx context.Context) (*domain.RebuyReport, error) {
	game, err := s.games.GetCurrent(ctx)
	if err != nil {
		return nil, err
	}
	if game == nil || !game.Active || game.HasWinningNumbers() {
		zap.L().Info("No open game for the current week, nothing to rebuy")
		return &domain.RebuyReport{}, nil
	}

	candidates, err := s.boards.GetForCurrentGameWeek(ctx, game.Year, game.Week)
	if err != nil {
		return nil, err
	}

	var purchased, skipped, failed atomic.Int64
	var g errgroup.Group
	for _, board := range candidates {
		board := board

		if _, loaded := s.inFlight.LoadOrStore(board.ID, struct{}{}); loaded {
			skipped.Add(1)
			continue
		}

		g.Go(func() error {
			done := make(chan struct{})
			err := s.workerPool.AddTask(ctx, func() error {
				defer close(done)
				defer s.inFlight.Delete(board.ID)

				_, err := s.boards.Repurchase(ctx, board, game.ID)
				switch {
				case err == nil:
					purchased.Add(1)
				case errors.Is(err, boardservice.ErrAlreadyRepurchased):
					skipped.Add(1)
					return nil
				default:
					failed.Add(1)
					return fmt.Errorf("rebuy of board %s: %w", board.ID, err)
				}
				return nil
			})
			if err != nil {
				s.inFlight.Delete(board.ID)
				failed.Add(1)
				return err
			}
			<-done
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error scheduling rebuys", zap.Error(err))
	}

	return &domain.RebuyReport{
		GameID:     game.ID,
		Candidates: len(candidates),
		Purchased:  int(purchased.Load()),
		Skipped:    int(skipped.Load()),
		Failed:     int(failed.Load()),
	}, nil
}
