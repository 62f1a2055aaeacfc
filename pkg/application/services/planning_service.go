package services

import (
	"context"
	"fmt"

	"github.com/Araiseimitsu/auto-arrenge/pkg/application/dto"
	"github.com/Araiseimitsu/auto-arrenge/pkg/domain/repositories"
	"github.com/Araiseimitsu/auto-arrenge/pkg/logger"
	"github.com/Araiseimitsu/auto-arrenge/pkg/scheduling"
)

// PlanningService orchestrates one scheduling run: it materializes the
// input tables from repositories, builds the assignment engine, and wraps
// the engine output with summary statistics.
type PlanningService struct {
	log logger.Logger
}

// NewPlanningService creates a new planning service
func NewPlanningService(log logger.Logger) *PlanningService {
	if log == nil {
		log = logger.NewNop()
	}
	return &PlanningService{log: log}
}

// Plan executes a complete scheduling run. Structural failures (empty
// roster, unreadable tables) abort the run; per-item failures end up on the
// unscheduled report inside the result.
func (s *PlanningService) Plan(
	ctx context.Context,
	config scheduling.Config,
	inspectorRepo repositories.InspectorRepository,
	productRepo repositories.ProductRepository,
	calendarRepo repositories.CalendarRepository,
	shortageRepo repositories.ShortageRepository,
) (*dto.ScheduleResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	roster, err := inspectorRepo.GetAllInspectors()
	if err != nil {
		return nil, fmt.Errorf("failed to load inspector roster: %w", err)
	}

	holidays, err := calendarRepo.GetAllHolidays()
	if err != nil {
		return nil, fmt.Errorf("failed to load holiday table: %w", err)
	}

	items, err := shortageRepo.GetWorkItems()
	if err != nil {
		return nil, fmt.Errorf("failed to load shortage records: %w", err)
	}

	engine, err := scheduling.NewEngine(roster, productRepo, scheduling.NewCalendar(holidays), config, s.log)
	if err != nil {
		return nil, fmt.Errorf("failed to build assignment engine: %w", err)
	}

	result, err := engine.Run(items)
	if err != nil {
		return nil, fmt.Errorf("scheduling run failed: %w", err)
	}

	return dto.NewScheduleResult(result.Assignments, result.Unscheduled), nil
}
