// Package session owns the estimator's per-user state: settings, crop rows and their
// channel allocations. Every operation works on a copy of the stored state and publishes
// the result on the event bus.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CropCalc_Go/internal/aggregate"
	"github.com/osse101/CropCalc_Go/internal/allocation"
	"github.com/osse101/CropCalc_Go/internal/catalog"
	"github.com/osse101/CropCalc_Go/internal/concurrency"
	"github.com/osse101/CropCalc_Go/internal/domain"
	"github.com/osse101/CropCalc_Go/internal/event"
	"github.com/osse101/CropCalc_Go/internal/logger"
)

// SettingsUpdate carries the settings to change; nil fields are left alone
type SettingsUpdate struct {
	SkillLevel *int
	Season     *domain.Season
	HasTiller  *bool
	HasArtisan *bool
}

// EditResult is the state after a channel edit plus the correction, if one was applied
type EditResult struct {
	State      *domain.SessionState `json:"state"`
	Correction *domain.Correction   `json:"correction,omitempty"`
}

// Service defines the session operations
type Service interface {
	Create(ctx context.Context) (*domain.SessionState, error)
	Get(ctx context.Context, id string) (*domain.SessionState, error)
	UpdateSettings(ctx context.Context, id string, update SettingsUpdate) (*domain.SessionState, error)
	AddRow(ctx context.Context, id string) (*domain.SessionState, error)
	RemoveRow(ctx context.Context, id, rowID string) (*domain.SessionState, error)
	SelectCrop(ctx context.Context, id, rowID, cropName string) (*domain.SessionState, error)
	SetSeedCount(ctx context.Context, id, rowID string, seeds int) (*domain.SessionState, error)
	EditChannel(ctx context.Context, id, rowID string, ch domain.Channel, quantity int) (*EditResult, error)
	OpenDistribution(ctx context.Context, id string) (*domain.SessionState, error)
	Calculate(ctx context.Context, id string) (*domain.Totals, error)
	Reset(ctx context.Context, id string) (*domain.SessionState, error)
	ActiveSessions() int
}

type service struct {
	data     *catalog.ReferenceData
	resolver *catalog.Resolver
	store    *stateStore
	locks    *concurrency.LockManager
	bus      event.Bus
	now      func() time.Time
}

// NewService creates a session service over loaded reference data. bus may be nil.
func NewService(data *catalog.ReferenceData, bus event.Bus, cfg StoreConfig) Service {
	s := &service{
		data:     data,
		resolver: catalog.NewResolver(data),
		locks:    concurrency.NewLockManager(),
		bus:      bus,
		now:      time.Now,
	}
	s.store = newStateStore(cfg, s.onEvict)
	return s
}

func (s *service) onEvict(id string) {
	s.locks.Forget(id)
	logger.Debug(LogMsgSessionEvicted, logger.AttrKeySessionID, id)
}

func newRow() domain.AllocationRow {
	return domain.AllocationRow{ID: uuid.New().String()}
}

func (s *service) newState(id string, createdAt time.Time) *domain.SessionState {
	now := s.now()
	if createdAt.IsZero() {
		createdAt = now
	}
	return &domain.SessionState{
		ID:         id,
		SkillLevel: domain.DefaultSkillLevel,
		Season:     domain.DefaultSeason,
		Rows:       []domain.AllocationRow{newRow()},
		CreatedAt:  createdAt,
		UpdatedAt:  now,
	}
}

// Create starts a session at level 1 in spring with one empty row
func (s *service) Create(ctx context.Context) (*domain.SessionState, error) {
	state := s.newState(uuid.New().String(), time.Time{})
	s.store.Put(state)

	logger.FromContext(ctx).Info(LogMsgSessionCreated, logger.AttrKeySessionID, state.ID)
	out := state.Clone()
	s.publish(ctx, event.NewSessionUpdatedEvent(ActionCreated, out.Clone()))
	return out, nil
}

// Get returns a copy of the session
func (s *service) Get(ctx context.Context, id string) (*domain.SessionState, error) {
	state, ok := s.store.Get(id)
	if !ok {
		return nil, fmt.Errorf(ErrFmtSessionNotFound, domain.ErrSessionNotFound, id)
	}
	return state.Clone(), nil
}

// mutate applies fn to a copy of the session under the session's lock, stores the
// copy if fn succeeds, and announces the change.
func (s *service) mutate(ctx context.Context, id, action string, fn func(state *domain.SessionState) error) (*domain.SessionState, error) {
	var out *domain.SessionState
	err := s.locks.WithLock(id, func() error {
		stored, ok := s.store.Get(id)
		if !ok {
			return fmt.Errorf(ErrFmtSessionNotFound, domain.ErrSessionNotFound, id)
		}
		state := stored.Clone()
		if err := fn(state); err != nil {
			return err
		}
		// Expired or evicted while fn ran
		if !s.store.Contains(id) {
			return fmt.Errorf(ErrFmtSessionNotFound, domain.ErrSessionNotFound, id)
		}
		state.UpdatedAt = s.now()
		s.store.Put(state)
		out = state.Clone()
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			s.locks.Forget(id)
		}
		return nil, err
	}

	logger.FromContext(ctx).Debug(LogMsgSessionUpdated, logger.AttrKeySessionID, id, "action", action)
	s.publish(ctx, event.NewSessionUpdatedEvent(action, out.Clone()))
	return out, nil
}

func rowAt(state *domain.SessionState, rowID string) (*domain.AllocationRow, error) {
	idx := state.RowIndex(rowID)
	if idx < 0 {
		return nil, fmt.Errorf(ErrFmtRowNotFound, domain.ErrRowNotFound, rowID)
	}
	return &state.Rows[idx], nil
}

// UpdateSettings changes skill level, season and professions. A season change clears
// every row's selection and hides the distribution.
func (s *service) UpdateSettings(ctx context.Context, id string, update SettingsUpdate) (*domain.SessionState, error) {
	return s.mutate(ctx, id, ActionSettingsUpdated, func(state *domain.SessionState) error {
		if update.SkillLevel != nil {
			if _, ok := s.data.ProbabilityRow(*update.SkillLevel); !ok {
				return fmt.Errorf(ErrFmtSkillLevel, domain.ErrSkillLevelNotFound, *update.SkillLevel)
			}
		}
		season := state.Season
		if update.Season != nil {
			parsed, ok := domain.ParseSeason(string(*update.Season))
			if !ok {
				return fmt.Errorf(ErrFmtSeason, domain.ErrInvalidSeason, *update.Season)
			}
			season = parsed
		}

		if update.SkillLevel != nil {
			state.SkillLevel = *update.SkillLevel
		}
		if season != state.Season {
			state.Season = season
			for i := range state.Rows {
				state.Rows[i] = allocation.ClearSelection(state.Rows[i])
			}
			state.DistributionVisible = false
		}
		if update.HasTiller != nil {
			state.HasTiller = *update.HasTiller
		}
		if update.HasArtisan != nil {
			state.HasArtisan = *update.HasArtisan
		}
		return nil
	})
}

// AddRow appends an empty row. Refused once every in-season crop is already selected.
func (s *service) AddRow(ctx context.Context, id string) (*domain.SessionState, error) {
	return s.mutate(ctx, id, ActionRowAdded, func(state *domain.SessionState) error {
		available := s.data.SeasonCropCount(state.Season)
		if selected := state.SelectedCount(); selected >= available {
			return fmt.Errorf(ErrFmtRowLimit, domain.ErrRowLimitReached, selected, available)
		}
		if len(state.Rows) >= domain.MaxRowsPerState {
			return fmt.Errorf(ErrFmtRowLimit, domain.ErrRowLimitReached, len(state.Rows), domain.MaxRowsPerState)
		}
		state.Rows = append(state.Rows, newRow())
		return nil
	})
}

// RemoveRow deletes a row. The last row cannot be removed.
func (s *service) RemoveRow(ctx context.Context, id, rowID string) (*domain.SessionState, error) {
	return s.mutate(ctx, id, ActionRowRemoved, func(state *domain.SessionState) error {
		idx := state.RowIndex(rowID)
		if idx < 0 {
			return fmt.Errorf(ErrFmtRowNotFound, domain.ErrRowNotFound, rowID)
		}
		if len(state.Rows) <= 1 {
			return domain.ErrLastRow
		}
		state.Rows = append(state.Rows[:idx], state.Rows[idx+1:]...)
		return nil
	})
}

// SelectCrop sets the crop of a row, resetting its seeds and channels. An empty name clears it.
func (s *service) SelectCrop(ctx context.Context, id, rowID, cropName string) (*domain.SessionState, error) {
	return s.mutate(ctx, id, ActionCropSelected, func(state *domain.SessionState) error {
		row, err := rowAt(state, rowID)
		if err != nil {
			return err
		}

		name := ""
		if cropName != "" {
			crop, err := s.resolver.Resolve(cropName, state.Season)
			if err != nil {
				return err
			}
			name = crop.Name
		}

		*row = allocation.ClearSelection(*row)
		row.CropName = name
		return nil
	})
}

// SetSeedCount sets how many seeds a row plants; negative counts become zero
func (s *service) SetSeedCount(ctx context.Context, id, rowID string, seeds int) (*domain.SessionState, error) {
	if seeds < 0 {
		seeds = 0
	}
	return s.mutate(ctx, id, ActionSeedsSet, func(state *domain.SessionState) error {
		row, err := rowAt(state, rowID)
		if err != nil {
			return err
		}
		row.SeedCount = seeds
		return nil
	})
}

// EditChannel writes quantity into one channel of a row and reduces that same channel
// when the row would then allocate more than it harvests.
func (s *service) EditChannel(ctx context.Context, id, rowID string, ch domain.Channel, quantity int) (*EditResult, error) {
	if _, ok := domain.ParseChannel(string(ch)); !ok {
		return nil, fmt.Errorf(ErrFmtChannel, domain.ErrInvalidChannel, ch)
	}
	if quantity < 0 {
		quantity = 0
	}

	var (
		correction *domain.Correction
		cropName   string
	)
	state, err := s.mutate(ctx, id, ActionChannelEdited, func(state *domain.SessionState) error {
		row, err := rowAt(state, rowID)
		if err != nil {
			return err
		}
		if row.CropName == "" {
			return domain.ErrNoCropSelected
		}
		crop, ok := s.data.Find(row.CropName, state.Season)
		if !ok {
			return fmt.Errorf(ErrFmtUnknownCrop, domain.ErrCropNotFound, row.CropName, state.Season)
		}
		if quantity > 0 && !crop.ChannelAvailable(ch) {
			return fmt.Errorf(ErrFmtChannelUnavailable, domain.ErrChannelUnavailable, ch, crop.Name)
		}

		row.Allocation = row.Allocation.With(ch, quantity)
		reconciled, corr, changed := allocation.ReconcileWithCorrection(*row, crop, ch)
		*row = reconciled
		if changed {
			correction = &corr
			cropName = crop.Name
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if correction != nil {
		logger.FromContext(ctx).Info(LogMsgAllocationCorrected,
			logger.AttrKeySessionID, id,
			"crop", cropName,
			"channel", correction.Channel,
			"excess", correction.Excess,
			"remaining", correction.Remaining)
		s.publish(ctx, event.NewAllocationCorrectedEvent(id, cropName, *correction))
	}
	return &EditResult{State: state, Correction: correction}, nil
}

// OpenDistribution reveals the channel allocation step; needs at least one active row
func (s *service) OpenDistribution(ctx context.Context, id string) (*domain.SessionState, error) {
	return s.mutate(ctx, id, ActionDistributionOpened, func(state *domain.SessionState) error {
		if len(state.ActiveRows()) == 0 {
			return domain.ErrNoActiveRows
		}
		state.DistributionVisible = true
		return nil
	})
}

// Calculate prices every active row. The distribution must be open and every active
// row must resolve and fit within its harvest.
func (s *service) Calculate(ctx context.Context, id string) (*domain.Totals, error) {
	state, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !state.DistributionVisible {
		return nil, domain.ErrDistributionClosed
	}

	active := state.ActiveRows()
	if len(active) == 0 {
		return nil, domain.ErrNoActiveRows
	}
	for _, row := range active {
		crop, ok := s.data.Find(row.CropName, state.Season)
		if !ok {
			return nil, fmt.Errorf(ErrFmtUnknownCrop, domain.ErrCropNotFound, row.CropName, state.Season)
		}
		if res := allocation.ValidateCapacity(row, crop); !res.OK {
			return nil, fmt.Errorf(ErrFmtOverCapacity, domain.ErrAllocationInvalid, crop.Name, res.Allocated, res.Harvest)
		}
	}

	odds, ok := s.data.ProbabilityRow(state.SkillLevel)
	if !ok {
		return nil, fmt.Errorf(ErrFmtSkillLevel, domain.ErrSkillLevelNotFound, state.SkillLevel)
	}

	totals := aggregate.Aggregate(state.Rows, s.data, state.Season, odds, state.HasTiller, state.HasArtisan)

	logger.FromContext(ctx).Info(LogMsgEstimateCalculated,
		logger.AttrKeySessionID, id,
		"rows", len(totals.Breakdown),
		"profit", totals.TotalProfit)
	s.publish(ctx, event.NewEstimateCalculatedEvent(state, totals))
	return &totals, nil
}

// Reset returns the session to its defaults, keeping its id
func (s *service) Reset(ctx context.Context, id string) (*domain.SessionState, error) {
	return s.mutate(ctx, id, ActionReset, func(state *domain.SessionState) error {
		*state = *s.newState(id, state.CreatedAt)
		return nil
	})
}

// ActiveSessions is the number of sessions currently held
func (s *service) ActiveSessions() int {
	return s.store.Len()
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if requestID := logger.GetRequestID(ctx); requestID != "" {
		if evt.Metadata == nil {
			evt.Metadata = make(map[string]interface{})
		}
		evt.Metadata[event.MetadataKeyRequestID] = requestID
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
