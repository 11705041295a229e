package service

import (
	"context"
	"relaybot/internal/core/domain"
	"relaybot/internal/core/port"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultFloorDelay is the minimum delay between two synchronization runs
// of the same group, guarding against a manifest declaring a next-fetch
// instant in the past.
const DefaultFloorDelay = 5 * time.Second

// Scheduler runs one repeating synchronization loop per registered group.
// Each run asks the syncer for the next-fetch instant and re-arms itself;
// a failed run halts only that group's loop.
type Scheduler struct {
	syncer    port.Syncer
	directory port.Directory
	floor     time.Duration
	onError   func(groupID string, err error)
	now       func() time.Time

	ctx   context.Context
	mu    sync.Mutex
	tasks map[string]context.CancelFunc
}

func NewScheduler(ctx context.Context, syncer port.Syncer, directory port.Directory,
	floor time.Duration, onError func(groupID string, err error)) *Scheduler {
	if floor <= 0 {
		floor = DefaultFloorDelay
	}

	if onError == nil {
		onError = func(groupID string, err error) {
			log.Error().Err(err).Str("groupId", groupID).Msg("group synchronization halted")
		}
	}

	return &Scheduler{
		syncer:    syncer,
		directory: directory,
		floor:     floor,
		onError:   onError,
		now:       time.Now,
		ctx:       ctx,
		tasks:     make(map[string]context.CancelFunc),
	}
}

// Start launches the loop for a group, synchronizing once immediately. If
// a loop is already running for the id it is canceled first, keeping at
// most one live task per group.
func (s *Scheduler) Start(groupID string) {
	s.mu.Lock()

	if cancel, ok := s.tasks[groupID]; ok {
		cancel()
	}

	ctx, cancel := context.WithCancel(s.ctx)
	s.tasks[groupID] = cancel
	s.mu.Unlock()

	go s.run(ctx, groupID)
}

// Cancel stops the loop for a group. Safe to call repeatedly and while a
// run is in flight; the in-flight run will not re-arm.
func (s *Scheduler) Cancel(groupID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cancel, ok := s.tasks[groupID]; ok {
		cancel()
		delete(s.tasks, groupID)
	}
}

// StartAll launches loops for every group currently persisted, so that
// synchronization resumes after a restart.
func (s *Scheduler) StartAll(ctx context.Context) error {
	groups, err := s.directory.Groups(ctx)
	if err != nil {
		return err
	}

	for _, id := range domain.SortedGroupIDs(groups) {
		log.Info().Str("groupId", id).Msg("scheduling persisted group")
		s.Start(id)
	}

	return nil
}

func (s *Scheduler) run(ctx context.Context, groupID string) {
	for {
		if ctx.Err() != nil {
			return
		}

		next, err := s.syncer.Sync(ctx, groupID)
		if err != nil {
			s.onError(groupID, err)
			return
		}

		delay := next.Sub(s.now())
		if delay < s.floor {
			delay = s.floor
		}

		log.Debug().Str("groupId", groupID).Dur("delay", delay).Msg("arming next synchronization")

		t := time.NewTimer(delay)

		select {
		case <-ctx.Done():
			t.Stop()
			return
		case <-t.C:
		}
	}
}
