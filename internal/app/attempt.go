package app

import (
	"sync"
	"time"

	"lumi-exercise-service/internal/domain"
	"lumi-exercise-service/internal/engine"
)

// Attempt wraps one engine session for concurrent use by a driver connection
// and any number of progress subscribers. The engine itself is single-writer
// by contract, so every mutation goes through the attempt's lock.
type Attempt struct {
	id        string
	createdAt time.Time
	now       func() time.Time

	mu          sync.RWMutex
	session     *engine.Session
	subscribers map[chan domain.ProgressSnapshot]struct{}
}

// NewAttempt is exported for infrastructure layers that need to seed attempts.
func NewAttempt(id string, session *engine.Session) *Attempt {
	return NewAttemptWithClock(id, session, time.Now)
}

// NewAttemptWithClock allows deterministic timestamps in tests.
func NewAttemptWithClock(id string, session *engine.Session, now func() time.Time) *Attempt {
	return &Attempt{
		id:          id,
		createdAt:   now(),
		now:         now,
		session:     session,
		subscribers: make(map[chan domain.ProgressSnapshot]struct{}),
	}
}

func (a *Attempt) submit(index int, answer domain.Answer) (domain.Verdict, domain.ProgressSnapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	verdict, err := a.session.Submit(index, answer)
	if err != nil {
		return "", domain.ProgressSnapshot{}, err
	}
	return verdict, a.broadcastLocked(), nil
}

func (a *Attempt) advance() (domain.ProgressSnapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.session.Advance(); err != nil {
		return domain.ProgressSnapshot{}, err
	}
	return a.broadcastLocked(), nil
}

func (a *Attempt) retreat() domain.ProgressSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.session.Retreat()
	return a.broadcastLocked()
}

func (a *Attempt) finalize() (domain.Result, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return engine.Summarize(a.session)
}

func (a *Attempt) snapshot() domain.ProgressSnapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshotLocked()
}

func (a *Attempt) questionAt(index int) (domain.Question, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.session.QuestionAt(index)
}

func (a *Attempt) subscribe() (<-chan domain.ProgressSnapshot, func()) {
	ch := make(chan domain.ProgressSnapshot, 8)

	a.mu.Lock()
	a.subscribers[ch] = struct{}{}
	initial := a.snapshotLocked()
	a.mu.Unlock()

	ch <- initial

	cancel := func() {
		a.mu.Lock()
		if _, ok := a.subscribers[ch]; ok {
			delete(a.subscribers, ch)
			close(ch)
		}
		a.mu.Unlock()
	}
	return ch, cancel
}

func (a *Attempt) broadcastLocked() domain.ProgressSnapshot {
	snap := a.snapshotLocked()
	for ch := range a.subscribers {
		select {
		case ch <- snap:
		default:
			// Drop the stale snapshot so a slow subscriber cannot block the
			// attempt; only the latest progress matters.
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}
	return snap
}

func (a *Attempt) snapshotLocked() domain.ProgressSnapshot {
	return domain.ProgressSnapshot{
		AttemptID:      a.id,
		ExerciseID:     a.session.ExerciseID(),
		CurrentIndex:   a.session.CurrentIndex(),
		TotalQuestions: a.session.Len(),
		AnsweredCount:  a.session.AnsweredCount(),
		IsLastQuestion: a.session.IsLastQuestion(),
		Completed:      a.session.Completed(),
		UpdatedAt:      a.now(),
	}
}
