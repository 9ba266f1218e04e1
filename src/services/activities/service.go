package activities

import (
	"Mergington-Activities/src/models"
	"fmt"
	"sync"
)

// Registry เก็บกิจกรรมทั้งหมดในหน่วยความจำ
// Built once at startup; only participant lists change afterwards.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]*models.Activity
	order      []string
	onSignup   func(activity string, participants int)
}

// NewRegistry copies seed into a new registry, rejecting any entry that breaks
// the name, capacity or duplicate-participant invariants.
func NewRegistry(seed []models.Activity) (*Registry, error) {
	r := &Registry{
		activities: make(map[string]*models.Activity, len(seed)),
		order:      make([]string, 0, len(seed)),
	}

	for _, a := range seed {
		if err := checkSeedActivity(a); err != nil {
			return nil, err
		}
		if _, exists := r.activities[a.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateActivity, a.Name)
		}
		clone := a.Clone()
		r.activities[a.Name] = &clone
		r.order = append(r.order, a.Name)
	}

	return r, nil
}

// List returns a snapshot of every activity keyed by name.
func (r *Registry) List() map[string]models.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]models.Activity, len(r.activities))
	for name, a := range r.activities {
		out[name] = a.Clone()
	}
	return out
}

// Get returns a snapshot of a single activity.
func (r *Registry) Get(name string) (models.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.activities[name]
	if !ok {
		return models.Activity{}, ErrActivityNotFound
	}
	return a.Clone(), nil
}

// Names returns activity names in seed order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len is the number of activities.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// OnSignup registers fn to run after every successful signup. fn is called
// while the write lock is held, so calls arrive in signup order and must not
// call back into the registry.
func (r *Registry) OnSignup(fn func(activity string, participants int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onSignup = fn
}

// Signup ลงทะเบียนนักเรียนเข้ากิจกรรม (ลงซ้ำไม่ได้ + กันเต็มโควต้า)
// The whole check-then-append runs under the write lock.
func (r *Registry) Signup(activityName, email string) (models.SignupConfirmation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// 1) กิจกรรมมีจริงไหม
	a, ok := r.activities[activityName]
	if !ok {
		return models.SignupConfirmation{}, ErrActivityNotFound
	}

	// 2) กันลงซ้ำ
	if a.HasParticipant(email) {
		return models.SignupConfirmation{}, ErrAlreadySignedUp
	}

	// 3) กันเต็มโควต้า
	if a.IsFull() {
		return models.SignupConfirmation{}, ErrActivityFull
	}

	// Readers only ever see clones, so appending in place is safe under the lock.
	a.Participants = append(a.Participants, email)
	if r.onSignup != nil {
		r.onSignup(a.Name, len(a.Participants))
	}

	return models.SignupConfirmation{
		Email:        email,
		Activity:     activityName,
		Participants: len(a.Participants),
	}, nil
}

func checkSeedActivity(a models.Activity) error {
	if a.Name == "" {
		return ErrInvalidSeed
	}
	if a.MaxParticipants <= 0 {
		return fmt.Errorf("%w: %q has non-positive capacity %d", ErrInvalidSeed, a.Name, a.MaxParticipants)
	}
	if len(a.Participants) > a.MaxParticipants {
		return fmt.Errorf("%w: %q has %d participants for %d slots", ErrInvalidSeed, a.Name, len(a.Participants), a.MaxParticipants)
	}
	seen := make(map[string]struct{}, len(a.Participants))
	for _, p := range a.Participants {
		if _, dup := seen[p]; dup {
			return fmt.Errorf("%w: %q lists %s twice", ErrInvalidSeed, a.Name, p)
		}
		seen[p] = struct{}{}
	}
	return nil
}
