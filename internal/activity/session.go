// Package activity holds the in-memory model of the activity currently being
// composed: the session orchestrator, the four per-pillar form reducers and
// their stopwatch timers, plus the local draft/post collections.
package activity

import (
	"errors"
	"sync"
	"time"

	"proofit/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrInvalidPillar  = errors.New("invalid pillar")
	ErrNoActivePillar = errors.New("no active pillar")
	ErrNoPhoto        = errors.New("a post requires a photo")
	ErrPillarMismatch = errors.New("data variant does not match active pillar")
)

// Session is the single source of truth for the activity being composed:
// active pillar, structured data, photo reference and the local draft/post
// collections. One session instance is owned by the capture flow; form
// reducers are its only writers while a screen is mounted, plus their timer
// goroutines, so access is mutex guarded.
type Session struct {
	mu        sync.Mutex
	pillar    domain.Pillar
	data      domain.ActivityData
	photoRef  string
	active    bool
	startTime time.Time

	drafts []domain.Draft
	posts  []domain.LocalPost

	now   func() time.Time
	newID func() string
}

func NewSession() *Session {
	return &Session{
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Start begins composing an activity for the given pillar: default data,
// no photo, fresh start time. Starting the pillar that is already actively
// composing is a no-op so re-entering the capture screen cannot wipe
// in-progress data. Starting a different pillar fully replaces all state.
func (s *Session) Start(pillar domain.Pillar) error {
	if !pillar.Valid() {
		return ErrInvalidPillar
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active && s.pillar == pillar {
		return nil
	}
	s.pillar = pillar
	s.data = domain.DefaultDataFor(pillar)
	s.photoRef = ""
	s.active = true
	s.startTime = s.now()
	return nil
}

// SetData replaces the session's structured data. The variant tag must match
// the active pillar; reducers always pass their complete current snapshot
// (including full replacement of any nested collections).
func (s *Session) SetData(data domain.ActivityData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pillar == domain.PillarNone {
		return ErrNoActivePillar
	}
	if data == nil || data.Pillar() != s.pillar {
		return ErrPillarMismatch
	}
	s.data = data
	return nil
}

// SetPhoto stores the captured photo reference. An empty ref means "no photo
// yet", not "discard the session".
func (s *Session) SetPhoto(ref string) {
	s.mu.Lock()
	s.photoRef = ref
	s.mu.Unlock()
}

// End marks the composing phase finished without resetting state; the compose
// screen still reads the session to publish or save it.
func (s *Session) End() {
	s.mu.Lock()
	s.active = false
	s.mu.Unlock()
}

// SaveToDraft snapshots the session into a new draft, prepends it to the
// draft list (most recent first) and resets the session. Fails without
// creating anything when no pillar is active.
func (s *Session) SaveToDraft() (domain.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pillar == domain.PillarNone {
		return domain.Draft{}, ErrNoActivePillar
	}
	draft := domain.Draft{
		ID:        s.newID(),
		Pillar:    s.pillar,
		Data:      cloneData(s.data),
		PhotoRef:  s.photoRef,
		CreatedAt: s.now(),
	}
	s.drafts = append([]domain.Draft{draft}, s.drafts...)
	s.resetLocked()
	return draft, nil
}

// CreatePost snapshots the session into a new local post and resets the
// session. Requires an active pillar and a photo; otherwise nothing is
// created and the session is left untouched.
func (s *Session) CreatePost(caption string) (domain.LocalPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pillar == domain.PillarNone {
		return domain.LocalPost{}, ErrNoActivePillar
	}
	if s.photoRef == "" {
		return domain.LocalPost{}, ErrNoPhoto
	}
	post := domain.LocalPost{
		ID:        s.newID(),
		Pillar:    s.pillar,
		Data:      cloneData(s.data),
		PhotoRef:  s.photoRef,
		Caption:   caption,
		CreatedAt: s.now(),
	}
	s.posts = append([]domain.LocalPost{post}, s.posts...)
	s.resetLocked()
	return post, nil
}

// Discard resets the session without creating any snapshot.
func (s *Session) Discard() {
	s.mu.Lock()
	s.resetLocked()
	s.mu.Unlock()
}

// LoadDraft restores the session from a stored draft. The draft itself stays
// in the collection; re-editing is non-destructive until the next save or
// post. The loaded session is not "active": its timer does not resume, the
// saved formatted duration is carried as-is.
func (s *Session) LoadDraft(draft domain.Draft) error {
	if !draft.Pillar.Valid() || draft.Data == nil || draft.Data.Pillar() != draft.Pillar {
		return ErrPillarMismatch
	}
	s.mu.Lock()
	s.pillar = draft.Pillar
	s.data = cloneData(draft.Data)
	s.photoRef = draft.PhotoRef
	s.active = false
	s.startTime = time.Time{}
	s.mu.Unlock()
	return nil
}

// DeleteDraft removes a draft by id. Unknown ids are ignored.
func (s *Session) DeleteDraft(id string) {
	s.mu.Lock()
	kept := s.drafts[:0]
	for _, d := range s.drafts {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	s.drafts = kept
	s.mu.Unlock()
}

func (s *Session) resetLocked() {
	s.pillar = domain.PillarNone
	s.data = nil
	s.photoRef = ""
	s.active = false
	s.startTime = time.Time{}
}

func (s *Session) ActivePillar() domain.Pillar {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pillar
}

func (s *Session) Data() domain.ActivityData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

func (s *Session) PhotoRef() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.photoRef
}

func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Drafts returns the draft list, most recent first.
func (s *Session) Drafts() []domain.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Draft, len(s.drafts))
	copy(out, s.drafts)
	return out
}

// Posts returns the local post list, most recent first.
func (s *Session) Posts() []domain.LocalPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.LocalPost, len(s.posts))
	copy(out, s.posts)
	return out
}

// cloneData deep-copies an activity data variant so snapshots stay immutable
// after the live session keeps mutating. Only the iron variant carries
// nested collections; the others are plain value structs.
func cloneData(data domain.ActivityData) domain.ActivityData {
	iron, ok := data.(domain.IronData)
	if !ok {
		return data
	}
	exercises := make([]domain.ExerciseEntry, len(iron.Exercises))
	for i, ex := range iron.Exercises {
		sets := make([]domain.SetEntry, len(ex.Sets))
		copy(sets, ex.Sets)
		ex.Sets = sets
		exercises[i] = ex
	}
	iron.Exercises = exercises
	return iron
}
