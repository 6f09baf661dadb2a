package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"travelapp/internal/domain"
	"travelapp/internal/domain/models"
	"travelapp/internal/repositories"
	"travelapp/internal/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SessionService owns the user registry and the single active session.
// The session pointer is kept in memory for synchronous reads and mirrored
// to the store on every change, so it survives a restart.
//
// Signup and Login sleep for a configured latency to imitate a network
// round trip, and are serialized by a mutex: the behavior of overlapping
// auth calls is otherwise unspecified.
type SessionService struct {
	store   repositories.Store
	latency time.Duration

	authMu sync.Mutex

	sessMu  sync.RWMutex
	current *models.PublicUser
}

func NewSessionService(store repositories.Store, latency time.Duration) (*SessionService, error) {
	s := &SessionService{store: store, latency: latency}

	raw, err := store.Read(context.Background(), repositories.KeyCurrentSession)
	if err != nil {
		return nil, domain.InternalError{Msg: "read persisted session", Err: err}
	}
	if len(raw) > 0 {
		var u models.PublicUser
		if err := json.Unmarshal(raw, &u); err != nil {
			return nil, domain.InternalError{Msg: "decode persisted session", Err: err}
		}
		s.current = &u
	}
	return s, nil
}

// Signup registers a new account and establishes it as the current session.
// The duplicate check is a case-sensitive exact email match against the
// registry; on conflict the registry is left untouched.
func (s *SessionService) Signup(ctx context.Context, name, email, password, phone string) (models.PublicUser, error) {
	s.authMu.Lock()
	defer s.authMu.Unlock()

	s.simulateLatency(ctx)

	name = utils.NormalizeSpace(name)
	email = utils.TrimOrEmpty(email)
	if name == "" {
		return models.PublicUser{}, domain.ValidationError{Field: "name", Msg: "required"}
	}
	if email == "" {
		return models.PublicUser{}, domain.ValidationError{Field: "email", Msg: "required"}
	}
	if password == "" {
		return models.PublicUser{}, domain.ValidationError{Field: "password", Msg: "required"}
	}

	registry, err := s.readRegistry(ctx)
	if err != nil {
		return models.PublicUser{}, err
	}
	for _, u := range registry {
		if u.Email == email {
			return models.PublicUser{}, domain.ConflictError{Resource: "account", Msg: "email already registered"}
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.PublicUser{}, domain.InternalError{Msg: "hash password", Err: err}
	}

	user := models.User{
		ID:           "user-" + uuid.NewString(),
		Name:         name,
		Email:        email,
		Phone:        utils.TrimOrEmpty(phone),
		PasswordHash: string(hash),
		CreatedAt:    utils.NowUTC(),
	}
	registry = append(registry, user)
	if err := s.writeRegistry(ctx, registry); err != nil {
		return models.PublicUser{}, err
	}

	pub := user.ToPublic()
	if err := s.setSession(ctx, pub); err != nil {
		return models.PublicUser{}, err
	}
	utils.LogEvent("", "session", "signup", "user_id="+user.ID)
	return pub, nil
}

// Login matches credentials against the registry. On mismatch any existing
// session is left untouched.
func (s *SessionService) Login(ctx context.Context, email, password string) (models.PublicUser, error) {
	s.authMu.Lock()
	defer s.authMu.Unlock()

	s.simulateLatency(ctx)

	registry, err := s.readRegistry(ctx)
	if err != nil {
		return models.PublicUser{}, err
	}
	for _, u := range registry {
		if u.Email != utils.TrimOrEmpty(email) {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			break
		}
		pub := u.ToPublic()
		if err := s.setSession(ctx, pub); err != nil {
			return models.PublicUser{}, err
		}
		utils.LogEvent("", "session", "login", "user_id="+u.ID)
		return pub, nil
	}
	return models.PublicUser{}, domain.UnauthorizedError{Reason: "invalid email or password"}
}

// Logout clears the session from memory and from the store. Idempotent.
func (s *SessionService) Logout(ctx context.Context) error {
	s.authMu.Lock()
	defer s.authMu.Unlock()

	s.sessMu.Lock()
	s.current = nil
	s.sessMu.Unlock()

	if err := s.store.Delete(ctx, repositories.KeyCurrentSession); err != nil {
		return domain.InternalError{Msg: "clear persisted session", Err: err}
	}
	utils.LogEvent("", "session", "logout", "session cleared")
	return nil
}

// CurrentUser is a synchronous read of the in-memory session state.
func (s *SessionService) CurrentUser() (models.PublicUser, bool) {
	s.sessMu.RLock()
	defer s.sessMu.RUnlock()

	if s.current == nil {
		return models.PublicUser{}, false
	}
	return *s.current, true
}

func (s *SessionService) setSession(ctx context.Context, u models.PublicUser) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return domain.InternalError{Msg: "encode session", Err: err}
	}
	if err := s.store.Write(ctx, repositories.KeyCurrentSession, raw); err != nil {
		return domain.InternalError{Msg: "persist session", Err: err}
	}
	s.sessMu.Lock()
	s.current = &u
	s.sessMu.Unlock()
	return nil
}

func (s *SessionService) readRegistry(ctx context.Context) ([]models.User, error) {
	raw, err := s.store.Read(ctx, repositories.KeyUserRegistry)
	if err != nil {
		return nil, domain.InternalError{Msg: "read user registry", Err: err}
	}
	if len(raw) == 0 {
		return []models.User{}, nil
	}
	var registry []models.User
	if err := json.Unmarshal(raw, &registry); err != nil {
		return nil, domain.InternalError{Msg: "decode user registry", Err: err}
	}
	return registry, nil
}

func (s *SessionService) writeRegistry(ctx context.Context, registry []models.User) error {
	raw, err := json.Marshal(registry)
	if err != nil {
		return domain.InternalError{Msg: "encode user registry", Err: err}
	}
	if err := s.store.Write(ctx, repositories.KeyUserRegistry, raw); err != nil {
		return domain.InternalError{Msg: "persist user registry", Err: err}
	}
	return nil
}

func (s *SessionService) simulateLatency(ctx context.Context) {
	if s.latency <= 0 {
		return
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
