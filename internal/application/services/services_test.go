package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"

	"tourist-registry-api/internal/domain/documenttype"
	domain "tourist-registry-api/internal/domain/user"
	userDB "tourist-registry-api/internal/infrastructure/db/postgres/user"
	"tourist-registry-api/internal/infrastructure/mq"
)

// memUserRepo mirrors the single-row atomic semantics of the postgres
// repository so service tests can exercise the real state machine.
type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func copyUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	cp := *u
	return &cp
}

func (r *memUserRepo) FetchUserByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return copyUser(r.users[email]), nil
}

func (r *memUserRepo) FetchUserByUUID(_ context.Context, id domain.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.UUID == id {
			return copyUser(u), nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) UpsertConfirmationCode(_ context.Context, email, code string, issuedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		u = &domain.User{UUID: uuid.New(), Email: email, Role: domain.RoleNone}
		r.users[email] = u
	}
	u.ConfirmationCode = &code
	u.CodeIssuedAt = &issuedAt
	return nil
}

func (r *memUserRepo) ConfirmByCode(_ context.Context, email, code string, notBefore time.Time) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok || u.ConfirmationCode == nil || *u.ConfirmationCode != code {
		return nil, nil
	}
	if u.CodeIssuedAt == nil || u.CodeIssuedAt.Before(notBefore) {
		return nil, nil
	}
	u.ConfirmationCode = nil
	u.IsConfirmed = true
	return copyUser(u), nil
}

func (r *memUserRepo) CompleteRegistration(_ context.Context, req domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[req.Email]
	if ok && u.IsActive {
		return nil, userDB.ErrEmailAlreadyExists
	}
	if !ok {
		u = &domain.User{UUID: uuid.New(), Email: req.Email}
		r.users[req.Email] = u
	}
	u.PasswordHash = req.PasswordHash
	u.Role = req.Role
	u.Names = req.Names
	u.LastNames = req.LastNames
	u.BirthDate = req.BirthDate
	u.Phone = req.Phone
	u.DocumentTypeID = req.DocumentTypeID
	u.DocumentNumber = req.DocumentNumber
	u.DocumentIssueDate = req.DocumentIssueDate
	u.AcceptPolicy = req.AcceptPolicy
	u.AcceptDataProcessing = req.AcceptDataProcessing
	u.IsActive = true
	return copyUser(u), nil
}

// backdateCode ages the stored code so expiry paths can be exercised.
func (r *memUserRepo) backdateCode(email string, issuedAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[email]; ok {
		u.CodeIssuedAt = &issuedAt
	}
}

type fakeDocTypeRepo struct {
	FetchByIDFunc func(ctx context.Context, id uint64) (*documenttype.DocumentType, error)
}

func (f *fakeDocTypeRepo) FetchByID(ctx context.Context, id uint64) (*documenttype.DocumentType, error) {
	if f.FetchByIDFunc == nil {
		return &documenttype.DocumentType{ID: id, Name: "passport"}, nil
	}
	return f.FetchByIDFunc(ctx, id)
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []string // codes in send order
	err  error
}

func (f *fakeMailer) SendConfirmationCode(_ context.Context, _, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, code)
	return nil
}

type fakeCodeGen struct {
	codes []string
	next  int
}

func (f *fakeCodeGen) Generate() (string, error) {
	if f.next >= len(f.codes) {
		return "", errors.New("out of codes")
	}
	c := f.codes[f.next]
	f.next++
	return c, nil
}

type fakeMQ struct {
	in chan mq.Event
}

func newFakeMQ() *fakeMQ {
	return &fakeMQ{in: make(chan mq.Event, 16)}
}

func (f *fakeMQ) Connect(context.Context, string) error { return nil }
func (f *fakeMQ) Init() error                           { return nil }
func (f *fakeMQ) PublisherWorker(context.Context)       {}
func (f *fakeMQ) GetInputChan() chan mq.Event           { return f.in }
func (f *fakeMQ) GetConn() *amqp091.Connection          { return nil }

func newTestCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "test_counters"},
		[]string{"result"},
	)
}
