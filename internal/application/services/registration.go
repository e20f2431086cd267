package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"tourist-registry-api/internal/application/ports"
	"tourist-registry-api/internal/domain/documenttype"
	domain "tourist-registry-api/internal/domain/user"
	userDB "tourist-registry-api/internal/infrastructure/db/postgres/user"
	"tourist-registry-api/internal/infrastructure/mq"
	"tourist-registry-api/internal/interface/api/rest/dto/user"
)

var (
	// ErrInvalidCode covers both a wrong code and an unknown email, so the
	// response cannot be used to probe which addresses are registered.
	ErrInvalidCode = errors.New("invalid confirmation code")
	// ErrCodeDelivery means the code is stored but the email did not go
	// out; a resend issues a fresh one.
	ErrCodeDelivery         = errors.New("failed to send confirmation code")
	ErrConfirmationRequired = errors.New("email is not confirmed")
	ErrUnknownDocumentType  = errors.New("unknown document type")
)

type RegistrationService struct {
	userRepository    domain.Repository
	docTypeRepository documenttype.Repository
	codes             ports.CodeGenerator
	mailer            ports.Mailer
	mq                ports.RabbitMQ
	mCounter          *prometheus.CounterVec
	codeTTL           time.Duration
	requireConfirmed  bool
}

func NewRegistrationService(
	userRepository domain.Repository,
	docTypeRepository documenttype.Repository,
	codes ports.CodeGenerator,
	mailer ports.Mailer,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
	codeTTL time.Duration,
	requireConfirmed bool,
) ports.RegistrationService {
	return &RegistrationService{
		userRepository:    userRepository,
		docTypeRepository: docTypeRepository,
		codes:             codes,
		mailer:            mailer,
		mq:                mq,
		mCounter:          mCounter,
		codeTTL:           codeTTL,
		requireConfirmed:  requireConfirmed,
	}
}

func (rs *RegistrationService) IssueConfirmationCode(ctx context.Context, email string) error {
	code, err := rs.codes.Generate()
	if err != nil {
		return err
	}

	// persist first: a delivery failure must not lose the active code
	if err = rs.userRepository.UpsertConfirmationCode(ctx, email, code, time.Now().UTC()); err != nil {
		return err
	}

	if err = rs.mailer.SendConfirmationCode(ctx, email, code); err != nil {
		return fmt.Errorf("%w: %w", ErrCodeDelivery, err)
	}

	rs.mCounter.WithLabelValues("confirmation_code_sent_total").Inc()

	return nil
}

func (rs *RegistrationService) VerifyConfirmationCode(ctx context.Context, email, code string) error {
	notBefore := time.Now().UTC().Add(-rs.codeTTL)

	u, err := rs.userRepository.ConfirmByCode(ctx, email, code, notBefore)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrInvalidCode
	}

	rs.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Action:  mq.ActionConfirmed,
		Email:   u.Email,
		Payload: user.ToResponseUser(*u),
	}

	rs.mCounter.WithLabelValues("user_confirmed_total").Inc()

	return nil
}

func (rs *RegistrationService) CompleteRegistration(ctx context.Context, u domain.User, password string) (*domain.User, error) {
	existing, err := rs.userRepository.FetchUserByEmail(ctx, u.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.IsActive {
		return nil, userDB.ErrEmailAlreadyExists
	}
	if rs.requireConfirmed && (existing == nil || !existing.IsConfirmed) {
		return nil, ErrConfirmationRequired
	}

	if u.DocumentTypeID != nil {
		dt, err := rs.docTypeRepository.FetchByID(ctx, *u.DocumentTypeID)
		if err != nil {
			return nil, err
		}
		if dt == nil {
			return nil, ErrUnknownDocumentType
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)
	u.PasswordHash = &hashStr

	uRet, err := rs.userRepository.CompleteRegistration(ctx, u)
	if err != nil {
		return nil, err
	}

	if uRet != nil {
		rs.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Action:  mq.ActionRegistered,
			Email:   uRet.Email,
			Payload: user.ToResponseUser(*uRet),
		}
	}

	rs.mCounter.WithLabelValues("user_registered_total").Inc()

	return uRet, nil
}
