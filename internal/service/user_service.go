package service

import (
	"context"
	"time"

	"github.com/JhonMohamed/Ravvisant/config"
	"github.com/JhonMohamed/Ravvisant/internal/domain"
	"github.com/JhonMohamed/Ravvisant/internal/dto"
	"github.com/JhonMohamed/Ravvisant/internal/repository"
	"github.com/JhonMohamed/Ravvisant/pkg/errs"
	"github.com/JhonMohamed/Ravvisant/pkg/utils"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	userRepository repository.UserRepository
	config         *config.Config
}

func CreateUserService(userRepository repository.UserRepository, config *config.Config) UserService {
	return &UserServiceImpl{
		userRepository: userRepository,
		config:         config,
	}
}

func (s *UserServiceImpl) AddUser(ctx context.Context, data dto.UserRequest) (err error) {
	user, err := s.userRepository.GetUserByEmail(ctx, data.Email)
	if err != nil {
		return
	}

	if user.ID != 0 {
		return errs.ErrEmailAlreadyUsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.MinCost)
	if err != nil {
		return err
	}

	now := time.Now().UnixMilli()
	userEnt := domain.User{
		Name:           data.Name,
		Email:          data.Email,
		HashedPassword: string(hash),
		ExternalID:     ulid.Make().String(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err = s.userRepository.AddUser(ctx, userEnt)
	if err != nil {
		return err
	}

	return nil
}

func (s *UserServiceImpl) Login(ctx context.Context, payload dto.UserRequest) (respPayload dto.LoginResponse, err error) {
	user, err := s.userRepository.GetUserByEmail(ctx, payload.Email)
	if err != nil {
		return
	}

	if user.ID == 0 {
		return respPayload, errs.ErrAccountNotFound
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(payload.Password))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Login").Msg("")
		return respPayload, errs.ErrInvalidCredentialsEmail
	}

	token, err := utils.CreateJWTToken(user.ID, user.Name, user.ExternalID, s.config.JWTSecret)
	if err != nil {
		return
	}

	respPayload.Token = token
	respPayload.UserID = user.ID

	return
}
