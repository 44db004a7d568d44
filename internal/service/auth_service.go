package service

import (
	"errors"

	"go-purchase-tracker/internal/repository"
	"go-purchase-tracker/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is inactive")
)

type AuthService interface {
	Login(email, password string) (*LoginResponse, error)
}

type LoginResponse struct {
	Token      string   `json:"token"`
	AccountID  int64    `json:"account_id"`
	Email      string   `json:"email"`
	Privileges []string `json:"privileges"`
}

type authService struct {
	accountRepo repository.AccountRepository
}

func NewAuthService(accountRepo repository.AccountRepository) AuthService {
	return &authService{accountRepo: accountRepo}
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	account, err := s.accountRepo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !account.IsActive {
		return nil, ErrAccountInactive
	}

	if !account.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	privileges := account.GetPrivilegeCodes()
	token, err := jwt.GenerateToken(account.ID, account.Email, privileges)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token:      token,
		AccountID:  account.ID,
		Email:      account.Email,
		Privileges: privileges,
	}, nil
}
