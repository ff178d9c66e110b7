// Package users owns the server-side account records and the password check
// behind the login endpoint.
package users

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/kashifkhan1545/fingerauth/internal/common"
	"github.com/kashifkhan1545/fingerauth/internal/server/auth"
	"github.com/kashifkhan1545/fingerauth/internal/server/config"
)

// dummyHash is compared against on the unknown-account path so response
// timing does not reveal whether an account exists. Generated at init so
// its cost always matches real account hashes.
var dummyHash = func() []byte {
	h, err := bcrypt.GenerateFromPassword(common.GenerateRandByteArray(32), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return h
}()

type Service struct {
	repo   Repository
	config *config.Config
}

func NewService(repo Repository, config *config.Config) *Service {
	return &Service{repo: repo, config: config}
}

// Register creates an account with a bcrypt hash of password.
func (s *Service) Register(ctx context.Context, email string, password string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user, err := s.repo.Create(ctx, &User{Email: email, PasswordHash: hash})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the credentials and returns a signed session token.
// Unknown accounts and wrong passwords are indistinguishable to the caller:
// both come back as common.ErrorUnauthorized.
func (s *Service) Login(ctx context.Context, email string, password string) (string, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// Burn the same bcrypt cost as the known-account path.
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, []byte(s.config.SecretKey), s.config.TokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}
