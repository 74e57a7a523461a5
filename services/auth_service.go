package services

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/OmarHamdi11/blog-rest-api/auth"
	"github.com/OmarHamdi11/blog-rest-api/errs"
	"github.com/OmarHamdi11/blog-rest-api/models"
)

// AuthService handles registration and login. Successful login returns a
// signed bearer token asserting the user's role.
type AuthService struct {
	logger   zerolog.Logger
	userRepo UserRepository
	tokens   *auth.TokenProvider
}

func NewAuthService(userRepo UserRepository, tokens *auth.TokenProvider) *AuthService {
	return &AuthService{
		logger:   log.With().Str("serviceName", "authService").Logger(),
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register creates a new account with the default USER role.
func (s *AuthService) Register(dto models.RegisterDTO) error {
	if err := checkStruct(dto); err != nil {
		return err
	}

	taken, err := s.userRepo.ExistsByUsername(dto.Username)
	if err != nil {
		return errs.NewDatabaseError("check username", "users", err)
	}
	if taken {
		return errs.NewConflictError("username already exists")
	}

	taken, err = s.userRepo.ExistsByEmail(dto.Email)
	if err != nil {
		return errs.NewDatabaseError("check email", "users", err)
	}
	if taken {
		return errs.NewConflictError("email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return errs.NewInternalError("failed to hash password")
	}

	user := models.User{
		Name:     dto.Name,
		Username: dto.Username,
		Email:    dto.Email,
		Password: string(hash),
		Role:     models.RoleUser,
	}
	if err := s.userRepo.Add(&user); err != nil {
		return errs.NewDatabaseError("create user", "users", err)
	}

	s.logger.Info().Str("username", user.Username).Msg("user registered")
	return nil
}

// Login verifies credentials and issues a bearer token. The login name may be
// either the username or the email address.
func (s *AuthService) Login(dto models.LoginDTO) (models.TokenDTO, error) {
	if err := checkStruct(dto); err != nil {
		return models.TokenDTO{}, err
	}

	user, err := s.userRepo.FindByUsernameOrEmail(dto.UsernameOrEmail)
	if err != nil {
		return models.TokenDTO{}, errs.NewDatabaseError("find user", "users", err)
	}
	if user == nil {
		return models.TokenDTO{}, errs.NewUnauthorizedError("invalid username or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(dto.Password)); err != nil {
		return models.TokenDTO{}, errs.NewUnauthorizedError("invalid username or password")
	}

	token, err := s.tokens.Generate(user.Username, user.Role)
	if err != nil {
		return models.TokenDTO{}, errs.NewInternalError("failed to issue token")
	}

	s.logger.Info().Str("username", user.Username).Msg("user logged in")
	return models.TokenDTO{AccessToken: token, TokenType: "Bearer"}, nil
}
