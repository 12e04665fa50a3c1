package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"proofit/internal/domain"
	"proofit/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---
var (
	ErrEmailTaken           = errors.New("an account with this email already exists")
	ErrUsernameTaken        = errors.New("this username is already taken")
	ErrInvalidUsername      = errors.New("username must be 3-20 characters: lowercase letters, digits, underscores")
	ErrAuthenticationFailed = errors.New("authentication failed: invalid email or password")
	ErrHashingFailed        = errors.New("failed to hash password")
	ErrTokenGeneration      = errors.New("failed to generate authentication token")
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9_]{3,20}$`)

// AuthService handles registration, login and token issuance.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.Profile, error)
	Login(ctx context.Context, email, password string) (token string, profile *domain.Profile, err error)
	GetJWTSecret() string
}

// authService implements the AuthService interface.
type authService struct {
	profileRepo   repository.ProfileRepository
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService creates a new instance of authService.
func NewAuthService(profileRepo repository.ProfileRepository, jwtSecret string, jwtExpiration time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if jwtExpiration <= 0 {
		jwtExpiration = 24 * time.Hour
	}
	return &authService{
		profileRepo:   profileRepo,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Register handles new user registration.
func (s *authService) Register(ctx context.Context, username, email, password string) (*domain.Profile, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" || email == "" || password == "" {
		return nil, errors.New("username, email and password cannot be empty")
	}
	if !usernamePattern.MatchString(username) {
		return nil, ErrInvalidUsername
	}

	// Check both identities up front for a friendlier error than the index
	// violation; the unique indexes still back this up under races.
	_, err := s.profileRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	available, err := s.profileRepo.UsernameAvailable(ctx, username, primitive.NilObjectID)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrHashingFailed
	}

	profile := &domain.Profile{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		DisplayName:  username,
	}

	profileID, err := s.profileRepo.Create(ctx, profile)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	profile.ID = profileID

	profile.PasswordHash = ""
	return profile, nil
}

// Login handles user authentication and JWT generation.
func (s *authService) Login(ctx context.Context, email, password string) (token string, profile *domain.Profile, err error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		err = errors.New("email and password cannot be empty")
		return
	}

	profile, err = s.profileRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			err = ErrAuthenticationFailed
			return
		}
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password))
	if err != nil {
		err = ErrAuthenticationFailed
		profile = nil
		return
	}

	token, err = s.generateJWT(profile)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	profile.PasswordHash = ""
	return token, profile, nil
}

// jwtClaims defines the structure of the JWT payload.
type jwtClaims struct {
	UserID   string `json:"uid"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// generateJWT creates a new JWT token for the given profile.
func (s *authService) generateJWT(profile *domain.Profile) (string, error) {
	expirationTime := time.Now().Add(s.jwtExpiration)
	claims := &jwtClaims{
		UserID:   profile.ID.Hex(),
		Username: profile.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profile.ID.Hex(),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "proofit",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}
	return signedToken, nil
}

// GetJWTSecret returns the JWT secret for middleware authentication
func (s *authService) GetJWTSecret() string {
	return s.jwtSecret
}
