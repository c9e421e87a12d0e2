package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/MKhiriev/go-storefront/models"
	"golang.org/x/crypto/bcrypt"
)

// userService is the concrete implementation of UserService.
// It handles account registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type userService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// pepper is a server-side secret appended to every password before it is
	// hashed or compared. Must match the value used at registration time.
	pepper string

	// bcryptCost is the bcrypt work factor applied when hashing passwords.
	bcryptCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		pepper:         cfg.PasswordPepper,
		bcryptCost:     cfg.BcryptCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Index lists every registered user. The Password field of each returned
// record carries the stored bcrypt digest, never a plain-text password.
func (u *userService) Index(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := u.userRepository.FindAllUsers(ctx)
	if err != nil {
		log.Err(err).Str("func", "*userService.Index").Msg("users listing ended with error")
		return nil, fmt.Errorf("users listing ended with error: %w", err)
	}

	return users, nil
}

// Show looks up a single user by its externally assigned identifier.
//
// Returns the user record or:
//   - store.ErrUserNotFound if no user holds that identifier.
//   - A wrapped storage error if the repository call fails.
func (u *userService) Show(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*userService.Show").Str("user_id", userID).Msg("user search by id failed")
		return models.User{}, err
	}

	return foundUser, nil
}

// Create registers a new user account.
//
// It validates that every field is non-empty, verifies the identifier is not
// already taken, hashes the peppered password with bcrypt, and delegates
// persistence to the UserRepository. The Password field of the returned user
// carries the stored digest.
//
// Returns the persisted user or:
//   - ErrUserFieldsIncorrect if any field is empty.
//   - store.ErrUserAlreadyExists if the identifier is already taken.
//   - A wrapped storage error if the repository call fails.
func (u *userService) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.ID == "" || user.FirstName == "" || user.LastName == "" || user.Password == "" {
		log.Error().Str("func", "*userService.Create").Str("user_id", user.ID).Msg("invalid user data provided")
		return models.User{}, ErrUserFieldsIncorrect
	}

	// check-then-act existence check; the primary key backstops the race.
	_, err := u.userRepository.FindUserByID(ctx, user.ID)
	switch {
	case err == nil:
		log.Error().Str("func", "*userService.Create").Str("user_id", user.ID).Msg("user id is already taken")
		return models.User{}, store.ErrUserAlreadyExists
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("func", "*userService.Create").Str("user_id", user.ID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	digest, hashErr := bcrypt.GenerateFromPassword([]byte(user.Password+u.pepper), u.bcryptCost)
	if hashErr != nil {
		log.Err(hashErr).Str("func", "*userService.Create").Str("user_id", user.ID).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", hashErr)
	}
	user.Password = string(digest)

	createdUser, createErr := u.userRepository.CreateUser(ctx, user)
	if createErr != nil {
		log.Err(createErr).Str("func", "*userService.Create").Str("user_id", user.ID).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", createErr)
	}

	return createdUser, nil
}

// Authenticate verifies a user's credentials and issues a signed JWT.
//
// It looks up the account by identifier and compares the peppered password
// against the stored bcrypt digest. The issued token is signed with the
// configured tokenSignKey, carries the configured tokenIssuer as the "iss"
// claim, and expires after tokenDuration.
//
// Returns the token model or:
//   - ErrUserFieldsIncorrect if the identifier or password is empty.
//   - store.ErrUserNotFound if no user holds that identifier.
//   - ErrPasswordIncorrect if the password does not match the stored digest.
//   - ErrTokenCreationFailed (wrapped) if JWT generation fails.
func (u *userService) Authenticate(ctx context.Context, userID string, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if userID == "" || password == "" {
		log.Error().Str("func", "*userService.Authenticate").Str("user_id", userID).Msg("invalid credentials provided")
		return models.Token{}, ErrUserFieldsIncorrect
	}

	foundUser, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*userService.Authenticate").Str("user_id", userID).Msg("user search by id failed")
		return models.Token{}, err
	}

	if compareErr := bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(password+u.pepper)); compareErr != nil {
		log.Error().Str("func", "*userService.Authenticate").Str("user_id", userID).Msg("wrong password")
		return models.Token{}, ErrPasswordIncorrect
	}

	token, tokenErr := utils.GenerateJWTToken(u.tokenIssuer, foundUser.ID, u.tokenDuration, u.tokenSignKey)
	if tokenErr != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, tokenErr)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (u *userService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, u.tokenSignKey, u.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
