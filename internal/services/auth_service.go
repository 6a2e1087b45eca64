package services

import (
	"errors"
	"time"

	"github.com/terraincognita07/tastebook/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken = errors.New("username already exists")
	// ErrInvalidCredentials is returned for unknown usernames and wrong
	// passwords alike, so responses never reveal whether an account exists.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type AuthUserRepository interface {
	ExistsByNormalizedUsername(username string) (bool, error)
	FindByNormalizedUsername(username string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

// SetPassword hashes the plaintext and stores only the hash.
func SetPassword(user *models.User, plaintext string) error {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(passwordHash)
	return nil
}

// SetPasswordHash stores an already-computed bcrypt hash. It exists as a
// separate operation so callers state their intent instead of the store
// sniffing whether a value looks like a hash.
func SetPasswordHash(user *models.User, passwordHash string) {
	user.PasswordHash = passwordHash
}

func (service *AuthService) CreateUser(username string, password string, imageURL string, bio string) (models.User, error) {
	username, password, err := NormalizeCredentialsInput(username, password)
	if err != nil {
		return models.User{}, err
	}

	exists, err := service.users.ExistsByNormalizedUsername(NormalizeUsername(username))
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrUsernameTaken
	}

	user := models.User{
		Username:  username,
		ImageURL:  imageURL,
		Bio:       bio,
		CreatedAt: time.Now(),
	}
	if err := SetPassword(&user, password); err != nil {
		return models.User{}, err
	}

	// The unique index still guards the race where two signups pass the
	// existence check; only the losing insert surfaces as a conflict,
	// other store faults propagate raw.
	if err := service.users.Create(&user); err != nil {
		if isConstraintViolation(err) {
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, err
	}
	return user, nil
}

func (service *AuthService) Authenticate(username string, password string) (models.User, error) {
	user, err := service.users.FindByNormalizedUsername(NormalizeUsername(username))
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}
