package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/infrastructure/persistence"
)

// Roles carried by tokens. The seeded administrator account owns every
// endpoint; gestionnaires cannot manage users.
const (
	RoleAdmin        = "admin"
	RoleGestionnaire = "gestionnaire"
)

// ErrInvalidCredentials is returned for an unknown username or a wrong
// password, without telling the caller which
var ErrInvalidCredentials = errors.New("invalid credentials")

// Utilisateur is an application account. Accounts are provisioned by the
// administrator, never self-registered.
type Utilisateur struct {
	shared.BaseEntity
	Username     string `gorm:"size:50;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:100;not null"`
	Role         string `gorm:"size:20;not null"`
	Actif        bool   `gorm:"not null;default:true"`
}

// TableName returns the table name
func (Utilisateur) TableName() string { return "utilisateurs" }

// HashPassword derives a bcrypt hash for storage
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a candidate password against the stored hash
func (u *Utilisateur) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// UtilisateurRepository loads accounts for authentication
type UtilisateurRepository struct {
	db *persistence.Database
}

// NewUtilisateurRepository creates an account repository
func NewUtilisateurRepository(db *persistence.Database) *UtilisateurRepository {
	return &UtilisateurRepository{db: db}
}

// FindByUsername finds an account by its login name
func (r *UtilisateurRepository) FindByUsername(ctx context.Context, username string) (*Utilisateur, error) {
	var user Utilisateur
	if err := r.db.Session(ctx).First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Save persists an account
func (r *UtilisateurRepository) Save(ctx context.Context, user *Utilisateur) error {
	return r.db.Session(ctx).Save(user).Error
}

// Service authenticates accounts and issues tokens
type Service struct {
	users *UtilisateurRepository
	jwt   *JWTService
}

// NewService creates the authentication service
func NewService(users *UtilisateurRepository, jwt *JWTService) *Service {
	return &Service{users: users, jwt: jwt}
}

// LoginResult carries the issued token and the authenticated identity
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Username  string
	Role      string
}

// Login verifies the credentials and issues a bearer token. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.Actif || !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwt.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		Username:  user.Username,
		Role:      user.Role,
	}, nil
}
