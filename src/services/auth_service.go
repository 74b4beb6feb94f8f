package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"Backend-SecAssess/src/database"
	"Backend-SecAssess/src/models"
	"Backend-SecAssess/src/utils"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	maxLoginAttempts = 5
	loginCooldown    = 15 * time.Minute
)

// AuthService จัดการสมัครสมาชิกและเข้าสู่ระบบ
type AuthService struct {
	db    *database.Mongo
	redis *redis.Client
}

func NewAuthService(db *database.Mongo, rdb *redis.Client) *AuthService {
	return &AuthService{db: db, redis: rdb}
}

// Register creates a new active user with role "user". Duplicate
// emails are rejected before anything is written.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	users := s.db.Collection(database.ColUsers)

	err := users.FindOne(ctx, bson.M{"email": req.Email}).Err()
	if err == nil {
		return nil, ErrEmailTaken
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:               uuid.NewString(),
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		OrganizationName: req.OrganizationName,
		Email:            req.Email,
		CorporateEmail:   req.CorporateEmail,
		Designation:      req.Designation,
		ContactNumber:    req.ContactNumber,
		PasswordHash:     hash,
		Role:             models.RoleUser,
		Status:           models.StatusActive,
		CreatedAt:        time.Now().UTC(),
	}

	if _, err := users.InsertOne(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login authenticates by email/password. Blocked accounts are rejected
// before the password check.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := s.db.Collection(database.ColUsers).
		FindOne(ctx, bson.M{"email": email}).
		Decode(&user)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if user.Status == models.StatusBlocked {
		return nil, ErrAccountBlocked
	}

	if !utils.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// IsRateLimited reports whether the email has exhausted its login
// attempts. Without Redis the throttle is disabled.
func (s *AuthService) IsRateLimited(ctx context.Context, email string) bool {
	if s.redis == nil {
		return false
	}

	count, err := s.redis.Get(ctx, loginAttemptKey(email)).Int()
	if err != nil {
		return false
	}
	return count >= maxLoginAttempts
}

// RemainingCooldown returns how long until the throttle resets.
func (s *AuthService) RemainingCooldown(ctx context.Context, email string) time.Duration {
	if s.redis == nil {
		return 0
	}

	ttl, err := s.redis.TTL(ctx, loginAttemptKey(email)).Result()
	if err != nil || ttl < 0 {
		return 0
	}
	return ttl
}

// RecordFailedLogin bumps the attempt counter, starting the cooldown
// window on the first failure.
func (s *AuthService) RecordFailedLogin(ctx context.Context, email string) {
	if s.redis == nil {
		return
	}

	key := loginAttemptKey(email)
	count, err := s.redis.Incr(ctx, key).Result()
	if err != nil {
		log.Println("⚠️ Failed to record login attempt:", err)
		return
	}
	if count == 1 {
		s.redis.Expire(ctx, key, loginCooldown)
	}
}

// ResetLoginAttempts clears the throttle after a successful login.
func (s *AuthService) ResetLoginAttempts(ctx context.Context, email string) {
	if s.redis == nil {
		return
	}
	s.redis.Del(ctx, loginAttemptKey(email))
}

// LogLoginAttempt บันทึกความพยายาม login ลง audit log
func (s *AuthService) LogLoginAttempt(ctx context.Context, email, ip string, success bool) {
	attempt := models.LoginAttempt{
		ID:        uuid.NewString(),
		Email:     email,
		IP:        ip,
		Success:   success,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := s.db.Collection(database.ColLoginAttempts).InsertOne(ctx, attempt); err != nil {
		log.Println("⚠️ Failed to log login attempt:", err)
	}
}

func loginAttemptKey(email string) string {
	return fmt.Sprintf("login_attempts:%s", email)
}
