package services // Use-case layer; orchestrates business rules, not HTTP/DB details.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Modassir22/dream-home-hub/core"
	"github.com/Modassir22/dream-home-hub/global"
	"github.com/Modassir22/dream-home-hub/models"
	"github.com/Modassir22/dream-home-hub/repositories"
	"github.com/Modassir22/dream-home-hub/utils"
	"github.com/Modassir22/dream-home-hub/utils/redislog"

	"github.com/redis/go-redis/v9"
)

// AuthService covers accounts and bearer tokens.
type AuthService interface {
	Register(req models.RegisterRequest) (*models.AuthResponse, error) // always role "user"
	Login(req models.LoginRequest) (*models.AuthResponse, error)
	GetByID(id uint) (*models.User, error) // cache-aware; used by the auth guard on every request
	// SeedAdmin creates the admin account once; created is false if the username exists.
	SeedAdmin(username, password, email string) (u *models.User, created bool, err error)
}

type authService struct {
	repo      repositories.UserRepository
	rdb       *redis.Client    // may be nil (cache disabled)
	log       *redislog.Logger // may be nil
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo repositories.UserRepository, rdb *redis.Client, rlog *redislog.Logger, jwtSecret string, jwtTTL time.Duration) AuthService {
	return &authService{repo: repo, rdb: rdb, log: rlog, jwtSecret: jwtSecret, jwtTTL: jwtTTL}
}

// userCacheTTL is how long a cached user stays in Redis before expiring.
const userCacheTTL = 10 * time.Minute

func cacheKeyUser(id uint) string {
	return fmt.Sprintf("user:%d", id) // e.g. "user:42"
}

func (s *authService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	username := core.NormalizeUsername(req.Username)
	if len(username) < 3 {
		return nil, invalid("Username must be at least 3 characters")
	}
	if _, err := s.repo.FindByUsername(username); err == nil {
		s.log.Warn("register username exists", map[string]string{"username": username})
		return nil, conflict("Username already exists")
	} else if !repositories.IsNotFound(err) {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("register hash error", map[string]string{"username": username, "err": err.Error()})
		return nil, err
	}

	u := &models.User{
		Username: username,
		Email:    req.Email,
		Password: hash,
		Role:     global.RoleUser,
	}
	if err := s.repo.Create(u); err != nil {
		if repositories.IsDuplicate(err) { // lost a race with a concurrent register
			return nil, conflict("Username already exists")
		}
		s.log.Error("register db create error", map[string]string{"username": username, "err": err.Error()})
		return nil, err
	}
	s.cacheUser(u) // first /me after register is a HIT

	s.log.Info("register success", map[string]string{"user_id": fmt.Sprint(u.ID), "username": u.Username})
	return s.authResponse(u)
}

// Login validates credentials and issues a signed token. Unknown user and
// wrong password produce the same error.
func (s *authService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	username := core.NormalizeUsername(req.Username)
	u, err := s.repo.FindByUsername(username)
	if err != nil {
		if !repositories.IsNotFound(err) {
			return nil, err
		}
		s.log.Warn("login user not found", map[string]string{"username": username})
		return nil, &Error{Kind: ErrInvalidCredentials, Msg: "Invalid credentials"}
	}
	if !utils.CheckPassword(u.Password, req.Password) {
		s.log.Warn("login wrong password", map[string]string{"username": username})
		return nil, &Error{Kind: ErrInvalidCredentials, Msg: "Invalid credentials"}
	}

	s.log.Info("login success", map[string]string{"user_id": fmt.Sprint(u.ID), "username": u.Username})
	return s.authResponse(u)
}

// GetByID returns a user, preferring Redis cache and falling back to DB.
func (s *authService) GetByID(id uint) (*models.User, error) {
	if s.rdb != nil {
		key := cacheKeyUser(id)
		val, err := s.rdb.Get(context.Background(), key).Result()
		switch {
		case err == nil:
			var u models.User
			if json.Unmarshal([]byte(val), &u) == nil {
				return &u, nil
			}
			s.log.Warn("cache unmarshal failed", map[string]string{"key": key})
		case err == redis.Nil: // MISS, fall through to DB
		default:
			s.log.Error("cache GET error", map[string]string{"key": key, "err": err.Error()})
		}
	}

	u, err := s.repo.FindByID(id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, notFound("User not found")
		}
		s.log.Error("db fetch error in GetByID", map[string]string{"user_id": fmt.Sprint(id), "err": err.Error()})
		return nil, err
	}
	s.cacheUser(u)
	return u, nil
}

func (s *authService) SeedAdmin(username, password, email string) (*models.User, bool, error) {
	username = core.NormalizeUsername(username)
	if username == "" || len(password) < 6 {
		return nil, false, invalid("admin username and a password of at least 6 characters are required")
	}
	if u, err := s.repo.FindByUsername(username); err == nil {
		return u, false, nil
	} else if !repositories.IsNotFound(err) {
		return nil, false, err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, false, err
	}
	u := &models.User{Username: username, Email: email, Password: hash, Role: global.RoleAdmin}
	if err := s.repo.Create(u); err != nil {
		if repositories.IsDuplicate(err) {
			existing, ferr := s.repo.FindByUsername(username)
			return existing, false, ferr
		}
		return nil, false, err
	}
	s.log.Info("admin seeded", map[string]string{"user_id": fmt.Sprint(u.ID), "username": u.Username})
	return u, true, nil
}

func (s *authService) authResponse(u *models.User) (*models.AuthResponse, error) {
	tok, err := utils.IssueToken(s.jwtSecret, u.ID, u.Role, s.jwtTTL)
	if err != nil {
		s.log.Error("token sign error", map[string]string{"user_id": fmt.Sprint(u.ID), "err": err.Error()})
		return nil, err
	}
	return &models.AuthResponse{Token: tok, User: u.Summary()}, nil
}

// cacheUser is best-effort: a failed SET only costs a DB read later.
func (s *authService) cacheUser(u *models.User) {
	if s.rdb == nil {
		return
	}
	key := cacheKeyUser(u.ID)
	if b, _ := json.Marshal(u); len(b) > 0 {
		if err := s.rdb.Set(context.Background(), key, b, userCacheTTL).Err(); err != nil {
			s.log.Error("cache SET error", map[string]string{"key": key, "err": err.Error()})
		}
	}
}
