package jwt

import (
	"sync"
	"time"

	"github.com/attendance-admin/attendance-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	GenerateAccessToken(userID string, identifier string, role user.Role) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	accessTokenExpiration time.Duration
	tokenAuth             *jwtauth.JWTAuth
	now                   func() time.Time

	mu            sync.RWMutex
	revokedTokens map[string]int64 // token -> exp, pruned once expired
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// NewJWTService expects an expiration already checked by config.Validate;
// an unparsable one falls back to one hour.
func NewJWTService(secretKey string, accessTokenExpirationTime string) *JWTService {
	exp, err := time.ParseDuration(accessTokenExpirationTime)
	if err != nil || exp <= 0 {
		exp = time.Hour
	}
	return &JWTService{
		accessTokenExpiration: exp,
		tokenAuth:             jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		now:                   time.Now,
		revokedTokens:         make(map[string]int64),
	}
}

func (j *JWTService) GenerateAccessToken(userID string, identifier string, role user.Role) (token string, expiresAt int64, err error) {
	expiresAt = j.now().Add(j.accessTokenExpiration).Unix()

	claims := map[string]interface{}{
		"user_id":    userID,
		"identifier": identifier,
		"role":       string(role),
		"type":       "access",
		"exp":        expiresAt,
	}
	jwtauth.SetIssuedAt(claims, j.now())

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) RevokeToken(token string) {
	exp := j.now().Add(j.accessTokenExpiration).Unix()
	if t, err := j.tokenAuth.Decode(token); err == nil && !t.Expiration().IsZero() {
		exp = t.Expiration().Unix()
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	j.pruneLocked()
	j.revokedTokens[token] = exp
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}

// pruneLocked drops revoked tokens that would fail verification anyway
func (j *JWTService) pruneLocked() {
	now := j.now().Unix()
	for token, exp := range j.revokedTokens {
		if exp < now {
			delete(j.revokedTokens, token)
		}
	}
}
