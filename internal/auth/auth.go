// Package auth implements bearer-token login for the management API:
// bcrypt-checked credentials exchanged for a self-signed HS256 token,
// adapted from the same scheme used elsewhere in this module's lineage.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token has expired")
	ErrMissingToken       = errors.New("missing authorization token")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRateLimited        = errors.New("too many login attempts, please try again later")
)

// Config holds the authentication configuration.
type Config struct {
	Username  string
	Password  string
	JWTSecret string
	TokenTTL  time.Duration

	MaxLoginAttempts   int
	LoginWindowSeconds int
}

type jwtHeader struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
}

// Claims represents the token payload.
type Claims struct {
	Sub string `json:"sub"`
	Iat int64  `json:"iat"`
	Exp int64  `json:"exp"`
}

type loginAttempt struct {
	timestamps []time.Time
}

// rateLimiter tracks failed login attempts per IP using a sliding window.
type rateLimiter struct {
	mu         sync.Mutex
	attempts   map[string]*loginAttempt
	maxFails   int
	windowSize time.Duration
}

func newRateLimiter(maxFails int, windowSize time.Duration) *rateLimiter {
	if maxFails <= 0 {
		maxFails = 5
	}
	if windowSize <= 0 {
		windowSize = 15 * time.Minute
	}
	rl := &rateLimiter{
		attempts:   make(map[string]*loginAttempt),
		maxFails:   maxFails,
		windowSize: windowSize,
	}
	go rl.cleanup()
	return rl
}

func (rl *rateLimiter) isAllowed(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, exists := rl.attempts[key]
	if !exists {
		return true
	}
	rl.pruneOld(entry)
	return len(entry.timestamps) < rl.maxFails
}

func (rl *rateLimiter) recordFailure(key string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, exists := rl.attempts[key]
	if !exists {
		entry = &loginAttempt{}
		rl.attempts[key] = entry
	}
	rl.pruneOld(entry)
	entry.timestamps = append(entry.timestamps, time.Now())
}

func (rl *rateLimiter) recordSuccess(key string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	delete(rl.attempts, key)
}

func (rl *rateLimiter) pruneOld(entry *loginAttempt) {
	cutoff := time.Now().Add(-rl.windowSize)
	n := 0
	for _, t := range entry.timestamps {
		if t.After(cutoff) {
			entry.timestamps[n] = t
			n++
		}
	}
	entry.timestamps = entry.timestamps[:n]
}

func (rl *rateLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		rl.mu.Lock()
		for key, entry := range rl.attempts {
			rl.pruneOld(entry)
			if len(entry.timestamps) == 0 {
				delete(rl.attempts, key)
			}
		}
		rl.mu.Unlock()
	}
}

func (rl *rateLimiter) remainingLockout(key string) time.Duration {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, exists := rl.attempts[key]
	if !exists || len(entry.timestamps) == 0 {
		return 0
	}
	rl.pruneOld(entry)
	if len(entry.timestamps) < rl.maxFails {
		return 0
	}
	oldest := entry.timestamps[0]
	return time.Until(oldest.Add(rl.windowSize))
}

// Auth handles login and token operations for the management API.
type Auth struct {
	config       Config
	passwordHash []byte
	limiter      *rateLimiter
}

// New creates an Auth from cfg. The plaintext password is hashed with
// bcrypt immediately and not retained.
func New(cfg Config) *Auth {
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	if cfg.MaxLoginAttempts == 0 {
		cfg.MaxLoginAttempts = 5
	}
	if cfg.LoginWindowSeconds == 0 {
		cfg.LoginWindowSeconds = 900
	}

	if len(cfg.JWTSecret) < 32 {
		slog.Warn("auth secret is shorter than 32 characters, this is insecure in production")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("failed to hash management password", "error", err)
		hash = []byte("$2a$10$INVALIDHASHXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXX")
	}
	cfg.Password = ""

	windowDuration := time.Duration(cfg.LoginWindowSeconds) * time.Second
	return &Auth{
		config:       cfg,
		passwordHash: hash,
		limiter:      newRateLimiter(cfg.MaxLoginAttempts, windowDuration),
	}
}

// Authenticate checks username/password against the configured
// credentials and returns a signed token on success.
func (a *Auth) Authenticate(username, password, remoteAddr string) (string, error) {
	ip := extractIP(remoteAddr)

	if !a.limiter.isAllowed(ip) {
		remaining := a.limiter.remainingLockout(ip)
		slog.Warn("login rate-limited", "ip", ip, "retry_after_seconds", int(remaining.Seconds()))
		return "", ErrRateLimited
	}

	usernameMatch := hmacEqualStrings(username, a.config.Username)
	passwordErr := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password))
	passwordMatch := passwordErr == nil

	if !usernameMatch || !passwordMatch {
		a.limiter.recordFailure(ip)
		return "", ErrInvalidCredentials
	}

	a.limiter.recordSuccess(ip)
	return a.CreateToken(username)
}

// CreateToken generates a signed token for subject.
func (a *Auth) CreateToken(subject string) (string, error) {
	now := time.Now()
	claims := Claims{
		Sub: subject,
		Iat: now.Unix(),
		Exp: now.Add(a.config.TokenTTL).Unix(),
	}
	return a.sign(claims)
}

// ValidateToken parses and validates a token string.
func (a *Auth) ValidateToken(tokenStr string) (*Claims, error) {
	if len(tokenStr) > 4096 {
		return nil, ErrInvalidToken
	}

	parts := strings.Split(tokenStr, ".")
	if len(parts) != 3 {
		return nil, ErrInvalidToken
	}

	headerJSON, err := base64URLDecode(parts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode header", ErrInvalidToken)
	}
	var header jwtHeader
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		return nil, fmt.Errorf("%w: failed to parse header", ErrInvalidToken)
	}
	if header.Alg != "HS256" || header.Typ != "JWT" {
		return nil, fmt.Errorf("%w: unsupported header", ErrInvalidToken)
	}

	signingInput := parts[0] + "." + parts[1]
	expectedSig := a.computeHMAC(signingInput)
	if !hmacEqualB64(expectedSig, parts[2]) {
		return nil, ErrInvalidToken
	}

	claimsJSON, err := base64URLDecode(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode claims", ErrInvalidToken)
	}
	var claims Claims
	if err := json.Unmarshal(claimsJSON, &claims); err != nil {
		return nil, fmt.Errorf("%w: failed to parse claims", ErrInvalidToken)
	}

	now := time.Now().Unix()
	if now > claims.Exp {
		return nil, ErrExpiredToken
	}
	if claims.Iat > now+60 {
		return nil, fmt.Errorf("%w: token issued in the future", ErrInvalidToken)
	}
	if claims.Sub == "" {
		return nil, fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}
	return &claims, nil
}

// RemainingLockout reports how long remoteAddr must wait before its next
// login attempt is allowed, or zero if it isn't currently locked out.
func (a *Auth) RemainingLockout(remoteAddr string) time.Duration {
	return a.limiter.remainingLockout(extractIP(remoteAddr))
}

func (a *Auth) sign(claims Claims) (string, error) {
	header := jwtHeader{Alg: "HS256", Typ: "JWT"}
	headerJSON, err := json.Marshal(header)
	if err != nil {
		return "", fmt.Errorf("failed to marshal header: %w", err)
	}
	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to marshal claims: %w", err)
	}
	headerB64 := base64URLEncode(headerJSON)
	claimsB64 := base64URLEncode(claimsJSON)
	signingInput := headerB64 + "." + claimsB64
	return signingInput + "." + a.computeHMAC(signingInput), nil
}

func (a *Auth) computeHMAC(input string) string {
	mac := hmac.New(sha256.New, []byte(a.config.JWTSecret))
	mac.Write([]byte(input))
	return base64URLEncode(mac.Sum(nil))
}

func hmacEqualB64(a, b string) bool {
	aDec, errA := base64URLDecode(a)
	bDec, errB := base64URLDecode(b)
	if errA != nil || errB != nil {
		return false
	}
	return hmac.Equal(aDec, bDec)
}

func hmacEqualStrings(a, b string) bool {
	h1 := sha256.Sum256([]byte(a))
	h2 := sha256.Sum256([]byte(b))
	return hmac.Equal(h1[:], h2[:])
}

func base64URLEncode(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

func base64URLDecode(s string) ([]byte, error) {
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		data, err = base64.URLEncoding.DecodeString(s)
	}
	return data, err
}

func extractIP(remoteAddr string) string {
	if strings.HasPrefix(remoteAddr, "[") {
		if idx := strings.LastIndex(remoteAddr, "]:"); idx != -1 {
			return remoteAddr[1:idx]
		}
		return strings.Trim(remoteAddr, "[]")
	}
	if idx := strings.LastIndex(remoteAddr, ":"); idx != -1 {
		return remoteAddr[:idx]
	}
	return remoteAddr
}
