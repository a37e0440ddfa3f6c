package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
)

// OTPIssuer issues and verifies the one-time codes used by the password
// reset flow. The static issuer is the simulated default; the redis issuer
// stores real single-use codes with a TTL.
type OTPIssuer interface {
	Issue(ctx context.Context, username string) (string, error)
	Verify(ctx context.Context, username, code string) (bool, error)
}

// StaticOTP always issues the demo code.
type StaticOTP struct{}

// DemoCode is the fixed code accepted by the demo deployment.
const DemoCode = "123456"

func (StaticOTP) Issue(context.Context, string) (string, error) {
	return DemoCode, nil
}

func (StaticOTP) Verify(_ context.Context, _ string, code string) (bool, error) {
	return code == DemoCode, nil
}

// RedisOTP issues random six-digit codes kept in redis under a TTL. A code
// verifies at most once; GETDEL consumes it.
type RedisOTP struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisOTP(client *redis.Client) *RedisOTP {
	return &RedisOTP{client: client, ttl: 5 * time.Minute}
}

func otpKey(username string) string {
	return "otp:" + username
}

func (r *RedisOTP) Issue(ctx context.Context, username string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	code := fmt.Sprintf("%06d", n.Int64())
	if err := r.client.Set(ctx, otpKey(username), code, r.ttl).Err(); err != nil {
		return "", err
	}
	return code, nil
}

func (r *RedisOTP) Verify(ctx context.Context, username, code string) (bool, error) {
	stored, err := r.client.GetDel(ctx, otpKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return stored == code, nil
}
