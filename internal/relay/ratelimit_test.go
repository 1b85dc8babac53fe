package relay

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowSetsExpiryOnFirstAttempt(t *testing.T) {
	client, mock := redismock.NewClientMock()
	limiter := NewRateLimiter(client, 3, time.Minute)

	mock.ExpectIncr("relay:ratelimit:a@b.com").SetVal(1)
	mock.ExpectExpire("relay:ratelimit:a@b.com", time.Minute).SetVal(true)

	allowed, err := limiter.Allow(context.Background(), "a@b.com")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAllowOverLimit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	limiter := NewRateLimiter(client, 3, time.Minute)

	mock.ExpectIncr("relay:ratelimit:a@b.com").SetVal(4)

	allowed, err := limiter.Allow(context.Background(), "a@b.com")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAllowSurfacesRedisError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	limiter := NewRateLimiter(client, 3, time.Minute)

	mock.ExpectIncr("relay:ratelimit:a@b.com").SetErr(assert.AnError)

	_, err := limiter.Allow(context.Background(), "a@b.com")
	assert.Error(t, err)
}
