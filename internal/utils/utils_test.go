package utils

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	now := time.Now()
	token, err := GenerateToken("secret", time.Hour, 42, "lan@example.com", now)
	require.NoError(t, err)

	id, email, err := ParseToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
	assert.Equal(t, "lan@example.com", email)

	_, _, err = ParseToken("other-secret", token)
	assert.Error(t, err)
}

func TestExpiredTokenIsRejected(t *testing.T) {
	token, err := GenerateToken("secret", time.Hour, 1, "a@b.c", time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, _, err = ParseToken("secret", token)
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cretpass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cretpass", hash)
	assert.True(t, CheckPasswordHash("s3cretpass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestIDGeneratorBumpsOnCollision(t *testing.T) {
	fixed := time.UnixMilli(1760000000000)
	gen := NewIDGenerator(func() time.Time { return fixed })

	assert.Equal(t, "1760000000000", gen.Next())
	assert.Equal(t, "1760000000001", gen.Next())
	assert.Equal(t, "1760000000002", gen.Next())
}

func TestIDGeneratorConcurrentUnique(t *testing.T) {
	gen := NewIDGenerator(nil)
	const n = 200

	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		seen = make(map[string]bool, n)
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := gen.Next()
			mu.Lock()
			seen[id] = true
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, seen, n)
}

func TestResolveDate(t *testing.T) {
	hcm, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	require.NoError(t, err)
	// 20:00 UTC is already the next day in UTC+7
	now := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)

	got, err := ResolveDate("", now, hcm)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-11", got)

	got, err = ResolveDate(" 2026-02-28 ", now, hcm)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-28", got)

	_, err = ResolveDate("2026-02-30", now, hcm)
	assert.Error(t, err)
	_, err = ResolveDate("10/03/2026", now, hcm)
	assert.Error(t, err)
}
