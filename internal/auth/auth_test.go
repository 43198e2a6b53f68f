package auth

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestGenerateToken_RoundTrip(t *testing.T) {
	token, err := GenerateToken("user-42", testSecret, time.Hour)
	require.NoError(t, err)

	userID, err := UserIDFromToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

func TestGenerateToken_Validation(t *testing.T) {
	_, err := GenerateToken("", testSecret, time.Hour)
	assert.ErrorIs(t, err, ErrEmptyUserID)

	_, err = GenerateToken("user", nil, time.Hour)
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestUserIDFromToken_Rejects(t *testing.T) {
	good, err := GenerateToken("user-1", testSecret, time.Hour)
	require.NoError(t, err)

	expired, err := GenerateToken("user-1", testSecret, -time.Minute)
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "user-1"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret []byte
	}{
		{"wrong secret", good, []byte("other")},
		{"expired", expired, testSecret},
		{"garbage", "not-a-token", testSecret},
		{"alg none", unsigned, testSecret},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UserIDFromToken(tt.token, tt.secret)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestTokenSession(t *testing.T) {
	token, err := GenerateToken("user-7", testSecret, time.Hour)
	require.NoError(t, err)

	id, ok := NewTokenSession(token, testSecret).CurrentUser()
	assert.True(t, ok)
	assert.Equal(t, "user-7", id)

	_, ok = NewTokenSession("", testSecret).CurrentUser()
	assert.False(t, ok, "empty token is anonymous")

	_, ok = NewTokenSession(token, []byte("rotated")).CurrentUser()
	assert.False(t, ok, "unverifiable token is anonymous")
}

func TestStaticSession(t *testing.T) {
	id, ok := StaticSession("u").CurrentUser()
	assert.True(t, ok)
	assert.Equal(t, "u", id)

	_, ok = StaticSession("").CurrentUser()
	assert.False(t, ok)
}

func TestTokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session")

	tok, err := LoadToken(path)
	require.NoError(t, err)
	assert.Empty(t, tok)

	require.NoError(t, SaveToken(path, "abc.def.ghi"))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	tok, err = LoadToken(path)
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", tok)

	require.NoError(t, ClearToken(path))
	require.NoError(t, ClearToken(path))
	tok, err = LoadToken(path)
	require.NoError(t, err)
	assert.Empty(t, tok)
}
