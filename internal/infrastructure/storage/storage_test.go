package storage

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AtRiskMedia/adaptive-profile/internal/infrastructure/persistence/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, ok, err := s.Get(ctx, "history")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "history", `{"visitCount":2}`))
	v, ok, err := s.Get(ctx, "history")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"visitCount":2}`, v)
}

func TestCookieStore_ReadsPlainAndEscapedValues(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "debug_bot", Value: "GPTBot"})
	req.AddCookie(&http.Cookie{Name: "history", Value: "%7B%22visitCount%22%3A3%7D"})

	s := NewCookieStore(req, nil, CookieOptions{})
	ctx := context.Background()

	v, ok, err := s.Get(ctx, "debug_bot")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "GPTBot", v)

	v, ok, err = s.Get(ctx, "history")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"visitCount":3}`, v)

	_, ok, err = s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Error(t, s.Set(ctx, "history", "x"), "no response writer")
}

func TestCookieStore_SetWritesCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s := NewCookieStore(req, rec, CookieOptions{MaxAge: 24 * time.Hour, Secure: true, HttpOnly: true})
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "history", `{"visitCount":1}`))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "history", cookies[0].Name)
	assert.Equal(t, 86400, cookies[0].MaxAge)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, "/", cookies[0].Path)

	v, ok, err := s.Get(ctx, "history")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"visitCount":1}`, v)
}

func newTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.NewConnection(database.DriverSQLite3, ":memory:")
	require.NoError(t, err)
	require.NoError(t, db.CreateSchema(context.Background()))
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSQLStore_ScopedByVisitor(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	alice := NewSQLStore(db, "01HZALICE")
	bob := NewSQLStore(db, "01HZBOB")

	_, ok, err := alice.Get(ctx, "history")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, alice.Set(ctx, "history", "one"))
	require.NoError(t, alice.Set(ctx, "history", "two"))

	v, ok, err := alice.Get(ctx, "history")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "two", v)

	_, ok, err = bob.Get(ctx, "history")
	require.NoError(t, err)
	assert.False(t, ok)
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("boom")
}
func (failingStore) Set(context.Context, string, string) error { return errors.New("boom") }

func TestLayeredStore(t *testing.T) {
	ctx := context.Background()
	primary := NewMemoryStore()
	fallback := NewMemoryStore()
	require.NoError(t, fallback.Set(ctx, "debug_bot", "TestBot"))
	require.NoError(t, fallback.Set(ctx, "history", "from-fallback"))
	require.NoError(t, primary.Set(ctx, "history", "from-primary"))

	l := Layered{Primary: primary, Fallbacks: []Store{fallback}}

	v, ok, err := l.Get(ctx, "history")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "from-primary", v)

	v, ok, err = l.Get(ctx, "debug_bot")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "TestBot", v)

	require.NoError(t, l.Set(ctx, "new", "x"))
	_, ok, _ = fallback.Get(ctx, "new")
	assert.False(t, ok)

	_, _, err = Layered{Primary: failingStore{}}.Get(ctx, "history")
	assert.Error(t, err)
}
