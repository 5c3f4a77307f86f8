package storage

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// CookieOptions controls the cookies written by a CookieStore.
type CookieOptions struct {
	Path     string
	MaxAge   time.Duration
	Secure   bool
	HttpOnly bool
}

// CookieStore maps each key to a cookie of the same name. Values are query
// escaped, so a hand-set plain cookie reads back unchanged.
type CookieStore struct {
	req     *http.Request
	w       http.ResponseWriter
	opts    CookieOptions
	pending map[string]string
}

// NewCookieStore reads from req and writes Set-Cookie headers to w. Writes are
// visible to later reads through the same store.
func NewCookieStore(req *http.Request, w http.ResponseWriter, opts CookieOptions) *CookieStore {
	if opts.Path == "" {
		opts.Path = "/"
	}
	return &CookieStore{req: req, w: w, opts: opts, pending: make(map[string]string)}
}

// Get prefers a value Set earlier in this request over the request cookie.
func (c *CookieStore) Get(_ context.Context, key string) (string, bool, error) {
	if v, ok := c.pending[key]; ok {
		return v, true, nil
	}
	cookie, err := c.req.Cookie(key)
	if err != nil {
		return "", false, nil
	}
	value, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return "", false, fmt.Errorf("failed to decode cookie %s: %w", key, err)
	}
	return value, true, nil
}

// Set writes the cookie to the response and remembers it for later reads.
func (c *CookieStore) Set(_ context.Context, key, value string) error {
	if c.w == nil {
		return fmt.Errorf("cookie store for %s is read-only", key)
	}
	http.SetCookie(c.w, &http.Cookie{
		Name:     key,
		Value:    url.QueryEscape(value),
		Path:     c.opts.Path,
		MaxAge:   int(c.opts.MaxAge.Seconds()),
		Secure:   c.opts.Secure,
		HttpOnly: c.opts.HttpOnly,
		SameSite: http.SameSiteLaxMode,
	})
	c.pending[key] = value
	return nil
}
