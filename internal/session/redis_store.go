package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/icycoldveins/product-review-aggregator/internal/utils"
)

// RedisStore keeps sessions server-side behind an opaque id cookie.
// The readable expiry cookie is still issued so the browser UI can see
// when the token runs out.
type RedisStore struct {
	client *redis.Client
	prefix string
	opts   CookieOptions
}

func NewRedisStore(client *redis.Client, opts CookieOptions) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "session:",
		opts:   opts,
	}
}

func (s *RedisStore) key(id string) string {
	return s.prefix + id
}

func (s *RedisStore) SaveState(ctx context.Context, w http.ResponseWriter, state string) error {
	id := utils.RandomString(32)
	if err := s.write(ctx, id, Session{State: state}, stateTTL); err != nil {
		return err
	}
	setCookie(w, IDCookieName, id, stateTTL, true, s.opts)
	return nil
}

func (s *RedisStore) LoadState(ctx context.Context, r *http.Request) (string, error) {
	sess, err := s.read(ctx, cookieValue(r, IDCookieName))
	if err != nil || sess == nil {
		return "", err
	}
	return sess.State, nil
}

func (s *RedisStore) SaveToken(ctx context.Context, w http.ResponseWriter, r *http.Request, token string, expiresAt time.Time) error {
	id := cookieValue(r, IDCookieName)
	if id == "" {
		id = utils.RandomString(32)
	}

	// Overwrites the pending record, dropping the consumed state.
	sess := Session{AccessToken: token, ExpiresAt: expiresAt}
	if err := s.write(ctx, id, sess, tokenTTL); err != nil {
		return err
	}

	setCookie(w, IDCookieName, id, tokenTTL, true, s.opts)
	setCookie(w, ExpiryCookieName, expiresAt.UTC().Format(time.RFC3339), tokenTTL, false, s.opts)
	return nil
}

func (s *RedisStore) Load(ctx context.Context, r *http.Request) (*Session, error) {
	sess, err := s.read(ctx, cookieValue(r, IDCookieName))
	if err != nil || sess == nil {
		return nil, err
	}
	if sess.AccessToken == "" {
		// Pending flow only, not an authenticated session.
		return nil, nil
	}
	return sess, nil
}

func (s *RedisStore) Clear(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if id := cookieValue(r, IDCookieName); id != "" {
		if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
			return fmt.Errorf("session: delete: %w", err)
		}
	}
	clearCookie(w, IDCookieName, true, s.opts)
	clearCookie(w, ExpiryCookieName, false, s.opts)
	return nil
}

func (s *RedisStore) write(ctx context.Context, id string, sess Session, ttl time.Duration) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("session: marshal: %w", err)
	}
	if err := s.client.Set(ctx, s.key(id), data, ttl).Err(); err != nil {
		return fmt.Errorf("session: store: %w", err)
	}
	return nil
}

func (s *RedisStore) read(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, nil
	}
	val, err := s.client.Get(ctx, s.key(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session: load: %w", err)
	}

	var sess Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, fmt.Errorf("session: unmarshal: %w", err)
	}
	return &sess, nil
}
