// Package redis provides the production session store: one key per session
// token with the identity payload as JSON and the TTL handled by redis.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/errs"
)

const sessionKeyPrefix = "session:"

type Options struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(opts Options) (*SessionStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", opts.Host, opts.Port),
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "pinging redis")
	}

	return &SessionStore{client: client}, nil
}

func (s *SessionStore) Set(ctx context.Context, token string, identity dto.Identity, ttl time.Duration) error {
	payload, err := json.Marshal(identity)
	if err != nil {
		return errors.Wrap(err, "marshaling identity")
	}
	return s.client.Set(ctx, sessionKeyPrefix+token, payload, ttl).Err()
}

func (s *SessionStore) Get(ctx context.Context, token string) (dto.Identity, error) {
	payload, err := s.client.Get(ctx, sessionKeyPrefix+token).Bytes()
	if err == redis.Nil {
		return dto.Identity{}, errs.ErrUnauthenticated
	}
	if err != nil {
		return dto.Identity{}, errors.Wrap(err, "reading session")
	}
	var identity dto.Identity
	if err := json.Unmarshal(payload, &identity); err != nil {
		return dto.Identity{}, errors.Wrap(err, "unmarshaling identity")
	}
	return identity, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKeyPrefix+token).Err()
}

// Close releases the underlying client.
func (s *SessionStore) Close() error {
	return s.client.Close()
}
