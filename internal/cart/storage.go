package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"
)

// Storage is the durable side-channel for cart items. Load returns
// (nil, nil) when nothing was saved under the key. Implementations report
// malformed payloads as errors; the caller discards them and starts empty.
type Storage interface {
	Load(ctx context.Context, key string) ([]Item, error)
	Save(ctx context.Context, key string, items []Item) error
}

// FileStorage keeps one JSON file per cart under a directory.
type FileStorage struct {
	Dir string
}

func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cart directory: %w", err)
	}
	return &FileStorage{Dir: dir}, nil
}

func (s *FileStorage) Load(ctx context.Context, key string) ([]Item, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("malformed cart payload: %w", err)
	}
	return items, nil
}

func (s *FileStorage) Save(ctx context.Context, key string, items []Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(key), data, 0o644)
}

// path flattens the key to a bare filename so a crafted session id can't
// escape the cart directory.
func (s *FileStorage) path(key string) string {
	return filepath.Join(s.Dir, filepath.Base(key)+".json")
}

// RedisStorage keeps carts in redis with a sliding TTL.
type RedisStorage struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisStorage(client *redis.Client, ttl time.Duration) *RedisStorage {
	return &RedisStorage{Client: client, TTL: ttl}
}

func (s *RedisStorage) Load(ctx context.Context, key string) ([]Item, error) {
	val, err := s.Client.Get(ctx, "cart:"+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var items []Item
	if err := json.Unmarshal([]byte(val), &items); err != nil {
		return nil, fmt.Errorf("malformed cart payload: %w", err)
	}
	return items, nil
}

func (s *RedisStorage) Save(ctx context.Context, key string, items []Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, "cart:"+key, data, s.TTL).Err()
}
