package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"songvault/internal/domain/model"
	"time"

	"github.com/redis/go-redis/v9"
)

const songListKey = "songs:all"

// SongListCache keeps the title-ordered song list in redis so repeated list
// requests skip the database. Writers must call Invalidate after any mutation.
type SongListCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSongListCache(rdb *redis.Client, ttl time.Duration) *SongListCache {
	return &SongListCache{rdb: rdb, ttl: ttl}
}

func (c *SongListCache) Get(ctx context.Context) ([]model.Song, bool, error) {
	data, err := c.rdb.Get(ctx, songListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("SongListCache.Get: %w", err)
	}

	var songs []model.Song
	if err := json.Unmarshal(data, &songs); err != nil {
		// Stale or corrupt entry, drop it and fall through to the store.
		c.rdb.Del(ctx, songListKey)
		return nil, false, fmt.Errorf("SongListCache.Get unmarshal: %w", err)
	}
	return songs, true, nil
}

func (c *SongListCache) Set(ctx context.Context, songs []model.Song) error {
	data, err := json.Marshal(songs)
	if err != nil {
		return fmt.Errorf("SongListCache.Set marshal: %w", err)
	}
	if err := c.rdb.Set(ctx, songListKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("SongListCache.Set: %w", err)
	}
	return nil
}

func (c *SongListCache) Invalidate(ctx context.Context) error {
	if err := c.rdb.Del(ctx, songListKey).Err(); err != nil {
		return fmt.Errorf("SongListCache.Invalidate: %w", err)
	}
	return nil
}
