package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/hangman/internal/apperror"
)

const (
	saveKeyPrefix = "save:"
	saveIndexKey  = "saves"

	blobField    = "blob"
	savedAtField = "saved_at"
)

type redisSaves struct {
	client *redis.Client
}

// NewRedisSaveRepository - keeps each slot in a "save:<slot>" hash and indexes slot names
// in a sorted set scored by save time.
func NewRedisSaveRepository(client *redis.Client) SaveRepository {
	return &redisSaves{
		client: client,
	}
}

func (that *redisSaves) Save(ctx context.Context, slot string, blob []byte) error {
	if err := ValidateSlot(slot); err != nil {
		return err
	}

	savedAt := time.Now().UnixMilli()

	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, saveKeyPrefix+slot, blobField, blob, savedAtField, savedAt)
		pipe.ZAdd(ctx, saveIndexKey, redis.Z{Score: float64(savedAt), Member: slot})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set save: %w", err)
	}

	return nil
}

func (that *redisSaves) Load(ctx context.Context, slot string) ([]byte, error) {
	if err := ValidateSlot(slot); err != nil {
		return nil, err
	}

	blob, err := that.client.HGet(ctx, saveKeyPrefix+slot, blobField).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrSaveNotFound, slot)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get save: %w", err)
	}

	return blob, nil
}

func (that *redisSaves) List(ctx context.Context) ([]Slot, error) {
	members, err := that.client.ZRevRangeWithScores(ctx, saveIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}

	slots := make([]Slot, 0, len(members))
	for _, member := range members {
		name, ok := member.Member.(string)
		if !ok {
			continue
		}

		slots = append(slots, Slot{Name: name, SavedAt: time.UnixMilli(int64(member.Score))})
	}

	sortNewestFirst(slots)

	return slots, nil
}

func (that *redisSaves) Delete(ctx context.Context, slot string) error {
	if err := ValidateSlot(slot); err != nil {
		return err
	}

	var deleted *redis.IntCmd

	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		deleted = pipe.Del(ctx, saveKeyPrefix+slot)
		pipe.ZRem(ctx, saveIndexKey, slot)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete save: %w", err)
	}

	if deleted.Val() == 0 {
		return fmt.Errorf("%w: %s", apperror.ErrSaveNotFound, slot)
	}

	return nil
}
