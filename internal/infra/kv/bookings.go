package kv

import (
	"context"
	"encoding/json"
	"errors"

	"parkcompare/internal/domain/booking"
	"parkcompare/internal/infra"

	"github.com/redis/go-redis/v9"
)

// BookingStore persists finalized bookings as JSON documents keyed by
// reference, with a set index for the admin listing. Bookings have no
// TTL; they live until an admin deletes them.
type BookingStore struct {
	client *redis.Client
}

func NewBookingStore(client *redis.Client) *BookingStore {
	return &BookingStore{client: client}
}

const bookingIndexKey = "bookings:index"

func bookingKey(ref booking.Reference) string {
	return "booking:" + ref.String()
}

func (s *BookingStore) Save(ctx context.Context, b *booking.Booking) error {
	payload, err := json.Marshal(b)
	if err != nil {
		return infra.WrapRepoErr("failed to encode booking", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, bookingKey(b.Reference), payload, 0)
	pipe.SAdd(ctx, bookingIndexKey, b.Reference.String())
	if _, err := pipe.Exec(ctx); err != nil {
		return infra.WrapRepoErr("failed to save booking", err)
	}
	return nil
}

func (s *BookingStore) FindByReference(ctx context.Context, ref booking.Reference) (*booking.Booking, error) {
	data, err := s.client.Get(ctx, bookingKey(ref)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load booking", err)
	}

	var b booking.Booking
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err)
	}
	return &b, nil
}

func (s *BookingStore) Delete(ctx context.Context, ref booking.Reference) error {
	pipe := s.client.TxPipeline()
	del := pipe.Del(ctx, bookingKey(ref))
	pipe.SRem(ctx, bookingIndexKey, ref.String())
	if _, err := pipe.Exec(ctx); err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if del.Val() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// FindAll loads every indexed booking. The index is small enough for the
// back office; references whose document has gone missing are skipped.
func (s *BookingStore) FindAll(ctx context.Context) ([]*booking.Booking, error) {
	refs, err := s.client.SMembers(ctx, bookingIndexKey).Result()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking index", err)
	}
	if len(refs) == 0 {
		return nil, nil
	}

	keys := make([]string, len(refs))
	for i, ref := range refs {
		keys[i] = "booking:" + ref
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load bookings", err)
	}

	bookings := make([]*booking.Booking, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var b booking.Booking
		if err := json.Unmarshal([]byte(raw), &b); err != nil {
			return nil, infra.WrapRepoErr("failed to decode booking", err)
		}
		bookings = append(bookings, &b)
	}
	return bookings, nil
}
