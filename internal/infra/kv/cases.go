package kv

import (
	"context"
	"encoding/json"
	"errors"

	"parkcompare/internal/domain/chat"
	"parkcompare/internal/infra"

	"github.com/redis/go-redis/v9"
)

// CaseStore persists support cases opened by the chat widget.
type CaseStore struct {
	client *redis.Client
}

func NewCaseStore(client *redis.Client) *CaseStore {
	return &CaseStore{client: client}
}

const caseIndexKey = "chatcases:index"

func caseKey(number string) string {
	return "chatcase:" + number
}

func (s *CaseStore) Save(ctx context.Context, c *chat.Case) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return infra.WrapRepoErr("failed to encode support case", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, caseKey(c.Number), payload, 0)
	pipe.SAdd(ctx, caseIndexKey, c.Number)
	if _, err := pipe.Exec(ctx); err != nil {
		return infra.WrapRepoErr("failed to save support case", err)
	}
	return nil
}

func (s *CaseStore) FindByNumber(ctx context.Context, number string) (*chat.Case, error) {
	data, err := s.client.Get(ctx, caseKey(number)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, infra.WrapRepoErr("support case not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load support case", err)
	}

	var c chat.Case
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, infra.WrapRepoErr("failed to decode support case", err)
	}
	return &c, nil
}

func (s *CaseStore) FindAll(ctx context.Context) ([]*chat.Case, error) {
	numbers, err := s.client.SMembers(ctx, caseIndexKey).Result()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list case index", err)
	}
	if len(numbers) == 0 {
		return nil, nil
	}

	keys := make([]string, len(numbers))
	for i, n := range numbers {
		keys[i] = caseKey(n)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load support cases", err)
	}

	cases := make([]*chat.Case, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var c chat.Case
		if err := json.Unmarshal([]byte(raw), &c); err != nil {
			return nil, infra.WrapRepoErr("failed to decode support case", err)
		}
		cases = append(cases, &c)
	}
	return cases, nil
}
