package database

import (
	"context"
	"encoding/json"
	"time"

	"github.com/valkey-io/valkey-go"
)

// CacheBuilder is a small fluent helper over a valkey client. All operations
// are nil-safe: with no client configured, Set and Delete are no-ops and Get
// reports a miss.
type CacheBuilder struct {
	client CacheClient
	key    string
	value  any
	ttl    time.Duration
	ctx    context.Context
}

func NewCacheBuilder(client CacheClient, key string) *CacheBuilder {
	return &CacheBuilder{client: client, key: key, ctx: context.Background()}
}

func (b *CacheBuilder) WithStruct(value any) *CacheBuilder {
	b.value = value
	return b
}

func (b *CacheBuilder) WithTTL(ttl time.Duration) *CacheBuilder {
	b.ttl = ttl
	return b
}

func (b *CacheBuilder) WithContext(ctx context.Context) *CacheBuilder {
	b.ctx = ctx
	return b
}

func (b *CacheBuilder) Set() error {
	if b.client == nil {
		return nil
	}

	data, err := json.Marshal(b.value)
	if err != nil {
		return err
	}

	if b.ttl > 0 {
		cmd := b.client.B().Set().Key(b.key).Value(string(data)).Ex(b.ttl).Build()
		return b.client.Do(b.ctx, cmd).Error()
	}

	cmd := b.client.B().Set().Key(b.key).Value(string(data)).Build()
	return b.client.Do(b.ctx, cmd).Error()
}

// Get unmarshals the cached value into dest, reporting whether the key was
// present.
func (b *CacheBuilder) Get(dest any) (bool, error) {
	if b.client == nil {
		return false, nil
	}

	resp := b.client.Do(b.ctx, b.client.B().Get().Key(b.key).Build())
	raw, err := resp.ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, err
	}

	return true, nil
}

func (b *CacheBuilder) Delete() error {
	if b.client == nil {
		return nil
	}

	return b.client.Do(b.ctx, b.client.B().Del().Key(b.key).Build()).Error()
}
