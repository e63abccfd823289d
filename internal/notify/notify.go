// Package notify publishes change notifications for indexed records.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/feral-file/ff-ledger-indexer/internal/adapter"
)

//go:generate mockgen -source=notify.go -destination=../mocks/notify.go -package=mocks -mock_names=Publisher=MockPublisher

// Kind is the kind of change
type Kind string

const (
	KindAssetIndexed    Kind = "asset.indexed"
	KindAssetRemoved    Kind = "asset.removed"
	KindAssetRevived    Kind = "asset.revived"
	KindParcelIndexed   Kind = "parcel.indexed"
	KindParcelRetracted Kind = "parcel.retracted"
)

// Notification is the payload published for every change
type Notification struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind"`
	Key         string    `json:"key"`
	BlockNumber uint64    `json:"blockNumber,omitempty"`
	At          time.Time `json:"at"`
}

// Publisher publishes change notifications
type Publisher interface {
	// Publish announces a change of the record identified by key
	Publish(ctx context.Context, kind Kind, key string, blockNumber uint64) error
}

type redisPublisher struct {
	client adapter.RedisClient
	prefix string
	json   adapter.JSON
	clock  adapter.Clock
}

// NewRedisPublisher creates a publisher posting to the redis channel {prefix}:{kind}
func NewRedisPublisher(client adapter.RedisClient, prefix string, json adapter.JSON, clock adapter.Clock) Publisher {
	return &redisPublisher{
		client: client,
		prefix: prefix,
		json:   json,
		clock:  clock,
	}
}

// Channel returns the channel notifications of a kind are published on
func Channel(prefix string, kind Kind) string {
	return fmt.Sprintf("%s:%s", prefix, kind)
}

func (p *redisPublisher) Publish(ctx context.Context, kind Kind, key string, blockNumber uint64) error {
	now := p.clock.Now()
	payload, err := p.json.Marshal(Notification{
		ID:          ulid.MustNewDefault(now).String(),
		Kind:        kind,
		Key:         key,
		BlockNumber: blockNumber,
		At:          now.UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	if _, err := p.client.Publish(ctx, Channel(p.prefix, kind), payload); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	return nil
}
