package notify

import (
	"context"
	"encoding/json"
	"time"

	"approvalflow-backend/internal/domain/event"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// LogNotifier writes every event as a structured log line. The default
// sink when no broker is configured.
type LogNotifier struct{ log zerolog.Logger }

func NewLogNotifier(log zerolog.Logger) *LogNotifier { return &LogNotifier{log: log} }

func (n *LogNotifier) Emit(_ context.Context, name string, payload map[string]any) {
	n.log.Info().Str("event", name).Fields(payload).Msg("approval event")
}

// RedisNotifier publishes events as JSON on a pub/sub channel for
// out-of-process consumers (mail, sockets). Best-effort: publish failures
// are logged and swallowed — a notification must never fail a transition.
type RedisNotifier struct {
	rdb     *redis.Client
	channel string
	log     zerolog.Logger
}

const DefaultChannel = "approval.events"

func NewRedisNotifier(rdb *redis.Client, channel string, log zerolog.Logger) *RedisNotifier {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisNotifier{rdb: rdb, channel: channel, log: log}
}

type wireEvent struct {
	Name    string         `json:"name"`
	Payload map[string]any `json:"payload"`
	EmitAt  time.Time      `json:"emit_at"`
}

func (n *RedisNotifier) Emit(ctx context.Context, name string, payload map[string]any) {
	b, err := json.Marshal(wireEvent{Name: name, Payload: payload, EmitAt: time.Now().UTC()})
	if err != nil {
		n.log.Error().Err(err).Str("event", name).Msg("encode event")
		return
	}
	if err := n.rdb.Publish(ctx, n.channel, b).Err(); err != nil {
		n.log.Error().Err(err).Str("event", name).Msg("publish event")
	}
}

// Multi fans one emit out to several sinks.
type Multi []event.Notifier

func (m Multi) Emit(ctx context.Context, name string, payload map[string]any) {
	for _, n := range m {
		n.Emit(ctx, name, payload)
	}
}
