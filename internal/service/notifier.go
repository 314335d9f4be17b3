package service

import (
	"context"
	"encoding/json"
	"time"

	pkglogger "github.com/lembranca/memorial-backend/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// NotificationChannel is the Redis channel owner notifications go to.
// A worker on the other end turns them into e-mails / push messages.
const NotificationChannel = "memorial:notifications"

// Notifier delivers fire-and-forget owner notifications. Failures must
// never fail the operation that triggered the notification.
type Notifier interface {
	Notify(ctx context.Context, title, content string) error
}

// RedisNotifier publishes notifications to a Redis channel
type RedisNotifier struct {
	client *redis.Client
}

// NewRedisNotifier creates a new RedisNotifier
func NewRedisNotifier(client *redis.Client) *RedisNotifier {
	return &RedisNotifier{client: client}
}

type notificationPayload struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// Notify publishes a notification payload
func (n *RedisNotifier) Notify(ctx context.Context, title, content string) error {
	payload, err := json.Marshal(notificationPayload{
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return n.client.Publish(ctx, NotificationChannel, payload).Err()
}

// NoopNotifier is used when Redis is not configured
type NoopNotifier struct{}

// Notify logs the notification and drops it
func (NoopNotifier) Notify(_ context.Context, title, _ string) error {
	pkglogger.GetLogger().Debug().Str("title", title).Msg("notification dropped (no sink configured)")
	return nil
}
