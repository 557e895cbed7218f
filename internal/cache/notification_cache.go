package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"personalysis/internal/model"
)

// NotificationCache handles Redis operations for the notification center:
// per-company unread counters and a short recent-activity feed, so dashboard
// polling does not hit Mongo on every request.
type NotificationCache interface {
	GetUnreadCount(ctx context.Context, companyID string) (int64, error)
	IncrementUnread(ctx context.Context, companyID string) error
	ResetUnread(ctx context.Context, companyID string) error

	GetRecent(ctx context.Context, companyID string) ([]model.Notification, error)
	PushRecent(ctx context.Context, companyID string, n *model.Notification) error
}

const recentFeedSize = 20

type notificationCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewNotificationCache creates a new notification cache
func NewNotificationCache(client *redis.Client) NotificationCache {
	return &notificationCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

// Key helpers
func (c *notificationCache) unreadKey(companyID string) string {
	return fmt.Sprintf("company:%s:notifications:unread", companyID)
}

func (c *notificationCache) recentKey(companyID string) string {
	return fmt.Sprintf("company:%s:notifications:recent", companyID)
}

func (c *notificationCache) GetUnreadCount(ctx context.Context, companyID string) (int64, error) {
	count, err := c.client.Get(ctx, c.unreadKey(companyID)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (c *notificationCache) IncrementUnread(ctx context.Context, companyID string) error {
	key := c.unreadKey(companyID)
	if err := c.client.Incr(ctx, key).Err(); err != nil {
		return err
	}
	return c.client.Expire(ctx, key, c.ttl).Err()
}

func (c *notificationCache) ResetUnread(ctx context.Context, companyID string) error {
	return c.client.Del(ctx, c.unreadKey(companyID)).Err()
}

func (c *notificationCache) GetRecent(ctx context.Context, companyID string) ([]model.Notification, error) {
	items, err := c.client.LRange(ctx, c.recentKey(companyID), 0, recentFeedSize-1).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	notifications := make([]model.Notification, 0, len(items))
	for _, item := range items {
		var n model.Notification
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			continue
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

func (c *notificationCache) PushRecent(ctx context.Context, companyID string, n *model.Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return err
	}
	key := c.recentKey(companyID)
	pipe := c.client.TxPipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, recentFeedSize-1)
	pipe.Expire(ctx, key, c.ttl)
	_, err = pipe.Exec(ctx)
	return err
}
