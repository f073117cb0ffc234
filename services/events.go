package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	EventArticleViewed = "article.viewed"
	EventArticleLiked  = "article.liked"
)

// ArticleEvent 发往 MQ 的文章计数事件，下游做分析消费
type ArticleEvent struct {
	Type       string    `json:"type"`
	Slug       string    `json:"slug"`
	Value      int64     `json:"value"`
	OccurredAt time.Time `json:"occurredAt"`
}

// EventPublisher 把计数事件投递到 RabbitMQ。未配置 MQ 时为 nil，
// Publish 对 nil 接收者直接返回
type EventPublisher struct {
	ch    *amqp.Channel
	queue string
}

func NewEventPublisher(ch *amqp.Channel, queue string) *EventPublisher {
	if ch == nil {
		return nil
	}
	return &EventPublisher{ch: ch, queue: queue}
}

// Publish 发送即忘，失败只记日志，计数请求照常成功
func (p *EventPublisher) Publish(eventType, slug string, value int64) {
	if p == nil {
		return
	}

	body, err := json.Marshal(ArticleEvent{
		Type:       eventType,
		Slug:       slug,
		Value:      value,
		OccurredAt: time.Now(),
	})
	if err != nil {
		log.Println("marshal article event failed:", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = p.ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		log.Println("publish article event failed:", err)
	}
}
