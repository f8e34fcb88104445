// Package mq 负责把注册成功的用户事件投递给下游
package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	myconfig "meiduo_user_server/internal/config"

	"github.com/segmentio/kafka-go"
)

// UserRegisteredEvent 用户注册成功事件，不含密码
type UserRegisteredEvent struct {
	ID           uint      `json:"id"`
	Username     string    `json:"username"`
	Mobile       string    `json:"mobile"`
	RegisteredAt time.Time `json:"registered_at"`
}

// UserEventPublisher 用户事件投递接口
type UserEventPublisher interface {
	PublishUserRegistered(ctx context.Context, event UserRegisteredEvent) error
	Close() error
}

// messageWriter kafka.Writer 中用到的部分，便于测试替换
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher 基于 kafka-go Writer 的事件投递
type KafkaPublisher struct {
	writer messageWriter
}

// publishBatchTimeout 投递在注册请求中同步进行，Writer 默认攒批 1s 会直接拖慢接口
const publishBatchTimeout = 10 * time.Millisecond

// NewKafkaPublisher 按配置创建 Writer
// 以用户 ID 作为消息 key，同一用户的事件落在同一分区
func NewKafkaPublisher(conf myconfig.KafkaConfig) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(conf.HostPort),
			Topic:                  conf.UserTopic,
			Balancer:               &kafka.Hash{},
			WriteTimeout:           conf.Timeout * time.Second,
			BatchTimeout:           publishBatchTimeout,
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: false,
		},
	}
}

// PublishUserRegistered 序列化并写入事件
func (p *KafkaPublisher) PublishUserRegistered(ctx context.Context, event UserRegisteredEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal user registered event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(event.ID), 10)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte("user_registered")},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write user registered event: %w", err)
	}
	return nil
}

// Close 关闭 Writer，刷出缓冲中的消息
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher 不投递任何事件
type NoopPublisher struct{}

func (NoopPublisher) PublishUserRegistered(context.Context, UserRegisteredEvent) error { return nil }
func (NoopPublisher) Close() error                                                  { return nil }

// NewPublisher 根据 messageMode 选择实现："kafka" 投递，其余不投递
func NewPublisher(conf myconfig.KafkaConfig) UserEventPublisher {
	if conf.MessageMode == "kafka" {
		return NewKafkaPublisher(conf)
	}
	return NoopPublisher{}
}
