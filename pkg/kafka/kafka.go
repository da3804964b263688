package kafka

import (
	"context"
	"time"

	"github.com/IBM/sarama"
)

const (
	ActivityTopic         = "lms.activity"
	ActivityConsumerGroup = "lms-activity-group"
)

type EventType string

const (
	EventBorrow EventType = "BORROW"
	EventReturn EventType = "RETURN"
	EventEntry  EventType = "ENTRY"
	EventExit   EventType = "EXIT"
)

// ActivityEvent is the payload published for every circulation and
// entry/exit operation and folded into the events table by the consumer.
type ActivityEvent struct {
	Timestamp  time.Time `json:"timestamp"`
	UserName   string    `json:"username"`
	EventType  EventType `json:"eventType"`
	BookID     string    `json:"bookId,omitempty"`
	BorrowID   string    `json:"borrowId,omitempty"`
	EntryLogID string    `json:"entryLogId,omitempty"`
	Fine       int       `json:"fine,omitempty"`
}

type Config struct {
	Addrs []string `yaml:"addrs" envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	defaultCfg.Consumer.Return.Errors = true

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// Consume runs the consumer group loop until ctx is canceled.
func Consume(ctx context.Context, consumer sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, topic string) {
	for {
		if err := consumer.Consume(ctx, []string{topic}, handler); err != nil {
			if ctx.Err() != nil {
				return
			}
			time.Sleep(time.Second)
		}
		if ctx.Err() != nil {
			return
		}
	}
}
