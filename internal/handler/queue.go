package handler

import (
	"encoding/json"

	"github.com/IBM/sarama"

	"github.com/askhatir/lms-service/internal/service"
)

// NewEnqueuer adapts a sarama sync producer to the service's Enqueuer.
func NewEnqueuer(producer sarama.SyncProducer) service.Enqueuer {
	return &enqueuerImpl{
		producer: producer,
	}
}

type enqueuerImpl struct {
	producer sarama.SyncProducer
}

func (q *enqueuerImpl) Enqueue(topic string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: topic, Value: sarama.StringEncoder(data)}
	if _, _, err = q.producer.SendMessage(msg); err != nil {
		return err
	}
	return nil
}
