package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

type RecommendationPublisher struct {
	writer *kafka.Writer
}

func NewRecommendationPublisher(brokers []string, topic string) *RecommendationPublisher {
	return &RecommendationPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *RecommendationPublisher) PublishGeneration(event GenerationEvent) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(event.BrandID),
		Value: msg,
		Time:  time.Now(),
	})
}

func (p *RecommendationPublisher) PublishAction(event ActionEvent) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(event.BrandID),
		Value: msg,
		Time:  time.Now(),
	})
}

func (p *RecommendationPublisher) Close() error {
	return p.writer.Close()
}
