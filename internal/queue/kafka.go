package queue

import (
	"context"
	"strings"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/sirupsen/logrus"
)

const flushTimeoutMs = 5000

var _ PagePublisher = (*KafkaPublisher)(nil)

// KafkaPublisher writes page events to a topic, keyed by page id so the
// events of one page stay ordered.
type KafkaPublisher struct {
	producer *kafka.Producer
	topic    string
	done     chan struct{}
}

func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	producer, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers":  strings.Join(brokers, ","),
		"client.id":          "pagebuilder",
		"acks":               "all",
		"message.timeout.ms": 30000,
	})
	if err != nil {
		return nil, err
	}

	p := &KafkaPublisher{
		producer: producer,
		topic:    topic,
		done:     make(chan struct{}),
	}
	go p.report()

	return p, nil
}

// report logs delivery failures until the producer is closed.
func (p *KafkaPublisher) report() {
	defer close(p.done)

	for e := range p.producer.Events() {
		switch ev := e.(type) {
		case *kafka.Message:
			if ev.TopicPartition.Error != nil {
				logrus.Errorf("page event delivery failed: key %s: %v", ev.Key, ev.TopicPartition.Error)
			}
		case kafka.Error:
			logrus.Errorf("kafka producer error: %v", ev)
		}
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event *PageEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	value, err := event.MarshalBinary()
	if err != nil {
		return err
	}

	return p.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &p.topic, Partition: kafka.PartitionAny},
		Key:            []byte(event.PageID),
		Value:          value,
		Headers:        []kafka.Header{{Key: "kind", Value: []byte(event.Kind)}},
	}, nil)
}

func (p *KafkaPublisher) Close() {
	if left := p.producer.Flush(flushTimeoutMs); left > 0 {
		logrus.Warnf("%d page events were not delivered before shutdown", left)
	}
	p.producer.Close()
	<-p.done
}
