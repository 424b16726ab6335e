// Package broadcaster drains the registry outbox to Kafka.
package broadcaster

import (
	"context"
	"log"
	"time"

	"smr/infra/outbox"

	"github.com/IBM/sarama"
)

type Broadcaster struct {
	outbox   *outbox.Outbox
	producer sarama.SyncProducer
	topic    string
	interval time.Duration
}

// ------------------------------------------------
// CONSTRUCTOR
// ------------------------------------------------

func New(
	ob *outbox.Outbox,
	brokers []string,
	topic string,
	interval time.Duration,
) (*Broadcaster, error) {

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	if interval == 0 {
		interval = 250 * time.Millisecond
	}

	return &Broadcaster{
		outbox:   ob,
		producer: producer,
		topic:    topic,
		interval: interval,
	}, nil
}

// ------------------------------------------------
// DRAIN LOOP
// ------------------------------------------------

func (b *Broadcaster) Start(ctx context.Context) {
	log.Println("[broadcaster] started")

	go func() {
		ticker := time.NewTicker(b.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case <-ticker.C:
				b.drainOnce()
			}
		}
	}()
}

func (b *Broadcaster) drainOnce() {
	b.drainState(outbox.StateNew)
	// entries stuck in SENT are earlier attempts that failed or
	// crashed between send and ack; re-send, at-least-once
	b.drainState(outbox.StateSent)
}

func (b *Broadcaster) drainState(state outbox.State) {
	_ = b.outbox.ScanByState(state, func(rec outbox.Record) error {

		// mark SENT first (idempotent); a crash between send and
		// ack re-sends, never drops
		if err := b.outbox.MarkSent(rec.Seq); err != nil {
			return nil
		}

		msg := &sarama.ProducerMessage{
			Topic: b.topic,
			Value: sarama.ByteEncoder(rec.Payload),
		}
		if _, _, err := b.producer.SendMessage(msg); err != nil {
			return nil // retry next tick
		}

		if err := b.outbox.MarkAcked(rec.Seq); err != nil {
			log.Printf("[broadcaster] ack seq=%d: %v", rec.Seq, err)
		}
		return nil
	})
}

// ------------------------------------------------
// SHUTDOWN
// ------------------------------------------------

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
