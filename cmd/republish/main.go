// Command republish streams every journal record back onto a Kafka
// topic. Used to rebuild a topic after retention loss or to seed a
// new consumer environment; the running server is not involved.
package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"smr/infra/journal"
	"smr/infra/kafka"
)

func main() {
	var (
		dir     = flag.String("journal", "./journal", "journal directory")
		brokers = flag.String("brokers", "localhost:9092", "comma-separated broker list")
		topic   = flag.String("topic", "registry-events", "target topic")
	)
	flag.Parse()

	producer := kafka.NewProducer(strings.Split(*brokers, ","), *topic)
	defer producer.Close()

	ctx := context.Background()
	ser := journal.ProtoSerializer{}

	var count int
	lastSeq, err := journal.Replay(*dir, func(rec *journal.Record) error {
		payload, err := ser.Encode(rec)
		if err != nil {
			return err
		}
		if err := producer.Send(ctx, []byte(rec.Key), payload); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		log.Fatalf("republish failed at seq %d: %v", lastSeq, err)
	}

	log.Printf("[republish] sent %d records (last seq = %d)", count, lastSeq)
}
