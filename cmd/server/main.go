package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"time"

	"google.golang.org/grpc"

	"smr/api/grpcserver"
	pb "smr/api/pb"

	"smr/checkpoint"
	"smr/domain/registry"
	"smr/infra/journal"
	"smr/infra/memory"
	"smr/infra/outbox"
	"smr/infra/sequence"
	"smr/jobs/broadcaster"
	"smr/service"
)

func main() {
	// ---------------- Journal ----------------

	jnl, err := journal.Open(journal.Config{
		Dir:             "./journal",
		SegmentSize:     2 * 1024 * 1024,
		SegmentDuration: time.Minute,
	})
	if err != nil {
		log.Fatalf("journal init failed: %v", err)
	}
	defer jnl.Close()

	// ---------------- Outbox ----------------

	ob, err := outbox.Open("./outbox")
	if err != nil {
		log.Fatalf("outbox init failed: %v", err)
	}
	defer ob.Close()

	// ---------------- Sequencer ----------------

	seqGen := sequence.New(0)

	// ---------------- Memory ----------------

	pool := memory.NewPool(func() *service.SnapshotNode {
		return &service.SnapshotNode{}
	})

	// ---------------- Domain ----------------

	reg := registry.New()

	// ---------------- Service ----------------

	svc := service.NewRegistryService(
		reg,
		pool,
		seqGen,
		jnl,
		ob,
	)
	defer svc.Close()

	// ---------------- RECOVERY ----------------

	cp, err := checkpoint.Load("./checkpoint")
	if err != nil {
		log.Fatalf("checkpoint load failed: %v", err)
	}
	svc.Restore(cp)

	if err := svc.ReplayFromJournal("./journal"); err != nil {
		log.Fatalf("journal replay failed: %v", err)
	}

	// ---------------- Background Jobs ----------------

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc.StartCheckpointJob("./checkpoint", 30*time.Second)

	bc, err := broadcaster.New(
		ob,
		[]string{"localhost:9092"},
		"registry-events",
		2*time.Second,
	)
	if err != nil {
		log.Printf("[main] broadcaster disabled: %v", err)
	} else {
		defer bc.Close()
		bc.Start(ctx)
	}

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", ":50051")
	if err != nil {
		log.Fatalf("listen failed: %v", err)
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterRegistryServiceServer(
		grpcSrv,
		grpcserver.NewServer(svc),
	)

	fmt.Println("registry server running on :50051")

	if err := grpcSrv.Serve(lis); err != nil {
		log.Fatalf("gRPC server exited: %v", err)
	}
}
