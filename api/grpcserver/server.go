package grpcserver

import (
	"context"
	"log"

	pb "smr/api/pb"
	"smr/service"
)

// Server adapts RegistryService to gRPC.
type Server struct {
	pb.UnimplementedRegistryServiceServer
	svc *service.RegistryService
}

func NewServer(svc *service.RegistryService) *Server {
	return &Server{svc: svc}
}

// -------------------- Commands --------------------

func (s *Server) Put(
	ctx context.Context,
	req *pb.PutRequest,
) (*pb.PutResponse, error) {
	seq, err := s.svc.Put(req.Key, req.Value)
	if err != nil {
		return nil, err
	}

	log.Printf("[gRPC] Put key=%q bytes=%d seq=%d", req.Key, len(req.Value), seq)

	return &pb.PutResponse{
		Status: "ok",
		SeqId:  seq,
	}, nil
}

func (s *Server) Delete(
	ctx context.Context,
	req *pb.DeleteRequest,
) (*pb.DeleteResponse, error) {
	seq, err := s.svc.Delete(req.Key)
	if err != nil {
		return nil, err
	}

	log.Printf("[gRPC] Delete key=%q seq=%d", req.Key, seq)

	return &pb.DeleteResponse{
		Status: "ok",
		SeqId:  seq,
	}, nil
}

// -------------------- Queries --------------------

func (s *Server) Get(
	ctx context.Context,
	req *pb.GetRequest,
) (*pb.GetResponse, error) {
	v, ok := s.svc.Get(req.Key)
	return &pb.GetResponse{
		Found: ok,
		Value: v,
	}, nil
}

func (s *Server) GetSnapshot(
	ctx context.Context,
	req *pb.SnapshotRequest,
) (*pb.SnapshotResponse, error) {
	seq, entries := s.svc.Snapshot()

	resp := &pb.SnapshotResponse{
		Seq:     seq,
		Entries: make([]*pb.RegistryEntry, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, &pb.RegistryEntry{
			Key:   e.Key,
			Value: e.Value,
		})
	}
	return resp, nil
}
