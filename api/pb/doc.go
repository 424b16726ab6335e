// Package pb holds the generated gRPC bindings for the registry API.
// Run go generate in this directory after editing registry.proto.
package pb

//go:generate protoc --go_out=paths=source_relative:. --go-grpc_out=paths=source_relative:. registry.proto
