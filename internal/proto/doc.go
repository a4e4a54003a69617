// Package proto holds the protobuf messages and gRPC stubs of the planner
// service, generated from taskplanner.proto.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative taskplanner.proto
