// Package client is the gRPC client of the task planner service. It keeps
// the session tokens of the logged-in account, attaches the access token to
// every call and refreshes it once when the server reports it expired.
package client
