// Package cli implements the interactive task planner client: a small REPL
// over the gRPC client covering sign-up, email verification, password reset,
// and the task, curriculum and project commands of a signed-in account.
package cli
