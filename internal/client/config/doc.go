// Package config loads runtime configuration for the task planner CLI:
// built-in defaults, then an optional JSON file chosen with -c/-config, then
// the -a (server address) and -t (call timeout, seconds) flags.
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "request_timeout": "10s"
//	}
package config
