// Package redis provides the Redis client and the rescore trigger channel.
//
// Reactions and comments recorded through the app layer publish the affected
// item on a pub/sub channel; the listener feeds each message to the scoring
// orchestrator. The client carries metrics and circuit-breaker hooks.
package redis
