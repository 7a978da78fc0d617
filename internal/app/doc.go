// Package app provides the application service layer.
//
// Orchestrates use cases: registration, posting, commenting, reacting,
// following, and score reads. Sits between HTTP handlers and domain
// repositories, creates the score record that accompanies every scorable
// item, and publishes rescore triggers when an item's signals change.
// Depends on domain interfaces, not concrete implementations.
package app
