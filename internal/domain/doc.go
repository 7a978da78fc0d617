// Package domain holds the model types, sentinel errors, and interfaces
// shared across the application.
//
// Packages depend on the interfaces declared here, never on each other's
// concrete types. The scoring pipeline in internal/scoring consumes the
// repository and analyzer interfaces; internal/database and
// internal/sentiment provide them.
package domain
