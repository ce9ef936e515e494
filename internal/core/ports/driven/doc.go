// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DocumentStore: Document and chunk persistence
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - CompletionService: External text completion. Without it, ingestion
//     and document listing still work, but questions cannot be answered.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
