// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no external service dependencies of their
// own; everything I/O-shaped is reached through a driven port.
package services
