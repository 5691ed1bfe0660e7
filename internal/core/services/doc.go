// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go; third-party code lives behind the driven ports,
// apart from uuid for session ids.
package services
