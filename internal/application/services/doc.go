// Package services provides the application layer for formbridge.
//
// This package contains:
//   - Table and schema listing over the tabular-data backend (FormService)
//   - Form rendering for a single table (FormService.RenderForm)
//   - Record submission with payload cleaning (FormService.Submit, CleanSubmission)
//
// Services depend on the Backend interface so they can be tested without a
// live backend.
package services
