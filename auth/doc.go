// Package auth orchestrates Skyvault user authentication: it assembles
// signed requests for the login/signup/link flows, decodes the outcome
// through the response envelope and error taxonomy, and maintains the single
// process-wide current user, persisted through the storage port.
//
// A login or link attempt moves through build → execute → decode and ends in
// exactly one Result. Success atomically replaces and persists the current
// user; failure leaves the previous session untouched, so a failed login
// never evicts a valid one. No ordering is guaranteed between concurrent
// attempts; the last to succeed wins the current-user slot.
//
// See Service for the operation set, SessionManager for the current-user
// slot, and the providers subpackage for the per-provider credential shapes.
package auth
