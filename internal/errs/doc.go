// Package errs defines the closed application error set, the auth error
// sentinels reserved for future login flows, and the Report wrapper that
// carries an arbitrary failure cause across the handler boundary.
//
// Lower layers (store, crypto) return their own sentinel errors; the service
// layer converts them into taxonomy variants at construction time so that the
// HTTP layer can classify a Report with a single ordered match instead of
// inspecting concrete types at runtime.
package errs
