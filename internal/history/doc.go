// Package history provides SQLite-based storage for past question and
// answer exchanges.
//
// Design decision: We use SQLite (via modernc.org/sqlite) instead of other
// databases because:
// 1. No external dependencies - the database is a single file
// 2. CGO-free implementation allows easy cross-compilation
// 3. Sufficient performance for our use case
// 4. WAL mode provides good concurrent read performance
//
// The store is append-only from the chat loop's point of view; the only
// destructive operation is Clear, invoked explicitly by the user.
package history
