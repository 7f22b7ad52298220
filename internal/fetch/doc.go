// Package fetch retrieves live museum site pages and turns them into
// PageResults via the extract package.
//
// Notice-detail URLs get special treatment: the site renders notices from a
// board API that returns JSON-embedded HTML, so the fetcher first asks that
// endpoint and scans the JSON for the first table-bearing HTML string
// before falling back to a plain page fetch.
//
// The error contract is strict: no transport or parsing failure ever
// escapes as an error value. Every failure is logged and converted into a
// PageResult carrying only the source URL and a generic, user-safe failure
// marker. There are no retries: one attempt, fixed timeout, immediate
// result.
package fetch
