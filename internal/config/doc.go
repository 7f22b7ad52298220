// Package config provides configuration structures and static site data for
// the docent assistant. It defines the runtime options (timeouts, model
// selection, matching thresholds), the page directory mapping human labels
// to museum site URLs, and the topic tree that drives chat shortcuts.
//
// The directory and topic tree are loaded once at startup and are immutable
// afterwards; every other component receives them read-only.
package config
