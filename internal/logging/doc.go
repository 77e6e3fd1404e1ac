// Package logging configures structured slog logging for minigrep.
//
// Standard output carries matches only, so logs go to stderr and, with
// --debug, to a size-rotated file under ~/.minigrep/logs/.
package logging
