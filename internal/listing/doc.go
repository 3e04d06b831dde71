// Package listing collects the files to display and orders them.
//
// Paths arrive from positional arguments or from an input stream where
// each path ends with a newline or a NUL byte ([ReadPaths]). Unless the
// sort field is [SortNone], every stat result is held in a [List] and
// sorted before output.
//
// # Sort Order
//
// Time fields sort newest first. Paths sort in ascending collation order
// of the locale named by LC_ALL, LC_COLLATE or LANG, or in byte order for
// the C and POSIX locales. Reversing flips either order.
package listing
