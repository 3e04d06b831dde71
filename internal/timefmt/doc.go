// Package timefmt formats file timestamps with strftime(3) templates.
//
// Templates accept every directive of github.com/ncruces/go-strftime plus two
// extensions, which [Expand] rewrites before the template reaches strftime:
//
//   - %[1-9]N: 1 to 9 digits of the subsecond value, truncated (%N means 9)
//   - %:z: the UTC offset with a colon, as in RFC 3339 ("-05:00")
//
// A [Timestamp] equal to [Unset] formats as "N/A" whatever the template.
package timefmt
