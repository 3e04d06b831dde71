// Package format renders one output line per file from an item template.
//
// # Item Directives
//
// Available directives for the item format (-i, item_format config):
//
//   - %m, %a, %c, %b: modification, access, change and birth time,
//     formatted with the time format
//   - %p: path, shell-quoted for display
//   - %u: path, shell-quoted with every non-ASCII character escaped
//   - %r: raw path bytes, unquoted
//   - %n: newline
//   - %z: NUL byte
//   - %%: literal percent sign
//
// Default item format is "%m  %a  %p%n". All other text is copied as is.
//
// # Validation
//
// Use [ValidateItemFormat] to check a template before any output is written.
// [Renderer.Write] fails the same way on an unknown directive, and writes
// nothing for an item that fails.
package format
