// Package domain contains the people, employees and animals the demo works with.
//
// The domain is output-agnostic: printers take an io.Writer and never reach for
// os.Stdout themselves. Loaders and the CLI map into/from these types.
package domain
