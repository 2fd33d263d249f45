// Package first and package second both export X; the package name keeps the
// two apart at every call site.
package first

const X = 1
