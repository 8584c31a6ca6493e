// Package registry provides a generic, type-safe registry for managing
// named items. drift uses it to hold the compiled-in plugin factories,
// which register themselves through init() functions.
package registry
