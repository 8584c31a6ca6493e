// Package builtin registers drift's compiled-in plugins. Importing it for
// side effects makes the sass, typescript, and esbuild factories available
// to the plugin loader.
package builtin
