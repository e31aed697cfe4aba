// Package watch regenerates a pom whenever its descriptor changes. It
// monitors the descriptor and any extra files such as the config file,
// debounces rapid events and reports dependency changes between runs.
package watch
