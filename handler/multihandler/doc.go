// Package multihandler provides a fan-out handler that dispatches log
// records to multiple child handlers, honoring each child's own level
// threshold. Errors from the children are combined with go.uber.org/multierr.
package multihandler
