package golurk

import "github.com/go-logr/logr"

// internalLogger discards everything until SetInternalLogger is called.
var internalLogger = logr.Discard()

// SetInternalLogger routes engine logs through logger. Engine chatter is logged at V(1) and above.
func SetInternalLogger(logger logr.Logger) {
	internalLogger = logger.WithName("golurk")
}
