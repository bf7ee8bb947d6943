package checked

import (
	"github.com/hnimtadd/checked/logger"
	"golang.org/x/exp/constraints"
)

// traceLogger, when set, records every checked operation that fails.
// Off by default so arithmetic stays pure.
var traceLogger logger.Logger

// SetTraceLogger installs l as the destination for failed-operation
// records, or disables tracing when l is nil. Not synchronized; set it
// once from test or debug setup before doing arithmetic.
func SetTraceLogger(l logger.Logger) { traceLogger = l }

func traceFail[T constraints.Integer](op string, l, r T) {
	if traceLogger == nil {
		return
	}
	traceLogger.Debug("checked operation failed", "op", op, "lhs", l, "rhs", r)
}
