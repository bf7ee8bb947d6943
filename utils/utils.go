package utils

// Assert panics with message when condition is false. Used for internal
// invariants that cannot fail in correct code.
func Assert(condition bool, message ...string) {
	if !condition {
		if len(message) == 1 {
			panic(message[0])
		}
		panic("failed assertion")
	}
}
