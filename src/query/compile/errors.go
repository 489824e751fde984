package compile

import "errors"

// ErrUnsupportedConstruct reports a statement, condition, node, or
// function the compiler has no renderer for. It indicates a contract
// mismatch between builder and compiler and aborts the whole compile
// call; there is no partial-SQL fallback.
var ErrUnsupportedConstruct = errors.New("unsupported construct")
