package conn

import "errors"

// ErrShutdown is the reason a SendHandle resolves to Failed when the send
// was enqueued on (or outstanding during) a shut-down connection.
var ErrShutdown = errors.New("conn: connection shut down")
