package gateway

import "errors"

// ErrDownstreamUnavailable marks transport and parse failures of the fraud and
// payment collaborators. Callers check it with errors.Is; it is never returned
// for business declines, which are regular responses.
var ErrDownstreamUnavailable = errors.New("downstream service unavailable")
