package common

// RequestIDHeaderName is the gRPC metadata key used to carry the request id
// between client and server.
const RequestIDHeaderName = "x-request-id"

// DefaultTopAddressesLimit is the number of addresses returned by a top
// addresses query when the caller does not ask for a specific amount.
const DefaultTopAddressesLimit = 5

// MaxTopAddressesLimit caps the amount a caller may ask for.
const MaxTopAddressesLimit = 100
