// Package api defines the addrkeeper RPC contract: request and response
// messages, the gRPC service descriptor and a typed client. Messages travel
// as JSON using the codec registered by this package.
package api

// Credentials is a username/password pair.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// GenericResponse reports only whether the operation succeeded.
type GenericResponse struct {
	Success bool `json:"success"`
}

// AddAddressRequest records one use of Address by Login.Username.
type AddAddressRequest struct {
	Login   Credentials `json:"login"`
	Address string      `json:"address"`
}

// TopAddressesRequest asks for the most used addresses of Username.
// A zero Limit means the server default.
type TopAddressesRequest struct {
	Username string `json:"username"`
	Limit    int32  `json:"limit,omitempty"`
}

// AddressesResponse echoes the username with its ranked addresses.
type AddressesResponse struct {
	Username  string   `json:"username"`
	Addresses []string `json:"addresses"`
}

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}
