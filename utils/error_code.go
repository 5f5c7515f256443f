package utils

// Application error codes returned in the "code" field of JSON error
// responses, alongside the HTTP status.
const (
	ErrorTokenAuthFail = 10001
	ErrorInvalidInput  = 10002
	ErrorNotFound      = 10003
	ErrorAlreadyExists = 10004
	ErrorInternal      = 10005
)
