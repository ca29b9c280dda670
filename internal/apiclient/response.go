package apiclient

// RawResponse is the untyped result of a single fetch, before any domain mapping.
type RawResponse struct {
	StatusCode int
	// Successful is true only for a 2xx status with a JSON body.
	Successful bool
	// Payload is the decoded body. Objects decode to map[string]any,
	// arrays to []any and numbers to json.Number.
	Payload any
	Body    []byte
}

// IsSuccessStatus reports whether code is in the 2xx class.
func IsSuccessStatus(code int) bool {
	return code >= 200 && code < 300
}
