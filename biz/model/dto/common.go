package dto

// ErrorResp is the error body for every non-2xx response. Location is only
// set for field-level failures.
type ErrorResp struct {
	Reason   string `json:"reason"`
	Message  string `json:"message"`
	Location string `json:"location,omitempty"`
}

type PingResp struct {
	OK bool `json:"ok"`
}
