package lambda

// PathParamID is the path parameter carrying the entry identifier
const PathParamID = "id"

// Request represents a normalized inbound request for the entry handlers
type Request struct {
	Method     string            `json:"method"`
	Path       string            `json:"path"`
	PathParams map[string]string `json:"path_params"`
	RequestID  string            `json:"request_id,omitempty"`
}

// Response represents a normalized plain-text response
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

// ExtractIdentifier returns the "id" path parameter and whether it was present.
// An empty value still counts as present
func ExtractIdentifier(req *Request) (string, bool) {
	if req == nil || req.PathParams == nil {
		return "", false
	}
	id, ok := req.PathParams[PathParamID]
	return id, ok
}

// Respond builds a plain-text response with an empty header set
func Respond(statusCode int, body string) *Response {
	return &Response{
		StatusCode: statusCode,
		Headers:    map[string]string{},
		Body:       body,
	}
}
