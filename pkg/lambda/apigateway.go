package lambda

import (
	"github.com/aws/aws-lambda-go/events"
)

// FromAPIGateway converts an API Gateway proxy event into a Request
func FromAPIGateway(event events.APIGatewayProxyRequest) *Request {
	return &Request{
		Method:     event.HTTPMethod,
		Path:       event.Path,
		PathParams: event.PathParameters,
		RequestID:  event.RequestContext.RequestID,
	}
}

// ToAPIGateway converts the response into an API Gateway proxy response.
// Bodies are always plain text
func (r *Response) ToAPIGateway() events.APIGatewayProxyResponse {
	headers := make(map[string]string, len(r.Headers))
	for k, v := range r.Headers {
		headers[k] = v
	}

	return events.APIGatewayProxyResponse{
		StatusCode:      r.StatusCode,
		Headers:         headers,
		Body:            r.Body,
		IsBase64Encoded: false,
	}
}
