package lambda

import (
	"encoding/base64"

	"github.com/aws/aws-lambda-go/events"
)

// Request represents a generic HTTP request for serverless functions
type Request struct {
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	Headers     map[string]string `json:"headers"`
	QueryParams map[string]string `json:"query_params"`
	Body        []byte            `json:"body"`
	PathParams  map[string]string `json:"path_params"`
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}

// FromAPIGateway converts an API Gateway REST (v1) proxy event into a Request
func FromAPIGateway(event events.APIGatewayProxyRequest) *Request {
	return &Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		Body:        decodeBody(event.Body, event.IsBase64Encoded),
		PathParams:  event.PathParameters,
	}
}

// FromAPIGatewayV2 converts an API Gateway HTTP API (v2) event into a Request
func FromAPIGatewayV2(event events.APIGatewayV2HTTPRequest) *Request {
	return &Request{
		Method:      event.RequestContext.HTTP.Method,
		Path:        event.RawPath,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		Body:        decodeBody(event.Body, event.IsBase64Encoded),
		PathParams:  event.PathParameters,
	}
}

// ToAPIGateway converts a Response into an API Gateway proxy response
func (r *Response) ToAPIGateway() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: r.StatusCode,
		Headers:    r.Headers,
		Body:       string(r.Body),
	}
}

func decodeBody(body string, isBase64 bool) []byte {
	if !isBase64 {
		return []byte(body)
	}
	decoded, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return []byte(body)
	}
	return decoded
}
