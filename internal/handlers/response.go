package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"ark-lookup-api/internal/providers"
	"ark-lookup-api/pkg/lambda"
)

// MessageResponse is the body of every non-entity response
type MessageResponse struct {
	Message string `json:"message"`
}

// Fixed messages. Store failures never echo backend details.
const (
	MessageNotFound    = "not found"
	MessageBadGateway  = "bad gateway"
	MessageServerError = "internal server error"
)

func jsonHeaders() map[string]string {
	return map[string]string{"Content-Type": "application/json"}
}

func messageResponse(status int, message string) *lambda.Response {
	body, _ := json.Marshal(MessageResponse{Message: message})
	return &lambda.Response{
		StatusCode: status,
		Headers:    jsonHeaders(),
		Body:       body,
	}
}

// Found returns a 200 response with the entity as JSON body
func Found(entity any) *lambda.Response {
	body, err := json.Marshal(entity)
	if err != nil {
		return ServerError()
	}
	return &lambda.Response{
		StatusCode: http.StatusOK,
		Headers:    jsonHeaders(),
		Body:       body,
	}
}

// NotFound returns the fixed 404 response
func NotFound() *lambda.Response {
	return messageResponse(http.StatusNotFound, MessageNotFound)
}

// BadRequest returns a 400 response with a client-safe message
func BadRequest(message string) *lambda.Response {
	return messageResponse(http.StatusBadRequest, message)
}

// BadGateway returns the generic 502 response
func BadGateway() *lambda.Response {
	return messageResponse(http.StatusBadGateway, MessageBadGateway)
}

// ServerError returns the generic 500 response
func ServerError() *lambda.Response {
	return messageResponse(http.StatusInternalServerError, MessageServerError)
}

// FromError maps an extraction or store error to a response
func FromError(err error) *lambda.Response {
	var paramErr *lambda.ParamError
	switch {
	case errors.As(err, &paramErr):
		return BadRequest(paramErr.Error())
	case providers.IsTimeout(err), providers.IsUnavailable(err):
		return BadGateway()
	default:
		return ServerError()
	}
}

// Respond maps a provider result to a response
func Respond[E any](entity *E, err error) *lambda.Response {
	if err != nil {
		return FromError(err)
	}
	if entity == nil {
		return NotFound()
	}
	return Found(entity)
}
