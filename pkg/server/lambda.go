package server

import (
	"context"

	"github.com/aws/aws-lambda-go/events"

	"ark-lookup-api/internal/handlers"
	"ark-lookup-api/pkg/lambda"
)

// APIGatewayHandler adapts a RequestHandler to the API Gateway REST proxy
// integration. The returned error is always nil; every failure is a response.
func APIGatewayHandler(h handlers.RequestHandler) func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return h.Handle(ctx, lambda.FromAPIGateway(event)).ToAPIGateway(), nil
	}
}

// APIGatewayV2Handler adapts a RequestHandler to the API Gateway HTTP API
// (payload format 2.0) integration
func APIGatewayV2Handler(h handlers.RequestHandler) func(context.Context, events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	return func(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		resp := h.Handle(ctx, lambda.FromAPIGatewayV2(event)).ToAPIGateway()
		return events.APIGatewayV2HTTPResponse{
			StatusCode:      resp.StatusCode,
			Headers:         resp.Headers,
			Body:            resp.Body,
			IsBase64Encoded: resp.IsBase64Encoded,
		}, nil
	}
}
