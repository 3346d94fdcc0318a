// Command token serves the token by contract address and token id lookup on AWS Lambda.
package main

import (
	"context"

	awslambda "github.com/aws/aws-lambda-go/lambda"

	"ark-lookup-api/internal/handlers"
	"ark-lookup-api/internal/providers"
	"ark-lookup-api/pkg/server"
)

var handler handlers.RequestHandler

func init() {
	container, err := server.Bootstrap(context.Background())
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}

	handler, err = server.NewLookupHandler(container, providers.Tokens, handlers.TokenRoute)
	if err != nil {
		panic("Failed to initialize handler: " + err.Error())
	}
}

func main() {
	awslambda.Start(server.APIGatewayHandler(handler))
}
