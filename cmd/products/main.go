// Command products serves all product routes as an AWS Lambda function.
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/jacentio/products/internal/bootstrap"
)

func main() {
	h := bootstrap.Must(bootstrap.Handler(context.Background()))
	lambda.Start(h.Route)
}
