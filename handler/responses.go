package handler

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

// Fixed response bodies.
const (
	bodyCreated        = `{"message":"Product created"}`
	bodyDeleted        = `{"message":"Product deleted"}`
	bodyMissingID      = `{"message":"Missing 'id' parameter in path"}`
	bodyEmptyBody      = `{"message":"Empty request body"}`
	bodyMalformedBody  = `{"message":"Failed to parse product from request body"}`
	bodyIDMismatch     = `{"message":"Product ID in path does not match product ID in body"}`
	bodyCreateFailed   = `{"message":"Failed to create product"}`
	bodyFetchFailed    = `{"message":"Error fetching product"}`
	bodyListFailed     = `{"message":"Failed to get products"}`
	bodyDeleteFailed   = `{"message":"Failed to delete product"}`
	bodyRouteNotFound  = `{"message":"Not found"}`
	bodyEncodingFailed = `{"message":"Failed to encode response"}`
)

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

// respond builds a JSON response. Headers are copied so callers cannot
// mutate the shared map.
func respond(status int, body string) events.APIGatewayV2HTTPResponse {
	headers := make(map[string]string, len(jsonHeaders))
	for k, v := range jsonHeaders {
		headers[k] = v
	}
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       body,
	}
}

// respondJSON serializes v as the response body.
func respondJSON(status int, v any) events.APIGatewayV2HTTPResponse {
	b, err := json.Marshal(v)
	if err != nil {
		return respond(http.StatusInternalServerError, bodyEncodingFailed)
	}
	return respond(status, string(b))
}

func missingID() events.APIGatewayV2HTTPResponse {
	return respond(http.StatusInternalServerError, bodyMissingID)
}
