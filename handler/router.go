package handler

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

// Route keys configured on the HTTP API.
const (
	RouteCreate  = "PUT /{id}"
	RouteRead    = "GET /{id}"
	RouteReadAll = "GET /"
	RouteDelete  = "DELETE /{id}"
)

// Route dispatches a request to the handler registered for its route key.
// Unknown routes get a 404.
func (h *Handler) Route(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	switch req.RouteKey {
	case RouteCreate:
		return h.Create(ctx, req)
	case RouteRead:
		return h.Read(ctx, req)
	case RouteReadAll:
		return h.ReadAll(ctx, req)
	case RouteDelete:
		return h.Delete(ctx, req)
	default:
		h.requestLogger(req).Warn("no handler for route")
		return respond(http.StatusNotFound, bodyRouteNotFound), nil
	}
}
