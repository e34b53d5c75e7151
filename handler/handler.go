package handler

import (
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"github.com/jacentio/products/product"
	"github.com/jacentio/products/store"
)

// ListLimit is the maximum number of products returned by ReadAll.
const ListLimit = store.DefaultScanLimit

// ProductStore is the storage capability the handlers need.
// *store.Store satisfies it.
type ProductStore interface {
	Get(ctx context.Context, id string) (product.Product, error)
	Put(ctx context.Context, p product.Product) error
	Delete(ctx context.Context, id string) error
	ScanFirst(ctx context.Context, n int) ([]product.Product, error)
}

// Handler serves the product API.
type Handler struct {
	store  ProductStore
	logger *slog.Logger
}

// New creates a new Handler.
func New(s ProductStore, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		store:  s,
		logger: logger,
	}
}

// Create handles PUT /{id}: it stores the product in the body under the
// path id, overwriting any existing product.
func (h *Handler) Create(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	logger := h.requestLogger(req)

	id, ok := pathID(req)
	if !ok {
		return missingID(), nil
	}

	body, err := requestBody(req)
	if err != nil {
		logger.Warn("failed to decode request body", "id", id, "error", err)
		return respond(http.StatusBadRequest, bodyMalformedBody), nil
	}
	if len(body) == 0 {
		return respond(http.StatusBadRequest, bodyEmptyBody), nil
	}

	p, err := product.Parse(body)
	if err != nil {
		logger.Warn("failed to parse product", "id", id, "error", err)
		return respond(http.StatusBadRequest, bodyMalformedBody), nil
	}

	if p.ID != id {
		logger.Warn("product id in path does not match body",
			"pathID", id,
			"bodyID", p.ID,
		)
		return respond(http.StatusBadRequest, bodyIDMismatch), nil
	}

	logger.Info("creating product", "id", p.ID, "name", p.Name, "price", p.Price)

	if err := h.store.Put(ctx, p); err != nil {
		logger.Error("failed to create product", "id", id, "error", err)
		return respond(http.StatusInternalServerError, bodyCreateFailed), nil
	}

	return respond(http.StatusCreated, bodyCreated), nil
}

// Read handles GET /{id}.
func (h *Handler) Read(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	logger := h.requestLogger(req)

	id, ok := pathID(req)
	if !ok {
		return missingID(), nil
	}

	logger.Info("fetching product", "id", id)

	p, err := h.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			logger.Info("product not found", "id", id)
		} else {
			logger.Error("failed to fetch product", "id", id, "error", err)
		}
		return respond(http.StatusInternalServerError, bodyFetchFailed), nil
	}

	return respondJSON(http.StatusOK, p), nil
}

// ReadAll handles GET /, returning at most ListLimit products.
func (h *Handler) ReadAll(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	logger := h.requestLogger(req)

	products, err := h.store.ScanFirst(ctx, ListLimit)
	if err != nil {
		logger.Error("failed to get products", "error", err)
		return respond(http.StatusInternalServerError, bodyListFailed), nil
	}

	return respondJSON(http.StatusOK, product.NewList(products)), nil
}

// Delete handles DELETE /{id}. Deleting an unknown id succeeds.
func (h *Handler) Delete(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	logger := h.requestLogger(req)

	id, ok := pathID(req)
	if !ok {
		return missingID(), nil
	}

	if err := h.store.Delete(ctx, id); err != nil {
		logger.Error("failed to delete product", "id", id, "error", err)
		return respond(http.StatusInternalServerError, bodyDeleteFailed), nil
	}

	return respond(http.StatusOK, bodyDeleted), nil
}

// requestLogger tags log lines with the gateway request id, or a generated
// one when the gateway did not send any.
func (h *Handler) requestLogger(req events.APIGatewayV2HTTPRequest) *slog.Logger {
	requestID := req.RequestContext.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}
	return h.logger.With("requestID", requestID, "route", req.RouteKey)
}

// pathID extracts the "id" path parameter. An empty value counts as missing.
func pathID(req events.APIGatewayV2HTTPRequest) (string, bool) {
	id := req.PathParameters["id"]
	return id, id != ""
}

// requestBody returns the raw body, decoding it if the gateway base64-encoded it.
func requestBody(req events.APIGatewayV2HTTPRequest) ([]byte, error) {
	if !req.IsBase64Encoded {
		return []byte(req.Body), nil
	}
	return base64.StdEncoding.DecodeString(req.Body)
}
