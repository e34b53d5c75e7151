// Package handler implements the product API as AWS Lambda handlers for
// API Gateway HTTP APIs (payload format 2.0).
//
// Each handler is a single request/response transform:
//
//	PUT    /{id}  Handler.Create
//	GET    /{id}  Handler.Read
//	GET    /      Handler.ReadAll
//	DELETE /{id}  Handler.Delete
//
// Handlers never return a Go error. Every failure is mapped to a fixed JSON
// body with a {"message": ...} shape; see responses.go. A missing "id" path
// parameter is answered with 500, not 400, to stay compatible with existing
// clients of the API.
//
// [Handler.Route] dispatches on the request route key so all four routes can
// also be served by a single function.
package handler
