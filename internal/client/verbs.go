package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/goto/backoffice/pkg/apierror"
)

func Get[T any](ctx context.Context, c *Client, endpoint string) (T, error) {
	var out T
	err := c.Execute(ctx, endpoint, &RequestOptions{Method: http.MethodGet}, &out)
	return out, err
}

func Post[T any](ctx context.Context, c *Client, endpoint string, payload interface{}) (T, error) {
	return send[T](ctx, c, http.MethodPost, endpoint, payload)
}

func Put[T any](ctx context.Context, c *Client, endpoint string, payload interface{}) (T, error) {
	return send[T](ctx, c, http.MethodPut, endpoint, payload)
}

func Patch[T any](ctx context.Context, c *Client, endpoint string, payload interface{}) (T, error) {
	return send[T](ctx, c, http.MethodPatch, endpoint, payload)
}

func Delete(ctx context.Context, c *Client, endpoint string) error {
	return c.Execute(ctx, endpoint, &RequestOptions{Method: http.MethodDelete}, nil)
}

func send[T any](ctx context.Context, c *Client, method, endpoint string, payload interface{}) (T, error) {
	var out T
	body, err := json.Marshal(payload)
	if err != nil {
		return out, apierror.Invalid(fmt.Sprintf("encode %s payload: %s", method, err), nil)
	}
	err = c.Execute(ctx, endpoint, &RequestOptions{Method: method, Body: body}, &out)
	return out, err
}
