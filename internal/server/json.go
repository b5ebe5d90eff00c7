package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goto/backoffice/pkg/apierror"
	"github.com/goto/salt/log"
)

func writeJSON(w http.ResponseWriter, logger log.Logger, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("error encoding response", "status", status, "err", err)
	}
}

// writeError answers with the error body and the status of the error's kind.
// Errors outside the taxonomy are reported as 500 without their message.
func writeError(w http.ResponseWriter, logger log.Logger, err error) {
	e, ok := apierror.As(err)
	if !ok {
		logger.Error("unexpected error", "err", err)
		e = &apierror.Error{
			Status:  http.StatusInternalServerError,
			Code:    apierror.CodeUnknown,
			Message: "internal server error",
		}
	}

	status := e.HTTPStatus()
	if ok && status >= http.StatusInternalServerError {
		logger.Error("request failed", "code", e.Code, "err", err)
	}
	writeJSON(w, logger, status, e.Body())
}

// decodeJSON returns io.EOF for an empty body.
func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return io.EOF
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return err
		}
		return apierror.Invalid(fmt.Sprintf("invalid request body: %s", err), nil)
	}
	return nil
}
