package utils

import (
	"encoding/json"
	"io"
	"net"
	"net/http"

	"github.com/threads-be/threads/shared/api"
	"github.com/threads-be/threads/shared/errors"
	"github.com/threads-be/threads/shared/logger"
	"github.com/threads-be/threads/shared/validation"
)

// InternalErrorMessage is the only text a caller sees for unhandled failures.
const InternalErrorMessage = "Something wrong in server!"

// WriteJSON encodes v before touching the response so an encoding failure can still become a 500.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.Log.WithError(err).Error("failed to encode response")
		status = http.StatusInternalServerError
		body, _ = json.Marshal(InternalErrorMessage)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
	w.Write([]byte("\n"))
}

func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	if e, ok := err.(*errors.ErrorWithStatusCode); ok {
		if e.StatusCode == http.StatusBadRequest {
			WriteJSON(w, e.StatusCode, api.ValidationErrorResponse{Error: e.Message})
			return
		}
		WriteJSON(w, e.StatusCode, e.Message)
		return
	}
	// default error is 500, details stay in the log
	logger.Log.WithError(err).Error("unhandled error")
	WriteJSON(w, http.StatusInternalServerError, InternalErrorMessage)
}

// GetIP returns the address of the direct peer. Forwarding headers are
// honoured only through middleware.TrustProxies, which rewrites RemoteAddr.
func GetIP(r *http.Request) (string, error) {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// chi's RealIP stores a bare address
		host = r.RemoteAddr
	}
	if netIP := net.ParseIP(host); netIP != nil {
		return netIP.String(), nil
	}
	return "", errors.Validation("no valid ip found")
}

func DecodeValidate(r io.ReadCloser, body any) error {
	if err := Decode(r, body); err != nil {
		return err
	}
	return validation.Struct(body)
}

func Decode(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.WithError(err).Debug("invalid json body")
		return errors.Validation("Body is invalid json")
	}
	return nil
}
