package apihandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"seoguard/pkg/serrors"
	"strings"

	"github.com/go-faster/jx"
	"github.com/go-playground/validator/v10"
)

// readBody reads the request body up to the configured limit.
func (h *Handler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}

	b, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.opts.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, serrors.With(serrors.ErrBadRequest, "Request body too large")
		}

		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "Could not read request body")
	}

	return b, nil
}

// bind decodes body into dst and validates it. A nil dst only checks that a
// non-empty body is valid JSON.
func (h *Handler) bind(body []byte, dst any) error {
	if dst == nil {
		if len(strings.TrimSpace(string(body))) > 0 && !jx.Valid(body) {
			return serrors.With(serrors.ErrBadRequest, "Invalid JSON body")
		}

		return nil
	}

	if len(strings.TrimSpace(string(body))) == 0 {
		return serrors.With(serrors.ErrBadRequest, "Request body is required")
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "Invalid JSON body")
	}
	if err := h.validate.Struct(dst); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "%s", validationMessage(err))
	}

	return nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request body"
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// requireAuth returns the Authorization header or an unauthorized error.
func requireAuth(r *http.Request) (string, error) {
	auth := strings.TrimSpace(r.Header.Get("Authorization"))
	if auth == "" {
		return "", serrors.With(serrors.ErrUnauthorized, "Unauthorized")
	}

	return auth, nil
}
