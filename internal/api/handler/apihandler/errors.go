package apihandler

import (
	"context"
	"net/http"
	"seoguard/pkg/logger"
	"seoguard/pkg/serrors"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

const internalErrorMessage = "Internal server error"

// errorBody encodes {"error": message, "code": code[, "detail": detail]}.
func errorBody(message, code, detail string) []byte {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("error", func(e *jx.Encoder) { e.Str(message) })
		if code != "" {
			e.Field("code", func(e *jx.Encoder) { e.Str(code) })
		}
		if detail != "" {
			e.Field("detail", func(e *jx.Encoder) { e.Str(detail) })
		}
	})

	return e.Bytes()
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// writeError maps err to its status and code. Internal errors never expose
// their message.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := serrors.HTTPStatus(err)
	code := serrors.Code(err)
	message := serrors.MessageOf(err, http.StatusText(status))

	switch {
	case status == http.StatusInternalServerError:
		logger.Error(ctx, "Request failed", zap.Error(err))
		message = internalErrorMessage
	case status >= http.StatusInternalServerError:
		logger.Warn(ctx, "Upstream failure", zap.String("code", code), zap.Error(err))
	default:
		logger.Debug(ctx, "Request rejected", zap.String("code", code), zap.Error(err))
	}

	writeJSON(w, status, errorBody(message, code, ""))
}
