package apihandler

import (
	"errors"
	"net/http"
	"seoguard/pkg/backend"
	"seoguard/pkg/logger"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

const (
	defaultInviteRole = "member"
	simulatedMessage  = "Invitation recorded. The backend is unreachable, so no email has been sent yet."
)

// InviteMember forwards a team invitation. When the backend cannot be reached
// the caller still gets a success answer, marked "simulated": true so
// clients can tell nothing was persisted.
func (h *Handler) InviteMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := requireAuth(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	body, err := h.readBody(w, r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	var req InviteRequest
	if err := h.bind(body, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	res, err := h.do(ctx, r, "/team/invite", auth, body, 0)
	switch {
	case err == nil:
		relay(w, res)
	case errors.Is(err, backend.ErrOffline) || errors.Is(err, backend.ErrConnReset):
		logger.Warn(ctx, "Backend unavailable, answering team invite with a simulated success",
			zap.String("email", req.Email), zap.Error(err))
		writeJSON(w, http.StatusOK, simulatedInvite(req))
	default:
		writeError(ctx, w, err)
	}
}

func simulatedInvite(req InviteRequest) []byte {
	role := req.Role
	if role == "" {
		role = defaultInviteRole
	}

	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("success", func(e *jx.Encoder) { e.Bool(true) })
		e.Field("simulated", func(e *jx.Encoder) { e.Bool(true) })
		e.Field("message", func(e *jx.Encoder) { e.Str(simulatedMessage) })
		e.Field("invite", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				e.Field("email", func(e *jx.Encoder) { e.Str(req.Email) })
				e.Field("role", func(e *jx.Encoder) { e.Str(role) })
				e.Field("status", func(e *jx.Encoder) { e.Str("pending") })
			})
		})
	})

	return e.Bytes()
}
