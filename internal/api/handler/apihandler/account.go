package apihandler

import (
	"net/http"

	"github.com/go-faster/jx"
)

const forgotPasswordMessage = "If an account exists for this email, a reset link has been sent."

// ForgotPassword issues a reset token. The answer does not reveal whether the
// email has an account.
func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := h.readBody(w, r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	var req ForgotPasswordRequest
	if err := h.bind(body, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	if err := h.deps.Account.ForgotPassword(ctx, req.Email); err != nil {
		writeError(ctx, w, err)

		return
	}

	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("message", func(e *jx.Encoder) { e.Str(forgotPasswordMessage) })
	})
	writeJSON(w, http.StatusOK, e.Bytes())
}

// ResetPassword redeems a reset token and relays the backend's answer.
func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := h.readBody(w, r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	var req ResetPasswordRequest
	if err := h.bind(body, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	res, err := h.deps.Account.ResetPassword(ctx, req.Token, req.Password)
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	relay(w, res)
}
