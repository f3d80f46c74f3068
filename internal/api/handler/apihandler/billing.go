package apihandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"seoguard/pkg/domain"
	"seoguard/pkg/payments"
	"seoguard/pkg/serrors"

	"github.com/go-faster/jx"
)

const (
	signatureHeader       = "Stripe-Signature"
	webhookRejectedReason = "Webhook signature verification failed"
	webhookPayloadReason  = "Webhook payload could not be decoded"
)

func sessionBody(s *payments.Session) []byte {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("sessionId", func(e *jx.Encoder) { e.Str(s.ID) })
		e.Field("url", func(e *jx.Encoder) { e.Str(s.URL) })
	})

	return e.Bytes()
}

// Checkout starts a subscription checkout for the caller's project and
// returns the hosted page URL.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
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
	var req CheckoutRequest
	if err := h.bind(body, &req); err != nil {
		writeError(ctx, w, err)

		return
	}
	projectID, err := h.ownProject(ctx, auth, req.ProjectID)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	s, err := h.deps.Billing.Checkout(ctx, domain.Plan(req.Plan), projectID, req.Email)
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	writeJSON(w, http.StatusOK, sessionBody(s))
}

// Portal opens the billing portal of the caller's project.
func (h *Handler) Portal(w http.ResponseWriter, r *http.Request) {
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
	var req PortalRequest
	if err := h.bind(body, &req); err != nil {
		writeError(ctx, w, err)

		return
	}
	projectID, err := h.ownProject(ctx, auth, req.ProjectID)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	s, err := h.deps.Billing.Portal(ctx, projectID)
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	writeJSON(w, http.StatusOK, sessionBody(s))
}

// Subscription returns the billing record of the caller's project. An
// explicit ?projectId= must name that project.
func (h *Handler) Subscription(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := requireAuth(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	projectID, err := h.ownProject(ctx, auth, r.URL.Query().Get("projectId"))
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	c, err := h.deps.Billing.Customer(ctx, projectID)
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	b, err := json.Marshal(c)
	if err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrInternal, err, "could not encode billing customer"))

		return
	}
	writeJSON(w, http.StatusOK, b)
}

// Webhook receives payment-processor events. The raw body is verified
// against the signature header before anything is decoded.
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	payload, err := h.readBody(w, r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	signature := r.Header.Get(signatureHeader)
	if signature == "" {
		writeError(ctx, w, serrors.With(serrors.ErrBadRequest, "Missing %s header", signatureHeader))

		return
	}

	if err := h.deps.Billing.HandleWebhook(ctx, payload, signature); err != nil {
		switch {
		case errors.Is(err, payments.ErrSignature):
			writeJSON(w, http.StatusBadRequest, errorBody(webhookRejectedReason, serrors.Code(err), ""))

			return
		case errors.Is(err, serrors.ErrBadRequest):
			writeJSON(w, http.StatusBadRequest, errorBody(webhookPayloadReason, serrors.Code(err), ""))

			return
		}
		writeError(ctx, w, err)

		return
	}

	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("received", func(e *jx.Encoder) { e.Bool(true) })
	})
	writeJSON(w, http.StatusOK, e.Bytes())
}
