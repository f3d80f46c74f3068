package apihandler

import (
	"context"
	"net/http"
	"seoguard/pkg/backend"
	"seoguard/pkg/controller"
	"seoguard/pkg/serrors"

	"github.com/go-faster/jx"
)

const (
	noProjectMessage      = "Your account is not linked to a project yet"
	foreignProjectMessage = "projectId does not belong to this account"
)

// callerProject asks the backend who auth belongs to and returns the
// account's project id.
func (h *Handler) callerProject(ctx context.Context, auth string) (string, error) {
	res, err := h.deps.Backend.Do(ctx, backend.Request{
		Method:        http.MethodGet,
		Path:          "/auth/me",
		Authorization: auth,
		RequestID:     controller.RequestID(ctx),
	})
	if err != nil {
		return "", err
	}

	switch {
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		return "", serrors.With(serrors.ErrUnauthorized, "Unauthorized")
	case !res.OK():
		return "", serrors.With(backend.ErrProxy, "The backend answered with status %d", res.StatusCode)
	case !res.IsJSON:
		return "", serrors.With(backend.ErrProxy, "%s", nonJSONMessage)
	}

	projectID, err := decodeProjectID(res.Body)
	if err != nil {
		return "", serrors.Wrap(backend.ErrProxy, err, "Could not read the signed-in account")
	}
	if projectID == "" {
		return "", serrors.With(serrors.ErrForbidden, noProjectMessage)
	}

	return projectID, nil
}

// ownProject resolves the caller's project and checks requested against it.
// An empty requested id selects the caller's project.
func (h *Handler) ownProject(ctx context.Context, auth, requested string) (string, error) {
	projectID, err := h.callerProject(ctx, auth)
	if err != nil {
		return "", err
	}
	if requested != "" && requested != projectID {
		return "", serrors.With(serrors.ErrForbidden, foreignProjectMessage)
	}

	return projectID, nil
}

// decodeProjectID reads project_id (or projectId) from an account object. The
// backend may send it as a number or a string.
func decodeProjectID(body []byte) (string, error) {
	var projectID string
	err := jx.DecodeBytes(body).ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "project_id", "projectId":
		default:
			return d.Skip()
		}

		switch d.Next() {
		case jx.String:
			s, err := d.Str()
			if err != nil {
				return err
			}
			projectID = s
		case jx.Number:
			n, err := d.Num()
			if err != nil {
				return err
			}
			projectID = n.String()
		default:
			return d.Skip()
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	return projectID, nil
}
