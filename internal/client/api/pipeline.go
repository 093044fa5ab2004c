package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/bookdesk/internal/client/notify"
	"github.com/dmitrijs2005/bookdesk/internal/client/session"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

const (
	HeaderRequestID = "X-Request-ID"

	msgRequestFailed  = "Request failed"
	msgForbidden      = "You do not have permission to access this resource"
	msgSessionExpired = "Not logged in or session expired, please log in again"
	msgServerError    = "Server error, please try again later"
	msgNetworkFailed  = "Network connection failed, please check your network"
)

// authorize is the request phase. It only mutates headers and never blocks
// an unauthenticated call.
func authorize(req *http.Request, snap session.Snapshot) {
	req.Header.Set("Accept", "application/json")
	if req.Header.Get(HeaderRequestID) == "" {
		req.Header.Set(HeaderRequestID, uuid.NewString())
	}
	if snap.Credential != "" {
		req.Header.Set("Authorization", "Bearer "+snap.Credential)
	}
}

// classify is the pure half of the response phase. transportErr is set when
// no response was received.
func classify(status int, body []byte, transportErr error) (*Envelope, *Error) {
	if transportErr != nil {
		return nil, &Error{Kind: KindNetwork, Message: msgNetworkFailed, Err: transportErr}
	}

	if status < 200 || status >= 300 {
		e := &Error{Code: status, Status: status}
		switch status {
		case http.StatusUnauthorized:
			e.Kind, e.Message = KindAuthentication, msgSessionExpired
		case http.StatusForbidden:
			e.Kind, e.Message = KindAuthorization, msgForbidden
		case http.StatusInternalServerError:
			e.Kind, e.Message = KindServer, msgServerError
		default:
			e.Kind, e.Message = KindServer, bodyMessage(body)
		}
		return nil, e
	}

	var env Envelope
	if !gjson.ValidBytes(body) || !gjson.GetBytes(body, "code").Exists() {
		return nil, &Error{Kind: KindServer, Status: status, Code: status, Message: msgRequestFailed}
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &Error{Kind: KindServer, Status: status, Code: status, Message: msgRequestFailed, Err: err}
	}
	if env.Code == CodeOK {
		return &env, nil
	}

	e := &Error{Code: env.Code, Status: status, Message: env.Message}
	if e.Message == "" {
		e.Message = msgRequestFailed
	}
	switch env.Code {
	case http.StatusUnauthorized:
		e.Kind = KindAuthentication
	case http.StatusForbidden:
		e.Kind = KindAuthorization
	default:
		e.Kind = KindBusiness
	}
	return nil, e
}

func bodyMessage(body []byte) string {
	if gjson.ValidBytes(body) {
		if m := gjson.GetBytes(body, "message"); m.Type == gjson.String && m.Str != "" {
			return m.Str
		}
	}
	return msgRequestFailed
}

// enforce is the effectful half of the response phase. generation identifies
// the session the request was sent under; a stale authentication failure
// leaves a newer session alone.
func (c *Client) enforce(ctx context.Context, e *Error, generation uint64) {
	ctx = context.WithoutCancel(ctx)

	c.notifier.Notify(notify.Error, e.Message)

	switch e.Kind {
	case KindAuthorization:
		if e.fromEnvelope() {
			c.notifier.Notify(notify.Error, msgForbidden)
		}
	case KindAuthentication:
		cleared, err := c.session.ClearIfCurrent(ctx, generation)
		if err != nil {
			c.log.Error(ctx, "failed to remove persisted session", "err", err)
		}
		if !cleared {
			c.log.Debug(ctx, "authentication failure from an older session ignored", "generation", generation)
			return
		}
		c.redirector.RedirectToLogin(ctx)
	}
}
