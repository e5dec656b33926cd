package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/locey/BurnWin/verification"
)

const (
	defaultHTTPTimeout = 10 * time.Second
	maxBodyBytes       = 1 << 20
)

// Secret is an optional credential. The zero value means "not configured".
type Secret struct {
	value string
}

func NewSecret(v string) Secret {
	return Secret{value: v}
}

func (s Secret) Value() (string, bool) {
	return s.value, s.value != ""
}

func (s Secret) String() string {
	if s.value == "" {
		return "<unset>"
	}
	return "******"
}

func defaultClient(hc *http.Client) *http.Client {
	if hc != nil {
		return hc
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

type statusError struct {
	Status int
	Body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Status, e.Body)
}

var errMalformed = errors.New("malformed provider response")

// doJSON sends req and decodes a JSON body into out. When decodeAny is set the body is
// decoded whatever the status, for providers that report errors in a JSON envelope.
func doJSON(hc *http.Client, req *http.Request, out any, decodeAny bool) (int, error) {
	req.Header.Set("Accept", "application/json")
	resp, err := hc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return resp.StatusCode, errors.Wrap(err, "read provider response")
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	if (ok || decodeAny) && out != nil && len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			if ok {
				return resp.StatusCode, errMalformed
			}
		}
	}
	if !ok {
		snippet := string(body)
		if len(snippet) > 200 {
			snippet = snippet[:200]
		}
		return resp.StatusCode, &statusError{Status: resp.StatusCode, Body: snippet}
	}
	return resp.StatusCode, nil
}

// transportFailure converts a request error into an outcome. URL errors are unwrapped so
// tokens embedded in request paths never reach messages.
func transportFailure(provider string, err error) verification.Unverified {
	if errors.Is(err, context.DeadlineExceeded) {
		return verification.Fail(verification.FailureTimeout, verification.MsgRequestTimeout)
	}
	var ue *url.Error
	if errors.As(err, &ue) {
		if ue.Timeout() {
			return verification.Fail(verification.FailureTimeout, verification.MsgRequestTimeout)
		}
		err = ue.Err
	}
	return verification.Fail(verification.FailureTransport, provider+" request failed: "+err.Error())
}

func statusFailure(provider string, status int) verification.Unverified {
	if status >= 200 && status < 300 {
		return verification.Fail(verification.FailureTransport, provider+": "+errMalformed.Error())
	}
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return verification.Fail(verification.FailureConfiguration, provider+" credentials rejected")
	case http.StatusTooManyRequests:
		return verification.Fail(verification.FailureTransport, provider+" rate limit reached, please retry later")
	default:
		return verification.Fail(verification.FailureTransport, fmt.Sprintf("%s returned status %d", provider, status))
	}
}
