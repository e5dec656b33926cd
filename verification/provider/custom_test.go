package provider

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/locey/BurnWin/verification"
)

func TestCustom_VerifyCustom(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Equal(t, Sign("k", body), r.Header.Get(SignatureHeader))

		var req customRequest
		assert.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "c1", req.CampaignID)
		assert.Equal(t, "quiz", req.TaskID)

		verified := req.Address == "0xdone"
		_ = json.NewEncoder(w).Encode(customResponse{Verified: verified, Message: map[bool]string{true: "ok", false: "quiz not passed"}[verified]})
	}))
	defer srv.Close()

	c := NewCustom(CustomConfig{SigningKey: NewSecret("k")}, srv.Client())
	task := verification.Task{ID: "quiz", CampaignID: "c1"}
	p := verification.CustomParams{VerifyURL: srv.URL}

	assert.True(t, c.VerifyCustom(context.Background(), task, p, verification.UserIdentity{Address: "0xdone"}).IsVerified())

	out := c.VerifyCustom(context.Background(), task, p, verification.UserIdentity{Address: "0xother"})
	assert.Equal(t, verification.Fail(verification.FailureNotFound, "quiz not passed"), out)
}

func TestCustom_NoEndpoint(t *testing.T) {
	c := NewCustom(CustomConfig{}, nil)
	out := c.VerifyCustom(context.Background(), verification.Task{}, verification.CustomParams{}, verification.UserIdentity{})
	assert.Equal(t, verification.FailureConfiguration, out.(verification.Unverified).Kind)
}
