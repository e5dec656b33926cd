package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	types "github.com/locey/BurnWin/types/v1"
	"github.com/locey/BurnWin/verification"
	"github.com/locey/BurnWin/widget"
)

const (
	verifyPath = "/api/v1/tasks/verify"
	openPath   = "/api/v1/tasks/open"
)

// VerifyClient calls the backend verify endpoint on behalf of a widget.
type VerifyClient struct {
	baseURL string
	hc      *http.Client
}

var _ widget.Verifier = (*VerifyClient)(nil)

func NewVerifyClient(baseURL string, hc *http.Client) *VerifyClient {
	if hc == nil {
		// slightly above the backend's per-attempt bound
		hc = &http.Client{Timeout: 15 * time.Second}
	}
	return &VerifyClient{baseURL: strings.TrimRight(baseURL, "/"), hc: hc}
}

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func (c *VerifyClient) Verify(ctx context.Context, req widget.VerifyRequest) (verification.Result, error) {
	res, err := c.Submit(ctx, req)
	if err != nil {
		return verification.Result{}, err
	}
	return res.Result, nil
}

// Submit returns the verification result and, on success, the updated ledger snapshot.
func (c *VerifyClient) Submit(ctx context.Context, req widget.VerifyRequest) (types.VerifyTaskResponse, error) {
	var res types.VerifyTaskResponse
	err := c.post(ctx, verifyPath, types.VerifyTaskRequest{
		CampaignID:  req.CampaignID,
		TaskID:      req.TaskID,
		UserAddress: req.User.Address,
		Identity:    req.User,
		Evidence:    req.Evidence,
	}, &res)
	return res, err
}

// Open reports the click on a task button so the backend keeps its own open time.
func (c *VerifyClient) Open(ctx context.Context, campaignID, taskID, address string) (types.OpenTaskResponse, error) {
	var res types.OpenTaskResponse
	err := c.post(ctx, openPath, types.OpenTaskRequest{CampaignID: campaignID, TaskID: taskID, UserAddress: address}, &res)
	return res, err
}

func (c *VerifyClient) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(httpReq)
	if err != nil {
		return errors.Wrapf(err, "request %s failed", path)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&env); err != nil {
		return errors.Wrapf(err, "%s response status %d", path, resp.StatusCode)
	}
	if env.Code != 0 {
		return fmt.Errorf("%s (code %d)", env.Msg, env.Code)
	}
	if len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}
