// Package github is a thin client for the pieces of the GitHub REST
// API the control plane uses: Actions repo secrets, workflow dispatch
// and run listing.
package github

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/crypto/nacl/box"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// APIError is a non-2xx response from GitHub.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github: status %d: %s", e.StatusCode, e.Body)
}

type repoPublicKey struct {
	KeyID string `json:"key_id"`
	Key   string `json:"key"`
}

// SetRepoSecret uploads an Actions repository secret. GitHub requires
// the value sealed with the repo's libsodium public key, so the
// plaintext never travels in the request body.
func (c *Client) SetRepoSecret(ctx context.Context, token, owner, repo, name, value string) error {
	var pk repoPublicKey
	path := fmt.Sprintf("/repos/%s/%s/actions/secrets/public-key", owner, repo)
	if err := c.do(ctx, token, http.MethodGet, path, nil, &pk); err != nil {
		return err
	}

	keyBytes, err := base64.StdEncoding.DecodeString(pk.Key)
	if err != nil || len(keyBytes) != 32 {
		return fmt.Errorf("github: invalid repo public key")
	}
	var recipient [32]byte
	copy(recipient[:], keyBytes)

	sealed, err := box.SealAnonymous(nil, []byte(value), &recipient, rand.Reader)
	if err != nil {
		return fmt.Errorf("github: sealing secret failed: %w", err)
	}

	path = fmt.Sprintf("/repos/%s/%s/actions/secrets/%s", owner, repo, name)
	body := map[string]string{
		"encrypted_value": base64.StdEncoding.EncodeToString(sealed),
		"key_id":          pk.KeyID,
	}
	return c.do(ctx, token, http.MethodPut, path, body, nil)
}

// DispatchWorkflow triggers a workflow_dispatch event for the file.
func (c *Client) DispatchWorkflow(ctx context.Context, token, owner, repo, workflowFile, ref string, inputs map[string]string) error {
	path := fmt.Sprintf("/repos/%s/%s/actions/workflows/%s/dispatches", owner, repo, workflowFile)
	body := map[string]interface{}{"ref": ref}
	if len(inputs) > 0 {
		body["inputs"] = inputs
	}
	return c.do(ctx, token, http.MethodPost, path, body, nil)
}

// ListRuns returns workflow runs, optionally narrowed to one workflow
// file. The payload passes through to the caller untouched.
func (c *Client) ListRuns(ctx context.Context, token, owner, repo, workflow string) (json.RawMessage, error) {
	path := fmt.Sprintf("/repos/%s/%s/actions/runs?per_page=20", owner, repo)
	if workflow != "" {
		path = fmt.Sprintf("/repos/%s/%s/actions/workflows/%s/runs?per_page=20", owner, repo, url.PathEscape(workflow))
	}
	var out json.RawMessage
	if err := c.do(ctx, token, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRun returns a single workflow run.
func (c *Client) GetRun(ctx context.Context, token, owner, repo string, runID int64) (json.RawMessage, error) {
	path := fmt.Sprintf("/repos/%s/%s/actions/runs/%d", owner, repo, runID)
	var out json.RawMessage
	if err := c.do(ctx, token, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, token, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(data)}
	}
	if out != nil && len(data) > 0 {
		return json.Unmarshal(data, out)
	}
	return nil
}
