//go:build e2e
// +build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

func baseURL() string {
	switch os.Getenv("ENV") {
	case "CI":
		return "http://swipematch-app:8080/api/v1"
	}
	return "http://localhost:8080/api/v1"
}

func adminCode() string {
	if code := os.Getenv("ADMIN_SECRET"); code != "" {
		return code
	}
	return "shared"
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

type apiClient struct {
	http  *http.Client
	token string
}

func newClient() *apiClient {
	return &apiClient{http: &http.Client{Timeout: 30 * time.Second}}
}

func (c *apiClient) waitForService() error {
	for range 30 {
		resp, err := c.http.Get(baseURL() + "/swagger/index.html")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(2 * time.Second)
	}
	return fmt.Errorf("service at %s is not ready", baseURL())
}

func (c *apiClient) login(userID string) error {
	var out struct {
		Token string `json:"token"`
	}
	status, err := c.do(http.MethodPost, "/auth", map[string]string{"code": adminCode(), "user_id": userID}, &out)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("auth: status %d", status)
	}
	c.token = out.Token
	return nil
}

// do sends body as JSON and decodes the data field of the envelope into out.
func (c *apiClient) do(method, path string, body, out any) (int, error) {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, baseURL()+path, payload)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return resp.StatusCode, nil
	}
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return resp.StatusCode, err
	}
	if !env.Success {
		return resp.StatusCode, nil
	}
	return resp.StatusCode, json.Unmarshal(env.Data, out)
}
