package loadgen

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/biometric"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

// client is one simulated employee talking to the API.
type client struct {
	http    *http.Client
	baseURL string
	token   string
	marker  []byte
	stats   *stats
}

func (c *client) call(ctx context.Context, method, path string, body, out any) (int, string, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return 0, "", err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return 0, "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		c.stats.failures.Add(1)
		return 0, "", err
	}
	defer resp.Body.Close()
	c.stats.observe(resp.StatusCode)

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return resp.StatusCode, "", fmt.Errorf("%s %s: decode: %w", method, path, err)
	}
	code := ""
	if env.Error != nil {
		code = env.Error.Code
	}
	if out != nil && env.Success {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return resp.StatusCode, code, err
		}
	}
	return resp.StatusCode, code, nil
}

func (c *client) onboard(ctx context.Context, name, email, password string) error {
	status, code, err := c.call(ctx, http.MethodPost, "/api/v1/auth/signup", map[string]string{
		"name": name, "email": email, "password": password, "confirm_password": password,
	}, nil)
	if err != nil {
		return err
	}
	if status != http.StatusCreated && code != "DUPLICATE_EMAIL" {
		return fmt.Errorf("signup %s: status %d code %s", email, status, code)
	}

	var login struct {
		Token struct {
			AccessToken string `json:"access_token"`
		} `json:"token"`
	}
	status, code, err = c.call(ctx, http.MethodPost, "/api/v1/auth/login", map[string]string{"email": email, "password": password}, &login)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("login %s: status %d code %s", email, status, code)
	}
	c.token = login.Token.AccessToken

	status, code, err = c.call(ctx, http.MethodPost, "/api/v1/biometrics/register",
		map[string]string{"marker": base64.StdEncoding.EncodeToString(c.marker)}, nil)
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return fmt.Errorf("register biometric %s: status %d code %s", email, status, code)
	}
	return nil
}

// attend signs a fresh challenge for purpose and submits the action. It
// reports whether the ledger accepted it.
func (c *client) attend(ctx context.Context, purpose biometric.Purpose) (bool, error) {
	var ch struct {
		ChallengeID string `json:"challenge_id"`
		Nonce       string `json:"nonce"`
	}
	status, code, err := c.call(ctx, http.MethodPost, "/api/v1/attendance/challenges", map[string]string{"purpose": string(purpose)}, &ch)
	if err != nil {
		return false, err
	}
	if status != http.StatusCreated {
		return false, fmt.Errorf("challenge: status %d code %s", status, code)
	}
	nonce, err := base64.StdEncoding.DecodeString(ch.Nonce)
	if err != nil {
		return false, err
	}
	sig := biometric.SignChallenge(c.marker, biometric.Challenge{ID: ch.ChallengeID, Purpose: purpose, Nonce: nonce})

	path := "/api/v1/attendance/check-in"
	if purpose == biometric.PurposeCheckOut {
		path = "/api/v1/attendance/check-out"
	}
	status, _, err = c.call(ctx, http.MethodPost, path, map[string]string{
		"device_status": "success",
		"challenge_id":  ch.ChallengeID,
		"signature":     base64.StdEncoding.EncodeToString(sig),
	}, nil)
	if err != nil {
		return false, err
	}
	return status == http.StatusOK, nil
}
