// Package supabase is a thin client for the Supabase PostgREST and Auth
// endpoints. It is the only place the backend talks to the record store.
package supabase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client represents a Supabase client
type Client struct {
	URL        string
	ServiceKey string
	HTTPClient *http.Client
}

// NewClient creates a new Supabase client
func NewClient(url, serviceKey string) *Client {
	return &Client{
		URL:        url,
		ServiceKey: serviceKey,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// do executes a REST request against a table with standard auth headers and
// returns the response body. A non-empty userToken is forwarded so row-level
// security applies to the calling user instead of the service role.
func (c *Client) do(method, table string, params map[string]string, payload interface{}, prefer, userToken string) ([]byte, error) {
	url := fmt.Sprintf("%s/rest/v1/%s", c.URL, table)

	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal payload: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	for key, value := range params {
		q.Add(key, value)
	}
	req.URL.RawQuery = q.Encode()

	req.Header.Set("apikey", c.ServiceKey)
	if userToken != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", userToken))
	} else {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.ServiceKey))
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("supabase error: %s", string(respBody))
	}

	return respBody, nil
}

// Query executes a filtered select on a table
func (c *Client) Query(table string, params map[string]string) ([]byte, error) {
	return c.QueryWithToken(table, params, "")
}

// QueryWithToken executes a select with an optional user JWT token for RLS
func (c *Client) QueryWithToken(table string, params map[string]string, userToken string) ([]byte, error) {
	return c.do(http.MethodGet, table, params, nil, "", userToken)
}

// Insert inserts a record into a table and returns the created row
func (c *Client) Insert(table string, data interface{}) ([]byte, error) {
	return c.InsertWithToken(table, data, "")
}

// InsertWithToken inserts a record with an optional user JWT token for RLS
func (c *Client) InsertWithToken(table string, data interface{}, userToken string) ([]byte, error) {
	return c.do(http.MethodPost, table, nil, data, "return=representation", userToken)
}

// Update patches the record with the given id and returns the updated row
func (c *Client) Update(table string, id string, data interface{}) ([]byte, error) {
	return c.UpdateWithToken(table, id, data, "")
}

// UpdateWithToken patches a record with an optional user JWT token for RLS
func (c *Client) UpdateWithToken(table string, id string, data interface{}, userToken string) ([]byte, error) {
	params := map[string]string{"id": fmt.Sprintf("eq.%s", id)}
	return c.do(http.MethodPatch, table, params, data, "return=representation", userToken)
}

// UpdateWhere patches all records matching the given filters
func (c *Client) UpdateWhere(table string, params map[string]string, data interface{}) ([]byte, error) {
	return c.do(http.MethodPatch, table, params, data, "return=representation", "")
}

// Upsert inserts or updates a record. onConflict names the columns that
// identify a duplicate (e.g. "user_id,date").
func (c *Client) Upsert(table string, data interface{}, onConflict string) ([]byte, error) {
	return c.UpsertWithToken(table, data, onConflict, "")
}

// UpsertWithToken upserts with an optional user JWT token for RLS
func (c *Client) UpsertWithToken(table string, data interface{}, onConflict, userToken string) ([]byte, error) {
	params := map[string]string{"on_conflict": onConflict}
	// merge-duplicates updates the existing row instead of erroring
	return c.do(http.MethodPost, table, params, data, "return=representation,resolution=merge-duplicates", userToken)
}

// Delete deletes the record with the given id
func (c *Client) Delete(table string, id string) error {
	params := map[string]string{"id": fmt.Sprintf("eq.%s", id)}
	_, err := c.do(http.MethodDelete, table, params, nil, "", "")
	return err
}

// DeleteWhere deletes all records matching the given filters
func (c *Client) DeleteWhere(table string, params map[string]string) error {
	_, err := c.do(http.MethodDelete, table, params, nil, "", "")
	return err
}

// User represents a Supabase auth user
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// VerifyToken verifies a JWT token with Supabase Auth and returns the user
// it belongs to.
func (c *Client) VerifyToken(token string) (*User, error) {
	url := fmt.Sprintf("%s/auth/v1/user", c.URL)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("apikey", c.ServiceKey)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to verify token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("token verification failed (status %d): %s", resp.StatusCode, string(body))
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}

	return &user, nil
}
