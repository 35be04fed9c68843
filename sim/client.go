// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/optics/setup"
)

// ErrSuperseded is returned by [Client.Simulate] when a newer run was started
// while this one was in flight. The newer run's result wins; the superseded
// response is discarded without touching the stored result.
var ErrSuperseded = errors.New("sim: result superseded by a newer run")

// Client is the gateway to the simulation engine's HTTP API.
// Runs are last-started-wins: if [Client.Simulate] is called again while a
// prior call is still awaiting the engine, the prior call's response is
// discarded when it arrives, so the stored [Client.Result] always comes from
// the most recently started run. A failed run never clears the stored result.
type Client struct {

	// URL is the base URL of the simulation engine, without a trailing slash.
	URL string

	// Do is the function used to perform HTTP requests,
	// which defaults to [http.DefaultClient.Do].
	Do func(req *http.Request) (*http.Response, error)

	mu      sync.Mutex
	started uint64 // generation of the most recently started run
	result  *Result
}

// NewClient returns a new simulation engine [Client] for the given base URL.
func NewClient(url string) *Client {
	return &Client{URL: strings.TrimSuffix(url, "/"), Do: http.DefaultClient.Do}
}

// Result returns the result of the most recent successfully applied run,
// or nil if no run has succeeded yet.
func (c *Client) Result() *Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

// Simulate submits the given setup to the engine for ray tracing and returns
// its result. On success the result atomically replaces the stored
// [Client.Result]. On engine failure the error is returned, and the stored
// result and the caller's setup remain untouched. If a newer run was started
// while this one was in flight, the response is discarded and Simulate
// returns [ErrSuperseded].
func (c *Client) Simulate(ctx context.Context, s *setup.Setup) (*Result, error) {
	c.mu.Lock()
	c.started++
	gen := c.started
	c.mu.Unlock()

	var body bytes.Buffer
	if err := jsonx.Write(s, &body); err != nil {
		return nil, fmt.Errorf("sim: encoding setup: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL+"/api/simulate", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sim: simulation engine unreachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sim: simulation engine: %s", responseDetail(resp))
	}
	res := &Result{}
	if err := jsonx.Read(res, resp.Body); err != nil {
		return nil, fmt.Errorf("sim: decoding result: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.started {
		return nil, ErrSuperseded
	}
	c.result = res
	return res, nil
}

// Health checks the engine's health endpoint, returning nil if the engine
// reports itself healthy.
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.get(ctx, "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sim: simulation engine: %s", responseDetail(resp))
	}
	status := struct {
		Status string `json:"status"`
	}{}
	if err := jsonx.Read(&status, resp.Body); err != nil {
		return fmt.Errorf("sim: decoding health response: %w", err)
	}
	if status.Status != "healthy" {
		return fmt.Errorf("sim: simulation engine unhealthy: %q", status.Status)
	}
	return nil
}

// Catalog returns the engine's catalog of available component kinds.
func (c *Client) Catalog(ctx context.Context) ([]CatalogEntry, error) {
	resp, err := c.get(ctx, "/api/components")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sim: simulation engine: %s", responseDetail(resp))
	}
	var entries []CatalogEntry
	if err := jsonx.Read(&entries, resp.Body); err != nil {
		return nil, fmt.Errorf("sim: decoding catalog: %w", err)
	}
	return entries, nil
}

func (c *Client) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL+path, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sim: simulation engine unreachable: %w", err)
	}
	return resp, nil
}

// responseDetail extracts the engine's error detail message from a non-200
// response, falling back to the HTTP status.
func responseDetail(resp *http.Response) string {
	detail := struct {
		Detail string `json:"detail"`
	}{}
	if err := jsonx.Read(&detail, resp.Body); err == nil && detail.Detail != "" {
		return detail.Detail
	}
	return resp.Status
}
