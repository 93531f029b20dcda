/*
Copyright (c) 2024 Dell Inc., or its subsidiaries. All Rights Reserved.

Licensed under the Mozilla Public License Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://mozilla.org/MPL/2.0/


Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package idrac is a client for the Redfish API exposed by Dell iDRAC
// management controllers. It models resources as untyped documents, keeps a
// per-session cache of fetched resources, validates action parameters
// against the allowed values the controller advertises, and drives
// asynchronous jobs and power transitions to completion.
package idrac

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Config carries the connection settings for one controller session.
type Config struct {
	// Endpoint is the BMC address, with or without the https:// scheme.
	Endpoint string
	Username string
	Password string

	// SslInsecure disables TLS certificate verification. Management
	// controllers commonly present vendor self-signed certificates.
	SslInsecure bool

	// Timeout bounds each single HTTP request. Zero means no limit.
	Timeout time.Duration
}

// Client is one session against a single iDRAC endpoint. It owns the
// resource cache and is meant to be used by a single caller at a time; the
// cache carries no locking.
type Client struct {
	baseURL  string
	username string
	password string
	http     *http.Client

	cache map[string]Resource
}

// NewClient builds a session for the given endpoint. No connection is made
// until the first request.
func NewClient(cfg Config) *Client {
	endpoint := cfg.Endpoint
	if !strings.Contains(endpoint, "://") {
		endpoint = "https://" + endpoint
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		InsecureSkipVerify: cfg.SslInsecure,
	}

	return &Client{
		baseURL:  strings.TrimSuffix(endpoint, "/"),
		username: cfg.Username,
		password: cfg.Password,
		http: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		cache: make(map[string]Resource),
	}
}

// Request issues a single request against the controller and returns the
// decoded document. The path must be absolute and unqualified; this client
// refuses to be used as a general HTTP client. The decoded document is
// augmented with the Location response header so that callers scheduling
// asynchronous work can read the created resource's path.
func (c *Client) Request(ctx context.Context, method, path string, payload any) (Resource, error) {
	if strings.Contains(path, "://") {
		return nil, fmt.Errorf("%w: %q is a fully qualified URL, expected an absolute path", ErrInvalidArgument, path)
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: encoding payload: %s", ErrInvalidArgument, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, err)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response of %s %s: %w", method, path, err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, newOperationFailedError(method, path, res.StatusCode, resBody)
	}

	data := Resource{}
	if len(bytes.TrimSpace(resBody)) > 0 {
		if mediaType(res.Header.Get("Content-Type")) != "application/json" {
			return nil, fmt.Errorf("%w: %s %s answered with %q",
				ErrUnexpectedContentType, method, path, res.Header.Get("Content-Type"))
		}
		if err := json.Unmarshal(resBody, &data); err != nil {
			return nil, fmt.Errorf("%w: %s %s body is not valid JSON: %s",
				ErrUnexpectedContentType, method, path, err)
		}
	}

	data[locationKey] = res.Header.Get("Location")
	return data, nil
}

// mediaType strips parameters such as charset from a Content-Type value.
func mediaType(contentType string) string {
	mt, _, _ := strings.Cut(contentType, ";")
	return strings.TrimSpace(mt)
}

// Fetch GETs a resource without touching the cache.
func (c *Client) Fetch(ctx context.Context, path string) (Resource, error) {
	return c.Request(ctx, http.MethodGet, path, nil)
}

// Post issues an action or create request.
func (c *Client) Post(ctx context.Context, path string, payload any) (Resource, error) {
	return c.Request(ctx, http.MethodPost, path, payload)
}

// Get fetches a resource and replaces its cache entry. Use this for
// point-in-time state such as the system or a job.
func (c *Client) Get(ctx context.Context, path string) (Resource, error) {
	res, err := c.Fetch(ctx, path)
	if err != nil {
		return nil, err
	}
	c.cache[path] = res
	return res, nil
}

// GetCached returns the cached copy of a resource if one exists, fetching
// and storing it otherwise. Use this for resources that do not change over
// the course of a session, such as the storage topology or action metadata.
func (c *Client) GetCached(ctx context.Context, path string) (Resource, error) {
	if res, ok := c.cache[path]; ok {
		return res, nil
	}
	return c.Get(ctx, path)
}
