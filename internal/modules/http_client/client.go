package http_client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
)

type HttpClient struct {
	HttpClient *http.Client
}

type RequestOption func(options *RequestOptions)

type RequestOptions struct {
	ctx    context.Context
	body   any
	header http.Header
}

func WithBody(body any) RequestOption {
	return func(c *RequestOptions) {
		c.body = body
	}
}

func WithHeader(key, value string) RequestOption {
	return func(c *RequestOptions) {
		c.header.Set(key, value)
	}
}

func WithContext(ctx context.Context) RequestOption {
	return func(c *RequestOptions) {
		c.ctx = ctx
	}
}

func New() *HttpClient {
	return &HttpClient{
		HttpClient: http.DefaultClient,
	}
}

func NewWithTimeout(timeout time.Duration) *HttpClient {
	return &HttpClient{
		HttpClient: &http.Client{Timeout: timeout},
	}
}

func (c *HttpClient) NewRequest(method string, url string, option ...RequestOption) (*http.Request, error) {
	options := &RequestOptions{header: http.Header{}, ctx: context.Background()}
	for _, opt := range option {
		opt(options)
	}
	var body io.Reader
	if options.body != nil {
		switch v := options.body.(type) {
		case io.Reader:
			body = v
		default:
			data, err := jsoniter.Marshal(v)
			if err != nil {
				return nil, err
			}
			body = bytes.NewBuffer(data)
		}
	}
	req, err := http.NewRequestWithContext(options.ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	if options.header != nil {
		req.Header = options.header
	}
	return req, nil
}

func (c *HttpClient) Do(req *http.Request) (*http.Response, error) {
	return c.HttpClient.Do(req)
}
