package driven

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
)

// APIClient transports calls to the admin API over two logical transports
// sharing one base endpoint: public (useAuth=false) and authenticated
// (useAuth=true). Paths are relative to the base endpoint.
//
// Bodies are dispatched by their runtime shape:
//   - nil: no body
//   - *FormData: multipart/form-data with a generated boundary
//   - io.Reader or []byte: sent as-is, never labelled JSON
//   - anything else: encoded as JSON
//
// Non-2xx responses are returned as errors; network errors pass through unmodified.
type APIClient interface {
	Get(ctx context.Context, path string, cfg *RequestConfig, useAuth bool) (*Response, error)
	Post(ctx context.Context, path string, body any, cfg *RequestConfig, useAuth bool) (*Response, error)
	Put(ctx context.Context, path string, body any, cfg *RequestConfig, useAuth bool) (*Response, error)
	Patch(ctx context.Context, path string, body any, cfg *RequestConfig, useAuth bool) (*Response, error)
	Delete(ctx context.Context, path string, cfg *RequestConfig, useAuth bool) (*Response, error)
}

// RequestConfig is the per-call override bag, shallow-merged onto transport defaults.
// Caller headers win over defaults, except that a multipart body always
// carries its own generated Content-Type.
type RequestConfig struct {
	Headers map[string]string
	Query   map[string]string
}

// Response is a completed HTTP exchange.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

// FormData is a multipart payload, typically used for file uploads.
// Passing a *FormData as a request body is the only thing needed to get
// multipart encoding; no flag is involved.
type FormData struct {
	Fields []FormField
	Files  []FormFile
}

// FormField is a plain multipart field.
type FormField struct {
	Name  string
	Value string
}

// FormFile is a file part of a multipart payload.
type FormFile struct {
	Field    string
	FileName string
	Content  io.Reader
}

// NewFormData creates an empty multipart payload.
func NewFormData() *FormData {
	return &FormData{}
}

// AddField appends a plain field.
func (f *FormData) AddField(name, value string) *FormData {
	f.Fields = append(f.Fields, FormField{Name: name, Value: value})
	return f
}

// AddFile appends a file part.
func (f *FormData) AddFile(field, fileName string, content io.Reader) *FormData {
	f.Files = append(f.Files, FormFile{Field: field, FileName: fileName, Content: content})
	return f
}
