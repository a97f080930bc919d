package transport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"strings"

	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/ports/driven"
)

const contentTypeJSON = "application/json"

// payload is an encoded request body.
type payload struct {
	reader io.Reader
	// contentType is the default Content-Type for this body, empty for none.
	contentType string
	// force means contentType overrides any caller-supplied header.
	force bool
	// binary bodies are never labelled JSON, whatever the caller asks for.
	binary bool
}

const contentTypeBinary = "application/octet-stream"

// isJSONContentType reports whether v names a JSON media type.
func isJSONContentType(v string) bool {
	mediaType, _, err := mime.ParseMediaType(v)
	if err != nil {
		return false
	}
	return mediaType == contentTypeJSON || strings.HasSuffix(mediaType, "+json")
}

// encodeBody picks the encoding from the body's runtime type.
func encodeBody(body any) (payload, error) {
	switch b := body.(type) {
	case nil:
		return payload{}, nil
	case *driven.FormData:
		if b == nil {
			return payload{}, nil
		}
		return encodeMultipart(b)
	case json.RawMessage:
		return payload{reader: bytes.NewReader(b), contentType: contentTypeJSON}, nil
	case []byte:
		return payload{reader: bytes.NewReader(b), binary: true}, nil
	case io.Reader:
		return payload{reader: b, binary: true}, nil
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return payload{}, fmt.Errorf("marshal request body: %w", err)
		}
		return payload{reader: bytes.NewReader(data), contentType: contentTypeJSON}, nil
	}
}

// IsMultipart reports whether body will be sent as multipart/form-data.
func IsMultipart(body any) bool {
	fd, ok := body.(*driven.FormData)
	return ok && fd != nil
}

func encodeMultipart(form *driven.FormData) (payload, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range form.Fields {
		if err := w.WriteField(f.Name, f.Value); err != nil {
			return payload{}, fmt.Errorf("write form field %s: %w", f.Name, err)
		}
	}
	for _, f := range form.Files {
		part, err := w.CreateFormFile(f.Field, f.FileName)
		if err != nil {
			return payload{}, fmt.Errorf("create form file %s: %w", f.Field, err)
		}
		if f.Content != nil {
			if _, err := io.Copy(part, f.Content); err != nil {
				return payload{}, fmt.Errorf("copy form file %s: %w", f.FileName, err)
			}
		}
	}
	if err := w.Close(); err != nil {
		return payload{}, fmt.Errorf("close multipart writer: %w", err)
	}

	return payload{
		reader:      &buf,
		contentType: w.FormDataContentType(),
		force:       true,
	}, nil
}
