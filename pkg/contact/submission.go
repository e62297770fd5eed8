// Package contact parses, validates and renders contact form submissions.
package contact

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

// Wire keys of the contact form.
const (
	FieldName      = "name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldEventDate = "event-date"
	FieldEventType = "event-type"
	FieldMessage   = "message"
)

// DefaultMaxBodyBytes bounds the request body read by Parse.
const DefaultMaxBodyBytes = 64 << 10

var ErrInvalidBody = errors.New("invalid request body")

// Submission is the parsed contact form payload for one request.
type Submission struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	EventDate string `json:"event-date"`
	EventType string `json:"event-type"`
	Message   string `json:"message"`
}

// Parse reads a submission from the request body. JSON bodies may hold the
// form object directly or a JSON string containing the encoded object.
// Urlencoded and multipart forms are read by field name. Errors wrap
// ErrInvalidBody.
func Parse(r *http.Request, maxBytes int64) (*Submission, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}
	if r.Body == nil {
		return nil, fmt.Errorf("%w: request body is empty", ErrInvalidBody)
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		r.Body = http.MaxBytesReader(nil, r.Body, maxBytes)
		return parseForm(r, maxBytes)
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	if int64(len(body)) > maxBytes {
		return nil, fmt.Errorf("%w: request body too large", ErrInvalidBody)
	}
	return ParseJSON(body)
}

// ParseJSON decodes a JSON submission. A body that is itself a JSON string
// is decoded once more, matching clients that double-encode the payload.
func ParseJSON(body []byte) (*Submission, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: request body is empty", ErrInvalidBody)
	}

	if body[0] == '"' {
		var raw string
		if err := json.Unmarshal(body, &raw); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidBody, describeJSONError(err))
		}
		return ParseJSON([]byte(raw))
	}

	var s Submission
	if err := json.Unmarshal(body, &s); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidBody, describeJSONError(err))
	}
	return &s, nil
}

func parseForm(r *http.Request, maxBytes int64) (*Submission, error) {
	var err error
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		err = r.ParseMultipartForm(maxBytes)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}

	return &Submission{
		Name:      r.PostFormValue(FieldName),
		Email:     r.PostFormValue(FieldEmail),
		Phone:     r.PostFormValue(FieldPhone),
		EventDate: r.PostFormValue(FieldEventDate),
		EventType: r.PostFormValue(FieldEventType),
		Message:   r.PostFormValue(FieldMessage),
	}, nil
}

// UnmarshalJSON reads each form field as text. Numbers keep their literal
// form and true becomes "true"; false and null leave the field empty.
func (s *Submission) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	targets := map[string]*string{
		FieldName:      &s.Name,
		FieldEmail:     &s.Email,
		FieldPhone:     &s.Phone,
		FieldEventDate: &s.EventDate,
		FieldEventType: &s.EventType,
		FieldMessage:   &s.Message,
	}
	for key, dst := range targets {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		v, err := scalarText(raw)
		if err != nil {
			return &fieldTypeError{field: key, got: err.Error()}
		}
		*dst = v
	}
	return nil
}

func scalarText(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", nil
	}
	switch raw[0] {
	case '"':
		var v string
		err := json.Unmarshal(raw, &v)
		return v, err
	case 'n', 'f':
		return "", nil
	case 't':
		return "true", nil
	case '{':
		return "", errors.New("object")
	case '[':
		return "", errors.New("array")
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}

type fieldTypeError struct {
	field string
	got   string
}

func (e *fieldTypeError) Error() string {
	return fmt.Sprintf("invalid value for field %q: expected string or number, got %s", e.field, e.got)
}

// describeJSONError converts json decoding errors into client-safe messages.
func describeJSONError(err error) string {
	var fieldErr *fieldTypeError
	if errors.As(err, &fieldErr) {
		return fieldErr.Error()
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return fmt.Sprintf("malformed JSON at position %d", syntaxErr.Offset)
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return fmt.Sprintf("expected a JSON object, got %s", typeErr.Value)
		}
		return fmt.Sprintf("invalid value for field %q: expected %s", typeErr.Field, typeErr.Type.String())
	}
	return "invalid JSON"
}
