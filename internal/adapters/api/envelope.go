package api

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// shape is the top-level form of a response body.
type shape int

const (
	// shapeEmpty is a body with no JSON value.
	shapeEmpty shape = iota
	// shapeWrapped is {statusCode, statusMessage, data}.
	shapeWrapped
	// shapeBare is a top-level JSON array.
	shapeBare
	// shapeOther is any other JSON value.
	shapeOther
)

func (s shape) String() string {
	switch s {
	case shapeEmpty:
		return "empty"
	case shapeWrapped:
		return "wrapped"
	case shapeBare:
		return "bare"
	default:
		return "other"
	}
}

// envelope is the decoded response body: exactly one of the shapes above.
// Only the fields of the active shape are meaningful.
type envelope struct {
	shape shape

	// wrapped
	statusCode    int
	hasStatusCode bool
	message       string
	data          json.RawMessage

	// bare
	items json.RawMessage
}

type wrappedBody struct {
	StatusCode    *int            `json:"statusCode"`
	StatusMessage string          `json:"statusMessage"`
	Message       string          `json:"message"`
	Data          json.RawMessage `json:"data"`
}

// decodeEnvelope classifies body by its first significant byte.
func decodeEnvelope(body []byte) (envelope, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return envelope{shape: shapeEmpty}, nil
	}

	switch trimmed[0] {
	case '[':
		if !json.Valid(trimmed) {
			return envelope{}, errMalformedBody
		}
		return envelope{shape: shapeBare, items: trimmed}, nil
	case '{':
		var w wrappedBody
		if err := json.Unmarshal(trimmed, &w); err != nil {
			return envelope{}, err
		}
		env := envelope{
			shape:   shapeWrapped,
			message: w.StatusMessage,
			data:    w.Data,
		}
		if env.message == "" {
			env.message = w.Message
		}
		if w.StatusCode != nil {
			env.statusCode = *w.StatusCode
			env.hasStatusCode = true
		}
		return env, nil
	default:
		if !json.Valid(trimmed) {
			return envelope{}, errMalformedBody
		}
		return envelope{shape: shapeOther}, nil
	}
}

// isFailure reports whether the envelope reports an error for a response with httpStatus.
func (e envelope) isFailure(httpStatus int) bool {
	if e.shape != shapeWrapped {
		return false
	}
	if e.hasStatusCode && e.statusCode >= 400 {
		return true
	}
	return httpStatus >= 400 && e.message != ""
}

// hasData reports whether a wrapped envelope carries a non-null data member.
func (e envelope) hasData() bool {
	return len(e.data) > 0 && !bytes.Equal(bytes.TrimSpace(e.data), []byte("null"))
}

// flexID accepts identifiers sent either as JSON strings or numbers.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

// MarshalJSON sends canonical integer ids as numbers and everything else as strings.
func (f flexID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(f), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(f) {
		return []byte(f), nil
	}
	return json.Marshal(string(f))
}

// wirePage is the paginated data member of list responses.
type wirePage[W any] struct {
	PageNumber   int  `json:"pageNumber"`
	PageSize     int  `json:"pageSize"`
	TotalRecords int  `json:"totalRecords"`
	TotalPages   *int `json:"totalPages"`
	Data         []W  `json:"data"`
}

// fieldValue looks up a JSON member by name, ignoring case, the way encoding/json matches struct fields.
func fieldValue(obj map[string]json.RawMessage, name string) (json.RawMessage, bool) {
	if v, ok := obj[name]; ok {
		return v, true
	}
	for k, v := range obj {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return nil, false
}
