package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

const maxRequestBodyBytes = 1 << 20

// bindStrictJSON decodes a single JSON object into dst, rejecting unknown
// fields and trailing data.
func bindStrictJSON(c *gin.Context, dst any) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}
	return decodeStrict(body, dst)
}

// bindPatchJSON is bindStrictJSON for partial updates. An explicit null is
// rejected so that it cannot be mistaken for an omitted field.
func bindPatchJSON(c *gin.Context, dst any) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	err = json.Unmarshal(body, &fields)
	if err != nil {
		return fmt.Errorf("%w: %w", errInvalidRequestBody, err)
	}
	if fields == nil {
		return errInvalidRequestBody
	}
	for name, raw := range fields {
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return fmt.Errorf("%w: %s", errNullField, name)
		}
	}

	return decodeStrict(body, dst)
}

func readBody(c *gin.Context) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidRequestBody, err)
	}
	return body, nil
}

func decodeStrict(body []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		return fmt.Errorf("%w: %w", errInvalidRequestBody, err)
	}
	if _, err = dec.Token(); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}
