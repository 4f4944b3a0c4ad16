// Package parser decodes request input into typed structs.
package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/gorilla/schema"
)

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(false)
	d.SetAliasTag("schema")
	return d
}

// Query decodes the request query string into dst. Fields of dst should be
// pointers so that absent keys stay nil. Unknown keys are an error.
func Query(c *fiber.Ctx, dst interface{}) error {
	values := url.Values{}
	c.Request().URI().QueryArgs().VisitAll(func(key, value []byte) {
		values.Add(string(key), string(value))
	})
	return QueryValues(values, dst)
}

// QueryValues is Query for an already parsed query string.
func QueryValues(values url.Values, dst interface{}) error {
	if err := queryDecoder.Decode(dst, values); err != nil {
		return describeQueryError(err)
	}
	return nil
}

func describeQueryError(err error) error {
	var multi schema.MultiError
	if !errors.As(err, &multi) {
		return err
	}
	for key, e := range multi {
		var unknown schema.UnknownKeyError
		if errors.As(e, &unknown) {
			return fmt.Errorf("unknown query parameter %q", key)
		}
		var conv schema.ConversionError
		if errors.As(e, &conv) {
			return fmt.Errorf("invalid value for query parameter %q", key)
		}
		return fmt.Errorf("query parameter %q: %v", key, e)
	}
	return err
}

// Body decodes a JSON request body into dst, rejecting unknown fields and
// trailing data.
func Body(c *fiber.Ctx, dst interface{}) error {
	return Decode(c.Body(), dst)
}

// Decode is Body for raw bytes.
func Decode(data []byte, dst interface{}) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return errors.New("request body is empty")
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return errors.New("invalid request body: unexpected data after JSON object")
	}
	return nil
}
