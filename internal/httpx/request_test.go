package httpx

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRequest_GetWithQuery(t *testing.T) {
	raw := "GET /search?brand=Toyota&year=2020 HTTP/1.1\r\n" +
		"Host: localhost\r\n" +
		"\r\n"

	req, err := ReadRequest(strings.NewReader(raw))
	require.NoError(t, err)

	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "/search", req.Path)
	assert.Equal(t, "HTTP/1.1", req.Version)
	assert.Equal(t, "Toyota", req.Query["brand"])
	assert.Equal(t, "2020", req.Query["year"])
	assert.Nil(t, req.Body)
}

func TestReadRequest_PostWithBody(t *testing.T) {
	body := `{"brand":"Toyota"}`
	raw := "POST /admin/cars HTTP/1.1\r\n" +
		"Content-Type: application/json\r\n" +
		"Content-Length: " + strconv.Itoa(len(body)) + "\r\n" +
		"\r\n" +
		body

	req, err := ReadRequest(strings.NewReader(raw))
	require.NoError(t, err)

	assert.Equal(t, "POST", req.Method)
	assert.Equal(t, "/admin/cars", req.Path)
	assert.Equal(t, body, string(req.Body))
}

func TestReadRequest_HeadersAreCaseInsensitive(t *testing.T) {
	raw := "GET / HTTP/1.1\r\n" +
		"CONTENT-TYPE: application/json\r\n" +
		"\r\n"

	req, err := ReadRequest(strings.NewReader(raw))
	require.NoError(t, err)

	assert.Equal(t, "application/json", req.Headers.Get("Content-Type"))
	assert.Equal(t, "application/json", req.Headers.Get("content-type"))
}

func TestReadRequest_EmptyConnection(t *testing.T) {
	_, err := ReadRequest(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyRequest)
}

func TestReadRequest_BlankLineOnly(t *testing.T) {
	_, err := ReadRequest(strings.NewReader("\r\n"))
	assert.ErrorIs(t, err, ErrEmptyRequest)
}

func TestReadRequest_MalformedRequestLine(t *testing.T) {
	_, err := ReadRequest(strings.NewReader("GET /cars\r\n\r\n"))
	assert.ErrorIs(t, err, ErrMalformedRequest)
}

func TestReadRequest_NegativeContentLength(t *testing.T) {
	raw := "POST / HTTP/1.1\r\nContent-Length: -5\r\n\r\n"
	_, err := ReadRequest(strings.NewReader(raw))
	assert.ErrorIs(t, err, ErrMalformedRequest)
}

func TestReadRequest_TruncatedBody(t *testing.T) {
	raw := "POST / HTTP/1.1\r\nContent-Length: 10\r\n\r\nshort"
	_, err := ReadRequest(strings.NewReader(raw))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyRequest)
}

func TestReadRequest_BareLFLineEndings(t *testing.T) {
	raw := "GET /cars HTTP/1.1\nHost: localhost\n\n"

	req, err := ReadRequest(strings.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, "/cars", req.Path)
	assert.Equal(t, "localhost", req.Headers.Get("Host"))
}

func TestReadRequest_UnterminatedGiantLineRejected(t *testing.T) {
	// No newline ever arrives; the parser must give up at the header
	// limit instead of buffering the whole stream.
	raw := "GET /" + strings.Repeat("a", maxHeaderBytes+1) + " HTTP/1.1"
	_, err := ReadRequest(strings.NewReader(raw))
	assert.ErrorIs(t, err, ErrMalformedRequest)
}

func TestReadRequest_GiantHeaderLineRejected(t *testing.T) {
	raw := "GET /cars HTTP/1.1\r\nX-Big: " + strings.Repeat("b", maxHeaderBytes) + "\r\n\r\n"
	_, err := ReadRequest(strings.NewReader(raw))
	assert.ErrorIs(t, err, ErrMalformedRequest)
}

func TestSplitQuery(t *testing.T) {
	path, query := splitQuery("/search?brand=Toyota&flag&year=2020")
	assert.Equal(t, "/search", path)
	assert.Equal(t, "Toyota", query["brand"])
	assert.Equal(t, "2020", query["year"])
	// Key without '=' gets an empty value.
	v, ok := query["flag"]
	assert.True(t, ok)
	assert.Equal(t, "", v)

	path, query = splitQuery("/cars")
	assert.Equal(t, "/cars", path)
	assert.Nil(t, query)
}
