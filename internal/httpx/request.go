// Package httpx implements the minimal HTTP/1.1 framing the server
// speaks: one request per connection, Content-Length bodies only, no
// keep-alive, no chunked transfer.
package httpx

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Framing errors.
var (
	// ErrEmptyRequest means the peer closed the connection without
	// sending anything. No response is owed.
	ErrEmptyRequest = errors.New("empty request")
	// ErrMalformedRequest means the request line could not be parsed.
	ErrMalformedRequest = errors.New("malformed request line")
)

// maxHeaderBytes bounds the header section so a misbehaving client
// cannot grow the buffer without limit.
const maxHeaderBytes = 64 * 1024

// Request is a fully parsed inbound request.
type Request struct {
	Method  string
	Path    string
	Version string
	Headers Headers
	// Query holds the raw query parameters for GET requests, split on
	// '&' and the first '='.
	Query map[string]string
	Body  []byte
}

// Headers is a case-insensitive header map. Keys are stored
// lower-cased; on duplicate headers the last value wins.
type Headers map[string]string

// Get returns the value for name, matching case-insensitively.
func (h Headers) Get(name string) string {
	return h[strings.ToLower(name)]
}

func (h Headers) set(name, value string) {
	h[strings.ToLower(name)] = value
}

// ReadRequest reads and parses one request from r. It blocks until
// the header terminator arrives and, when a Content-Length header is
// present, until the whole body has been read.
func ReadRequest(r io.Reader) (*Request, error) {
	br := bufio.NewReader(r)

	line, err := readLine(br)
	if err != nil {
		if errors.Is(err, io.EOF) && line == "" {
			return nil, ErrEmptyRequest
		}
		return nil, fmt.Errorf("reading request line: %w", err)
	}
	if strings.TrimSpace(line) == "" {
		return nil, ErrEmptyRequest
	}

	parts := strings.Fields(line)
	if len(parts) != 3 {
		return nil, ErrMalformedRequest
	}

	req := &Request{
		Method:  parts[0],
		Version: parts[2],
		Headers: make(Headers),
	}
	req.Path, req.Query = splitQuery(parts[1])

	headerBytes := 0
	for {
		line, err := readLine(br)
		if err != nil {
			return nil, fmt.Errorf("reading headers: %w", err)
		}
		if line == "" {
			break
		}
		headerBytes += len(line)
		if headerBytes > maxHeaderBytes {
			return nil, ErrMalformedRequest
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue // tolerate stray lines the way the wire format always has
		}
		req.Headers.set(strings.TrimSpace(name), strings.TrimSpace(value))
	}

	if cl := req.Headers.Get("Content-Length"); cl != "" {
		n, err := strconv.Atoi(cl)
		if err != nil || n < 0 {
			return nil, ErrMalformedRequest
		}
		if n > 0 {
			body := make([]byte, n)
			if _, err := io.ReadFull(br, body); err != nil {
				return nil, fmt.Errorf("reading body: %w", err)
			}
			req.Body = body
		}
	}

	return req, nil
}

// readLine reads up to CRLF (or bare LF) and returns the line without
// the terminator. A line longer than maxHeaderBytes aborts the read so
// a peer that never sends a newline cannot grow the buffer without
// bound.
func readLine(br *bufio.Reader) (string, error) {
	var line []byte
	for {
		chunk, err := br.ReadSlice('\n')
		line = append(line, chunk...)
		if len(line) > maxHeaderBytes {
			return "", ErrMalformedRequest
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		return strings.TrimRight(string(line), "\r\n"), err
	}
}

// splitQuery separates the query string from a request target and
// decodes it into a flat map: pairs joined on '&', split on the first
// '='. Values are kept raw.
func splitQuery(target string) (string, map[string]string) {
	path, rawQuery, ok := strings.Cut(target, "?")
	if !ok {
		return target, nil
	}
	query := make(map[string]string)
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		query[key] = value
	}
	return path, query
}
