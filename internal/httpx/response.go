package httpx

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Response is an outbound JSON response.
type Response struct {
	Status int
	Body   []byte
}

// JSON builds a response by marshaling v. Marshal failures degrade to
// a 500 error body so a response is always written.
func JSON(status int, v any) Response {
	body, err := json.Marshal(v)
	if err != nil {
		return Error(http.StatusInternalServerError, "Internal server error occurred")
	}
	return Response{Status: status, Body: body}
}

// Error builds a `{"error": ...}` response.
func Error(status int, message string) Response {
	return JSON(status, map[string]string{"error": message})
}

// Write serializes resp to w. Every response is HTTP/1.1, JSON, with
// an explicit Content-Length, and instructs the peer to close; the
// caller closes the connection after writing.
func Write(w io.Writer, resp Response) error {
	reason := http.StatusText(resp.Status)
	if reason == "" {
		reason = "Unknown"
	}

	header := fmt.Sprintf(
		"HTTP/1.1 %d %s\r\nContent-Type: application/json\r\nContent-Length: %d\r\nConnection: close\r\n\r\n",
		resp.Status, reason, len(resp.Body),
	)
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	_, err := w.Write(resp.Body)
	return err
}
