// Package roomapi is the HTTP client for the room-of-record service.
//
// It implements every collaborator contract the session core consumes:
// room lifecycle, rename, delete-timer policy, transcript export and
// import. Wire shapes mirror the backend exactly; callers only see the
// contract interfaces.
package roomapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/samber/lo"

	"github.com/StaticAccess/Lynai/domain"
	"github.com/StaticAccess/Lynai/errors"
)

type Client struct {
	log     *slog.Logger
	baseURL string
	http    *http.Client
}

// NewClient builds a client for baseURL (http://host:port). The timeout
// bounds every collaborator round-trip; the session core itself never
// applies one.
func NewClient(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		log:     log,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// CreateRoom registers a new password-gated room and returns its id.
func (c *Client) CreateRoom(ctx context.Context, password string) (string, error) {
	var out struct {
		RoomID string `json:"roomId"`
	}
	body := map[string]string{"password": password}
	if err := c.postJSON(ctx, "/create-room", body, &out); err != nil {
		return "", fmt.Errorf("create room: %w", err)
	}
	return out.RoomID, nil
}

// JoinRoom verifies the password against the room of record.
func (c *Client) JoinRoom(ctx context.Context, roomID, password string) error {
	body := map[string]string{"roomId": roomID, "password": password}
	if err := c.postJSON(ctx, "/join-room", body, nil); err != nil {
		return fmt.Errorf("join room %s: %w", roomID, err)
	}
	return nil
}

// DeleteRoom asks the backend to drop the room and its storage.
func (c *Client) DeleteRoom(ctx context.Context, roomID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		c.baseURL+"/delete-room/"+url.PathEscape(roomID), nil)
	if err != nil {
		return err
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("delete room %s: %w", roomID, err)
	}
	return nil
}

// RenameUser asks the server of record to confirm a username change and
// returns its confirmation message.
func (c *Client) RenameUser(ctx context.Context, roomID, newUsername string) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	body := map[string]string{"new_username": newUsername}
	path := "/change-username/" + url.PathEscape(roomID)
	if err := c.postJSON(ctx, path, body, &out); err != nil {
		return "", fmt.Errorf("rename in room %s: %w", roomID, err)
	}
	return out.Message, nil
}

// SetDeleteTimer records the room's delete-timer policy server-side.
func (c *Client) SetDeleteTimer(ctx context.Context, roomID, value string) error {
	body := map[string]string{"duration": value}
	path := "/set-delete-timer/" + url.PathEscape(roomID)
	if err := c.postJSON(ctx, path, body, nil); err != nil {
		return fmt.Errorf("set delete timer: %w", err)
	}
	return nil
}

// ExportTranscript fetches the rendered transcript. The bytes are an
// opaque downloadable artifact.
func (c *Client) ExportTranscript(ctx context.Context, roomID, format string) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/database/download-chat/%s?format=%s",
		c.baseURL, url.PathEscape(roomID), url.QueryEscape(format))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("export transcript: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.rejection(resp)
	}
	return io.ReadAll(resp.Body)
}

// ImportTranscript uploads a transcript file and returns the parsed
// [username, content, timestamp] triples. Only JSON files are accepted;
// the content is sniffed, not trusted by extension.
func (c *Client) ImportTranscript(ctx context.Context, roomID, filename string, file io.Reader) ([]domain.ImportedEntry, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read import file: %w", err)
	}
	if mt := mimetype.Detect(data); !mt.Is("application/json") {
		return nil, fmt.Errorf("%w: only JSON files are supported, got %s", errors.ErrMalformedImport, mt.String())
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(data); err != nil {
		return nil, err
	}
	if err := form.Close(); err != nil {
		return nil, err
	}

	endpoint := c.baseURL + "/database/import-chat/" + url.PathEscape(roomID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	var out struct {
		Messages [][]string `json:"messages"`
	}
	if err := c.do(req, &out); err != nil {
		return nil, fmt.Errorf("import transcript: %w", err)
	}

	if !lo.EveryBy(out.Messages, func(triple []string) bool { return len(triple) == 3 }) {
		return nil, fmt.Errorf("%w: every entry must be a [username, content, timestamp] triple", errors.ErrMalformedImport)
	}
	entries := lo.Map(out.Messages, func(triple []string, _ int) domain.ImportedEntry {
		return domain.ImportedEntry{Username: triple[0], Content: triple[1], Timestamp: triple[2]}
	})
	return entries, nil
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.rejection(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// rejection turns a non-2xx response into ErrRemoteRejected carrying
// whatever reason the backend gave. The backend wraps errors either as
// {"error": ...} or {"detail": {"error": ...}}.
func (c *Client) rejection(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var flat struct {
		Error  string          `json:"error"`
		Detail json.RawMessage `json:"detail"`
	}
	reason := ""
	if err := json.Unmarshal(body, &flat); err == nil {
		reason = flat.Error
		if reason == "" && len(flat.Detail) > 0 {
			var nested struct {
				Error string `json:"error"`
			}
			if err := json.Unmarshal(flat.Detail, &nested); err == nil && nested.Error != "" {
				reason = nested.Error
			} else {
				var plain string
				if err := json.Unmarshal(flat.Detail, &plain); err == nil {
					reason = plain
				}
			}
		}
	}
	if reason == "" {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.Debug("Room server rejected a request", "url", resp.Request.URL.Path, "reason", reason)
	return fmt.Errorf("%w: %s", errors.ErrRemoteRejected, reason)
}
