package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// GetAttachment fetches attachment metadata by numeric ID.
func (c *Client) GetAttachment(ctx context.Context, id int) (map[string]any, error) {
	return c.do(ctx, "GET", fmt.Sprintf("/attachment/%d", id), nil, nil, nil)
}

// AttachmentContent downloads an attachment body as raw bytes, bypassing
// the JSON response path. Non-success statuses still map to typed errors.
func (c *Client) AttachmentContent(ctx context.Context, id int) ([]byte, error) {
	path := fmt.Sprintf("/attachment/%d/content", id)
	endpoint := endpointLabel(path)

	req, err := c.newRequest(ctx, "GET", path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.networkError(endpoint, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.networkError(endpoint, path, err)
	}

	rtRequestsTotal.WithLabelValues(endpoint, fmt.Sprintf("%d", resp.StatusCode)).Inc()
	if resp.StatusCode != http.StatusOK {
		_, err := c.handleResponse(path, resp.StatusCode, raw)
		return nil, err
	}
	return raw, nil
}

// UploadAttachment attaches a file to a ticket as a multipart form part
// named "attachment", bypassing the JSON request path.
func (c *Client) UploadAttachment(ctx context.Context, ticketID int, filename string, content []byte) (map[string]any, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("attachment", filename)
	if err != nil {
		return nil, &Error{Kind: KindValidation, Message: fmt.Sprintf("building multipart body: %v", err), Err: err}
	}
	if _, err := part.Write(content); err != nil {
		return nil, &Error{Kind: KindValidation, Message: fmt.Sprintf("building multipart body: %v", err), Err: err}
	}
	if err := writer.Close(); err != nil {
		return nil, &Error{Kind: KindValidation, Message: fmt.Sprintf("building multipart body: %v", err), Err: err}
	}

	path := fmt.Sprintf("/ticket/%d/attach", ticketID)
	endpoint := endpointLabel(path)

	req, err := c.newRequest(ctx, "POST", path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.networkError(endpoint, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.networkError(endpoint, path, err)
	}

	rtRequestsTotal.WithLabelValues(endpoint, fmt.Sprintf("%d", resp.StatusCode)).Inc()
	return c.handleResponse(path, resp.StatusCode, raw)
}
