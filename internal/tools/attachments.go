package tools

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type attachmentIDInput struct {
	AttachmentID int `json:"attachment_id" jsonschema:"numeric attachment ID"`
}

type uploadAttachmentInput struct {
	TicketID      int    `json:"ticket_id" jsonschema:"ticket to attach the file to"`
	Filename      string `json:"filename" jsonschema:"attachment filename"`
	ContentBase64 string `json:"content_base64" jsonschema:"file content, base64 encoded"`
}

func (r *Registry) registerAttachments(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_attachment",
		Description: "Retrieve attachment metadata by ID",
		Annotations: &mcp.ToolAnnotations{Title: "Get Attachment", ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in attachmentIDInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.GetAttachment(ctx, in.AttachmentID)
		if err != nil {
			return r.fail("get_attachment", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_attachment_content",
		Description: "Download attachment content; binary data is returned base64 encoded",
		Annotations: &mcp.ToolAnnotations{Title: "Get Attachment Content", ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in attachmentIDInput) (*mcp.CallToolResult, any, error) {
		content, err := r.rt.AttachmentContent(ctx, in.AttachmentID)
		if err != nil {
			return r.fail("get_attachment_content", err)
		}
		out := map[string]any{
			"attachment_id":  in.AttachmentID,
			"content_base64": base64.StdEncoding.EncodeToString(content),
			"size_bytes":     len(content),
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "upload_attachment",
		Description: "Upload a file attachment to a ticket; content must be base64 encoded",
		Annotations: &mcp.ToolAnnotations{Title: "Upload Attachment"},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in uploadAttachmentInput) (*mcp.CallToolResult, any, error) {
		content, err := base64.StdEncoding.DecodeString(in.ContentBase64)
		if err != nil {
			return r.fail("upload_attachment", fmt.Errorf("decode content_base64: %w", err))
		}
		out, err := r.rt.UploadAttachment(ctx, in.TicketID, in.Filename, content)
		if err != nil {
			return r.fail("upload_attachment", err)
		}
		return nil, out, nil
	})
}
