package platform

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"aivault-portal/internal/core/domain"
	ports "aivault-portal/internal/core/ports/output"
)

// UploadMedia posts a multipart form to /media/upload. The boundary content type replaces
// the JSON header the other calls send.
func (c *Client) UploadMedia(ctx context.Context, up ports.Upload) (*domain.MediaAsset, error) {
	if !up.MediaType.Valid() {
		return nil, domain.ErrInvalidMediaType
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("business_id", up.BusinessID.String()); err != nil {
		return nil, fmt.Errorf("write business_id field: %w", err)
	}
	if err := w.WriteField("media_type", string(up.MediaType)); err != nil {
		return nil, fmt.Errorf("write media_type field: %w", err)
	}
	part, err := w.CreateFormFile("file", up.Filename)
	if err != nil {
		return nil, fmt.Errorf("create file part: %w", err)
	}
	if _, err := io.Copy(part, up.Content); err != nil {
		return nil, fmt.Errorf("copy upload content: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	body, err := c.send(ctx, http.MethodPost, "/media/upload", &buf, w.FormDataContentType())
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx)

	var asset domain.MediaAsset
	if err := decode(body, &asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

func (c *Client) GetMedia(ctx context.Context, id uuid.UUID) (*domain.MediaAsset, error) {
	return getJSON[domain.MediaAsset](ctx, c, "/media/"+id.String())
}

func (c *Client) ListMedia(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]domain.MediaAsset, error) {
	return getList[domain.MediaAsset](ctx, c, MediaListPath(businessID, limit, offset))
}

func (c *Client) DeleteMedia(ctx context.Context, id uuid.UUID) error {
	return c.Mutate(ctx, http.MethodDelete, "/media/"+id.String(), nil, nil)
}

// MediaURL turns the relative url stored on an asset into one a browser can load.
func (c *Client) MediaURL(relative string) string {
	if strings.HasPrefix(relative, "http://") || strings.HasPrefix(relative, "https://") {
		return relative
	}
	return c.URL(relative)
}
