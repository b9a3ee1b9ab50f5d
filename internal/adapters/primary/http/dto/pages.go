package dto

import "aivault-portal/internal/core/services"

// DirectoryResponse keeps the page renderable when the listing itself failed.
type DirectoryResponse struct {
	*services.DirectoryPage
	Error string `json:"error,omitempty"`
}

type PrefetchRequest struct {
	Paths []string `json:"paths"`
}

type PrefetchResponse struct {
	Accepted int `json:"accepted"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
