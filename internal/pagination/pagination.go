// Package pagination normalizes client paging parameters into bounded
// query descriptors and translates store pages back to the wire shape.
// Clients speak 1-based page numbers; the store speaks 0-based indexes.
package pagination

import (
	"strings"

	"laundry/internal/domain"
)

const (
	DefaultPage      = 1
	DefaultSize      = 10
	DefaultSortBy    = "id"
	DefaultDirection = "DESC"
)

// Fixed validation messages, reported one at a time (first rule that
// fails wins).
const (
	MsgPageInvalid      = "Page must be a non-negative integer higher than 0."
	MsgSizeInvalid      = "Size must be a positive integer."
	MsgDirectionInvalid = "Direction must be ASC or DESC"
)

// Request is a fully resolved paging descriptor: every field has a
// concrete value once Normalize returns.
type Request struct {
	Page      int
	Size      int
	SortBy    string
	Direction string
}

// Offset converts the 1-based page into the store's row offset.
func (r Request) Offset() int {
	return (r.Page - 1) * r.Size
}

// Normalize applies defaults for missing inputs and validates the rest.
// SortBy is passed through untouched; the store decides whether the
// column exists. Rules run in order page, size, direction.
func Normalize(page, size *int, sortBy, direction string) (Request, error) {
	req := Request{
		Page:      DefaultPage,
		Size:      DefaultSize,
		SortBy:    strings.TrimSpace(sortBy),
		Direction: strings.ToUpper(strings.TrimSpace(direction)),
	}
	if page != nil {
		req.Page = *page
	}
	if size != nil {
		req.Size = *size
	}
	if req.SortBy == "" {
		req.SortBy = DefaultSortBy
	}
	if req.Direction == "" {
		req.Direction = DefaultDirection
	}

	if req.Page <= 0 {
		return Request{}, domain.ValidationError{Field: "page", Msg: MsgPageInvalid}
	}
	if req.Size <= 0 {
		return Request{}, domain.ValidationError{Field: "size", Msg: MsgSizeInvalid}
	}
	if req.Direction != "ASC" && req.Direction != "DESC" {
		return Request{}, domain.ValidationError{Field: "direction", Msg: MsgDirectionInvalid}
	}
	return req, nil
}

// Page is what the store hands back: Number is the store's 0-based
// page index.
type Page[T any] struct {
	Items         []T
	Number        int
	Size          int
	TotalPages    int
	TotalElements int64
}

// Response is the client-facing page. PageNumber is always the 1-based
// translation of the store index.
type Response[T any] struct {
	Content       []T   `json:"content"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
	PageSize      int   `json:"pageSize"`
	PageNumber    int   `json:"pageNumber"`
	Empty         bool  `json:"empty"`
	Last          bool  `json:"last"`
	First         bool  `json:"first"`
}

// ToResponse maps a store page into the wire shape, converting each
// item through mapper.
func ToResponse[T, U any](p Page[T], mapper func(T) U) Response[U] {
	content := make([]U, 0, len(p.Items))
	for _, item := range p.Items {
		content = append(content, mapper(item))
	}
	return Response[U]{
		Content:       content,
		TotalPages:    p.TotalPages,
		TotalElements: p.TotalElements,
		PageSize:      p.Size,
		PageNumber:    p.Number + 1,
		Empty:         len(p.Items) == 0,
		Last:          p.Number+1 >= p.TotalPages,
		First:         p.Number == 0,
	}
}
