package validation

import "errors"

// ErrPayloadTooLarge is returned when the request body exceeds size limits
var ErrPayloadTooLarge = errors.New("payload too large")

// ErrInvalidMimeType is returned when an uploaded file has a disallowed MIME type
var ErrInvalidMimeType = errors.New("invalid MIME type")

// ErrNotAnImage is returned when an uploaded file can't be decoded as an image
var ErrNotAnImage = errors.New("file is not a valid image")

// ErrInvalidMultipart is returned when the body is not a parseable multipart form
var ErrInvalidMultipart = errors.New("invalid multipart form")
