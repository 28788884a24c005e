// Package services defines the business logic for counters, chat records,
// and the image gallery. This file centralizes common service-level error
// values so that they can be consistently returned by service methods and
// checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the handler
// layer.
package services

import "errors"

var (
	// ErrRecordNotFound indicates that the requested chat record does not
	// exist.
	ErrRecordNotFound = errors.New("chat record not found")

	// ErrMissingFields is returned when a chat record is created without a
	// title or without content.
	ErrMissingFields = errors.New("title and content are required")

	// ErrMissingImageURL is returned when a gallery image is created without
	// an image URL.
	ErrMissingImageURL = errors.New("image URL is required")

	// ErrMissingImageData is returned when a base64 upload carries no payload.
	ErrMissingImageData = errors.New("no image data provided")

	// ErrInvalidImageData is returned when a base64 payload cannot be decoded.
	ErrInvalidImageData = errors.New("invalid base64 image data")

	// ErrUnsupportedImageType is returned when an uploaded file declares a
	// mime type outside the accepted image set.
	ErrUnsupportedImageType = errors.New("unsupported image type, allowed: jpeg, png, gif, webp")
)
