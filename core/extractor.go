package core

import (
	"context"
	"io"
)

// TextExtractor is any service that can turn a raw document (PDF) into plain text.
type TextExtractor interface {
	ExtractText(ctx context.Context, doc io.Reader) (string, error)
}
