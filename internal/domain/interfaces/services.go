package interfaces

import (
	"context"
	"io"
)

//go:generate mockgen -destination=../mocks/suite.go -package=mocks cryptodemo/internal/domain/interfaces Suite

// Suite is a long-running routine dispatched from the menu. A nil error
// means return code 0.
type Suite interface {
	Run(ctx context.Context) error
}

// Terminal is the serial side of the menu: a blocking single-selection read
// and fire-and-forget writes.
type Terminal interface {
	io.Writer
	// ReadSelection blocks until a byte other than CR or LF arrives.
	ReadSelection() (byte, error)
}
