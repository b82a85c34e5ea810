package xform

import (
	"errors"
	"time"
)

var (
	ErrInvalidChoice   = errors.New("invalid choice")
	ErrNonPositive     = errors.New("value must be positive")
	ErrNegative        = errors.New("value must not be negative")
	ErrEmptyList       = errors.New("list must not be empty")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

type Intish interface {
	int | int8 | int16 | int32 | int64 | time.Duration
}

type Uintish interface {
	uint | uint8 | uint16 | uint32 | uint64
}

type Numeric interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64 | int | uint | time.Duration
}
