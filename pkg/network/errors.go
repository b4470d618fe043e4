package network

import "errors"

var (
	ErrSelfLoop      = errors.New("self loop")
	ErrDuplicateEdge = errors.New("duplicate edge")
	ErrUnknownNode   = errors.New("unknown node")
	ErrInvalidWeight = errors.New("edge weight must be positive")
	ErrDuplicateNode = errors.New("duplicate node name")
	ErrNilStore      = errors.New("nil cardinal store")
)
