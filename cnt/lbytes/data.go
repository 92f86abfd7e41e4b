package lbytes

import (
	"io"
)

type (
	Reader struct {
		source io.ReadSeeker
	}
	Instruction struct {
		Key          string
		ReadFunction ReadFunction
	}
	ReadFunction func() (any, error)
)
