package lbytes

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// ExecuteInstructions create the final value t with type T by
//
//   - Reading each instruction into a map, then
//   - Creating JSON bytes from the map, and finally
//   - Reading the JSON bytes into t
//
// In order to lessen the burden of manual mapping.
func ExecuteInstructions[T any](instructions []Instruction) (*T, error) {
	tMap := map[string]any{}
	for _, instruction := range instructions {
		value, err := instruction.ReadFunction()
		if err != nil {
			err := errors.Wrapf(err, `ExecuteInstructions error reading key "%v"`, instruction.Key)
			return nil, err
		}
		tMap[instruction.Key] = value
	}
	tBytes, err := json.Marshal(tMap)
	if err != nil {
		err := errors.Wrapf(err, `ExecuteInstructions error marshalling map "%v" to JSON`, tMap)
		return nil, err
	}

	var t T
	if err := json.Unmarshal(tBytes, &t); err != nil {
		err := errors.Wrapf(
			err, `ExecuteInstructions error unmarshalling bytes "%s" to type "%T"`,
			string(tBytes), t,
		)
		return nil, err
	}

	return &t, nil
}

func CreateUint8ReadFunction(reader *Reader) ReadFunction {
	return func() (any, error) {
		return reader.ReadUint8()
	}
}

func CreateInt8ReadFunction(reader *Reader) ReadFunction {
	return func() (any, error) {
		return reader.ReadInt8()
	}
}

func CreateUint16ReadFunction(reader *Reader) ReadFunction {
	return func() (any, error) {
		return reader.ReadUint16()
	}
}

func CreateInt16ReadFunction(reader *Reader) ReadFunction {
	return func() (any, error) {
		return reader.ReadInt16()
	}
}

func CreateInt32ReadFunction(reader *Reader) ReadFunction {
	return func() (any, error) {
		return reader.ReadInt32()
	}
}

func CreateFloat32ReadFunction(reader *Reader) ReadFunction {
	return func() (any, error) {
		return reader.ReadFloat32()
	}
}

// CreateAtReadFunction turns any read function into one that first seeks
// to a fixed offset. SETUP fields live at fixed offsets rather than in
// sequence, which is why the header decoders read this way.
func CreateAtReadFunction(reader *Reader, offset int64, readFunction ReadFunction) ReadFunction {
	return func() (any, error) {
		if err := reader.SeekTo(offset); err != nil {
			return nil, errors.Wrapf(err, "CreateAtReadFunction error seeking to offset %d", offset)
		}
		return readFunction()
	}
}

func CreateUint16AtReadFunction(reader *Reader, offset int64) ReadFunction {
	return CreateAtReadFunction(reader, offset, CreateUint16ReadFunction(reader))
}

func CreateInt16AtReadFunction(reader *Reader, offset int64) ReadFunction {
	return CreateAtReadFunction(reader, offset, CreateInt16ReadFunction(reader))
}

func CreateInt32AtReadFunction(reader *Reader, offset int64) ReadFunction {
	return CreateAtReadFunction(reader, offset, CreateInt32ReadFunction(reader))
}

func CreateUint32AtReadFunction(reader *Reader, offset int64) ReadFunction {
	return CreateAtReadFunction(reader, offset, func() (any, error) {
		return reader.ReadUint32()
	})
}

func CreateFloat32AtReadFunction(reader *Reader, offset int64) ReadFunction {
	return CreateAtReadFunction(reader, offset, CreateFloat32ReadFunction(reader))
}

func CreateStringAtReadFunction(reader *Reader, offset int64, n int) ReadFunction {
	return CreateAtReadFunction(reader, offset, func() (any, error) {
		return reader.ReadString(n)
	})
}
