package compression

import "github.com/glidekv/compression/protocol"

// CommandBehavior categorizes a command by how the compression layer treats
// its values.
type CommandBehavior uint8

const (
	// NoCompression applies to commands that do not involve value
	// compression or decompression (deletions, existence checks, admin).
	NoCompression CommandBehavior = iota

	// CompressValues applies to commands that send a value to the server
	// and should compress it first.
	CompressValues

	// DecompressValues applies to commands that retrieve a value from the
	// server and should decompress it on arrival.
	DecompressValues
)

func (b CommandBehavior) String() string {
	switch b {
	case CompressValues:
		return "CompressValues"
	case DecompressValues:
		return "DecompressValues"
	default:
		return "NoCompression"
	}
}

// Description returns a human-readable description of the behavior.
func (b CommandBehavior) Description() string {
	switch b {
	case CompressValues:
		return "Compress values before sending to server"
	case DecompressValues:
		return "Decompress values after receiving from server"
	default:
		return "No compression processing required"
	}
}

// ClassifyCommand maps a command identifier to its compression behavior.
//
// The function is total over the closed protocol.RequestType set: the
// single-value SET compresses, the single-value GET decompresses, and every
// other command - multi-key variants, field operations, admin commands -
// passes through untouched. Extending coverage to further value-bearing
// command families only grows this table; the pipeline adapters stay
// unchanged.
func ClassifyCommand(requestType protocol.RequestType) CommandBehavior {
	switch requestType {
	case protocol.Set:
		return CompressValues
	case protocol.Get:
		return DecompressValues
	default:
		return NoCompression
	}
}
