package compression

import (
	"unicode/utf8"

	"github.com/glidekv/compression/protocol"
)

// setValueArgIndex is the position of the value in a SET command's argument
// list: [key, value, ...options].
const setValueArgIndex = 1

// ProcessCommandArgs compresses eligible outgoing command arguments in
// place.
//
// For commands classified CompressValues, the value argument at its fixed
// position is replaced with its fail-open compressed form. Everything else
// is a no-op: a nil manager, disabled compression, an ineligible command,
// or an argument list too short to carry a value. Missing arguments are
// never an error here - argument arity is the command builder's concern.
func ProcessCommandArgs(args [][]byte, requestType protocol.RequestType, manager *Manager) error {
	if manager == nil || !manager.IsEnabled() {
		return nil
	}

	if ClassifyCommand(requestType) != CompressValues {
		return nil
	}

	switch requestType {
	case protocol.Set:
		compressValueArg(args, manager, setValueArgIndex)
	}

	return nil
}

// compressValueArg replaces the argument at valueIndex with its fail-open
// compressed form, skipping silently when the argument is missing.
func compressValueArg(args [][]byte, manager *Manager, valueIndex int) {
	if len(args) <= valueIndex {
		return
	}

	args[valueIndex] = manager.TryCompressValue(args[valueIndex])
}

// ProcessResponse decompresses an eligible incoming response value.
//
// For commands classified DecompressValues, BulkString payloads are
// replaced with their fail-open decompressed form, and SimpleString
// payloads are decompressed and reinterpreted as text - falling back to a
// BulkString when the decompressed bytes are not valid UTF-8. Nil replies
// and every other value shape pass through unchanged, as does everything
// when the manager is absent or disabled.
func ProcessResponse(value protocol.Value, requestType protocol.RequestType, manager *Manager) protocol.Value {
	if manager == nil || !manager.IsEnabled() {
		return value
	}

	if ClassifyCommand(requestType) != DecompressValues {
		return value
	}

	if value.IsNil() {
		return value
	}

	switch requestType {
	case protocol.Get:
		return decompressValueResponse(value, manager)
	}

	return value
}

// decompressValueResponse handles a single-value reply.
func decompressValueResponse(value protocol.Value, manager *Manager) protocol.Value {
	switch value.Kind() {
	case protocol.BulkStringKind:
		return protocol.BulkStringValue(manager.TryDecompressValue(value.Bytes()))
	case protocol.SimpleStringKind:
		decompressed := manager.TryDecompressValue([]byte(value.Text()))
		if utf8.Valid(decompressed) {
			return protocol.SimpleStringValue(string(decompressed))
		}

		return protocol.BulkStringValue(decompressed)
	default:
		return value
	}
}
