package compression

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glidekv/compression/format"
	"github.com/glidekv/compression/protocol"
)

func TestProcessCommandArgs(t *testing.T) {
	manager := newTestManager(t, NewConfig(format.BackendZstd).WithMinSize(64))

	t.Run("Set value is compressed in place", func(t *testing.T) {
		original := bytes.Repeat([]byte("v"), 200)
		args := [][]byte{[]byte("key"), append([]byte(nil), original...)}

		require.NoError(t, ProcessCommandArgs(args, protocol.Set, manager))

		require.Equal(t, []byte("key"), args[0])
		require.NotEqual(t, original, args[1])

		decompressed, err := manager.DecompressValue(args[1])
		require.NoError(t, err)
		require.Equal(t, original, decompressed)
	})

	t.Run("Missing value argument is skipped", func(t *testing.T) {
		args := [][]byte{[]byte("key")}
		require.NoError(t, ProcessCommandArgs(args, protocol.Set, manager))
		require.Equal(t, [][]byte{[]byte("key")}, args)
	})

	t.Run("Empty argument list is skipped", func(t *testing.T) {
		args := [][]byte{}
		require.NoError(t, ProcessCommandArgs(args, protocol.Set, manager))
		require.Empty(t, args)
	})

	t.Run("Below threshold value unchanged", func(t *testing.T) {
		args := [][]byte{[]byte("key"), []byte("small")}
		require.NoError(t, ProcessCommandArgs(args, protocol.Set, manager))
		require.Equal(t, []byte("small"), args[1])
	})

	t.Run("Nil manager is a no-op", func(t *testing.T) {
		value := bytes.Repeat([]byte("v"), 200)
		args := [][]byte{[]byte("key"), value}
		require.NoError(t, ProcessCommandArgs(args, protocol.Set, nil))
		require.Equal(t, value, args[1])
	})

	t.Run("Disabled manager is a no-op", func(t *testing.T) {
		disabled := newTestManager(t, DisabledConfig())
		value := bytes.Repeat([]byte("v"), 200)
		args := [][]byte{[]byte("key"), value}
		require.NoError(t, ProcessCommandArgs(args, protocol.Set, disabled))
		require.Equal(t, value, args[1])
	})

	t.Run("Ineligible command untouched", func(t *testing.T) {
		value := bytes.Repeat([]byte("v"), 200)
		for _, rt := range []protocol.RequestType{protocol.Del, protocol.MSet, protocol.HSet, protocol.Get} {
			args := [][]byte{[]byte("key"), append([]byte(nil), value...)}
			require.NoError(t, ProcessCommandArgs(args, rt, manager))
			require.Equal(t, value, args[1], "request type %s", rt)
		}
	})
}

func TestProcessResponse(t *testing.T) {
	manager := newTestManager(t, NewConfig(format.BackendZstd).WithMinSize(64))

	t.Run("Nil reply unchanged", func(t *testing.T) {
		out := ProcessResponse(protocol.NilValue(), protocol.Get, manager)
		require.True(t, out.IsNil())
	})

	t.Run("Compressed bulk string is decompressed", func(t *testing.T) {
		original := bytes.Repeat([]byte("payload "), 50)
		compressed, err := manager.CompressValue(original)
		require.NoError(t, err)

		out := ProcessResponse(protocol.BulkStringValue(compressed), protocol.Get, manager)
		require.Equal(t, protocol.BulkStringKind, out.Kind())
		require.Equal(t, original, out.Bytes())
	})

	t.Run("Plain bulk string passes through", func(t *testing.T) {
		plain := []byte("plain stored value")
		out := ProcessResponse(protocol.BulkStringValue(plain), protocol.Get, manager)
		require.Equal(t, plain, out.Bytes())
	})

	t.Run("Simple string reinterpreted as text", func(t *testing.T) {
		original := bytes.Repeat([]byte("status line "), 20)
		compressed, err := manager.CompressValue(original)
		require.NoError(t, err)

		out := ProcessResponse(protocol.SimpleStringValue(string(compressed)), protocol.Get, manager)
		require.Equal(t, protocol.SimpleStringKind, out.Kind())
		require.Equal(t, string(original), out.Text())
	})

	t.Run("Simple string with non-UTF8 payload becomes bulk string", func(t *testing.T) {
		binary := make([]byte, 256)
		for i := range binary {
			binary[i] = byte(i)
		}
		compressed, err := manager.CompressValue(binary)
		require.NoError(t, err)

		out := ProcessResponse(protocol.SimpleStringValue(string(compressed)), protocol.Get, manager)
		require.Equal(t, protocol.BulkStringKind, out.Kind())
		require.Equal(t, binary, out.Bytes())
	})

	t.Run("Other value shapes pass through", func(t *testing.T) {
		values := []protocol.Value{
			protocol.OkayValue(),
			protocol.IntValue(42),
			protocol.ArrayValue(protocol.BulkStringValue([]byte("a")), protocol.NilValue()),
		}
		for _, v := range values {
			out := ProcessResponse(v, protocol.Get, manager)
			require.True(t, v.Equal(out), "value kind %s", v.Kind())
		}
	})

	t.Run("Ineligible command unchanged", func(t *testing.T) {
		compressed, err := manager.CompressValue(bytes.Repeat([]byte("x"), 100))
		require.NoError(t, err)

		v := protocol.BulkStringValue(compressed)
		for _, rt := range []protocol.RequestType{protocol.Set, protocol.MGet, protocol.HGet, protocol.Info} {
			out := ProcessResponse(v, rt, manager)
			require.True(t, v.Equal(out), "request type %s", rt)
		}
	})

	t.Run("Nil manager is a no-op", func(t *testing.T) {
		v := protocol.BulkStringValue([]byte("anything"))
		out := ProcessResponse(v, protocol.Get, nil)
		require.True(t, v.Equal(out))
	})

	t.Run("Disabled manager is a no-op", func(t *testing.T) {
		disabled := newTestManager(t, DisabledConfig())
		compressed, err := manager.CompressValue(bytes.Repeat([]byte("x"), 100))
		require.NoError(t, err)

		v := protocol.BulkStringValue(compressed)
		out := ProcessResponse(v, protocol.Get, disabled)
		require.True(t, v.Equal(out))
	})
}

// TestPipeline_EndToEnd drives a SET through the outgoing adapter and feeds
// the stored bytes back through the incoming adapter, the way a live
// connection would.
func TestPipeline_EndToEnd(t *testing.T) {
	for _, backendType := range []format.BackendType{format.BackendZstd, format.BackendLz4} {
		t.Run(backendType.String(), func(t *testing.T) {
			manager := newTestManager(t, NewConfig(backendType).WithMinSize(64))
			original := bytes.Repeat([]byte("user session payload "), 30)

			args := [][]byte{[]byte("session:1"), append([]byte(nil), original...)}
			require.NoError(t, ProcessCommandArgs(args, protocol.Set, manager))
			require.NotEqual(t, original, args[1])

			// The server stores args[1] verbatim and returns it on GET.
			reply := ProcessResponse(protocol.BulkStringValue(args[1]), protocol.Get, manager)
			require.Equal(t, original, reply.Bytes())
		})
	}
}
