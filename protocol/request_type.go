// Package protocol carries the command and response types the compression
// layer plugs into: the closed set of command identifiers and the tagged
// wire value a response arrives as.
//
// The compression layer only reads these types; it never constructs
// commands or parses the wire itself.
package protocol

// RequestType identifies the command a client is about to send. The set is
// closed: the classifier in the compression package is total over it.
type RequestType int

const (
	InvalidRequest RequestType = iota
	CustomCommand

	// String commands
	Set
	Get
	MSet
	MSetNX
	MGet
	SetNX
	SetEx
	SetRange
	GetEx
	GetDel
	GetRange
	GetSet
	Append
	Strlen
	Incr
	Decr

	// Hash commands
	HSet
	HGet
	HMSet
	HMGet
	HGetAll
	HDel
	HExists

	// List commands
	LPush
	RPush
	LPop
	RPop
	LRange
	LLen

	// Set commands
	SAdd
	SRem
	SMembers
	SPop
	SCard

	// Sorted set commands
	ZAdd
	ZRem
	ZRange
	ZScore
	ZCard

	// Stream commands
	XAdd
	XRead
	XLen

	// HyperLogLog commands
	PfAdd
	PfCount

	// Geospatial commands
	GeoAdd
	GeoPos

	// JSON commands
	JsonSet
	JsonGet

	// Generic commands
	Del
	Exists
	Expire
	Persist
	TTL
	Type
	Rename

	// Connection management commands
	Ping
	Echo
	Auth
	Select

	// Server management commands
	Info
	ConfigGet
	ConfigSet
	DBSize
	FlushAll

	// Transaction commands
	Multi
	Exec
	Discard
	Watch
	Unwatch
)

var requestTypeNames = map[RequestType]string{
	InvalidRequest: "InvalidRequest",
	CustomCommand:  "CustomCommand",
	Set:            "SET",
	Get:            "GET",
	MSet:           "MSET",
	MSetNX:         "MSETNX",
	MGet:           "MGET",
	SetNX:          "SETNX",
	SetEx:          "SETEX",
	SetRange:       "SETRANGE",
	GetEx:          "GETEX",
	GetDel:         "GETDEL",
	GetRange:       "GETRANGE",
	GetSet:         "GETSET",
	Append:         "APPEND",
	Strlen:         "STRLEN",
	Incr:           "INCR",
	Decr:           "DECR",
	HSet:           "HSET",
	HGet:           "HGET",
	HMSet:          "HMSET",
	HMGet:          "HMGET",
	HGetAll:        "HGETALL",
	HDel:           "HDEL",
	HExists:        "HEXISTS",
	LPush:          "LPUSH",
	RPush:          "RPUSH",
	LPop:           "LPOP",
	RPop:           "RPOP",
	LRange:         "LRANGE",
	LLen:           "LLEN",
	SAdd:           "SADD",
	SRem:           "SREM",
	SMembers:       "SMEMBERS",
	SPop:           "SPOP",
	SCard:          "SCARD",
	ZAdd:           "ZADD",
	ZRem:           "ZREM",
	ZRange:         "ZRANGE",
	ZScore:         "ZSCORE",
	ZCard:          "ZCARD",
	XAdd:           "XADD",
	XRead:          "XREAD",
	XLen:           "XLEN",
	PfAdd:          "PFADD",
	PfCount:        "PFCOUNT",
	GeoAdd:         "GEOADD",
	GeoPos:         "GEOPOS",
	JsonSet:        "JSON.SET",
	JsonGet:        "JSON.GET",
	Del:            "DEL",
	Exists:         "EXISTS",
	Expire:         "EXPIRE",
	Persist:        "PERSIST",
	TTL:            "TTL",
	Type:           "TYPE",
	Rename:         "RENAME",
	Ping:           "PING",
	Echo:           "ECHO",
	Auth:           "AUTH",
	Select:         "SELECT",
	Info:           "INFO",
	ConfigGet:      "CONFIG GET",
	ConfigSet:      "CONFIG SET",
	DBSize:         "DBSIZE",
	FlushAll:       "FLUSHALL",
	Multi:          "MULTI",
	Exec:           "EXEC",
	Discard:        "DISCARD",
	Watch:          "WATCH",
	Unwatch:        "UNWATCH",
}

func (r RequestType) String() string {
	if name, ok := requestTypeNames[r]; ok {
		return name
	}

	return "InvalidRequest"
}
