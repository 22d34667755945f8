// File: server/codec.go
package server

import (
	"net/http"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/net/websocket"
)

// MsgpackCodec sends values as binary msgpack frames.
var MsgpackCodec = websocket.Codec{Marshal: msgpackMarshal, Unmarshal: msgpackUnmarshal}

func msgpackMarshal(v interface{}) ([]byte, byte, error) {
	data, err := msgpack.Marshal(v)
	return data, websocket.BinaryFrame, err
}

func msgpackUnmarshal(data []byte, _ byte, v interface{}) error {
	return msgpack.Unmarshal(data, v)
}

// codecFor picks the frame codec from the handshake's ?codec= parameter.
func codecFor(r *http.Request) (websocket.Codec, string) {
	if r != nil && r.URL.Query().Get("codec") == "msgpack" {
		return MsgpackCodec, "msgpack"
	}
	return websocket.JSON, "json"
}
