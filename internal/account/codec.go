package account

import (
	"bytes"
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"
)

// Codec turns values into bytes and back. It is used for the account file
// and for the credential payload handed to the CredentialStore.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// JSONCodec writes indented JSON.
type JSONCodec struct{}

func (JSONCodec) Marshal(v any) ([]byte, error) { return json.MarshalIndent(v, "", "  ") }

func (JSONCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// MsgpackCodec writes MessagePack. Struct fields are named by their json
// tags so the same types serve both codecs.
type MsgpackCodec struct{}

func (MsgpackCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	enc.SetSortMapKeys(true)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (MsgpackCodec) Unmarshal(data []byte, v any) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	return dec.Decode(v)
}

var (
	_ Codec = JSONCodec{}
	_ Codec = MsgpackCodec{}
)
