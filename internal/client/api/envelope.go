package api

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CodeOK is the only envelope code that means success.
const CodeOK = 200

// Envelope wraps every server response. Data is kept raw and decoded on
// demand.
type Envelope struct {
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Data    jsoniter.RawMessage `json:"data"`
}

// Decode unmarshals env.Data into T. Missing or null data yields the zero
// value.
func Decode[T any](env *Envelope) (T, error) {
	var v T
	if env == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return v, nil
	}
	if err := json.Unmarshal(env.Data, &v); err != nil {
		return v, fmt.Errorf("decode response data: %w", err)
	}
	return v, nil
}
