package conv

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Decode copies a loosely typed argument map into the struct pointed to by
// outPtr. Field names come from `json` tags and scalar values are weakly
// coerced (numbers to strings, "true" to bool, ...). Unset fields keep their
// zero value, so pointer fields stay nil when the key is absent.
func Decode(in map[string]interface{}, outPtr interface{}) error {
	if outPtr == nil {
		return fmt.Errorf("conv.Decode: outPtr cannot be nil")
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           outPtr,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(in)
}

// IndentJSON pretty prints raw JSON with two space indentation.
func IndentJSON(data []byte) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return "", err
	}
	return buf.String(), nil
}
