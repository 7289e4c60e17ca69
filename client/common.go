package client

import (
	"encoding/json"
	"io"
	"log/slog"
)

// ReadJson reads r to the end and unmarshals it into data.
func ReadJson(r io.Reader, data any) error {
	body, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	slog.Debug("[JsonReader] Reading response", "bytes", len(body))
	return json.Unmarshal(body, data)
}
