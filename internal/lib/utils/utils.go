// Package utils contains small helpers shared by the commands.
package utils

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// PrintJSON writes v to w as tab-indented JSON followed by a newline.
func PrintJSON(w io.Writer, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return errors.Wrap(err, "marshal json")
	}

	out = append(out, '\n')
	if _, err := w.Write(out); err != nil {
		return errors.Wrap(err, "write json")
	}
	return nil
}
