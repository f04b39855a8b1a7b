package main

import (
	"encoding/json"
	"fmt"
	"io"
)

func printJSON(w io.Writer, message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}
