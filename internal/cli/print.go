package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

func printJSON(w io.Writer, data any) error {
	dump, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", dump)
	return err
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "ERROR: %v\n", err)
}
