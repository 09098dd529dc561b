package export

import (
	"encoding/json"

	"rollcall/internal"
)

func WriteJSON(rows []internal.OutputRow, path string) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return err
	}
	return f.Close()
}
