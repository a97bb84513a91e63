package takeout

import (
	"takeout/internal/fileutil"
	"takeout/internal/jsonvalue"
	"takeout/internal/services"
)

const indentUnit = "  "

// WriteJSON renders v with two-space indentation and writes it to path,
// creating parent directories and truncating any existing file.
func WriteJSON(path string, v jsonvalue.Value) error {
	data, err := jsonvalue.MarshalIndent(v, indentUnit)
	if err != nil {
		return services.Wrap(services.ErrFilesystem, "write", "encode", path, err)
	}
	if err := fileutil.WriteFile(path, data); err != nil {
		return services.Wrap(services.ErrFilesystem, "write", "save", path, err)
	}
	return nil
}

// UnwrapItems returns the items member of an object, or v itself when there
// is none.
func UnwrapItems(v jsonvalue.Value) jsonvalue.Value {
	if items, ok := v.Get("items"); ok {
		return items
	}
	return v
}
