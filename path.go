package fjson

// Path operations over serialized documents. Reads go through gjson
// path expressions and writes through sjson, with the results bridged
// into the Value model by the codec itself.

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Get retrieves the value at a gjson path expression within a JSON
// document. A missing path fails with ErrPathNotFound.
func Get(data []byte, path string) (*Value, error) {
	r := gjson.GetBytes(data, path)
	if !r.Exists() {
		return nil, ErrPathNotFound
	}
	return Loads(r.Raw)
}

// GetMany retrieves several paths in one pass over the document. The
// result slice is parallel to paths; missing paths yield nil entries.
func GetMany(data []byte, paths ...string) ([]*Value, error) {
	results := gjson.GetManyBytes(data, paths...)
	values := make([]*Value, len(results))
	for i, r := range results {
		if !r.Exists() {
			continue
		}
		v, err := Loads(r.Raw)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// Set serializes v and splices it into the document at path, creating
// intermediate objects as needed.
func Set(data []byte, path string, v *Value) ([]byte, error) {
	raw, err := Dumps(v, 0)
	if err != nil {
		return nil, err
	}
	return sjson.SetRawBytes(data, path, []byte(raw))
}

// Delete removes the value at path from the document.
func Delete(data []byte, path string) ([]byte, error) {
	return sjson.DeleteBytes(data, path)
}
