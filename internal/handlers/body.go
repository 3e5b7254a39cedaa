package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// bodyFields extracts the named fields from a JSON or form-encoded request
// body. JSON numbers are normalized to their decimal string form so the
// validation layer sees the same raw values either way.
func bodyFields(r *http.Request, keys ...string) (map[string]string, error) {
	out := make(map[string]string, len(keys))

	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		var raw map[string]any
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			return nil, err
		}
		for _, k := range keys {
			switch v := raw[k].(type) {
			case nil:
			case string:
				out[k] = v
			case float64:
				out[k] = strconv.FormatFloat(v, 'f', -1, 64)
			default:
				out[k] = fmt.Sprint(v)
			}
		}
		return out, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	for _, k := range keys {
		out[k] = r.PostFormValue(k)
	}
	return out, nil
}
