package services

import (
	"strings"
)

// CleanSubmission prepares a submitted field→value map for the backend.
//
// Blank values are dropped: nil, strings that are empty after trimming, and
// empty lists. The literal strings "true" and "false" become booleans.
// Everything else, including 0 and false, is passed through untouched so the
// backend can coerce it against the column type.
func CleanSubmission(payload map[string]interface{}) map[string]interface{} {
	clean := make(map[string]interface{}, len(payload))
	for key, value := range payload {
		switch v := value.(type) {
		case nil:
			continue
		case string:
			if strings.TrimSpace(v) == "" {
				continue
			}
			switch v {
			case "true":
				clean[key] = true
			case "false":
				clean[key] = false
			default:
				clean[key] = v
			}
		case []interface{}:
			if len(v) == 0 {
				continue
			}
			clean[key] = v
		default:
			clean[key] = v
		}
	}
	return clean
}
