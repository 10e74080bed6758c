package store

import (
	"encoding/json"
	"fmt"
)

// mergePatch overlays the fields present in patch onto rec. Fields absent
// from the patch keep their current values. Callers restore any fields the
// patch is not allowed to change.
func mergePatch(rec any, patch []byte) error {
	if err := json.Unmarshal(patch, rec); err != nil {
		return fmt.Errorf("apply patch: %w", err)
	}
	return nil
}
