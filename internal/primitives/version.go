// Package primitives provides versioning utilities for WalkConfig.
package primitives

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"
)

// TranscriptSchemaVersion identifies the transcript file layout. Bump when
// a recorded transcript would no longer load with previous readers.
const TranscriptSchemaVersion = 1

// ComputeVersion computes a version string for a WalkConfig.
// Priority: user-provided config.Version, else SHA256(config JSON)[:8] + timestamp.
func ComputeVersion(config *WalkConfig) string {
	if config.Version != "" {
		return config.Version
	}

	data, err := json.Marshal(config)
	if err != nil {
		// Fallback (should not happen for valid config)
		return fmt.Sprintf("invalid-%d", time.Now().Unix())
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x-%s", hash[:8], time.Now().UTC().Format("20060102T150405Z"))
}
