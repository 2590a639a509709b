package processor

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Checksum returns the sha256 hex digest of the output content. The
// publisher compares it against the previous run to detect "no changes"
// and skip releasing.
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// WriteChecksum stores the digest next to the artifact in the
// conventional "<hex>  <name>" form.
func WriteChecksum(artifactPath, sum string) error {
	path := artifactPath + ".sha256"
	line := fmt.Sprintf("%s  %s\n", sum, filepath.Base(artifactPath))
	return os.WriteFile(path, []byte(line), 0644)
}

// PreviousChecksum reads the digest left by the last run, if any.
func PreviousChecksum(artifactPath string) (string, bool) {
	data, err := os.ReadFile(artifactPath + ".sha256")
	if err != nil {
		return "", false
	}
	sum, _, _ := strings.Cut(strings.TrimSpace(string(data)), " ")
	return sum, sum != ""
}
