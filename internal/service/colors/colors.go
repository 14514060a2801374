// Package colors derives a deterministic HSL color pair from a repository
// name, used to visually group pull requests by repository.
package colors

import "fmt"

// Pair is a background/foreground HSL color pair sharing one hue.
type Pair struct {
	Background string `json:"background"`
	Foreground string `json:"foreground"`
}

// ForRepo maps a repository name to a color pair. The hash is the classic
// polynomial string hash folded in signed 32-bit arithmetic; the wraparound
// is part of the contract so that the same name yields the same hue across
// runs and ports. Non-cryptographic: distinct names may collide.
func ForRepo(name string) Pair {
	var hash int32
	for _, cp := range name {
		hash = cp + (hash<<5 - hash)
	}

	h := int64(hash)
	if h < 0 {
		h = -h
	}
	hue := h % 360

	return Pair{
		Background: fmt.Sprintf("hsl(%d, 80%%, 90%%)", hue),
		Foreground: fmt.Sprintf("hsl(%d, 80%%, 30%%)", hue),
	}
}
