package utils

import "strings"

// ResolvePublicURL turns a stored file path into a public URL under base.
// Absolute URLs pass through untouched. A leading "storage/" is dropped first
// because older rows were saved with the public prefix already applied.
func ResolvePublicURL(raw, base string) *string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return &raw
	}

	path := strings.TrimLeft(raw, "/")
	path = strings.TrimPrefix(path, "storage/")

	url := JoinURL(base, path)
	return &url
}

func JoinURL(base, path string) string {
	if base == "" {
		return path
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
