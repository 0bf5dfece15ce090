package thumbnail

import (
	"strings"

	"github.com/samber/lo"
)

// SupportedExtensions lists the lowercase suffixes of entries that qualify
// as thumbnail sources.
var SupportedExtensions = []string{".png", ".jpg", ".jpeg", ".webp"}

// IsSupportedImage reports whether the lowercased name ends with one of
// SupportedExtensions.
func IsSupportedImage(name string) bool {
	lower := strings.ToLower(name)
	return lo.SomeBy(SupportedExtensions, func(ext string) bool {
		return strings.HasSuffix(lower, ext)
	})
}

// SelectEntry returns the first qualifying name in the given order.
// The order is never re-sorted.
func SelectEntry(names []string) (string, bool) {
	return lo.Find(names, IsSupportedImage)
}
