// Package validation contains input validation helpers shared by handlers
// and services.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var groupSlugRegex = regexp.MustCompile(`^[a-z0-9_-]{1,50}$`)

var reservedGroupSlugs = map[string]struct{}{
	"admin":   {},
	"api":     {},
	"auth":    {},
	"about":   {},
	"follow":  {},
	"groups":  {},
	"posts":   {},
	"users":   {},
	"metrics": {},
	"login":   {},
	"signup":  {},
	"new":     {},
}

// ValidateGroupSlug validates group slug format and reserved names.
func ValidateGroupSlug(slug string) error {
	if !groupSlugRegex.MatchString(slug) {
		return fmt.Errorf("slug must be 1-50 characters and contain only lowercase letters, numbers, hyphens, and underscores")
	}

	if strings.HasPrefix(slug, "-") || strings.HasSuffix(slug, "-") {
		return fmt.Errorf("slug cannot start or end with a hyphen")
	}

	if _, exists := reservedGroupSlugs[slug]; exists {
		return fmt.Errorf("slug is reserved")
	}

	return nil
}
