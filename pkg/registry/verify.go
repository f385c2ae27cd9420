package registry

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Verify checks that every regular expression source compiles and that the tags
// of every enumeration group are pairwise distinct.
func Verify() error {
	var errs []error
	seen := map[string]map[string]string{}

	for _, entry := range entries {
		if entry.Kind.IsRegex() {
			if _, err := regexp.Compile(entry.Value.(string)); err != nil {
				errs = append(errs, fmt.Errorf("%s: invalid pattern: %w", entry.Path, err))
			}
		}

		if entry.Kind == KindEnum {
			group := entry.Path[:strings.LastIndex(entry.Path, ".")]
			value := entry.Value.(string)
			if seen[group] == nil {
				seen[group] = map[string]string{}
			}
			if other, dup := seen[group][value]; dup {
				errs = append(errs, fmt.Errorf("%s: tag %q already used by %s", entry.Path, value, other))
			}
			seen[group][value] = entry.Path
		}
	}

	return errors.Join(errs...)
}
