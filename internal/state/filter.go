package state

import "regexp"

// filterEntries returns the entries whose name matches pattern, in listing
// order. A pattern that does not compile matches everything; the second
// return value is the pattern actually applied.
func filterEntries(entries []FileEntry, pattern string) ([]FileEntry, string, error) {
	if pattern == "" {
		return entries, "", nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return entries, "", err
	}

	filtered := make([]FileEntry, 0, len(entries))
	for _, entry := range entries {
		if re.MatchString(entry.Name) {
			filtered = append(filtered, entry)
		}
	}
	return filtered, pattern, nil
}

func indexOfPath(entries []FileEntry, path string) int {
	for i, entry := range entries {
		if entry.FullPath == path {
			return i
		}
	}
	return -1
}
