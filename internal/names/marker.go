package names

// DefaultMarkerSuffix is appended to a type name to form its marker type name.
const DefaultMarkerSuffix = "Class"

// MarkerName derives the marker type name for typeName.
// An empty suffix falls back to DefaultMarkerSuffix.
func MarkerName(typeName, suffix string) string {
	if suffix == "" {
		suffix = DefaultMarkerSuffix
	}

	return typeName + suffix
}
