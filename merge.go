package matter

// Merge deep-merges any number of override maps over base, left to right,
// and returns a new map. A key is merged recursively only when both the
// accumulated value and the override value are maps; in every other case the
// override value replaces the existing one outright, so lists are replaced,
// never concatenated. Merge never mutates base or any override; nested merge
// results are newly allocated maps. A nil base yields an empty map, and
// Merge with a single argument is a copy.
func Merge(base map[string]any, overrides ...map[string]any) map[string]any {
	merged := make(map[string]any, len(base))
	for key, value := range base {
		merged[key] = value
	}

	for _, override := range overrides {
		for key, value := range override {
			existing, haveMap := merged[key].(map[string]any)
			incoming, isMap := value.(map[string]any)
			if haveMap && isMap {
				merged[key] = Merge(existing, incoming)
				continue
			}
			merged[key] = value
		}
	}
	return merged
}
