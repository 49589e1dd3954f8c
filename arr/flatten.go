package arr

// Flatten recursively flattens nested []any values into a single slice.
func Flatten(items []any) []any {
	return FlattenDepth(items, -1)
}

// FlattenDepth flattens nested []any values up to depth levels.
// A negative depth flattens without limit; depth 0 returns a copy.
func FlattenDepth(items []any, depth int) []any {
	result := make([]any, 0, len(items))
	for _, item := range items {
		nested, ok := item.([]any)
		if !ok || depth == 0 {
			result = append(result, item)
			continue
		}
		result = append(result, FlattenDepth(nested, depth-1)...)
	}
	return result
}
