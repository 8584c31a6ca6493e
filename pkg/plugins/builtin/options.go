package builtin

// stringOption reads a string option, falling back to def when absent or
// of the wrong type
func stringOption(options map[string]interface{}, key, def string) string {
	if v, ok := options[key].(string); ok && v != "" {
		return v
	}
	return def
}

// boolOption reads a bool option, falling back to def when absent or of
// the wrong type
func boolOption(options map[string]interface{}, key string, def bool) bool {
	if v, ok := options[key].(bool); ok {
		return v
	}
	return def
}
