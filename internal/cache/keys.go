package cache

import "strings"

// Prefix namespaces every key this service writes.
const Prefix = "quizsheet"

// Key joins parts under Prefix with ":". Empty parts are skipped.
func Key(parts ...string) string {
	segments := make([]string, 0, len(parts)+1)
	segments = append(segments, Prefix)
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return strings.Join(segments, ":")
}

// QuizResultKey addresses the metadata of one generation run.
func QuizResultKey(id string) string {
	return Key("quiz", "result", id)
}

// QuizFileKey addresses one rendered table of a run.
func QuizFileKey(id, format string) string {
	return Key("quiz", "file", id, strings.ToLower(format))
}
