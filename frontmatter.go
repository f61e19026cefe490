package mdview

import "strings"

// stripFrontMatter removes a leading metadata block delimited by ---,
// +++ or ;;; lines. The opener must be the first line, the second line
// must look like metadata, and a matching closing delimiter must exist;
// otherwise the lines pass through untouched, which keeps a document
// that simply opens with a horizontal rule intact.
func stripFrontMatter(lines []string) []string {
	if len(lines) < 3 {
		return lines
	}
	delim, ok := frontMatterDelimiter(lines[0])
	if !ok {
		return lines
	}
	if !frontMatterMetadataLikely(lines[1]) {
		return lines
	}
	for i := 2; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == delim {
			return lines[i+1:]
		}
	}
	return lines
}

func frontMatterDelimiter(line string) (string, bool) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(line, "\ufeff"))
	switch trimmed {
	case "---", "+++", ";;;":
		return trimmed, true
	default:
		return "", false
	}
}

func frontMatterMetadataLikely(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return true
	}
	return strings.Contains(trimmed, ":") || strings.Contains(trimmed, "=")
}
