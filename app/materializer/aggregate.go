package materializer

import (
	"fmt"
	"os"
	"strings"
)

// ImportLine builds the aggregate entry for one style file, e.g.
// `@import "heroBanner/heroBanner";` followed by a newline.
func ImportLine(directive, folderName, styleFileName string) string {
	return fmt.Sprintf("%s \"%s/%s\";\n", directive, folderName, styleFileName)
}

// AppendImport returns existing with line appended, unless line is already
// contained in existing. The boolean reports whether anything changed.
func AppendImport(existing, line string) (string, bool) {
	delta, changed := importDelta(existing, line)
	return existing + delta, changed
}

// importDelta is the text AppendImport adds to existing. A newline is put
// in front of line when existing does not already end with one.
func importDelta(existing, line string) (string, bool) {
	if strings.Contains(existing, line) {
		return "", false
	}
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		return "\n" + line, true
	}
	return line, true
}

// UpdateAggregate applies AppendImport to the file at path. The file must
// already exist. Only the new text is appended, so the existing imports are
// never rewritten.
func UpdateAggregate(path, line string) (updated bool, err error) {
	current, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	delta, changed := importDelta(string(current), line)
	if !changed {
		return false, nil
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return false, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if _, err := f.WriteString(delta); err != nil {
		return false, err
	}
	return true, nil
}
