package yamlpage

import (
	"fmt"
	"os"
	"strconv"
)

// fileExists returns true if path exists and is a regular file
func fileExists(path string) bool {
	st, err := os.Lstat(path)
	return err == nil && st.Mode().IsRegular()
}

func toStr(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if i, ok := v.(int); ok {
		return strconv.Itoa(i)
	}
	return fmt.Sprintf("%v", v)
}

func panicIf(cond bool, format string, args ...any) {
	if !cond {
		return
	}
	panic(fmt.Sprintf(format, args...))
}
