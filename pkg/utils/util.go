package utils

import (
	"bytes"
	"fmt"
	"regexp"
	"runtime"
	"strconv"
	"strings"
)

var nonWordRe = regexp.MustCompile(`\W+`)

// UsernameBase 由邮箱前缀（或昵称）推导用户名
func UsernameBase(email, name string) string {
	if local, _, ok := strings.Cut(email, "@"); ok && local != "" {
		if base := strings.ToLower(nonWordRe.ReplaceAllString(local, "")); base != "" {
			return base
		}
	}
	return strings.ToLower(strings.Join(strings.Fields(name), ""))
}

// UsernameCandidate 第 n 个候选用户名：john, john1, john2 ...
func UsernameCandidate(base string, n int) string {
	if n == 0 {
		return base
	}
	return base + strconv.Itoa(n)
}

func PanicTrace(err interface{}) string {
	buf := new(bytes.Buffer)
	fmt.Fprintf(buf, "%v\n", err)
	for i := 2; ; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		fmt.Fprintf(buf, "%s:%d (0x%x)\n", file, line, pc)
	}
	return buf.String()
}
