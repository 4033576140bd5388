package templates

import (
	"strconv"
	"strings"
)

// typeList renders "A0, A1, ..." for n type parameters.
func typeList(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteString("A")
		sb.WriteString(strconv.Itoa(i))
		if i < n-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// signalParams renders "s0 Readable[A0], s1 Readable[A1], ...".
func signalParams(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		idx := strconv.Itoa(i)
		sb.WriteString("s")
		sb.WriteString(idx)
		sb.WriteString(" Readable[A")
		sb.WriteString(idx)
		sb.WriteString("]")
		if i < n-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// fnParams renders "v0 A0, v1 A1, ...".
func fnParams(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		idx := strconv.Itoa(i)
		sb.WriteString("v")
		sb.WriteString(idx)
		sb.WriteString(" A")
		sb.WriteString(idx)
		if i < n-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// callArgs renders "s0.Value(), s1.Value(), ...".
func callArgs(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteString("s")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(".Value()")
		if i < n-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
