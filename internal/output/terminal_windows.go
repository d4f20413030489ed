//go:build windows

package output

import "golang.org/x/term"

func systemTerminalWidth(fd uintptr) (int, bool) {
	width, _, err := term.GetSize(int(fd))
	if err != nil || width <= 0 {
		return 0, false
	}

	return width, true
}
