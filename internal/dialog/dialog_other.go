//go:build !windows

package dialog

import "errors"

func browseForFolder(title string) (string, error) {
	return "", errors.New("folder dialog not supported on this platform")
}
