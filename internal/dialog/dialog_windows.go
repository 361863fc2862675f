//go:build windows

package dialog

import (
	"fmt"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// browseForFolder shows the Shell.Application folder picker and returns the
// chosen path.
func browseForFolder(title string) (string, error) {
	ole.CoInitialize(0)
	defer ole.CoUninitialize()

	unknown, err := oleutil.CreateObject("Shell.Application")
	if err != nil {
		return "", fmt.Errorf("creating shell object: %w", err)
	}
	defer unknown.Release()

	shell, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return "", fmt.Errorf("getting IDispatch interface: %w", err)
	}
	defer shell.Release()

	// 0x10 = BIF_EDITBOX: let the user paste a path directly.
	folderObj, err := oleutil.CallMethod(shell, "BrowseForFolder", 0, title, 0x10)
	if err != nil {
		return "", fmt.Errorf("showing folder dialog: %w", err)
	}
	if folderObj.Value() == nil {
		return "", fmt.Errorf("folder selection cancelled")
	}
	folderItem := folderObj.ToIDispatch()
	if folderItem == nil {
		return "", fmt.Errorf("folder selection cancelled")
	}
	defer folderItem.Release()

	selfProp, err := oleutil.GetProperty(folderItem, "Self")
	if err != nil {
		return "", fmt.Errorf("getting folder item: %w", err)
	}
	selfDispatch := selfProp.ToIDispatch()
	defer selfDispatch.Release()

	pathProp, err := oleutil.GetProperty(selfDispatch, "Path")
	if err != nil {
		return "", fmt.Errorf("getting folder path: %w", err)
	}
	path := pathProp.ToString()
	if path == "" {
		return "", fmt.Errorf("no folder selected")
	}
	return path, nil
}
