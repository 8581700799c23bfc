package gdialog

import (
	"os"
	"path/filepath"

	"github.com/sqweek/dialog"
)

// returned by OpenFile when the user closes the dialog
var ErrCancelled = dialog.ErrCancelled

type Result struct {
	Path string
	Name string
	Data []byte
}

func OpenFile(title string) (Result, error) {
	path, err := dialog.File().Title(title).Filter("Placement / FEN", "fen", "txt").Load()
	if err != nil {
		return Result{}, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Path: path,
		Name: filepath.Base(path),
		Data: b,
	}, nil
}
