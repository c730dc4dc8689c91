/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package project

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/mattn/go-shellwords"
)

// Editor returns the user's editor command from $VISUAL or $EDITOR.
func Editor() string {
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	return os.Getenv("EDITOR")
}

// EditorCommand splits a shell-style editor command such as
// `code --wait` and appends paths to it.
func EditorCommand(editor string, paths ...string) ([]string, error) {
	args, err := shellwords.Parse(editor)
	if err != nil {
		return nil, fmt.Errorf("error parsing editor command %q: %w", editor, err)
	}
	if len(args) == 0 {
		return nil, ErrNoEditor
	}
	return append(args, paths...), nil
}

// Open runs editor on paths attached to the current terminal.
func Open(ctx context.Context, editor string, paths ...string) error {
	argv, err := EditorCommand(editor, paths...)
	if err != nil {
		return err
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("error running %s: %w", argv[0], err)
	}
	return nil
}
