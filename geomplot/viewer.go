// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"
)

// viewerCommand returns the command that opens path with viewer.
func viewerCommand(viewer, path string) (*exec.Cmd, error) {
	args, err := shellquote.Split(viewer)
	if err != nil {
		return nil, fmt.Errorf("bad viewer command %q: %w", viewer, err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("empty viewer command")
	}
	args = append(args, path)
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	return cmd, nil
}

// openViewer starts viewer on path and does not wait for it to exit.
func openViewer(viewer, path string) error {
	cmd, err := viewerCommand(viewer, path)
	if err != nil {
		return err
	}
	return cmd.Start()
}
