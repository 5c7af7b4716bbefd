// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package stagingdir builds output files in a private directory and moves
// them into place atomically.
package stagingdir

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// D manages a staging directory.
//
// While D is active, files are built underneath of it. Once finished, a staged
// file can be committed, atomically replacing its destination. Destroy deletes
// the staging directory along with anything left in it.
//
// For Commit to be atomic, the staging directory must be on the same
// filesystem as the destination. Creating it in the destination's directory
// guarantees this.
type D struct {
	// path is the path of the staging directory.
	path string
}

// New creates a new staging directory underneath of parent.
//
// The directory will be created with the specified prefix.
func New(parent, prefix string) (*D, error) {
	stagingPath, err := os.MkdirTemp(parent, prefix)
	if err != nil {
		return nil, err
	}
	return &D{path: stagingPath}, nil
}

// Path builds a path relative to the staging directory from the provided
// components.
func (sd *D) Path(first string, components ...string) string {
	if sd.path == "" {
		panic("staging directory has been destroyed")
	}

	// Common case: one component underneath of staging directory.
	if len(components) == 0 {
		return filepath.Join(sd.path, first)
	}

	comps := make([]string, 0, 2+len(components))
	comps = append(comps, sd.path, first)
	return filepath.Join(append(comps, components...)...)
}

// Create creates a file named name in the staging directory.
func (sd *D) Create(name string) (*os.File, error) {
	return os.Create(sd.Path(name))
}

// Commit atomically moves the staged file name to dest, replacing anything
// already there.
func (sd *D) Commit(name, dest string) error {
	if sd.path == "" {
		return errors.New("invalid staging directory")
	}

	src := sd.Path(name)
	if err := os.Rename(src, dest); err != nil {
		return errors.Wrapf(err, "moving staged file into place (%q => %q)", src, dest)
	}
	return nil
}

// Destroy purges the staging directory and its contents.
//
// Destroy may be called more than once; calls after the first do nothing.
func (sd *D) Destroy() error {
	if sd.path == "" {
		// There is nothing to destroy.
		return nil
	}

	if err := os.RemoveAll(sd.path); err != nil {
		return err
	}

	sd.path = "" // Destroyed.
	return nil
}
