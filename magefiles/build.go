//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Builds every package in the module.
func (Build) All() error {
	if _, err := executeCmd("go", withArgs("build", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}

// Builds the demo binary.
func (Build) Demo() error {
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/demo", "./cmd/demo"), withStream()); err != nil {
		return err
	}
	return nil
}
