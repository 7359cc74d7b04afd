//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the demo against the sample scene.
func (Run) Demo() error {
	fmt.Println("Run demo...")
	if _, err := executeCmd("go", withArgs("run", "./cmd/demo", "-scene", "assets/demo_scene.toml"), withStream()); err != nil {
		return err
	}
	return nil
}
