//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Plays the demo track shipped in testbed/tracks.
func (Run) Demo() error {
	fmt.Println("Run demo...")
	if _, err := executeCmd("go", withArgs("run", "..", "play", "tracks/demo.toml", "--steps", "15"), withDir("testbed"), withStream()); err != nil {
		return err
	}
	return nil
}
