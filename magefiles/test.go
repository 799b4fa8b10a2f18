//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs the unit tests of every package with the race detector.
func (Test) Unit() error {
	mg.Deps(Test.Tidy)
	_, err := executeCmd("go", withArgs("test", "-race", "-count=1", "./..."), withStream())
	return err
}

// Checks that go.mod and go.sum are up to date.
func (Test) Tidy() error {
	_, err := executeCmd("go", withArgs("mod", "tidy"))
	return err
}
