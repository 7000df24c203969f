package main

import (
	"io"
	"os"
	"time"

	"go.uber.org/automaxprocs/maxprocs"

	imd1 "github.com/alnah/go-imd1"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now         func() time.Time
	Stdout      io.Writer
	Stderr      io.Writer
	AssetLoader imd1.AssetLoader // nil = embedded assets or --asset-path
	MaxProcs    func(opts ...maxprocs.Option) (func(), error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:      time.Now,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		MaxProcs: maxprocs.Set,
	}
}
