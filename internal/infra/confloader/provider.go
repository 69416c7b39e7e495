// Package confloader provides configuration loading mechanism.
package confloader

import "errors"

// ErrMapProviderNoBytes is returned when ReadBytes is called on a map
// provider, which has no serialized form to hand back.
var ErrMapProviderNoBytes = errors.New("confloader: map provider has no byte representation, call Read instead")

// mapProvider is a koanf provider backed by an in-memory map, used by
// Loader.LoadMap to inject configuration (flag overrides in tests, or
// values decoded from a hot-reload event) without round-tripping
// through a file.
//
// koanf.Provider accepts either ReadBytes() or Read(); map-backed
// providers only implement Read().
type mapProvider map[string]any

func (m mapProvider) ReadBytes() ([]byte, error) {
	return nil, ErrMapProviderNoBytes
}

func (m mapProvider) Read() (map[string]any, error) {
	return m, nil
}

