package types

import "strings"

// RootName returns the package part of a spec name: "Core/UI" -> "Core".
// A root spec is its own root.
func RootName(specName string) string {
	if idx := strings.Index(specName, "/"); idx >= 0 {
		return specName[:idx]
	}
	return specName
}

// PackageSpec identifies the spec a file accessor represents together
// with the platform-resolved consumer settings header mapping consults.
// Subspecs share the root package's name prefix and therefore its header
// namespace.
type PackageSpec struct {
	Name     string
	Consumer Consumer
}

func (s PackageSpec) RootName() string {
	return RootName(s.Name)
}

func (s PackageSpec) IsSubspec() bool {
	return strings.Contains(s.Name, "/")
}

// Segments returns the full name split on "/": the root package followed
// by the subspec chain.
func (s PackageSpec) Segments() []string {
	return strings.Split(s.Name, "/")
}

// Consumer carries the platform-resolved build settings of one spec.
type Consumer struct {
	Platform Platform

	// HeaderDir is an optional sub-path appended to the namespace root
	// before any header of the spec is placed.
	HeaderDir string

	// HeaderMappingsDir is an optional directory, relative to the
	// package root, below which headers keep their directory layout
	// instead of being flattened.
	HeaderMappingsDir string
}
