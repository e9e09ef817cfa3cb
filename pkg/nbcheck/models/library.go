package models

// LibraryStatus describes one configured Python library.
type LibraryStatus struct {
	// Module is the import name (e.g., "sklearn").
	Module string `json:"module"`
	// Pip is the package name to install (e.g., "scikit-learn").
	Pip string `json:"pip"`
	// Required distinguishes required from optional libraries.
	Required bool `json:"required"`
	// Referenced reports whether the notebook source imports the module.
	Referenced bool `json:"referenced"`
	// Installed reports whether the module is importable (nil if not probed).
	Installed *bool `json:"installed,omitempty"`
	// ProbeError holds the probe failure message, if any.
	ProbeError string `json:"probe_error,omitempty"`
}

// Clone returns a copy of s with its own Installed value.
func (s LibraryStatus) Clone() LibraryStatus {
	if s.Installed != nil {
		installed := *s.Installed
		s.Installed = &installed
	}
	return s
}
