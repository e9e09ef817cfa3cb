package nbcheck

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ukaji3/nbcheck-go/pkg/nbcheck/models"
)

// LoadNotebook reads and parses a notebook file.
// It returns the document and the file size in bytes.
func LoadNotebook(path string) (*models.Notebook, int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, newLoadError(path, ErrNotFound, nil)
		}
		return nil, 0, newLoadError(path, ErrRead, err)
	}

	nb, err := ParseNotebook(data)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return nil, 0, err
	}
	return nb, int64(len(data)), nil
}

// ParseNotebook parses notebook JSON content.
func ParseNotebook(data []byte) (*models.Notebook, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, newLoadError("", ErrParse, err)
	}
	if top == nil {
		return nil, newLoadError("", ErrParse, errors.New("document is null"))
	}

	raw, ok := top["cells"]
	if !ok {
		return nil, newLoadError("", ErrSchema, errors.New(`missing "cells" key`))
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, newLoadError("", ErrSchema, errors.New(`"cells" is null`))
	}

	nb := &models.Notebook{}
	if err := json.Unmarshal(raw, &nb.Cells); err != nil {
		return nil, newLoadError("", ErrSchema, fmt.Errorf(`"cells": %w`, err))
	}
	// Format versions are informational; ignore malformed values.
	if v, ok := top["nbformat"]; ok {
		_ = json.Unmarshal(v, &nb.NBFormat)
	}
	if v, ok := top["nbformat_minor"]; ok {
		_ = json.Unmarshal(v, &nb.NBFormatMinor)
	}
	return nb, nil
}
