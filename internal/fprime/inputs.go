package fprime

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Artifact file name suffixes. The part before the suffix is the application
// name and must match between the two files.
const (
	DictionarySuffix = "TopologyDictionary.json"
	PacketsSuffix    = "Packets.xml"
)

// ErrInputNotFound is returned when a required artifact is missing.
var ErrInputNotFound = errors.New("input file not found")

// Inputs are the artifact paths of one deployment.
type Inputs struct {
	DictionaryPath string
	PacketsPath    string
	// Name is the application name shared by both files; it becomes the MDB name.
	Name string
}

// FindInputs locates <app>TopologyDictionary.json in artifactsDir and
// <app>Packets.xml in topologyDir.
func FindInputs(artifactsDir, topologyDir string) (*Inputs, error) {
	dictPath, dictName, err := findBySuffix(artifactsDir, DictionarySuffix)
	if err != nil {
		return nil, err
	}

	packetsPath, packetsName, err := findBySuffix(topologyDir, PacketsSuffix)
	if err != nil {
		return nil, err
	}

	if dictName != packetsName {
		return nil, fmt.Errorf("%s and %s should have the same base name (application name)",
			filepath.Base(dictPath), filepath.Base(packetsPath))
	}

	return &Inputs{
		DictionaryPath: dictPath,
		PacketsPath:    packetsPath,
		Name:           dictName,
	}, nil
}

// findBySuffix returns the first file (in directory order) whose name ends in suffix.
func findBySuffix(dir, suffix string) (string, string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", "", fmt.Errorf("reading directory %s: %w", dir, err)
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), suffix) {
			continue
		}

		return filepath.Join(dir, e.Name()), strings.TrimSuffix(e.Name(), suffix), nil
	}

	return "", "", fmt.Errorf("%w: directory %s must contain a *%s file", ErrInputNotFound, dir, suffix)
}
