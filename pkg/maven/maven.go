// Package maven reads project coordinates from a generated pom.xml
package maven

import (
	"strings"

	"github.com/arthur-debert/genhooks/pkg/errors"
	"github.com/beevik/etree"
	"github.com/spf13/afero"
)

// PomFile is the build descriptor name at the project root
const PomFile = "pom.xml"

// Coordinates identifies a Maven artifact
type Coordinates struct {
	GroupID    string
	ArtifactID string
	Version    string
}

// String returns groupId:artifactId:version
func (c Coordinates) String() string {
	return c.GroupID + ":" + c.ArtifactID + ":" + c.Version
}

// ReadCoordinates parses the pom at path. groupId and version fall back to
// the <parent> element when the project does not declare them.
func ReadCoordinates(fs afero.Fs, path string) (*Coordinates, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", path).
			WithDetail("path", path)
	}
	return ParseCoordinates(data)
}

// ParseCoordinates extracts the coordinates from pom content
func ParseCoordinates(data []byte) (*Coordinates, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid pom.xml")
	}

	project := doc.SelectElement("project")
	if project == nil {
		return nil, errors.New(errors.ErrConfigParse, "pom.xml has no <project> element")
	}

	coords := &Coordinates{
		GroupID:    childText(project, "groupId"),
		ArtifactID: childText(project, "artifactId"),
		Version:    childText(project, "version"),
	}

	if parent := project.SelectElement("parent"); parent != nil {
		if coords.GroupID == "" {
			coords.GroupID = childText(parent, "groupId")
		}
		if coords.Version == "" {
			coords.Version = childText(parent, "version")
		}
	}

	if coords.ArtifactID == "" {
		return nil, errors.New(errors.ErrConfigParse, "pom.xml declares no artifactId")
	}
	return coords, nil
}

func childText(el *etree.Element, tag string) string {
	child := el.SelectElement(tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}
