package maven_test

import (
	"testing"

	"github.com/arthur-debert/genhooks/pkg/errors"
	"github.com/arthur-debert/genhooks/pkg/maven"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pom = `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
  <modelVersion>4.0.0</modelVersion>
  <parent>
    <groupId>org.springframework.boot</groupId>
    <artifactId>spring-boot-starter-parent</artifactId>
    <version>3.2.5</version>
  </parent>
  <groupId>com.example</groupId>
  <artifactId>orders</artifactId>
  <version>1.0.0-SNAPSHOT</version>
  <dependencies>
    <dependency>
      <groupId>org.projectlombok</groupId>
      <artifactId>lombok</artifactId>
    </dependency>
  </dependencies>
</project>
`

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		pom      string
		expected maven.Coordinates
	}{
		{
			name:     "declared",
			pom:      pom,
			expected: maven.Coordinates{GroupID: "com.example", ArtifactID: "orders", Version: "1.0.0-SNAPSHOT"},
		},
		{
			name: "inherits from parent",
			pom: `<project>
  <parent><groupId>mx.gob.vucem</groupId><artifactId>bom</artifactId><version> 2.1 </version></parent>
  <artifactId>componente</artifactId>
</project>`,
			expected: maven.Coordinates{GroupID: "mx.gob.vucem", ArtifactID: "componente", Version: "2.1"},
		},
		{
			name:     "no parent",
			pom:      `<project><artifactId>solo</artifactId></project>`,
			expected: maven.Coordinates{ArtifactID: "solo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coords, err := maven.ParseCoordinates([]byte(tt.pom))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, *coords)
		})
	}
}

func TestParseCoordinatesErrors(t *testing.T) {
	tests := []struct {
		name string
		pom  string
	}{
		{name: "malformed", pom: "<project><artifactId>x</project>"},
		{name: "wrong root", pom: "<settings/>"},
		{name: "no artifact", pom: "<project><groupId>g</groupId></project>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := maven.ParseCoordinates([]byte(tt.pom))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
		})
	}
}

func TestReadCoordinates(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/project/pom.xml", []byte(pom), 0644))

	coords, err := maven.ReadCoordinates(fs, "/project/pom.xml")
	require.NoError(t, err)
	assert.Equal(t, "com.example:orders:1.0.0-SNAPSHOT", coords.String())

	_, err = maven.ReadCoordinates(fs, "/missing/pom.xml")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileRead))
}
