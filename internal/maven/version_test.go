package maven

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVersionProperty(t *testing.T) {
	valid := []string{"spring-boot.version", "java.version", "kotlin", "jakarta-ee10.version"}
	for _, name := range valid {
		p, err := NewVersionProperty(name, true)
		require.NoError(t, err, name)
		assert.Equal(t, name, p.StandardFormat())
		assert.True(t, p.Internal())
	}

	invalid := []string{"", "Spring.Version", "spring..version", "-leading", "trailing.", "with space"}
	for _, name := range invalid {
		_, err := NewVersionProperty(name, false)
		require.ErrorIs(t, err, ErrInvalidVersionProperty, name)
	}
}

func TestMustVersionProperty_Panics(t *testing.T) {
	assert.Panics(t, func() { MustVersionProperty("Bad Name") })
}

func TestVersionProperty_CamelCaseFormat(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "spring-boot.version", want: "springBootVersion"},
		{name: "java.version", want: "javaVersion"},
		{name: "kotlin", want: "kotlin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MustVersionProperty(tt.name).CamelCaseFormat())
		})
	}
}

func TestVersionReference(t *testing.T) {
	literal := VersionOf("1.2.3")
	assert.False(t, literal.IsProperty())
	assert.Equal(t, "1.2.3", literal.Value())
	assert.Equal(t, "1.2.3", literal.String())
	assert.Equal(t, VersionProperty{}, literal.Property())

	prop := VersionOfProperty(MustVersionProperty("spring-cloud.version"))
	assert.True(t, prop.IsProperty())
	assert.Empty(t, prop.Value())
	assert.Equal(t, "${spring-cloud.version}", prop.String())
	assert.Equal(t, "spring-cloud.version", prop.Property().String())

	var missing *VersionReference
	assert.Empty(t, missing.String())
}
