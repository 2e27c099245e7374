//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/cracgen/internal/domain/entities"
)

func TestParseProject(t *testing.T) {
	t.Parallel()

	t.Run("should split package and name", func(t *testing.T) {
		t.Parallel()

		// when
		project, err := entities.ParseProject("com.example.hello-world")

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.Project{
			PackageName:  "com.example",
			Name:         "hello-world",
			ClassName:    "HelloWorld",
			PropertyName: "helloWorld",
			NaturalName:  "Hello World",
		}, project)
		assert.Equal(t, "com/example", project.PackagePath())
	})

	t.Run("should use a bare name as its own package", func(t *testing.T) {
		t.Parallel()

		// when
		project, err := entities.ParseProject("Demo-App")

		// then
		require.NoError(t, err)
		assert.Equal(t, "demoapp", project.PackageName)
		assert.Equal(t, "Demo-App", project.Name)
		assert.Equal(t, "DemoApp", project.ClassName)
	})

	t.Run("should keep upper case letters inside words", func(t *testing.T) {
		t.Parallel()

		// when
		project, err := entities.ParseProject("com.example.myAPI")

		// then
		require.NoError(t, err)
		assert.Equal(t, "MyAPI", project.ClassName)
		assert.Equal(t, "myAPI", project.PropertyName)
	})

	t.Run("should reject names outside the allowed characters", func(t *testing.T) {
		t.Parallel()

		for _, input := range []string{"", "com.example.my app", "com/example/demo", "demo!"} {
			// when
			_, err := entities.ParseProject(input)

			// then
			assert.Error(t, err, input)
		}
	})

	t.Run("should reject empty package segments", func(t *testing.T) {
		t.Parallel()

		for _, input := range []string{".demo", "com..demo", "com.example."} {
			// when
			_, err := entities.ParseProject(input)

			// then
			assert.Error(t, err, input)
		}
	})

	t.Run("should reject package segments that are not identifiers", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.ParseProject("com.1example.demo")

		// then
		assert.Error(t, err)
	})
}

func TestNewBadProjectNameError(t *testing.T) {
	t.Parallel()

	t.Run("should carry status 400 and the parse failure", func(t *testing.T) {
		t.Parallel()

		// given
		_, parseErr := entities.ParseProject("my app")

		// when
		err := entities.NewBadProjectNameError(parseErr)

		// then
		assert.Equal(t, 400, err.StatusCode())
		assert.Contains(t, err.Error(), "Invalid project name")
		assert.ErrorIs(t, err, parseErr)
		assert.True(t, entities.IsBadRequest(err))
	})
}
