package processdescriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessDescriptor_Argv(t *testing.T) {
	list := newTestList(t)

	download, ok := list.Get("DL Gaceta")
	require.True(t, ok)
	assert.Equal(t, []string{pythonPath, pythonPath, "/home/fastapiuser/gacetachat/download_gaceta.py"}, download.Argv())

	api, ok := list.Get("FastAPIApp")
	require.True(t, ok)
	assert.Equal(t, []string{uvicornPath, "fastapp:app", "--host", "127.0.0.1", "--port", "8050"}, api.Argv())
}

func TestProcessDescriptor_ArgvDoesNotAlias(t *testing.T) {
	list := newTestList(t)
	api, _ := list.Get("FastAPIApp")

	argv := api.Argv()
	argv[1] = "changed"

	assert.Equal(t, "fastapp:app", api.Arguments()[0])
}

func TestProcessDescriptor_Environ(t *testing.T) {
	list, err := NewDescriptorList(&EcosystemConfig{Apps: []AppConfig{
		{
			Name:   "api",
			Script: uvicornPath,
			Env: map[string]string{
				"NODE_ENV": "development",
				"PORT":     "8050",
				"APP_NAME": "gaceta",
			},
		},
		{
			Name:   "bare",
			Script: "/bin/true",
		},
	}})
	require.NoError(t, err)

	base := []string{"HOME=/home/fastapiuser", "NODE_ENV=production", "WEIRD", "NODE_ENV=again", "PATH=/usr/bin"}

	api, _ := list.Get("api")
	assert.Equal(t, []string{
		"HOME=/home/fastapiuser",
		"NODE_ENV=development",
		"WEIRD",
		"PATH=/usr/bin",
		"APP_NAME=gaceta",
		"PORT=8050",
	}, api.Environ(base))

	bare, _ := list.Get("bare")
	assert.Equal(t, base, bare.Environ(base))

	assert.Equal(t, []string{"APP_NAME=gaceta", "NODE_ENV=development", "PORT=8050"}, api.Environ(nil))
}
