package processdescriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestList(t *testing.T) *DescriptorList {
	t.Helper()

	list, err := NewDescriptorList(&EcosystemConfig{
		Apps: []AppConfig{
			{
				Name:        "DL Gaceta",
				Script:      pythonPath,
				Args:        ArgumentList{"/home/fastapiuser/gacetachat/download_gaceta.py"},
				Interpreter: pythonPath,
				ExecMode:    ExecutionModeFork,
				Watch:       true,
				Env:         map[string]string{"NODE_ENV": "development"},
			},
			{
				Name:     "FastAPIApp",
				Script:   uvicornPath,
				Args:     ArgumentList{"fastapp:app", "--host", "127.0.0.1", "--port", "8050"},
				ExecMode: ExecutionModeCluster,
			},
		},
	})
	require.NoError(t, err)
	return list
}

func TestProcessDescriptor_AccessorsReturnCopies(t *testing.T) {
	list := newTestList(t)

	d, ok := list.Get("DL Gaceta")
	require.True(t, ok)

	args := d.Arguments()
	args[0] = "changed"
	env := d.Environment()
	env["NODE_ENV"] = "production"
	env["EXTRA"] = "1"

	again, _ := list.Get("DL Gaceta")
	assert.Equal(t, []string{"/home/fastapiuser/gacetachat/download_gaceta.py"}, again.Arguments())
	assert.Equal(t, map[string]string{"NODE_ENV": "development"}, again.Environment())
}

func TestProcessDescriptor_DetachedFromConfig(t *testing.T) {
	args := ArgumentList{"--port", "8050"}
	env := map[string]string{"PORT": "8050"}

	list, err := NewDescriptorList(&EcosystemConfig{
		Apps: []AppConfig{{Name: "api", Script: uvicornPath, Args: args, Env: env}},
	})
	require.NoError(t, err)

	args[1] = "9000"
	env["PORT"] = "9000"

	d, _ := list.Get("api")
	assert.Equal(t, []string{"--port", "8050"}, d.Arguments())
	assert.Equal(t, "8050", d.Environment()["PORT"])
}

func TestDescriptorList_DescriptorsIsACopy(t *testing.T) {
	list := newTestList(t)

	descriptors := list.Descriptors()
	descriptors[0] = ProcessDescriptor{}

	assert.Equal(t, []string{"DL Gaceta", "FastAPIApp"}, list.Names())
}

func TestDescriptorList_Get(t *testing.T) {
	list := newTestList(t)

	d, ok := list.Get("FastAPIApp")
	require.True(t, ok)
	assert.Equal(t, ExecutionModeCluster, d.ExecutionMode())
	assert.False(t, d.WatchEnabled())

	_, ok = list.Get("StreamlitApp")
	assert.False(t, ok)
}

func TestProcessDescriptor_String(t *testing.T) {
	list := newTestList(t)
	d, _ := list.Get("FastAPIApp")

	assert.Equal(t, "FastAPIApp ("+uvicornPath+", mode: cluster, watch: false)", d.String())
}
