package processdescriptor

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/core-tools/hsu-procdesc-go/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSupervisor struct {
	received []ProcessDescriptor
	err      error
}

func (s *recordingSupervisor) Supervise(ctx context.Context, descriptors []ProcessDescriptor) error {
	s.received = descriptors
	return s.err
}

func TestHandOff(t *testing.T) {
	list := newTestList(t)
	supervisor := &recordingSupervisor{}

	err := HandOff(context.Background(), list, supervisor, &TestLogger{})
	require.NoError(t, err)

	require.Len(t, supervisor.received, 2)
	assert.Equal(t, list.Descriptors(), supervisor.received)

	// The supervisor owns its copy
	supervisor.received[0] = ProcessDescriptor{}
	assert.Equal(t, []string{"DL Gaceta", "FastAPIApp"}, list.Names())
}

func TestHandOff_SupervisorError(t *testing.T) {
	cause := stderrors.New("spawn failed")
	supervisor := &recordingSupervisor{err: cause}

	err := HandOff(context.Background(), newTestList(t), supervisor, nil)
	require.Error(t, err)
	assert.True(t, errors.IsInternalError(err))
	assert.ErrorIs(t, err, cause)
}

func TestHandOff_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	supervisor := &recordingSupervisor{}
	err := HandOff(ctx, newTestList(t), supervisor, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, supervisor.received)
}

func TestHandOff_NilArguments(t *testing.T) {
	err := HandOff(context.Background(), nil, &recordingSupervisor{}, nil)
	assert.True(t, errors.IsValidationError(err))

	err = HandOff(context.Background(), newTestList(t), nil, nil)
	assert.True(t, errors.IsValidationError(err))
}
