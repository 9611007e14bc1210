package processdescriptor

import (
	"context"

	"github.com/core-tools/hsu-procdesc-go/pkg/errors"
	"github.com/core-tools/hsu-procdesc-go/pkg/logging"
)

// Supervisor spawns, monitors and restarts the described processes.
// Restart policy, file watching and log capture are its concern.
type Supervisor interface {
	Supervise(ctx context.Context, descriptors []ProcessDescriptor) error
}

// HandOff passes the validated descriptors to the supervisor. The list is
// not referenced after the call returns.
func HandOff(ctx context.Context, list *DescriptorList, supervisor Supervisor, logger logging.Logger) error {
	if list == nil {
		return errors.NewValidationError("descriptor list cannot be nil", nil)
	}
	if supervisor == nil {
		return errors.NewValidationError("supervisor cannot be nil", nil)
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	if err := ctx.Err(); err != nil {
		return errors.NewInternalError("hand-off cancelled", err)
	}

	logger.Infof("Handing process descriptors to supervisor, count: %d", list.Len())
	for _, d := range list.descriptors {
		logger.Debugf("Process descriptor: %s", d)
	}

	if err := supervisor.Supervise(ctx, list.Descriptors()); err != nil {
		logger.Errorf("Supervisor rejected process descriptors: %v", err)
		return errors.NewInternalError("supervisor failed", err)
	}

	return nil
}
