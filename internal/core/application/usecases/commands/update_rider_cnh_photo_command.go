package commands

import (
	"errors"
	"fmt"
	"strings"

	"rentmoto/internal/core/domain/model/kernel"
	"rentmoto/internal/pkg/errs"
	"rentmoto/internal/pkg/guard"
)

var ErrUpdateRiderCNHPhotoCommandIsNotConstructed = errors.New(
	"UpdateRiderCNHPhotoCommand must be created via NewUpdateRiderCNHPhotoCommand constructor",
)

// UpdateRiderCNHPhotoCommand represents a request to attach a license photo
// to a rider. The content is the decoded image bytes; the file name must
// carry a supported extension so the format check happens before anything is
// written to storage.
type UpdateRiderCNHPhotoCommand struct { //nolint:recvcheck //using for validation
	riderID  kernel.ID
	content  []byte
	fileName string

	guard guard.ConstructorGuard
}

// NewUpdateRiderCNHPhotoCommand creates a command to update a rider's license photo.
func NewUpdateRiderCNHPhotoCommand(
	riderID kernel.ID, content []byte, fileName string,
) (UpdateRiderCNHPhotoCommand, error) {
	cmd := UpdateRiderCNHPhotoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRiderID(riderID),
		cmd.setContent(content),
		cmd.setFileName(fileName),
	); err != nil {
		return UpdateRiderCNHPhotoCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRiderCNHPhotoCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRiderCNHPhotoCommandIsNotConstructed)
}

// RiderID returns the rider's identifier.
func (c UpdateRiderCNHPhotoCommand) RiderID() kernel.ID {
	return c.riderID
}

// Content returns the decoded image bytes.
func (c UpdateRiderCNHPhotoCommand) Content() []byte {
	return c.content
}

// FileName returns the target file name.
func (c UpdateRiderCNHPhotoCommand) FileName() string {
	return c.fileName
}

func (c *UpdateRiderCNHPhotoCommand) setRiderID(riderID kernel.ID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}

func (c *UpdateRiderCNHPhotoCommand) setContent(content []byte) error {
	if len(content) == 0 {
		return errs.NewValueIsRequiredError("content")
	}

	c.content = content
	return nil
}

func (c *UpdateRiderCNHPhotoCommand) setFileName(fileName string) error {
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return errs.NewValueIsRequiredError("fileName")
	}

	lower := strings.ToLower(fileName)
	if !strings.HasSuffix(lower, ".png") && !strings.HasSuffix(lower, ".bmp") {
		return errs.NewValueIsInvalidErrorWithCause("fileName",
			fmt.Errorf("%q must end in .png or .bmp", fileName))
	}

	c.fileName = fileName
	return nil
}
