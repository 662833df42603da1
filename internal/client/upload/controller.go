// Package upload implements the workflow for a single in-flight document
// upload: selection, validation, transfer, and resolution.
package upload

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/docuscope/docuscope-cli/internal/client/api"
	"github.com/docuscope/docuscope-cli/internal/client/collection"
	"github.com/docuscope/docuscope-cli/internal/client/models"
	"github.com/docuscope/docuscope-cli/internal/logging"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// Status of the active upload attempt.
type Status string

const (
	StatusIdle         Status = "idle"
	StatusSelected     Status = "selected"
	StatusValidating   Status = "validating"
	StatusTransferring Status = "transferring"
	StatusSucceeded    Status = "succeeded"
	StatusFailed       Status = "failed"
)

var (
	// ErrInvalidSelection is a local, pre-transfer validation failure:
	// empty selection or an extension outside the accepted set. The
	// extension check is a convenience filter, not a security boundary.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrInvalidState is returned when an operation does not apply to the
	// current status, e.g. Submit without a selection or after a failure.
	ErrInvalidState = errors.New("operation not allowed in current state")

	// ErrUploadInProgress is returned when a selection or submit arrives
	// while a transfer is in flight. Requests are rejected, not queued.
	ErrUploadInProgress = errors.New("an upload is already in progress")
)

const genericTransferDetail = "Upload failed. Please try again."

// Controller owns the single active upload attempt. The state machine is
//
//	Idle → Selected → Transferring → {Succeeded | Failed}
//
// with Reset returning to Idle from any state. A failed attempt cannot be
// re-submitted; the caller resets and selects again (possibly the same
// path). Each attempt carries a fresh identity so a resolution arriving
// after Reset is recognized as stale and dropped.
type Controller struct {
	fs     afero.Fs
	client api.Client
	store  *collection.Store
	logger logging.Logger

	attemptID string
	status    Status
	file      *models.SelectedFile
	errDetail string
	result    *models.DocumentRecord
}

func NewController(fs afero.Fs, client api.Client, store *collection.Store, logger logging.Logger) *Controller {
	return &Controller{
		fs:     fs,
		client: client,
		store:  store,
		logger: logger.With("component", "upload"),
		status: StatusIdle,
	}
}

// SelectFile validates path and starts a new attempt in the Selected state.
// Any prior terminated attempt is discarded. A validation failure leaves
// the controller Idle and issues no network call.
func (c *Controller) SelectFile(path string) error {
	if c.status == StatusTransferring {
		return ErrUploadInProgress
	}

	c.clear()
	c.status = StatusValidating

	if strings.TrimSpace(path) == "" {
		return c.rejectSelection("no file selected")
	}

	mt, ok := models.MediaTypeForPath(path)
	if !ok {
		return c.rejectSelection(fmt.Sprintf("unsupported file type, accepted: %s",
			strings.Join(models.AcceptedExtensions(), ", ")))
	}

	info, err := c.fs.Stat(path)
	if err != nil {
		return c.rejectSelection(fmt.Sprintf("cannot read %s", path))
	}
	if info.IsDir() {
		return c.rejectSelection(fmt.Sprintf("%s is a directory", path))
	}

	c.file = &models.SelectedFile{
		Path:        path,
		Name:        info.Name(),
		SizeBytes:   info.Size(),
		MediaType:   mt,
		ContentType: c.sniffContentType(path),
	}
	c.attemptID = uuid.NewString()
	c.status = StatusSelected
	return nil
}

// Submit transfers the selected file. Exactly one request is issued; no
// automatic retry. On success the acknowledged record is handed to the
// collection store and the attempt ends Succeeded. Resolutions for an
// attempt discarded mid-flight are dropped without touching any state.
func (c *Controller) Submit(ctx context.Context) error {
	switch c.status {
	case StatusSelected:
	case StatusTransferring:
		return ErrUploadInProgress
	default:
		return fmt.Errorf("%w: no file selected", ErrInvalidState)
	}

	attemptID := c.attemptID
	file := c.file
	c.status = StatusTransferring

	rec, err := c.transfer(ctx, file)

	if c.attemptID != attemptID || c.status != StatusTransferring {
		c.logger.Warn(ctx, "dropping stale upload resolution", "attempt", attemptID, "file", file.Name)
		return nil
	}

	if err != nil {
		detail := api.ErrorDetail(err, genericTransferDetail)
		if errors.Is(err, api.ErrMalformedResponse) {
			detail = "The server returned an unexpected response."
		}
		c.status = StatusFailed
		c.errDetail = detail
		c.logger.Error(ctx, "upload failed", "file", file.Name, "error", err)
		return err
	}

	if err := c.store.Ingest(*rec); err != nil {
		c.status = StatusFailed
		c.errDetail = detail(err)
		return err
	}

	c.status = StatusSucceeded
	c.result = rec
	c.logger.Info(ctx, "upload succeeded", "id", rec.ID, "file", rec.Name)
	return nil
}

// Reset discards the current attempt and returns to Idle. A transfer still
// in flight is not aborted, but its eventual resolution is ignored.
func (c *Controller) Reset() {
	c.clear()
}

func (c *Controller) Status() Status                 { return c.status }
func (c *Controller) File() *models.SelectedFile     { return c.file }
func (c *Controller) Result() *models.DocumentRecord { return c.result }
func (c *Controller) ErrorDetail() string            { return c.errDetail }

func (c *Controller) transfer(ctx context.Context, file *models.SelectedFile) (*models.DocumentRecord, error) {
	f, err := c.fs.Open(file.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", file.Path, err)
	}
	defer f.Close()

	return c.client.UploadDocument(ctx, file.Name, file.ContentType, f)
}

func (c *Controller) rejectSelection(reason string) error {
	c.clear()
	return fmt.Errorf("%w: %s", ErrInvalidSelection, reason)
}

func (c *Controller) sniffContentType(path string) string {
	f, err := c.fs.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return ""
	}
	return mt.String()
}

func (c *Controller) clear() {
	c.attemptID = ""
	c.status = StatusIdle
	c.file = nil
	c.errDetail = ""
	c.result = nil
}

func detail(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
