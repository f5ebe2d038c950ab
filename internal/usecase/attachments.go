package usecase

import (
	"context"
	"mime"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/runoshun/git-board/internal/board"
	"github.com/runoshun/git-board/internal/domain"
	"github.com/runoshun/git-board/internal/usecase/shared"
)

// AddAttachmentInput contains the metadata of a file to attach.
// Fields are ordered to minimize memory padding.
type AddAttachmentInput struct {
	TaskID string
	Name   string // File name
	Type   string // MIME type (empty = guessed from the extension)
	Author string
	Size   int64 // Size in bytes
}

// AttachmentOutput contains the affected attachment.
type AttachmentOutput struct {
	Attachment domain.Attachment
}

// AddAttachment records file metadata on a task. File contents are not stored.
type AddAttachment struct {
	engine shared.Engine
}

// NewAddAttachment creates a new AddAttachment use case.
func NewAddAttachment(engine shared.Engine) *AddAttachment {
	return &AddAttachment{engine: engine}
}

// Execute adds the attachment.
func (uc *AddAttachment) Execute(_ context.Context, in AddAttachmentInput) (*AttachmentOutput, error) {
	name := strings.TrimSpace(filepath.Base(in.Name))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return nil, domain.ErrEmptyName
	}
	mediaType := in.Type
	if mediaType == "" {
		mediaType = mime.TypeByExtension(filepath.Ext(name))
	}
	if mediaType == "" {
		mediaType = "application/octet-stream"
	}
	author := uc.engine.Author(in.Author)

	out := &AttachmentOutput{}
	err := uc.engine.Update(func(b *board.Board) error {
		task, err := shared.GetTask(b, in.TaskID)
		if err != nil {
			return err
		}
		a := domain.Attachment{
			ID:         b.NewID(),
			Name:       name,
			Type:       mediaType,
			Size:       in.Size,
			Uploader:   author,
			UploadedAt: b.Now(),
		}
		attachments := append(slices.Clone(task.Attachments), a)
		if _, err := b.Update(task.ID, domain.TaskPatch{Attachments: &attachments}); err != nil {
			return err
		}
		out.Attachment = a
		return uc.engine.Record(b, task.ID, domain.EventAttachmentAdded, author, name)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveAttachmentInput identifies an attachment by id, name or 1-based position.
type RemoveAttachmentInput struct {
	TaskID       string
	AttachmentID string
	Author       string
}

// RemoveAttachment deletes attachment metadata from a task.
type RemoveAttachment struct {
	engine shared.Engine
}

// NewRemoveAttachment creates a new RemoveAttachment use case.
func NewRemoveAttachment(engine shared.Engine) *RemoveAttachment {
	return &RemoveAttachment{engine: engine}
}

// Execute removes the attachment.
func (uc *RemoveAttachment) Execute(_ context.Context, in RemoveAttachmentInput) (*AttachmentOutput, error) {
	author := uc.engine.Author(in.Author)

	out := &AttachmentOutput{}
	err := uc.engine.Update(func(b *board.Board) error {
		task, err := shared.GetTask(b, in.TaskID)
		if err != nil {
			return err
		}
		i := slices.IndexFunc(task.Attachments, func(a domain.Attachment) bool {
			return a.ID == in.AttachmentID || a.Name == in.AttachmentID
		})
		if i < 0 {
			i = position(in.AttachmentID, len(task.Attachments))
		}
		if i < 0 {
			return domain.ErrAttachmentNotFound
		}
		removed := task.Attachments[i]
		attachments := slices.Delete(slices.Clone(task.Attachments), i, i+1)
		if _, err := b.Update(task.ID, domain.TaskPatch{Attachments: &attachments}); err != nil {
			return err
		}
		out.Attachment = removed
		return uc.engine.Record(b, task.ID, domain.EventAttachmentRemoved, author, removed.Name)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// position parses a 1-based index into a collection of n items.
// It returns -1 when ref is not a valid position.
func position(ref string, n int) int {
	i, err := strconv.Atoi(ref)
	if err != nil || i < 1 || i > n {
		return -1
	}
	return i - 1
}
