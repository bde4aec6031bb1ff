// Package staging normalizes raw user input into the shapes the provider adapters expect.
package staging

import (
	"mime"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	apperrors "github.com/yanqian/trip-planner/pkg/errors"
	"github.com/yanqian/trip-planner/pkg/util"
)

const dateLayout = "2006-01-02"

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
}

var imageTypeAliases = map[string]string{
	"image/jpg":   "image/jpeg",
	"image/pjpeg": "image/jpeg",
	"image/x-png": "image/png",
}

// StageImage validates an upload. A nil or empty upload is a missing_input error.
func StageImage(raw *RawImage) (UploadedImage, error) {
	if raw == nil || len(raw.Data) == 0 {
		return UploadedImage{}, apperrors.Wrap(apperrors.CodeMissingInput, "no file is uploaded", nil)
	}

	mimeType := normalizeImageType(raw.DeclaredType)
	if !isAllowedImageType(mimeType) {
		mimeType = normalizeImageType(mimetype.Detect(raw.Data).String())
	}
	if !isAllowedImageType(mimeType) {
		return UploadedImage{}, apperrors.Wrap(apperrors.CodeInvalidInput, "image must be a JPEG or PNG file", nil)
	}

	return UploadedImage{
		Filename: strings.TrimSpace(raw.Filename),
		MIMEType: mimeType,
		Data:     raw.Data,
	}, nil
}

// StageText passes free text through untouched. Empty input is allowed.
func StageText(raw string) string {
	return raw
}

// StageDate resolves a YYYY-MM-DD date in loc, defaulting to today.
func StageDate(raw string, now time.Time, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return util.StartOfDay(now, loc), nil
	}
	parsed, err := time.ParseInLocation(dateLayout, trimmed, loc)
	if err != nil {
		return time.Time{}, apperrors.Wrap(apperrors.CodeInvalidInput, "date must be formatted as YYYY-MM-DD", err)
	}
	return parsed, nil
}

func normalizeImageType(declared string) string {
	declared = strings.ToLower(strings.TrimSpace(declared))
	if declared == "" {
		return ""
	}
	if parsed, _, err := mime.ParseMediaType(declared); err == nil {
		declared = parsed
	}
	if alias, ok := imageTypeAliases[declared]; ok {
		return alias
	}
	return declared
}

func isAllowedImageType(mimeType string) bool {
	_, ok := allowedImageTypes[mimeType]
	return ok
}
