package staging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/trip-planner/pkg/errors"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func TestStageImageMissing(t *testing.T) {
	_, err := StageImage(nil)
	require.True(t, apperrors.IsCode(err, apperrors.CodeMissingInput))

	_, err = StageImage(&RawImage{Filename: "empty.png", DeclaredType: "image/png"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeMissingInput))
}

func TestStageImageTypes(t *testing.T) {
	tests := []struct {
		name     string
		declared string
		data     []byte
		want     string
		wantCode string
	}{
		{name: "declared png", declared: "image/png", data: []byte("not really checked"), want: "image/png"},
		{name: "jpg alias", declared: "image/jpg", data: []byte{0xff, 0xd8, 0xff}, want: "image/jpeg"},
		{name: "declared with params", declared: "image/jpeg; charset=binary", data: []byte{0xff, 0xd8, 0xff}, want: "image/jpeg"},
		{name: "sniffed when generic", declared: "application/octet-stream", data: pngHeader, want: "image/png"},
		{name: "sniffed when absent", declared: "", data: pngHeader, want: "image/png"},
		{name: "unsupported", declared: "text/plain", data: []byte("hello world"), wantCode: apperrors.CodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := StageImage(&RawImage{Filename: " photo ", DeclaredType: tt.declared, Data: tt.data})
			if tt.wantCode != "" {
				require.True(t, apperrors.IsCode(err, tt.wantCode))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, img.MIMEType)
			require.Equal(t, "photo", img.Filename)
			require.Equal(t, len(tt.data), img.Size())
		})
	}
}

func TestStageText(t *testing.T) {
	require.Equal(t, "", StageText(""))
	require.Equal(t, "  Goa for 3 days ", StageText("  Goa for 3 days "))
}

func TestStageDate(t *testing.T) {
	loc := time.FixedZone("IST", 5*60*60+30*60)
	now := time.Date(2024, 3, 9, 20, 0, 0, 0, time.UTC) // 01:30 on the 10th in IST

	today, err := StageDate("", now, loc)
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, loc), today)

	chosen, err := StageDate(" 2024-01-01 ", now, loc)
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, loc), chosen)

	_, err = StageDate("01/01/2024", now, loc)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}
