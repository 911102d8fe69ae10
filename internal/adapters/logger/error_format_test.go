package logger_test

import (
	"errors"
	"testing"

	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/logger"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []logger.ErrorEntry
	}{
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: []logger.ErrorEntry{{Message: "boom"}},
		},
		{
			name: "zerr wrap",
			err:  zerr.Wrap(errors.New("inner"), "outer"),
			want: []logger.ErrorEntry{
				{Message: "outer", Metadata: map[string]any{}},
				{Message: "inner"},
			},
		},
		{
			name: "metadata folded into plain cause",
			err:  zerr.With(errors.New("inner"), "id", "42"),
			want: []logger.ErrorEntry{
				{Message: "inner", Metadata: map[string]any{"id": "42"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.CollectErrorEntriesExported(tt.err))
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	got := logger.FormatErrorEntriesExported([]logger.ErrorEntry{
		{Message: "outer", Metadata: map[string]any{"b": 2, "a": "x"}},
		{Message: "middle\nsecond line"},
		{Message: "inner", Metadata: map[string]any{"k": "v"}},
	})

	want := "Error: outer\n" +
		"       a: x\n" +
		"       b: 2\n" +
		"\n" +
		"  Caused by:\n" +
		"    → middle\n" +
		"      second line\n" +
		"    → inner\n" +
		"      k: v"
	assert.Equal(t, want, got)
}
