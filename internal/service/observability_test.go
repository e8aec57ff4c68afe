package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/mindful/internal/db"
	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver_WritesStructuredRecord(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "reset-all",
		Duration: 3 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"deleted": 4},
	})

	out := buf.String()
	assert.Contains(t, out, "msg=service_use_case")
	assert.Contains(t, out, "use_case=reset-all")
	assert.Contains(t, out, "deleted=4")
	assert.Contains(t, out, "level=INFO")
}

func TestLogUseCaseObserver_StorageErrorAddsOp(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	err := db.WriteError("deleting meditation sessions", errors.New("locked"))
	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "reset-all", Err: err})

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "storage_op=write")
	assert.Contains(t, out, "locked")
}

func TestNewLogUseCaseObserver_NilWriterIsNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
	assert.IsType(t, NoopUseCaseObserver{}, NewSlogUseCaseObserver(nil))
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
	rec := &recordingObserver{}
	assert.Same(t, rec, useCaseObserverOrNoop([]UseCaseObserver{nil, rec}))
}
