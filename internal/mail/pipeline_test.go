package mail

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPipeline(t *testing.T, sender Sender, cfg PipelineConfig) *Pipeline {
	t.Helper()
	if cfg.From == "" {
		cfg.From = "magnus@citchennai.net"
	}
	return NewPipeline(NewDispatcher(sender, nil), cfg, nil)
}

func TestPipeline_Run_ProgressSequence(t *testing.T) {
	var progress []int
	sender := &stubSender{}
	pipeline := newTestPipeline(t, sender, PipelineConfig{
		BatchSize: 40,
		OnProgress: func(done, total int) {
			progress = append(progress, done*100/total)
		},
	})

	report, err := pipeline.Run(context.Background(), "Hi", "Hello ${1}", makeRows(100))
	require.NoError(t, err)

	// 100 rows at batch size 40: progress reports 40%, 80%, then 100% only
	// after the final batch settles.
	assert.Equal(t, []int{40, 80, 100}, progress)
	assert.Equal(t, 100, report.Total)
	assert.Equal(t, 100, report.Sent)
	assert.Zero(t, report.Failed)
	assert.Equal(t, 100, sender.sentCount())
}

func TestPipeline_Run_AggregatesPerRecipientFailures(t *testing.T) {
	sender := &stubSender{
		fail: map[string]error{
			"user3@x.com":  errors.New("rejected"),
			"user47@x.com": errors.New("rejected"),
		},
	}
	pipeline := newTestPipeline(t, sender, PipelineConfig{BatchSize: 40})

	report, err := pipeline.Run(context.Background(), "Hi", "Hello", makeRows(60))
	require.NoError(t, err, "individual failures must not fail the campaign")

	assert.Equal(t, 60, report.Total)
	assert.Equal(t, 58, report.Sent)
	assert.Equal(t, 2, report.Failed)
	require.Len(t, report.Failures, 2)
	failed := []string{report.Failures[0].To, report.Failures[1].To}
	assert.ElementsMatch(t, []string{"user3@x.com", "user47@x.com"}, failed)
}

func TestPipeline_Run_FiltersEmptyRowsAndCells(t *testing.T) {
	sender := &stubSender{}
	pipeline := newTestPipeline(t, sender, PipelineConfig{BatchSize: 40})

	rows := []Recipient{
		{"a@x.com", "", "Alice"},
		{"", ""},
		{"b@x.com"},
	}
	report, err := pipeline.Run(context.Background(), "Hi", "Hello ${1}", rows)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 2, report.Sent)
}

func TestPipeline_Run_EmptyRecipientSet(t *testing.T) {
	pipeline := newTestPipeline(t, &stubSender{}, PipelineConfig{BatchSize: 40})
	report, err := pipeline.Run(context.Background(), "Hi", "Hello", nil)
	require.NoError(t, err)
	assert.Zero(t, report.Total)
}

func TestPipeline_Run_MissingAttachmentFailsBeforeDispatch(t *testing.T) {
	sender := &stubSender{}
	pipeline := newTestPipeline(t, sender, PipelineConfig{
		BatchSize:      40,
		AttachmentPath: filepath.Join(t.TempDir(), "missing.pdf"),
	})

	_, err := pipeline.Run(context.Background(), "Hi", "Hello", makeRows(3))
	require.Error(t, err)
	assert.Zero(t, sender.sentCount(), "no email may be sent when no email can be safely built")
}

func TestPipeline_Run_AttachmentModeBuildsRawEmails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brochure.pdf")
	require.NoError(t, os.WriteFile(path, []byte("pdf-bytes"), 0o600))

	var raws atomic.Int32
	sender := senderFunc(func(ctx context.Context, email *Email) error {
		if email.Raw != nil {
			raws.Add(1)
		}
		return nil
	})
	pipeline := newTestPipeline(t, sender, PipelineConfig{BatchSize: 40, AttachmentPath: path})

	report, err := pipeline.Run(context.Background(), "Hi", "Hello", makeRows(3))
	require.NoError(t, err)
	assert.Equal(t, 3, report.Sent)
	assert.Equal(t, int32(3), raws.Load())
}

func TestPipeline_RunCSV(t *testing.T) {
	sender := &stubSender{}
	pipeline := newTestPipeline(t, sender, PipelineConfig{BatchSize: 40})

	report, err := pipeline.RunCSV(context.Background(), "Hi", "Hello ${1}",
		strings.NewReader("a@x.com,Alice\n\nb@x.com,Bob\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, report.Sent)
}

func TestPipeline_RunCSV_ParseErrorSendsNothing(t *testing.T) {
	sender := &stubSender{}
	pipeline := newTestPipeline(t, sender, PipelineConfig{BatchSize: 40})

	_, err := pipeline.RunCSV(context.Background(), "Hi", "Hello",
		strings.NewReader("a@x.com,\"Alice\nb@x.com,Bob"))
	require.Error(t, err)
	assert.Zero(t, sender.sentCount())
}

// senderFunc adapts a function to the Sender interface. The dispatcher calls
// it concurrently, so implementations guard their own state.
type senderFunc func(ctx context.Context, email *Email) error

func (f senderFunc) Send(ctx context.Context, email *Email) error { return f(ctx, email) }
