package mail

import (
	"context"
	"io"

	"go.uber.org/zap"
)

// ProgressFunc receives the cumulative row count after each batch settles.
// done/total is monotonically non-decreasing and reaches total only after the
// final batch.
type ProgressFunc func(done, total int)

// Pipeline drives one campaign end to end: parse recipients, chunk them into
// batches, render and compose per row, and dispatch each batch with
// best-effort semantics. Batches run strictly sequentially, so at most one
// batch's worth of sends is in flight against the provider at any instant.
type Pipeline struct {
	dispatcher     *Dispatcher
	logger         *zap.Logger
	from           string
	fromName       string
	attachmentPath string
	batchSize      int
	onProgress     ProgressFunc
}

// PipelineConfig carries the campaign-independent configuration.
type PipelineConfig struct {
	From           string
	FromName       string
	AttachmentPath string // optional; enables attachment (raw MIME) mode
	BatchSize      int
	OnProgress     ProgressFunc
}

// NewPipeline creates a pipeline over the given dispatcher.
func NewPipeline(dispatcher *Dispatcher, cfg PipelineConfig, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	size := cfg.BatchSize
	if size < 1 {
		size = DefaultBatchSize
	}
	return &Pipeline{
		dispatcher:     dispatcher,
		logger:         logger,
		from:           cfg.From,
		fromName:       cfg.FromName,
		attachmentPath: cfg.AttachmentPath,
		batchSize:      size,
		onProgress:     cfg.OnProgress,
	}
}

// RunCSV parses the uploaded recipient file and runs the campaign. A parse
// error fails the invocation before any send is attempted.
func (p *Pipeline) RunCSV(ctx context.Context, subject, body string, upload io.Reader) (*Report, error) {
	rows, err := ParseRecipients(upload)
	if err != nil {
		return nil, err
	}
	return p.Run(ctx, subject, body, rows)
}

// Run sends the campaign to the given recipient rows. The attachment, if
// configured, is read once here; a missing file fails the invocation before
// any dispatch. Individual recipient failures are collected into the report
// and never abort the remaining batches.
func (p *Pipeline) Run(ctx context.Context, subject, body string, rows []Recipient) (*Report, error) {
	rows = dropEmptyRows(rows)
	report := &Report{Total: len(rows)}
	if len(rows) == 0 {
		return report, nil
	}

	var attachment *Attachment
	if p.attachmentPath != "" {
		var err error
		attachment, err = LoadAttachment(p.attachmentPath)
		if err != nil {
			return nil, err
		}
	}
	composer := NewComposer(p.from, p.fromName, attachment)

	batches := Chunk(rows, p.batchSize)
	p.logger.Info("starting campaign",
		zap.Int("recipients", len(rows)),
		zap.Int("batches", len(batches)),
		zap.Int("batch_size", p.batchSize))

	processed := 0
	for i, batch := range batches {
		emails := make([]*Email, 0, len(batch))
		for _, row := range batch {
			email, err := composer.Compose(subject, body, row)
			if err != nil {
				return nil, err
			}
			emails = append(emails, email)
		}

		outcomes := p.dispatcher.Dispatch(ctx, emails)
		for _, outcome := range outcomes {
			if outcome.OK() {
				report.Sent++
			} else {
				report.Failed++
				report.Failures = append(report.Failures, outcome)
			}
		}

		processed += len(batch)
		if p.onProgress != nil {
			p.onProgress(processed, len(rows))
		}
		p.logger.Info("batch settled",
			zap.Int("batch", i+1),
			zap.Int("processed", processed),
			zap.Int("total", len(rows)),
			zap.Int("failed_so_far", report.Failed))
	}

	return report, nil
}

// dropEmptyRows filters empty cells per row and discards rows left with no
// cells, mirroring what CSV parsing does for recipient sets that arrive
// pre-parsed over the API.
func dropEmptyRows(rows []Recipient) []Recipient {
	out := make([]Recipient, 0, len(rows))
	for _, row := range rows {
		filtered := make(Recipient, 0, len(row))
		for _, cell := range row {
			if cell == "" {
				continue
			}
			filtered = append(filtered, cell)
		}
		if len(filtered) == 0 {
			continue
		}
		out = append(out, filtered)
	}
	return out
}
