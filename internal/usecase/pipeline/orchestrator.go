package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/domain/repositories"
	"github.com/johnquangdev/meeting-insights/internal/domain/services"
	usecaseErrors "github.com/johnquangdev/meeting-insights/internal/usecase/errors"
	"github.com/johnquangdev/meeting-insights/pkg/runcontext"
)

// Input is one submitted recording
type Input struct {
	Audio       []byte
	Filename    string
	ContentType string
	OwnerEmail  string
}

// Result is what a successful run produced and persisted
type Result struct {
	MeetingID   uuid.UUID
	Transcript  string
	Summary     string
	ActionItems []string
}

// Runner runs the pipeline end to end
type Runner interface {
	Run(ctx context.Context, in Input) (*Result, error)
}

// run carries the artefacts of one pipeline execution between stages
type run struct {
	input       Input
	audioKey    string
	transcript  string
	summary     string
	actionItems []string
}

// Orchestrator drives transcribe -> translate -> (summarize | extract) -> persist.
// A run persists exactly one meeting when every stage succeeded and
// nothing otherwise. Stages are never retried.
type Orchestrator struct {
	transcriber services.Transcriber
	translator  services.Translator
	summarizer  services.Summarizer
	extractor   services.ActionItemExtractor
	meetings    repositories.MeetingRepository
	logger      *zap.Logger

	timeout   time.Duration
	cache     services.TranscriptCache
	cacheTTL  time.Duration
	archive   services.AudioArchive
	publisher services.EventPublisher
}

// Option configures optional collaborators of the Orchestrator
type Option func(*Orchestrator)

// WithTimeout bounds the duration of a whole run
func WithTimeout(d time.Duration) Option {
	return func(o *Orchestrator) { o.timeout = d }
}

// WithTranscriptCache reuses normalised transcripts of identical audio
func WithTranscriptCache(cache services.TranscriptCache, ttl time.Duration) Option {
	return func(o *Orchestrator) {
		o.cache = cache
		o.cacheTTL = ttl
	}
}

// WithAudioArchive stores the recording after the meeting was persisted
func WithAudioArchive(archive services.AudioArchive) Option {
	return func(o *Orchestrator) { o.archive = archive }
}

// WithEventPublisher announces created meetings
func WithEventPublisher(p services.EventPublisher) Option {
	return func(o *Orchestrator) { o.publisher = p }
}

// NewOrchestrator constructs the pipeline
func NewOrchestrator(
	transcriber services.Transcriber,
	translator services.Translator,
	summarizer services.Summarizer,
	extractor services.ActionItemExtractor,
	meetings repositories.MeetingRepository,
	logger *zap.Logger,
	opts ...Option,
) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	o := &Orchestrator{
		transcriber: transcriber,
		translator:  translator,
		summarizer:  summarizer,
		extractor:   extractor,
		meetings:    meetings,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run executes the pipeline for one recording
func (o *Orchestrator) Run(ctx context.Context, in Input) (*Result, error) {
	if len(in.Audio) == 0 || strings.TrimSpace(in.OwnerEmail) == "" {
		return nil, StageValidate.failure(usecaseErrors.ErrInvalidInput)
	}

	ctx, cancel := runcontext.RunBegin(ctx, uuid.New(), in.OwnerEmail, o.timeout)
	defer cancel()

	r := &run{input: in}
	o.logger.Info("🚀 Pipeline run started", append(runcontext.Fields(ctx), zap.Int("audio_bytes", len(in.Audio)))...)

	if err := o.acquireTranscript(ctx, r); err != nil {
		return nil, err
	}
	if err := o.deriveArtifacts(ctx, r); err != nil {
		return nil, err
	}

	meeting := entities.NewMeeting(in.OwnerEmail, r.transcript, r.summary, r.actionItems)
	if err := o.meetings.Create(ctx, meeting); err != nil {
		o.logStageError(ctx, StagePersist, err)
		return nil, StagePersist.failure(err)
	}

	o.logger.Info("✅ Meeting persisted",
		append(runcontext.Fields(ctx),
			zap.String("meeting_id", meeting.ID.String()),
			zap.Int("action_items", len(r.actionItems)),
		)...)

	o.afterPersist(ctx, meeting, in)

	return &Result{
		MeetingID:   meeting.ID,
		Transcript:  meeting.Transcript,
		Summary:     meeting.Summary,
		ActionItems: meeting.Items(),
	}, nil
}

// acquireTranscript runs the transcribe and translate stages, or takes
// the normalised transcript from the cache.
func (o *Orchestrator) acquireTranscript(ctx context.Context, r *run) error {
	if o.cache != nil {
		r.audioKey = audioDigest(r.input.Audio)
		cached, ok, err := o.cache.Get(ctx, r.audioKey)
		if err != nil {
			o.logger.Warn("⚠️ Transcript cache lookup failed", append(runcontext.Fields(ctx), zap.Error(err))...)
		} else if ok && strings.TrimSpace(cached) != "" {
			o.logger.Info("Transcript cache hit", runcontext.Fields(ctx)...)
			r.transcript = cached
			return nil
		}
	}

	raw, err := o.stage(ctx, StageTranscribe, func(ctx context.Context) (string, error) {
		return o.transcriber.Transcribe(ctx, services.Audio{
			Data:        r.input.Audio,
			Filename:    r.input.Filename,
			ContentType: r.input.ContentType,
		})
	})
	if err != nil {
		return err
	}

	// Translation runs unconditionally; language detection is the
	// translator's concern.
	r.transcript, err = o.stage(ctx, StageTranslate, func(ctx context.Context) (string, error) {
		return o.translator.Translate(ctx, raw)
	})
	if err != nil {
		return err
	}

	if o.cache != nil {
		if err := o.cache.Set(ctx, r.audioKey, r.transcript, o.cacheTTL); err != nil {
			o.logger.Warn("⚠️ Transcript cache store failed", append(runcontext.Fields(ctx), zap.Error(err))...)
		}
	}
	return nil
}

// deriveArtifacts runs summarize and extract concurrently. Both always
// run to completion; when both fail the summary failure is reported.
func (o *Orchestrator) deriveArtifacts(ctx context.Context, r *run) error {
	var (
		g          errgroup.Group
		summaryErr error
		itemsErr   error
	)

	g.Go(func() error {
		r.summary, summaryErr = o.stage(ctx, StageSummarize, func(ctx context.Context) (string, error) {
			return o.summarizer.Summarize(ctx, r.transcript)
		})
		return summaryErr
	})

	g.Go(func() error {
		var payload string
		payload, itemsErr = o.stage(ctx, StageExtractActionItems, func(ctx context.Context) (string, error) {
			return o.extractor.ExtractActionItems(ctx, r.transcript)
		})
		if itemsErr != nil {
			return itemsErr
		}
		r.actionItems, itemsErr = ParseActionItems(payload)
		if itemsErr != nil {
			o.logStageError(ctx, StageExtractActionItems, itemsErr)
			itemsErr = StageExtractActionItems.failure(itemsErr)
		}
		return itemsErr
	})

	_ = g.Wait()

	if summaryErr != nil {
		return summaryErr
	}
	return itemsErr
}

// stage invokes one external call, treating blank output as a failure
func (o *Orchestrator) stage(ctx context.Context, s Stage, call func(context.Context) (string, error)) (string, error) {
	started := time.Now()
	out, err := call(ctx)
	if err == nil && strings.TrimSpace(out) == "" {
		err = fmt.Errorf("%s: %w", s, usecaseErrors.ErrEmptyResult)
	}
	if err != nil {
		o.logStageError(ctx, s, err)
		return "", s.failure(err)
	}

	o.logger.Info("Stage completed",
		append(runcontext.Fields(ctx),
			zap.Stringer("stage", s),
			zap.Duration("stage_duration", time.Since(started)),
		)...)
	return strings.TrimSpace(out), nil
}

// afterPersist runs best-effort side effects that never fail a run
func (o *Orchestrator) afterPersist(ctx context.Context, meeting *entities.Meeting, in Input) {
	if o.archive != nil {
		audio := services.Audio{Data: in.Audio, Filename: in.Filename, ContentType: in.ContentType}
		if err := o.archive.ArchiveAudio(ctx, meeting.ID.String(), audio); err != nil {
			o.logger.Warn("⚠️ Failed to archive audio",
				append(runcontext.Fields(ctx), zap.String("meeting_id", meeting.ID.String()), zap.Error(err))...)
		}
	}
	if o.publisher != nil {
		event := services.MeetingEvent{
			MeetingID:  meeting.ID.String(),
			OwnerEmail: meeting.OwnerEmail,
			OccurredAt: time.Now().UTC(),
		}
		if err := o.publisher.Publish(ctx, services.EventMeetingCreated, event); err != nil {
			o.logger.Warn("⚠️ Failed to publish meeting event",
				append(runcontext.Fields(ctx), zap.String("meeting_id", meeting.ID.String()), zap.Error(err))...)
		}
	}
}

func (o *Orchestrator) logStageError(ctx context.Context, s Stage, err error) {
	o.logger.Error("❌ Pipeline stage failed",
		append(runcontext.Fields(ctx), zap.Stringer("stage", s), zap.Error(err))...)
}

func audioDigest(audio []byte) string {
	sum := sha256.Sum256(audio)
	return "transcript:" + hex.EncodeToString(sum[:])
}
