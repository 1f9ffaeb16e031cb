package scout

import (
	"context"
	"log"
	"time"

	"boardscout/internal/domain"
	"boardscout/internal/extract"
	"boardscout/internal/match"
	"boardscout/internal/notify"
	"boardscout/internal/registry"
	"boardscout/internal/seen"
)

// PayloadSource yields the embedded JSON documents of a board page;
// satisfied by fetch.Client.
type PayloadSource interface {
	BoardPayloads(ctx context.Context, boardURL string) ([]any, error)
}

// Sender delivers a digest; satisfied by notify.Notifier.
type Sender interface {
	Send(text string) error
}

type Runner struct {
	Source       PayloadSource
	Out          Sender
	RegistryPath string
	SeenPath     string
	Filters      match.Filters

	// BoardTimeout bounds one board's fetch; zero means a sane default.
	BoardTimeout time.Duration
}

type Options struct {
	// IgnoreSeen reports every matched job this run instead of only the
	// unseen ones. Seen-state is still updated.
	IgnoreSeen bool
}

// RunCycle scans every registered board in order, sends one digest for all
// new jobs, and persists the updated seen-state. One board failing is
// logged and skipped; its seen-state is left untouched so nothing gets
// silently marked as reported.
func (r *Runner) RunCycle(ctx context.Context, opts Options) error {
	boards, err := registry.Load(r.RegistryPath)
	if err != nil {
		return err
	}
	if len(boards) == 0 {
		log.Printf("[scout] no boards registered; nothing to scan")
		return nil
	}

	state, err := seen.Load(r.SeenPath)
	if err != nil {
		return err
	}

	var blocks []string
	totalNew := 0

	for _, board := range boards {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fresh, updated, err := r.scanBoard(ctx, board, state[board.Company], opts)
		if err != nil {
			log.Printf("[scout] board=%q url=%q err=%v", board.Company, board.URL, err)
			continue
		}

		state[board.Company] = updated
		if len(fresh) > 0 {
			blocks = append(blocks, notify.FormatBoard(board.Company, fresh))
			totalNew += len(fresh)
		}
	}

	// Deliver before persisting: if the send fails the state stays as it
	// was and the next cycle reports the same jobs again. A duplicate
	// digest beats silently losing one.
	if len(blocks) > 0 {
		if err := r.Out.Send(notify.JoinDigests(blocks)); err != nil {
			return err
		}
	}

	if err := seen.Save(r.SeenPath, state); err != nil {
		return err
	}

	log.Printf("[scout] cycle done boards=%d new=%d", len(boards), totalNew)
	return nil
}

func (r *Runner) scanBoard(ctx context.Context, board domain.Board, previous []string, opts Options) ([]domain.Job, []string, error) {
	timeout := r.BoardTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	bctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	payloads, err := r.Source.BoardPayloads(bctx, board.URL)
	if err != nil {
		return nil, nil, err
	}

	// First payload the locator finds postings in wins; later script blobs
	// tend to be analytics and translations.
	var postings []map[string]any
	for _, doc := range payloads {
		if postings = extract.Locate(doc); len(postings) > 0 {
			break
		}
	}
	if len(postings) == 0 {
		// indistinguishable from a board with no openings; not an error
		log.Printf("[scout] board=%q no postings found", board.Company)
		return nil, previous, nil
	}

	jobs := make([]domain.Job, 0, len(postings))
	for _, p := range postings {
		if job, ok := extract.Normalize(board.Company, board.URL, p); ok {
			jobs = append(jobs, job)
		}
	}
	if len(jobs) == 0 {
		log.Printf("[scout] board=%q postings=%d but none normalized", board.Company, len(postings))
		return nil, previous, nil
	}

	matched := match.Apply(jobs, r.Filters)
	log.Printf("[scout] board=%q postings=%d normalized=%d matched=%d",
		board.Company, len(postings), len(jobs), len(matched))

	fresh, updated := seen.Diff(matched, previous)
	if opts.IgnoreSeen {
		// report everything (deduplicated within the batch), still
		// fold the ids into the persisted set
		fresh, _ = seen.Diff(matched, nil)
	}
	return fresh, updated, nil
}
