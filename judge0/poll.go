package judge0

import (
	"context"
	"errors"
	"time"
)

const DefaultPollInterval = 400 * time.Millisecond

// PollBatch fetches batch results until every job is terminal, sleeping
// interval between rounds. There is no attempt cap; the bound is the
// caller's context deadline, which surfaces as a judge timeout rather
// than an endless loop. Cancellation stops the loop between rounds and
// releases the pending timer.
func (c *Client) PollBatch(ctx context.Context, tokens []string, interval time.Duration) ([]JobResult, error) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	for {
		results, err := c.GetBatchResults(ctx, tokens)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return nil, ErrJudgeTimeout().SetDebug(err)
			}
			return nil, err
		}

		if allTerminal(results) {
			return results, nil
		}

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return nil, ErrJudgeTimeout().SetDebug(ctx.Err())
			}
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

func allTerminal(results []JobResult) bool {
	for _, r := range results {
		if !r.Terminal() {
			return false
		}
	}
	return true
}
