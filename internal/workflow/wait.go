// Package workflow implements multi-step deployment operations for the
// langstar CLI: bounded polling until a deployment or revision reaches a
// terminal state, and resolution of a deployment's runtime URL into a
// derived graph-runtime client.
//
// POLLING DISCIPLINE:
// Polls start fast and back off once the deployment has clearly entered a
// longer provisioning phase: 10-second intervals for the first 30 seconds of
// elapsed time, 30-second intervals after that. Every wait is bounded by a
// hard ceiling (30 minutes by default) and recognizes terminal failure
// states, so a wait can never hang forever on a deployment that will not
// come up. Context cancellation is honored between polls.
package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/codekiln/langstar/internal/logging"
	"github.com/codekiln/langstar/internal/sdk"
)

const (
	// fastPhase is how long the short poll interval applies from the start
	// of a wait.
	fastPhase = 30 * time.Second

	fastInterval = 10 * time.Second
	slowInterval = 30 * time.Second

	// DefaultMaxWait bounds every wait operation.
	DefaultMaxWait = 30 * time.Minute
)

// PollInterval returns the wait between status polls for the given elapsed
// time: 10s while under 30s elapsed, 30s afterwards.
func PollInterval(elapsed time.Duration) time.Duration {
	if elapsed < fastPhase {
		return fastInterval
	}
	return slowInterval
}

// WaitOptions tunes a wait operation. The zero value gives the defaults.
type WaitOptions struct {
	// MaxWait is the hard ceiling; DefaultMaxWait when zero.
	MaxWait time.Duration
	// Interval overrides the staged poll interval when set. Used by tests
	// to poll fast against fake servers.
	Interval func(elapsed time.Duration) time.Duration
}

func (o WaitOptions) maxWait() time.Duration {
	if o.MaxWait <= 0 {
		return DefaultMaxWait
	}
	return o.MaxWait
}

func (o WaitOptions) interval(elapsed time.Duration) time.Duration {
	if o.Interval != nil {
		return o.Interval(elapsed)
	}
	return PollInterval(elapsed)
}

// WaitForReady polls a deployment until its status is READY. Returns an
// error when the deployment enters AWAITING_DELETE, when the ceiling is
// reached, or when the context is cancelled. Poll failures abort the wait
// immediately - there is no retry layer underneath.
func WaitForReady(ctx context.Context, client *sdk.Client, deploymentID string, opts WaitOptions) (*sdk.Deployment, error) {
	start := time.Now()
	maxWait := opts.maxWait()

	for {
		deployment, err := client.GetDeployment(deploymentID)
		if err != nil {
			return nil, err
		}

		switch deployment.Status {
		case sdk.StatusReady:
			return deployment, nil
		case sdk.StatusAwaitingDelete:
			return nil, fmt.Errorf("deployment %s entered status %s while waiting for READY",
				deploymentID, deployment.Status)
		}

		elapsed := time.Since(start)
		if elapsed >= maxWait {
			return nil, fmt.Errorf("timed out after %s waiting for deployment %s to become READY (last status: %s)",
				maxWait, deploymentID, deployment.Status)
		}

		logging.Info("Deployment %s status: %s (elapsed: %s)",
			deploymentID, deployment.Status, elapsed.Round(time.Second))

		if err := sleepCtx(ctx, opts.interval(elapsed)); err != nil {
			return nil, err
		}
	}
}

// WaitForRevisionDeployed polls a revision until its status is DEPLOYED.
// BUILD_FAILED, DEPLOY_FAILED, and CANCELLED are terminal failures; the
// ceiling and context rules match WaitForReady.
func WaitForRevisionDeployed(ctx context.Context, client *sdk.Client, deploymentID, revisionID string, opts WaitOptions) (*sdk.Revision, error) {
	start := time.Now()
	maxWait := opts.maxWait()

	for {
		revision, err := client.GetRevision(deploymentID, revisionID)
		if err != nil {
			return nil, err
		}

		switch revision.Status {
		case sdk.RevisionDeployed:
			return revision, nil
		case sdk.RevisionBuildFailed, sdk.RevisionDeployFailed, sdk.RevisionCancelled:
			return nil, fmt.Errorf("revision %s of deployment %s failed with status %s",
				revisionID, deploymentID, revision.Status)
		}

		elapsed := time.Since(start)
		if elapsed >= maxWait {
			return nil, fmt.Errorf("timed out after %s waiting for revision %s to deploy (last status: %s)",
				maxWait, revisionID, revision.Status)
		}

		logging.Info("Revision %s status: %s (elapsed: %s)",
			revisionID, revision.Status, elapsed.Round(time.Second))

		if err := sleepCtx(ctx, opts.interval(elapsed)); err != nil {
			return nil, err
		}
	}
}

// sleepCtx sleeps for d or until the context is cancelled.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
