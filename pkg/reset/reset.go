// Package reset implements the unconditional host-wide teardown: stop and
// remove every container, remove every image and named volume, then prune
// whatever is left. It is deliberately unscoped; the scoped session
// teardown lives in pkg/setup.
package reset

import (
	"context"
	"errors"
	"fmt"

	"cartctl/pkg/docker"
	"cartctl/pkg/logging"
	"cartctl/pkg/ui"
)

// Step names as reported in Summary and the audit log.
const (
	StepStopContainers   = "stop containers"
	StepRemoveContainers = "remove containers"
	StepRemoveImages     = "remove images"
	StepRemoveVolumes    = "remove volumes"
	StepPrune            = "system prune"
)

// StepResult records what one teardown step did. Acted counts the
// resources the step attempted to act on; Err carries the per-item
// failures joined together, nil when every call succeeded or the step
// had nothing to do.
type StepResult struct {
	Step  string
	Acted int
	Err   error
}

// Summary aggregates the whole run. The run never aborts early, so the
// slice always holds all five steps in order.
type Summary struct {
	Steps          []StepResult
	SpaceReclaimed uint64
}

// Failed returns the steps that reported an error.
func (s Summary) Failed() []StepResult {
	var failed []StepResult
	for _, step := range s.Steps {
		if step.Err != nil {
			failed = append(failed, step)
		}
	}
	return failed
}

// Runner executes the teardown against a container runtime.
type Runner struct {
	rt  docker.API
	log func(step string, err error)
}

// New returns a Runner bound to the given runtime.
func New(rt docker.API) *Runner {
	entry := logging.Component("reset")
	return &Runner{
		rt: rt,
		log: func(step string, err error) {
			if err != nil {
				logging.Failure(entry, step, err)
				return
			}
			logging.Completion(entry, step)
		},
	}
}

// Run performs the five teardown steps strictly in order. Every step is
// independently best-effort: an empty enumeration is skipped silently, a
// failing call is reported as a warning, and later steps always run.
// Resources created concurrently with the run may or may not be caught;
// that race is accepted.
func (r *Runner) Run(ctx context.Context) Summary {
	summary := Summary{}

	summary.Steps = append(summary.Steps, r.stopContainers(ctx))
	summary.Steps = append(summary.Steps, r.removeContainers(ctx))
	summary.Steps = append(summary.Steps, r.removeImages(ctx))
	summary.Steps = append(summary.Steps, r.removeVolumes(ctx))

	prune, reclaimed := r.prune(ctx)
	summary.Steps = append(summary.Steps, prune)
	summary.SpaceReclaimed = reclaimed

	return summary
}

// stopContainers stops every container, running or not. Stopping a
// stopped container is a daemon no-op, so no state filtering is needed.
func (r *Runner) stopContainers(ctx context.Context) StepResult {
	res := StepResult{Step: StepStopContainers}

	containers, err := r.rt.ListContainers(ctx, true)
	if err != nil {
		res.Err = err
		r.warn(res.Step, err)
		r.log(res.Step, err)
		return res
	}
	if len(containers) == 0 {
		// Nothing to stop; skip without issuing any call.
		return res
	}

	ui.Info.Println(fmt.Sprintf("Stopping %d container(s)...", len(containers)))
	var errs []error
	for _, c := range containers {
		res.Acted++
		if err := r.rt.StopContainer(ctx, c.ID); err != nil {
			errs = append(errs, err)
			r.warn(res.Step, err)
		}
	}
	res.Err = errors.Join(errs...)
	r.log(res.Step, res.Err)
	return res
}

// removeContainers re-enumerates before removing: the stop step changed
// container state only, and containers may have appeared since.
func (r *Runner) removeContainers(ctx context.Context) StepResult {
	res := StepResult{Step: StepRemoveContainers}

	containers, err := r.rt.ListContainers(ctx, true)
	if err != nil {
		res.Err = err
		r.warn(res.Step, err)
		r.log(res.Step, err)
		return res
	}
	if len(containers) == 0 {
		return res
	}

	ui.Info.Println(fmt.Sprintf("Removing %d container(s)...", len(containers)))
	var errs []error
	for _, c := range containers {
		res.Acted++
		if err := r.rt.RemoveContainer(ctx, c.ID, true); err != nil {
			errs = append(errs, err)
			r.warn(res.Step, err)
		}
	}
	res.Err = errors.Join(errs...)
	r.log(res.Step, res.Err)
	return res
}

// removeImages force-removes every image, overriding the reference check
// for images still used by stopped containers.
func (r *Runner) removeImages(ctx context.Context) StepResult {
	res := StepResult{Step: StepRemoveImages}

	images, err := r.rt.ListImages(ctx)
	if err != nil {
		res.Err = err
		r.warn(res.Step, err)
		r.log(res.Step, err)
		return res
	}
	if len(images) == 0 {
		return res
	}

	ui.Info.Println(fmt.Sprintf("Removing %d image(s)...", len(images)))
	var errs []error
	for _, id := range images {
		res.Acted++
		if err := r.rt.RemoveImage(ctx, id, true); err != nil {
			errs = append(errs, err)
			r.warn(res.Step, err)
		}
	}
	res.Err = errors.Join(errs...)
	r.log(res.Step, res.Err)
	return res
}

func (r *Runner) removeVolumes(ctx context.Context) StepResult {
	res := StepResult{Step: StepRemoveVolumes}

	volumes, err := r.rt.ListVolumes(ctx)
	if err != nil {
		res.Err = err
		r.warn(res.Step, err)
		r.log(res.Step, err)
		return res
	}
	if len(volumes) == 0 {
		return res
	}

	ui.Info.Println(fmt.Sprintf("Removing %d volume(s)...", len(volumes)))
	var errs []error
	for _, name := range volumes {
		res.Acted++
		if err := r.rt.RemoveVolume(ctx, name, true); err != nil {
			errs = append(errs, err)
			r.warn(res.Step, err)
		}
	}
	res.Err = errors.Join(errs...)
	r.log(res.Step, res.Err)
	return res
}

// prune always runs, even on an otherwise empty host: it is the catch-all
// for anything the enumerations raced past.
func (r *Runner) prune(ctx context.Context) (StepResult, uint64) {
	res := StepResult{Step: StepPrune, Acted: 1}

	ui.Info.Println("Pruning remaining unused resources...")
	reclaimed, err := r.rt.PruneSystem(ctx)
	if err != nil {
		res.Err = err
		r.warn(res.Step, err)
	}
	r.log(res.Step, res.Err)
	return res, reclaimed
}

func (r *Runner) warn(step string, err error) {
	ui.Warn.Println(fmt.Sprintf("%s: %v (continuing)", step, err))
}
