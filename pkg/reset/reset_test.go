package reset

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cartctl/pkg/docker"
)

// fakeRuntime is a stateful in-memory runtime: stops and removals mutate
// its resource sets, and every call is counted so tests can assert on
// exactly what a run did.
type fakeRuntime struct {
	containers []docker.Container
	images     []string
	volumes    []string

	stopCalls    map[string]int
	removeCalls  map[string]int
	rmImageCalls map[string]int
	rmVolCalls   map[string]int
	pruneCalls   int

	listContainersErr error
	listImagesErr     error
	listVolumesErr    error
	stopErr           map[string]error
	removeErr         map[string]error
	rmImageErr        map[string]error
	rmVolErr          map[string]error
	pruneErr          error
	pruneReclaimed    uint64
}

func newFakeRuntime() *fakeRuntime {
	return &fakeRuntime{
		stopCalls:    map[string]int{},
		removeCalls:  map[string]int{},
		rmImageCalls: map[string]int{},
		rmVolCalls:   map[string]int{},
		stopErr:      map[string]error{},
		removeErr:    map[string]error{},
		rmImageErr:   map[string]error{},
		rmVolErr:     map[string]error{},
	}
}

func (f *fakeRuntime) Ping(ctx context.Context) error { return nil }

func (f *fakeRuntime) ListContainers(ctx context.Context, all bool) ([]docker.Container, error) {
	if f.listContainersErr != nil {
		return nil, f.listContainersErr
	}
	out := make([]docker.Container, len(f.containers))
	copy(out, f.containers)
	return out, nil
}

func (f *fakeRuntime) StopContainer(ctx context.Context, id string) error {
	f.stopCalls[id]++
	if err := f.stopErr[id]; err != nil {
		return err
	}
	for i := range f.containers {
		if f.containers[i].ID == id {
			f.containers[i].State = "exited"
		}
	}
	return nil
}

func (f *fakeRuntime) RemoveContainer(ctx context.Context, id string, force bool) error {
	f.removeCalls[id]++
	if err := f.removeErr[id]; err != nil {
		return err
	}
	for i, c := range f.containers {
		if c.ID == id {
			f.containers = append(f.containers[:i], f.containers[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeRuntime) ListImages(ctx context.Context) ([]string, error) {
	if f.listImagesErr != nil {
		return nil, f.listImagesErr
	}
	out := make([]string, len(f.images))
	copy(out, f.images)
	return out, nil
}

func (f *fakeRuntime) RemoveImage(ctx context.Context, id string, force bool) error {
	f.rmImageCalls[id]++
	if err := f.rmImageErr[id]; err != nil {
		return err
	}
	for i, img := range f.images {
		if img == id {
			f.images = append(f.images[:i], f.images[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeRuntime) ListVolumes(ctx context.Context) ([]string, error) {
	if f.listVolumesErr != nil {
		return nil, f.listVolumesErr
	}
	out := make([]string, len(f.volumes))
	copy(out, f.volumes)
	return out, nil
}

func (f *fakeRuntime) RemoveVolume(ctx context.Context, name string, force bool) error {
	f.rmVolCalls[name]++
	if err := f.rmVolErr[name]; err != nil {
		return err
	}
	for i, v := range f.volumes {
		if v == name {
			f.volumes = append(f.volumes[:i], f.volumes[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeRuntime) CreateVolume(ctx context.Context, name string) error  { return nil }
func (f *fakeRuntime) CreateNetwork(ctx context.Context, name string) error { return nil }
func (f *fakeRuntime) RemoveNetwork(ctx context.Context, name string) error { return nil }

func (f *fakeRuntime) RunContainer(ctx context.Context, spec docker.RunSpec) (string, error) {
	return "", errors.New("not supported")
}

func (f *fakeRuntime) WaitForLog(ctx context.Context, id string, needle string) error {
	return errors.New("not supported")
}

func (f *fakeRuntime) StreamLogs(ctx context.Context, id string, tail int, lines chan<- string) error {
	return errors.New("not supported")
}

func (f *fakeRuntime) PruneSystem(ctx context.Context) (uint64, error) {
	f.pruneCalls++
	return f.pruneReclaimed, f.pruneErr
}

func (f *fakeRuntime) Close() error { return nil }

func newTestRunner(rt docker.API) *Runner {
	r := New(rt)
	r.log = func(step string, err error) {}
	return r
}

// ── Full teardown ───────────────────────────────────────────────────

func TestRun_FullTeardownLeavesNothing(t *testing.T) {
	rt := newFakeRuntime()
	rt.containers = []docker.Container{
		{ID: "c1", Name: "neo4j", State: "running"},
		{ID: "c2", Name: "scanner", State: "exited"},
	}
	rt.images = []string{"i1", "i2"}
	rt.volumes = []string{"v1"}
	rt.pruneReclaimed = 4096

	summary := newTestRunner(rt).Run(context.Background())

	assert.Empty(t, rt.containers)
	assert.Empty(t, rt.images)
	assert.Empty(t, rt.volumes)
	assert.Equal(t, 1, rt.pruneCalls)
	assert.Equal(t, uint64(4096), summary.SpaceReclaimed)
	assert.Empty(t, summary.Failed())
}

func TestRun_StepsAlwaysInOrder(t *testing.T) {
	rt := newFakeRuntime()
	summary := newTestRunner(rt).Run(context.Background())

	require.Len(t, summary.Steps, 5)
	assert.Equal(t, StepStopContainers, summary.Steps[0].Step)
	assert.Equal(t, StepRemoveContainers, summary.Steps[1].Step)
	assert.Equal(t, StepRemoveImages, summary.Steps[2].Step)
	assert.Equal(t, StepRemoveVolumes, summary.Steps[3].Step)
	assert.Equal(t, StepPrune, summary.Steps[4].Step)
}

func TestRun_MixedResources(t *testing.T) {
	// One running container, one stopped, one image, one volume: the stop
	// step touches both containers exactly once, every resource is removed,
	// and prune runs exactly once.
	rt := newFakeRuntime()
	rt.containers = []docker.Container{
		{ID: "c1", Name: "web", State: "running"},
		{ID: "c2", Name: "db", State: "exited"},
	}
	rt.images = []string{"i1"}
	rt.volumes = []string{"v1"}

	summary := newTestRunner(rt).Run(context.Background())

	assert.Equal(t, 1, rt.stopCalls["c1"])
	assert.Equal(t, 1, rt.stopCalls["c2"])
	assert.Equal(t, 1, rt.removeCalls["c1"])
	assert.Equal(t, 1, rt.removeCalls["c2"])
	assert.Equal(t, 1, rt.rmImageCalls["i1"])
	assert.Equal(t, 1, rt.rmVolCalls["v1"])
	assert.Equal(t, 1, rt.pruneCalls)

	assert.Empty(t, rt.containers)
	assert.Empty(t, rt.images)
	assert.Empty(t, rt.volumes)
	assert.Empty(t, summary.Failed())
}

// ── Idempotence ─────────────────────────────────────────────────────

func TestRun_SecondRunIsNoOp(t *testing.T) {
	rt := newFakeRuntime()
	rt.containers = []docker.Container{{ID: "c1", State: "running"}}
	rt.images = []string{"i1"}
	rt.volumes = []string{"v1"}

	runner := newTestRunner(rt)
	first := runner.Run(context.Background())
	require.Empty(t, first.Failed())

	// Reset counters so the second run's activity stands on its own.
	rt.stopCalls = map[string]int{}
	rt.removeCalls = map[string]int{}
	rt.rmImageCalls = map[string]int{}
	rt.rmVolCalls = map[string]int{}

	second := runner.Run(context.Background())

	assert.Empty(t, second.Failed())
	assert.Empty(t, rt.stopCalls)
	assert.Empty(t, rt.removeCalls)
	assert.Empty(t, rt.rmImageCalls)
	assert.Empty(t, rt.rmVolCalls)
	for _, step := range second.Steps[:4] {
		assert.Zero(t, step.Acted)
	}
}

func TestRun_EmptyHostOnlyPrunes(t *testing.T) {
	rt := newFakeRuntime()

	summary := newTestRunner(rt).Run(context.Background())

	assert.Empty(t, rt.stopCalls)
	assert.Empty(t, rt.removeCalls)
	assert.Empty(t, rt.rmImageCalls)
	assert.Empty(t, rt.rmVolCalls)
	assert.Equal(t, 1, rt.pruneCalls)
	assert.Empty(t, summary.Failed())
}

// ── Step independence ───────────────────────────────────────────────

func TestRun_ImageStepFailureDoesNotStopLaterSteps(t *testing.T) {
	rt := newFakeRuntime()
	rt.images = []string{"i1"}
	rt.volumes = []string{"v1"}
	rt.rmImageErr["i1"] = errors.New("image is being used by stopped container")

	summary := newTestRunner(rt).Run(context.Background())

	assert.Equal(t, 1, rt.rmVolCalls["v1"])
	assert.Equal(t, 1, rt.pruneCalls)

	failed := summary.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, StepRemoveImages, failed[0].Step)
}

func TestRun_ListFailureDoesNotStopLaterSteps(t *testing.T) {
	rt := newFakeRuntime()
	rt.listContainersErr = errors.New("connection refused")
	rt.volumes = []string{"v1"}

	summary := newTestRunner(rt).Run(context.Background())

	// Both container steps fail on enumeration, nothing else does.
	failed := summary.Failed()
	require.Len(t, failed, 2)
	assert.Equal(t, StepStopContainers, failed[0].Step)
	assert.Equal(t, StepRemoveContainers, failed[1].Step)

	assert.Equal(t, 1, rt.rmVolCalls["v1"])
	assert.Equal(t, 1, rt.pruneCalls)
}

func TestRun_PerItemFailureContinuesWithinStep(t *testing.T) {
	rt := newFakeRuntime()
	rt.containers = []docker.Container{
		{ID: "c1", State: "running"},
		{ID: "c2", State: "running"},
		{ID: "c3", State: "running"},
	}
	rt.stopErr["c2"] = errors.New("permission denied")

	summary := newTestRunner(rt).Run(context.Background())

	// c3 is still stopped despite c2 failing.
	assert.Equal(t, 1, rt.stopCalls["c1"])
	assert.Equal(t, 1, rt.stopCalls["c2"])
	assert.Equal(t, 1, rt.stopCalls["c3"])

	assert.Equal(t, 3, summary.Steps[0].Acted)
	assert.ErrorContains(t, summary.Steps[0].Err, "permission denied")
}

func TestRun_PruneFailureReported(t *testing.T) {
	rt := newFakeRuntime()
	rt.pruneErr = errors.New("prune already running")

	summary := newTestRunner(rt).Run(context.Background())

	failed := summary.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, StepPrune, failed[0].Step)
	assert.Zero(t, summary.SpaceReclaimed)
}

func TestRun_AllListsFailStillPrunes(t *testing.T) {
	rt := newFakeRuntime()
	rt.listContainersErr = errors.New("daemon gone")
	rt.listImagesErr = errors.New("daemon gone")
	rt.listVolumesErr = errors.New("daemon gone")
	rt.pruneReclaimed = 123

	summary := newTestRunner(rt).Run(context.Background())

	assert.Equal(t, 1, rt.pruneCalls)
	assert.Equal(t, uint64(123), summary.SpaceReclaimed)
	assert.Len(t, summary.Failed(), 4)
}

// ── Summary ─────────────────────────────────────────────────────────

func TestSummary_FailedEmptyOnSuccess(t *testing.T) {
	s := Summary{Steps: []StepResult{
		{Step: StepStopContainers},
		{Step: StepPrune, Acted: 1},
	}}
	assert.Empty(t, s.Failed())
}

func TestSummary_FailedPreservesOrder(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")
	s := Summary{Steps: []StepResult{
		{Step: StepStopContainers, Err: errA},
		{Step: StepRemoveContainers},
		{Step: StepRemoveVolumes, Err: errB},
	}}

	failed := s.Failed()
	require.Len(t, failed, 2)
	assert.Equal(t, StepStopContainers, failed[0].Step)
	assert.Equal(t, StepRemoveVolumes, failed[1].Step)
}
