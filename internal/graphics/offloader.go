package graphics

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"vertex/internal/camera"
	"vertex/internal/linalg"
	"vertex/internal/logger"
	"vertex/internal/mesh"
)

// JobSchema is the version stamped on every Job built by NewJob.
const JobSchema = "1.0.0"

var (
	ErrClosed        = errors.New("offloader closed")
	ErrJobSchema     = errors.New("unsupported job schema")
	ErrUnknownMesh   = errors.New("job references unknown mesh")
	schemaConstraint = mustConstraint("^1.0")
)

func mustConstraint(c string) *semver.Constraints {
	sc, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return sc
}

// InstanceState is an Instance reduced to plain values.
type InstanceState struct {
	ID       string
	MeshID   string
	Position []float64
	Rotation []float64
}

// Job is the message handed to the worker. Meshes are immutable and
// shared; everything else is a private copy.
type Job struct {
	Schema    string
	ID        uuid.UUID
	Camera    camera.State
	Meshes    map[string]*mesh.Mesh
	Instances []InstanceState
}

// NewJob snapshots the camera and instances so the caller may keep
// mutating them while the job runs.
func NewJob(cam *camera.Camera, instances []Instance) (Job, error) {
	job := Job{
		Schema: JobSchema,
		ID:     uuid.New(),
		Meshes: make(map[string]*mesh.Mesh, len(instances)),
	}

	live := make([]InstanceState, 0, len(instances))
	for _, inst := range instances {
		if inst.Mesh == nil {
			continue
		}
		meshID := inst.MeshID
		if meshID == "" {
			meshID = inst.ID
		}
		job.Meshes[meshID] = inst.Mesh
		live = append(live, InstanceState{
			ID:       inst.ID,
			MeshID:   meshID,
			Position: comps(inst.Position),
			Rotation: comps(inst.Rotation),
		})
	}

	deep := copier.Option{DeepCopy: true}
	if err := copier.CopyWithOption(&job.Instances, &live, deep); err != nil {
		return Job{}, fmt.Errorf("snapshot instances: %w", err)
	}
	if err := copier.CopyWithOption(&job.Camera, cam.State(), deep); err != nil {
		return Job{}, fmt.Errorf("snapshot camera: %w", err)
	}
	return job, nil
}

func comps(v *linalg.Vector) []float64 {
	if v == nil {
		return nil
	}
	return v.Comps()
}

// Raster is the worker's answer to one Job.
type Raster struct {
	JobID     uuid.UUID
	Fragments []Fragment
	Stats     Stats
	Err       error
}

// Offloader runs geometry and rasterize on a worker goroutine. At most one
// job waits to be picked up and at most one finished raster waits to be
// drawn; newer ones replace older ones.
type Offloader struct {
	projector *Projector
	workers   int
	jobs      chan Job
	done      chan struct{}
	closeOnce sync.Once
	log       *zap.Logger

	mu      sync.Mutex
	latest  *Raster
	closed  bool
	dropped int
}

func NewOffloader(opts Options, log *zap.Logger) *Offloader {
	if log == nil {
		log = logger.Nop()
	}
	o := &Offloader{
		projector: NewProjector(opts, log),
		workers:   max(opts.Workers, 1),
		jobs:      make(chan Job, 1),
		done:      make(chan struct{}),
		log:       log,
	}
	go o.run()
	return o
}

// Submit queues a job, replacing one that has not been picked up yet.
// Submit and Close are called from the frame loop only.
func (o *Offloader) Submit(job Job) error {
	o.mu.Lock()
	closed := o.closed
	o.mu.Unlock()
	if closed {
		return ErrClosed
	}

	select {
	case o.jobs <- job:
		return nil
	default:
	}
	select {
	case stale := <-o.jobs:
		o.log.Debug("replacing pending job", zap.Stringer("job", stale.ID))
	default:
	}
	o.jobs <- job
	return nil
}

// Latest hands out the newest finished raster once.
func (o *Offloader) Latest() (Raster, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.latest == nil {
		return Raster{}, false
	}
	r := *o.latest
	o.latest = nil
	return r, true
}

// Dropped counts rasters overwritten before anyone took them.
func (o *Offloader) Dropped() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.dropped
}

// Close stops the worker after the job in progress. Pending jobs are
// discarded.
func (o *Offloader) Close() {
	o.closeOnce.Do(func() {
		o.mu.Lock()
		o.closed = true
		o.mu.Unlock()
		close(o.jobs)
		<-o.done
	})
}

func (o *Offloader) run() {
	defer close(o.done)
	for job := range o.jobs {
		o.mu.Lock()
		closed := o.closed
		o.mu.Unlock()
		if closed {
			continue
		}
		r := o.process(job)
		o.publish(r)
	}
}

func (o *Offloader) publish(r Raster) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.latest != nil {
		o.dropped++
		o.log.Debug("dropping stale raster", zap.Stringer("job", o.latest.JobID))
	}
	o.latest = &r
}

func (o *Offloader) process(job Job) Raster {
	r := Raster{JobID: job.ID}

	v, err := semver.NewVersion(job.Schema)
	if err != nil {
		r.Err = fmt.Errorf("%w: %q: %v", ErrJobSchema, job.Schema, err)
		return r
	}
	if !schemaConstraint.Check(v) {
		r.Err = fmt.Errorf("%w: %s", ErrJobSchema, v)
		return r
	}

	instances := make([]Instance, len(job.Instances))
	for i, s := range job.Instances {
		m, ok := job.Meshes[s.MeshID]
		if !ok {
			r.Err = fmt.Errorf("%w: %s", ErrUnknownMesh, s.MeshID)
			return r
		}
		instances[i] = Instance{
			ID:       s.ID,
			MeshID:   s.MeshID,
			Mesh:     m,
			Position: vectorOrNil(s.Position),
			Rotation: vectorOrNil(s.Rotation),
		}
	}

	cam := o.projector.Camera()
	cam.Restore(job.Camera)
	_, view := cam.ViewMatrix()

	batches := split(instances, o.workers)
	results := make([][]Fragment, len(batches))
	stats := make([]Stats, len(batches))

	var g errgroup.Group
	g.SetLimit(o.workers)
	for i, batch := range batches {
		g.Go(func() error {
			frags, s, err := o.projector.geometry(batch, view)
			results[i], stats[i] = frags, s
			return err
		})
	}
	if err := g.Wait(); err != nil {
		r.Err = err
		return r
	}

	for i := range results {
		r.Fragments = append(r.Fragments, results[i]...)
		r.Stats.add(stats[i])
	}
	r.Fragments = o.projector.Rasterize(r.Fragments)
	return r
}

func vectorOrNil(c []float64) *linalg.Vector {
	if c == nil {
		return nil
	}
	return linalg.NewVector(c...)
}

// split cuts instances into at most n contiguous batches.
func split(instances []Instance, n int) [][]Instance {
	if len(instances) == 0 {
		return nil
	}
	size := (len(instances) + n - 1) / n
	var out [][]Instance
	for start := 0; start < len(instances); start += size {
		end := min(start+size, len(instances))
		out = append(out, instances[start:end])
	}
	return out
}
