package worker

import "context"

// FuncJob adapts a plain function to the Job interface and reports its
// result on Done. The generator uses it to fan one document's artifact
// generations out over the pool and wait for all of them.
type FuncJob struct {
	JobName string
	Fn      func(ctx context.Context) error
	Done    chan error
}

func (j *FuncJob) Name() string { return j.JobName }

func (j *FuncJob) Run(ctx context.Context) error {
	err := j.Fn(ctx)
	if j.Done != nil {
		j.Done <- err
	}
	return err
}
