package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"gitlab.com/codecapsules.net/internal/core/ports/secondary"
	"gitlab.com/codecapsules.net/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

type stubBackend struct {
	result *domain.ExecutionResult
	err    error
	gotJob *domain.ExecutionJob
}

func (b *stubBackend) Execute(ctx context.Context, job *domain.ExecutionJob) (*domain.ExecutionResult, error) {
	b.gotJob = job
	if b.err != nil {
		return nil, b.err
	}
	return b.result, nil
}

type stubQueue struct {
	enqueueErr error
	result     *domain.ExecutionResult
	awaitErr   error
	gotWait    time.Duration
}

func (q *stubQueue) Enqueue(ctx context.Context, job *domain.ExecutionJob) (string, error) {
	if q.enqueueErr != nil {
		return "", q.enqueueErr
	}
	return job.ID.String(), nil
}

func (q *stubQueue) AwaitResult(ctx context.Context, jobID string, wait time.Duration) (*domain.ExecutionResult, error) {
	q.gotWait = wait
	if q.awaitErr != nil {
		return nil, q.awaitErr
	}
	return q.result, nil
}

func testJob() *domain.ExecutionJob {
	return domain.NewExecutionJob("python", "print('hi')", "", 10, 128)
}

func TestDirectDispatchPassesResultThrough(t *testing.T) {
	zero := 0
	want := &domain.ExecutionResult{Success: true, Stdout: "ok", ExitCode: &zero}
	backend := &stubBackend{result: want}

	got := NewDirectDispatcher(backend, nopLogger{}).Dispatch(context.Background(), testJob())

	if got != want {
		t.Errorf("result = %#v, want backend result", got)
	}
	if backend.gotJob == nil {
		t.Fatal("backend never saw the job")
	}
}

func TestDirectDispatchTimeout(t *testing.T) {
	backend := &stubBackend{err: context.DeadlineExceeded}

	got := NewDirectDispatcher(backend, nopLogger{}).Dispatch(context.Background(), testJob())

	if got.Success {
		t.Error("timed-out job must not succeed")
	}
	if got.Error != "execution timed out after 10s" {
		t.Errorf("Error = %q", got.Error)
	}
	if got.ExitCode == nil || *got.ExitCode == 0 {
		t.Error("timed-out job must carry a non-zero exit code")
	}
}

func TestDirectDispatchBackendError(t *testing.T) {
	backend := &stubBackend{err: errors.New("connection refused")}

	got := NewDirectDispatcher(backend, nopLogger{}).Dispatch(context.Background(), testJob())

	if got.Success {
		t.Error("failed job must not succeed")
	}
	if got.Error != "execution backend error: connection refused" {
		t.Errorf("Error = %q", got.Error)
	}
}

func TestQueuedDispatchPassesResultThrough(t *testing.T) {
	zero := 0
	want := &domain.ExecutionResult{Success: true, Stdout: "ok", ExitCode: &zero}
	queue := &stubQueue{result: want}

	got := NewQueuedDispatcher(queue, nopLogger{}).Dispatch(context.Background(), testJob())

	if got != want {
		t.Errorf("result = %#v, want queued result", got)
	}
	if wantWait := 10*time.Second + dispatchGrace; queue.gotWait != wantWait {
		t.Errorf("wait = %v, want %v", queue.gotWait, wantWait)
	}
}

func TestQueuedDispatchEnqueueFailure(t *testing.T) {
	queue := &stubQueue{enqueueErr: errors.New("redis down")}

	got := NewQueuedDispatcher(queue, nopLogger{}).Dispatch(context.Background(), testJob())

	if got.Success {
		t.Error("failed enqueue must not succeed")
	}
	if got.Error != "failed to enqueue job: redis down" {
		t.Errorf("Error = %q", got.Error)
	}
}

func TestTimeoutShapeIdenticalAcrossStrategies(t *testing.T) {
	job := testJob()

	direct := NewDirectDispatcher(&stubBackend{err: context.DeadlineExceeded}, nopLogger{}).
		Dispatch(context.Background(), job)
	queued := NewQueuedDispatcher(&stubQueue{awaitErr: secondary.ErrAwaitTimeout}, nopLogger{}).
		Dispatch(context.Background(), job)

	if direct.Error != queued.Error {
		t.Errorf("timeout shape differs: direct=%q queued=%q", direct.Error, queued.Error)
	}
	if direct.Success != queued.Success || *direct.ExitCode != *queued.ExitCode {
		t.Error("timeout results differ between strategies")
	}
}

func TestDispatchRouter(t *testing.T) {
	directResult := &domain.ExecutionResult{Stdout: "direct"}
	queuedResult := &domain.ExecutionResult{Stdout: "queued"}
	router := NewDispatchRouter(
		NewDirectDispatcher(&stubBackend{result: directResult}, nopLogger{}),
		NewQueuedDispatcher(&stubQueue{result: queuedResult}, nopLogger{}),
		map[string]bool{"javascript": true},
	)

	pyJob := domain.NewExecutionJob("python", "", "", 1, 64)
	if got := router.Dispatch(context.Background(), pyJob); got.Stdout != "direct" {
		t.Errorf("python routed to %q, want direct", got.Stdout)
	}

	jsJob := domain.NewExecutionJob("javascript", "", "", 1, 64)
	if got := router.Dispatch(context.Background(), jsJob); got.Stdout != "queued" {
		t.Errorf("javascript routed to %q, want queued", got.Stdout)
	}
}

func TestDispatchRouterWithoutQueuedStrategy(t *testing.T) {
	directResult := &domain.ExecutionResult{Stdout: "direct"}
	router := NewDispatchRouter(
		NewDirectDispatcher(&stubBackend{result: directResult}, nopLogger{}),
		nil,
		map[string]bool{"javascript": true},
	)

	jsJob := domain.NewExecutionJob("javascript", "", "", 1, 64)
	if got := router.Dispatch(context.Background(), jsJob); got.Stdout != "direct" {
		t.Error("missing queued strategy must fall back to direct")
	}
}
