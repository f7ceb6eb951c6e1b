package framework

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bitleak/lmstfy/client"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"bcp/bcsync/pkg/lmstfyx"
)

// stubSource 记录 ACK 调用的消息源
type stubSource struct {
	mu   sync.Mutex
	acks []string
}

func (s *stubSource) Consume(queue string, timeout, ttr time.Duration) (*Message, error) {
	return nil, nil
}

func (s *stubSource) Ack(queue, jobID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.acks = append(s.acks, jobID)
	return nil
}

func (s *stubSource) acked() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.acks))
	copy(out, s.acks)
	return out
}

type nopLogger struct{}

func (nopLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Infof(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...interface{}) {}

// actionByID 按消息 ID 返回指定处理动作
func actionByID(actions map[string]lmstfyx.JobRespStatus) lmstfyx.Proc {
	return func(ctx context.Context, job *client.Job) *lmstfyx.JobResp {
		return &lmstfyx.JobResp{Action: actions[job.ID]}
	}
}

func TestProcessor_AckByAction(t *testing.T) {
	defer goleak.VerifyNone(t)

	source := &stubSource{}
	proc := actionByID(map[string]lmstfyx.JobRespStatus{
		"job-success": lmstfyx.JobRespStatusSuccess,
		"job-release": lmstfyx.JobRespStatusRelease,
		"job-bury":    lmstfyx.JobRespStatusBury,
	})

	cfg := &ProcessorConfig{Concurrency: 1, BufferSize: 4, Timeout: time.Second}
	p := NewProcessor(cfg, proc, source, nopLogger{})

	inputChan := make(chan *Message, cfg.BufferSize)
	assert.NoError(t, p.Start(context.Background(), inputChan))

	for _, id := range []string{"job-success", "job-release", "job-bury"} {
		inputChan <- &Message{ID: id, Queue: "test_queue", Data: []byte(`{}`)}
	}

	// Drain 模式保证退出前处理完 channel 中剩余消息
	p.SignalShutdown()
	p.Wait()

	acked := source.acked()
	// Success 和 Bury 各 ACK 一次，Release 不 ACK（等待 TTR 重新投递）
	assert.ElementsMatch(t, []string{"job-success", "job-bury"}, acked)
}

func TestProcessor_DrainProcessesBacklog(t *testing.T) {
	defer goleak.VerifyNone(t)

	source := &stubSource{}
	proc := func(ctx context.Context, job *client.Job) *lmstfyx.JobResp {
		return &lmstfyx.JobResp{Action: lmstfyx.JobRespStatusSuccess}
	}

	cfg := &ProcessorConfig{Concurrency: 2, BufferSize: 16, Timeout: time.Second}
	p := NewProcessor(cfg, proc, source, nopLogger{})

	inputChan := make(chan *Message, cfg.BufferSize)
	// 先塞满积压，再启动并立刻关停
	for i := 0; i < 10; i++ {
		inputChan <- &Message{ID: "backlog", Queue: "test_queue", Data: []byte(`{}`)}
	}

	assert.NoError(t, p.Start(context.Background(), inputChan))
	p.SignalShutdown()
	p.Wait()

	assert.Len(t, source.acked(), 10)
}
