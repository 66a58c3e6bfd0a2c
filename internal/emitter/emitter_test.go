package emitter

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yairfalse/onevision/internal/inventory"
	"github.com/yairfalse/onevision/pkg/metric"
	"github.com/yairfalse/onevision/pkg/resource"
)

// mockEmitter implements Emitter for testing.
type mockEmitter struct {
	emitCalls  int
	closeCalls int
	emitErr    error
	closeErr   error
	snaps      []Snapshot
}

func (m *mockEmitter) Emit(_ context.Context, snap Snapshot) error {
	m.emitCalls++
	m.snaps = append(m.snaps, snap)
	return m.emitErr
}

func (m *mockEmitter) Close() error {
	m.closeCalls++
	return m.closeErr
}

func TestMultiEmitter_Emit(t *testing.T) {
	e1 := &mockEmitter{}
	e2 := &mockEmitter{}
	multi := NewMultiEmitter(e1, e2)

	snap := Snapshot{Summary: inventory.Summary{Total: 3}}
	err := multi.Emit(context.Background(), snap)

	require.NoError(t, err)
	assert.Equal(t, 1, e1.emitCalls)
	assert.Equal(t, 1, e2.emitCalls)
	assert.Equal(t, 3, e2.snaps[0].Summary.Total)
}

func TestMultiEmitter_Emit_Error(t *testing.T) {
	e1 := &mockEmitter{emitErr: errors.New("emit failed")}
	e2 := &mockEmitter{}
	multi := NewMultiEmitter(e1, e2)

	err := multi.Emit(context.Background(), Snapshot{})

	assert.Error(t, err)
	assert.Equal(t, 1, e1.emitCalls)
	assert.Equal(t, 0, e2.emitCalls) // Should stop on first error
}

func TestMultiEmitter_Close(t *testing.T) {
	e1 := &mockEmitter{closeErr: errors.New("close failed")}
	e2 := &mockEmitter{}

	assert.Error(t, NewMultiEmitter(e1, e2).Close())
	assert.Equal(t, 0, e2.closeCalls)

	e1.closeErr = nil
	require.NoError(t, NewMultiEmitter(e1, e2).Close())
	assert.Equal(t, 1, e2.closeCalls)
}

func TestMultiEmitter_Empty(t *testing.T) {
	multi := NewMultiEmitter()
	require.NoError(t, multi.Emit(context.Background(), Snapshot{}))
	require.NoError(t, multi.Close())
}

type fakeSource struct {
	diffs      []resource.ResourceDiff
	refreshErr error
	summary    inventory.Summary
	summaryErr error
	metrics    []metric.Metric
	metricsErr error
}

func (f *fakeSource) Refresh(context.Context) ([]resource.ResourceDiff, error) {
	return f.diffs, f.refreshErr
}

func (f *fakeSource) Summary(context.Context) (inventory.Summary, error) {
	return f.summary, f.summaryErr
}

func (f *fakeSource) DashboardMetrics(context.Context) ([]metric.Metric, error) {
	return f.metrics, f.metricsErr
}

func TestRefresher_EmitsSnapshot(t *testing.T) {
	vol := &resource.EBSVolume{Base: resource.Base{ID: "vol-1", Type: resource.KindEBSVolume}}
	src := &fakeSource{
		diffs:   []resource.ResourceDiff{{Type: resource.DiffAdded, Resource: vol}},
		summary: inventory.Summary{Total: 1},
		metrics: []metric.Metric{{Kind: metric.KindGlobalSummary}},
	}
	em := &mockEmitter{}

	diffs, err := NewRefresher(src, em, zerolog.Nop()).Refresh(context.Background())
	require.NoError(t, err)
	assert.Len(t, diffs, 1)

	require.Len(t, em.snaps, 1)
	assert.Equal(t, 1, em.snaps[0].Summary.Total)
	assert.Len(t, em.snaps[0].Metrics, 1)
	assert.Len(t, em.snaps[0].Changes, 1)
}

func TestRefresher_RefreshError(t *testing.T) {
	src := &fakeSource{refreshErr: errors.New("table gone")}
	em := &mockEmitter{}

	_, err := NewRefresher(src, em, zerolog.Nop()).Refresh(context.Background())
	require.Error(t, err)
	assert.Equal(t, 0, em.emitCalls)
}

func TestRefresher_MetricsOptional(t *testing.T) {
	src := &fakeSource{summary: inventory.Summary{Total: 2}, metricsErr: errors.New("no metrics table")}
	em := &mockEmitter{}

	_, err := NewRefresher(src, em, zerolog.Nop()).Refresh(context.Background())
	require.NoError(t, err)
	require.Len(t, em.snaps, 1)
	assert.Nil(t, em.snaps[0].Metrics)
}

func TestRefresher_EmitError(t *testing.T) {
	src := &fakeSource{}
	em := &mockEmitter{emitErr: errors.New("backend down")}

	_, err := NewRefresher(src, em, zerolog.Nop()).Refresh(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "emit snapshot")
}

func TestLogEmitter_SkipsBaseline(t *testing.T) {
	var buf bytes.Buffer
	e := NewLogEmitter(zerolog.New(&buf))

	prev := &resource.EC2Instance{Base: resource.Base{ID: "i-1", Type: resource.KindEC2Instance, Name: "web"}}
	curr := &resource.EC2Instance{Base: resource.Base{ID: "i-1", Type: resource.KindEC2Instance, Name: "api"}}
	changes := []resource.ResourceDiff{{
		Type:     resource.DiffModified,
		Resource: curr,
		Previous: prev,
		Changes:  map[string]resource.Change{"name": {Previous: "web", Current: "api"}},
	}}

	require.NoError(t, e.Emit(context.Background(), Snapshot{Changes: changes}))
	assert.Empty(t, buf.String())

	require.NoError(t, e.Emit(context.Background(), Snapshot{Changes: changes}))
	out := buf.String()
	assert.Contains(t, out, `"change":"modified"`)
	assert.Contains(t, out, `"name.from":"web"`)
	assert.Contains(t, out, `"name.to":"api"`)
	require.NoError(t, e.Close())
}
