package pool_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	dederrors "github.com/arthur-debert/lnopt/pkg/errors"
	"github.com/arthur-debert/lnopt/pkg/fingerprint"
	"github.com/arthur-debert/lnopt/pkg/pool"
	"github.com/arthur-debert/lnopt/pkg/testutil"
	"github.com/arthur-debert/lnopt/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu   sync.Mutex
	done map[string]error
}

func (o *recordingObserver) FileDone(path string, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.done == nil {
		o.done = make(map[string]error)
	}
	o.done[path] = err
}

// slowStrategy tracks how many fingerprints run at once
type slowStrategy struct {
	running atomic.Int32
	peak    atomic.Int32
}

func (s *slowStrategy) Method() types.Method { return types.MethodSize }

func (s *slowStrategy) Fingerprint(_ types.FS, entry types.FileEntry) (types.Fingerprint, error) {
	n := s.running.Add(1)
	for {
		peak := s.peak.Load()
		if n <= peak || s.peak.CompareAndSwap(peak, n) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)
	s.running.Add(-1)
	return types.Fingerprint{Method: types.MethodSize, Value: entry.Path}, nil
}

func makeTree(n int) (testutil.Tree, []types.FileEntry) {
	tree := testutil.Tree{}
	var entries []types.FileEntry
	for i := 0; i < n; i++ {
		path := fmt.Sprintf("f%02d.txt", i)
		tree[path] = fmt.Sprintf("content-%d", i%3)
		entries = append(entries, types.FileEntry{Path: path, Size: int64(len(tree[path]))})
	}
	return tree, entries
}

func TestRun_ExactAssociation(t *testing.T) {
	tree, entries := makeTree(20)
	fsys := testutil.NewTreeFS(t, tree)
	strategy, err := fingerprint.New(types.MethodSHA256)
	require.NoError(t, err)

	for _, jobs := range []int{1, 4, 32} {
		t.Run(fmt.Sprintf("jobs=%d", jobs), func(t *testing.T) {
			res, err := pool.Run(context.Background(), fsys, strategy, entries, pool.Options{Jobs: jobs})
			require.NoError(t, err)
			require.Len(t, res.Fingerprints, len(entries))
			assert.Empty(t, res.Errors)
			assert.NoError(t, res.Err())

			for _, e := range entries {
				want, err := strategy.Fingerprint(fsys, e)
				require.NoError(t, err)
				assert.Equal(t, want, res.Fingerprints[e.Path], e.Path)
			}
		})
	}
}

func TestRun_BoundedParallelism(t *testing.T) {
	_, entries := makeTree(24)
	strategy := &slowStrategy{}

	_, err := pool.Run(context.Background(), nil, strategy, entries, pool.Options{Jobs: 3})
	require.NoError(t, err)
	assert.LessOrEqual(t, strategy.peak.Load(), int32(3))

	sequential := &slowStrategy{}
	_, err = pool.Run(context.Background(), nil, sequential, entries[:5], pool.Options{Jobs: 1})
	require.NoError(t, err)
	assert.Equal(t, int32(1), sequential.peak.Load())
}

func TestRun_ErrorsAreCollectedNotFatal(t *testing.T) {
	tree, entries := makeTree(6)
	denied := errors.New("permission denied")
	fsys := testutil.NewFaultyFS(testutil.NewTreeFS(t, tree)).
		Fail("open", "f01.txt", denied).
		Fail("open", "f04.txt", denied)

	strategy, err := fingerprint.New(types.MethodMD5)
	require.NoError(t, err)
	observer := &recordingObserver{}

	res, err := pool.Run(context.Background(), fsys, strategy, entries, pool.Options{Jobs: 2, Observer: observer})
	require.NoError(t, err)

	assert.Len(t, res.Fingerprints, 4)
	require.Len(t, res.Errors, 2)
	assert.ErrorIs(t, res.Errors["f01.txt"], denied)
	assert.True(t, dederrors.IsErrorCode(res.Errors["f04.txt"], dederrors.ErrFingerprint))
	assert.NotContains(t, res.Fingerprints, "f01.txt")

	folded := res.Err()
	require.Error(t, folded)
	assert.ErrorIs(t, folded, denied)
	assert.Contains(t, folded.Error(), "2 errors occurred")

	assert.Len(t, observer.done, 6, "observer sees every file")
	assert.Error(t, observer.done["f01.txt"])
	assert.NoError(t, observer.done["f00.txt"])
}

func TestRun_InvalidJobs(t *testing.T) {
	_, err := pool.Run(context.Background(), nil, &slowStrategy{}, nil, pool.Options{Jobs: 0})
	require.Error(t, err)
	assert.True(t, dederrors.IsErrorCode(err, dederrors.ErrInvalidInput))
}

func TestRun_Empty(t *testing.T) {
	res, err := pool.Run(context.Background(), nil, &slowStrategy{}, nil, pool.Options{Jobs: 4})
	require.NoError(t, err)
	assert.Empty(t, res.Fingerprints)
	assert.Nil(t, res.Err())
}
