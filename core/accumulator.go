package core

import (
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// log is the package-level logger for programmer-misuse guards below,
// the logrus-backed replacement for the teacher's direct use of the
// standard "log" package in its own not-yet-initialized/double-Init
// log.Fatal guards (core/indexer.go, core/ranker.go).
var log = logrus.StandardLogger()

// Accumulator is the sharded map<int32,float64> (C7) used by the parallel
// scoring path, ported from original_source/search-server/concurrent_map.h
// and re-expressed with one sync.Mutex per bucket the same way the teacher
// shards DocInfosShard/InvertedIndexShard by shard number.
type Accumulator struct {
	buckets   []accumulatorBucket
	finalized int32 // atomic; set by Finalize
}

type accumulatorBucket struct {
	mu     sync.Mutex
	values map[int32]*float64
}

// NewAccumulator builds an accumulator with the given bucket count. Keys
// are assigned to bucket uint64(key) % bucketCount.
func NewAccumulator(bucketCount int) *Accumulator {
	if bucketCount < 1 {
		bucketCount = 1
	}
	a := &Accumulator{buckets: make([]accumulatorBucket, bucketCount)}
	for i := range a.buckets {
		a.buckets[i].values = make(map[int32]*float64)
	}
	return a
}

func (a *Accumulator) bucketFor(key int32) *accumulatorBucket {
	return &a.buckets[uint64(uint32(key))%uint64(len(a.buckets))]
}

// Handle is a locked reference to one key's slot, acquired by At and
// released by Release. It stands in for the source's Access{lock_guard,
// Value&}: Go has no destructors, so the caller must defer Release() itself.
type Handle struct {
	value    *float64
	bucket   *accumulatorBucket
	released bool
}

// At locks key's bucket and returns a handle to its value slot, creating it
// (zero-valued) on first touch. The caller must call Release exactly once.
// Calling At after Finalize is a programmer error, not a data condition:
// every fan-out goroutine's At/Add/Release must complete before the caller
// ever invokes Finalize.
func (a *Accumulator) At(key int32) *Handle {
	if atomic.LoadInt32(&a.finalized) != 0 {
		log.Fatal("core: Accumulator.At called after Finalize")
	}
	b := a.bucketFor(key)
	b.mu.Lock()
	v, ok := b.values[key]
	if !ok {
		v = new(float64)
		b.values[key] = v
	}
	return &Handle{value: v, bucket: b}
}

// Add adds delta to the handle's slot. Calling Add on a handle that has
// already been Released is a programmer error.
func (h *Handle) Add(delta float64) {
	if h.released {
		log.Fatal("core: Handle.Add called after Release")
	}
	*h.value += delta
}

// Release unlocks the handle's bucket. Must be called exactly once per
// handle, typically via defer immediately after At; calling it twice is a
// programmer error (it would otherwise unlock an already-unlocked mutex).
func (h *Handle) Release() {
	if h.released {
		log.Fatal("core: Handle.Release called twice")
	}
	h.released = true
	h.bucket.mu.Unlock()
}

// Finalize acquires each bucket's mutex in turn and merges its entries into
// a single map. Callers must not hold outstanding handles when calling this.
func (a *Accumulator) Finalize() map[int32]float64 {
	atomic.StoreInt32(&a.finalized, 1)
	out := make(map[int32]float64)
	for i := range a.buckets {
		b := &a.buckets[i]
		b.mu.Lock()
		for k, v := range b.values {
			out[k] = *v
		}
		b.mu.Unlock()
	}
	return out
}
