package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"sync"
	"time"
	"tsteg/internal/logging"
)

var (
	// MemorySampleRate How often to dump the memory to a file in HZ. Values of less than 1 are recommended to avoid
	// having to sort through too many dump files
	MemorySampleRate = 0.5

	profilerMu     sync.Mutex
	activeProfiler *profiler
)

type profiler struct {
	cpuProfileFile *os.File

	memDumpPath string
	heapDumps   [][]byte
	dumpsMu     sync.Mutex
	stopMemory  chan struct{}
	memoryDone  chan struct{}
}

// StartProfiler enables CPU profiling into cpuProfilePath and periodic heap dumps into memProfileDir. Empty paths
// leave the matching profiler off, and calling it again before StopProfiler is a no-op.
func StartProfiler(cpuProfilePath, memProfileDir string) error {
	if cpuProfilePath == "" && memProfileDir == "" {
		return nil
	}

	profilerMu.Lock()
	defer profilerMu.Unlock()
	if activeProfiler != nil {
		return nil
	}

	p := &profiler{memDumpPath: memProfileDir}
	if cpuProfilePath != "" {
		cpuProfileFile, err := os.Create(cpuProfilePath)
		if err != nil {
			return fmt.Errorf("creating cpu profile: %w", err)
		}
		runtime.SetCPUProfileRate(500)
		if err = pprof.StartCPUProfile(cpuProfileFile); err != nil {
			_ = cpuProfileFile.Close()
			return fmt.Errorf("starting cpu profiler: %w", err)
		}
		p.cpuProfileFile = cpuProfileFile
	}

	if memProfileDir != "" && MemorySampleRate > 0 {
		p.stopMemory = make(chan struct{})
		p.memoryDone = make(chan struct{})
		go p.sampleMemory(time.Duration((1/MemorySampleRate)*1000) * time.Millisecond)
	}

	activeProfiler = p
	return nil
}

// StopProfiler flushes whatever StartProfiler enabled. It is safe to call when nothing is running, which lets both
// the normal exit path and the signal handler call it.
func StopProfiler() error {
	profilerMu.Lock()
	p := activeProfiler
	activeProfiler = nil
	profilerMu.Unlock()

	if p == nil {
		return nil
	}

	var errs []error
	if p.cpuProfileFile != nil {
		pprof.StopCPUProfile()
		errs = append(errs, p.cpuProfileFile.Close())
	}
	if p.stopMemory != nil {
		close(p.stopMemory)
		<-p.memoryDone
		p.dumpMemoryProfile()
		errs = append(errs, p.writeHeapDumps())
	}
	return errors.Join(errs...)
}

func (p *profiler) sampleMemory(interval time.Duration) {
	defer close(p.memoryDone)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-p.stopMemory:
			return
		case <-ticker.C:
			p.dumpMemoryProfile()
		}
	}
}

func (p *profiler) dumpMemoryProfile() {
	w := bytes.NewBuffer(nil)
	if err := pprof.WriteHeapProfile(w); err != nil {
		logging.BuildLogger().WithError(err).Warn("Error taking heap profile")
		return
	}

	p.dumpsMu.Lock()
	p.heapDumps = append(p.heapDumps, w.Bytes())
	p.dumpsMu.Unlock()
}

func (p *profiler) writeHeapDumps() error {
	if err := os.MkdirAll(p.memDumpPath, 0o755); err != nil {
		return fmt.Errorf("creating memory profile dir: %w", err)
	}

	p.dumpsMu.Lock()
	defer p.dumpsMu.Unlock()
	for dIdx, dump := range p.heapDumps {
		err := os.WriteFile(filepath.Join(p.memDumpPath, fmt.Sprintf("mem-%d.mprof", dIdx)), dump, 0o644)
		if err != nil {
			return fmt.Errorf("writing memory profile: %w", err)
		}
	}
	return nil
}
