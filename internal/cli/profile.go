package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"sync"
	"textsteg/internal/logging"
	"time"
)

var (
	// MemorySampleRate How often to dump the memory to a file in HZ. Values of less than 1 are recommended to avoid
	// having to sort through too many dump files
	MemorySampleRate = 0.5
)

// Profiler collects a CPU profile and periodic heap profiles for the duration of a command
type Profiler struct {
	cpuProfileFile *os.File

	memDumpPath   string
	heapDumps     [][]byte
	stopMemDumper chan struct{}
	memDumperDone chan struct{}

	stopOnce sync.Once
}

// StartProfiler starts the profilers that were asked for, an empty path disables the matching profiler
func StartProfiler(cpuProfilePath, memProfileDir string) (*Profiler, error) {
	p := &Profiler{}

	if cpuProfilePath != "" {
		f, err := os.Create(cpuProfilePath)
		if err != nil {
			return nil, err
		}
		runtime.SetCPUProfileRate(500)
		if err = pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return nil, fmt.Errorf("starting CPU profiler: %w", err)
		}
		p.cpuProfileFile = f
	}

	if memProfileDir != "" && MemorySampleRate > 0 {
		p.memDumpPath = memProfileDir
		p.stopMemDumper = make(chan struct{})
		p.memDumperDone = make(chan struct{})
		go p.dumpMemoryPeriodically()
	}

	return p, nil
}

func (p *Profiler) dumpMemoryPeriodically() {
	defer close(p.memDumperDone)

	ticker := time.NewTicker(time.Duration((1/MemorySampleRate)*1000) * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-p.stopMemDumper:
			return
		case <-ticker.C:
			p.dumpMemoryProfile()
		}
	}
}

func (p *Profiler) dumpMemoryProfile() {
	w := bytes.NewBuffer(nil)
	if err := pprof.WriteHeapProfile(w); err != nil {
		logging.BuildLogger().WithError(err).Warn("Error dumping heap profile")
		return
	}
	p.heapDumps = append(p.heapDumps, w.Bytes())
}

// Stop flushes every profile to disk. It is safe to call more than once
func (p *Profiler) Stop() {
	p.stopOnce.Do(func() {
		if p.cpuProfileFile != nil {
			pprof.StopCPUProfile()
			p.cpuProfileFile.Close()
		}

		if p.stopMemDumper != nil {
			close(p.stopMemDumper)
			<-p.memDumperDone
			p.dumpMemoryProfile()
			p.writeHeapDumps()
		}
	})
}

func (p *Profiler) writeHeapDumps() {
	logger := logging.BuildLogger()
	if err := os.MkdirAll(p.memDumpPath, os.ModePerm); err != nil {
		logger.WithError(err).Error("Error creating memory profile directory")
		return
	}
	for dIdx, dump := range p.heapDumps {
		err := os.WriteFile(filepath.Join(p.memDumpPath, fmt.Sprintf("mem-%d.mprof", dIdx)), dump, 0644)
		if err != nil {
			logger.WithError(err).Error("Error writing memory profile to disk")
		}
	}
}

