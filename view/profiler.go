package view

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

var (
	errCaptureCooldown = errors.New("capture on cooldown")
	errAlreadyCapture  = errors.New("already profiling")
)

// Profiler captures a CPU profile and an execution trace when the frame
// rate drops.
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	profilesDir     string
	captureDuration time.Duration

	fps         float64
	frames      int
	elapsed     float64
	startedAt   time.Time
	dropFPS     float64
	warmup      time.Duration
	sampleEvery float64
}

// NewProfiler creates a profiler that writes into dir
func NewProfiler(dir string) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create profiles dir: %w", err)
	}
	return &Profiler{
		captureCooldown: 10 * time.Second,
		profilesDir:     dir,
		captureDuration: 5 * time.Second,
		startedAt:       time.Now(),
		dropFPS:         45,
		warmup:          3 * time.Second,
		sampleEvery:     0.5,
		fps:             60,
	}, nil
}

// FPS returns the last measured frame rate
func (p *Profiler) FPS() float64 { return p.fps }

// Observe accounts one frame of dt seconds and starts a capture when the
// measured rate drops below the threshold after warm-up.
func (p *Profiler) Observe(dt float64, reason func() string) {
	p.elapsed += dt
	p.frames++
	if p.elapsed < p.sampleEvery {
		return
	}
	p.fps = float64(p.frames) / p.elapsed
	p.frames = 0
	p.elapsed = 0

	if p.fps >= p.dropFPS || time.Since(p.startedAt) < p.warmup {
		return
	}
	if err := p.CaptureProfile(reason()); err != nil && !errors.Is(err, errCaptureCooldown) && !errors.Is(err, errAlreadyCapture) {
		log.Printf("profile capture failed: %v", err)
	}
}

// CaptureProfile captures a CPU profile and trace in the background
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if since := time.Since(p.lastCaptureTime); since < p.captureCooldown {
		return fmt.Errorf("last capture %v ago: %w", since, errCaptureCooldown)
	}
	if p.isProfiling {
		return errAlreadyCapture
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()
	baseName := fmt.Sprintf("fps-drop-%s-%s", time.Now().Format("20060102-150405"), reason)
	log.Printf("FPS drop detected (%.0f FPS), capturing %s", p.fps, baseName)

	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := p.captureCPUProfile(baseName); err != nil {
				log.Printf("cpu profile: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := p.captureTrace(baseName); err != nil {
				log.Printf("trace: %v", err)
			}
		}()
		wg.Wait()

		p.analyzeProfile(baseName)
	}()

	return nil
}

func (p *Profiler) captureCPUProfile(baseName string) error {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")

	file, err := os.Create(profilePath)
	if err != nil {
		return fmt.Errorf("create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("start CPU profile: %w", err)
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()

	log.Printf("CPU profile saved to: %s", profilePath)
	return nil
}

func (p *Profiler) captureTrace(baseName string) error {
	tracePath := filepath.Join(p.profilesDir, baseName+".trace")

	file, err := os.Create(tracePath)
	if err != nil {
		return fmt.Errorf("create trace file: %w", err)
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return fmt.Errorf("start trace: %w", err)
	}
	time.Sleep(p.captureDuration)
	trace.Stop()

	log.Printf("Trace saved to: %s", tracePath)
	return nil
}

// analyzeProfile logs where the capture went and the current memory stats
func (p *Profiler) analyzeProfile(baseName string) {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")

	info, err := os.Stat(profilePath)
	if err != nil {
		log.Printf("could not analyze profile: %v", err)
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("profile %s (%.2f KB); view with: go tool pprof -http=:8080 %s", baseName, float64(info.Size())/1024, profilePath)
	log.Printf("mem: alloc=%dKB sys=%dKB numGC=%d heapObjects=%d", m.Alloc/1024, m.Sys/1024, m.NumGC, m.HeapObjects)
}

// IsProfiling returns whether a capture is in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}
