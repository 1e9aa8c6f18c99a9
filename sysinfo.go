package main

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	psnet "github.com/shirou/gopsutil/v3/net"
)

// minNetPeak keeps an idle link from scaling noise up to full height.
const minNetPeak = 1024.0

// Metrics caches host statistics between frames. Every value the gauges
// read is a fraction in [0,1].
type Metrics struct {
	DiskPath string

	mu     sync.Mutex
	cpu    float64
	mem    float64
	disk   float64
	uptime float64
	rx, tx float64

	prevNet [2]uint64
	prevAt  time.Time
	peak    float64
}

func NewMetrics(diskPath string) *Metrics {
	return &Metrics{DiskPath: diskPath, peak: minNetPeak}
}

// Sample refreshes every statistic. A failing source keeps its previous
// value; all failures are returned together.
func (m *Metrics) Sample() error {
	var errs []error

	cpuPct, err := cpu.Percent(0, false)
	if err != nil {
		errs = append(errs, fmt.Errorf("cpu: %w", err))
	}
	vm, err := mem.VirtualMemory()
	if err != nil {
		errs = append(errs, fmt.Errorf("mem: %w", err))
	}
	du, err := disk.Usage(m.DiskPath)
	if err != nil {
		errs = append(errs, fmt.Errorf("disk %s: %w", m.DiskPath, err))
	}
	up, err := host.Uptime()
	if err != nil {
		errs = append(errs, fmt.Errorf("uptime: %w", err))
	}
	counters, err := psnet.IOCounters(false)
	if err != nil {
		errs = append(errs, fmt.Errorf("net: %w", err))
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if len(cpuPct) > 0 {
		m.cpu = cpuPct[0] / 100
	}
	if vm != nil {
		m.mem = vm.UsedPercent / 100
	}
	if du != nil {
		m.disk = du.UsedPercent / 100
	}
	if up > 0 {
		m.uptime = dayFraction(up)
	}
	if len(counters) > 0 {
		m.updateNet(counters[0].BytesRecv, counters[0].BytesSent, time.Now())
	}
	return errors.Join(errs...)
}

func (m *Metrics) updateNet(recv, sent uint64, now time.Time) {
	if !m.prevAt.IsZero() {
		dt := now.Sub(m.prevAt).Seconds()
		rx := rate(m.prevNet[0], recv, dt)
		tx := rate(m.prevNet[1], sent, dt)
		m.peak = math.Max(m.peak, math.Max(rx, tx))
		m.rx, m.tx = rx/m.peak, tx/m.peak
	}
	m.prevNet = [2]uint64{recv, sent}
	m.prevAt = now
}

// rate is bytes per second between two counter readings. A counter that
// went backwards (reset or wrap) reads as idle.
func rate(prev, cur uint64, dt float64) float64 {
	if dt <= 0 || cur < prev {
		return 0
	}
	return float64(cur-prev) / dt
}

// dayFraction maps an uptime in seconds to the elapsed part of the
// current day of uptime.
func dayFraction(seconds uint64) float64 {
	const day = 24 * 60 * 60
	return float64(seconds%day) / day
}

func (m *Metrics) get(v *float64) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *v
}

func (m *Metrics) CPU() float64    { return m.get(&m.cpu) }
func (m *Metrics) Memory() float64 { return m.get(&m.mem) }
func (m *Metrics) Disk() float64   { return m.get(&m.disk) }
func (m *Metrics) Uptime() float64 { return m.get(&m.uptime) }
func (m *Metrics) RX() float64     { return m.get(&m.rx) }
func (m *Metrics) TX() float64     { return m.get(&m.tx) }
