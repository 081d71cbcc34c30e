package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v4/cpu"
)

// CPUUsage is sampled on every scrape.
var CPUUsage = promauto.NewGaugeFunc(
	prometheus.GaugeOpts{
		Name: "system_cpu_usage_percent",
		Help: "Host CPU usage since the previous scrape",
	},
	GetCPUUsage,
)

// GetCPUUsage returns the CPU usage as a percentage since the last call. A
// zero interval keeps scrapes non-blocking.
func GetCPUUsage() float64 {
	percentage, err := cpu.Percent(0, false)
	if err != nil || len(percentage) == 0 {
		return 0
	}
	return percentage[0]
}
